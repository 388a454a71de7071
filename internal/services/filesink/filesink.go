// Package filesink writes the rendered output buffer to a file.
package filesink

import (
	"fmt"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/temirov/sdir/internal/types"
	"github.com/temirov/sdir/internal/utils"
)

const (
	outputFilePermissions = 0o644

	errorWriteFormat = "%w: %s: %v"
)

// Sink writes text to a path on its filesystem.
type Sink struct {
	filesystem afero.Fs
	logger     *zap.Logger
}

// NewSink returns a sink over filesystem; a nil filesystem means the OS filesystem.
func NewSink(filesystem afero.Fs, logger *zap.Logger) *Sink {
	if filesystem == nil {
		filesystem = afero.NewOsFs()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sink{filesystem: filesystem, logger: logger}
}

// Save writes content verbatim, replacing any existing file. Failures wrap types.ErrWrite.
func (sink *Sink) Save(path string, content string) error {
	if writeError := afero.WriteFile(sink.filesystem, path, []byte(content), outputFilePermissions); writeError != nil {
		return fmt.Errorf(errorWriteFormat, types.ErrWrite, path, writeError)
	}
	sink.logger.Info("output saved", zap.String("path", path), zap.String("size", utils.FormatFileSize(int64(len(content)))))
	return nil
}
