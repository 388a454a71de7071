// Package stream renders every requested input path into one output buffer.
package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/temirov/sdir/internal/commands"
	"github.com/temirov/sdir/internal/output"
	"github.com/temirov/sdir/internal/types"
	"github.com/temirov/sdir/internal/utils"
	"github.com/temirov/sdir/internal/walker"
)

const (
	errorInputNotFoundFormat = "%w: '%s' does not exist"
	errorInputKindFormat     = "%w: '%s' is neither a valid file nor directory"
	errorInspectInputFormat  = "%w: inspecting '%s': %v"
	errorAbsolutePathFormat  = "%w: resolving '%s': %v"
	errorRenderFormat        = "rendering '%s': %w"
)

// Options describes one invocation.
type Options struct {
	Paths            []string
	Format           string
	Traversal        types.TraversalConfig
	Walk             types.WalkOptions
	WorkingDirectory string
}

// Report is the outcome of rendering all inputs.
type Report struct {
	Buffer *output.Buffer
	// FileInputs counts inputs rendered in file mode.
	FileInputs int
	// Failed counts inputs that were skipped because of an error.
	Failed int
}

// Service renders inputs to the terminal and to the plain output buffer.
type Service struct {
	terminal io.Writer
	logger   *zap.Logger
}

// NewService constructs a Service writing styled output to terminal.
func NewService(terminal io.Writer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{terminal: terminal, logger: logger}
}

// Run renders each path in order. With a single path the first error is returned.
// With several paths, failing inputs are logged and skipped.
func (service *Service) Run(ctx context.Context, options Options) (Report, error) {
	report := Report{Buffer: &output.Buffer{}}
	multiplePaths := len(options.Paths) > 1

	for _, rawPath := range options.Paths {
		if ctx != nil {
			if contextError := ctx.Err(); contextError != nil {
				return report, contextError
			}
		}
		renderError := service.renderPath(rawPath, options, &report)
		if renderError == nil {
			continue
		}
		if !multiplePaths {
			return report, renderError
		}
		report.Failed++
		service.logger.Error("skipping input", zap.String("path", rawPath), zap.Error(renderError))
	}
	return report, nil
}

func (service *Service) renderPath(rawPath string, options Options, report *Report) error {
	input, validationError := ValidatePath(rawPath)
	if validationError != nil {
		return validationError
	}

	if !input.IsDir {
		block, readError := commands.ReadFileBlock(input, options.WorkingDirectory)
		if readError != nil {
			return readError
		}
		if err := output.BeginSection(service.terminal, report.Buffer); err != nil {
			return fmt.Errorf(errorRenderFormat, rawPath, err)
		}
		if err := output.WriteFileBlock(service.terminal, report.Buffer, block); err != nil {
			return fmt.Errorf(errorRenderFormat, rawPath, err)
		}
		report.FileInputs++
		return nil
	}

	traversal := options.Traversal
	if options.Format == types.FormatJSON {
		traversal.CollectContents = false
	}
	lister := walker.NewIgnoreLister(input.RawPath, options.Walk, service.logger)
	builder, builderError := commands.NewTreeBuilder(&traversal, lister, service.logger)
	if builderError != nil {
		return builderError
	}

	if err := output.BeginSection(service.terminal, report.Buffer); err != nil {
		return fmt.Errorf(errorRenderFormat, rawPath, err)
	}
	var renderer output.StreamRenderer
	if options.Format == types.FormatJSON {
		renderer = output.NewJSONStreamRenderer(service.terminal, report.Buffer)
	} else {
		renderer = output.NewTextStreamRenderer(service.terminal, report.Buffer, output.TextRenderOptions{
			DisplayName: utils.DirectoryDisplayName(input.RawPath, options.WorkingDirectory),
			RootLabel:   input.RawPath,
		})
	}
	if err := builder.Walk(input.RawPath, renderer.Handle); err != nil {
		return fmt.Errorf(errorRenderFormat, rawPath, err)
	}
	if err := renderer.Flush(); err != nil {
		return fmt.Errorf(errorRenderFormat, rawPath, err)
	}
	return nil
}

// ValidatePath classifies rawPath as a regular file or directory.
func ValidatePath(rawPath string) (types.ValidatedPath, error) {
	info, statError := os.Stat(rawPath)
	if statError != nil {
		if errors.Is(statError, os.ErrNotExist) {
			return types.ValidatedPath{}, fmt.Errorf(errorInputNotFoundFormat, types.ErrInputNotFound, rawPath)
		}
		return types.ValidatedPath{}, fmt.Errorf(errorInspectInputFormat, types.ErrRead, rawPath, statError)
	}
	if !info.IsDir() && !info.Mode().IsRegular() {
		return types.ValidatedPath{}, fmt.Errorf(errorInputKindFormat, types.ErrInputNotFileOrDir, rawPath)
	}
	absolutePath, absoluteError := filepath.Abs(rawPath)
	if absoluteError != nil {
		return types.ValidatedPath{}, fmt.Errorf(errorAbsolutePathFormat, types.ErrRead, rawPath, absoluteError)
	}
	return types.ValidatedPath{RawPath: rawPath, AbsolutePath: absolutePath, IsDir: info.IsDir()}, nil
}
