// Package clipboard provides access to the system clipboard.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/temirov/sdir/internal/types"
)

const errorCopyFormat = "%w: %v"

// Copier copies textual data to the system clipboard.
type Copier interface {
	Copy(text string) error
}

// Service implements Copier using github.com/atotto/clipboard.
type Service struct {
	unsupported bool
	writeAll    func(string) error
}

// NewService constructs a Clipboard service implementation.
func NewService() *Service {
	return &Service{unsupported: clipboard.Unsupported, writeAll: clipboard.WriteAll}
}

// Copy writes text to the system clipboard. Failures wrap types.ErrClipboardUnavailable.
func (service *Service) Copy(text string) error {
	if service.unsupported {
		return fmt.Errorf(errorCopyFormat, types.ErrClipboardUnavailable, "no clipboard utility found")
	}
	if copyError := service.writeAll(text); copyError != nil {
		return fmt.Errorf(errorCopyFormat, types.ErrClipboardUnavailable, copyError)
	}
	return nil
}

// Noop discards text. It is used when copying is disabled.
type Noop struct{}

func (Noop) Copy(string) error {
	return nil
}

var (
	_ Copier = (*Service)(nil)
	_ Copier = Noop{}
)
