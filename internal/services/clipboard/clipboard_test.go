package clipboard

import (
	"errors"
	"testing"

	"github.com/temirov/sdir/internal/types"
)

func TestServiceCopyWrapsFailures(testingHandle *testing.T) {
	var received string
	service := &Service{writeAll: func(text string) error {
		received = text
		return errors.New("xsel exited with status 1")
	}}

	copyError := service.Copy("payload")
	if !errors.Is(copyError, types.ErrClipboardUnavailable) {
		testingHandle.Fatalf("expected ErrClipboardUnavailable, got %v", copyError)
	}
	if received != "payload" {
		testingHandle.Fatalf("unexpected text %q", received)
	}
}

func TestServiceCopySucceeds(testingHandle *testing.T) {
	service := &Service{writeAll: func(string) error { return nil }}
	if copyError := service.Copy("payload"); copyError != nil {
		testingHandle.Fatalf("unexpected error: %v", copyError)
	}
}

func TestServiceCopyWithoutClipboardUtility(testingHandle *testing.T) {
	called := false
	service := &Service{unsupported: true, writeAll: func(string) error {
		called = true
		return nil
	}}
	if copyError := service.Copy("payload"); !errors.Is(copyError, types.ErrClipboardUnavailable) {
		testingHandle.Fatalf("expected ErrClipboardUnavailable, got %v", copyError)
	}
	if called {
		testingHandle.Fatalf("clipboard writer must not run when unsupported")
	}
}

func TestNoopCopy(testingHandle *testing.T) {
	if copyError := (Noop{}).Copy("payload"); copyError != nil {
		testingHandle.Fatalf("unexpected error: %v", copyError)
	}
}
