// Package output renders traversal events into the plain output buffer and the terminal.
package output

import (
	"github.com/temirov/sdir/internal/commands"
)

// StreamRenderer consumes tree events in traversal order and writes its
// rendering once the traversal completes.
type StreamRenderer interface {
	Handle(event commands.TreeEvent) error
	Flush() error
}
