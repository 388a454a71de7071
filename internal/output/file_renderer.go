package output

import (
	"io"

	"github.com/temirov/sdir/internal/commands"
)

// WriteFileBlock writes a file mode rendering to both targets.
func WriteFileBlock(terminal io.Writer, buffer *Buffer, block commands.FileBlock) error {
	target := lineTarget{buffer: buffer, terminal: terminal}
	return target.writeBlock(block.String())
}
