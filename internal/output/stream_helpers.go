package output

import (
	"io"
	"strings"
)

const (
	lineSeparator = "\n"
	space         = " "
)

// lineTarget receives plain text once for the buffer and styled text once for the terminal.
type lineTarget struct {
	buffer   *Buffer
	terminal io.Writer
}

func (target lineTarget) writeLine(plain string, styled string) error {
	if target.buffer != nil {
		target.buffer.WriteLine(plain)
	}
	if target.terminal == nil {
		return nil
	}
	_, writeError := io.WriteString(target.terminal, styled+lineSeparator)
	return writeError
}

// writeBlock writes text that already carries its own line breaks to both targets unstyled.
func (target lineTarget) writeBlock(text string) error {
	if target.buffer != nil {
		target.buffer.WriteString(text)
	}
	if target.terminal == nil {
		return nil
	}
	_, writeError := io.WriteString(target.terminal, text)
	return writeError
}

func joinWords(words ...string) string {
	return strings.Join(words, space)
}
