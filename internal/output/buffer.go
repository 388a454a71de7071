package output

import (
	"io"
	"strings"
)

// Buffer accumulates the unstyled rendering of every input of one invocation.
// Its content is what gets copied to the clipboard and written by --save.
type Buffer struct {
	builder strings.Builder
}

func (buffer *Buffer) WriteString(text string) {
	buffer.builder.WriteString(text)
}

// WriteLine appends text followed by a newline.
func (buffer *Buffer) WriteLine(text string) {
	buffer.builder.WriteString(text)
	buffer.builder.WriteString(lineSeparator)
}

// StartSection separates a new input's rendering from what came before with a blank line.
func (buffer *Buffer) StartSection() {
	if buffer.builder.Len() == 0 {
		return
	}
	buffer.builder.WriteString(lineSeparator)
}

func (buffer *Buffer) String() string {
	return buffer.builder.String()
}

func (buffer *Buffer) Len() int {
	return buffer.builder.Len()
}

// BeginSection starts a new input's rendering on both targets.
func BeginSection(terminal io.Writer, buffer *Buffer) error {
	if buffer.Len() == 0 {
		return nil
	}
	buffer.StartSection()
	if terminal == nil {
		return nil
	}
	_, writeError := io.WriteString(terminal, lineSeparator)
	return writeError
}
