package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/temirov/sdir/internal/commands"
)

const (
	jsonIndent = "  "

	errorEncodeTreeFormat = "encoding tree: %w"
)

type jsonStreamRenderer struct {
	target    lineTarget
	assembler *commands.TreeAssembler
}

// NewJSONStreamRenderer assembles the tree from events and writes it as one
// indented JSON document on Flush.
func NewJSONStreamRenderer(terminal io.Writer, buffer *Buffer) StreamRenderer {
	return &jsonStreamRenderer{
		target:    lineTarget{buffer: buffer, terminal: terminal},
		assembler: &commands.TreeAssembler{},
	}
}

func (renderer *jsonStreamRenderer) Handle(event commands.TreeEvent) error {
	return renderer.assembler.Handle(event)
}

func (renderer *jsonStreamRenderer) Flush() error {
	root := renderer.assembler.Root()
	if root == nil {
		return nil
	}
	document, encodeError := json.MarshalIndent(root, "", jsonIndent)
	if encodeError != nil {
		return fmt.Errorf(errorEncodeTreeFormat, encodeError)
	}
	text := string(document)
	return renderer.target.writeLine(text, text)
}
