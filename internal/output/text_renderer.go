package output

import (
	"fmt"
	"io"

	"github.com/temirov/sdir/internal/commands"
	"github.com/temirov/sdir/internal/types"
	"github.com/temirov/sdir/internal/utils"
)

const (
	treeHeadingFormat     = "# tree structure of directory `%s`"
	contentsHeading       = "# File Contents"
	contentPathHeadingFmt = "# %s"
	emptyAnnotation       = "(empty)"
)

// TextRenderOptions describes the header of a text tree.
type TextRenderOptions struct {
	// DisplayName appears in the heading line.
	DisplayName string
	// RootLabel is the root path as the user wrote it.
	RootLabel string
}

type textStreamRenderer struct {
	target    lineTarget
	styles    TreeStyles
	options   TextRenderOptions
	collector *commands.ContentCollector
}

// NewTextStreamRenderer renders the tree into buffer and, styled, into terminal.
// Either target may be nil.
func NewTextStreamRenderer(terminal io.Writer, buffer *Buffer, options TextRenderOptions) StreamRenderer {
	return &textStreamRenderer{
		target:    lineTarget{buffer: buffer, terminal: terminal},
		styles:    NewTreeStyles(terminal),
		options:   options,
		collector: &commands.ContentCollector{},
	}
}

func (renderer *textStreamRenderer) Handle(event commands.TreeEvent) error {
	switch event.Kind {
	case commands.TreeEventEnterDir:
		directory := event.Directory
		if directory.IsRoot {
			return renderer.writeHeader()
		}
		return renderer.writeEntry(directory.Layout, directory.Name, true, directory.IsEmpty)
	case commands.TreeEventFile:
		renderer.collector.Observe(event)
		return renderer.writeEntry(event.File.Layout, event.File.Name, false, false)
	}
	return nil
}

// Flush appends the collected file contents, if any.
func (renderer *textStreamRenderer) Flush() error {
	if renderer.collector.Len() == 0 {
		return nil
	}
	if err := renderer.target.writeBlock(lineSeparator + contentsHeading + lineSeparator); err != nil {
		return err
	}
	for _, fileContent := range renderer.collector.Entries() {
		block := lineSeparator + fmt.Sprintf(contentPathHeadingFmt, fileContent.Path) + lineSeparator + utils.EnsureTrailingNewline(fileContent.Content)
		if err := renderer.target.writeBlock(block); err != nil {
			return err
		}
	}
	return nil
}

func (renderer *textStreamRenderer) writeHeader() error {
	heading := fmt.Sprintf(treeHeadingFormat, renderer.options.DisplayName)
	if err := renderer.target.writeLine(heading, heading); err != nil {
		return err
	}
	rootLine := joinWords(types.DirectoryIcon, renderer.options.RootLabel)
	return renderer.target.writeLine(rootLine, renderer.styles.directory.Render(rootLine))
}

func (renderer *textStreamRenderer) writeEntry(layout commands.TreeEntryLayout, name string, isDirectory bool, isEmpty bool) error {
	icon := types.FileIcon
	if isDirectory {
		icon = types.DirectoryIcon
	}
	label := joinWords(icon, name)
	if isEmpty {
		label = joinWords(label, emptyAnnotation)
	}
	connector := layout.Connector()
	plain := layout.Prefix + joinWords(connector, label)
	return renderer.target.writeLine(plain, renderer.styles.Line(layout.Prefix, connector, label, isDirectory))
}
