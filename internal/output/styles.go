package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

const (
	colorBlue        = lipgloss.Color("4")
	colorGreen       = lipgloss.Color("2")
	colorBrightBlack = lipgloss.Color("8")
)

// TreeStyles colors tree lines for the terminal. Styling degrades to plain
// text when the writer is not a color capable terminal.
type TreeStyles struct {
	directory lipgloss.Style
	file      lipgloss.Style
	branch    lipgloss.Style
}

// NewTreeStyles detects the color profile of writer.
func NewTreeStyles(writer io.Writer) TreeStyles {
	if writer == nil {
		writer = io.Discard
	}
	renderer := lipgloss.NewRenderer(writer)
	return TreeStyles{
		directory: renderer.NewStyle().Foreground(colorBlue).Bold(true),
		file:      renderer.NewStyle().Foreground(colorGreen),
		branch:    renderer.NewStyle().Foreground(colorBrightBlack),
	}
}

// Line styles an entry line: dimmed prefix and connector, colored icon and name.
// The annotation (such as "(empty)") keeps the label's style.
func (styles TreeStyles) Line(prefix string, connector string, label string, isDirectory bool) string {
	styledPrefix := prefix
	if prefix != "" {
		styledPrefix = styles.branch.Render(prefix)
	}
	labelStyle := styles.file
	if isDirectory {
		labelStyle = styles.directory
	}
	return styledPrefix + styles.branch.Render(connector) + space + labelStyle.Render(label)
}
