package commands

import (
	"fmt"

	"github.com/temirov/sdir/internal/types"
	"github.com/temirov/sdir/internal/utils"
)

const (
	errorReadFileFormat    = "%w: reading %s: %v"
	errorNonTextFileFormat = "%w: %s is not valid UTF-8 text"
)

// FileBlock is the rendering of a single file input.
type FileBlock struct {
	DisplayPath string
	Content     string
}

// String renders the header line followed by the content, always ending in a newline.
func (block FileBlock) String() string {
	return block.DisplayPath + "\n" + utils.EnsureTrailingNewline(block.Content)
}

// ReadFileBlock reads a file input. The display path is "./<relative>" when the file
// lives under workingDirectory and the path as given otherwise.
func ReadFileBlock(input types.ValidatedPath, workingDirectory string) (FileBlock, error) {
	content, isText, readError := utils.ReadTextFile(input.AbsolutePath)
	if readError != nil {
		return FileBlock{}, fmt.Errorf(errorReadFileFormat, types.ErrRead, input.RawPath, readError)
	}
	if !isText {
		return FileBlock{}, fmt.Errorf(errorNonTextFileFormat, types.ErrRead, input.RawPath)
	}
	return FileBlock{
		DisplayPath: utils.FileDisplayPath(input.RawPath, input.AbsolutePath, workingDirectory),
		Content:     content,
	}, nil
}
