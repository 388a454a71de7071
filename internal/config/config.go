// Package config loads ignore files and application configuration.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"github.com/temirov/sdir/internal/types"
	"github.com/temirov/sdir/internal/utils"
)

const (
	commentPrefix = "#"

	errorLoadIgnoreFormat = "loading %s from %s: %w"
)

// LoadIgnoreFileLines reads an ignore file and returns its pattern lines.
// Blank lines and comments are skipped. A missing file yields no lines.
//
// #nosec G304
func LoadIgnoreFileLines(ignoreFilePath string) ([]string, error) {
	fileHandle, openFileError := os.Open(ignoreFilePath)
	if openFileError != nil {
		if os.IsNotExist(openFileError) {
			return nil, nil
		}
		return nil, openFileError
	}
	defer fileHandle.Close()

	var patternLines []string
	scanner := bufio.NewScanner(fileHandle)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		trimmedLine := strings.TrimSpace(line)
		if trimmedLine == "" || strings.HasPrefix(trimmedLine, commentPrefix) {
			continue
		}
		patternLines = append(patternLines, trimmedLine)
	}
	if scanError := scanner.Err(); scanError != nil {
		return nil, scanError
	}
	return utils.DeduplicatePatterns(patternLines), nil
}

// LoadDirectoryIgnorePatterns parses the .ignore and/or .gitignore files located directly in
// directoryPath. domain holds the directory's path segments relative to the traversal root so
// that the resulting patterns only apply beneath that directory. Patterns from .gitignore are
// appended after .ignore patterns and therefore take precedence on conflict.
func LoadDirectoryIgnorePatterns(directoryPath string, domain []string, options types.WalkOptions) ([]gitignore.Pattern, error) {
	var patterns []gitignore.Pattern

	sources := make([]string, 0, 2)
	if options.UseIgnoreFile {
		sources = append(sources, utils.IgnoreFileName)
	}
	if options.UseGitignore {
		sources = append(sources, utils.GitIgnoreFileName)
	}

	for _, sourceName := range sources {
		lines, loadError := LoadIgnoreFileLines(filepath.Join(directoryPath, sourceName))
		if loadError != nil {
			return nil, fmt.Errorf(errorLoadIgnoreFormat, sourceName, directoryPath, loadError)
		}
		for _, line := range lines {
			patterns = append(patterns, gitignore.ParsePattern(line, domain))
		}
	}

	return patterns, nil
}
