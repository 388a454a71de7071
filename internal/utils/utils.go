// Package utils contains general helper functions used across the sdir tool.
package utils

import (
	"path/filepath"
	"strings"
)

const (
	pathSegmentSeparator = "/"
	currentDirectory     = "."
	displayPathPrefix    = "./"
	newline              = "\n"
)

// DeduplicatePatterns removes duplicate patterns from a slice while preserving order.
// The first occurrence of each unique pattern is kept.
func DeduplicatePatterns(patterns []string) []string {
	encounteredPatterns := make(map[string]struct{})
	result := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		if _, exists := encounteredPatterns[pattern]; !exists {
			encounteredPatterns[pattern] = struct{}{}
			result = append(result, pattern)
		}
	}
	return result
}

// RelativePathOrSelf calculates the relative path from root to fullPath.
// Returns the cleaned fullPath if relative calculation fails.
// Returns "." if fullPath and root resolve to the same directory.
func RelativePathOrSelf(fullPath, root string) string {
	cleanPath := filepath.Clean(fullPath)
	cleanRoot := filepath.Clean(root)
	if cleanPath == cleanRoot {
		return currentDirectory
	}
	relativePath, relErr := filepath.Rel(cleanRoot, cleanPath)
	if relErr != nil {
		return cleanPath
	}
	return filepath.ToSlash(relativePath)
}

// PathSegments splits a slash separated relative path into its segments.
// The root itself ("." or "") has no segments.
func PathSegments(relativePath string) []string {
	normalized := strings.ReplaceAll(filepath.ToSlash(relativePath), "\\", pathSegmentSeparator)
	if normalized == "" || normalized == currentDirectory {
		return nil
	}
	return strings.Split(strings.Trim(normalized, pathSegmentSeparator), pathSegmentSeparator)
}

// EnsureTrailingNewline appends a newline to text that does not end with one.
func EnsureTrailingNewline(text string) string {
	if strings.HasSuffix(text, newline) {
		return text
	}
	return text + newline
}

// FileDisplayPath renders a file path relative to the working directory with a "./" prefix.
// Paths outside the working directory are returned as given.
func FileDisplayPath(rawPath, absolutePath, workingDirectory string) string {
	if workingDirectory == "" {
		return rawPath
	}
	relativePath, relErr := filepath.Rel(filepath.Clean(workingDirectory), filepath.Clean(absolutePath))
	if relErr != nil || relativePath == ".." || strings.HasPrefix(relativePath, ".."+string(filepath.Separator)) {
		return rawPath
	}
	return displayPathPrefix + filepath.ToSlash(relativePath)
}

// DirectoryDisplayName returns the name used in the tree heading.
// "." resolves to the working directory's base name.
func DirectoryDisplayName(rawPath, workingDirectory string) string {
	cleaned := filepath.Clean(rawPath)
	if cleaned == currentDirectory {
		if workingDirectory == "" {
			return currentDirectory
		}
		return filepath.Base(workingDirectory)
	}
	base := filepath.Base(cleaned)
	if base == currentDirectory || base == string(filepath.Separator) || base == ".." {
		return rawPath
	}
	return base
}
