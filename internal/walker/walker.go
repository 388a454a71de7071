// Package walker lists directories one level at a time while honoring
// .gitignore/.ignore files, hidden-entry visibility and the .git directory rule.
package walker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"go.uber.org/zap"

	"github.com/temirov/sdir/internal/config"
	"github.com/temirov/sdir/internal/types"
	"github.com/temirov/sdir/internal/utils"
)

const (
	hiddenPrefix = "."

	errorReadDirectoryFormat = "reading directory %s: %w"
)

// Entry is one filesystem object found by a single-level listing.
// Path is the parent directory joined with Name.
type Entry struct {
	Path      string
	Name      string
	IsDir     bool
	IsRegular bool
}

// Lister produces the direct children of a directory.
type Lister interface {
	List(directory string) ([]Entry, error)
}

// IgnoreLister implements Lister on top of os.ReadDir and gitignore matching.
// Patterns are accumulated from the traversal root downwards and cached per directory.
type IgnoreLister struct {
	root         string
	options      types.WalkOptions
	logger       *zap.Logger
	patternCache map[string][]gitignore.Pattern
}

// NewIgnoreLister constructs a lister rooted at root.
func NewIgnoreLister(root string, options types.WalkOptions, logger *zap.Logger) *IgnoreLister {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IgnoreLister{
		root:         filepath.Clean(root),
		options:      options,
		logger:       logger,
		patternCache: map[string][]gitignore.Pattern{},
	}
}

// List returns the visible direct children of directory in directory order.
// Children that vanish or are neither regular files nor directories are skipped.
func (lister *IgnoreLister) List(directory string) ([]Entry, error) {
	directoryEntries, readDirectoryError := os.ReadDir(directory)
	if readDirectoryError != nil {
		return nil, fmt.Errorf(errorReadDirectoryFormat, directory, readDirectoryError)
	}

	patterns := lister.patternsFor(directory)
	var matcher gitignore.Matcher
	if len(patterns) > 0 {
		matcher = gitignore.NewMatcher(patterns)
	}

	entries := make([]Entry, 0, len(directoryEntries))
	for _, directoryEntry := range directoryEntries {
		name := directoryEntry.Name()
		if !lister.options.ShowHidden && strings.HasPrefix(name, hiddenPrefix) {
			continue
		}
		childPath := filepath.Join(directory, name)

		info, statError := os.Stat(childPath)
		if statError != nil {
			lister.logger.Debug("skipping unreadable entry", zap.String("path", childPath), zap.Error(statError))
			continue
		}
		isDir := info.IsDir()
		isRegular := info.Mode().IsRegular()
		if !isDir && !isRegular {
			continue
		}
		if isDir && !lister.options.IncludeGit && name == utils.GitDirectoryName {
			continue
		}
		if matcher != nil {
			segments := utils.PathSegments(utils.RelativePathOrSelf(childPath, lister.root))
			if matcher.Match(segments, isDir) {
				continue
			}
		}

		entries = append(entries, Entry{
			Path:      childPath,
			Name:      name,
			IsDir:     isDir,
			IsRegular: isRegular,
		})
	}
	return entries, nil
}

// patternsFor returns the ignore patterns in effect inside directory: those of every
// ancestor up to the root followed by the directory's own.
func (lister *IgnoreLister) patternsFor(directory string) []gitignore.Pattern {
	if !lister.options.UseGitignore && !lister.options.UseIgnoreFile {
		return nil
	}
	cleanDirectory := filepath.Clean(directory)
	if cached, ok := lister.patternCache[cleanDirectory]; ok {
		return cached
	}

	relativeDirectory := utils.RelativePathOrSelf(cleanDirectory, lister.root)
	var inherited []gitignore.Pattern
	if relativeDirectory != "." && !strings.HasPrefix(relativeDirectory, "..") && !filepath.IsAbs(relativeDirectory) {
		inherited = lister.patternsFor(filepath.Dir(cleanDirectory))
	}

	own, loadError := config.LoadDirectoryIgnorePatterns(cleanDirectory, utils.PathSegments(relativeDirectory), lister.options)
	if loadError != nil {
		lister.logger.Warn("ignoring unreadable ignore file", zap.String("directory", cleanDirectory), zap.Error(loadError))
	}

	combined := make([]gitignore.Pattern, 0, len(inherited)+len(own))
	combined = append(combined, inherited...)
	combined = append(combined, own...)
	lister.patternCache[cleanDirectory] = combined
	return combined
}

var _ Lister = (*IgnoreLister)(nil)
