package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"go.uber.org/zap"

	"github.com/temirov/sdir/internal/types"
	"github.com/temirov/sdir/internal/walker"
)

const (
	wildcardPrefix = "*"

	errorCompilePatternFormat = "compiling include pattern %q: %w"
)

// EntryFilter decides whether a listed entry is visible under a traversal configuration.
type EntryFilter struct {
	config        *types.TraversalConfig
	lister        walker.Lister
	logger        *zap.Logger
	includeGlob   glob.Glob
	containsCache map[string]bool
}

// NewEntryFilter compiles the include pattern, if any, and returns a filter.
// lister is used for the recursive scan that decides whether a directory holds a matching file.
func NewEntryFilter(config *types.TraversalConfig, lister walker.Lister, logger *zap.Logger) (*EntryFilter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	filter := &EntryFilter{
		config:        config,
		lister:        lister,
		logger:        logger,
		containsCache: map[string]bool{},
	}
	if config.HasIncludePattern() {
		compiled, compileError := glob.Compile(NormalizeIncludePattern(config.IncludePattern))
		if compileError != nil {
			return nil, fmt.Errorf(errorCompilePatternFormat, config.IncludePattern, compileError)
		}
		filter.includeGlob = compiled
	}
	return filter, nil
}

// NormalizeIncludePattern prefixes patterns that do not start with a wildcard with "*",
// so a bare suffix such as ".rs" matches any path ending in it.
func NormalizeIncludePattern(pattern string) string {
	if strings.HasPrefix(pattern, wildcardPrefix) {
		return pattern
	}
	return wildcardPrefix + pattern
}

// Admit applies the filter rules in order: self-parent, include pattern, dirs-only, lock file.
func (filter *EntryFilter) Admit(entry walker.Entry, parent string) bool {
	return filter.admit(entry, parent, true)
}

// AdmitContent applies every rule except dirs-only. Emptiness is judged on content,
// so hiding files from the display does not make their directories empty.
func (filter *EntryFilter) AdmitContent(entry walker.Entry, parent string) bool {
	return filter.admit(entry, parent, false)
}

func (filter *EntryFilter) admit(entry walker.Entry, parent string, honorDirsOnly bool) bool {
	if filepath.Clean(entry.Path) == filepath.Clean(parent) {
		return false
	}
	if filter.includeGlob != nil {
		if entry.IsRegular && !filter.matches(entry.Path) {
			return false
		}
		if entry.IsDir && !filter.containsMatch(entry.Path) {
			return false
		}
	}
	if honorDirsOnly && filter.config.DirsOnly && !entry.IsDir {
		return false
	}
	if !filter.config.IncludeLocks && entry.Name == types.LockFileName {
		return false
	}
	return true
}

func (filter *EntryFilter) matches(path string) bool {
	return filter.includeGlob.Match(filepath.ToSlash(path))
}

// containsMatch reports whether directory holds a matching regular file at any depth.
// The scan ignores the depth limit and is memoized per directory.
func (filter *EntryFilter) containsMatch(directory string) bool {
	key := filepath.Clean(directory)
	if cached, ok := filter.containsCache[key]; ok {
		return cached
	}
	filter.containsCache[key] = false

	entries, listError := filter.lister.List(directory)
	if listError != nil {
		filter.logger.Debug("skipping directory during include scan", zap.String("path", directory), zap.Error(listError))
		return false
	}
	found := false
	for _, entry := range entries {
		if filepath.Clean(entry.Path) == key {
			continue
		}
		if entry.IsRegular && filter.matches(entry.Path) {
			found = true
			break
		}
		if entry.IsDir && filter.containsMatch(entry.Path) {
			found = true
			break
		}
	}
	filter.containsCache[key] = found
	return found
}
