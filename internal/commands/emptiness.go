package commands

import (
	"path/filepath"

	"go.uber.org/zap"

	"github.com/temirov/sdir/internal/walker"
)

// EmptinessClassifier reports whether a directory is effectively empty: no admitted regular
// file exists anywhere in its admitted subtree. Results are memoized for one invocation.
type EmptinessClassifier struct {
	filter *EntryFilter
	lister walker.Lister
	logger *zap.Logger
	cache  map[string]bool
}

// NewEmptinessClassifier returns a classifier sharing the filter and lister of a traversal.
func NewEmptinessClassifier(filter *EntryFilter, lister walker.Lister, logger *zap.Logger) *EmptinessClassifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmptinessClassifier{
		filter: filter,
		lister: lister,
		logger: logger,
		cache:  map[string]bool{},
	}
}

// IsEffectivelyEmpty descends the whole subtree regardless of the display depth limit.
// A directory that cannot be listed has no visible content and counts as empty.
func (classifier *EmptinessClassifier) IsEffectivelyEmpty(directory string) bool {
	key := filepath.Clean(directory)
	if cached, ok := classifier.cache[key]; ok {
		return cached
	}
	classifier.cache[key] = true

	entries, listError := classifier.lister.List(directory)
	if listError != nil {
		classifier.logger.Debug("treating unreadable directory as empty", zap.String("path", directory), zap.Error(listError))
		return true
	}

	empty := true
	for _, entry := range entries {
		if !classifier.filter.AdmitContent(entry, directory) {
			continue
		}
		if entry.IsRegular {
			empty = false
			break
		}
		if entry.IsDir && !classifier.IsEffectivelyEmpty(entry.Path) {
			empty = false
			break
		}
	}
	classifier.cache[key] = empty
	return empty
}
