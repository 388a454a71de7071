package commands

import (
	"go.uber.org/zap"

	"github.com/temirov/sdir/internal/types"
	"github.com/temirov/sdir/internal/walker"
)

// TreeBuilder walks one directory root under a fixed traversal configuration.
// A builder is single-use per invocation: its filter and emptiness caches assume
// the filesystem does not change while it runs.
type TreeBuilder struct {
	config     *types.TraversalConfig
	lister     walker.Lister
	filter     *EntryFilter
	classifier *EmptinessClassifier
	logger     *zap.Logger
}

// NewTreeBuilder wires the entry filter and emptiness classifier around lister.
func NewTreeBuilder(config *types.TraversalConfig, lister walker.Lister, logger *zap.Logger) (*TreeBuilder, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	filter, filterError := NewEntryFilter(config, lister, logger)
	if filterError != nil {
		return nil, filterError
	}
	return &TreeBuilder{
		config:     config,
		lister:     lister,
		filter:     filter,
		classifier: NewEmptinessClassifier(filter, lister, logger),
		logger:     logger,
	}, nil
}

// Config returns the traversal configuration the builder was created with.
func (treeBuilder *TreeBuilder) Config() *types.TraversalConfig {
	return treeBuilder.config
}
