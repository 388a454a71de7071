package commands

import "github.com/temirov/sdir/internal/types"

// ContentCollector accumulates (path, content) pairs in traversal order.
type ContentCollector struct {
	entries []types.FileContent
}

// Add records content for path.
func (collector *ContentCollector) Add(path string, content string) {
	collector.entries = append(collector.entries, types.FileContent{Path: path, Content: content})
}

// Observe records the content carried by a file event, if any.
func (collector *ContentCollector) Observe(event TreeEvent) {
	if event.Kind != TreeEventFile || event.File == nil || !event.File.HasContent {
		return
	}
	collector.Add(event.File.Path, event.File.Content)
}

// Entries returns the collected pairs in insertion order.
func (collector *ContentCollector) Entries() []types.FileContent {
	return collector.entries
}

func (collector *ContentCollector) Len() int {
	return len(collector.entries)
}
