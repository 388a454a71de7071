package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/sdir/internal/commands"
	"github.com/temirov/sdir/internal/types"
	"github.com/temirov/sdir/internal/walker"
)

var defaultWalkOptions = types.WalkOptions{
	UseGitignore:  true,
	UseIgnoreFile: true,
	ShowHidden:    true,
}

// writeTree creates files relative to root. Keys ending in "/" create directories.
func writeTree(testingHandle *testing.T, root string, entries map[string]string) {
	testingHandle.Helper()
	for relativePath, content := range entries {
		fullPath := filepath.Join(root, filepath.FromSlash(relativePath))
		if relativePath[len(relativePath)-1] == '/' {
			require.NoError(testingHandle, os.MkdirAll(fullPath, 0o755))
			continue
		}
		require.NoError(testingHandle, os.MkdirAll(filepath.Dir(fullPath), 0o755))
		require.NoError(testingHandle, os.WriteFile(fullPath, []byte(content), 0o644))
	}
}

func newBuilder(testingHandle *testing.T, root string, config types.TraversalConfig) *commands.TreeBuilder {
	testingHandle.Helper()
	lister := walker.NewIgnoreLister(root, defaultWalkOptions, nil)
	builder, builderError := commands.NewTreeBuilder(&config, lister, nil)
	require.NoError(testingHandle, builderError)
	return builder
}

func intPointer(value int) *int {
	return &value
}

// relativeNames flattens a tree into slash separated paths relative to root, in display order.
func relativeNames(testingHandle *testing.T, root string, node *types.TreeNode) []string {
	testingHandle.Helper()
	var names []string
	var visit func(*types.TreeNode)
	visit = func(current *types.TreeNode) {
		for _, child := range current.ChildNodes() {
			relativePath, relError := filepath.Rel(root, child.Path)
			require.NoError(testingHandle, relError)
			names = append(names, filepath.ToSlash(relativePath))
			visit(child)
		}
	}
	visit(node)
	return names
}

func findNode(node *types.TreeNode, path string) *types.TreeNode {
	if node.Path == path {
		return node
	}
	for _, child := range node.ChildNodes() {
		if found := findNode(child, path); found != nil {
			return found
		}
	}
	return nil
}
