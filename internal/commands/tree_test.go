package commands_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temirov/sdir/internal/commands"
	"github.com/temirov/sdir/internal/types"
)

func TestBuildTreeSortsChildrenByPath(testingHandle *testing.T) {
	root := testingHandle.TempDir()
	writeTree(testingHandle, root, map[string]string{
		"b.txt":       "b",
		"a.txt":       "a",
		"c/inner.txt": "inner",
		"Z.md":        "z",
	})

	tree, buildError := newBuilder(testingHandle, root, types.TraversalConfig{}).BuildTree(root)
	require.NoError(testingHandle, buildError)

	assert.Equal(testingHandle, []string{"Z.md", "a.txt", "b.txt", "c", "c/inner.txt"}, relativeNames(testingHandle, root, tree))
}

func TestBuildTreeDepthBoundary(testingHandle *testing.T) {
	root := testingHandle.TempDir()
	writeTree(testingHandle, root, map[string]string{
		"top.txt":             "top",
		"sub/nested.txt":      "nested",
		"sub/deeper/leaf.txt": "leaf",
	})

	testCases := []struct {
		name          string
		maxDepth      *int
		expectedNames []string
	}{
		{name: "zero", maxDepth: intPointer(0), expectedNames: nil},
		{name: "one", maxDepth: intPointer(1), expectedNames: []string{"sub", "top.txt"}},
		{name: "two", maxDepth: intPointer(2), expectedNames: []string{"sub", "sub/deeper", "sub/nested.txt", "top.txt"}},
		{name: "unlimited", maxDepth: nil, expectedNames: []string{"sub", "sub/deeper", "sub/deeper/leaf.txt", "sub/nested.txt", "top.txt"}},
	}

	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(subTestHandle *testing.T) {
			tree, buildError := newBuilder(subTestHandle, root, types.TraversalConfig{MaxDepth: testCase.maxDepth}).BuildTree(root)
			require.NoError(subTestHandle, buildError)
			assert.Equal(subTestHandle, testCase.expectedNames, relativeNames(subTestHandle, root, tree))
		})
	}
}

func TestBuildTreeUnexpandedDirectoryHasNoChildren(testingHandle *testing.T) {
	root := testingHandle.TempDir()
	writeTree(testingHandle, root, map[string]string{"sub/file.txt": "content"})

	tree, buildError := newBuilder(testingHandle, root, types.TraversalConfig{MaxDepth: intPointer(1)}).BuildTree(root)
	require.NoError(testingHandle, buildError)

	require.True(testingHandle, tree.IsExpanded())
	subdirectory := findNode(tree, filepath.Join(root, "sub"))
	require.NotNil(testingHandle, subdirectory)
	assert.False(testingHandle, subdirectory.IsExpanded())
	assert.False(testingHandle, subdirectory.IsEmpty, "emptiness ignores the depth limit")
}

func TestBuildTreeEmptiness(testingHandle *testing.T) {
	root := testingHandle.TempDir()
	writeTree(testingHandle, root, map[string]string{
		"hollow/":             "",
		"hollow/inner/":       "",
		"locked/Cargo.lock":   "lock",
		"full/deep/file.txt":  "x",
		"mixed/empty/":        "",
		"mixed/other/file.md": "y",
	})

	tree, buildError := newBuilder(testingHandle, root, types.TraversalConfig{}).BuildTree(root)
	require.NoError(testingHandle, buildError)

	expectations := map[string]bool{
		"hollow":       true,
		"hollow/inner": true,
		"locked":       true,
		"full":         false,
		"full/deep":    false,
		"mixed":        false,
		"mixed/empty":  true,
	}
	for relativePath, expectedEmpty := range expectations {
		node := findNode(tree, filepath.Join(root, filepath.FromSlash(relativePath)))
		require.NotNil(testingHandle, node, relativePath)
		assert.Equal(testingHandle, expectedEmpty, node.IsEmpty, relativePath)
	}
	assert.False(testingHandle, tree.IsEmpty)

	emptyRoot := testingHandle.TempDir()
	emptyTree, emptyError := newBuilder(testingHandle, emptyRoot, types.TraversalConfig{}).BuildTree(emptyRoot)
	require.NoError(testingHandle, emptyError)
	assert.True(testingHandle, emptyTree.IsEmpty)
	assert.True(testingHandle, emptyTree.IsExpanded())
	assert.Empty(testingHandle, emptyTree.ChildNodes())
}

func TestBuildTreeLockFileExclusion(testingHandle *testing.T) {
	root := testingHandle.TempDir()
	writeTree(testingHandle, root, map[string]string{
		"Cargo.lock":        "lock",
		"Cargo.toml":        "toml",
		"nested/Cargo.lock": "lock",
	})

	excluded, excludedError := newBuilder(testingHandle, root, types.TraversalConfig{}).BuildTree(root)
	require.NoError(testingHandle, excludedError)
	assert.Equal(testingHandle, []string{"Cargo.toml", "nested"}, relativeNames(testingHandle, root, excluded))

	included, includedError := newBuilder(testingHandle, root, types.TraversalConfig{IncludeLocks: true}).BuildTree(root)
	require.NoError(testingHandle, includedError)
	assert.Equal(testingHandle, []string{"Cargo.lock", "Cargo.toml", "nested", "nested/Cargo.lock"}, relativeNames(testingHandle, root, included))
	assert.False(testingHandle, findNode(included, filepath.Join(root, "nested")).IsEmpty)
}

func TestBuildTreeIncludePattern(testingHandle *testing.T) {
	root := testingHandle.TempDir()
	writeTree(testingHandle, root, map[string]string{
		"src/main.rs":         "fn main() {}",
		"src/lib/util.rs":     "pub fn f() {}",
		"src/notes.txt":       "notes",
		"docs/readme.md":      "readme",
		"empty/":              "",
		"deep/a/b/c/found.rs": "x",
	})

	for _, pattern := range []string{"*.rs", ".rs"} {
		testingHandle.Run(pattern, func(subTestHandle *testing.T) {
			tree, buildError := newBuilder(subTestHandle, root, types.TraversalConfig{IncludePattern: pattern}).BuildTree(root)
			require.NoError(subTestHandle, buildError)
			assert.Equal(subTestHandle, []string{
				"deep", "deep/a", "deep/a/b", "deep/a/b/c", "deep/a/b/c/found.rs",
				"src", "src/lib", "src/lib/util.rs", "src/main.rs",
			}, relativeNames(subTestHandle, root, tree))
		})
	}

	limited, limitedError := newBuilder(testingHandle, root, types.TraversalConfig{IncludePattern: "*.rs", MaxDepth: intPointer(1)}).BuildTree(root)
	require.NoError(testingHandle, limitedError)
	assert.Equal(testingHandle, []string{"deep", "src"}, relativeNames(testingHandle, root, limited), "matches below the depth limit still admit their ancestors")
}

func TestBuildTreeDirsOnly(testingHandle *testing.T) {
	root := testingHandle.TempDir()
	writeTree(testingHandle, root, map[string]string{
		"top.txt":        "top",
		"sub/nested.txt": "nested",
		"void/":          "",
	})

	tree, buildError := newBuilder(testingHandle, root, types.TraversalConfig{DirsOnly: true}).BuildTree(root)
	require.NoError(testingHandle, buildError)

	assert.Equal(testingHandle, []string{"sub", "void"}, relativeNames(testingHandle, root, tree))
	assert.False(testingHandle, findNode(tree, filepath.Join(root, "sub")).IsEmpty, "hidden files still count as content")
	assert.True(testingHandle, findNode(tree, filepath.Join(root, "void")).IsEmpty)
}

func TestBuildTreeIsIdempotent(testingHandle *testing.T) {
	root := testingHandle.TempDir()
	writeTree(testingHandle, root, map[string]string{
		"a/b/c.txt": "c",
		"a/d/":      "",
		"e.go":      "package e",
	})

	first, firstError := newBuilder(testingHandle, root, types.TraversalConfig{}).BuildTree(root)
	require.NoError(testingHandle, firstError)
	second, secondError := newBuilder(testingHandle, root, types.TraversalConfig{}).BuildTree(root)
	require.NoError(testingHandle, secondError)

	assert.Equal(testingHandle, first, second)
}

func TestTreeBuilderWalkRejectsFiles(testingHandle *testing.T) {
	root := testingHandle.TempDir()
	writeTree(testingHandle, root, map[string]string{"only.txt": "x"})

	_, buildError := newBuilder(testingHandle, root, types.TraversalConfig{}).BuildTree(filepath.Join(root, "only.txt"))
	require.ErrorIs(testingHandle, buildError, types.ErrInputNotFileOrDir)
}

func TestTreeAssemblerRejectsUnbalancedEvents(testingHandle *testing.T) {
	assembler := &commands.TreeAssembler{}
	leaveError := assembler.Handle(commands.TreeEvent{Kind: commands.TreeEventLeaveDir, Directory: &commands.TreeDirectoryEvent{}})
	require.Error(testingHandle, leaveError)
}
