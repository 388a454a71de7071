package stream_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temirov/sdir/internal/services/stream"
	"github.com/temirov/sdir/internal/types"
)

var walkOptions = types.WalkOptions{UseGitignore: true, UseIgnoreFile: true, ShowHidden: true}

func writeFile(testingHandle *testing.T, path string, content string) {
	testingHandle.Helper()
	require.NoError(testingHandle, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(testingHandle, os.WriteFile(path, []byte(content), 0o644))
}

func TestRunFileMode(testingHandle *testing.T) {
	workingDirectory := testingHandle.TempDir()
	filePath := filepath.Join(workingDirectory, "notes.txt")
	writeFile(testingHandle, filePath, "line one")

	terminal := &bytes.Buffer{}
	report, runError := stream.NewService(terminal, nil).Run(context.Background(), stream.Options{
		Paths:            []string{filePath},
		Format:           types.FormatJSON,
		WorkingDirectory: workingDirectory,
	})
	require.NoError(testingHandle, runError)

	assert.Equal(testingHandle, "./notes.txt\nline one\n", report.Buffer.String())
	assert.Equal(testingHandle, report.Buffer.String(), terminal.String())
	assert.Equal(testingHandle, 1, report.FileInputs)
}

func TestRunDirectoryText(testingHandle *testing.T) {
	root := testingHandle.TempDir()
	writeFile(testingHandle, filepath.Join(root, "a.txt"), "alpha")

	report, runError := stream.NewService(nil, nil).Run(context.Background(), stream.Options{
		Paths:            []string{root},
		Format:           types.FormatText,
		Traversal:        types.TraversalConfig{CollectContents: true},
		Walk:             walkOptions,
		WorkingDirectory: filepath.Dir(root),
	})
	require.NoError(testingHandle, runError)

	expected := "# tree structure of directory `" + filepath.Base(root) + "`\n" +
		"📁 " + root + "\n" +
		"└── 📄 a.txt\n" +
		"\n# File Contents\n" +
		"\n# " + filepath.Join(root, "a.txt") + "\nalpha\n"
	assert.Equal(testingHandle, expected, report.Buffer.String())
	assert.Zero(testingHandle, report.FileInputs)
}

func TestRunDirectoryJSONSkipsContents(testingHandle *testing.T) {
	root := testingHandle.TempDir()
	writeFile(testingHandle, filepath.Join(root, "a.txt"), "alpha")

	report, runError := stream.NewService(nil, nil).Run(context.Background(), stream.Options{
		Paths:     []string{root},
		Format:    types.FormatJSON,
		Traversal: types.TraversalConfig{CollectContents: true},
		Walk:      walkOptions,
	})
	require.NoError(testingHandle, runError)
	assert.True(testingHandle, strings.HasPrefix(report.Buffer.String(), "{\n"))
	assert.NotContains(testingHandle, report.Buffer.String(), "alpha")
}

func TestRunSinglePathErrors(testingHandle *testing.T) {
	root := testingHandle.TempDir()
	binaryPath := filepath.Join(root, "data.bin")
	writeFile(testingHandle, binaryPath, "\x00\x01")

	testCases := []struct {
		name     string
		path     string
		expected error
	}{
		{name: "missing", path: filepath.Join(root, "missing"), expected: types.ErrInputNotFound},
		{name: "binary file", path: binaryPath, expected: types.ErrRead},
	}
	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(subTestHandle *testing.T) {
			_, runError := stream.NewService(nil, nil).Run(context.Background(), stream.Options{Paths: []string{testCase.path}})
			require.ErrorIs(subTestHandle, runError, testCase.expected)
		})
	}
}

func TestRunMultiplePathsContinuesAfterFailure(testingHandle *testing.T) {
	root := testingHandle.TempDir()
	firstPath := filepath.Join(root, "first.txt")
	secondPath := filepath.Join(root, "second.txt")
	writeFile(testingHandle, firstPath, "one")
	writeFile(testingHandle, secondPath, "two\n")

	report, runError := stream.NewService(nil, nil).Run(context.Background(), stream.Options{
		Paths:            []string{firstPath, filepath.Join(root, "missing"), secondPath},
		WorkingDirectory: root,
	})
	require.NoError(testingHandle, runError)

	assert.Equal(testingHandle, "./first.txt\none\n\n./second.txt\ntwo\n", report.Buffer.String())
	assert.Equal(testingHandle, 1, report.Failed)
	assert.Equal(testingHandle, 2, report.FileInputs)
}

func TestRunHonorsCancellation(testingHandle *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, runError := stream.NewService(nil, nil).Run(ctx, stream.Options{Paths: []string{"."}})
	require.ErrorIs(testingHandle, runError, context.Canceled)
}

func TestValidatePath(testingHandle *testing.T) {
	root := testingHandle.TempDir()
	validated, validationError := stream.ValidatePath(root)
	require.NoError(testingHandle, validationError)
	assert.True(testingHandle, validated.IsDir)
	assert.Equal(testingHandle, root, validated.RawPath)
	assert.True(testingHandle, filepath.IsAbs(validated.AbsolutePath))
}
