// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transform

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "README.in.md", "# Project\n## Install\nrun it\n")
	out := filepath.Join(dir, "README.md")

	result, err := File(in, out, Options{})
	require.NoError(t, err)
	assert.Len(t, result.Headings, 1)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "[TOC]\n\n# Install {#install}\nrun it\n", string(data))
}

func TestFileTruncatesExistingOutput(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.md", "# Project\n")
	out := writeFile(t, dir, "README.md", "stale content that is much longer than the new output\n")

	_, err := File(in, out, Options{})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "[TOC]\n\n", string(data))
}

func TestFileMissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "README.md")

	_, err := File(filepath.Join(dir, "missing.md"), out, Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "opening input")

	_, statErr := os.Stat(out)
	assert.True(t, errors.Is(statErr, fs.ErrNotExist), "output is not created when the input cannot be opened")
}

func TestFileUnwritableOutput(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.md", "# Project\n")

	_, err := File(in, filepath.Join(dir, "no-such-dir", "README.md"), Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating output")
}

func TestFileFormatError(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.md", "Project\n## Later\n")
	out := filepath.Join(dir, "README.md")

	_, err := File(in, out, Options{})
	var fe *FormatError
	require.True(t, errors.As(err, &fe))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestFileSameInputAndOutput(t *testing.T) {
	dir := t.TempDir()
	content := "# Project\n## Install\n"
	path := writeFile(t, dir, "README.md", content)

	_, err := File(path, filepath.Join(dir, ".", "README.md"), Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "same file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data), "input must survive")
}
