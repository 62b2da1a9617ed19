package textsource

import (
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

func TestExtract_PlainText(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "complaint.txt", "Complaint ID: 1\nName: A Kumar\n")

	text, err := Extract(path)
	require.NoError(t, err)
	assert.Contains(t, text, "Complaint ID: 1")
}

func TestExtract_EmptyTextFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "empty.txt", "   \n\t\n")

	_, err := Extract(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoText)
}

func TestExtract_UnsupportedExtension(t *testing.T) {
	_, err := Extract("document.docx")
	assert.Error(t, err)
}

func TestExtract_MissingFile(t *testing.T) {
	_, err := Extract(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestExtract_CorruptPDFIsIsolatedError(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "broken.pdf", "not really a pdf")

	_, err := Extract(path)
	assert.Error(t, err)
}

func TestListDocuments(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.txt", "x")
	writeFile(t, dir, "a.pdf", "x")
	writeFile(t, dir, "notes.md", "x")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	paths, err := ListDocuments(dir)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(dir, "a.pdf"), paths[0])
	assert.Equal(t, filepath.Join(dir, "b.txt"), paths[1])
}

func TestListDocuments_MissingDir(t *testing.T) {
	_, err := ListDocuments(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
