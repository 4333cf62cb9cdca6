package ingest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qiwei-han/invoice-extract/internal/ingest"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestListFiles_FiltersAndWalks(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.pdf"))
	writeFile(t, filepath.Join(root, "b.txt"))
	writeFile(t, filepath.Join(root, "c.jpg"))
	writeFile(t, filepath.Join(root, "sub", "d.PDF"))
	writeFile(t, filepath.Join(root, ".hidden", "e.pdf"))
	writeFile(t, filepath.Join(root, ".dotfile.pdf"))

	files, err := ingest.ListFiles(root, nil, true)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(root, "a.pdf"),
		filepath.Join(root, "b.txt"),
		filepath.Join(root, "sub", "d.PDF"),
	}, files)
}

func TestListFiles_CustomExtensions(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.pdf"))
	writeFile(t, filepath.Join(root, "b.txt"))

	files, err := ingest.ListFiles(root, []string{".PDF"}, false)
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(root, "a.pdf")}, files)
}

func TestListFiles_EmptyRoot(t *testing.T) {
	t.Parallel()

	_, err := ingest.ListFiles("  ", nil, false)
	require.Error(t, err)
}

func TestListFiles_MissingRoot(t *testing.T) {
	t.Parallel()

	_, err := ingest.ListFiles(filepath.Join(t.TempDir(), "nope"), nil, false)
	require.Error(t, err)
}
