package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}

func TestFindFilesByExtension(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "b.csv"))
	touch(t, filepath.Join(root, "a.csv"))
	touch(t, filepath.Join(root, "notes.txt"))
	touch(t, filepath.Join(root, "mycsv"))
	touch(t, filepath.Join(root, ".csv"))
	touch(t, filepath.Join(root, "nested", "c.csv"))

	for _, ext := range []string{"csv", ".csv"} {
		files, err := FindFilesByExtension(root, ext)
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(root, "a.csv"),
			filepath.Join(root, "b.csv"),
			filepath.Join(root, "nested", "c.csv"),
		}, files)
	}
}

func TestFindFilesByExtension_Errors(t *testing.T) {
	_, err := FindFilesByExtension(t.TempDir(), "")
	assert.Error(t, err)

	_, err = FindFilesByExtension(filepath.Join(t.TempDir(), "missing"), "csv")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCollectFiles(t *testing.T) {
	root := t.TempDir()
	a := filepath.Join(root, "conf", "a.hcl")
	b := filepath.Join(root, "conf", "b.hcl")
	single := filepath.Join(root, "z.hcl")
	touch(t, a)
	touch(t, b)
	touch(t, single)
	touch(t, filepath.Join(root, "conf", "notes.toml"))

	files, err := CollectFiles([]string{
		single,
		filepath.Join(root, "conf"),
		filepath.Join(root, "missing"),
		filepath.Join(root, "conf", "notes.toml"),
		a,
	}, "hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{single, a, b}, files)
}
