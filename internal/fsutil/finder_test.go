package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectFiles(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	for _, name := range []string{"b.hcl", "a.hcl", "notes.txt", "nested/c.hcl"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("# test"), 0o644))
	}
	explicit := filepath.Join(dir, "notes.txt")

	// --- Act ---
	files, err := CollectFiles([]string{dir, explicit, filepath.Join(dir, "a.hcl")}, ".hcl")

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.hcl"),
		filepath.Join(dir, "b.hcl"),
		filepath.Join(dir, "nested", "c.hcl"),
		explicit,
	}, files)
}

func TestCollectFiles_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := CollectFiles([]string{filepath.Join(t.TempDir(), "missing")}, ".hcl")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFindFilesByExtension_EmptyExtensionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		_, _ = FindFilesByExtension(t.TempDir(), "")
	})
}

func TestCollectFiles_SeveralExtensions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"a.yaml", "b.yml", "c.hcl"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	files, err := CollectFiles([]string{dir}, ".yaml", ".yml")

	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.yaml"), filepath.Join(dir, "b.yml")}, files)
}
