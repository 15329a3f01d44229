package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocal(dir)
	require.NoError(t, err)

	ref, err := store.Save("cover.JPG", strings.NewReader("jpeg bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(ref, ".JPG"), "extension preserved, got %q", ref)
	assert.NotContains(t, ref, "cover", "stored name must not leak the upload name")

	data, err := os.ReadFile(filepath.Join(dir, ref))
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(data))

	require.NoError(t, store.Remove(ref))
	_, err = os.Stat(filepath.Join(dir, ref))
	assert.True(t, os.IsNotExist(err))

	// Removing twice is not an error.
	require.NoError(t, store.Remove(ref))
}

func TestLocalSaveDistinctNames(t *testing.T) {
	store, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	a, err := store.Save("same.png", strings.NewReader("a"))
	require.NoError(t, err)
	b, err := store.Save("same.png", strings.NewReader("b"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestNewLocalCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewLocal(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
