package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *ImageStore {
	t.Helper()
	return NewImageStore(t.TempDir(), "/static/images")
}

func TestSave_WritesBytesAndReturnsPublicPath(t *testing.T) {
	store := newTestStore(t)

	path, err := store.Save(strings.NewReader("raw image bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "/static/images/"))
	assert.True(t, strings.HasSuffix(path, ".jpg"))

	data, err := os.ReadFile(filepath.Join(store.Dir, filepath.Base(path)))
	require.NoError(t, err)
	assert.Equal(t, "raw image bytes", string(data))
}

func TestSave_SameMicrosecondOverwrites(t *testing.T) {
	store := newTestStore(t)
	fixed := time.Date(2024, 5, 1, 12, 30, 0, 123456000, time.UTC)
	store.now = func() time.Time { return fixed }

	first, err := store.Save(strings.NewReader("first"))
	require.NoError(t, err)
	second, err := store.Save(strings.NewReader("second"))
	require.NoError(t, err)

	// identical clock reading yields the same name, later write wins
	assert.Equal(t, first, second)
	assert.Equal(t, "/static/images/20240501-123000123456.jpg", second)

	data, err := os.ReadFile(filepath.Join(store.Dir, filepath.Base(second)))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestSave_MissingDirFails(t *testing.T) {
	store := NewImageStore(filepath.Join(t.TempDir(), "does-not-exist"), "/static/images")

	_, err := store.Save(strings.NewReader("x"))
	assert.Error(t, err)
}
