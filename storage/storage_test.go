package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBucket(t *testing.T) *DiskBucket {
	t.Helper()
	b, err := NewDiskBucket(t.TempDir(), "/uploads")
	require.NoError(t, err)
	return b
}

func TestSaveAndRemove(t *testing.T) {
	b := newTestBucket(t)

	path, err := b.Save("1700000000-abc.jpg", strings.NewReader("image bytes"))
	require.NoError(t, err)
	assert.Equal(t, "1700000000-abc.jpg", path)

	data, err := os.ReadFile(filepath.Join(b.Dir(), path))
	require.NoError(t, err)
	assert.Equal(t, "image bytes", string(data))

	require.NoError(t, b.Remove(path))
	_, err = os.Stat(filepath.Join(b.Dir(), path))
	assert.True(t, os.IsNotExist(err))
}

func TestSaveRejectsTraversalNames(t *testing.T) {
	b := newTestBucket(t)
	for _, name := range []string{"", "../escape.jpg", "a/b.jpg", "..\\b.jpg"} {
		_, err := b.Save(name, strings.NewReader("x"))
		assert.Error(t, err, "name %q", name)
	}
}

func TestRemoveNoOpCases(t *testing.T) {
	b := newTestBucket(t)

	assert.NoError(t, b.Remove(""))
	assert.NoError(t, b.Remove("/placeholder.svg?height=400&width=400"))
	assert.NoError(t, b.Remove("https://cdn.example.com/old-image.jpg"))
	assert.NoError(t, b.Remove("never-stored.jpg")) // missing file is fine
}

func TestPublicURL(t *testing.T) {
	b := newTestBucket(t)

	assert.Equal(t, PlaceholderURL, b.PublicURL(""))
	assert.Equal(t, PlaceholderURL, b.PublicURL("   "))
	assert.Equal(t, "https://cdn.example.com/x.jpg", b.PublicURL("https://cdn.example.com/x.jpg"))
	assert.Equal(t, "/uploads/x.jpg", b.PublicURL("x.jpg"))
}
