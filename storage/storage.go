package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// PlaceholderURL is returned for records that have no stored image.
const PlaceholderURL = "/placeholder.svg"

// Bucket stores uploaded objects under bare paths. PublicURL resolves a bare
// path to something a browser can fetch; Remove treats placeholder and
// already-qualified URLs as a successful no-op so legacy records can be
// deleted without errors.
type Bucket interface {
	Save(name string, r io.Reader) (string, error)
	Remove(path string) error
	PublicURL(path string) string
}

// DiskBucket keeps objects in a local directory served as static files.
type DiskBucket struct {
	dir     string
	baseURL string
}

// NewDiskBucket ensures the directory exists and returns a bucket serving
// its contents under baseURL (e.g. "/uploads").
func NewDiskBucket(dir, baseURL string) (*DiskBucket, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskBucket{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Dir is the directory backing the bucket, for static file serving.
func (b *DiskBucket) Dir() string {
	return b.dir
}

// Save writes the object and returns its bare path within the bucket.
func (b *DiskBucket) Save(name string, r io.Reader) (string, error) {
	if name == "" || strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return "", errors.New("invalid object name")
	}

	f, err := os.Create(filepath.Join(b.dir, name))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Sync(); err != nil {
		return "", err
	}
	return name, nil
}

// Remove deletes a stored object. Empty paths, placeholder references, and
// fully qualified URLs succeed without touching disk; a missing file is not
// an error.
func (b *DiskBucket) Remove(path string) error {
	if path == "" || strings.Contains(path, "placeholder.svg") || strings.HasPrefix(path, "http") {
		return nil
	}
	if strings.ContainsAny(path, "/\\") || strings.Contains(path, "..") {
		return errors.New("invalid object path")
	}
	if err := os.Remove(filepath.Join(b.dir, path)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// PublicURL resolves a bare path to a servable URL. Empty paths get the
// placeholder; already-qualified URLs pass through for legacy records.
func (b *DiskBucket) PublicURL(path string) string {
	if strings.TrimSpace(path) == "" {
		return PlaceholderURL
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return b.baseURL + "/" + path
}
