package simulator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// BlobStore writes uploaded image bytes to their storage location.
type BlobStore interface {
	Save(ctx context.Context, name string, data []byte) error
}

// DiskStore keeps uploads on the local filesystem under a single directory.
type DiskStore struct {
	dir string
}

// NewDiskStore ensures the upload directory exists and returns a store for it.
func NewDiskStore(dir string) (*DiskStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("upload dir required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir %q: %w", dir, err)
	}
	return &DiskStore{dir: dir}, nil
}

// Save writes the blob under the store directory. Name is generated by the
// service, never taken from the client.
func (s *DiskStore) Save(_ context.Context, name string, data []byte) error {
	target := filepath.Join(s.dir, filepath.Base(name))
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("writing upload %q: %w", target, err)
	}
	return nil
}
