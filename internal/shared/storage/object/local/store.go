package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"hr-backend/internal/shared/storage/object"
)

// Store implements ObjectStore using the local filesystem. Files are written
// flat into baseDir, which is created lazily on first save. Storage paths are
// logical "uploads/<name>" keys so they line up with the /uploads static route
// no matter where baseDir physically lives.
type Store struct {
	baseDir string
}

// New creates a local object store rooted at baseDir.
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Save writes the reader to disk under a generated unique name and returns
// the storage path, always with forward-slash separators.
func (s *Store) Save(ctx context.Context, ext string, r io.Reader) (string, int64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return "", 0, fmt.Errorf("mkdir: %w", err)
	}

	name := object.StorageName(ext)
	f, err := os.OpenFile(filepath.Join(s.baseDir, name), os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return "", 0, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	written, err := io.Copy(f, r)
	if err != nil {
		return "", 0, fmt.Errorf("write body: %w", err)
	}

	return path.Join("uploads", name), written, nil
}

// Open opens a stored object for reading.
func (s *Store) Open(ctx context.Context, storagePath string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := path.Base(path.Clean(strings.ReplaceAll(storagePath, "\\", "/")))
	if name == "." || name == ".." || name == "/" {
		return nil, fmt.Errorf("invalid storage path")
	}

	return os.Open(filepath.Join(s.baseDir, name))
}

var _ object.ObjectStore = (*Store)(nil)
