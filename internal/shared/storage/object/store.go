package object

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"
)

// ObjectStore defines the contract for saving and retrieving uploaded files.
type ObjectStore interface {
	// Save writes the reader contents under a freshly generated storage name
	// carrying the given extension and returns the relative storage path.
	Save(ctx context.Context, ext string, r io.Reader) (storagePath string, sizeBytes int64, err error)
	Open(ctx context.Context, storagePath string) (io.ReadCloser, error)
}

// StorageName builds a collision-resistant file name from the current
// timestamp and a random integer suffix, keeping the original extension.
func StorageName(ext string) string {
	return fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), sanitizeExt(ext))
}

func sanitizeExt(ext string) string {
	ext = strings.TrimSpace(strings.ToLower(ext))
	if ext == "" || !strings.HasPrefix(ext, ".") || strings.ContainsAny(ext[1:], "./\\") {
		return ""
	}
	return ext
}
