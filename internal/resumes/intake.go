package resumes

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"

	"hr-backend/internal/shared/storage/object"
)

// MaxResumeBytes caps accepted resume uploads at 10MB.
const MaxResumeBytes = 10 << 20

var (
	// ErrInvalidFileType rejects uploads that are not PDF or Word documents.
	ErrInvalidFileType = errors.New("Invalid file type. Only PDF and Word files are allowed.")
	// ErrFileTooLarge rejects uploads over MaxResumeBytes.
	ErrFileTooLarge = errors.New("Resume file exceeds the 10MB limit.")
)

var allowedContentTypes = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
}

// Intake validates and stores uploaded resume files.
type Intake struct {
	Store object.ObjectStore
}

// NewIntake constructs an Intake backed by the given object store.
func NewIntake(store object.ObjectStore) *Intake {
	return &Intake{Store: store}
}

// Accept validates the upload's claimed content type and size, stores the
// file under a generated unique name and returns its storage path. The
// stored file is not removed if a later pipeline step fails.
func (i *Intake) Accept(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	if _, ok := allowedContentTypes[claimedContentType(fh)]; !ok {
		return "", ErrInvalidFileType
	}
	if fh.Size > MaxResumeBytes {
		return "", ErrFileTooLarge
	}

	file, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	storagePath, _, err := i.Store.Save(ctx, strings.ToLower(filepath.Ext(fh.Filename)), file)
	if err != nil {
		return "", fmt.Errorf("store resume: %w", err)
	}
	return storagePath, nil
}

func claimedContentType(fh *multipart.FileHeader) string {
	raw := fh.Header.Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(raw)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(raw))
	}
	return mediaType
}
