// Package storage is the blob-upload collaborator boundary. Upload failures
// are surfaced to the caller as a distinct error, never swallowed.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type Uploader interface {
	Upload(ctx context.Context, data []byte, contentType string) (string, error)
}

// DiskUploader stores blobs under a local directory served as static files.
type DiskUploader struct {
	dir string
}

func NewDiskUploader(dir string) (*DiskUploader, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskUploader{dir: dir}, nil
}

var extByContentType = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"application/pdf": ".pdf",
}

func (u *DiskUploader) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	ext, ok := extByContentType[contentType]
	if !ok {
		ext = ".bin"
	}
	name := uuid.New().String() + ext
	if err := os.WriteFile(filepath.Join(u.dir, name), data, 0644); err != nil {
		return "", fmt.Errorf("write blob: %w", err)
	}
	return "/uploads/" + name, nil
}
