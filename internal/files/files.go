// Package files provides the external file storage capability behind the
// document repository and equipment images.
package files

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store uploads file content and returns the URL it is reachable under.
type Store interface {
	Upload(ctx context.Context, name string, r io.Reader) (string, error)
}

// DiskStore writes uploads under a local directory and addresses them
// relative to a base URL.
type DiskStore struct {
	Dir     string
	BaseURL string
}

// NewDiskStore creates the upload directory if needed.
func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &DiskStore{Dir: dir, BaseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Upload stores the content under a unique name derived from the original
// filename and returns its URL.
func (s *DiskStore) Upload(ctx context.Context, name string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	stored := uuid.New().String() + "-" + sanitize(name)
	path := filepath.Join(s.Dir, stored)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	return s.BaseURL + "/" + stored, nil
}

// sanitize strips path separators and anything else unsafe in a filename.
func sanitize(name string) string {
	name = filepath.Base(name)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
