package images

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
)

// Local stores images in <root>/images on the local filesystem.
type Local struct {
	root string
}

var _ Store = (*Local)(nil)

// NewLocal returns a Local store rooted at root (the data directory).
func NewLocal(root string) (*Local, error) {
	if root == "" {
		root = "."
	}
	if err := os.MkdirAll(filepath.Join(root, Dir), 0o755); err != nil {
		return nil, fmt.Errorf("creating image dir: %w", err)
	}
	return &Local{root: root}, nil
}

// Save writes r to <root>/images/<name>, overwriting any existing file.
func (l *Local) Save(_ context.Context, name string, r io.Reader) (string, error) {
	stored := StoredPath(name)
	f, err := os.Create(l.resolve(stored))
	if err != nil {
		return "", fmt.Errorf("creating image: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return "", fmt.Errorf("writing image: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing image: %w", err)
	}
	return stored, nil
}

// Open opens the stored image for reading.
func (l *Local) Open(_ context.Context, stored string) (io.ReadCloser, error) {
	if stored == "" {
		return nil, ErrNoImage
	}
	f, err := os.Open(l.resolve(stored))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoImage
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Check opens the image and decodes its header as PNG or JPEG.
func (l *Local) Check(ctx context.Context, stored string) error {
	rc, err := l.Open(ctx, stored)
	if err != nil {
		return err
	}
	defer rc.Close()

	if _, _, err := image.DecodeConfig(rc); err != nil {
		return fmt.Errorf("decoding %s: %w", stored, err)
	}
	return nil
}

// resolve maps a stored slash path onto the filesystem. Relative paths are
// taken from the data directory, matching how they were recorded.
func (l *Local) resolve(stored string) string {
	p := filepath.FromSlash(stored)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(l.root, p)
}
