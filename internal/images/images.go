// Package images stores uploaded recipe images and checks them at display
// time. Images are written verbatim under an "images/" prefix, named after
// the uploaded file; a second upload with the same name overwrites the first.
package images

import (
	"context"
	"errors"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Dir is the subdirectory (or key prefix) holding every stored image.
const Dir = "images"

// Errors reported by image stores.
var (
	// ErrNoImage means the record has no image path or the image is gone.
	ErrNoImage = errors.New("no image")
)

// allowedExt lists the accepted upload extensions.
var allowedExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// Store saves and retrieves image bytes.
type Store interface {
	// Save writes r under name and returns the stored path ("images/<name>")
	// to record on the recipe.
	Save(ctx context.Context, name string, r io.Reader) (string, error)

	// Open streams a stored image. Returns ErrNoImage if it does not exist.
	Open(ctx context.Context, stored string) (io.ReadCloser, error)

	// Check verifies that the image at stored can be displayed. It returns
	// ErrNoImage for an empty path or a missing image and a wrapped cause
	// for anything unreadable.
	Check(ctx context.Context, stored string) error
}

// Supported reports whether name has an accepted image extension.
func Supported(name string) bool {
	return allowedExt[strings.ToLower(filepath.Ext(name))]
}

// SanitizeName reduces an uploaded file name to its base name so it can never
// escape the image directory. A name with nothing usable left gets a
// generated UUID v7 name that keeps the original extension.
func SanitizeName(name string) string {
	base := path.Base(strings.ReplaceAll(name, `\`, "/"))
	switch base {
	case "", ".", "..", "/":
		return newName("")
	}
	if strings.HasPrefix(base, ".") && base == filepath.Ext(base) {
		// ".png": an extension with no stem.
		return newName(base)
	}
	return base
}

// StoredPath returns the recorded path for an image named name.
func StoredPath(name string) string {
	return path.Join(Dir, SanitizeName(name))
}

func newName(ext string) string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String() + ext
	}
	return id.String() + ext
}
