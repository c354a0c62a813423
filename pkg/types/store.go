package types

import "errors"

// Store persists the ordered recipe list. A record's position in the list is
// its only identifier; deleting a position shifts every later record down.
// Every mutation is a full read followed by a full rewrite, with no locking:
// concurrent writers lose updates (last writer wins).
type Store interface {
	// Load returns the full record list. A store with no backing storage
	// yet returns an empty list and no error. Malformed storage returns a
	// parse error.
	Load() ([]Recipe, error)

	// Append adds r at the end of the list.
	Append(r Recipe) error

	// Delete removes the record at position.
	// Returns ErrIndexOutOfRange if position is not in [0, len).
	Delete(position int) error

	// Close releases backend resources. Idempotent.
	Close() error
}

// Store and catalog errors.
var (
	ErrIndexOutOfRange  = errors.New("position out of range")
	ErrStoreClosed      = errors.New("store is closed")
	ErrInvalidTitle     = errors.New("title must not be empty")
	ErrInvalidCategory  = errors.New("invalid category")
	ErrImageRequired    = errors.New("image is required")
	ErrUnsupportedImage = errors.New("unsupported image type")
	ErrInvalidPageSize  = errors.New("invalid page size")
	ErrEmptySearch      = errors.New("search needs a query or a category")
)
