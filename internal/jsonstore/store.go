// Package jsonstore implements the default recipebox record store: the whole
// catalog is one JSON array in recipes.json, read in full on every call and
// rewritten in full on every mutation.
package jsonstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/recipebox/pkg/types"
)

// FileName is the storage file name inside the data directory.
const FileName = "recipes.json"

// indent matches the 4-space layout other tools expect when reading the
// file directly.
const indent = "    "

// Store is a types.Store backed by a single JSON file.
type Store struct {
	path   string
	logger *slog.Logger
}

var _ types.Store = (*Store)(nil)

// Open returns a Store rooted at dataDir, creating the directory if needed.
// The storage file itself is created lazily by the first mutation.
func Open(dataDir string, logger *slog.Logger) (*Store, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{
		path:   filepath.Join(dataDir, FileName),
		logger: logger,
	}, nil
}

// Path returns the storage file path.
func (s *Store) Path() string { return s.path }

// Load reads the full record list. A missing file is an empty catalog.
func (s *Store) Load() ([]types.Recipe, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []types.Recipe{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	records := []types.Recipe{}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path, err)
	}
	s.logger.Debug("loaded recipes", "path", s.path, "count", len(records))
	return records, nil
}

// Append loads the list, adds r at the end, and rewrites the file.
func (s *Store) Append(r types.Recipe) error {
	records, err := s.Load()
	if err != nil {
		return err
	}
	records = append(records, r)
	if err := s.save(records); err != nil {
		return err
	}
	s.logger.Debug("appended recipe", "title", r.Title, "position", len(records)-1)
	return nil
}

// Delete loads the list, removes the record at position, and rewrites the file.
func (s *Store) Delete(position int) error {
	records, err := s.Load()
	if err != nil {
		return err
	}
	if position < 0 || position >= len(records) {
		return fmt.Errorf("delete %d of %d: %w", position, len(records), types.ErrIndexOutOfRange)
	}
	removed := records[position]
	records = append(records[:position], records[position+1:]...)
	if err := s.save(records); err != nil {
		return err
	}
	s.logger.Debug("deleted recipe", "title", removed.Title, "position", position)
	return nil
}

// Replace rewrites the file with exactly records.
func (s *Store) Replace(records []types.Recipe) error {
	return s.save(records)
}

// Close is a no-op; the store holds no open handles between calls.
func (s *Store) Close() error { return nil }

func (s *Store) save(records []types.Recipe) error {
	out := make([]types.Recipe, len(records))
	for i, r := range records {
		out[i] = r.Normalized()
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding recipes: %w", err)
	}
	return writeFileAtomic(s.path, bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}
