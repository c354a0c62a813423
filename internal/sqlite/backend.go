// Package sqlite implements the SQLite record store for recipebox.
// Records live in one table ordered by an autoincrement sequence; a record's
// position is its rank in that order, so positional semantics match the JSON
// store exactly.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/recipebox/pkg/types"
)

// FileName is the database file name inside the data directory.
const FileName = "recipes.db"

// Store is a types.Store backed by SQLite.
type Store struct {
	mu     sync.Mutex
	db     *sql.DB
	path   string
	logger *slog.Logger
}

var _ types.Store = (*Store)(nil)

// Open opens (creating if needed) the database in dataDir, applies the schema
// and seeds the category table.
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

	path := filepath.Join(dataDir, FileName)
	db, err := sql.Open("sqlite", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying schema: %w", err)
		}
	}
	if err := seedCategories(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, path: path, logger: logger}, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Load returns every record ordered by insertion sequence.
func (s *Store) Load() ([]types.Recipe, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query("SELECT title, category, ingredients, steps, image FROM recipes ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("loading recipes: %w", err)
	}
	defer rows.Close()

	records := []types.Recipe{}
	for rows.Next() {
		r, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("loading recipes: %w", err)
	}
	s.logger.Debug("loaded recipes", "path", s.path, "count", len(records))
	return records, nil
}

// Append inserts r after every existing record. The category is stored as
// given.
func (s *Store) Append(r types.Recipe) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	if err := insertRecipe(db, r); err != nil {
		return err
	}
	s.logger.Debug("appended recipe", "title", r.Title)
	return nil
}

// Delete removes the record at position in sequence order.
func (s *Store) Delete(position int) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin delete: %w", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRow("SELECT COUNT(*) FROM recipes").Scan(&count); err != nil {
		return fmt.Errorf("counting recipes: %w", err)
	}
	if position < 0 || position >= count {
		return fmt.Errorf("delete %d of %d: %w", position, count, types.ErrIndexOutOfRange)
	}

	_, err = tx.Exec(
		"DELETE FROM recipes WHERE seq = (SELECT seq FROM recipes ORDER BY seq LIMIT 1 OFFSET ?)",
		position)
	if err != nil {
		return fmt.Errorf("deleting recipe: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete: %w", err)
	}
	s.logger.Debug("deleted recipe", "position", position)
	return nil
}

// Import appends records in one transaction. Either all rows land or none do.
func (s *Store) Import(records []types.Recipe) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	for i, r := range records {
		if err := insertRecipe(tx, r); err != nil {
			return fmt.Errorf("importing record %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	s.logger.Debug("imported recipes", "count", len(records))
	return nil
}

// Categories returns the seeded category names in display order.
func (s *Store) Categories() ([]string, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	return seededCategories(db)
}

// Close closes the database. Idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Store) conn() (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil, types.ErrStoreClosed
	}
	return s.db, nil
}

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func insertRecipe(e execer, r types.Recipe) error {
	r = r.Normalized()
	ingredients, err := json.Marshal(r.Ingredients)
	if err != nil {
		return fmt.Errorf("encoding ingredients: %w", err)
	}
	_, err = e.Exec(
		"INSERT INTO recipes (title, category, ingredients, steps, image) VALUES (?, ?, ?, ?, ?)",
		r.Title, r.Category, string(ingredients), r.Steps, r.ImagePath)
	if err != nil {
		return fmt.Errorf("inserting recipe: %w", err)
	}
	return nil
}

func scanRecipe(rows *sql.Rows) (types.Recipe, error) {
	var r types.Recipe
	var ingredients string
	if err := rows.Scan(&r.Title, &r.Category, &ingredients, &r.Steps, &r.ImagePath); err != nil {
		return r, fmt.Errorf("scanning recipe: %w", err)
	}
	r.Ingredients = []string{}
	if err := json.Unmarshal([]byte(ingredients), &r.Ingredients); err != nil {
		return r, fmt.Errorf("parsing ingredients: %w", err)
	}
	return r, nil
}
