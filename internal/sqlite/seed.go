package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/recipebox/pkg/types"
)

// seedCategories inserts the category enumeration. Existing rows are left
// alone, so it runs on every open.
func seedCategories(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR IGNORE INTO categories (name, ordinal) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("prepare seed: %w", err)
	}
	defer stmt.Close()

	for i, name := range types.Categories {
		if _, err := stmt.Exec(name, i); err != nil {
			return fmt.Errorf("seeding category %s: %w", name, err)
		}
	}
	return tx.Commit()
}

// seededCategories returns category names in ordinal order.
func seededCategories(db *sql.DB) ([]string, error) {
	rows, err := db.Query("SELECT name FROM categories ORDER BY ordinal")
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
