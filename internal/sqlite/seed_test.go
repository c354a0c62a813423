package sqlite

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/recipebox/pkg/types"
)

// setupTestDB opens a bare database in a temp dir and applies the schema
// without seeding.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), FileName)
	db, err := sql.Open("sqlite", "file:"+path)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	for _, ddl := range schemaDDL {
		_, err := db.Exec(ddl)
		require.NoError(t, err)
	}
	return db
}

func TestSeedCategories(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, db *sql.DB)
	}{
		{
			name:  "empty table",
			setup: func(t *testing.T, db *sql.DB) {},
		},
		{
			name: "already seeded",
			setup: func(t *testing.T, db *sql.DB) {
				require.NoError(t, seedCategories(db))
			},
		},
		{
			name: "partially seeded",
			setup: func(t *testing.T, db *sql.DB) {
				_, err := db.Exec("INSERT INTO categories (name, ordinal) VALUES (?, ?)", types.CategorySoups, 10)
				require.NoError(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			tt.setup(t, db)

			require.NoError(t, seedCategories(db))

			var count int
			require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count))
			assert.Equal(t, len(types.Categories), count)

			names, err := seededCategories(db)
			require.NoError(t, err)
			assert.ElementsMatch(t, types.Categories, names)
		})
	}
}
