package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/recipebox/internal/storetest"
	"github.com/mesh-intelligence/recipebox/pkg/types"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreContract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) types.Store {
		return openTemp(t)
	})
}

func TestOpenCreatesDatabase(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	s, err := Open(dir, nil)
	require.NoError(t, err)
	defer s.Close()

	_, err = os.Stat(filepath.Join(dir, FileName))
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, FileName), s.Path())
}

func TestReopenKeepsRecords(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir, nil)
	require.NoError(t, err)
	for _, r := range storetest.Numbered(3) {
		require.NoError(t, s.Append(r))
	}
	require.NoError(t, s.Close())

	s, err = Open(dir, nil)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, storetest.Numbered(3), got)
}

func TestPositionsSurviveSequenceGaps(t *testing.T) {
	s := openTemp(t)
	records := storetest.Numbered(4)
	for _, r := range records {
		require.NoError(t, s.Append(r))
	}

	// Deleting from the middle leaves a hole in seq; positions must still
	// be dense ranks.
	require.NoError(t, s.Delete(1))
	require.NoError(t, s.Delete(1))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, []types.Recipe{records[0], records[3]}, got)

	require.NoError(t, s.Append(records[1]))
	require.NoError(t, s.Delete(1))
	got, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, []types.Recipe{records[0], records[1]}, got)
}

func TestCategoryIsNotConstrained(t *testing.T) {
	s := openTemp(t)
	r := storetest.Soup()
	r.Category = "Dessert"

	require.NoError(t, s.Append(r))
	require.NoError(t, s.Import([]types.Recipe{r}))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, []types.Recipe{r, r}, got)

	names, err := s.Categories()
	require.NoError(t, err)
	assert.NotContains(t, names, "Dessert", "stored records do not extend the enumeration")
}

func TestImport(t *testing.T) {
	s := openTemp(t)
	require.NoError(t, s.Append(storetest.Soup()))

	records := storetest.Numbered(5)
	require.NoError(t, s.Import(records))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, append([]types.Recipe{storetest.Soup()}, records...), got)
}

func TestImportIsAllOrNothing(t *testing.T) {
	s := openTemp(t)
	_, err := s.db.Exec(`CREATE TRIGGER reject_recipe_2 BEFORE INSERT ON recipes
		WHEN NEW.title = 'Recipe 2'
		BEGIN SELECT RAISE(ABORT, 'rejected'); END;`)
	require.NoError(t, err)

	err = s.Import(storetest.Numbered(3))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "importing record 2")

	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCategoriesSeeded(t *testing.T) {
	s := openTemp(t)
	got, err := s.Categories()
	require.NoError(t, err)
	assert.Equal(t, types.Categories, got)

	// Seeding again on reopen does not duplicate rows.
	require.NoError(t, seedCategories(s.db))
	got, err = s.Categories()
	require.NoError(t, err)
	assert.Len(t, got, len(types.Categories))
}

func TestClosedStore(t *testing.T) {
	s, err := Open(t.TempDir(), nil)
	require.NoError(t, err)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close(), "Close is idempotent")

	_, err = s.Load()
	assert.ErrorIs(t, err, types.ErrStoreClosed)
	assert.ErrorIs(t, s.Append(storetest.Soup()), types.ErrStoreClosed)
	assert.ErrorIs(t, s.Delete(0), types.ErrStoreClosed)
}
