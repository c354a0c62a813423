// Package storetest runs the shared behavioral checks every types.Store
// backend must pass.
package storetest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/recipebox/pkg/types"
)

// Opener returns a fresh, empty store for one subtest.
type Opener func(t *testing.T) types.Store

// Soup is the example record used across store tests.
func Soup() types.Recipe {
	return types.Recipe{
		Title:       "Soup",
		Category:    types.CategorySoups,
		Ingredients: []string{"water", "salt"},
		Steps:       "boil",
		ImagePath:   "images/a.png",
	}
}

// Numbered returns n distinct records titled "Recipe 0" .. "Recipe n-1".
func Numbered(n int) []types.Recipe {
	out := make([]types.Recipe, n)
	for i := range out {
		out[i] = types.Recipe{
			Title:       fmt.Sprintf("Recipe %d", i),
			Category:    types.Categories[i%len(types.Categories)],
			Ingredients: []string{fmt.Sprintf("ingredient-%d", i)},
			Steps:       "cook",
			ImagePath:   fmt.Sprintf("images/%d.png", i),
		}
	}
	return out
}

// Run exercises open against the Store contract.
func Run(t *testing.T, open Opener) {
	t.Run("empty store loads empty", func(t *testing.T) {
		s := open(t)
		got, err := s.Load()
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("example scenario", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Append(Soup()))

		got, err := s.Load()
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, Soup(), got[0])

		require.NoError(t, s.Delete(0))
		got, err = s.Load()
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("append preserves order", func(t *testing.T) {
		s := open(t)
		records := Numbered(5)
		for _, r := range records[:4] {
			require.NoError(t, s.Append(r))
		}
		before, err := s.Load()
		require.NoError(t, err)

		require.NoError(t, s.Append(records[4]))
		after, err := s.Load()
		require.NoError(t, err)

		assert.Equal(t, append(before, records[4]), after)
	})

	t.Run("load is idempotent", func(t *testing.T) {
		s := open(t)
		for _, r := range Numbered(3) {
			require.NoError(t, s.Append(r))
		}
		first, err := s.Load()
		require.NoError(t, err)
		second, err := s.Load()
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("delete shifts later positions", func(t *testing.T) {
		records := Numbered(5)
		for i := range records {
			s := open(t)
			for _, r := range records {
				require.NoError(t, s.Append(r))
			}
			require.NoError(t, s.Delete(i))

			got, err := s.Load()
			require.NoError(t, err)

			want := append(append([]types.Recipe{}, records[:i]...), records[i+1:]...)
			assert.Equal(t, want, got, "delete(%d)", i)
		}
	})

	t.Run("delete out of range", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Append(Soup()))

		for _, pos := range []int{-1, 1, 10} {
			err := s.Delete(pos)
			assert.ErrorIs(t, err, types.ErrIndexOutOfRange, "delete(%d)", pos)
		}

		got, err := s.Load()
		require.NoError(t, err)
		assert.Len(t, got, 1, "failed delete must not modify the store")
	})

	t.Run("duplicate titles allowed", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Append(Soup()))
		require.NoError(t, s.Append(Soup()))
		got, err := s.Load()
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("nil ingredients load as empty", func(t *testing.T) {
		s := open(t)
		r := Soup()
		r.Ingredients = nil
		require.NoError(t, s.Append(r))

		got, err := s.Load()
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, []string{}, got[0].Ingredients)
	})

	t.Run("category stored verbatim", func(t *testing.T) {
		s := open(t)
		r := Soup()
		r.Category = "Dessert"
		require.NoError(t, s.Append(r))
		require.NoError(t, s.Append(Soup()))

		got, err := s.Load()
		require.NoError(t, err)
		assert.Equal(t, []types.Recipe{r, Soup()}, got)
	})
}
