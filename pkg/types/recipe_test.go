package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeValidate(t *testing.T) {
	valid := Recipe{
		Title:     "Soup",
		Category:  CategorySoups,
		ImagePath: "images/a.png",
	}

	tests := []struct {
		name    string
		mutate  func(r *Recipe)
		wantErr error
	}{
		{name: "valid recipe", mutate: func(r *Recipe) {}},
		{name: "empty title", mutate: func(r *Recipe) { r.Title = "" }, wantErr: ErrInvalidTitle},
		{name: "blank title", mutate: func(r *Recipe) { r.Title = "  \t" }, wantErr: ErrInvalidTitle},
		{name: "unknown category", mutate: func(r *Recipe) { r.Category = "Dessert" }, wantErr: ErrInvalidCategory},
		{name: "all sentinel is not storable", mutate: func(r *Recipe) { r.Category = CategoryAll }, wantErr: ErrInvalidCategory},
		{name: "missing image", mutate: func(r *Recipe) { r.ImagePath = "" }, wantErr: ErrImageRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			err := r.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParseIngredients(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "simple", raw: "water,salt", want: []string{"water", "salt"}},
		{name: "trims whitespace", raw: " water ,  salt  ", want: []string{"water", "salt"}},
		{name: "drops trailing comma", raw: "water, salt,", want: []string{"water", "salt"}},
		{name: "drops doubled comma", raw: "water,, salt", want: []string{"water", "salt"}},
		{name: "blank input", raw: "   ", want: []string{}},
		{name: "empty input", raw: "", want: []string{}},
		{name: "keeps inner spaces", raw: "olive oil, sea salt", want: []string{"olive oil", "sea salt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseIngredients(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.NotNil(t, got)
		})
	}
}

func TestRecipeJSONKeys(t *testing.T) {
	r := Recipe{
		Title:       "Soup",
		Category:    CategorySoups,
		Ingredients: []string{"water", "salt"},
		Steps:       "boil",
		ImagePath:   "images/a.png",
	}

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Len(t, raw, 5)
	for _, key := range []string{"title", "category", "ingredients", "steps", "image"} {
		assert.Contains(t, raw, key)
	}
}

func TestRecipeNormalized(t *testing.T) {
	r := Recipe{Title: "Toast"}.Normalized()
	require.NotNil(t, r.Ingredients)

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"ingredients":[]`)
}

func TestValidCategory(t *testing.T) {
	assert.Len(t, Categories, 16)
	for _, c := range Categories {
		assert.True(t, ValidCategory(c), c)
		assert.True(t, ValidFilterCategory(c), c)
	}

	assert.False(t, ValidCategory("Dessert"))
	assert.False(t, ValidCategory("desserts"))
	assert.False(t, ValidCategory(CategoryAll))
	assert.True(t, ValidFilterCategory(CategoryAll))
	assert.False(t, ValidFilterCategory("all"))
}
