package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/recipebox/pkg/types"
)

func sample() []types.Recipe {
	return []types.Recipe{
		{Title: "Grilled chicken", Category: types.CategoryGrilled, Ingredients: []string{"chicken", "lemon"}},
		{Title: "Chocolate cake", Category: types.CategoryDesserts, Ingredients: []string{"Flour", "cocoa", "sugar"}},
		{Title: "Fruit salad", Category: types.CategorySalads, Ingredients: []string{"apple", "Sugar syrup"}},
		{Title: "Brownies", Category: types.CategoryDesserts, Ingredients: []string{"cocoa", "butter"}},
		{Title: "Near miss", Category: "Dessert", Ingredients: []string{"cream"}},
	}
}

func titles(records []types.Recipe) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Title
	}
	return out
}

func TestFilterByCategory(t *testing.T) {
	tests := []struct {
		name     string
		category string
		want     []string
	}{
		{name: "exact match only", category: types.CategoryDesserts, want: []string{"Chocolate cake", "Brownies"}},
		{name: "single match", category: types.CategoryGrilled, want: []string{"Grilled chicken"}},
		{name: "no match", category: types.CategoryRice, want: []string{}},
		{name: "case sensitive", category: "desserts", want: []string{}},
		{name: "all passes through", category: types.CategoryAll, want: titles(sample())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByCategory(sample(), tt.category, Identity)
			assert.Equal(t, tt.want, titles(got))
		})
	}
}

func TestFilterByCategoryExcludesNearMatches(t *testing.T) {
	for _, r := range FilterByCategory(sample(), types.CategoryDesserts, Identity) {
		assert.Equal(t, types.CategoryDesserts, r.Category)
		assert.NotEqual(t, "Dessert", r.Category)
	}
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "upper case query matches lower case title", query: "CHICKEN", want: []string{"Grilled chicken"}},
		{name: "matches ingredient", query: "cocoa", want: []string{"Chocolate cake", "Brownies"}},
		{name: "ingredient case insensitive", query: "sugar", want: []string{"Chocolate cake", "Fruit salad"}},
		{name: "substring of title", query: "salad", want: []string{"Fruit salad"}},
		{name: "no match", query: "tofu", want: []string{}},
		{name: "empty query matches all", query: "", want: titles(sample())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(sample(), tt.query, Identity)
			assert.Equal(t, tt.want, titles(got))
		})
	}
}

func TestFilterThenSearch(t *testing.T) {
	got := Search(FilterByCategory(sample(), types.CategoryDesserts, Identity), "SUGAR", Identity)
	assert.Equal(t, []string{"Chocolate cake"}, titles(got))
}

// positioned mirrors how the catalog wraps records before filtering.
type positioned struct {
	pos    int
	recipe types.Recipe
}

func TestFilterAndSearchKeepWrappedItems(t *testing.T) {
	var items []positioned
	for i, r := range sample() {
		items = append(items, positioned{pos: i, recipe: r})
	}
	recipe := func(p positioned) types.Recipe { return p.recipe }

	got := Search(FilterByCategory(items, types.CategoryDesserts, recipe), "cocoa", recipe)

	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].pos)
	assert.Equal(t, 3, got[1].pos)
}

func TestMatchers(t *testing.T) {
	r := sample()[0]
	assert.True(t, MatchesCategory(r, types.CategoryAll))
	assert.True(t, MatchesCategory(r, types.CategoryGrilled))
	assert.False(t, MatchesCategory(r, types.CategoryBaked))
	assert.True(t, MatchesText(r, "LeMoN"))
	assert.False(t, MatchesText(r, "lime"))
}

func TestPaginate(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	tests := []struct {
		name       string
		number     int
		wantNumber int
		wantStart  int
		wantEnd    int
	}{
		{name: "first page", number: 1, wantNumber: 1, wantStart: 0, wantEnd: 10},
		{name: "middle page", number: 2, wantNumber: 2, wantStart: 10, wantEnd: 20},
		{name: "last partial page", number: 3, wantNumber: 3, wantStart: 20, wantEnd: 25},
		{name: "beyond last clamps", number: 9, wantNumber: 3, wantStart: 20, wantEnd: 25},
		{name: "zero clamps to first", number: 0, wantNumber: 1, wantStart: 0, wantEnd: 10},
		{name: "negative clamps to first", number: -4, wantNumber: 1, wantStart: 0, wantEnd: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := Paginate(items, 10, tt.number)
			require.NoError(t, err)
			assert.Equal(t, 3, page.TotalPages)
			assert.Equal(t, 25, page.TotalItems)
			assert.Equal(t, tt.wantNumber, page.Number)
			assert.Equal(t, tt.wantStart, page.Offset)
			assert.Equal(t, items[tt.wantStart:tt.wantEnd], page.Items)
		})
	}
}

func TestPaginateEmpty(t *testing.T) {
	page, err := Paginate([]types.Recipe{}, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 1, page.Number)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}

func TestPaginateExactMultiple(t *testing.T) {
	page, err := Paginate(make([]int, 20), 10, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Items, 10)
}

func TestPaginateInvalidSize(t *testing.T) {
	_, err := Paginate([]int{1, 2, 3}, 0, 1)
	assert.ErrorIs(t, err, types.ErrInvalidPageSize)
}

func TestPaginateCopiesItems(t *testing.T) {
	items := []int{1, 2, 3}
	page, err := Paginate(items, 2, 1)
	require.NoError(t, err)
	page.Items[0] = 99
	assert.Equal(t, 1, items[0])
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 3, TotalPages(25, 10))
	assert.Equal(t, 5, TotalPages(25, 5))
}
