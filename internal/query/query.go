// Package query filters, searches and paginates recipe lists in memory.
// Every function is pure: category, query text, page and page size are
// explicit parameters and nothing is remembered between calls.
package query

import (
	"strings"

	"github.com/mesh-intelligence/recipebox/pkg/types"
)

// MatchesCategory reports whether r belongs to category. CategoryAll matches
// every record; any other value must equal r.Category exactly.
func MatchesCategory(r types.Recipe, category string) bool {
	return category == types.CategoryAll || r.Category == category
}

// MatchesText reports whether q occurs, ignoring case, in r's title or in
// any of its ingredients. An empty q matches everything.
func MatchesText(r types.Recipe, q string) bool {
	q = strings.ToLower(q)
	if strings.Contains(strings.ToLower(r.Title), q) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing), q) {
			return true
		}
	}
	return false
}

// FilterByCategory returns the items whose recipe category equals category,
// preserving order. CategoryAll returns items unchanged. recipe extracts the
// record from an item; Identity serves plain recipe lists.
func FilterByCategory[T any](items []T, category string, recipe func(T) types.Recipe) []T {
	if category == types.CategoryAll {
		return items
	}
	return filter(items, func(it T) bool { return MatchesCategory(recipe(it), category) })
}

// Search returns the items whose recipe matches q by title or ingredient,
// ignoring case and preserving order.
func Search[T any](items []T, q string, recipe func(T) types.Recipe) []T {
	return filter(items, func(it T) bool { return MatchesText(recipe(it), q) })
}

// Identity is the recipe accessor for []types.Recipe.
func Identity(r types.Recipe) types.Recipe { return r }

func filter[T any](items []T, keep func(T) bool) []T {
	out := []T{}
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
