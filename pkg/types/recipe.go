package types

import (
	"strings"
)

// Recipe is one catalog entry. The JSON tags define the storage file format.
type Recipe struct {
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Ingredients []string `json:"ingredients"`
	Steps       string   `json:"steps"`
	ImagePath   string   `json:"image"`
}

// Validate checks the fields a new record must carry: a non-blank title,
// an enumerated category, and an image path.
func (r Recipe) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return ErrInvalidTitle
	}
	if !ValidCategory(r.Category) {
		return ErrInvalidCategory
	}
	if r.ImagePath == "" {
		return ErrImageRequired
	}
	return nil
}

// Normalized returns a copy whose Ingredients slice is never nil, so an
// empty list serializes as [] rather than null.
func (r Recipe) Normalized() Recipe {
	if r.Ingredients == nil {
		r.Ingredients = []string{}
	}
	return r
}

// ParseIngredients splits comma separated input into trimmed tokens.
// Empty tokens (blank input, doubled or trailing commas) are dropped.
func ParseIngredients(raw string) []string {
	out := []string{}
	for tok := range strings.SplitSeq(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		out = append(out, tok)
	}
	return out
}
