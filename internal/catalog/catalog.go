// Package catalog implements the recipebox operations on top of a record
// store and an image store: add, list, search, show and delete. Every
// listing entry carries the record's absolute position in the full catalog,
// which is the handle delete expects.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mesh-intelligence/recipebox/internal/images"
	"github.com/mesh-intelligence/recipebox/internal/query"
	"github.com/mesh-intelligence/recipebox/pkg/types"
)

// Page size bounds.
const (
	MinPageSize     = 5
	MaxPageSize     = 50
	DefaultPageSize = 10
)

// Warning texts attached to entries whose image cannot be shown.
const (
	WarnNoImage     = "No Image"
	warnImagePrefix = "Error loading image: "
)

// Catalog serves recipe operations. It holds no per-request state.
type Catalog struct {
	store  types.Store
	images images.Store
	logger *slog.Logger
}

// New returns a Catalog over store and imgs.
func New(store types.Store, imgs images.Store, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Catalog{store: store, images: imgs, logger: logger}
}

// Entry is one record as displayed.
type Entry struct {
	Position     int          `json:"position"`
	Recipe       types.Recipe `json:"recipe"`
	ImageWarning string       `json:"image_warning,omitempty"`
}

// Listing is one page of entries.
type Listing = query.Page[Entry]

// AddInput carries a new recipe as entered: ingredients are the raw comma
// separated text and the image is the uploaded file.
type AddInput struct {
	Title       string
	Category    string
	Ingredients string
	Steps       string
	ImageName   string
	Image       io.Reader
}

// SearchInput selects records by category and text.
type SearchInput struct {
	Category string
	Query    string
	PageSize int
	Page     int
}

// categoryLister is implemented by stores that keep the enumeration
// themselves, such as the SQLite store.
type categoryLister interface {
	Categories() ([]string, error)
}

// Categories returns the category enumeration, read from the store when it
// keeps one.
func (c *Catalog) Categories() []string {
	if cl, ok := c.store.(categoryLister); ok {
		names, err := cl.Categories()
		if err == nil && len(names) > 0 {
			return names
		}
		c.logger.Warn("store categories unavailable, using built-in list", "error", err)
	}
	out := make([]string, len(types.Categories))
	copy(out, types.Categories)
	return out
}

// Add validates in, stores the image, and appends the recipe. The returned
// entry holds the new record's position.
func (c *Catalog) Add(ctx context.Context, in AddInput) (Entry, error) {
	if strings.TrimSpace(in.Title) == "" {
		return Entry{}, types.ErrInvalidTitle
	}
	if !types.ValidCategory(in.Category) {
		return Entry{}, fmt.Errorf("category %q: %w", in.Category, types.ErrInvalidCategory)
	}
	if in.Image == nil || in.ImageName == "" {
		return Entry{}, types.ErrImageRequired
	}
	if !images.Supported(in.ImageName) {
		return Entry{}, fmt.Errorf("image %q: %w", in.ImageName, types.ErrUnsupportedImage)
	}

	existing, err := c.store.Load()
	if err != nil {
		return Entry{}, fmt.Errorf("load recipes: %w", err)
	}

	stored, err := c.images.Save(ctx, in.ImageName, in.Image)
	if err != nil {
		return Entry{}, fmt.Errorf("save image: %w", err)
	}

	r := types.Recipe{
		Title:       in.Title,
		Category:    in.Category,
		Ingredients: types.ParseIngredients(in.Ingredients),
		Steps:       in.Steps,
		ImagePath:   stored,
	}
	if err := r.Validate(); err != nil {
		return Entry{}, err
	}
	if err := c.store.Append(r); err != nil {
		return Entry{}, fmt.Errorf("append recipe: %w", err)
	}

	c.logger.Info("recipe added", "title", r.Title, "category", r.Category, "image", stored)
	return Entry{Position: len(existing), Recipe: r}, nil
}

// List returns page number of the full catalog.
func (c *Catalog) List(ctx context.Context, pageSize, page int) (Listing, error) {
	size, err := checkPageSize(pageSize)
	if err != nil {
		return Listing{}, err
	}
	records, err := c.store.Load()
	if err != nil {
		return Listing{}, fmt.Errorf("load recipes: %w", err)
	}
	return c.paginate(ctx, positioned(records), size, page)
}

// Search filters by category, then by text, and paginates the matches.
// An empty query together with CategoryAll returns ErrEmptySearch.
func (c *Catalog) Search(ctx context.Context, in SearchInput) (Listing, error) {
	category := in.Category
	if category == "" {
		category = types.CategoryAll
	}
	if !types.ValidFilterCategory(category) {
		return Listing{}, fmt.Errorf("category %q: %w", category, types.ErrInvalidCategory)
	}
	if in.Query == "" && category == types.CategoryAll {
		return Listing{}, types.ErrEmptySearch
	}
	size, err := checkPageSize(in.PageSize)
	if err != nil {
		return Listing{}, err
	}

	records, err := c.store.Load()
	if err != nil {
		return Listing{}, fmt.Errorf("load recipes: %w", err)
	}
	matches := query.Search(query.FilterByCategory(positioned(records), category, entryRecipe), in.Query, entryRecipe)

	c.logger.Debug("search", "category", category, "query", in.Query, "matches", len(matches))
	return c.paginate(ctx, matches, size, in.Page)
}

// Get returns the record at position.
func (c *Catalog) Get(ctx context.Context, position int) (Entry, error) {
	records, err := c.store.Load()
	if err != nil {
		return Entry{}, fmt.Errorf("load recipes: %w", err)
	}
	if position < 0 || position >= len(records) {
		return Entry{}, fmt.Errorf("show %d of %d: %w", position, len(records), types.ErrIndexOutOfRange)
	}
	e := Entry{Position: position, Recipe: records[position]}
	e.ImageWarning = c.imageWarning(ctx, e.Recipe.ImagePath)
	return e, nil
}

// Delete removes the record at position. The image file is kept.
func (c *Catalog) Delete(_ context.Context, position int) error {
	if err := c.store.Delete(position); err != nil {
		return err
	}
	c.logger.Info("recipe deleted", "position", position)
	return nil
}

// Image streams the stored image at path.
func (c *Catalog) Image(ctx context.Context, path string) (io.ReadCloser, error) {
	return c.images.Open(ctx, path)
}

func (c *Catalog) paginate(ctx context.Context, entries []Entry, size, page int) (Listing, error) {
	listing, err := query.Paginate(entries, size, page)
	if err != nil {
		return Listing{}, err
	}
	for i := range listing.Items {
		listing.Items[i].ImageWarning = c.imageWarning(ctx, listing.Items[i].Recipe.ImagePath)
	}
	return listing, nil
}

// imageWarning checks one record's image. A failure becomes a warning on
// that record only.
func (c *Catalog) imageWarning(ctx context.Context, path string) string {
	err := c.images.Check(ctx, path)
	switch {
	case err == nil:
		return ""
	case errors.Is(err, images.ErrNoImage):
		return WarnNoImage
	default:
		c.logger.Warn("image check failed", "image", path, "error", err)
		return warnImagePrefix + err.Error()
	}
}

// positioned wraps records as entries carrying their absolute positions.
func positioned(records []types.Recipe) []Entry {
	out := make([]Entry, len(records))
	for i, r := range records {
		out[i] = Entry{Position: i, Recipe: r}
	}
	return out
}

func entryRecipe(e Entry) types.Recipe { return e.Recipe }

// checkPageSize applies the default for 0 and rejects sizes outside
// [MinPageSize, MaxPageSize].
func checkPageSize(size int) (int, error) {
	if size == 0 {
		return DefaultPageSize, nil
	}
	if size < MinPageSize || size > MaxPageSize {
		return 0, fmt.Errorf("page size %d not in [%d, %d]: %w",
			size, MinPageSize, MaxPageSize, types.ErrInvalidPageSize)
	}
	return size, nil
}
