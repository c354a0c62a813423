// Shared helpers for recipebox CLI commands.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/recipebox/internal/catalog"
	"github.com/mesh-intelligence/recipebox/internal/images"
	"github.com/mesh-intelligence/recipebox/internal/jsonstore"
	"github.com/mesh-intelligence/recipebox/internal/sqlite"
	"github.com/mesh-intelligence/recipebox/pkg/types"
)

// storeConfig builds and validates the store configuration.
func (a *app) storeConfig() (types.Config, error) {
	dataDir, err := a.dataDir()
	if err != nil {
		return types.Config{}, sysError(err)
	}
	cfg := types.Config{
		Backend:      a.v.GetString(cfgKeyBackend),
		DataDir:      dataDir,
		ImageBackend: a.v.GetString(cfgKeyImageBackend),
		ImageBucket:  a.v.GetString(cfgKeyImageBucket),
		ImageRegion:  a.v.GetString(cfgKeyImageRegion),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, userError(fmt.Errorf("config: %w", err))
	}
	return cfg, nil
}

// openStore opens the record store selected by cfg.Backend.
func (a *app) openStore(cfg types.Config) (types.Store, error) {
	switch cfg.Backend {
	case types.BackendSQLite:
		return sqlite.Open(cfg.DataDir, a.logger)
	default:
		return jsonstore.Open(cfg.DataDir, a.logger)
	}
}

// openCatalog opens the configured stores. The caller must call the
// returned close function.
func (a *app) openCatalog(ctx context.Context) (*catalog.Catalog, func() error, error) {
	cfg, err := a.storeConfig()
	if err != nil {
		return nil, nil, err
	}
	store, err := a.openStore(cfg)
	if err != nil {
		return nil, nil, sysError(fmt.Errorf("open store: %w", err))
	}
	imgs, err := images.New(ctx, cfg)
	if err != nil {
		store.Close()
		return nil, nil, sysError(fmt.Errorf("open image store: %w", err))
	}
	return catalog.New(store, imgs, a.logger), store.Close, nil
}

// pageSize returns the --page-size flag, falling back to page_size in
// config.yaml.
func (a *app) pageSize(flag int) int {
	if flag != 0 {
		return flag
	}
	return a.v.GetInt(cfgKeyPageSize)
}

func parsePosition(arg string) (int, error) {
	position, err := strconv.Atoi(arg)
	if err != nil {
		return 0, userError(fmt.Errorf("invalid position %q", arg))
	}
	return position, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return sysError(fmt.Errorf("marshal output: %w", err))
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(output))
	return nil
}

// printListing writes one page as a table followed by a page footer.
func printListing(cmd *cobra.Command, l catalog.Listing) {
	out := cmd.OutOrStdout()
	if len(l.Items) == 0 {
		fmt.Fprintln(out, "No recipes found.")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "POS\tTITLE\tCATEGORY\tINGREDIENTS\tIMAGE")
	for _, e := range l.Items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			e.Position, e.Recipe.Title, e.Recipe.Category,
			strings.Join(e.Recipe.Ingredients, ", "), imageColumn(e))
	}
	w.Flush()
	fmt.Fprintf(out, "Page %d of %d (%d recipes)\n", l.Number, l.TotalPages, l.TotalItems)
}

// printEntry writes one record in full.
func printEntry(cmd *cobra.Command, e catalog.Entry) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Position:    %d\n", e.Position)
	fmt.Fprintf(out, "Title:       %s\n", e.Recipe.Title)
	fmt.Fprintf(out, "Category:    %s\n", e.Recipe.Category)
	fmt.Fprintf(out, "Image:       %s\n", imageColumn(e))
	fmt.Fprintln(out, "Ingredients:")
	for _, ing := range e.Recipe.Ingredients {
		fmt.Fprintf(out, "  - %s\n", ing)
	}
	fmt.Fprintln(out, "Steps:")
	for line := range strings.SplitSeq(e.Recipe.Steps, "\n") {
		fmt.Fprintf(out, "  %s\n", line)
	}
}

func imageColumn(e catalog.Entry) string {
	if e.ImageWarning != "" {
		return e.ImageWarning
	}
	return e.Recipe.ImagePath
}
