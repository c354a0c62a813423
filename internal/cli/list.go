// List and search commands for the recipebox CLI.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/recipebox/internal/catalog"
	"github.com/mesh-intelligence/recipebox/pkg/types"
)

func newListCmd(a *app) *cobra.Command {
	var page, size int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recipes one page at a time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, closeFn, err := a.openCatalog(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			listing, err := c.List(cmd.Context(), a.pageSize(size), page)
			if err != nil {
				return classify(err)
			}
			if a.flags.jsonMode {
				return printJSON(cmd, listing)
			}
			printListing(cmd, listing)
			return nil
		},
	}
	addPageFlags(cmd, &page, &size)
	return cmd
}

func newSearchCmd(a *app) *cobra.Command {
	var (
		in         catalog.SearchInput
		page, size int
	)
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search recipes by category and text",
		Long: `Search keeps the recipes in --category ("All" for every category) whose
title or any ingredient contains --query, ignoring case. At least one of a
query or a specific category is required.

Example:
  recipebox search --query chicken
  recipebox search --category Desserts
  recipebox search --category Soups --query tomato --page 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, closeFn, err := a.openCatalog(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			in.Page = page
			in.PageSize = a.pageSize(size)
			listing, err := c.Search(cmd.Context(), in)
			if err != nil {
				return classify(err)
			}
			if a.flags.jsonMode {
				return printJSON(cmd, listing)
			}
			printListing(cmd, listing)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Category, "category", types.CategoryAll, "category to search in")
	cmd.Flags().StringVarP(&in.Query, "query", "q", "", "text to look for in titles and ingredients")
	addPageFlags(cmd, &page, &size)
	return cmd
}

func addPageFlags(cmd *cobra.Command, page, size *int) {
	cmd.Flags().IntVar(page, "page", 1, "page number, starting at 1")
	cmd.Flags().IntVar(size, "page-size", 0,
		fmt.Sprintf("recipes per page, %d to %d (default: page_size from config)", catalog.MinPageSize, catalog.MaxPageSize))
}
