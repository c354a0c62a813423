// Show, delete and categories commands for the recipebox CLI.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <position>",
		Short: "Show one recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			c, closeFn, err := a.openCatalog(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			entry, err := c.Get(cmd.Context(), position)
			if err != nil {
				return classify(err)
			}
			if a.flags.jsonMode {
				return printJSON(cmd, entry)
			}
			printEntry(cmd, entry)
			return nil
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <position>",
		Short: "Remove the recipe at a position",
		Long: `Delete removes the recipe at the given position, as shown by list or
search. Every later recipe moves up by one. The image file is kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			c, closeFn, err := a.openCatalog(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			if err := c.Delete(cmd.Context(), position); err != nil {
				return classify(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted recipe %d\n", position)
			return nil
		},
	}
}

func newCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the recipe categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, closeFn, err := a.openCatalog(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			if a.flags.jsonMode {
				return printJSON(cmd, c.Categories())
			}
			for _, name := range c.Categories() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
