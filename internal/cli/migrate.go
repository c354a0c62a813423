// Migrate command for the recipebox CLI.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/recipebox/internal/jsonstore"
	"github.com/mesh-intelligence/recipebox/internal/sqlite"
)

func newMigrateCmd(a *app) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Copy the JSON catalog into the SQLite store",
		Long: `Migrate reads recipes.json from the data directory and imports every record,
in order, into recipes.db. The JSON file is left untouched. Set backend:
sqlite in config.yaml afterwards to use the database.

Migrate refuses to import into a database that already holds recipes
unless --force is given, in which case the records are appended.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir, err := a.dataDir()
			if err != nil {
				return sysError(err)
			}

			src, err := jsonstore.Open(dataDir, a.logger)
			if err != nil {
				return sysError(fmt.Errorf("open json store: %w", err))
			}
			records, err := src.Load()
			if err != nil {
				return sysError(fmt.Errorf("load json store: %w", err))
			}

			dst, err := sqlite.Open(dataDir, a.logger)
			if err != nil {
				return sysError(fmt.Errorf("open sqlite store: %w", err))
			}
			defer dst.Close()

			existing, err := dst.Load()
			if err != nil {
				return sysError(fmt.Errorf("load sqlite store: %w", err))
			}
			if len(existing) > 0 && !force {
				return userError(fmt.Errorf("%s already holds %d recipes (use --force to append)", dst.Path(), len(existing)))
			}

			if err := dst.Import(records); err != nil {
				return classify(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Migrated %d recipes from %s to %s\n", len(records), src.Path(), dst.Path())
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "append to a database that already holds recipes")
	return cmd
}
