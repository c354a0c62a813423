// Add command for the recipebox CLI.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/recipebox/internal/catalog"
	"github.com/mesh-intelligence/recipebox/pkg/types"
)

func newAddCmd(a *app) *cobra.Command {
	var (
		in        catalog.AddInput
		imagePath string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a recipe",
		Long: `Add stores a recipe at the end of the catalog. The image file is copied
into the image directory under its base name; ingredients are comma separated.

Example:
  recipebox add --title "Tomato soup" --category Soups \
    --ingredients "tomatoes, salt, basil" --steps "Simmer for 20 minutes." \
    --image ~/photos/soup.jpg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if imagePath == "" {
				return userError(types.ErrImageRequired)
			}
			f, err := os.Open(imagePath)
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					return userError(fmt.Errorf("image %q: %w", imagePath, err))
				}
				return sysError(fmt.Errorf("open image: %w", err))
			}
			defer f.Close()
			in.ImageName = filepath.Base(imagePath)
			in.Image = f

			c, closeFn, err := a.openCatalog(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			entry, err := c.Add(cmd.Context(), in)
			if err != nil {
				return classify(err)
			}
			if a.flags.jsonMode {
				return printJSON(cmd, entry)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added recipe %d: %s\n", entry.Position, entry.Recipe.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Title, "title", "", "recipe title (required)")
	cmd.Flags().StringVar(&in.Category, "category", "", "recipe category (see 'recipebox categories')")
	cmd.Flags().StringVar(&in.Ingredients, "ingredients", "", "comma separated ingredients")
	cmd.Flags().StringVar(&in.Steps, "steps", "", "preparation steps")
	cmd.Flags().StringVar(&imagePath, "image", "", "path to a .jpg, .jpeg or .png image (required)")
	return cmd
}
