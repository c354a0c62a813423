// Serve command for the recipebox CLI.
package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/recipebox/internal/httpapi"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog as a JSON HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			c, closeFn, err := a.openCatalog(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			opts := httpapi.DefaultOptions()
			opts.Addr = a.v.GetString(cfgKeyServerAddr)
			if addr != "" {
				opts.Addr = addr
			}
			if err := httpapi.Serve(ctx, c, a.logger, opts); err != nil {
				return sysError(fmt.Errorf("serve: %w", err))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: server.addr from config)")
	return cmd
}
