package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridboard/internal/server"
	"github.com/matzehuels/gridboard/pkg/store"
)

// serveCommand runs the HTTP API until interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the board API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, err := c.openWorkspace(ctx)
			if err != nil {
				return err
			}
			defer w.Close()

			if addr == "" {
				addr = c.cfg.Server.Addr
			}
			if c.cfg.Store.Backend == store.BackendMemory {
				printWarning("memory backend: boards are lost when the server stops")
			}
			printInfo("Serving %s store on %s", c.cfg.Store.Backend, StyleHighlight.Render("http://"+addr))
			return server.New(w, c.Logger).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: server.addr from config)")
	return cmd
}
