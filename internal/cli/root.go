package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridboard/pkg/buildinfo"
	"github.com/matzehuels/gridboard/pkg/store"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// Global flags:
//   - --config-dir: directory holding gridboard.yaml (default ~/.config/gridboard)
//   - --backend, --data-dir: store selection, overriding the config file
//   - --link-policy: atomic (default) or lenient partner handling on resize
func (c *CLI) RootCommand() *cobra.Command {
	var dir string

	root := &cobra.Command{
		Use:           appName,
		Short:         "Gridboard arranges boxes on a snapping grid board",
		Long:          `Gridboard manages dashboard-style boards: boxes placed on a grid, resized in fixed steps, linked in pairs and parked in palletes. Boards are stored in a file, SQLite, Redis or MongoDB backend.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				d, err := configDir()
				if err != nil {
					return fmt.Errorf("get config dir: %w", err)
				}
				dir = d
			}
			if err := c.bindFlags(cmd.Root().PersistentFlags()); err != nil {
				return err
			}
			return c.loadConfig(dir)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&dir, "config-dir", "", "configuration directory (default: ~/.config/gridboard)")
	flags.String("backend", "", fmt.Sprintf("store backend: %v", store.Backends()))
	flags.String("data-dir", "", "data directory for file and sqlite backends")
	flags.String("link-policy", "", "linked resize policy: atomic or lenient")

	// Boards
	root.AddCommand(c.importCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.deleteCommand())
	root.AddCommand(c.renderCommand())

	// Placement
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.resizeCommand())
	root.AddCommand(c.moveCommand())
	root.AddCommand(c.transferCommand())
	root.AddCommand(c.placeCommand())
	root.AddCommand(c.boxCommand())
	root.AddCommand(c.palleteCommand())
	root.AddCommand(c.editCommand())

	root.AddCommand(c.serveCommand())
	root.AddCommand(c.versionCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// versionCommand prints build information.
func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
			return nil
		},
	}
}
