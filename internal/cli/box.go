package cli

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridboard/pkg/core/board"
)

// boxCommand groups box lifecycle subcommands.
func (c *CLI) boxCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "box",
		Short: "Create, remove and link boxes",
	}

	cmd.AddCommand(c.boxAddCommand())
	cmd.AddCommand(c.boxRemoveCommand())
	cmd.AddCommand(c.boxLinkCommand())

	return cmd
}

// boxAddCommand creates a box on the board or in a pallete.
func (c *CLI) boxAddCommand() *cobra.Command {
	var (
		f      rectFlags
		cfg    board.BoxConfig
		resize board.ResizeConstraints
		fixed  bool
		pinned bool
	)

	cmd := &cobra.Command{
		Use:               "add <board> [id]",
		Short:             "Create a box (a UUID is generated when id is omitted)",
		Args:              cobra.RangeArgs(1, 2),
		ValidArgsFunction: c.completeBoards,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, err := c.openWorkspace(ctx)
			if err != nil {
				return err
			}
			defer w.Close()

			id := uuid.NewString()
			if len(args) == 2 {
				id = args[1]
			}

			cfg.Resize = resize
			if fixed {
				cfg.Resizable = new(bool)
			}
			if pinned {
				cfg.Moveable = new(bool)
			}

			b, err := w.Open(ctx, args[0])
			if err != nil {
				return err
			}
			cfg.Dimensions = f.target(cmd, b, board.BoxConfig{}.WithDefaults().Dimensions)

			bs, err := w.AddBox(ctx, args[0], id, cfg)
			if err != nil {
				return err
			}
			where := "board"
			if !bs.OnBoard() {
				where = "pallete " + bs.Container
			}
			printSuccess("Created %s on %s", StyleHighlight.Render(bs.ID), where)
			printDetail("%s", describe(bs.Dimensions))
			return nil
		},
	}

	f.register(cmd, true, true)
	cmd.Flags().StringVar(&cfg.Name, "name", "", "display name")
	cmd.Flags().StringVar(&cfg.Content, "content", "", "content (opaque to gridboard)")
	cmd.Flags().StringVar(&cfg.Class, "class", "", "style class")
	cmd.Flags().StringVar(&cfg.LinkedBoxID, "link", "", "id of the box to link to")
	cmd.Flags().StringVar(&cfg.Pallete, "pallete", "", "create in this pallete instead of on the board")
	cmd.Flags().IntVar(&resize.MinWidth, "min-width", 0, "minimum width in cells")
	cmd.Flags().IntVar(&resize.MinHeight, "min-height", 0, "minimum height in cells")
	cmd.Flags().IntVar(&resize.MaxWidth, "max-width", 0, "maximum width in cells")
	cmd.Flags().IntVar(&resize.MaxHeight, "max-height", 0, "maximum height in cells")
	cmd.Flags().IntVar(&resize.WidthStep, "width-step", 0, "width step in cells")
	cmd.Flags().IntVar(&resize.HeightStep, "height-step", 0, "height step in cells")
	cmd.Flags().BoolVar(&fixed, "fixed", false, "box cannot be resized")
	cmd.Flags().BoolVar(&pinned, "pinned", false, "box cannot be moved or transferred")
	return cmd
}

// boxRemoveCommand destroys a box.
func (c *CLI) boxRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "rm <board> <box>",
		Aliases:           []string{"remove"},
		Short:             "Remove a box",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: c.completeBoards,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, err := c.openWorkspace(ctx)
			if err != nil {
				return err
			}
			defer w.Close()

			if err := w.RemoveBox(ctx, args[0], args[1]); err != nil {
				return err
			}
			printSuccess("Removed %s", StyleHighlight.Render(args[1]))
			return nil
		},
	}
}

// boxLinkCommand sets or clears a box's link.
func (c *CLI) boxLinkCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "link <board> <box> [partner]",
		Short:             "Link a box to a partner (omit partner to unlink)",
		Args:              cobra.RangeArgs(2, 3),
		ValidArgsFunction: c.completeBoards,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, err := c.openWorkspace(ctx)
			if err != nil {
				return err
			}
			defer w.Close()

			var partner string
			if len(args) == 3 {
				partner = args[2]
			}
			if err := w.Link(ctx, args[0], args[1], partner); err != nil {
				return err
			}
			if partner == "" {
				printSuccess("Unlinked %s", StyleHighlight.Render(args[1]))
			} else {
				printSuccess("Linked %s to %s", StyleHighlight.Render(args[1]), StyleHighlight.Render(partner))
			}
			return nil
		},
	}
}

// palleteCommand groups pallete subcommands.
func (c *CLI) palleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pallete",
		Short: "Manage palletes",
	}
	cmd.AddCommand(c.palleteAddCommand())
	return cmd
}

// palleteAddCommand registers a pallete. The first pallete of a board
// becomes its default.
func (c *CLI) palleteAddCommand() *cobra.Command {
	var cfg board.PalleteConfig

	cmd := &cobra.Command{
		Use:               "add <board> <id>",
		Short:             "Register a pallete (the first one becomes the default)",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: c.completeBoards,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, err := c.openWorkspace(ctx)
			if err != nil {
				return err
			}
			defer w.Close()

			if err := w.AddPallete(ctx, args[0], args[1], cfg); err != nil {
				return err
			}
			printSuccess("Registered pallete %s", StyleHighlight.Render(args[1]))
			return nil
		},
	}

	cmd.Flags().IntVar(&cfg.Width, "width", 0, "width in pixels")
	cmd.Flags().IntVar(&cfg.Height, "height", 0, "height in pixels")
	cmd.Flags().StringVar(&cfg.Class, "class", "", "style class")
	return cmd
}
