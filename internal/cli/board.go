package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridboard/pkg/core/board"
	"github.com/matzehuels/gridboard/pkg/errors"
	gio "github.com/matzehuels/gridboard/pkg/io"
	"github.com/matzehuels/gridboard/pkg/render"
	"github.com/matzehuels/gridboard/pkg/store"
)

const (
	formatTOML = "toml"
	formatJSON = "json"
)

// importCommand loads a board definition (TOML) or snapshot (JSON).
func (c *CLI) importCommand() *cobra.Command {
	var (
		id      string
		replace bool
	)

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a board from a TOML definition or JSON snapshot",
		Long: `Import a board into the store.

Files ending in .toml are board definitions with [board], [[pallete]] and
[[box]] tables. Files ending in .json are snapshots written by export.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			prog := newProgress(c.Logger)

			w, err := c.openWorkspace(ctx)
			if err != nil {
				return err
			}
			defer w.Close()

			snap, err := readBoardFile(args[0], w.Engine)
			if err != nil {
				return err
			}
			if id != "" {
				snap.Board.ID = id
			}

			if replace {
				snap, err = w.Put(ctx, snap)
			} else {
				snap, err = w.Create(ctx, snap)
			}
			if err != nil {
				return err
			}

			prog.done("Imported board " + snap.Board.ID)
			printSuccess("Imported %s (%d boxes, %d palletes)", StyleHighlight.Render(snap.Board.ID), len(snap.Boxes), len(snap.Palletes))
			printNextStep("Preview it", appName+" show "+snap.Board.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "store under this board id instead of the file's")
	cmd.Flags().BoolVar(&replace, "replace", false, "overwrite an existing board with the same id")
	return cmd
}

// readBoardFile builds a snapshot from a definition or snapshot file.
func readBoardFile(path string, e *board.Engine) (board.Snapshot, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		def, err := gio.ImportTOML(path)
		if err != nil {
			return board.Snapshot{}, err
		}
		b, err := gio.Build(def, e)
		if err != nil {
			return board.Snapshot{}, err
		}
		return b.Snapshot(), nil
	case ".json":
		return gio.ImportJSON(path)
	default:
		return board.Snapshot{}, errors.New(errors.ErrCodeInvalidArgument, "unsupported file type %q (want .toml or .json)", filepath.Ext(path))
	}
}

// exportCommand writes a stored board as TOML or JSON.
func (c *CLI) exportCommand() *cobra.Command {
	var output, format string

	cmd := &cobra.Command{
		Use:               "export <board>",
		Short:             "Export a board as a TOML definition or JSON snapshot",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeBoards,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, err := c.openWorkspace(ctx)
			if err != nil {
				return err
			}
			defer w.Close()

			snap, err := w.Get(ctx, args[0])
			if err != nil {
				return err
			}

			if format == "" {
				format = formatJSON
				if strings.EqualFold(filepath.Ext(output), ".toml") {
					format = formatTOML
				}
			}

			var buf bytes.Buffer
			switch format {
			case formatJSON:
				err = gio.WriteJSON(snap, &buf)
			case formatTOML:
				err = gio.WriteTOML(gio.DefinitionFromSnapshot(snap), &buf)
			default:
				return fmt.Errorf("invalid format: %s (must be 'toml' or 'json')", format)
			}
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess("Exported %s", StyleHighlight.Render(snap.Board.ID))
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "toml or json (default: from --output extension, else json)")
	return cmd
}

// listCommand prints every stored board.
func (c *CLI) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stored boards",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, err := c.openWorkspace(ctx)
			if err != nil {
				return err
			}
			defer w.Close()

			entries, err := w.List(ctx)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				printInfo("No boards stored")
				printNextStep("Import one", appName+" import board.toml")
				return nil
			}

			rows := lo.Map(entries, func(e store.Entry, _ int) []string {
				return []string{e.ID, e.Name, strconv.Itoa(e.Boxes), formatRelativeTime(e.UpdatedAt)}
			})
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Board", "Name", "Boxes", "Updated"}, rows))
			return nil
		},
	}
}

// showCommand prints a board summary and its character-grid preview.
func (c *CLI) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "show <board>",
		Short:             "Show a board as a text preview",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeBoards,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, err := c.openWorkspace(ctx)
			if err != nil {
				return err
			}
			defer w.Close()

			snap, err := w.Get(ctx, args[0])
			if err != nil {
				return err
			}

			cfg := snap.Board.WithDefaults()
			fmt.Println(StyleTitle.Render(lo.Ternary(cfg.Name != "", cfg.Name, cfg.ID)))
			printKeyValue("Size", fmt.Sprintf("%dx%d cells of %dpx", cfg.Width, cfg.Height, cfg.CellSize))
			printKeyValue("Margin", strconv.Itoa(cfg.MarginUnits()))
			onBoard := lo.CountBy(snap.Boxes, func(b board.BoxSnapshot) bool { return b.OnBoard() })
			printKeyValue("Boxes", fmt.Sprintf("%d on board, %d parked", onBoard, len(snap.Boxes)-onBoard))
			fmt.Println()
			fmt.Fprint(cmd.OutOrStdout(), render.Text(snap))
			return nil
		},
	}
}

// deleteCommand removes a stored board.
func (c *CLI) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "delete <board>",
		Aliases:           []string{"rm"},
		Short:             "Delete a stored board",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeBoards,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, err := c.openWorkspace(ctx)
			if err != nil {
				return err
			}
			defer w.Close()

			if err := w.Delete(ctx, args[0]); err != nil {
				return err
			}
			printSuccess("Deleted %s", StyleHighlight.Render(args[0]))
			return nil
		},
	}
}

// formatRelativeTime renders t relative to now for listings.
func formatRelativeTime(t time.Time) string {
	diff := time.Since(t)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
