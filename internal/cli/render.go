package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridboard/pkg/core/board"
	"github.com/matzehuels/gridboard/pkg/render"
)

const (
	formatSVG = "svg"
	formatPDF = render.FormatPDF
	formatPNG = render.FormatPNG
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string   // output file path (or base path for multiple outputs)
	formats    []string // output formats: "svg", "pdf", "png"
	grid       bool     // draw grid lines
	noLinks    bool     // hide link lines between partners
	noPalletes bool     // omit pallete strips
	scale      float64  // PNG scale factor
}

// renderCommand writes a board preview as SVG, PDF or PNG.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{scale: 2}

	cmd := &cobra.Command{
		Use:   "render <board>",
		Short: "Render a board to SVG, PDF or PNG",
		Long: `Render a board preview.

PDF and PNG output is converted from the SVG with rsvg-convert, which must be
installed.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeBoards,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}

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
			return c.runRender(ctx, snap, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), pdf, png (comma-separated)")
	cmd.Flags().BoolVar(&opts.grid, "grid", false, "draw grid lines")
	cmd.Flags().BoolVar(&opts.noLinks, "no-links", false, "hide link lines")
	cmd.Flags().BoolVar(&opts.noPalletes, "no-palletes", false, "omit pallete strips")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	return cmd
}

func (c *CLI) runRender(ctx context.Context, snap board.Snapshot, opts renderOpts) error {
	prog := newProgress(c.Logger)

	svgOpts := []render.SVGOption{render.WithTitle(snap.Board.ID)}
	if opts.grid {
		svgOpts = append(svgOpts, render.WithGrid())
	}
	if !opts.noLinks {
		svgOpts = append(svgOpts, render.WithLinks())
	}
	if opts.noPalletes {
		svgOpts = append(svgOpts, render.WithoutPalletes())
	}
	svg := render.SVG(snap, svgOpts...)

	base := opts.output
	if base == "" {
		base = snap.Board.ID
	}
	for _, format := range opts.formats {
		data := svg
		if format != formatSVG {
			spin := newSpinner(ctx, "Converting to "+strings.ToUpper(format)+"...")
			spin.Start()
			var err error
			if data, err = render.Convert(ctx, svg, format, opts.scale); err != nil {
				spin.StopWithError("Conversion to " + format + " failed")
				return err
			}
			spin.Stop()
		}

		path := outputPath(base, format, len(opts.formats) > 1 || opts.output == "")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	prog.done("Rendered " + snap.Board.ID)
	return nil
}

// outputPath returns base unchanged for a single explicit output, else
// base with its extension replaced by the format.
func outputPath(base, format string, addExt bool) string {
	if !addExt {
		return base
	}
	if i := strings.LastIndexByte(base, '.'); i > strings.LastIndexByte(base, '/') {
		base = base[:i]
	}
	return base + "." + format
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{formatSVG}
	}
	return strings.Split(s, ",")
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatSVG: true, formatPDF: true, formatPNG: true}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return fmt.Errorf("invalid format: %s (must be 'svg', 'pdf', or 'png')", f)
		}
	}
	return nil
}
