package render

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"

	"github.com/matzehuels/gridboard/pkg/errors"
)

// Raster formats produced from a board SVG.
const (
	FormatPDF = "pdf"
	FormatPNG = "png"
)

// rsvgBinary is the converter looked up on PATH.
var rsvgBinary = "rsvg-convert"

// Convert turns a rendered board SVG into PDF or PNG through rsvg-convert.
// scale only applies to PNG; values <= 0 mean 1.
//
// A missing converter is INVALID_CONFIG so callers can tell the user to
// install librsvg; a failed conversion is INTERNAL.
func Convert(ctx context.Context, svg []byte, format string, scale float64) ([]byte, error) {
	args := []string{"-f", format}
	switch format {
	case FormatPDF:
	case FormatPNG:
		if scale <= 0 {
			scale = 1
		}
		args = append(args, "-z", strconv.FormatFloat(scale, 'f', 2, 64))
	default:
		return nil, errors.New(errors.ErrCodeInvalidArgument, "unsupported render format %q", format)
	}

	path, err := exec.LookPath(rsvgBinary)
	if err != nil {
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"%s output needs %s (brew install librsvg, apt install librsvg2-bin)", strings.ToUpper(format), rsvgBinary)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = bytes.NewReader(svg)
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "%s: %s", rsvgBinary, strings.TrimSpace(stderr.String()))
	}
	return out.Bytes(), nil
}
