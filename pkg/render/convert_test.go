package render

import (
	"context"
	"testing"

	"github.com/matzehuels/gridboard/pkg/errors"
)

func TestConvertUnsupportedFormat(t *testing.T) {
	_, err := Convert(context.Background(), []byte("<svg/>"), "gif", 1)
	if !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("Convert(gif) error = %v, want INVALID_ARGUMENT", err)
	}
}

func TestConvertMissingBinary(t *testing.T) {
	old := rsvgBinary
	rsvgBinary = "gridboard-no-such-converter"
	defer func() { rsvgBinary = old }()

	for _, format := range []string{FormatPDF, FormatPNG} {
		_, err := Convert(context.Background(), []byte("<svg/>"), format, 2)
		if !errors.Is(err, errors.ErrCodeInvalidConfig) {
			t.Errorf("Convert(%s) error = %v, want INVALID_CONFIG", format, err)
		}
	}
}
