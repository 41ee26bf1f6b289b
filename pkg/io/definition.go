package io

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/gridboard/pkg/core/board"
	"github.com/matzehuels/gridboard/pkg/core/grid"
	"github.com/matzehuels/gridboard/pkg/errors"
)

// Definition is a TOML board layout.
type Definition struct {
	Board    board.BoardConfig `toml:"board"`
	Palletes []PalleteDef      `toml:"pallete"`
	Boxes    []BoxDef          `toml:"box"`
}

// PalleteDef declares a pallete.
type PalleteDef struct {
	ID     string `toml:"id"`
	Width  int    `toml:"width,omitempty"`
	Height int    `toml:"height,omitempty"`
	Class  string `toml:"class,omitempty"`
}

// BoxDef declares a box. Position and size are in grid units.
type BoxDef struct {
	ID        string                   `toml:"id"`
	Name      string                   `toml:"name,omitempty"`
	Content   string                   `toml:"content,omitempty"`
	Class     string                   `toml:"class,omitempty"`
	Left      int                      `toml:"left"`
	Top       int                      `toml:"top"`
	Width     int                      `toml:"width,omitempty"`
	Height    int                      `toml:"height,omitempty"`
	Resize    *board.ResizeConstraints `toml:"resize,omitempty"`
	Linked    string                   `toml:"linked,omitempty"`
	Resizable *bool                    `toml:"resizable,omitempty"`
	Moveable  *bool                    `toml:"moveable,omitempty"`
	Pallete   string                   `toml:"pallete,omitempty"`
}

// Config converts the declaration to a board.BoxConfig.
func (d BoxDef) Config() board.BoxConfig {
	cfg := board.BoxConfig{
		Name:        d.Name,
		Content:     d.Content,
		Class:       d.Class,
		Dimensions:  grid.Rect{Left: d.Left, Top: d.Top, Width: d.Width, Height: d.Height},
		LinkedBoxID: d.Linked,
		Resizable:   d.Resizable,
		Moveable:    d.Moveable,
		Pallete:     d.Pallete,
	}
	if d.Resize != nil {
		cfg.Resize = *d.Resize
	}
	return cfg
}

// ReadTOML decodes a definition from r. Keys that match no field are an
// error.
func ReadTOML(r io.Reader) (*Definition, error) {
	var def Definition
	md, err := toml.NewDecoder(r).Decode(&def)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidArgument, err, "decode toml: %v", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidArgument, "unknown keys: %s", strings.Join(keys, ", "))
	}
	return &def, nil
}

// ImportTOML reads a definition file at path.
func ImportTOML(path string) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadTOML(f)
}

// WriteTOML encodes def as TOML to w.
func WriteTOML(def *Definition, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(def); err != nil {
		return fmt.Errorf("encode toml: %w", err)
	}
	return nil
}

// ExportTOML writes def to a TOML file at path.
func ExportTOML(def *Definition, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteTOML(def, f)
}

// Build creates a board from def through e, so every box passes placement
// validation and e's hooks see each creation. Palletes are registered in
// file order; boxes are created once their link target exists.
func Build(def *Definition, e *board.Engine) (*board.Board, error) {
	b, err := board.New(def.Board)
	if err != nil {
		return nil, err
	}
	for _, p := range def.Palletes {
		cfg := board.PalleteConfig{Width: p.Width, Height: p.Height, Class: p.Class}
		if _, err := b.RegisterPallete(p.ID, cfg); err != nil {
			return nil, err
		}
	}

	declared := make(map[string]bool, len(def.Boxes))
	for _, d := range def.Boxes {
		declared[d.ID] = true
	}

	pending := def.Boxes
	var deferred []BoxDef
	for len(pending) > 0 {
		var next []BoxDef
		for _, d := range pending {
			if d.Linked != "" && declared[d.Linked] {
				if _, ok := b.Box(d.Linked); !ok {
					next = append(next, d)
					continue
				}
			}
			if err := createBox(b, e, d); err != nil {
				return nil, err
			}
		}
		if len(next) == len(pending) {
			// Link cycle: create the first box unlinked and link it once its
			// partner exists.
			first := next[0]
			deferred = append(deferred, first)
			first.Linked = ""
			if err := createBox(b, e, first); err != nil {
				return nil, err
			}
			next = next[1:]
		}
		pending = next
	}
	for _, d := range deferred {
		x, _ := b.Box(d.ID)
		if err := e.Link(b, x, d.Linked); err != nil {
			return nil, fmt.Errorf("box %s: %w", d.ID, err)
		}
	}
	return b, nil
}

func createBox(b *board.Board, e *board.Engine, d BoxDef) error {
	if _, err := e.CreateBox(b, d.ID, d.Config()); err != nil {
		return fmt.Errorf("box %s: %w", d.ID, err)
	}
	return nil
}

// DefinitionFromSnapshot converts a snapshot to a definition that Build
// turns back into the same board. The default pallete is listed first.
func DefinitionFromSnapshot(snap board.Snapshot) *Definition {
	def := &Definition{Board: snap.Board}
	for _, p := range snap.Palletes {
		pd := PalleteDef{ID: p.ID, Width: p.Config.Width, Height: p.Config.Height, Class: p.Config.Class}
		if p.ID == snap.DefaultPallete {
			def.Palletes = append([]PalleteDef{pd}, def.Palletes...)
			continue
		}
		def.Palletes = append(def.Palletes, pd)
	}
	for _, x := range snap.Boxes {
		resize := x.Resize
		resizable, moveable := x.Resizable, x.Moveable
		def.Boxes = append(def.Boxes, BoxDef{
			ID:        x.ID,
			Name:      x.Name,
			Content:   x.Content,
			Class:     x.Class,
			Left:      x.Dimensions.Left,
			Top:       x.Dimensions.Top,
			Width:     x.Dimensions.Width,
			Height:    x.Dimensions.Height,
			Resize:    &resize,
			Linked:    x.LinkedBoxID,
			Resizable: &resizable,
			Moveable:  &moveable,
			Pallete:   x.Container,
		})
	}
	return def
}
