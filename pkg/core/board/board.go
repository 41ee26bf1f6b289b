package board

import (
	"slices"
	"strings"

	"github.com/matzehuels/gridboard/pkg/core/grid"
	"github.com/matzehuels/gridboard/pkg/errors"
)

// Board is a bounded grid surface. It owns the boxes placed on it, its
// palletes, and a registry of every box in either so that ids are unique and
// links resolve.
type Board struct {
	cfg  BoardConfig
	conv grid.Converter

	boxes    boxSet // on the surface
	all      boxSet // surface and palletes
	palletes map[string]*Pallete

	defaultPallete string
}

// New creates an empty board. Zero config fields take their defaults.
func New(cfg BoardConfig) (*Board, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Board{
		cfg:      cfg,
		conv:     grid.NewConverter(cfg.CellSize),
		boxes:    boxSet{},
		all:      boxSet{},
		palletes: map[string]*Pallete{},
	}, nil
}

func (b *Board) ID() string        { return b.cfg.ID }
func (b *Board) Name() string      { return b.cfg.Name }
func (b *Board) Width() int        { return b.cfg.Width }
func (b *Board) Height() int       { return b.cfg.Height }
func (b *Board) CellSize() int     { return b.cfg.CellSize }
func (b *Board) Margin() int       { return b.cfg.MarginUnits() }
func (b *Board) Bounds() grid.Rect { return grid.Rect{Width: b.cfg.Width, Height: b.cfg.Height} }

// Config returns the board configuration with defaults applied.
func (b *Board) Config() BoardConfig { return b.cfg.WithDefaults() }

// Converter returns the pixel/grid converter for this board's cell size.
func (b *Board) Converter() grid.Converter { return b.conv }

func (b *Board) ContainerID() string { return b.cfg.ID }
func (b *Board) Kind() ContainerKind { return KindBoard }

// Boxes returns the boxes on the board surface sorted by id.
func (b *Board) Boxes() []*Box { return b.boxes.sorted() }
func (b *Board) Len() int      { return len(b.boxes) }

func (b *Board) Has(id string) bool {
	_, ok := b.boxes[id]
	return ok
}

func (b *Board) add(x *Box)    { b.boxes[x.id] = x }
func (b *Board) remove(x *Box) { delete(b.boxes, x.id) }

// AllBoxes returns every box owned by the board, on the surface or in a
// pallete, sorted by id.
func (b *Board) AllBoxes() []*Box { return b.all.sorted() }

// Box looks up a box anywhere on the board.
func (b *Board) Box(id string) (*Box, bool) {
	x, ok := b.all[id]
	return x, ok
}

// Lookup is Box with a NOT_FOUND error for unknown ids.
func (b *Board) Lookup(id string) (*Box, error) {
	x, ok := b.all[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "box %q not found on board %q", id, b.cfg.ID)
	}
	return x, nil
}

// Pallete looks up a pallete by id.
func (b *Board) Pallete(id string) (*Pallete, bool) {
	p, ok := b.palletes[id]
	return p, ok
}

// Palletes returns all palletes sorted by id.
func (b *Board) Palletes() []*Pallete {
	out := make([]*Pallete, 0, len(b.palletes))
	for _, p := range b.palletes {
		out = append(out, p)
	}
	slices.SortFunc(out, func(x, y *Pallete) int { return strings.Compare(x.id, y.id) })
	return out
}

// DefaultPallete returns the first pallete ever registered, or nil.
func (b *Board) DefaultPallete() *Pallete {
	if b.defaultPallete == "" {
		return nil
	}
	return b.palletes[b.defaultPallete]
}

// RegisterPallete adds a pallete. The first pallete registered becomes the
// default target of [Engine.TransferToPallete].
func (b *Board) RegisterPallete(id string, cfg PalleteConfig) (*Pallete, error) {
	if err := errors.ValidateID("pallete", id); err != nil {
		return nil, err
	}
	if _, ok := b.palletes[id]; ok {
		return nil, errors.New(errors.ErrCodeDuplicateID, "pallete %q already registered", id)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := &Pallete{id: id, cfg: cfg.WithDefaults(), board: b, boxes: boxSet{}}
	b.palletes[id] = p
	if b.defaultPallete == "" {
		b.defaultPallete = id
	}
	return p, nil
}

// resolvePallete maps "" to the default pallete.
func (b *Board) resolvePallete(id string) (*Pallete, error) {
	if id == "" {
		p := b.DefaultPallete()
		if p == nil {
			return nil, errors.New(errors.ErrCodeNoDefaultPallete, "board %q has no pallete", b.cfg.ID)
		}
		return p, nil
	}
	p, ok := b.palletes[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownPallete, "pallete %q not registered on board %q", id, b.cfg.ID)
	}
	return p, nil
}

// owns reports whether x is a live box of this board.
func (b *Board) owns(x *Box) bool {
	return x != nil && b.all[x.id] == x
}

// partner returns x's linked box when it is on the surface. A dangling link,
// a self link, or a partner held in a pallete yields nil.
func (b *Board) partner(x *Box) *Box {
	if x.linked == "" || x.linked == x.id {
		return nil
	}
	p, ok := b.boxes[x.linked]
	if !ok {
		return nil
	}
	return p
}
