package board

import "github.com/matzehuels/gridboard/pkg/core/grid"

// Box is a rectangular item that lives on a board or in a pallete.
//
// Fields are unexported: only the [Engine] changes a box, so that every
// mutation passes placement validation first.
type Box struct {
	id      string
	name    string
	content string
	class   string

	dims      grid.Rect
	resize    ResizeConstraints
	linked    string
	resizable bool
	moveable  bool

	container Container
}

func newBox(id string, cfg BoxConfig) *Box {
	return &Box{
		id:        id,
		name:      cfg.Name,
		content:   cfg.Content,
		class:     cfg.Class,
		dims:      cfg.Dimensions,
		resize:    cfg.Resize,
		linked:    cfg.LinkedBoxID,
		resizable: cfg.IsResizable(),
		moveable:  cfg.IsMoveable(),
	}
}

func (x *Box) ID() string                     { return x.id }
func (x *Box) Name() string                   { return x.name }
func (x *Box) Content() string                { return x.content }
func (x *Box) Class() string                  { return x.class }
func (x *Box) Dimensions() grid.Rect          { return x.dims }
func (x *Box) Constraints() ResizeConstraints { return x.resize }
func (x *Box) LinkedBoxID() string            { return x.linked }
func (x *Box) Resizable() bool                { return x.resizable }
func (x *Box) Moveable() bool                 { return x.moveable }

// Container returns the board or pallete currently holding the box, or nil
// once the box has been destroyed.
func (x *Box) Container() Container { return x.container }

// OnBoard reports whether the box sits on its board rather than in a pallete.
func (x *Box) OnBoard() bool {
	return x.container != nil && x.container.Kind() == KindBoard
}

// Pallete returns the pallete holding the box, or nil when the box is on the
// board.
func (x *Box) Pallete() *Pallete {
	p, _ := x.container.(*Pallete)
	return p
}

// Config returns a configuration that recreates the box in its current
// container.
func (x *Box) Config() BoxConfig {
	cfg := BoxConfig{
		Name:        x.name,
		Content:     x.content,
		Class:       x.class,
		Dimensions:  x.dims,
		Resize:      x.resize,
		LinkedBoxID: x.linked,
		Resizable:   boolPtr(x.resizable),
		Moveable:    boolPtr(x.moveable),
	}
	if p := x.Pallete(); p != nil {
		cfg.Pallete = p.id
	}
	return cfg
}

func boolPtr(v bool) *bool { return &v }
