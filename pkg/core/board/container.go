package board

import (
	"slices"
	"strings"
)

// ContainerKind distinguishes the board from its palletes.
type ContainerKind int

const (
	KindBoard ContainerKind = iota
	KindPallete
)

func (k ContainerKind) String() string {
	switch k {
	case KindBoard:
		return "board"
	case KindPallete:
		return "pallete"
	default:
		return "unknown"
	}
}

// Container is a set of boxes: the board surface or one of its palletes.
//
// Membership is changed only by the engine, which is why the mutating
// methods are unexported.
type Container interface {
	ContainerID() string
	Kind() ContainerKind
	// Boxes returns the held boxes sorted by id.
	Boxes() []*Box
	Len() int
	Has(id string) bool

	add(x *Box)
	remove(x *Box)
}

// boxSet is the membership storage shared by Board and Pallete.
type boxSet map[string]*Box

func (s boxSet) sorted() []*Box {
	out := make([]*Box, 0, len(s))
	for _, x := range s {
		out = append(out, x)
	}
	slices.SortFunc(out, func(a, b *Box) int { return strings.Compare(a.id, b.id) })
	return out
}

// moveBox detaches x from its current container and attaches it to dst.
func moveBox(x *Box, dst Container) {
	if x.container != nil {
		x.container.remove(x)
	}
	dst.add(x)
	x.container = dst
}
