package grid

import "fmt"

// Rect is a rectangle in grid units.
type Rect struct {
	Left   int `json:"left" toml:"left" bson:"left"`
	Top    int `json:"top" toml:"top" bson:"top"`
	Width  int `json:"width" toml:"width" bson:"width"`
	Height int `json:"height" toml:"height" bson:"height"`
}

// Right returns the x coordinate one past the right edge.
func (r Rect) Right() int { return r.Left + r.Width }

// Bottom returns the y coordinate one past the bottom edge.
func (r Rect) Bottom() int { return r.Top + r.Height }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Within reports whether r lies fully inside [0,width] × [0,height].
func (r Rect) Within(width, height int) bool {
	return r.Left >= 0 && r.Top >= 0 && r.Right() <= width && r.Bottom() <= height
}

// Add applies d field-wise and returns the result.
func (r Rect) Add(d Delta) Rect {
	return Rect{
		Left:   r.Left + d.Left,
		Top:    r.Top + d.Top,
		Width:  r.Width + d.Width,
		Height: r.Height + d.Height,
	}
}

// String formats the rectangle as {left,top,width,height}.
func (r Rect) String() string {
	return fmt.Sprintf("{%d,%d,%d,%d}", r.Left, r.Top, r.Width, r.Height)
}

// Delta is a field-wise difference between two rectangles.
type Delta struct {
	Left, Top, Width, Height int
}

// Diff returns to − from, each field subtracted independently.
func Diff(from, to Rect) Delta {
	return Delta{
		Left:   to.Left - from.Left,
		Top:    to.Top - from.Top,
		Width:  to.Width - from.Width,
		Height: to.Height - from.Height,
	}
}

// Zero reports whether the delta changes nothing.
func (d Delta) Zero() bool { return d == Delta{} }

// Complement returns the rectangle a partner sharing an edge with the resized
// rectangle must take so the pair keeps its combined footprint: the partner
// loses what the other side gained and its leading edge moves by the same
// amount.
func (d Delta) Complement(partner Rect) Rect {
	return Rect{
		Left:   partner.Left - d.Left + d.Width,
		Top:    partner.Top - d.Top + d.Height,
		Width:  partner.Width - d.Width,
		Height: partner.Height - d.Height,
	}
}

// IntersectsWithMargin reports whether a, expanded by margin, overlaps b.
// Edges exactly margin apart do not count as a collision.
func IntersectsWithMargin(a, b Rect, margin int) bool {
	return a.Right()+margin > b.Left &&
		a.Bottom()+margin > b.Top &&
		b.Right()+margin > a.Left &&
		b.Bottom()+margin > a.Top
}
