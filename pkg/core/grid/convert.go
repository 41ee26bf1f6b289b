package grid

// PixelRect is a rectangle in pixels, as reported by the rendering layer.
type PixelRect struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// PixelPoint is a position in pixels.
type PixelPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Converter maps between pixels and grid units for one cell size.
// CellSize must be positive.
type Converter struct {
	CellSize int
}

// NewConverter returns a converter for cells of cellSize pixels.
func NewConverter(cellSize int) Converter {
	return Converter{CellSize: cellSize}
}

// ToGrid rounds every field to the nearest cell and returns grid units.
func (c Converter) ToGrid(p PixelRect) Rect {
	return Rect{
		Left:   c.Units(p.Left),
		Top:    c.Units(p.Top),
		Width:  c.Units(p.Width),
		Height: c.Units(p.Height),
	}
}

// ToPixels scales every field by the cell size.
func (c Converter) ToPixels(r Rect) PixelRect {
	return PixelRect{
		Left:   r.Left * c.CellSize,
		Top:    r.Top * c.CellSize,
		Width:  r.Width * c.CellSize,
		Height: r.Height * c.CellSize,
	}
}

// PointToGrid converts a pixel position to grid units.
func (c Converter) PointToGrid(p PixelPoint) (left, top int) {
	return c.Units(p.X), c.Units(p.Y)
}

// Units converts a single pixel length to grid units, rounding half up.
func (c Converter) Units(px int) int {
	return RoundDiv(px, c.CellSize)
}

// RoundDiv divides n by d (d > 0) and rounds to the nearest integer, half up.
func RoundDiv(n, d int) int {
	return floorDiv(2*n+d, 2*d)
}

// Snap rounds n to the nearest multiple of step (step > 0), half up.
func Snap(n, step int) int {
	return RoundDiv(n, step) * step
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
