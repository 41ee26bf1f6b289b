package board

import (
	"github.com/matzehuels/gridboard/pkg/core/grid"
	"github.com/matzehuels/gridboard/pkg/errors"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultBoardID names a board whose configuration leaves ID empty.
	DefaultBoardID = "board"

	// DefaultBoardWidth and DefaultBoardHeight are in grid units.
	DefaultBoardWidth  = 99
	DefaultBoardHeight = 90

	// DefaultCellSize is the number of pixels per grid unit.
	DefaultCellSize = 10

	// DefaultMargin is the gap, in grid units, kept between unlinked boxes.
	DefaultMargin = 1
)

const (
	DefaultBoxWidth  = 9
	DefaultBoxHeight = 9
)

const (
	DefaultMinWidth   = 9
	DefaultMinHeight  = 9
	DefaultMaxWidth   = 18
	DefaultMaxHeight  = 18
	DefaultWidthStep  = 1
	DefaultHeightStep = 9
)

const (
	// DefaultPalleteWidth and DefaultPalleteHeight are display hints in pixels.
	DefaultPalleteWidth  = 990
	DefaultPalleteHeight = 50
)

// =============================================================================
// BoardConfig
// =============================================================================

// BoardConfig describes a board. Zero fields take the documented defaults.
type BoardConfig struct {
	ID       string `json:"id" toml:"id" bson:"id"`
	Name     string `json:"name,omitempty" toml:"name" bson:"name,omitempty"`
	Width    int    `json:"width" toml:"width" bson:"width"`             // grid units
	Height   int    `json:"height" toml:"height" bson:"height"`          // grid units
	CellSize int    `json:"cell_size" toml:"cell_size" bson:"cell_size"` // pixels per unit

	// Margin is a pointer because zero is a meaningful value; nil means
	// DefaultMargin.
	Margin *int `json:"margin,omitempty" toml:"margin" bson:"margin,omitempty"`
}

// WithDefaults returns a copy with zero fields replaced by defaults.
func (c BoardConfig) WithDefaults() BoardConfig {
	if c.ID == "" {
		c.ID = DefaultBoardID
	}
	if c.Width == 0 {
		c.Width = DefaultBoardWidth
	}
	if c.Height == 0 {
		c.Height = DefaultBoardHeight
	}
	if c.CellSize == 0 {
		c.CellSize = DefaultCellSize
	}
	if c.Margin == nil {
		m := DefaultMargin
		c.Margin = &m
	} else {
		m := *c.Margin
		c.Margin = &m
	}
	return c
}

// MarginUnits returns the configured margin, or DefaultMargin when unset.
func (c BoardConfig) MarginUnits() int {
	if c.Margin == nil {
		return DefaultMargin
	}
	return *c.Margin
}

// Validate checks a configuration after defaults have been applied.
func (c BoardConfig) Validate() error {
	if err := errors.ValidateID("board", c.ID); err != nil {
		return err
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidArgument, "board size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.CellSize <= 0 {
		return errors.New(errors.ErrCodeInvalidArgument, "cell size must be positive, got %d", c.CellSize)
	}
	if c.MarginUnits() < 0 {
		return errors.New(errors.ErrCodeInvalidArgument, "margin cannot be negative, got %d", c.MarginUnits())
	}
	return nil
}

// =============================================================================
// PalleteConfig
// =============================================================================

// PalleteConfig carries display hints for a pallete. The engine does not
// interpret them.
type PalleteConfig struct {
	Width  int    `json:"width" toml:"width" bson:"width"`    // pixels
	Height int    `json:"height" toml:"height" bson:"height"` // pixels
	Class  string `json:"class,omitempty" toml:"class" bson:"class,omitempty"`
}

// WithDefaults returns a copy with zero sizes replaced by defaults.
func (c PalleteConfig) WithDefaults() PalleteConfig {
	if c.Width == 0 {
		c.Width = DefaultPalleteWidth
	}
	if c.Height == 0 {
		c.Height = DefaultPalleteHeight
	}
	return c
}

// Validate rejects negative sizes.
func (c PalleteConfig) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return errors.New(errors.ErrCodeInvalidArgument, "pallete size cannot be negative")
	}
	return nil
}

// =============================================================================
// ResizeConstraints
// =============================================================================

// ResizeConstraints bound a box's size and the step a resize snaps to, all in
// grid units.
type ResizeConstraints struct {
	MinWidth   int `json:"min_width" toml:"min_width" bson:"min_width"`
	MinHeight  int `json:"min_height" toml:"min_height" bson:"min_height"`
	MaxWidth   int `json:"max_width" toml:"max_width" bson:"max_width"`
	MaxHeight  int `json:"max_height" toml:"max_height" bson:"max_height"`
	WidthStep  int `json:"width_step" toml:"width_step" bson:"width_step"`
	HeightStep int `json:"height_step" toml:"height_step" bson:"height_step"`
}

// DefaultResizeConstraints returns the constraints applied to a box that
// configures none.
func DefaultResizeConstraints() ResizeConstraints {
	return ResizeConstraints{}.WithDefaults()
}

// WithDefaults returns a copy with zero fields replaced by defaults.
func (c ResizeConstraints) WithDefaults() ResizeConstraints {
	if c.MinWidth == 0 {
		c.MinWidth = DefaultMinWidth
	}
	if c.MinHeight == 0 {
		c.MinHeight = DefaultMinHeight
	}
	if c.MaxWidth == 0 {
		c.MaxWidth = max(DefaultMaxWidth, c.MinWidth)
	}
	if c.MaxHeight == 0 {
		c.MaxHeight = max(DefaultMaxHeight, c.MinHeight)
	}
	if c.WidthStep == 0 {
		c.WidthStep = DefaultWidthStep
	}
	if c.HeightStep == 0 {
		c.HeightStep = DefaultHeightStep
	}
	return c
}

// Validate requires positive fields and min ≤ max on both axes.
func (c ResizeConstraints) Validate() error {
	if c.MinWidth <= 0 || c.MinHeight <= 0 || c.MaxWidth <= 0 || c.MaxHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidArgument, "resize limits must be positive")
	}
	if c.WidthStep <= 0 || c.HeightStep <= 0 {
		return errors.New(errors.ErrCodeInvalidArgument, "resize steps must be positive")
	}
	if c.MinWidth > c.MaxWidth {
		return errors.New(errors.ErrCodeInvalidArgument, "min width %d exceeds max width %d", c.MinWidth, c.MaxWidth)
	}
	if c.MinHeight > c.MaxHeight {
		return errors.New(errors.ErrCodeInvalidArgument, "min height %d exceeds max height %d", c.MinHeight, c.MaxHeight)
	}
	return nil
}

// Normalize snaps the proposed width and height to the nearest step (half
// up) and clamps them into [min, max]. Left and top pass through.
func (c ResizeConstraints) Normalize(proposed grid.Rect) grid.Rect {
	proposed.Width = clamp(grid.Snap(proposed.Width, c.WidthStep), c.MinWidth, c.MaxWidth)
	proposed.Height = clamp(grid.Snap(proposed.Height, c.HeightStep), c.MinHeight, c.MaxHeight)
	return proposed
}

// Allows reports whether r's size lies within the limits. Steps are not
// checked: a clamped size need not be a multiple of the step.
func (c ResizeConstraints) Allows(r grid.Rect) bool {
	return r.Width >= c.MinWidth && r.Width <= c.MaxWidth &&
		r.Height >= c.MinHeight && r.Height <= c.MaxHeight
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// =============================================================================
// BoxConfig
// =============================================================================

// BoxConfig describes a box at creation time.
type BoxConfig struct {
	Name    string `json:"name,omitempty" toml:"name"`
	Content string `json:"content,omitempty" toml:"content"`
	Class   string `json:"class,omitempty" toml:"class"`

	// Dimensions is the initial rectangle. A zero width or height takes
	// DefaultBoxWidth / DefaultBoxHeight.
	Dimensions grid.Rect `json:"dimensions" toml:"dimensions"`

	Resize ResizeConstraints `json:"resize" toml:"resize"`

	// LinkedBoxID names an existing box whose size follows this one.
	LinkedBoxID string `json:"linked_box_id,omitempty" toml:"linked_box_id"`

	// Resizable and Moveable default to true when nil.
	Resizable *bool `json:"resizable,omitempty" toml:"resizable"`
	Moveable  *bool `json:"moveable,omitempty" toml:"moveable"`

	// Pallete, when set, creates the box directly in that pallete instead of
	// on the board.
	Pallete string `json:"pallete,omitempty" toml:"pallete"`
}

// WithDefaults returns a copy with zero fields replaced by defaults.
func (c BoxConfig) WithDefaults() BoxConfig {
	if c.Dimensions.Width == 0 {
		c.Dimensions.Width = DefaultBoxWidth
	}
	if c.Dimensions.Height == 0 {
		c.Dimensions.Height = DefaultBoxHeight
	}
	c.Resize = c.Resize.WithDefaults()
	return c
}

// IsResizable resolves the Resizable flag.
func (c BoxConfig) IsResizable() bool { return c.Resizable == nil || *c.Resizable }

// IsMoveable resolves the Moveable flag.
func (c BoxConfig) IsMoveable() bool { return c.Moveable == nil || *c.Moveable }
