package board

import (
	"strings"

	"github.com/matzehuels/gridboard/pkg/core/grid"
	"github.com/matzehuels/gridboard/pkg/errors"
	"github.com/matzehuels/gridboard/pkg/observability"
)

// LinkPolicy controls how a resize treats the linked partner.
type LinkPolicy int

const (
	// LinkAtomic validates the partner's new rectangle and rejects the whole
	// resize if it is out of bounds, collides, collapses or breaks the
	// partner's constraints.
	LinkAtomic LinkPolicy = iota

	// LinkLenient commits the partner's new rectangle without validation.
	LinkLenient
)

func (p LinkPolicy) String() string {
	if p == LinkLenient {
		return "lenient"
	}
	return "atomic"
}

// ParseLinkPolicy parses "atomic" or "lenient". Empty input is LinkAtomic.
func ParseLinkPolicy(s string) (LinkPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "atomic":
		return LinkAtomic, nil
	case "lenient":
		return LinkLenient, nil
	default:
		return LinkAtomic, errors.New(errors.ErrCodeInvalidConfig, "unknown link policy %q (want atomic or lenient)", s)
	}
}

// Engine applies validated changes to boards. It holds no board state and
// may be shared across boards.
type Engine struct {
	hooks  observability.BoardHooks
	policy LinkPolicy
}

// Option configures an Engine.
type Option func(*Engine)

// WithHooks sets the hooks notified after each committed change. Without it
// the engine uses the globally registered [observability.Board] hooks.
func WithHooks(h observability.BoardHooks) Option {
	return func(e *Engine) { e.hooks = h }
}

// WithLinkPolicy sets how resizes propagate to linked partners.
func WithLinkPolicy(p LinkPolicy) Option {
	return func(e *Engine) { e.policy = p }
}

// NewEngine creates an engine with LinkAtomic and the global hooks.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{policy: LinkAtomic}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Policy returns the configured link policy.
func (e *Engine) Policy() LinkPolicy { return e.policy }

func (e *Engine) notify() observability.BoardHooks {
	if e.hooks != nil {
		return e.hooks
	}
	return observability.Board()
}

// =============================================================================
// Placement
// =============================================================================

// ValidatePlacement reports whether box may occupy r on b: r lies within the
// board, has positive size, and does not collide with any on-board box other
// than box itself and the box it links to.
//
// box may be nil to test a rectangle for a box that does not exist yet.
func (e *Engine) ValidatePlacement(b *Board, box *Box, r grid.Rect) bool {
	return e.CheckPlacement(b, box, r) == nil
}

// CheckPlacement is ValidatePlacement with a REJECTED_PLACEMENT error that
// names the reason.
func (e *Engine) CheckPlacement(b *Board, box *Box, r grid.Rect) error {
	var id, linked string
	if box != nil {
		id, linked = box.id, box.linked
	}
	return checkPlacement(b, r, id, linked)
}

// checkPlacement validates r against bounds and every on-board box whose id
// is not in skip.
func checkPlacement(b *Board, r grid.Rect, skip ...string) error {
	if r.Empty() {
		return errors.New(errors.ErrCodeRejectedPlacement, "size %dx%d is not positive", r.Width, r.Height)
	}
	if bounds := b.Bounds(); !r.Within(bounds.Width, bounds.Height) {
		return errors.New(errors.ErrCodeRejectedPlacement, "%s is outside the %dx%d board", r, bounds.Width, bounds.Height)
	}
	margin := b.Margin()
	for _, other := range b.Boxes() {
		if skipped(other.id, skip) {
			continue
		}
		if grid.IntersectsWithMargin(r, other.dims, margin) {
			return errors.New(errors.ErrCodeRejectedPlacement, "%s collides with box %q at %s", r, other.id, other.dims)
		}
	}
	return nil
}

func skipped(id string, skip []string) bool {
	for _, s := range skip {
		if s != "" && s == id {
			return true
		}
	}
	return false
}

// =============================================================================
// Resize
// =============================================================================

// ApplyResize converts a pixel rectangle from a resize gesture, normalizes
// it against the box constraints and commits it. The linked partner, if on
// the board, takes the complementary change.
//
// On REJECTED_PLACEMENT neither box changes and the returned rectangle is
// the box's unchanged dimensions. A box that is not moveable may only change
// size; a proposal at a different position is INVALID_ARGUMENT.
func (e *Engine) ApplyResize(b *Board, box *Box, proposed grid.PixelRect) (grid.Rect, error) {
	if err := requireOnBoard(b, box); err != nil {
		return grid.Rect{}, err
	}
	return e.Resize(b, box, b.conv.ToGrid(proposed))
}

// Resize is ApplyResize for a rectangle already in grid units.
func (e *Engine) Resize(b *Board, box *Box, proposed grid.Rect) (grid.Rect, error) {
	if err := requireOnBoard(b, box); err != nil {
		return grid.Rect{}, err
	}
	if !box.resizable {
		return box.dims, errors.New(errors.ErrCodeInvalidArgument, "box %q is not resizable", box.id)
	}

	prev := box.dims
	next := box.resize.Normalize(proposed)
	if !box.moveable && (next.Left != prev.Left || next.Top != prev.Top) {
		return prev, errors.New(errors.ErrCodeInvalidArgument, "box %q is not moveable, resize must keep its position %d,%d", box.id, prev.Left, prev.Top)
	}
	if err := checkPlacement(b, next, box.id, box.linked); err != nil {
		return prev, err
	}

	partner := b.partner(box)
	var partnerPrev, partnerNext grid.Rect
	if partner != nil {
		partnerPrev = partner.dims
		partnerNext = grid.Diff(prev, next).Complement(partnerPrev)
		if partnerNext == partnerPrev {
			partner = nil
		} else if e.policy == LinkAtomic {
			if err := checkPartner(b, box, partner, partnerNext); err != nil {
				return prev, err
			}
		}
	}

	h := e.notify()
	if partner != nil {
		partner.dims = partnerNext
		ev := event(b, partner)
		ev.Previous = partnerPrev
		ev.Partner = box.id
		h.OnBoxResized(ev)
	}
	box.dims = next
	ev := event(b, box)
	ev.Previous = prev
	if partner != nil {
		ev.Partner = partner.id
	}
	h.OnBoxResized(ev)
	return next, nil
}

// checkPartner validates the partner's rectangle for LinkAtomic.
func checkPartner(b *Board, box, partner *Box, r grid.Rect) error {
	if err := checkPlacement(b, r, partner.id, box.id, partner.linked); err != nil {
		return errors.New(errors.ErrCodeRejectedPlacement, "linked box %q cannot follow: %s", partner.id, errors.UserMessage(err))
	}
	if partner.resizable && !partner.resize.Allows(r) {
		return errors.New(errors.ErrCodeRejectedPlacement,
			"linked box %q would be %dx%d, outside its limits %dx%d..%dx%d",
			partner.id, r.Width, r.Height,
			partner.resize.MinWidth, partner.resize.MinHeight,
			partner.resize.MaxWidth, partner.resize.MaxHeight)
	}
	return nil
}

// =============================================================================
// Move
// =============================================================================

// Move drops an on-board box at a new pixel position, keeping its size.
func (e *Engine) Move(b *Board, box *Box, to grid.PixelPoint) (grid.Rect, error) {
	if err := requireOnBoard(b, box); err != nil {
		return grid.Rect{}, err
	}
	left, top := b.conv.PointToGrid(to)
	return e.MoveTo(b, box, left, top)
}

// MoveTo is Move for a position already in grid units.
func (e *Engine) MoveTo(b *Board, box *Box, left, top int) (grid.Rect, error) {
	if err := requireOnBoard(b, box); err != nil {
		return grid.Rect{}, err
	}
	if !box.moveable {
		return box.dims, errors.New(errors.ErrCodeInvalidArgument, "box %q is not moveable", box.id)
	}
	prev := box.dims
	next := grid.Rect{Left: left, Top: top, Width: prev.Width, Height: prev.Height}
	if next == prev {
		return prev, nil
	}
	if err := checkPlacement(b, next, box.id, box.linked); err != nil {
		return prev, err
	}
	box.dims = next
	ev := event(b, box)
	ev.Previous = prev
	e.notify().OnBoxMoved(ev)
	return next, nil
}

// =============================================================================
// Transfers
// =============================================================================

// TransferToPallete moves box into the named pallete, or the default
// pallete when palleteID is empty. Dimensions are kept for a later return to
// the board. No geometry is checked.
func (e *Engine) TransferToPallete(b *Board, box *Box, palleteID string) (*Pallete, error) {
	if !b.owns(box) {
		return nil, notOwned(b, box)
	}
	p, err := b.resolvePallete(palleteID)
	if err != nil {
		return nil, err
	}
	if !box.moveable {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "box %q is not moveable", box.id)
	}
	if box.container == Container(p) {
		return p, nil
	}
	from := box.container.ContainerID()
	moveBox(box, p)
	ev := event(b, box)
	ev.Previous = box.dims
	ev.From = from
	e.notify().OnBoxTransferred(ev)
	return p, nil
}

// TransferToBoard places a box held in a pallete onto the board at the
// given pixel rectangle. On REJECTED_PLACEMENT the box stays in its pallete.
func (e *Engine) TransferToBoard(b *Board, box *Box, target grid.PixelRect) (grid.Rect, error) {
	if !b.owns(box) {
		return grid.Rect{}, notOwned(b, box)
	}
	return e.Place(b, box, b.conv.ToGrid(target))
}

// Place is TransferToBoard for a rectangle already in grid units.
func (e *Engine) Place(b *Board, box *Box, r grid.Rect) (grid.Rect, error) {
	if !b.owns(box) {
		return grid.Rect{}, notOwned(b, box)
	}
	if box.OnBoard() {
		return box.dims, errors.New(errors.ErrCodeInvalidArgument, "box %q is already on the board", box.id)
	}
	if !box.moveable {
		return box.dims, errors.New(errors.ErrCodeInvalidArgument, "box %q is not moveable", box.id)
	}
	if err := checkPlacement(b, r, box.id, box.linked); err != nil {
		return box.dims, err
	}
	if box.resizable && !box.resize.Allows(r) {
		return box.dims, errors.New(errors.ErrCodeRejectedPlacement,
			"size %dx%d is outside the limits of box %q", r.Width, r.Height, box.id)
	}
	prev := box.dims
	from := box.container.ContainerID()
	moveBox(box, b)
	box.dims = r
	ev := event(b, box)
	ev.Previous = prev
	ev.From = from
	e.notify().OnBoxTransferred(ev)
	return r, nil
}

// =============================================================================
// Helpers
// =============================================================================

func requireOnBoard(b *Board, box *Box) error {
	if !b.owns(box) {
		return notOwned(b, box)
	}
	if !box.OnBoard() {
		return errors.New(errors.ErrCodeInvalidArgument, "box %q is in pallete %q, not on the board", box.id, box.container.ContainerID())
	}
	return nil
}

func notOwned(b *Board, box *Box) error {
	if box == nil {
		return errors.New(errors.ErrCodeInvalidArgument, "box is nil")
	}
	return errors.New(errors.ErrCodeNotFound, "box %q not found on board %q", box.id, b.cfg.ID)
}

func event(b *Board, box *Box) observability.BoxEvent {
	ev := observability.BoxEvent{
		BoardID: b.cfg.ID,
		BoxID:   box.id,
		Rect:    box.dims,
	}
	if box.container != nil {
		ev.Container = box.container.ContainerID()
		ev.OnBoard = box.OnBoard()
	}
	return ev
}
