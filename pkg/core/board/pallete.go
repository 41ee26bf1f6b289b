package board

// Pallete is an unconstrained holding area for boxes that are off the board.
// Boxes in a pallete keep their last dimensions but are not checked for
// bounds or overlap.
type Pallete struct {
	id    string
	cfg   PalleteConfig
	board *Board
	boxes boxSet
}

func (p *Pallete) ID() string            { return p.id }
func (p *Pallete) Config() PalleteConfig { return p.cfg }

// Board returns the board the pallete was registered on.
func (p *Pallete) Board() *Board { return p.board }

// Default reports whether this is the board's default pallete.
func (p *Pallete) Default() bool { return p.board.defaultPallete == p.id }

func (p *Pallete) ContainerID() string { return p.id }
func (p *Pallete) Kind() ContainerKind { return KindPallete }
func (p *Pallete) Boxes() []*Box       { return p.boxes.sorted() }
func (p *Pallete) Len() int            { return len(p.boxes) }

func (p *Pallete) Has(id string) bool {
	_, ok := p.boxes[id]
	return ok
}

func (p *Pallete) add(x *Box)    { p.boxes[x.id] = x }
func (p *Pallete) remove(x *Box) { delete(p.boxes, x.id) }
