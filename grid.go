package sierpinski

// Grid holds one fade counter per pixel. A counter of 0 means the pixel is
// off; any other value means it is on and goes off after that many decays.
//
// Counters are stored column by column so the 8 counters of a page are
// contiguous.
type Grid struct {
	cells [Width][Height]uint8
}

// Decay decrements every nonzero counter. transition is called with the
// coordinates of each pixel that reaches 0.
func (g *Grid) Decay(transition func(x, y int)) {
	for x := range g.cells {
		col := &g.cells[x]
		for y, v := range col {
			if v == 0 {
				continue
			}
			col[y] = v - 1
			if v == 1 {
				transition(x, y)
			}
		}
	}
}

// SetLifetime overwrites the counter at p with v and reports whether the
// pixel changed between off and on.
func (g *Grid) SetLifetime(p Point, v uint8) bool {
	mustBeOnDisplay(p.X, p.Y)
	c := &g.cells[p.X][p.Y]
	changed := (*c == 0) != (v == 0)
	*c = v
	return changed
}

// Lifetime returns the counter at p.
func (g *Grid) Lifetime(p Point) uint8 {
	mustBeOnDisplay(p.X, p.Y)
	return g.cells[p.X][p.Y]
}

// Page returns the counters of a page, top row first.
func (g *Grid) Page(a PageAddr) [PageHeight]uint8 {
	mustBeOnDisplay(a.Column, a.RowStart())
	return [PageHeight]uint8(g.cells[a.Column][a.RowStart():])
}

// Lit returns the number of pixels currently on.
func (g *Grid) Lit() int {
	n := 0
	for x := range g.cells {
		for _, v := range g.cells[x] {
			if v != 0 {
				n++
			}
		}
	}
	return n
}
