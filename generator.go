package sierpinski

import (
	"iter"
	"math/rand/v2"
)

// DefaultAnchors are the corners of the triangle drawn on a 128x64 panel.
var DefaultAnchors = [3]Point{{64, 0}, {32, 63}, {96, 63}}

// DefaultSeed seeds the generator used by the demo.
var DefaultSeed = [32]byte([]byte("I am an adequate seed of chaos:)"))

// PointSource produces the points injected into the grid each tick.
type PointSource interface {
	Next() Point
}

// Generator samples the Sierpinski triangle with the chaos game: each step
// moves the cursor halfway towards a randomly chosen anchor.
//
// The sequence is infinite and fully determined by the seed, the anchors
// and the starting cursor. There is no reset; build a new Generator with the
// same inputs to replay it.
type Generator struct {
	rng     *rand.Rand
	anchors [3]Point
	cursor  Point
}

// NewGenerator returns a generator over DefaultAnchors, starting on the
// first anchor, driven by ChaCha8 seeded with seed.
func NewGenerator(seed [32]byte) *Generator {
	return NewGeneratorFrom(rand.NewChaCha8(seed), DefaultAnchors, DefaultAnchors[0])
}

// NewGeneratorFrom returns a generator using src for randomness.
//
// Every anchor and start must lie on the display. Midpoints of on-display
// points stay on the display, so the generator never leaves it.
func NewGeneratorFrom(src rand.Source, anchors [3]Point, start Point) *Generator {
	for _, a := range anchors {
		mustBeOnDisplay(a.X, a.Y)
	}
	mustBeOnDisplay(start.X, start.Y)
	return &Generator{rng: rand.New(src), anchors: anchors, cursor: start}
}

// Next advances the cursor and returns it.
func (g *Generator) Next() Point {
	g.cursor = g.cursor.Midpoint(g.anchors[g.rng.IntN(len(g.anchors))])
	return g.cursor
}

// Points returns an infinite sequence backed by g. Ranging over it advances
// g; breaking out and ranging again continues where it stopped.
func (g *Generator) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for yield(g.Next()) {
		}
	}
}
