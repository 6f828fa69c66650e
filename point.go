package sierpinski

import "fmt"

// Display geometry. The panel is fixed at 128x64 and organized in pages of
// 8 vertically stacked pixels.
const (
	Width      = 128
	Height     = 64
	PageHeight = 8
	Pages      = Height / PageHeight
)

// Point is a pixel coordinate on the display.
type Point struct {
	X, Y int
}

// Midpoint returns the point halfway between p and q, rounding down on both
// axes.
func (p Point) Midpoint(q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// In reports whether p lies on the display.
func (p Point) In() bool {
	return p.X >= 0 && p.X < Width && p.Y >= 0 && p.Y < Height
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// PageAddr names one page: a column and a page row in [0, Pages).
type PageAddr struct {
	Column int
	Row    int
}

// RowStart returns the first pixel row covered by the page.
func (a PageAddr) RowStart() int {
	return a.Row * PageHeight
}

func (a PageAddr) String() string {
	return fmt.Sprintf("page(%d,%d)", a.Column, a.Row)
}

func mustBeOnDisplay(x, y int) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		panic(fmt.Sprintf("sierpinski: pixel (%d,%d) outside %dx%d display", x, y, Width, Height))
	}
}
