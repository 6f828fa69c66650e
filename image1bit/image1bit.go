package image1bit

import (
	"image"
	"image/color"
	"math/bits"
)

// Bit is a monochrome color: on (lit) or off.
type Bit bool

const (
	On  Bit = true
	Off Bit = false
)

// RGBA returns white for On and black for Off.
func (b Bit) RGBA() (r, g, bl, a uint32) {
	if b {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (b Bit) String() string {
	if b {
		return "On"
	}
	return "Off"
}

// toBit converts any color.Color to Bit. Colors at least half as bright as
// white are On.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Bit(y >= 0x8000)
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// VerticalLSB is a 1-bit image where each byte holds 8 vertically stacked
// pixels, top pixel in the least significant bit.
type VerticalLSB struct {
	Pix    []byte          // Page bytes, one page row after the other
	Stride int             // Bytes per page row (the image width)
	Rect   image.Rectangle // Image bounds
}

// NewVerticalLSB creates a new VerticalLSB image with the specified bounds.
// The height must be a multiple of 8.
func NewVerticalLSB(r image.Rectangle) *VerticalLSB {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &VerticalLSB{Rect: r}
	}
	if h%8 != 0 {
		panic("image1bit: height must be a multiple of 8")
	}
	return &VerticalLSB{
		Pix:    make([]byte, w*h/8),
		Stride: w,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *VerticalLSB) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the image bounds.
func (p *VerticalLSB) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
func (p *VerticalLSB) At(x, y int) color.Color {
	return p.BitAt(x, y)
}

// BitAt returns the Bit of the pixel at (x, y). Pixels outside the bounds
// are Off.
func (p *VerticalLSB) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Off
	}
	offset, mask := p.pixOffset(x, y)
	return p.Pix[offset]&mask != 0
}

// Set sets the color of the pixel at (x, y).
func (p *VerticalLSB) Set(x, y int, c color.Color) {
	p.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit sets the pixel at (x, y). Pixels outside the bounds are ignored.
func (p *VerticalLSB) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, mask := p.pixOffset(x, y)
	if b {
		p.Pix[offset] |= mask
	} else {
		p.Pix[offset] &^= mask
	}
}

// PageAt returns the byte of column x in page row page, counted from the
// top of the image.
func (p *VerticalLSB) PageAt(x, page int) byte {
	if !p.pageIn(x, page) {
		return 0
	}
	return p.Pix[page*p.Stride+x-p.Rect.Min.X]
}

// SetPage replaces the byte of column x in page row page. Pages outside the
// bounds are ignored.
func (p *VerticalLSB) SetPage(x, page int, b byte) {
	if !p.pageIn(x, page) {
		return
	}
	p.Pix[page*p.Stride+x-p.Rect.Min.X] = b
}

// Lit returns the number of pixels that are on.
func (p *VerticalLSB) Lit() int {
	n := 0
	for _, b := range p.Pix {
		n += bits.OnesCount8(b)
	}
	return n
}

func (p *VerticalLSB) pageIn(x, page int) bool {
	return x >= p.Rect.Min.X && x < p.Rect.Max.X && page >= 0 && page < p.Rect.Dy()/8
}

// pixOffset returns the byte offset and bit mask for the pixel at (x, y).
func (p *VerticalLSB) pixOffset(x, y int) (offset int, mask byte) {
	y -= p.Rect.Min.Y
	offset = (y/8)*p.Stride + (x - p.Rect.Min.X)
	mask = 1 << uint(y&7)
	return
}
