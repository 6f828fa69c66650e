// Package simdev emulates a page-addressed 128x64 monochrome panel in
// memory.
//
// Dev accepts the same column/row/write calls as a real controller in page
// addressing mode and mirrors every byte into an image1bit.VerticalLSB, so
// callers can check what a physical panel would show. Fail hooks let tests
// inject bus faults.
package simdev

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/chinoto/sierpinski/image1bit"
	xdraw "golang.org/x/image/draw"
)

const (
	width  = 128
	height = 64
)

// Operation names passed to Fail.
const (
	OpSetColumn = "set column"
	OpSetRow    = "set row"
	OpWrite     = "write"
)

// ErrBus is a convenience error for Fail hooks.
var ErrBus = errors.New("simdev: bus fault")

// Dev is an in-memory display.
type Dev struct {
	// Fail, when set, is called before each operation; a non-nil result is
	// returned instead of performing it.
	Fail func(op string) error

	offset int // dummy columns before the first visible one
	img    *image1bit.VerticalLSB
	col    int
	page   int

	// Counters
	Commands int // SetColumn and SetRow calls that succeeded
	Writes   int // WriteBytes calls that succeeded
	Bytes    int // Bytes written
}

// New returns a blank display whose first visible column is at offset.
func New(offset int) *Dev {
	return &Dev{
		offset: offset,
		img:    image1bit.NewVerticalLSB(image.Rect(0, 0, width, height)),
		col:    offset,
	}
}

// SetColumn selects the RAM column of the next write. Columns past the
// last visible one are rejected.
func (d *Dev) SetColumn(col byte) error {
	if err := d.fail(OpSetColumn); err != nil {
		return err
	}
	if int(col) >= d.offset+width {
		return fmt.Errorf("simdev: column %d out of range", col)
	}
	d.col = int(col)
	d.Commands++
	return nil
}

// SetRow selects the page containing pixel row pageStart.
func (d *Dev) SetRow(pageStart byte) error {
	if err := d.fail(OpSetRow); err != nil {
		return err
	}
	if pageStart%8 != 0 || int(pageStart) >= height {
		return fmt.Errorf("simdev: row %d is not the start of a page", pageStart)
	}
	d.page = int(pageStart) / 8
	d.Commands++
	return nil
}

// WriteBytes stores data at the selected page, one column per byte,
// advancing the column like the controller does. Bytes landing in dummy
// columns or past the right edge are dropped.
func (d *Dev) WriteBytes(data []byte) error {
	if err := d.fail(OpWrite); err != nil {
		return err
	}
	for _, b := range data {
		d.img.SetPage(d.col-d.offset, d.page, b)
		d.col++
	}
	d.Writes++
	d.Bytes += len(data)
	return nil
}

// Image returns the panel contents. The image is live: later writes show up
// in it.
func (d *Dev) Image() *image1bit.VerticalLSB {
	return d.img
}

// WritePNG encodes the panel as a PNG, each pixel scaled to a scale×scale
// square.
func (d *Dev) WritePNG(w io.Writer, scale int) error {
	if scale < 1 {
		return errors.New("simdev: scale must be at least 1")
	}
	dst := image.NewGray(image.Rect(0, 0, width*scale, height*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), d.img, d.img.Bounds(), xdraw.Src, nil)
	return png.Encode(w, dst)
}

func (d *Dev) String() string {
	return fmt.Sprintf("simdev.Dev{%dx%d}", width, height)
}

func (d *Dev) fail(op string) error {
	if d.Fail == nil {
		return nil
	}
	return d.Fail(op)
}
