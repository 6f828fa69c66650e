package sierpinski

import "fmt"

// Device is the page-addressed write surface the renderer draws through.
//
// Any transport can implement it; see package ssd1306 for SPI and I²C
// panels and package simdev for an in-memory one.
type Device interface {
	// SetColumn selects the column of subsequent writes.
	SetColumn(col byte) error
	// SetRow selects the page row. pageStart is the first pixel row of the
	// page and is a multiple of 8.
	SetRow(pageStart byte) error
	// WriteBytes sends page bytes starting at the selected column.
	WriteBytes(data []byte) error
}

// Device operations reported in TransferError.Op.
const (
	OpSetColumn = "set column"
	OpSetRow    = "set row"
	OpWrite     = "write"
)

// TransferError is returned by Flush when the device fails while sending a
// page.
//
// Page bytes are always recomputed from the grid, so sending the same page
// again is safe; the page is left dirty for the next Flush.
type TransferError struct {
	Op   string
	Page PageAddr
	Err  error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("sierpinski: %s for %v: %v", e.Op, e.Page, e.Err)
}

func (e *TransferError) Unwrap() error {
	return e.Err
}
