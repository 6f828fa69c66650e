// Package image1bit provides a 1-bit monochrome image stored in the page
// format of SSD1306 class display controllers.
//
// The panel is split into pages of 8 vertically stacked pixels. Each byte
// holds one page column: bit 0 is the top pixel, bit 7 the bottom one.
// Bytes are laid out page row by page row, one byte per column.
//
// Memory layout of a 4x16 image (two page rows):
//
//	Pix[0] Pix[1] Pix[2] Pix[3]   rows 0-7
//	Pix[4] Pix[5] Pix[6] Pix[7]   rows 8-15
//
//	Pix[1] == 0x05 means pixels (1,0) and (1,2) are on.
//
// This package provides:
//
// - Bit: an on/off color
// - BitModel: a color model thresholding standard Go colors to Bit
// - VerticalLSB: an image.Image and draw.Image with page-level access
//
// Example usage:
//
//	img := image1bit.NewVerticalLSB(image.Rect(0, 0, 128, 64))
//	img.SetBit(10, 20, image1bit.On)
//	b := img.PageAt(10, 2) // 0x10: row 20 is bit 4 of page row 2
package image1bit
