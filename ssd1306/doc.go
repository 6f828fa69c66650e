// Package ssd1306 drives 128x64 monochrome OLED panels built on the SSD1306
// or SH1106 controllers, over SPI or I²C.
//
// The driver only offers page addressing: select a column, select a page
// row, write page bytes. It is the transport behind the fading Sierpinski
// renderer, which decides what to send; this package handles bring-up and
// the wire format.
//
// # Hardware Connection
//
// SPI (4 wires):
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	CLK/D0      → SPI Clock (SCLK)
//	MOSI/D1     → SPI Data (MOSI)
//	DC          → GPIO (any available pin)
//	CS          → SPI Chip Select
//	RES         → Optional: GPIO for hardware reset
//
// I²C: SDA and SCL only, address 0x3C (or 0x3D when the SA0 jumper is set).
//
// # Basic Usage
//
//	host.Init()
//	p, _ := spireg.Open("")
//	dev, _ := ssd1306.NewSPI(p, gpioreg.ByName("GPIO25"), &ssd1306.Opts{
//		Controller: ssd1306.SH1106,
//	})
//	defer dev.Halt()
//
//	dev.SetColumn(byte(dev.ColumnOffset() + 10))
//	dev.SetRow(16)
//	dev.WriteBytes([]byte{0xFF}) // 8 pixels of column 10, rows 16-23
//
// # Page Format
//
// Each byte covers 8 vertically stacked pixels of one column; bit 0 is the
// top one. The column auto-increments after each byte within a page row.
//
// # Controllers
//
// The SSD1306 has 128 columns of RAM. The SH1106 has 132, and 128x64 panels
// wire the visible area from column 2; ColumnOffset reports that margin.
//
// # Datasheets
//
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
//
// https://cdn.velleman.eu/downloads/29/infosheets/sh1106_datasheet.pdf
package ssd1306
