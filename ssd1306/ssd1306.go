package ssd1306

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Panel geometry.
const (
	Width  = 128
	Height = 64
)

// Controller selects the controller chip variant.
type Controller int

const (
	SSD1306 Controller = iota // 128-column RAM
	SH1106                    // 132-column RAM, visible area starts at column 2
)

func (c Controller) String() string {
	switch c {
	case SSD1306:
		return "SSD1306"
	case SH1106:
		return "SH1106"
	default:
		return fmt.Sprintf("Controller(%d)", int(c))
	}
}

// Opts is the configuration for the display.
type Opts struct {
	Controller Controller // Controller variant (default SSD1306)
	Rotated    bool       // 180° rotation
	Contrast   byte       // Initial contrast (0 uses 0xCF)

	// Optional hardware reset pin
	RST gpio.PinIO // Reset pin (optional, nil if not used)
}

// Dev is the device handle for the display.
type Dev struct {
	// Communication
	c   conn.Conn   // SPI or I²C connection
	dc  gpio.PinOut // Data/Command pin, nil on I²C
	rst gpio.PinIO  // Reset pin (optional)
	buf []byte      // I²C control byte + payload

	// Geometry
	controller   Controller
	ramWidth     int
	columnOffset int

	// State
	halted bool
}

// NewSPI creates a new device connected via SPI.
//
// The SPI port is configured for 8MHz, Mode0, 8-bit transfers. The dc
// (Data/Command) GPIO pin must be provided.
//
// opts can be nil to use defaults (SSD1306).
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if dc == nil {
		return nil, errors.New("ssd1306: dc pin is required on SPI")
	}
	c, err := p.Connect(8*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("ssd1306: %w", err)
	}
	return newDev(c, dc, opts)
}

// NewI2C creates a new device connected via I²C at addr, usually 0x3C.
//
// opts can be nil to use defaults (SSD1306).
func NewI2C(b i2c.Bus, addr uint16, opts *Opts) (*Dev, error) {
	return newDev(&i2c.Dev{Bus: b, Addr: addr}, nil, opts)
}

func newDev(c conn.Conn, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}

	d := &Dev{
		c:          c,
		dc:         dc,
		rst:        opts.RST,
		controller: opts.Controller,
	}
	switch opts.Controller {
	case SSD1306:
		d.ramWidth = Width
	case SH1106:
		d.ramWidth = 132
		d.columnOffset = 2
	default:
		return nil, fmt.Errorf("ssd1306: unknown controller %v", opts.Controller)
	}

	if err := d.init(opts); err != nil {
		return nil, err
	}
	return d, nil
}

// init resets the panel, sends the initialization sequence, clears RAM and
// turns the display on.
func (d *Dev) init(opts *Opts) error {
	if d.rst != nil {
		if err := d.rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("ssd1306: failed to pull RST low: %w", err)
		}
		time.Sleep(10 * time.Millisecond)

		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("ssd1306: failed to pull RST high: %w", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	contrast := opts.Contrast
	if contrast == 0 {
		contrast = 0xCF
	}

	cmds := []byte{
		0xAE,       // Display OFF
		0xD5, 0x80, // Clock divider and oscillator frequency
		0xA8, Height - 1, // MUX ratio
		0xD3, 0x00, // Display offset
		0x40, // Start line 0
	}

	if d.controller == SH1106 {
		cmds = append(cmds,
			0xAD, 0x8B, // DC-DC on
			0xD9, 0x1F, // Pre-charge period
		)
	} else {
		cmds = append(cmds,
			0x8D, 0x14, // Charge pump on
			0x20, 0x02, // Page addressing mode
			0xD9, 0xF1, // Pre-charge period
		)
	}

	// Segment remap and COM scan direction
	remap, scan := byte(0xA1), byte(0xC8)
	if opts.Rotated {
		remap, scan = 0xA0, 0xC0
	}

	cmds = append(cmds,
		remap, scan,
		0xDA, 0x12, // Alternative COM pin configuration
		0x81, contrast, // Contrast
		0xDB, 0x40, // VCOMH deselect level
		0xA4, // Display follows RAM
		0xA6, // Normal display mode
	)

	if err := d.sendCommands(cmds); err != nil {
		return err
	}
	if err := d.clearRAM(); err != nil {
		return err
	}
	return d.sendCommand(0xAF) // Display ON
}

// clearRAM zeroes every page of display RAM, dummy columns included.
func (d *Dev) clearRAM() error {
	zeros := make([]byte, d.ramWidth)
	for page := byte(0); page < Height/8; page++ {
		if err := d.sendCommands([]byte{0xB0 | page, 0x00, 0x10}); err != nil {
			return err
		}
		if err := d.sendData(zeros); err != nil {
			return err
		}
	}
	return nil
}

// sendCommand sends a single command byte.
func (d *Dev) sendCommand(cmd byte) error {
	return d.sendCommands([]byte{cmd})
}

// sendCommands sends a slice of command bytes.
func (d *Dev) sendCommands(cmds []byte) error {
	return d.tx(0x00, gpio.Low, cmds)
}

// sendData sends a slice of display RAM bytes.
func (d *Dev) sendData(data []byte) error {
	return d.tx(0x40, gpio.High, data)
}

// tx selects command or data mode with the D/C pin on SPI, or with a
// leading control byte on I²C.
func (d *Dev) tx(control byte, level gpio.Level, p []byte) error {
	if d.dc != nil {
		if err := d.dc.Out(level); err != nil {
			return fmt.Errorf("ssd1306: %w", err)
		}
		if err := d.c.Tx(p, nil); err != nil {
			return fmt.Errorf("ssd1306: %w", err)
		}
		return nil
	}
	d.buf = append(append(d.buf[:0], control), p...)
	if err := d.c.Tx(d.buf, nil); err != nil {
		return fmt.Errorf("ssd1306: %w", err)
	}
	return nil
}

// ColumnOffset returns the RAM column of the first visible pixel column.
func (d *Dev) ColumnOffset() int {
	return d.columnOffset
}

// SetColumn selects the RAM column of the next write.
func (d *Dev) SetColumn(col byte) error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}
	if int(col) >= d.ramWidth {
		return fmt.Errorf("ssd1306: column %d out of range", col)
	}
	return d.sendCommands([]byte{
		0x00 | col&0x0F, // Lower column nibble
		0x10 | col>>4,   // Higher column nibble
	})
}

// SetRow selects the page holding pixel row pageStart, which must be a
// multiple of 8.
func (d *Dev) SetRow(pageStart byte) error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}
	if pageStart%8 != 0 || int(pageStart) >= Height {
		return fmt.Errorf("ssd1306: row %d is not the start of a page", pageStart)
	}
	return d.sendCommand(0xB0 | pageStart/8)
}

// WriteBytes writes page bytes from the selected column onwards.
func (d *Dev) WriteBytes(data []byte) error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}
	return d.sendData(data)
}

// Clear blanks the whole display RAM.
func (d *Dev) Clear() error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}
	return d.clearRAM()
}

// SetContrast sets the display contrast (0-255).
func (d *Dev) SetContrast(contrast byte) error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}
	return d.sendCommands([]byte{0x81, contrast})
}

// Invert inverts the display colors (lit pixels become dark and vice versa).
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}
	mode := byte(0xA6) // Normal display
	if invert {
		mode = 0xA7 // Inverted display
	}
	return d.sendCommand(mode)
}

// Halt turns the display off. The device does not accept further commands
// and must be recreated to be used again.
func (d *Dev) Halt() error {
	d.halted = true
	return d.sendCommand(0xAE) // Display OFF
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ssd1306.Dev{%v %dx%d}", d.controller, Width, Height)
}
