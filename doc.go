// Package sierpinski animates a fading Sierpinski triangle on a 128x64
// monochrome, page-addressed display while sending as few bytes as possible
// over the bus.
//
// Every tick the renderer decays the lifetime of each lit pixel, lights a
// few new points sampled by the chaos game, and re-sends only the pages
// (columns of 8 vertically stacked pixels) where a pixel went on or off.
// Each page costs three bus operations: set column, set page row, write one
// byte.
//
// # Components
//
// - Generator: deterministic chaos-game point sampler
// - Grid: per-pixel fade counters, stored column by column
// - Tracker: dirty flags, one per page
// - Renderer: runs the tick and packs pages for the Device
//
// # Basic Usage
//
// Any transport implementing Device works. With an SH1106 panel on SPI:
//
//	host.Init()
//	p, _ := spireg.Open("")
//	dev, _ := ssd1306.NewSPI(p, gpioreg.ByName("GPIO25"), &ssd1306.Opts{
//		Controller: ssd1306.SH1106,
//	})
//	defer dev.Halt()
//
//	opts := sierpinski.DefaultOpts
//	opts.ColumnOffset = dev.ColumnOffset()
//	r, _ := sierpinski.NewRenderer(dev, sierpinski.NewGenerator(sierpinski.DefaultSeed), &opts)
//	r.Run(context.Background())
//
// The display must be blank before the first tick; ssd1306.NewSPI and
// ssd1306.NewI2C clear it during bring-up.
//
// # Page Format
//
// A page byte has bit i set when row 8*pageRow+i is lit, so the top pixel
// of the page is the least significant bit. PackPage builds it by folding
// the counters from the bottom row up.
//
// # Errors
//
// Device failures come back from Flush, Tick and Run as *TransferError.
// Pages are always rebuilt from the grid, so retrying a failed flush is
// safe; Opts.Retries makes Run do it. Coordinates off the display are a
// programming error and panic.
//
// # Logging
//
// Nothing is logged by default. Use SetLogger to route log/slog records
// from the renderer.
package sierpinski
