package sierpinski

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Opts is the configuration of a Renderer.
type Opts struct {
	PointsPerTick int           // Points injected each tick (default 5)
	Lifetime      uint8         // Ticks a lit pixel stays on (default 100, must be ≥1)
	ColumnOffset  int           // Dummy columns before the first visible one (default 2)
	Interval      time.Duration // Pause after each flush in Run (default 10ms)
	Retries       int           // Flush retries on TransferError in Run (default 0)
	MaxTicks      int           // Run returns after this many ticks (0 runs until cancelled)
}

// DefaultOpts is used when NewRenderer is given nil options.
var DefaultOpts = Opts{
	PointsPerTick: 5,
	Lifetime:      100,
	ColumnOffset:  2,
	Interval:      10 * time.Millisecond,
}

// Stats counts what a Renderer has done so far.
type Stats struct {
	Ticks          int // Completed ticks
	Pages          int // Pages written to the device
	TransferErrors int // Failed page transfers
}

// Renderer owns the grid, the dirty tracker, the point source and the device
// and advances the animation one tick at a time.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	dev   Device
	src   PointSource
	opts  Opts
	grid  Grid
	dirty Tracker
	stats Stats
	buf   [1]byte
}

// NewRenderer returns a renderer drawing points from src onto dev.
//
// dev must show a blank screen: the renderer only sends pages that change.
// opts can be nil to use DefaultOpts.
func NewRenderer(dev Device, src PointSource, opts *Opts) (*Renderer, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if dev == nil {
		return nil, errors.New("sierpinski: device is required")
	}
	if src == nil {
		return nil, errors.New("sierpinski: point source is required")
	}
	if opts.PointsPerTick < 0 {
		return nil, errors.New("sierpinski: points per tick must not be negative")
	}
	if opts.Lifetime == 0 {
		return nil, errors.New("sierpinski: lifetime must be at least 1")
	}
	if opts.ColumnOffset < 0 || opts.ColumnOffset+Width > 256 {
		return nil, errors.New("sierpinski: column offset must keep columns within a byte")
	}
	if opts.Interval < 0 {
		return nil, errors.New("sierpinski: interval must not be negative")
	}
	if opts.Retries < 0 {
		return nil, errors.New("sierpinski: retries must not be negative")
	}
	if opts.MaxTicks < 0 {
		return nil, errors.New("sierpinski: max ticks must not be negative")
	}
	return &Renderer{dev: dev, src: src, opts: *opts}, nil
}

// Grid returns the renderer's lifetime grid.
func (r *Renderer) Grid() *Grid {
	return &r.grid
}

// Stats returns the counters accumulated so far.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// Tick decays the grid, injects new points and flushes dirty pages.
func (r *Renderer) Tick() error {
	r.grid.Decay(r.dirty.MarkDirty)
	for range r.opts.PointsPerTick {
		p := r.src.Next()
		if r.grid.SetLifetime(p, r.opts.Lifetime) {
			r.dirty.MarkDirty(p.X, p.Y)
		}
	}
	r.stats.Ticks++
	return r.Flush()
}

// Flush sends every dirty page to the device, packed from the grid as it is
// now.
//
// On failure it returns a *TransferError. The failed page and the pages not
// reached yet stay dirty, so calling Flush again retries them.
func (r *Renderer) Flush() error {
	n := 0
	for a := range r.dirty.Drain() {
		if err := r.sendPage(a, PackPage(r.grid.Page(a))); err != nil {
			r.dirty.MarkDirty(a.Column, a.RowStart())
			r.stats.TransferErrors++
			return err
		}
		r.stats.Pages++
		n++
	}
	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("flushed", "tick", r.stats.Ticks, "pages", n, "lit", r.grid.Lit())
	}
	return nil
}

// sendPage addresses one page and writes its byte. The three calls go out
// back to back.
func (r *Renderer) sendPage(a PageAddr, b byte) error {
	if err := r.dev.SetColumn(byte(r.opts.ColumnOffset + a.Column)); err != nil {
		return &TransferError{Op: OpSetColumn, Page: a, Err: err}
	}
	if err := r.dev.SetRow(byte(a.RowStart())); err != nil {
		return &TransferError{Op: OpSetRow, Page: a, Err: err}
	}
	r.buf[0] = b
	if err := r.dev.WriteBytes(r.buf[:]); err != nil {
		return &TransferError{Op: OpWrite, Page: a, Err: err}
	}
	return nil
}

// Run ticks forever, waiting Interval after each flush. A flush that takes
// longer than the interval just makes the frame longer.
//
// A failed flush is retried up to Retries times before Run gives up and
// returns the *TransferError. Run returns nil once the renderer has
// completed MaxTicks ticks, if set, and ctx.Err() when ctx is done.
func (r *Renderer) Run(ctx context.Context) error {
	log := Logger()
	log.Info("animation started",
		"points_per_tick", r.opts.PointsPerTick,
		"lifetime", r.opts.Lifetime,
		"interval", r.opts.Interval)

	t := time.NewTimer(r.opts.Interval)
	defer t.Stop()
	for {
		err := r.Tick()
		for i := 0; err != nil && i < r.opts.Retries; i++ {
			var te *TransferError
			if errors.As(err, &te) {
				log.Warn("retrying flush", "attempt", i+1, "op", te.Op, "page", te.Page.String(), "err", te.Err)
			}
			err = r.Flush()
		}
		if err != nil {
			return err
		}
		if r.opts.MaxTicks > 0 && r.stats.Ticks >= r.opts.MaxTicks {
			log.Info("animation finished", "ticks", r.stats.Ticks, "pages", r.stats.Pages)
			return nil
		}

		t.Reset(r.opts.Interval)
		select {
		case <-ctx.Done():
			log.Info("animation stopped", "ticks", r.stats.Ticks, "pages", r.stats.Pages)
			return ctx.Err()
		case <-t.C:
		}
	}
}

// PackPage packs the counters of a page into the display's byte format.
//
// counters[0] is the top row. Bits are folded in from the bottom row up, so
// bit i is set when counters[i] is nonzero.
func PackPage(counters [PageHeight]uint8) byte {
	var b byte
	for i := PageHeight - 1; i >= 0; i-- {
		b <<= 1
		if counters[i] > 0 {
			b |= 1
		}
	}
	return b
}
