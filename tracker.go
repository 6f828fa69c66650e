package sierpinski

import "iter"

// Tracker records which pages may differ from what the display shows.
//
// A page's flag is set whenever one of its pixels went on or off since the
// flag was last cleared. Flags may be set when nothing visible changed, never
// the opposite.
type Tracker struct {
	dirty [Width][Pages]bool
	n     int
}

// MarkDirty flags the page holding pixel (x, y).
func (t *Tracker) MarkDirty(x, y int) {
	mustBeOnDisplay(x, y)
	f := &t.dirty[x][y/PageHeight]
	if !*f {
		*f = true
		t.n++
	}
}

// Len returns the number of dirty pages.
func (t *Tracker) Len() int {
	return t.n
}

// Drain returns the dirty pages in ascending column, then page row, order.
//
// Each flag is cleared right before its page is yielded, so consuming the
// whole sequence leaves the tracker clean and a second Drain yields nothing.
// Pages not reached when the consumer stops early stay dirty. Pages marked
// while ranging are picked up if the iteration has not passed them yet.
func (t *Tracker) Drain() iter.Seq[PageAddr] {
	return func(yield func(PageAddr) bool) {
		for x := range t.dirty {
			for row := range t.dirty[x] {
				if !t.dirty[x][row] {
					continue
				}
				t.dirty[x][row] = false
				t.n--
				if !yield(PageAddr{Column: x, Row: row}) {
					return
				}
			}
		}
	}
}
