package sierpinski

import (
	"slices"
	"testing"
)

func TestTrackerDrainOrder(t *testing.T) {
	var tr Tracker
	tr.MarkDirty(100, 63)
	tr.MarkDirty(3, 9)
	tr.MarkDirty(3, 0)
	tr.MarkDirty(3, 15) // same page as (3, 9)
	tr.MarkDirty(0, 40)
	tr.MarkDirty(100, 63)

	if got := tr.Len(); got != 4 {
		t.Errorf("Len() = %d, want 4", got)
	}

	got := slices.Collect(tr.Drain())
	want := []PageAddr{{0, 5}, {3, 0}, {3, 1}, {100, 7}}
	if !slices.Equal(got, want) {
		t.Errorf("Drain() = %v, want %v", got, want)
	}

	if again := slices.Collect(tr.Drain()); len(again) != 0 {
		t.Errorf("second Drain() = %v, want nothing", again)
	}
	if got := tr.Len(); got != 0 {
		t.Errorf("Len() after drain = %d, want 0", got)
	}
}

func TestTrackerDrainEarlyStop(t *testing.T) {
	var tr Tracker
	tr.MarkDirty(1, 0)
	tr.MarkDirty(2, 0)
	tr.MarkDirty(3, 0)

	for a := range tr.Drain() {
		if a.Column == 1 {
			break
		}
	}

	got := slices.Collect(tr.Drain())
	want := []PageAddr{{2, 0}, {3, 0}}
	if !slices.Equal(got, want) {
		t.Errorf("Drain() after an early stop = %v, want %v", got, want)
	}
}

func TestTrackerRemarkWhileDraining(t *testing.T) {
	var tr Tracker
	tr.MarkDirty(1, 0)
	tr.MarkDirty(2, 0)

	var seen []PageAddr
	for a := range tr.Drain() {
		seen = append(seen, a)
		// Marking the page being yielded keeps it for the next drain.
		tr.MarkDirty(a.Column, a.RowStart())
		break
	}

	if want := []PageAddr{{1, 0}}; !slices.Equal(seen, want) {
		t.Fatalf("first drain = %v, want %v", seen, want)
	}
	got := slices.Collect(tr.Drain())
	want := []PageAddr{{1, 0}, {2, 0}}
	if !slices.Equal(got, want) {
		t.Errorf("Drain() = %v, want %v", got, want)
	}
}

func TestTrackerEveryPage(t *testing.T) {
	var tr Tracker
	for x := Width - 1; x >= 0; x-- {
		for y := Height - 1; y >= 0; y-- {
			tr.MarkDirty(x, y)
		}
	}

	i := 0
	for a := range tr.Drain() {
		want := PageAddr{Column: i / Pages, Row: i % Pages}
		if a != want {
			t.Fatalf("page %d = %v, want %v", i, a, want)
		}
		i++
	}
	if i != Width*Pages {
		t.Errorf("drained %d pages, want %d", i, Width*Pages)
	}
}

func TestTrackerBoundsPanic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for a pixel off the display")
		}
	}()
	var tr Tracker
	tr.MarkDirty(Width, 0)
}
