package sierpinski

import "testing"

func TestGridDecay(t *testing.T) {
	tests := []struct {
		name           string
		start          uint8
		want           uint8
		wantTransition bool
	}{
		{"off stays off", 0, 0, false},
		{"last tick goes off", 1, 0, true},
		{"counts down", 2, 1, false},
		{"full lifetime", 255, 254, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var g Grid
			p := Point{17, 42}
			g.SetLifetime(p, tt.start)

			var transitions []Point
			g.Decay(func(x, y int) { transitions = append(transitions, Point{x, y}) })

			if got := g.Lifetime(p); got != tt.want {
				t.Errorf("Lifetime() = %d, want %d", got, tt.want)
			}
			if tt.wantTransition {
				if len(transitions) != 1 || transitions[0] != p {
					t.Errorf("transitions = %v, want [%v]", transitions, p)
				}
			} else if len(transitions) != 0 {
				t.Errorf("transitions = %v, want none", transitions)
			}
		})
	}
}

func TestGridSetLifetime(t *testing.T) {
	tests := []struct {
		name    string
		old     uint8
		new     uint8
		changed bool
	}{
		{"off to off", 0, 0, false},
		{"off to on", 0, 100, true},
		{"on to off", 7, 0, true},
		{"on to on", 3, 100, false},
		{"shorter lifetime", 100, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var g Grid
			p := Point{5, 6}
			g.cells[p.X][p.Y] = tt.old

			if got := g.SetLifetime(p, tt.new); got != tt.changed {
				t.Errorf("SetLifetime(%d -> %d) = %v, want %v", tt.old, tt.new, got, tt.changed)
			}
			if got := g.Lifetime(p); got != tt.new {
				t.Errorf("Lifetime() = %d, want %d (overwrite, not add)", got, tt.new)
			}
		})
	}
}

func TestGridPage(t *testing.T) {
	var g Grid
	counters := [PageHeight]uint8{0, 5, 0, 0, 3, 0, 0, 7}
	for i, c := range counters {
		g.SetLifetime(Point{9, 16 + i}, c)
	}

	if got := g.Page(PageAddr{Column: 9, Row: 2}); got != counters {
		t.Errorf("Page() = %v, want %v", got, counters)
	}
	if got := g.Page(PageAddr{Column: 9, Row: 1}); got != [PageHeight]uint8{} {
		t.Errorf("Page() of an untouched page = %v, want zeros", got)
	}
	if got := g.Lit(); got != 3 {
		t.Errorf("Lit() = %d, want 3", got)
	}
}

func TestGridBoundsPanic(t *testing.T) {
	tests := []struct {
		name string
		f    func(g *Grid)
	}{
		{"set x past width", func(g *Grid) { g.SetLifetime(Point{Width, 0}, 1) }},
		{"set negative y", func(g *Grid) { g.SetLifetime(Point{0, -1}, 1) }},
		{"read y past height", func(g *Grid) { g.Lifetime(Point{0, Height}) }},
		{"page row past bottom", func(g *Grid) { g.Page(PageAddr{Column: 0, Row: Pages}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			var g Grid
			tt.f(&g)
		})
	}
}
