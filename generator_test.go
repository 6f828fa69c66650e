package sierpinski

import (
	"math/rand/v2"
	"testing"
)

func TestDefaultSeed(t *testing.T) {
	if got := string(DefaultSeed[:]); got != "I am an adequate seed of chaos:)" {
		t.Errorf("DefaultSeed = %q", got)
	}
}

func TestGeneratorDeterminism(t *testing.T) {
	a := NewGenerator(DefaultSeed)
	b := NewGenerator(DefaultSeed)

	for i := 0; i < 10000; i++ {
		pa, pb := a.Next(), b.Next()
		if pa != pb {
			t.Fatalf("point %d: %v != %v", i, pa, pb)
		}
	}
}

func TestGeneratorDefaultSeedSequence(t *testing.T) {
	want := []Point{
		{80, 31}, {72, 15}, {84, 39}, {74, 19}, {69, 9},
		{50, 36}, {73, 49}, {68, 24}, {66, 12}, {49, 37},
	}

	g := NewGenerator(DefaultSeed)
	for i, w := range want {
		if got := g.Next(); got != w {
			t.Fatalf("point %d = %v, want %v", i, got, w)
		}
	}
}

func TestGeneratorSeedMatters(t *testing.T) {
	var other [32]byte
	a := NewGenerator(DefaultSeed)
	b := NewGenerator(other)

	same := 0
	for i := 0; i < 100; i++ {
		if a.Next() == b.Next() {
			same++
		}
	}
	if same == 100 {
		t.Error("different seeds produced identical sequences")
	}
}

func TestGeneratorChaosGame(t *testing.T) {
	g := NewGenerator(DefaultSeed)
	prev := DefaultAnchors[0]
	var picks [3]int

	const n = 30000
	for i := 0; i < n; i++ {
		p := g.Next()
		if !p.In() {
			t.Fatalf("point %d = %v is off the display", i, p)
		}
		chosen := -1
		for j, a := range DefaultAnchors {
			if prev.Midpoint(a) == p {
				chosen = j
			}
		}
		if chosen < 0 {
			t.Fatalf("point %d = %v is not a midpoint of %v and an anchor", i, p, prev)
		}
		picks[chosen]++
		prev = p
	}

	for j, c := range picks {
		if c < n/3-n/20 || c > n/3+n/20 {
			t.Errorf("anchor %d picked %d times out of %d, want about a third", j, c, n)
		}
	}
}

func TestGeneratorPoints(t *testing.T) {
	a := NewGenerator(DefaultSeed)
	b := NewGenerator(DefaultSeed)

	var got []Point
	for p := range a.Points() {
		got = append(got, p)
		if len(got) == 5 {
			break
		}
	}
	// Ranging again continues the same sequence.
	for p := range a.Points() {
		got = append(got, p)
		break
	}

	for i, p := range got {
		if want := b.Next(); p != want {
			t.Errorf("point %d = %v, want %v", i, p, want)
		}
	}
}

func TestNewGeneratorFromRejectsOffDisplay(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for an anchor off the display")
		}
	}()
	NewGeneratorFrom(rand.NewPCG(1, 2), [3]Point{{0, 0}, {200, 0}, {0, 63}}, Point{0, 0})
}
