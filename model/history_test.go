package model

import "testing"

func TestHistoryDetectsStillLife(t *testing.T) {
	g := newEmpty(t, 8, 8)
	g.Stamp(Block, 3, 3)
	h := NewHistory(0)

	if h.Observe(g.Hash()) {
		t.Fatalf("initial state reported stagnant")
	}
	for step := 1; step <= 4; step++ {
		g.Advance()
		stagnant := h.Observe(g.Hash())
		if want := step >= 3; stagnant != want {
			t.Fatalf("step %d: stagnant = %v, expected %v", step, stagnant, want)
		}
	}

	h.Reset()
	if h.IsStagnant(g.Hash()) {
		t.Fatalf("IsStagnant after Reset should be false")
	}
}

func TestHistorySmallSizesStillDetect(t *testing.T) {
	for _, size := range []int{-1, 1, 2} {
		g := newEmpty(t, 8, 8)
		g.Stamp(Block, 3, 3)
		h := NewHistory(size)
		h.Observe(g.Hash())

		stagnant := false
		for range 6 {
			g.Advance()
			stagnant = h.Observe(g.Hash())
		}
		if !stagnant {
			t.Fatalf("NewHistory(%d) never reported a still life as stagnant", size)
		}
	}
}

func TestHistoryDetectsOscillator(t *testing.T) {
	g := newEmpty(t, 8, 8)
	g.AddOscillator(4, 2)
	h := NewHistory(3)

	h.Observe(g.Hash())
	g.Advance()
	h.Observe(g.Hash())
	g.Advance()
	h.Observe(g.Hash())
	g.Advance()
	if !h.IsStagnant(g.Hash()) {
		t.Fatalf("blinker should be reported as a period-2 cycle")
	}
}

func TestHistoryIgnoresMovingGlider(t *testing.T) {
	g := newEmpty(t, 20, 20)
	g.AddGlider(2, 2)
	h := NewHistory(0)

	h.Observe(g.Hash())
	for step := 0; step < 12; step++ {
		g.Advance()
		if h.Observe(g.Hash()) {
			t.Fatalf("glider reported stagnant at step %d", step)
		}
	}
}
