package model

import (
	"bytes"
	"testing"
)

func TestDisplay(t *testing.T) {
	g := newEmpty(t, 3, 2)
	g.Set(0, 1, true)
	g.Set(1, 0, true)
	g.Set(1, 2, true)

	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf}
	if err := r.Display(g.Snapshot()); err != nil {
		t.Fatalf("Display: %v", err)
	}

	want := "◻◼◻\n◼◻◼\n"
	if buf.String() != want {
		t.Fatalf("Display wrote %q, expected %q", buf.String(), want)
	}
}

func TestSnapshotIsIndependentOfAdvance(t *testing.T) {
	g, _ := NewGrid(17, 9, SeedDeterministic, nil)
	f := g.Snapshot()

	if f.Width != 17 || f.Height != 9 || f.Generation != 0 || f.Living != g.CountLivingCells() {
		t.Fatalf("snapshot header = %+v", f)
	}
	for row := range f.Height {
		for col := range f.Width {
			if f.Alive(row, col) != g.Alive(int(row), int(col)) {
				t.Fatalf("frame cell (%d,%d) disagrees with grid", row, col)
			}
		}
	}

	before := append([]uint64(nil), f.Words...)
	g.Advance()
	g.Advance()
	for i := range before {
		if f.Words[i] != before[i] {
			t.Fatalf("snapshot word %d changed after advance", i)
		}
	}
}
