package model

import (
	"bufio"
	"io"
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

const (
	gridPosAlive = "◼"
	gridPosDead  = "◻"

	clearCmd = "clear"
)

// Frame is a copy of one generation's packed cells, safe to hold across Advance
type Frame struct {
	Width      uint32
	Height     uint32
	Generation uint32
	Words      []uint64
	Living     int
}

// Snapshot copies the current generation out of the grid
func (g *Grid) Snapshot() Frame {
	words := g.Cells()
	return Frame{
		Width:      g.width,
		Height:     g.height,
		Generation: g.generation,
		Words:      append([]uint64(nil), words...),
		Living:     g.CountLivingCells(),
	}
}

// Alive reads the bit for (row, col) from the packed words
func (f Frame) Alive(row, col uint32) bool {
	i := uint64(row)*uint64(f.Width) + uint64(col)
	return f.Words[i/WordBits]&(1<<(i%WordBits)) != 0
}

// TerminalRenderer renders frames as text
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer returns a renderer writing to stdout
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout}
}

// Display renders the frame, one line per row
func (r *TerminalRenderer) Display(f Frame) error {
	w := bufio.NewWriter(r.Out)
	for row := range f.Height {
		for col := range f.Width {
			sym := gridPosDead
			if f.Alive(row, col) {
				sym = gridPosAlive
			}
			if _, err := w.WriteString(sym); err != nil {
				return errors.Wrap(err, "[Display] failed to write cell")
			}
		}
		if err := w.WriteByte('\n'); err != nil {
			return errors.Wrap(err, "[Display] failed to write row")
		}
	}
	return errors.Wrap(w.Flush(), "[Display] failed to flush")
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.Out
	return errors.Wrap(cmd.Run(), "[Clear] failed to clear terminal")
}
