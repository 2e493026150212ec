package model

// Pattern is a small block of cells, rows top to bottom
type Pattern [][]bool

var (
	// Glider travels one cell down and right every four generations
	Glider = Pattern{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}
	// Blinker is a period-2 oscillator, horizontal phase
	Blinker = Pattern{
		{true, true, true},
	}
	// Block is a 2x2 still life
	Block = Pattern{
		{true, true},
		{true, true},
	}
)

// Stamp writes the pattern with its top-left corner at (row, col), wrapping across edges
func (g *Grid) Stamp(p Pattern, row, col int) {
	for dy, line := range p {
		for dx, cell := range line {
			g.Set(row+dy, col+dx, cell)
		}
	}
}

// AddGlider adds a glider pattern at the specified position
func (g *Grid) AddGlider(row, col int) {
	g.Stamp(Glider, row, col)
}

// AddOscillator adds a blinker oscillator pattern
func (g *Grid) AddOscillator(row, col int) {
	g.Stamp(Blinker, row, col)
}

// AddInterestingPatterns stamps gliders and blinkers sized to the grid, over whatever is already there
func (g *Grid) AddInterestingPatterns() {
	w, h := int(g.width), int(g.height)
	if w < 10 || h < 10 {
		return
	}

	g.AddGlider(5, 5)
	if w >= 20 && h >= 15 {
		g.AddGlider(5, w-8)
	}

	g.AddOscillator(h/4, w/4)
	if w >= 30 {
		g.AddOscillator(3*h/4, 3*w/4)
	}
}
