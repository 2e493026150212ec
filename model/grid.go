package model

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-life/rules"
)

// WordBits is the number of cells packed into each word returned by Cells.
const WordBits = 64

var (
	ErrInvalidDimensions = errors.New("grid dimensions must be positive and hold at most 2^32-1 cells")
	ErrNoRandomSource    = errors.New("random seed policy requires a random source")
	ErrUnknownSeedPolicy = errors.New("unknown seed policy")
)

// SeedPolicy selects how a new grid's cells are populated
type SeedPolicy int

const (
	// SeedRandom makes each cell alive with probability 0.5
	SeedRandom SeedPolicy = iota
	// SeedDeterministic makes cell i alive iff i%2 == 0 || i%7 == 0
	SeedDeterministic
	// SeedEmpty leaves every cell dead so the host can place patterns
	SeedEmpty
)

func (p SeedPolicy) String() string {
	switch p {
	case SeedRandom:
		return "random"
	case SeedDeterministic:
		return "deterministic"
	case SeedEmpty:
		return "empty"
	}
	return fmt.Sprintf("SeedPolicy(%d)", int(p))
}

// RandomSource yields uniform values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

/*
Grid is a toroidal Game of Life board.

Cells are stored one bit per cell in row-major order, index(row, col) = row*width + col.
The current generation lives in cells; next is the scratch buffer written by Advance,
after which the two are swapped. A Grid is not safe for concurrent use.
*/
type Grid struct {
	width      uint32
	height     uint32
	generation uint32
	cells      *bitset.BitSet
	next       *bitset.BitSet
}

// NewGrid creates a grid with the specified dimensions, seeded per policy.
// src is only consulted for SeedRandom and may be nil otherwise.
func NewGrid(width, height uint32, policy SeedPolicy, src RandomSource) (*Grid, error) {
	if width == 0 || height == 0 || uint64(width)*uint64(height) > math.MaxUint32 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] got %dx%d", width, height)
	}

	size := uint(width) * uint(height)
	g := &Grid{
		width:  width,
		height: height,
		cells:  bitset.New(size),
		next:   bitset.New(size),
	}

	switch policy {
	case SeedRandom:
		if src == nil {
			return nil, errors.Wrap(ErrNoRandomSource, "[NewGrid]")
		}
		for i := uint(0); i < size; i++ {
			g.cells.SetTo(i, src.Float64() < 0.5)
		}
	case SeedDeterministic:
		for i := uint(0); i < size; i++ {
			g.cells.SetTo(i, i%2 == 0 || i%7 == 0)
		}
	case SeedEmpty:
	default:
		return nil, errors.Wrapf(ErrUnknownSeedPolicy, "[NewGrid] policy: %v", policy)
	}

	return g, nil
}

// Width returns the column count
func (g *Grid) Width() uint32 {
	return g.width
}

// Height returns the row count
func (g *Grid) Height() uint32 {
	return g.height
}

// Generation returns the number of completed Advance calls
func (g *Grid) Generation() uint32 {
	return g.generation
}

// Len returns the number of logical cells, width*height
func (g *Grid) Len() uint {
	return g.cells.Len()
}

/*
Cells returns the packed words of the current generation.

Cell i is bit i%64 of word i/64. The slice aliases the grid's storage: it must not be
modified, and it is invalidated by the next call to Advance.
*/
func (g *Grid) Cells() []uint64 {
	return g.cells.Bytes()
}

// Index maps (row, col) to the linear cell index, wrapping both toroidally
func (g *Grid) Index(row, col int) uint {
	r := (row%int(g.height) + int(g.height)) % int(g.height)
	c := (col%int(g.width) + int(g.width)) % int(g.width)
	return uint(r)*uint(g.width) + uint(c)
}

// Alive reports the state of a cell
func (g *Grid) Alive(row, col int) bool {
	return g.cells.Test(g.Index(row, col))
}

// Set sets a cell to alive (true) or dead (false). Intended for initial conditions.
func (g *Grid) Set(row, col int, alive bool) {
	g.cells.SetTo(g.Index(row, col), alive)
}

// index is the unwrapped row-major index; callers pass in-range coordinates
func (g *Grid) index(row, col uint32) uint {
	return uint(row)*uint(g.width) + uint(col)
}

// LiveNeighborCount counts the alive cells among the eight toroidal neighbors
func (g *Grid) LiveNeighborCount(row, col int) uint8 {
	i := g.Index(row, col)
	return g.liveNeighborCount(uint32(i/uint(g.width)), uint32(i%uint(g.width)))
}

func (g *Grid) liveNeighborCount(row, col uint32) uint8 {
	north := row - 1
	if row == 0 {
		north = g.height - 1
	}
	south := row + 1
	if row == g.height-1 {
		south = 0
	}
	west := col - 1
	if col == 0 {
		west = g.width - 1
	}
	east := col + 1
	if col == g.width-1 {
		east = 0
	}

	var count uint8
	for _, idx := range [8]uint{
		g.index(north, west), g.index(north, col), g.index(north, east),
		g.index(row, west), g.index(row, east),
		g.index(south, west), g.index(south, col), g.index(south, east),
	} {
		if g.cells.Test(idx) {
			count++
		}
	}
	return count
}

// Advance computes the next generation from a frozen view of the current one
func (g *Grid) Advance() {
	for row := uint32(0); row < g.height; row++ {
		for col := uint32(0); col < g.width; col++ {
			idx := g.index(row, col)
			g.next.SetTo(idx, rules.Next(g.cells.Test(idx), g.liveNeighborCount(row, col)))
		}
	}

	g.cells, g.next = g.next, g.cells
	g.generation++
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() int {
	return int(g.cells.Count())
}

// Equal reports whether both grids have the same dimensions and cell states
func (g *Grid) Equal(other *Grid) bool {
	return g.width == other.width && g.height == other.height && g.cells.Equal(other.cells)
}

// Hash returns an MD5 hash of the current grid state
func (g *Grid) Hash() string {
	h := md5.New()
	buf := make([]byte, 8)
	for _, w := range g.cells.Bytes() {
		binary.LittleEndian.PutUint64(buf, w)
		h.Write(buf)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
