package model

const (
	// defaultHistorySize keeps enough states to catch period-1 to period-3 cycles
	defaultHistorySize = 5
	// minHistorySize is the number of states IsStagnant compares against
	minHistorySize = 3
)

// History remembers hashes of recent grid states for cycle detection
type History struct {
	size   int
	hashes []string
}

// NewHistory returns a History holding at most size hashes. Sizes below 3 use the default.
func NewHistory(size int) *History {
	if size < minHistorySize {
		size = defaultHistorySize
	}
	return &History{size: size}
}

// Update adds a state hash to history and maintains size
func (h *History) Update(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// Reset forgets all recorded states
func (h *History) Reset() {
	h.hashes = nil
}

// IsStagnant reports whether hash repeats one of the last three recorded states
func (h *History) IsStagnant(hash string) bool {
	if len(h.hashes) < minHistorySize {
		return false
	}
	for _, prev := range h.hashes[len(h.hashes)-minHistorySize:] {
		if prev == hash {
			return true
		}
	}
	return false
}

/*
Observe checks a newly reached state for stagnation and then records it.

The host hashes each generation once (see Grid.Hash) and hands the result here.
*/
func (h *History) Observe(hash string) bool {
	stagnant := h.IsStagnant(hash)
	h.Update(hash)
	return stagnant
}
