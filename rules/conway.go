package rules

/*
Next applies Conway's Game of Life rules to a single cell.

	alive, fewer than 2 neighbors -> dead (underpopulation)
	alive, 2 or 3 neighbors       -> alive
	alive, more than 3 neighbors  -> dead (overpopulation)
	dead, exactly 3 neighbors     -> alive (reproduction)
	dead, otherwise               -> dead
*/
func Next(alive bool, liveNeighbors uint8) bool {
	switch {
	case alive && liveNeighbors < 2:
		return false
	case alive && (liveNeighbors == 2 || liveNeighbors == 3):
		return true
	case alive:
		return false
	default:
		return liveNeighbors == 3
	}
}
