package game

// the 8 neighbour directions; a direction and its opposite form one axis
type direction int

const (
	east direction = iota
	northEast
	north
	northWest
	west
	southWest
	south
	southEast
)

// offsets[d] is the unit step for direction d, in (row, col) order
var offsets = [8]Coord{
	{0, 1},   // east
	{-1, 1},  // northEast
	{-1, 0},  // north
	{-1, -1}, // northWest
	{0, -1},  // west
	{1, -1},  // southWest
	{1, 0},   // south
	{1, 1},   // southEast
}

func (d direction) opposite() direction {
	return (d + 4) % 8
}

// one representative direction per axis: horizontal, vertical and the
// two diagonals; the opposite direction is walked as part of the same axis
var axes = [4]direction{east, north, northEast, northWest}

// dirSet is a bitmask of recorded edges leaving a cell, one bit per direction
type dirSet uint8

func (s dirSet) has(d direction) bool {
	return s&(1<<uint(d)) != 0
}

func (s *dirSet) add(d direction) {
	*s |= 1 << uint(d)
}

// ConnectionTracker records, for a single player, which neighbouring cells
// of every placed disk belong to that same player. Disks are never removed
// from the board, so edges only ever accumulate. Ownership and edges live
// in row×col indexed arrays rather than a coordinate-keyed map.
type ConnectionTracker struct {
	rows  int
	cols  int
	owned [][]bool
	links [][]dirSet
}

func NewConnectionTracker(rows, cols int) *ConnectionTracker {
	owned := make([][]bool, rows)
	links := make([][]dirSet, rows)
	for i := 0; i < rows; i++ {
		owned[i] = make([]bool, cols)
		links[i] = make([]dirSet, cols)
	}
	return &ConnectionTracker{
		rows:  rows,
		cols:  cols,
		owned: owned,
		links: links,
	}
}

func (t *ConnectionTracker) inBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < t.rows && c.Col >= 0 && c.Col < t.cols
}

// Owns reports whether this player has a disk at c.
func (t *ConnectionTracker) Owns(c Coord) bool {
	return t.inBounds(c) && t.owned[c.Row][c.Col]
}

// Linked reports whether an edge was recorded from c towards the cell one
// step away in direction d.
func (t *ConnectionTracker) linked(c Coord, d direction) bool {
	return t.links[c.Row][c.Col].has(d)
}

// Record marks c as owned and links it to every one of its 8 neighbours
// already owned by this player. Edges are added in both directions. The
// returned neighbours are the only cells that can extend a run through c.
func (t *ConnectionTracker) Record(c Coord) []Coord {
	t.owned[c.Row][c.Col] = true

	var connected []Coord
	for i, off := range offsets {
		n := Coord{Row: c.Row + off.Row, Col: c.Col + off.Col}
		if !t.inBounds(n) || !t.owned[n.Row][n.Col] {
			continue
		}

		d := direction(i)
		t.links[c.Row][c.Col].add(d)
		t.links[n.Row][n.Col].add(d.opposite())
		connected = append(connected, n)
	}

	return connected
}

// HasWinningRun reports whether c sits on a straight line of at least
// runLength connected disks. Each of the 4 axes is walked outward from c
// in both directions, following only the edge recorded for that exact
// unit step. An edge that belongs to a different axis but touches the
// same cell must never be followed, or diagonal clusters would be
// miscounted as runs.
func (t *ConnectionTracker) HasWinningRun(c Coord, runLength int) bool {
	if !t.Owns(c) {
		return false
	}

	for _, d := range axes {
		length := 1 + t.walk(c, d) + t.walk(c, d.opposite())
		if length >= runLength {
			return true
		}
	}

	return false
}

// walk counts the disks connected to c strictly along d, not counting c
// itself. Each step follows the directional edge out of the current cell,
// so the cost is bounded by the run length.
func (t *ConnectionTracker) walk(c Coord, d direction) int {
	off := offsets[d]
	count := 0
	for t.linked(c, d) {
		c = Coord{Row: c.Row + off.Row, Col: c.Col + off.Col}
		count++
	}
	return count
}
