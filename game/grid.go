package game

// Grid stores cell ownership and per-column fill counts. It only knows
// about gravity, not turns or wins.
type Grid struct {
	rows    int
	cols    int
	cells   [][]PlayerID
	heights []int // occupied cells per column, counted from the bottom
}

func NewGrid(rows, cols int) *Grid {
	cells := make([][]PlayerID, rows)
	for i := range cells {
		cells[i] = make([]PlayerID, cols)
	}
	return &Grid{
		rows:    rows,
		cols:    cols,
		cells:   cells,
		heights: make([]int, cols),
	}
}

func (g *Grid) Rows() int {
	return g.rows
}

func (g *Grid) Cols() int {
	return g.cols
}

// Owner returns who occupies (row, col), or Empty. Out-of-range
// coordinates read as Empty.
func (g *Grid) Owner(row, col int) PlayerID {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return Empty
	}
	return g.cells[row][col]
}

// ColumnHeight returns how many disks are stacked in column.
func (g *Grid) ColumnHeight(column int) int {
	if column < 0 || column >= g.cols {
		return 0
	}
	return g.heights[column]
}

// Drop places a disk for player in column. The disk lands on the lowest
// empty cell, since cells[0] is the top row we scan from the bottom up.
// Nothing is mutated when the move fails.
func (g *Grid) Drop(column int, player PlayerID) (Coord, error) {
	if column < 0 || column >= g.cols {
		return Coord{}, ErrInvalidColumn
	}

	for row := g.rows - 1; row >= 0; row-- {
		if g.cells[row][column] == Empty {
			g.cells[row][column] = player
			g.heights[column]++
			return Coord{Row: row, Col: column}, nil
		}
	}

	return Coord{}, ErrColumnFull
}

func (g *Grid) IsFull() bool {
	for c := 0; c < g.cols; c++ {
		if g.cells[0][c] == Empty {
			return false
		}
	}

	return true
}

// this creates a deep copy of the board as plain ints for serialization
func (g *Grid) Snapshot() [][]int {
	board := make([][]int, g.rows)
	for r := range board {
		board[r] = make([]int, g.cols)
		for c := 0; c < g.cols; c++ {
			board[r][c] = int(g.cells[r][c])
		}
	}
	return board
}
