package game

// to represent the players in the game
type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// size of a classic board
const (
	DefaultRows      = 6
	DefaultColumns   = 7
	DefaultRunLength = 4
)

// to represent the game status
type Status string

const (
	StatusActive Status = "active"
	StatusWon    Status = "won"
	StatusDraw   Status = "draw"
)

// Coord identifies a single cell on the board. Row 0 is the top row.
type Coord struct {
	Row int
	Col int
}

// basic errors that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidColumn Error = "column index out of bounds"
	ErrColumnFull    Error = "column is full"
	ErrGameOver      Error = "game is already over"
	ErrInvalidConfig Error = "invalid configuration"
)

// Player carries the display attributes of one side. The engine treats
// both fields as opaque tags.
type Player struct {
	Name   string
	Colour string
}
