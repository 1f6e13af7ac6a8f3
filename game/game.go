package game

import (
	"fmt"
	"strings"
)

// Config carries the board dimensions and the run length needed to win.
type Config struct {
	Rows      int
	Columns   int
	RunLength int
}

func DefaultConfig() Config {
	return Config{
		Rows:      DefaultRows,
		Columns:   DefaultColumns,
		RunLength: DefaultRunLength,
	}
}

func (c Config) validate() error {
	var problems []string
	if c.Rows <= 0 {
		problems = append(problems, "rows must be greater than 0")
	}
	if c.Columns <= 0 {
		problems = append(problems, "columns must be greater than 0")
	}
	if c.RunLength <= 0 {
		problems = append(problems, "run length must be greater than 0")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, ", "))
	}
	return nil
}

// Game drives a single match between two players. It owns the grid, one
// connection tracker per player, the turn order and the terminal outcome.
// Not safe for concurrent use, callers wrap it in their own lock.
type Game struct {
	cfg      Config
	grid     *Grid
	trackers [2]*ConnectionTracker
	players  [2]Player
	current  PlayerID
	moves    int
	status   Status
	winner   PlayerID
}

func NewGame(cfg Config, player1, player2 Player) (*Game, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Game{
		cfg:  cfg,
		grid: NewGrid(cfg.Rows, cfg.Columns),
		trackers: [2]*ConnectionTracker{
			NewConnectionTracker(cfg.Rows, cfg.Columns),
			NewConnectionTracker(cfg.Rows, cfg.Columns),
		},
		players: [2]Player{player1, player2},
		current: Player1,
		status:  StatusActive,
		winner:  Empty,
	}, nil
}

// MoveResult is what the presentation layer gets back for every move
// attempt. Row and Col are only meaningful when the move was accepted.
type MoveResult struct {
	Accepted bool
	Row      int
	Col      int
	Status   Status
	Winner   PlayerID
}

func (g *Game) tracker(id PlayerID) *ConnectionTracker {
	return g.trackers[id-1]
}

func (g *Game) rejected() MoveResult {
	return MoveResult{Accepted: false, Row: -1, Col: -1, Status: g.status, Winner: g.winner}
}

// SubmitMove drops a disk for the active player in the given column and
// advances the state machine. A failed drop is a no-op: turn order, move
// count and outcome are untouched and the error is reported back so the
// caller can reprompt.
func (g *Game) SubmitMove(column int) (MoveResult, error) {
	if g.status != StatusActive {
		return g.rejected(), ErrGameOver
	}

	placed, err := g.grid.Drop(column, g.current)
	if err != nil {
		return g.rejected(), err
	}
	g.moves++

	tracker := g.tracker(g.current)
	tracker.Record(placed)

	result := MoveResult{
		Accepted: true,
		Row:      placed.Row,
		Col:      placed.Col,
		Status:   StatusActive,
		Winner:   Empty,
	}

	if tracker.HasWinningRun(placed, g.cfg.RunLength) {
		g.status = StatusWon
		g.winner = g.current
		result.Status = StatusWon
		result.Winner = g.current
		return result, nil
	}

	if g.moves == g.cfg.Rows*g.cfg.Columns {
		g.status = StatusDraw
		result.Status = StatusDraw
		return result, nil
	}

	// switch player
	if g.current == Player1 {
		g.current = Player2
	} else {
		g.current = Player1
	}

	return result, nil
}

func (g *Game) Status() Status {
	return g.status
}

// Winner returns who won, or Empty while nobody has.
func (g *Game) Winner() PlayerID {
	return g.winner
}

func (g *Game) ActivePlayer() PlayerID {
	return g.current
}

func (g *Game) MoveCount() int {
	return g.moves
}

func (g *Game) IsFinished() bool {
	return g.status != StatusActive
}

func (g *Game) Config() Config {
	return g.cfg
}

// CellOwner reports who occupies (row, col), Empty meaning nobody.
func (g *Game) CellOwner(row, col int) PlayerID {
	return g.grid.Owner(row, col)
}

// PlayerInfo returns the display attributes registered for id.
func (g *Game) PlayerInfo(id PlayerID) (Player, bool) {
	if id != Player1 && id != Player2 {
		return Player{}, false
	}
	return g.players[id-1], true
}

// Board returns a serializable copy of the grid for rendering.
func (g *Game) Board() [][]int {
	return g.grid.Snapshot()
}
