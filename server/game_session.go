package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"connect4/game"
	"connect4/models"
)

// GameSession wraps one game behind a mutex. Both players share a single
// screen and a single connection; all mutation goes through the session.
type GameSession struct {
	GameID     string
	Game       *game.Game
	CreatedAt  time.Time
	FinishedAt time.Time
	mu         sync.Mutex
}

func NewGameSession(cfg game.Config, player1, player2 game.Player) (*GameSession, error) {
	if err := models.ValidatePlayerColours(player1.Colour, player2.Colour); err != nil {
		return nil, err
	}

	newGame, err := game.NewGame(cfg, player1, player2)
	if err != nil {
		return nil, err
	}

	return &GameSession{
		GameID:    uuid.NewString(),
		Game:      newGame,
		CreatedAt: time.Now(),
	}, nil
}

// MoveOutcome bundles everything the transport layer needs to report an
// accepted move.
type MoveOutcome struct {
	Result   game.MoveResult
	Mover    game.PlayerID
	NextTurn game.PlayerID
	Board    [][]int
}

func (gs *GameSession) SubmitMove(column int) (MoveOutcome, error) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	mover := gs.Game.ActivePlayer()
	result, err := gs.Game.SubmitMove(column)
	if err != nil {
		return MoveOutcome{}, err
	}

	if result.Status != game.StatusActive {
		gs.FinishedAt = time.Now()
	}

	return MoveOutcome{
		Result:   result,
		Mover:    mover,
		NextTurn: gs.Game.ActivePlayer(),
		Board:    gs.Game.Board(),
	}, nil
}

// Snapshot captures the session for a state request or a redraw.
type Snapshot struct {
	GameID      string
	Status      game.Status
	Winner      game.PlayerID
	CurrentTurn game.PlayerID
	Board       [][]int
	Players     []models.PlayerInfo
}

func (gs *GameSession) Snapshot() Snapshot {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	return Snapshot{
		GameID:      gs.GameID,
		Status:      gs.Game.Status(),
		Winner:      gs.Game.Winner(),
		CurrentTurn: gs.Game.ActivePlayer(),
		Board:       gs.Game.Board(),
		Players:     gs.playerInfos(),
	}
}

func (gs *GameSession) playerInfos() []models.PlayerInfo {
	infos := make([]models.PlayerInfo, 0, 2)
	for _, id := range []game.PlayerID{game.Player1, game.Player2} {
		p, _ := gs.Game.PlayerInfo(id)
		infos = append(infos, models.PlayerInfo{
			Player: int(id),
			Name:   p.Name,
			Colour: p.Colour,
			RGB:    models.Colours[p.Colour],
		})
	}
	return infos
}

func (gs *GameSession) IsFinished() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.Game.IsFinished()
}
