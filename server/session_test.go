package server

import (
	"errors"
	"testing"

	"connect4/game"
	"connect4/models"
)

func testPlayers() (game.Player, game.Player) {
	return game.Player{Name: "Alice", Colour: "red"},
		game.Player{Name: "Bob", Colour: "blue"}
}

func TestCreateSessionValidatesColours(t *testing.T) {
	sm := NewSessionManager()
	p1, _ := testPlayers()

	_, err := sm.CreateSession(game.DefaultConfig(), p1, game.Player{Name: "Bob", Colour: "red"})
	if err != models.ErrColourTaken {
		t.Fatalf("expected ErrColourTaken, got %v", err)
	}

	_, err = sm.CreateSession(game.DefaultConfig(), p1, game.Player{Name: "Bob", Colour: "teal"})
	if !errors.Is(err, models.ErrUnknownColour) {
		t.Fatalf("expected ErrUnknownColour, got %v", err)
	}

	if sm.ActiveSessionCount() != 0 {
		t.Errorf("rejected sessions should not be registered")
	}
}

func TestCreateSessionValidatesBoard(t *testing.T) {
	sm := NewSessionManager()
	p1, p2 := testPlayers()

	_, err := sm.CreateSession(game.Config{Rows: 0, Columns: 7, RunLength: 4}, p1, p2)
	if !errors.Is(err, game.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestSessionLifecycle(t *testing.T) {
	sm := NewSessionManager()
	p1, p2 := testPlayers()

	session, err := sm.CreateSession(game.DefaultConfig(), p1, p2)
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if session.GameID == "" {
		t.Fatal("session has no game ID")
	}

	got, exists := sm.GetSession(session.GameID)
	if !exists || got != session {
		t.Fatalf("session not found by ID")
	}

	if err := sm.RemoveSession(session.GameID); err != nil {
		t.Fatalf("RemoveSession failed: %v", err)
	}
	if _, exists := sm.GetSession(session.GameID); exists {
		t.Errorf("removed session still registered")
	}
	if err := sm.RemoveSession(session.GameID); err == nil {
		t.Errorf("removing a missing session should fail")
	}
}

func TestSubmitMoveOutcome(t *testing.T) {
	sm := NewSessionManager()
	p1, p2 := testPlayers()

	session, err := sm.CreateSession(game.Config{Rows: 4, Columns: 4, RunLength: 3}, p1, p2)
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	outcome, err := session.SubmitMove(1)
	if err != nil {
		t.Fatalf("move rejected: %v", err)
	}
	if outcome.Mover != game.Player1 || outcome.NextTurn != game.Player2 {
		t.Errorf("mover=%d next=%d, want 1 and 2", outcome.Mover, outcome.NextTurn)
	}
	if outcome.Board[3][1] != int(game.Player1) {
		t.Errorf("board snapshot missing the placed disk")
	}
}

func TestFinishedSessionRejectsMoves(t *testing.T) {
	sm := NewSessionManager()
	p1, p2 := testPlayers()

	session, err := sm.CreateSession(game.Config{Rows: 4, Columns: 4, RunLength: 3}, p1, p2)
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	// Alice takes the bottom row while Bob stacks column 3
	for _, col := range []int{0, 3, 1, 3, 2} {
		if _, err := session.SubmitMove(col); err != nil {
			t.Fatalf("move in column %d rejected: %v", col, err)
		}
	}

	if !session.IsFinished() {
		t.Fatal("session should be finished")
	}
	if session.FinishedAt.IsZero() {
		t.Errorf("FinishedAt not stamped")
	}
	if _, err := session.SubmitMove(0); err != game.ErrGameOver {
		t.Errorf("expected ErrGameOver, got %v", err)
	}

	snapshot := session.Snapshot()
	if snapshot.Status != game.StatusWon || snapshot.Winner != game.Player1 {
		t.Errorf("snapshot status=%s winner=%d", snapshot.Status, snapshot.Winner)
	}
}

func TestSnapshotPlayers(t *testing.T) {
	sm := NewSessionManager()
	p1, p2 := testPlayers()

	session, err := sm.CreateSession(game.DefaultConfig(), p1, p2)
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	snapshot := session.Snapshot()
	if len(snapshot.Players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(snapshot.Players))
	}
	if snapshot.Players[0].Name != "Alice" || snapshot.Players[0].RGB != (models.RGB{R: 255, G: 0, B: 0}) {
		t.Errorf("unexpected player 1 info: %+v", snapshot.Players[0])
	}
	if snapshot.CurrentTurn != game.Player1 {
		t.Errorf("new game should start with player 1")
	}
}
