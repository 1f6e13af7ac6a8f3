package websocket

import (
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"connect4/game"
	"connect4/models"
	"connect4/server"
)

// HandleConnection runs the message loop for a single WebSocket connection.
// One connection drives one screen: both players sit in front of it and the
// front end sends every move over the same socket. Sessions started here are
// torn down when the connection goes away.
func HandleConnection(conn *websocket.Conn, cfg game.Config, connManager *ConnectionManager, sessionManager *server.SessionManager) {
	defer conn.Close()

	connID := uuid.NewString()
	if err := connManager.AddConnection(connID, conn); err != nil {
		log.Printf("[WS] Failed to register connection: %v", err)
		return
	}
	log.Printf("[WS] Connection %s established", connID)

	var ownedGames []string
	defer func() {
		connManager.RemoveConnection(connID)
		for _, gameID := range ownedGames {
			sessionManager.RemoveSession(gameID)
		}
		log.Printf("[WS] Connection %s closed", connID)
	}()

	for {
		var message models.ClientMessage
		if err := conn.ReadJSON(&message); err != nil {
			log.Printf("[WS] Connection %s read error: %v", connID, err)
			return
		}

		switch message.Type {
		case "create":
			gameID := handleCreate(message, connID, cfg, connManager, sessionManager)
			if gameID != "" {
				ownedGames = append(ownedGames, gameID)
			}
		case "move":
			handleMove(message, connID, connManager, sessionManager)
		case "state":
			handleState(message, connID, connManager, sessionManager)
		default:
			SendErrorMessage(conn, "unknown_message_type", "Unknown message type")
		}
	}
}

// handleCreate starts a fresh game for the two named players and returns
// its gameID, or "" when the request was rejected.
func handleCreate(message models.ClientMessage, connID string, cfg game.Config, connManager *ConnectionManager, sessionManager *server.SessionManager) string {
	player1 := game.Player{Name: message.Player1Name, Colour: message.Player1Colour}
	player2 := game.Player{Name: message.Player2Name, Colour: message.Player2Colour}

	session, err := sessionManager.CreateSession(cfg, player1, player2)
	if err != nil {
		log.Printf("[WS] Connection %s create rejected: %v", connID, err)
		connManager.SendMessage(connID, models.ServerMessage{
			Type:    "create_rejected",
			Message: err.Error(),
		})
		return ""
	}

	snapshot := session.Snapshot()
	connManager.SendMessage(connID, models.ServerMessage{
		Type:        "game_start",
		GameID:      session.GameID,
		Rows:        cfg.Rows,
		Columns:     cfg.Columns,
		RunLength:   cfg.RunLength,
		Board:       snapshot.Board,
		CurrentTurn: int(snapshot.CurrentTurn),
		Players:     snapshot.Players,
	})
	return session.GameID
}

func handleMove(message models.ClientMessage, connID string, connManager *ConnectionManager, sessionManager *server.SessionManager) {
	session, exists := sessionManager.GetSession(message.GameID)
	if !exists {
		connManager.SendMessage(connID, models.ServerMessage{
			Type:    "move_rejected",
			Message: "unknown game",
		})
		return
	}

	outcome, err := session.SubmitMove(message.Column)
	if err != nil {
		reason := "invalid move"
		switch {
		case errors.Is(err, game.ErrInvalidColumn):
			reason = "that column does not exist"
		case errors.Is(err, game.ErrColumnFull):
			reason = "that column is full"
		case errors.Is(err, game.ErrGameOver):
			reason = "the game is already over"
		}
		connManager.SendMessage(connID, models.ServerMessage{
			Type:    "move_rejected",
			GameID:  session.GameID,
			Message: reason,
		})
		return
	}

	result := outcome.Result

	if result.Status == game.StatusWon {
		winner, _ := session.Game.PlayerInfo(result.Winner)
		connManager.SendMessage(connID, models.ServerMessage{
			Type:   "game_over",
			GameID: session.GameID,
			Column: result.Col,
			Row:    result.Row,
			Player: int(outcome.Mover),
			Board:  outcome.Board,
			Winner: winner.Name,
			Reason: "connect_four",
		})
		return
	}

	if result.Status == game.StatusDraw {
		connManager.SendMessage(connID, models.ServerMessage{
			Type:   "game_over",
			GameID: session.GameID,
			Column: result.Col,
			Row:    result.Row,
			Player: int(outcome.Mover),
			Board:  outcome.Board,
			Winner: "draw",
			Reason: "draw",
		})
		return
	}

	connManager.SendMessage(connID, models.ServerMessage{
		Type:        "move_made",
		GameID:      session.GameID,
		Column:      result.Col,
		Row:         result.Row,
		Player:      int(outcome.Mover),
		Board:       outcome.Board,
		CurrentTurn: int(outcome.NextTurn),
	})
}

func handleState(message models.ClientMessage, connID string, connManager *ConnectionManager, sessionManager *server.SessionManager) {
	session, exists := sessionManager.GetSession(message.GameID)
	if !exists {
		connManager.SendMessage(connID, models.ServerMessage{
			Type:    "state_rejected",
			Message: "unknown game",
		})
		return
	}

	snapshot := session.Snapshot()
	reply := models.ServerMessage{
		Type:        "game_state",
		GameID:      snapshot.GameID,
		Board:       snapshot.Board,
		CurrentTurn: int(snapshot.CurrentTurn),
		Players:     snapshot.Players,
	}
	if snapshot.Status == game.StatusWon {
		winner, _ := session.Game.PlayerInfo(snapshot.Winner)
		reply.Winner = winner.Name
	} else if snapshot.Status == game.StatusDraw {
		reply.Winner = "draw"
	}
	connManager.SendMessage(connID, reply)
}

// SendErrorMessage sends an error message to a connection
func SendErrorMessage(conn *websocket.Conn, errorType, message string) {
	conn.WriteJSON(models.ServerMessage{
		Type:    errorType,
		Message: message,
	})
}

// CreateUpgrader creates a WebSocket upgrader with proper CORS settings
func CreateUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}
			for _, allowed := range allowedOrigins {
				if allowed == "*" || allowed == origin {
					return true
				}
			}
			return false
		},
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}
}
