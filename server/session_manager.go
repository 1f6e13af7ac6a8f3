package server

import (
	"fmt"
	"log"
	"sync"

	"connect4/game"
)

// SessionManager tracks active game sessions by gameID.
type SessionManager struct {
	sessions map[string]*GameSession
	mu       sync.RWMutex
}

func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*GameSession),
	}
}

func (sm *SessionManager) CreateSession(cfg game.Config, player1, player2 game.Player) (*GameSession, error) {
	session, err := NewGameSession(cfg, player1, player2)
	if err != nil {
		return nil, err
	}

	sm.mu.Lock()
	sm.sessions[session.GameID] = session
	sm.mu.Unlock()

	log.Printf("[SESSION] Created session %s: %s (%s) vs %s (%s)",
		session.GameID, player1.Name, player1.Colour, player2.Name, player2.Colour)
	return session, nil
}

func (sm *SessionManager) GetSession(gameID string) (*GameSession, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.sessions[gameID]
	return session, exists
}

func (sm *SessionManager) RemoveSession(gameID string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.sessions[gameID]; !exists {
		return fmt.Errorf("session not found")
	}

	log.Printf("[SESSION] Removing session %s", gameID)
	delete(sm.sessions, gameID)
	return nil
}

func (sm *SessionManager) ActiveSessionCount() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}
