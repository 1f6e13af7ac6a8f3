package websocket

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"

	"connect4/models"
)

// Connection holds a WebSocket connection together with its write mutex.
type Connection struct {
	ConnID     string
	Conn       *websocket.Conn
	WriteMutex *sync.Mutex
}

// ConnectionManager manages websocket connections by connection ID.
type ConnectionManager struct {
	connections map[string]*Connection
	mu          sync.RWMutex
}

func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{
		connections: make(map[string]*Connection),
	}
}

func (cm *ConnectionManager) AddConnection(connID string, conn *websocket.Conn) error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if _, exists := cm.connections[connID]; exists {
		return fmt.Errorf("connection %s already registered", connID)
	}

	cm.connections[connID] = &Connection{
		ConnID:     connID,
		Conn:       conn,
		WriteMutex: &sync.Mutex{},
	}
	return nil
}

func (cm *ConnectionManager) RemoveConnection(connID string) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	delete(cm.connections, connID)
}

func (cm *ConnectionManager) SendMessage(connID string, message models.ServerMessage) error {
	cm.mu.RLock()
	connection, exists := cm.connections[connID]
	cm.mu.RUnlock()

	if !exists {
		return fmt.Errorf("connection %s does not exist", connID)
	}

	data, err := json.Marshal(message)
	if err != nil {
		return err
	}

	// per-connection write mutex to prevent concurrent writes
	connection.WriteMutex.Lock()
	defer connection.WriteMutex.Unlock()
	return connection.Conn.WriteMessage(websocket.TextMessage, data)
}
