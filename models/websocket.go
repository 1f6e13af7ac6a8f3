package models

type ClientMessage struct {
	Type          string `json:"type"`
	GameID        string `json:"gameId,omitempty"`
	Player1Name   string `json:"player1Name,omitempty"`
	Player1Colour string `json:"player1Colour,omitempty"`
	Player2Name   string `json:"player2Name,omitempty"`
	Player2Colour string `json:"player2Colour,omitempty"`
	Column        int    `json:"column"`
}

type ServerMessage struct {
	Type        string         `json:"type"`
	Message     string         `json:"message,omitempty"`
	GameID      string         `json:"gameId,omitempty"`
	Rows        int            `json:"rows,omitempty"`
	Columns     int            `json:"columns,omitempty"`
	RunLength   int            `json:"runLength,omitempty"`
	Board       [][]int        `json:"board,omitempty"`
	CurrentTurn int            `json:"currentTurn,omitempty"`
	Column      int            `json:"column,omitempty"`
	Row         int            `json:"row,omitempty"`
	Player      int            `json:"player,omitempty"`
	Players     []PlayerInfo   `json:"players,omitempty"`
	Winner      string         `json:"winner,omitempty"`
	Reason      string         `json:"reason,omitempty"`
	Palette     map[string]RGB `json:"palette,omitempty"`
}

type PlayerInfo struct {
	Player int    `json:"player"`
	Name   string `json:"name"`
	Colour string `json:"colour"`
	RGB    RGB    `json:"rgb"`
}

type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
