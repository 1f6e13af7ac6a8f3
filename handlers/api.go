package handlers

import (
	"encoding/json"
	"net/http"

	"connect4/config"
	"connect4/models"
)

type RulesResponse struct {
	Rows      int `json:"rows"`
	Columns   int `json:"columns"`
	RunLength int `json:"runLength"`
}

type PaletteResponse struct {
	Colours map[string]models.RGB `json:"colours"`
	Empty   models.RGB            `json:"empty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// HandleHealth reports server liveness.
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// HandleRules returns the board dimensions and run length the server was
// configured with, so the front end can draw the right grid.
func HandleRules(w http.ResponseWriter, r *http.Request) {
	cfg := config.AppConfig.Game
	writeJSON(w, RulesResponse{
		Rows:      cfg.Rows,
		Columns:   cfg.Columns,
		RunLength: cfg.RunLength,
	}, http.StatusOK)
}

// HandleColours returns the palette players pick from on the setup screen.
func HandleColours(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, PaletteResponse{
		Colours: models.Colours,
		Empty:   models.Gray,
	}, http.StatusOK)
}

// Helper functions
func writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
