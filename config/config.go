package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"connect4/game"
)

type Config struct {
	Port           string
	AllowedOrigins []string
	Game           game.Config
}

var AppConfig *Config

func LoadConfig() {
	port := GetEnv("PORT", "8080")

	rows := GetEnvAsInt("BOARD_ROWS", game.DefaultRows)
	columns := GetEnvAsInt("BOARD_COLUMNS", game.DefaultColumns)
	runLength := GetEnvAsInt("RUN_LENGTH", game.DefaultRunLength)

	// "*" allows all origins, handy during local development
	allowedOrigins := strings.Split(GetEnv("ALLOWED_ORIGINS", "*"), ",")
	for i := range allowedOrigins {
		allowedOrigins[i] = strings.TrimSpace(allowedOrigins[i])
	}

	AppConfig = &Config{
		Port:           port,
		AllowedOrigins: allowedOrigins,
		Game: game.Config{
			Rows:      rows,
			Columns:   columns,
			RunLength: runLength,
		},
	}

	log.Printf("Config loaded: Port=%s, Board=%dx%d, RunLength=%d, AllowedOrigins=%v",
		AppConfig.Port, rows, columns, runLength, AppConfig.AllowedOrigins)
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
