package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"connect4/config"
	"connect4/handlers"
	"connect4/middlewares"
	"connect4/server"
	"connect4/websocket"
)

func main() {
	log.Println("Starting connect4 server...")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.LoadConfig()

	connectionManager := websocket.NewConnectionManager()
	sessionManager := server.NewSessionManager()

	router := mux.NewRouter()

	router.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		upgrader := websocket.CreateUpgrader(config.AppConfig.AllowedOrigins)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("Error during connection upgrade:", err)
			return
		}

		go websocket.HandleConnection(conn, config.AppConfig.Game, connectionManager, sessionManager)
	})

	router.HandleFunc("/api/health", handlers.HandleHealth).Methods("GET")
	router.HandleFunc("/api/rules", handlers.HandleRules).Methods("GET")
	router.HandleFunc("/api/colours", handlers.HandleColours).Methods("GET")

	// the browser front end is the rendering surface, served as static files
	frontendPath := "web"
	fs := http.FileServer(http.Dir(frontendPath))
	router.PathPrefix("/").Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(frontendPath, r.URL.Path)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			http.ServeFile(w, r, filepath.Join(frontendPath, "index.html"))
			return
		}
		fs.ServeHTTP(w, r)
	}))

	srv := &http.Server{
		Addr:    "0.0.0.0:" + config.AppConfig.Port,
		Handler: middlewares.EnableCORS(router),
	}

	go func() {
		log.Printf("Server running on http://0.0.0.0:%s", config.AppConfig.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
