// Command api starts the OpenHire HTTP API server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"OpenHire-backend/internal/database"
	"OpenHire-backend/internal/server"
	"OpenHire-backend/internal/sweeper"
)

func main() {
	cfg, err := database.FromEnv()
	if err != nil {
		log.Fatalf("Invalid database configuration: %v", err)
	}
	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Database failed to initialize: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	spec := os.Getenv("SWEEP_SPEC")
	if spec == "" {
		spec = "@every 1h"
	}
	sw := sweeper.New(db, spec)
	if err := sw.Start(); err != nil {
		log.Fatalf("Failed to start expiry sweeper: %v", err)
	}
	defer sw.Stop()

	srv := server.New(db)

	go func() {
		log.Printf("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
}
