package server

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"

	"OpenHire-backend/internal/database"
)

// Server holds the port and the storage handle the route handlers use
type Server struct {
	port int

	db *database.DB
}

// New constructs an http.Server around an already-opened database handle.
// The caller owns the handle's lifecycle and closes it on shutdown.
func New(db *database.DB) *http.Server {
	port, _ := strconv.Atoi(os.Getenv("PORT"))
	if port == 0 {
		port = 8080
	}

	s := &Server{
		port: port,
		db:   db,
	}

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
