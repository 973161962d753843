// Package sweeper wires up the cron job that periodically flips overdue
// active listings to expired, so direct fetches converge with the search
// predicate's expiry clause.
package sweeper

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"OpenHire-backend/internal/database"
	"OpenHire-backend/internal/model"
)

// Sweeper wraps robfig/cron and manages the expiry sweep.
type Sweeper struct {
	cron *cron.Cron
	db   *database.DB
	spec string // cron spec, e.g. "@every 1h"
}

// New creates a Sweeper firing on the given cron spec.
func New(db *database.DB, spec string) *Sweeper {
	return &Sweeper{
		cron: cron.New(),
		db:   db,
		spec: spec,
	}
}

// Start registers the job and starts the scheduler. Also runs one sweep
// immediately so stale rows don't linger until the first tick.
func (s *Sweeper) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.sweep); err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("[sweeper] started, spec: %s", s.spec)

	go s.sweep()

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Sweeper) Stop() {
	s.cron.Stop()
	log.Println("[sweeper] stopped")
}

func (s *Sweeper) sweep() {
	result := s.db.Model(&model.Job{}).
		Where("status = ? AND expires_at IS NOT NULL AND expires_at <= ?", model.JobStatusActive, time.Now()).
		Update("status", model.JobStatusExpired)
	if result.Error != nil {
		log.Printf("[sweeper] sweep failed: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("[sweeper] expired %d listing(s)", result.RowsAffected)
	}
}
