// Package worker provides background maintenance loops.
package worker

import (
	"context"
	"log/slog"
	"time"
)

// Cleaner drops state that is no longer needed.
type Cleaner interface {
	Cleanup()
}

// Janitor periodically runs a Cleaner, such as the in-memory rate limit store.
type Janitor struct {
	name     string
	cleaner  Cleaner
	interval time.Duration
}

// NewJanitor creates a new janitor. A non-positive interval defaults to one minute.
func NewJanitor(name string, cleaner Cleaner, interval time.Duration) *Janitor {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Janitor{
		name:     name,
		cleaner:  cleaner,
		interval: interval,
	}
}

// Start begins the cleanup loop. It blocks until the context is cancelled.
func (j *Janitor) Start(ctx context.Context) {
	slog.Info("Janitor started",
		"name", j.name,
		"interval", j.interval,
	)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Janitor shutting down", "name", j.name)
			return
		case <-ticker.C:
			j.cleaner.Cleanup()
		}
	}
}
