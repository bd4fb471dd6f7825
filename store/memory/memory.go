// store/memory/memory.go - In-memory mock backend
//
// The store owns one ordered slice per entity collection, mutated in place
// under a mutex. An artificial latency runs before every operation so the
// client's loading states get exercised the same way they would against the
// remote backend; the wait respects the caller's context. Each mutation is
// applied in a single critical section, so no caller can observe a torn
// write even though the latency wrapper is asynchronous.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"projectflow/models"
)

// Config tunes a mock store instance.
type Config struct {
	// Latency is waited before every operation completes. Zero disables it.
	Latency time.Duration
	// Seed loads the demo fixtures into the new store.
	Seed bool
}

// Store is an in-memory implementation of store.Store.
type Store struct {
	mu      sync.Mutex
	latency time.Duration

	projects []models.Project
	tasks    []models.Task
	teams    []models.Team
	users    []models.User
	entries  []models.TimeEntry
	messages []models.Message

	now func() time.Time
}

// New creates a mock store owning its own collections. Nothing is shared
// between instances, so tests can construct as many as they need.
func New(cfg Config) *Store {
	s := &Store{
		latency: cfg.Latency,
		now:     func() time.Time { return time.Now().UTC() },
	}
	if cfg.Seed {
		s.seed()
	}
	return s
}

// wait simulates the round trip to a real backend.
func (s *Store) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (s *Store) newID() string {
	return uuid.NewString()
}

// tick returns the current time, nudged forward if the clock has not moved
// past prev yet. Keeps updated_at strictly increasing across back-to-back
// updates of the same record.
func (s *Store) tick(prev time.Time) time.Time {
	now := s.now()
	if !now.After(prev) {
		now = prev.Add(time.Nanosecond)
	}
	return now
}

// matchSearch is a case-insensitive substring match over the given fields.
func matchSearch(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	search = strings.ToLower(search)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), search) {
			return true
		}
	}
	return false
}
