package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/rota/internal/domain/roster"
)

// Default store configuration constants.
const (
	defaultMaxHistory = 100
)

// MemoryStore implements Store with an in-memory, append-only history.
// Saves are last-write-wins: Latest always reflects the newest Save.
type MemoryStore struct {
	mu         sync.RWMutex
	records    []Record
	maxHistory int
	now        func() time.Time
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates a new in-memory roster store with configuration
// options.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		maxHistory: defaultMaxHistory,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Save appends a new roster record and returns it.
func (s *MemoryStore) Save(_ context.Context, r roster.Roster) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := Record{
		ID:      uuid.NewString(),
		Roster:  r,
		SavedAt: s.now().UTC(),
	}
	s.records = append(s.records, rec)

	// Evict the oldest records once history exceeds the bound.
	if len(s.records) > s.maxHistory {
		trimmed := make([]Record, s.maxHistory)
		copy(trimmed, s.records[len(s.records)-s.maxHistory:])
		s.records = trimmed
	}

	return rec, nil
}

// Latest returns the most recently saved record.
func (s *MemoryStore) Latest(_ context.Context) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.records) == 0 {
		return Record{}, ErrNoRoster
	}
	return s.records[len(s.records)-1], nil
}

// Count returns the number of records currently retained.
func (s *MemoryStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}
