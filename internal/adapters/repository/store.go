// Package repository defines the roster store interface and errors.
package repository

import (
	"context"
	"time"

	"github.com/okian/rota/internal/domain/roster"
)

// Record is one saved roster version. The newest record is the active
// rotation definition; older records are kept as bookkeeping only.
type Record struct {
	ID      string
	Roster  roster.Roster
	SavedAt time.Time
}

// Store provides read/write access to the roster history.
type Store interface {
	// Save appends a new roster record and returns it.
	Save(ctx context.Context, r roster.Roster) (Record, error)

	// Latest returns the most recently saved record.
	// Returns ErrNoRoster when nothing has been saved yet.
	Latest(ctx context.Context) (Record, error)

	// Count returns the number of records currently retained.
	Count(ctx context.Context) int
}
