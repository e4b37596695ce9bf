package repository

import "time"

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithMaxHistory bounds how many superseded roster records are retained.
// The latest record is never evicted.
func WithMaxHistory(n int) Option {
	return func(s *MemoryStore) {
		if n > 0 {
			s.maxHistory = n
		}
	}
}

// WithClock overrides the wall clock used to stamp records. Intended for
// tests.
func WithClock(now func() time.Time) Option {
	return func(s *MemoryStore) {
		if now != nil {
			s.now = now
		}
	}
}
