// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"
	"time"

	repository "github.com/okian/rota/internal/adapters/repository"
	"github.com/okian/rota/internal/domain/roster"
	"github.com/okian/rota/internal/domain/rotation"
	"github.com/okian/rota/pkg/logger"
	"github.com/okian/rota/pkg/metrics"
)

// Service owns the roster store and derives rotation answers from it.
type Service struct {
	mu sync.RWMutex

	// Core components
	store repository.Store

	// Configuration
	maxHistory int

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets a custom roster store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithMaxHistory bounds how many superseded roster records are retained.
func WithMaxHistory(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxHistory = n
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		maxHistory: 100,
		logger:     nil, // Will be replaced when the service starts
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	if s.store == nil {
		s.store = repository.NewMemoryStore(repository.WithMaxHistory(s.maxHistory))
	}

	s.started = true
	s.logger.Info(ctx, "rotation service started",
		logger.Int("maxHistory", s.maxHistory),
	)

	return nil
}

// Stop shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "rotation service stopped")
}

// SetRoster validates and saves a new rotation definition. It is
// last-write-wins: the saved roster immediately becomes the one that
// answers rotation queries.
func (s *Service) SetRoster(ctx context.Context, people []string, anchor string) (repository.Record, error) {
	r, err := roster.New(people, anchor)
	if err != nil {
		return repository.Record{}, err
	}

	rec, err := s.store.Save(ctx, r)
	if err != nil {
		return repository.Record{}, err
	}

	metrics.RecordRosterUpdate()
	metrics.UpdateRosterSize(len(r.People))
	metrics.UpdateRosterRecords(s.store.Count(ctx))

	s.logger.Info(ctx, "roster replaced",
		logger.String("id", rec.ID),
		logger.Strings("people", r.People),
		logger.String("anchor", r.Anchor.String()),
	)
	return rec, nil
}

// Roster returns the active rotation definition.
func (s *Service) Roster(ctx context.Context) (repository.Record, error) {
	return s.store.Latest(ctx)
}

// CurrentAssignment derives the assignment in effect at the given instant
// from the active roster.
func (s *Service) CurrentAssignment(ctx context.Context, at time.Time) (rotation.Assignment, error) {
	rec, err := s.store.Latest(ctx)
	if err != nil {
		metrics.RecordRotationError()
		return rotation.Assignment{}, err
	}

	a, err := rec.Roster.Current(at)
	if err != nil {
		metrics.RecordRotationError()
		return rotation.Assignment{}, err
	}

	metrics.RecordRotationQuery()
	return a, nil
}

// UpcomingAssignments derives count assignments after the period containing
// the given instant from the active roster.
func (s *Service) UpcomingAssignments(ctx context.Context, at time.Time, count int) ([]rotation.Assignment, error) {
	rec, err := s.store.Latest(ctx)
	if err != nil {
		metrics.RecordRotationError()
		return nil, err
	}

	upcoming, err := rec.Roster.Upcoming(at, count)
	if err != nil {
		metrics.RecordRotationError()
		return nil, err
	}

	metrics.RecordForecastQuery(count)
	return upcoming, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":    s.started,
		"maxHistory": s.maxHistory,
	}

	if s.started {
		stats["rosterRecords"] = s.store.Count(ctx)
		if rec, err := s.store.Latest(ctx); err == nil {
			stats["rosterSize"] = len(rec.Roster.People)
			stats["anchor"] = rec.Roster.Anchor.String()
			metrics.UpdateRosterSize(len(rec.Roster.People))
		}
		metrics.UpdateRosterRecords(s.store.Count(ctx))
	}

	return stats
}
