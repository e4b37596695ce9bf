// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/okian/rota/internal/adapters/repository"
	"github.com/okian/rota/internal/domain/rotation"
)

// timestampLayout renders instants with millisecond precision so period
// ends keep their 23:59:59.999 boundary on the wire.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// SetRoster replaces the active rotation definition.
	SetRoster(ctx context.Context, people []string, anchor string) (repository.Record, error)

	// Roster returns the active rotation definition.
	Roster(ctx context.Context) (repository.Record, error)

	// CurrentAssignment derives the assignment in effect at the instant.
	CurrentAssignment(ctx context.Context, at time.Time) (rotation.Assignment, error)

	// UpcomingAssignments derives count assignments after the period
	// containing the instant.
	UpcomingAssignments(ctx context.Context, at time.Time, count int) ([]rotation.Assignment, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	currentHandler  *CurrentHandler
	upcomingHandler *UpcomingHandler
	rosterHandler   *RosterHandler

	apiKey string
}

// ServerOption applies a configuration option to the Server.
type ServerOption func(*serverConfig)

type serverConfig struct {
	apiKey          string
	defaultForecast int
	maxForecast     int
	clock           func() time.Time
}

// WithAPIKey guards mutating routes with the given X-API-Key value. Empty
// disables the check.
func WithAPIKey(key string) ServerOption {
	return func(c *serverConfig) {
		c.apiKey = key
	}
}

// WithForecastBounds sets the default and maximum forecast lengths.
func WithForecastBounds(defaultCount, maxCount int) ServerOption {
	return func(c *serverConfig) {
		if defaultCount > 0 {
			c.defaultForecast = defaultCount
		}
		if maxCount >= c.defaultForecast {
			c.maxForecast = maxCount
		}
	}
}

// WithClock overrides the wall clock used when requests omit the `at`
// parameter. Intended for tests.
func WithClock(clock func() time.Time) ServerOption {
	return func(c *serverConfig) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...ServerOption) *Server {
	cfg := serverConfig{
		defaultForecast: 5,
		maxForecast:     50,
		clock:           time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		currentHandler:  NewCurrentHandler(deps, cfg.clock),
		upcomingHandler: NewUpcomingHandler(deps, cfg.clock, cfg.defaultForecast, cfg.maxForecast),
		rosterHandler:   NewRosterHandler(deps),
		apiKey:          cfg.apiKey,
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/rotation/current", MetricsMiddleware(s.currentHandler.HandleGetCurrent, "current"))
	mux.HandleFunc("/rotation/upcoming", MetricsMiddleware(s.upcomingHandler.HandleGetUpcoming, "upcoming"))
	mux.HandleFunc("/roster", MetricsMiddleware(AuthMiddleware(s.rosterHandler.HandleRoster, s.apiKey), "roster"))
}

// assignmentResponse mirrors the JSON shape of one duty assignment.
type assignmentResponse struct {
	Participant      string `json:"participant"`
	ParticipantIndex int    `json:"participant_index"`
	PeriodNumber     int    `json:"period_number"`
	PeriodStart      string `json:"period_start"`
	PeriodEnd        string `json:"period_end"`
	WeeksElapsed     int    `json:"weeks_elapsed"`
	DaysElapsed      int    `json:"days_elapsed"`
	Active           bool   `json:"active"`
}

func toAssignmentResponse(a rotation.Assignment) assignmentResponse {
	return assignmentResponse{
		Participant:      a.Participant,
		ParticipantIndex: a.ParticipantIndex,
		PeriodNumber:     a.PeriodNumber,
		PeriodStart:      a.PeriodStart.Format(timestampLayout),
		PeriodEnd:        a.PeriodEnd.Format(timestampLayout),
		WeeksElapsed:     a.WeeksElapsed,
		DaysElapsed:      a.DaysElapsed,
		Active:           a.Active,
	}
}

// rosterResponse mirrors the JSON shape of a saved roster record.
type rosterResponse struct {
	ID      string   `json:"id"`
	People  []string `json:"people"`
	Anchor  string   `json:"anchor"`
	SavedAt string   `json:"saved_at"`
}

func toRosterResponse(rec repository.Record) rosterResponse {
	return rosterResponse{
		ID:      rec.ID,
		People:  rec.Roster.People,
		Anchor:  rec.Roster.Anchor.String(),
		SavedAt: rec.SavedAt.Format(time.RFC3339),
	}
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// queryInstant resolves the evaluation instant for a rotation query: the
// `at` parameter when present, otherwise the server clock.
func queryInstant(r *http.Request, clock func() time.Time) (time.Time, error) {
	raw := r.URL.Query().Get("at")
	if raw == "" {
		return clock(), nil
	}
	at, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, ErrBadRequest
	}
	return at, nil
}
