// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/okian/rota/internal/adapters/repository"
	"github.com/okian/rota/internal/domain/rotation"
)

// UpcomingDependencies defines the interface for forecast queries.
type UpcomingDependencies interface {
	UpcomingAssignments(ctx context.Context, at time.Time, count int) ([]rotation.Assignment, error)
}

// UpcomingHandler handles forecast requests.
type UpcomingHandler struct {
	deps         UpcomingDependencies
	clock        func() time.Time
	defaultCount int
	maxCount     int
}

// NewUpcomingHandler creates a new forecast handler.
func NewUpcomingHandler(deps UpcomingDependencies, clock func() time.Time, defaultCount, maxCount int) *UpcomingHandler {
	return &UpcomingHandler{
		deps:         deps,
		clock:        clock,
		defaultCount: defaultCount,
		maxCount:     maxCount,
	}
}

// HandleGetUpcoming handles GET /rotation/upcoming?count=N requests. The
// count defaults to the configured forecast length and is capped.
func (h *UpcomingHandler) HandleGetUpcoming(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_upcoming"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	count := h.defaultCount
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		count = n
	}
	if count > h.maxCount {
		writeError(w, http.StatusBadRequest, "count_exceeded", NewKind(op, ErrBadRequest))
		return
	}

	at, err := queryInstant(r, h.clock)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	upcoming, err := h.deps.UpcomingAssignments(r.Context(), at, count)
	if err != nil {
		if errors.Is(err, repository.ErrNoRoster) {
			writeError(w, http.StatusNotFound, "no_roster", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}

	out := make([]assignmentResponse, len(upcoming))
	for i, a := range upcoming {
		out[i] = toAssignmentResponse(a)
	}
	writeJSON(w, http.StatusOK, out)
}
