// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/okian/rota/internal/adapters/repository"
	"github.com/okian/rota/internal/domain/rotation"
)

// CurrentDependencies defines the interface for current-assignment queries.
type CurrentDependencies interface {
	CurrentAssignment(ctx context.Context, at time.Time) (rotation.Assignment, error)
}

// CurrentHandler handles current-assignment requests.
type CurrentHandler struct {
	deps  CurrentDependencies
	clock func() time.Time
}

// NewCurrentHandler creates a new current-assignment handler.
func NewCurrentHandler(deps CurrentDependencies, clock func() time.Time) *CurrentHandler {
	return &CurrentHandler{deps: deps, clock: clock}
}

// HandleGetCurrent handles GET /rotation/current requests. An optional
// `at` query parameter (RFC3339) evaluates the rotation at that instant
// instead of now.
func (h *CurrentHandler) HandleGetCurrent(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_current"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	at, err := queryInstant(r, h.clock)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	a, err := h.deps.CurrentAssignment(r.Context(), at)
	if err != nil {
		if errors.Is(err, repository.ErrNoRoster) {
			writeError(w, http.StatusNotFound, "no_roster", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, toAssignmentResponse(a))
}
