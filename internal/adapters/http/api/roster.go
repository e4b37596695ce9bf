// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/rota/internal/adapters/repository"
	"github.com/okian/rota/internal/domain/roster"
)

// RosterDependencies defines the interface for roster operations.
type RosterDependencies interface {
	SetRoster(ctx context.Context, people []string, anchor string) (repository.Record, error)
	Roster(ctx context.Context) (repository.Record, error)
}

// RosterHandler handles roster reads and replacements.
type RosterHandler struct {
	deps RosterDependencies
}

// NewRosterHandler creates a new roster handler.
func NewRosterHandler(deps RosterDependencies) *RosterHandler {
	return &RosterHandler{deps: deps}
}

// rosterRequest mirrors the JSON body of PUT /roster.
type rosterRequest struct {
	People []string `json:"people"`
	Anchor string   `json:"anchor"`
}

// HandleRoster handles GET and PUT /roster requests.
func (h *RosterHandler) HandleRoster(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleGet(w, r)
	case http.MethodPut:
		h.handlePut(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *RosterHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_roster"
	rec, err := h.deps.Roster(r.Context())
	if err != nil {
		if errors.Is(err, repository.ErrNoRoster) {
			writeError(w, http.StatusNotFound, "no_roster", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, toRosterResponse(rec))
}

func (h *RosterHandler) handlePut(w http.ResponseWriter, r *http.Request) {
	const op = "api.put_roster"
	var req rosterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	rec, err := h.deps.SetRoster(r.Context(), req.People, req.Anchor)
	if err != nil {
		if isValidation(err) {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, toRosterResponse(rec))
}

// isValidation reports whether err is a roster-input validation failure the
// client can fix.
func isValidation(err error) bool {
	return errors.Is(err, roster.ErrNoPeople) ||
		errors.Is(err, roster.ErrEmptyName) ||
		errors.Is(err, roster.ErrBadAnchor)
}
