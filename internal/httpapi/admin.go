package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"technobeacon/internal/store"
	"technobeacon/internal/techno"
)

type assignRoleRequest struct {
	Username string      `json:"username"`
	Role     techno.Role `json:"role"`
}

func (s *Server) handleInitializeSeed(w http.ResponseWriter, r *http.Request) {
	if s.admin(w, r) == nil {
		return
	}

	if err := s.events.InitializeSeed(r.Context()); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAssignRole(w http.ResponseWriter, r *http.Request) {
	if s.admin(w, r) == nil {
		return
	}

	var req assignRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}
	if !req.Role.Valid() {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid role"})
		return
	}

	if err := s.users.AssignRole(r.Context(), req.Username, req.Role); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrUserNotFound) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
