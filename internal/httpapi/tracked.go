package httpapi

import (
	"errors"
	"net/http"

	"technobeacon/internal/store"
)

func (s *Server) handleTrackedArtists(w http.ResponseWriter, r *http.Request) {
	claims := s.caller(w, r)
	if claims == nil {
		return
	}

	ids, err := s.tracked.List(r.Context(), claims.UserID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, struct {
		ArtistIDs []string `json:"artistIds"`
	}{ArtistIDs: ids})
}

func (s *Server) handleToggleTracked(w http.ResponseWriter, r *http.Request) {
	claims := s.caller(w, r)
	if claims == nil {
		return
	}

	tracked, err := s.tracked.Toggle(r.Context(), claims.UserID, r.PathValue("artistId"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrArtistNotFound) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Tracked bool `json:"tracked"`
	}{Tracked: tracked})
}

func (s *Server) handleTrackedEvents(w http.ResponseWriter, r *http.Request) {
	claims := s.caller(w, r)
	if claims == nil {
		return
	}

	events, err := s.tracked.Events(r.Context(), claims.UserID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeEventList(w, events)
}
