package httpapi

import (
	"net/http"

	"technobeacon/internal/techno"
)

// statusForResult maps result tags to HTTP statuses. Success-like tags
// (including alreadyExists) are 200 so idempotent retries stay cheap.
func statusForResult(result techno.Result) int {
	switch result {
	case techno.ResultSuccess, techno.ResultAlreadyExists:
		return http.StatusOK
	case techno.ResultEventNotFound, techno.ResultNotFound:
		return http.StatusNotFound
	case techno.ResultUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) handleRadarEvents(w http.ResponseWriter, r *http.Request) {
	claims := s.caller(w, r)
	if claims == nil {
		return
	}

	events, err := s.radar.List(r.Context(), claims.UserID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeEventList(w, events)
}

func (s *Server) handleRadarSummary(w http.ResponseWriter, r *http.Request) {
	claims := s.caller(w, r)
	if claims == nil {
		return
	}

	summary, err := s.radar.Summary(r.Context(), claims.UserID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleAddRadarEvent(w http.ResponseWriter, r *http.Request) {
	claims := s.caller(w, r)
	if claims == nil {
		return
	}

	result, err := s.radar.Add(r.Context(), claims.UserID, r.PathValue("eventId"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, statusForResult(result), resultResponse{Result: result})
}

func (s *Server) handleRemoveRadarEvent(w http.ResponseWriter, r *http.Request) {
	claims := s.caller(w, r)
	if claims == nil {
		return
	}

	result, err := s.radar.Remove(r.Context(), claims.UserID, r.PathValue("eventId"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, statusForResult(result), resultResponse{Result: result})
}
