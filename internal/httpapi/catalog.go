package httpapi

import (
	"net/http"

	"technobeacon/internal/techno"
)

func (s *Server) handleArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := s.artists.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	if artists == nil {
		artists = []techno.Artist{}
	}
	writeJSON(w, http.StatusOK, struct {
		Artists []techno.Artist `json:"artists"`
	}{Artists: artists})
}

func (s *Server) handleArtist(w http.ResponseWriter, r *http.Request) {
	artist, err := s.artists.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	if artist == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "artist not found"})
		return
	}
	writeJSON(w, http.StatusOK, artist)
}

func (s *Server) handleAllEvents(w http.ResponseWriter, r *http.Request) {
	events, err := s.events.All(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeEventList(w, events)
}

func (s *Server) handleEventsByArtist(w http.ResponseWriter, r *http.Request) {
	events, err := s.events.ByArtist(r.Context(), r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeEventList(w, events)
}

func writeEventList(w http.ResponseWriter, events []techno.Event) {
	if events == nil {
		events = []techno.Event{}
	}
	writeJSON(w, http.StatusOK, struct {
		Events []techno.Event `json:"events"`
	}{Events: events})
}
