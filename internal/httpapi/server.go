// Package httpapi wires HTTP handlers to the underlying services. The
// surface is RPC-shaped: one route per backend operation, JSON bodies,
// bearer-token auth and tagged results on radar mutations.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"technobeacon/internal/auth"
	"technobeacon/internal/techno"
)

// UserService captures account, role and profile operations.
type UserService interface {
	Signup(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (string, error)
	IsAdmin(ctx context.Context, userID int64) (bool, error)
	AssignRole(ctx context.Context, username string, role techno.Role) error
	Profile(ctx context.Context, userID int64) (*techno.UserProfile, error)
	SaveProfile(ctx context.Context, userID int64, profile techno.UserProfile) error
}

// ArtistService exposes the artist catalogue.
type ArtistService interface {
	List(ctx context.Context) ([]techno.Artist, error)
	Get(ctx context.Context, artistID string) (*techno.Artist, error)
}

// EventService exposes the event catalogue and seed loading.
type EventService interface {
	All(ctx context.Context) ([]techno.Event, error)
	ByArtist(ctx context.Context, artistID string) ([]techno.Event, error)
	InitializeSeed(ctx context.Context) error
}

// RadarService coordinates the saved-events list.
type RadarService interface {
	Add(ctx context.Context, userID int64, eventID string) (techno.Result, error)
	Remove(ctx context.Context, userID int64, eventID string) (techno.Result, error)
	List(ctx context.Context, userID int64) ([]techno.Event, error)
	Summary(ctx context.Context, userID int64) (techno.RadarSummary, error)
}

// TrackedService coordinates the followed-artists set.
type TrackedService interface {
	Toggle(ctx context.Context, userID int64, artistID string) (bool, error)
	List(ctx context.Context, userID int64) ([]string, error)
	Events(ctx context.Context, userID int64) ([]techno.Event, error)
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	users   UserService
	artists ArtistService
	events  EventService
	radar   RadarService
	tracked TrackedService
	tokens  *auth.TokenManager
	log     zerolog.Logger
}

// New configures a Server with the given services.
func New(
	users UserService,
	artists ArtistService,
	events EventService,
	radar RadarService,
	tracked TrackedService,
	tokens *auth.TokenManager,
	log zerolog.Logger,
) *Server {
	return &Server{
		users:   users,
		artists: artists,
		events:  events,
		radar:   radar,
		tracked: tracked,
		tokens:  tokens,
		log:     log,
	}
}

// Routes exposes the HTTP handlers for the full backend surface.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("POST /api/v1/auth/signup", s.handleSignup)
	mux.HandleFunc("POST /api/v1/auth/login", s.handleLogin)

	mux.HandleFunc("GET /api/v1/artists", s.handleArtists)
	mux.HandleFunc("GET /api/v1/artists/{id}", s.handleArtist)
	mux.HandleFunc("GET /api/v1/artists/{id}/events", s.handleEventsByArtist)
	mux.HandleFunc("GET /api/v1/events", s.handleAllEvents)

	mux.HandleFunc("GET /api/v1/me/profile", s.handleGetProfile)
	mux.HandleFunc("PUT /api/v1/me/profile", s.handleSaveProfile)
	mux.HandleFunc("GET /api/v1/me/is-admin", s.handleIsAdmin)

	mux.HandleFunc("GET /api/v1/me/tracked", s.handleTrackedArtists)
	mux.HandleFunc("POST /api/v1/me/tracked/{artistId}/toggle", s.handleToggleTracked)
	mux.HandleFunc("GET /api/v1/me/tracked/events", s.handleTrackedEvents)

	mux.HandleFunc("GET /api/v1/me/radar", s.handleRadarEvents)
	mux.HandleFunc("GET /api/v1/me/radar/summary", s.handleRadarSummary)
	mux.HandleFunc("POST /api/v1/me/radar/{eventId}", s.handleAddRadarEvent)
	mux.HandleFunc("DELETE /api/v1/me/radar/{eventId}", s.handleRemoveRadarEvent)

	mux.HandleFunc("POST /api/v1/admin/seed", s.handleInitializeSeed)
	mux.HandleFunc("POST /api/v1/admin/roles", s.handleAssignRole)

	return requestLogger(s.log, mux)
}

type errorResponse struct {
	Error string `json:"error"`
}

type resultResponse struct {
	Result techno.Result `json:"result"`
}

// caller authenticates the request and returns the verified claims.
// A nil return means the response has already been written.
func (s *Server) caller(w http.ResponseWriter, r *http.Request) *auth.Claims {
	token := parseBearerToken(r.Header.Get("Authorization"))
	if token == "" {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
		return nil
	}
	claims, err := s.tokens.Parse(token)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid token"})
		return nil
	}
	return claims
}

// admin authenticates the request and requires the caller's stored role
// to be admin. The database role wins over the token claim.
func (s *Server) admin(w http.ResponseWriter, r *http.Request) *auth.Claims {
	claims := s.caller(w, r)
	if claims == nil {
		return nil
	}
	ok, err := s.users.IsAdmin(r.Context(), claims.UserID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return nil
	}
	if !ok {
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "admin access required"})
		return nil
	}
	return claims
}

func parseBearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}
