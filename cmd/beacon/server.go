package main

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"technobeacon/internal/app/artists"
	"technobeacon/internal/app/events"
	"technobeacon/internal/app/radar"
	"technobeacon/internal/app/tracked"
	"technobeacon/internal/app/users"
	"technobeacon/internal/auth"
	"technobeacon/internal/httpapi"
	"technobeacon/internal/store"
)

func newHTTPHandler(cfg Config, dataStore *store.Store, log zerolog.Logger) http.Handler {
	tokens := auth.NewTokenManager(cfg.JWTSecret)

	userSvc := users.New(dataStore, tokens)
	artistSvc := artists.New(dataStore)
	eventSvc := events.New(dataStore, log)
	radarSvc := radar.New(dataStore)
	trackedSvc := tracked.New(dataStore)

	server := httpapi.New(userSvc, artistSvc, eventSvc, radarSvc, trackedSvc, tokens, log)

	return withCORS(cfg.AllowedOrigins, server.Routes())
}

func withCORS(allowedOrigins []string, next http.Handler) http.Handler {
	originAllowed := func(origin string) bool {
		if len(allowedOrigins) == 0 || origin == "" {
			return false
		}
		for _, o := range allowedOrigins {
			if strings.EqualFold(o, origin) {
				return true
			}
		}
		return false
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Authorization")
			w.Header().Set("Access-Control-Max-Age", "3600")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
