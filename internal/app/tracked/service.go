// Package tracked covers the user's followed-artists set.
package tracked

import (
	"context"

	"technobeacon/internal/techno"
)

// Store describes the persistence operations required by the tracked service.
type Store interface {
	ToggleTrackedArtist(ctx context.Context, userID int64, artistID string) (bool, error)
	TrackedArtists(ctx context.Context, userID int64) ([]string, error)
	TrackedArtistEvents(ctx context.Context, userID int64) ([]techno.Event, error)
}

// Service describes follow/unfollow workflows.
type Service interface {
	Toggle(ctx context.Context, userID int64, artistID string) (bool, error)
	List(ctx context.Context, userID int64) ([]string, error)
	Events(ctx context.Context, userID int64) ([]techno.Event, error)
}

type service struct {
	store Store
}

// New constructs a tracked-artists Service backed by the given store.
func New(st Store) Service {
	return &service{store: st}
}

func (s *service) Toggle(ctx context.Context, userID int64, artistID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return s.store.ToggleTrackedArtist(ctx, userID, artistID)
}

func (s *service) List(ctx context.Context, userID int64) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.TrackedArtists(ctx, userID)
}

func (s *service) Events(ctx context.Context, userID int64) ([]techno.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.TrackedArtistEvents(ctx, userID)
}
