// Package radar covers the user's saved-events list.
package radar

import (
	"context"
	"errors"
	"time"

	"technobeacon/internal/store"
	"technobeacon/internal/techno"
)

// Store describes the persistence operations required by the radar service.
type Store interface {
	AddRadarEvent(ctx context.Context, userID int64, eventID string) error
	RemoveRadarEvent(ctx context.Context, userID int64, eventID string) error
	RadarEvents(ctx context.Context, userID int64) ([]techno.Event, error)
	RadarSummary(ctx context.Context, userID int64, now time.Time) (techno.RadarSummary, error)
}

// Service describes high level radar operations used by HTTP handlers.
// Mutations report their outcome as a Result tag; alreadyExists is a
// success-like outcome, never an error.
type Service interface {
	Add(ctx context.Context, userID int64, eventID string) (techno.Result, error)
	Remove(ctx context.Context, userID int64, eventID string) (techno.Result, error)
	List(ctx context.Context, userID int64) ([]techno.Event, error)
	Summary(ctx context.Context, userID int64) (techno.RadarSummary, error)
}

type service struct {
	store Store
	now   func() time.Time
}

// New constructs a radar Service backed by the given store.
func New(st Store) Service {
	return &service{store: st, now: time.Now}
}

func (s *service) Add(ctx context.Context, userID int64, eventID string) (techno.Result, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	err := s.store.AddRadarEvent(ctx, userID, eventID)
	switch {
	case err == nil:
		return techno.ResultSuccess, nil
	case errors.Is(err, store.ErrRadarEntryExists):
		return techno.ResultAlreadyExists, nil
	case errors.Is(err, store.ErrEventNotFound):
		return techno.ResultEventNotFound, nil
	default:
		return "", err
	}
}

func (s *service) Remove(ctx context.Context, userID int64, eventID string) (techno.Result, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	err := s.store.RemoveRadarEvent(ctx, userID, eventID)
	switch {
	case err == nil:
		return techno.ResultSuccess, nil
	case errors.Is(err, store.ErrRadarEntryNotFound):
		return techno.ResultNotFound, nil
	default:
		return "", err
	}
}

func (s *service) List(ctx context.Context, userID int64) ([]techno.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.RadarEvents(ctx, userID)
}

func (s *service) Summary(ctx context.Context, userID int64) (techno.RadarSummary, error) {
	if err := ctx.Err(); err != nil {
		return techno.RadarSummary{}, err
	}
	return s.store.RadarSummary(ctx, userID, s.now())
}
