// Package events exposes the read-only event catalogue and the seed
// initialization workflow.
package events

import (
	"context"

	"github.com/rs/zerolog"

	"technobeacon/internal/eventid"
	"technobeacon/internal/techno"
)

// Store describes the persistence operations required by the event service.
type Store interface {
	Events(ctx context.Context) ([]techno.Event, error)
	EventsByArtist(ctx context.Context, artistID string) ([]techno.Event, error)
	InitializeSeedData(ctx context.Context) error
}

// Service provides event-centric operations.
type Service interface {
	All(ctx context.Context) ([]techno.Event, error)
	ByArtist(ctx context.Context, artistID string) ([]techno.Event, error)
	InitializeSeed(ctx context.Context) error
}

type service struct {
	store Store
	log   zerolog.Logger
}

// New constructs an event Service backed by the supplied store.
func New(st Store, log zerolog.Logger) Service {
	return &service{store: st, log: log}
}

func (s *service) All(ctx context.Context) ([]techno.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.Events(ctx)
}

func (s *service) ByArtist(ctx context.Context, artistID string) ([]techno.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.EventsByArtist(ctx, artistID)
}

// InitializeSeed loads the seed dataset and afterwards scans the stored
// events for (artistID, dateTime) collisions. Nothing enforces that pair
// as unique, but identity resolution and radar membership both assume it,
// so a collision is logged at error level rather than silently accepted.
func (s *service) InitializeSeed(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.store.InitializeSeedData(ctx); err != nil {
		return err
	}

	all, err := s.store.Events(ctx)
	if err != nil {
		return err
	}
	for _, c := range eventid.DetectCollisions(all) {
		s.log.Error().
			Str("artist_id", c.ArtistID).
			Int64("date_time", c.DateTime).
			Strs("titles", c.Titles).
			Msg("seeded events share an (artist, timestamp) pair; identity resolution cannot distinguish them")
	}
	return nil
}
