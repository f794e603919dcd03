// Package artists exposes the read-only artist catalogue.
package artists

import (
	"context"
	"errors"

	"technobeacon/internal/store"
	"technobeacon/internal/techno"
)

// Store describes the persistence operations required by the artist service.
type Store interface {
	Artists(ctx context.Context) ([]techno.Artist, error)
	ArtistByID(ctx context.Context, artistID string) (techno.Artist, error)
}

// Service provides artist-centric operations.
type Service interface {
	List(ctx context.Context) ([]techno.Artist, error)
	Get(ctx context.Context, artistID string) (*techno.Artist, error)
}

type service struct {
	store Store
}

// New constructs an artist Service backed by the supplied store.
func New(st Store) Service {
	return &service{store: st}
}

func (s *service) List(ctx context.Context) ([]techno.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.Artists(ctx)
}

// Get returns the artist or (nil, nil) when absent.
func (s *service) Get(ctx context.Context, artistID string) (*techno.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	artist, err := s.store.ArtistByID(ctx, artistID)
	if err != nil {
		if errors.Is(err, store.ErrArtistNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &artist, nil
}
