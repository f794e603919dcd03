package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"technobeacon/internal/techno"
)

// Artists returns the full artist catalogue ordered by name.
func (s *Store) Artists(ctx context.Context) ([]techno.Artist, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, image_url, genre
		FROM artists
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("select artists: %w", err)
	}
	defer rows.Close()

	var artists []techno.Artist
	for rows.Next() {
		var a techno.Artist
		if err := rows.Scan(&a.ID, &a.Name, &a.ImageURL, &a.Genre); err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artists: %w", err)
	}
	return artists, nil
}

// ArtistByID returns a single artist or ErrArtistNotFound.
func (s *Store) ArtistByID(ctx context.Context, artistID string) (techno.Artist, error) {
	var a techno.Artist
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, image_url, genre
		FROM artists
		WHERE id = $1
	`, artistID).Scan(&a.ID, &a.Name, &a.ImageURL, &a.Genre)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return techno.Artist{}, ErrArtistNotFound
		}
		return techno.Artist{}, fmt.Errorf("lookup artist: %w", err)
	}
	return a, nil
}
