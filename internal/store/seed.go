package store

import (
	"context"
	"fmt"
)

// InitializeSeedData upserts the seed artist and event dataset. Safe to
// run repeatedly: rows are keyed by their stable IDs, so a re-run after
// an upgrade refreshes existing rows instead of duplicating them.
func (s *Store) InitializeSeedData(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	for _, a := range seedArtists {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO artists (id, name, image_url, genre)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id)
			DO UPDATE SET name = EXCLUDED.name, image_url = EXCLUDED.image_url, genre = EXCLUDED.genre
		`, a.ID, a.Name, a.ImageURL, a.Genre); err != nil {
			return fmt.Errorf("upsert artist %q: %w", a.ID, err)
		}
	}

	for _, se := range seedEvents {
		e := se.Event
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO events (id, artist_id, event_title, venue, city, country, date_time, source_label, event_url)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (id)
			DO UPDATE SET artist_id = EXCLUDED.artist_id, event_title = EXCLUDED.event_title,
				venue = EXCLUDED.venue, city = EXCLUDED.city, country = EXCLUDED.country,
				date_time = EXCLUDED.date_time, source_label = EXCLUDED.source_label,
				event_url = EXCLUDED.event_url
		`, se.ID, e.ArtistID, e.EventTitle, e.Venue, e.City, e.Country, e.DateTime, e.SourceLabel, e.EventURL); err != nil {
			return fmt.Errorf("upsert event %q: %w", se.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	tx = nil

	return nil
}
