package store

import (
	"context"
	"database/sql"
	"fmt"

	"technobeacon/internal/techno"
)

// Events returns every event ordered by date. The event's own id column
// is deliberately not selected: list responses mirror the upstream
// contract, which withholds the record ID from clients.
func (s *Store) Events(ctx context.Context) ([]techno.Event, error) {
	return s.queryEvents(ctx, `
		SELECT artist_id, event_title, venue, city, country, date_time, source_label, event_url
		FROM events
		ORDER BY date_time ASC
	`)
}

// EventsByArtist returns the events of a single artist ordered by date.
func (s *Store) EventsByArtist(ctx context.Context, artistID string) ([]techno.Event, error) {
	return s.queryEvents(ctx, `
		SELECT artist_id, event_title, venue, city, country, date_time, source_label, event_url
		FROM events
		WHERE artist_id = $1
		ORDER BY date_time ASC
	`, artistID)
}

func (s *Store) queryEvents(ctx context.Context, query string, args ...any) ([]techno.Event, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select events: %w", err)
	}
	defer rows.Close()
	return scanEvents(rows)
}

func scanEvents(rows *sql.Rows) ([]techno.Event, error) {
	var events []techno.Event
	for rows.Next() {
		var e techno.Event
		if err := rows.Scan(&e.ArtistID, &e.EventTitle, &e.Venue, &e.City, &e.Country, &e.DateTime, &e.SourceLabel, &e.EventURL); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}
