package store

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"

	"technobeacon/internal/techno"
)

// ToggleTrackedArtist flips the tracked state of an artist for a user and
// returns the new state. Untracking is attempted first; when nothing was
// deleted, a tracking row is inserted instead.
func (s *Store) ToggleTrackedArtist(ctx context.Context, userID int64, artistID string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM tracked_artists
		WHERE user_id = $1 AND artist_id = $2
	`, userID, artistID)
	if err != nil {
		return false, fmt.Errorf("delete tracked artist: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	if affected > 0 {
		return false, nil
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO tracked_artists (user_id, artist_id, created_at)
		VALUES ($1, $2, $3)
	`, userID, artistID, time.Now().UTC())
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, ErrArtistNotFound
		}
		// A concurrent toggle may have inserted the row first; treat the
		// duplicate as tracked.
		if isUniqueViolation(err) {
			return true, nil
		}
		return false, fmt.Errorf("insert tracked artist: %w", err)
	}
	return true, nil
}

// TrackedArtists returns the artist IDs the user follows.
func (s *Store) TrackedArtists(ctx context.Context, userID int64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT artist_id
		FROM tracked_artists
		WHERE user_id = $1
		ORDER BY artist_id ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("select tracked artists: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan tracked artist: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tracked artists: %w", err)
	}
	return ids, nil
}

// TrackedArtistEvents returns all events by the user's tracked artists
// ordered by date.
func (s *Store) TrackedArtistEvents(ctx context.Context, userID int64) ([]techno.Event, error) {
	ids, err := s.TrackedArtists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	return s.queryEvents(ctx, `
		SELECT artist_id, event_title, venue, city, country, date_time, source_label, event_url
		FROM events
		WHERE artist_id = ANY($1)
		ORDER BY date_time ASC
	`, pq.Array(ids))
}
