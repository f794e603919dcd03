package store

import (
	"context"
	"fmt"
	"time"

	"technobeacon/internal/techno"
)

// AddRadarEvent saves an event to the user's radar by its record ID.
// A duplicate save maps to ErrRadarEntryExists so callers can report the
// idempotent no-op; an unknown event ID maps to ErrEventNotFound, which
// is expected when the ID was derived rather than looked up.
func (s *Store) AddRadarEvent(ctx context.Context, userID int64, eventID string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO radar_entries (user_id, event_id, created_at)
		VALUES ($1, $2, $3)
	`, userID, eventID, time.Now().UTC())
	if err != nil {
		if isUniqueViolation(err) {
			return ErrRadarEntryExists
		}
		if isForeignKeyViolation(err) {
			return ErrEventNotFound
		}
		return fmt.Errorf("insert radar entry: %w", err)
	}
	return nil
}

// RemoveRadarEvent deletes an event from the user's radar.
func (s *Store) RemoveRadarEvent(ctx context.Context, userID int64, eventID string) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM radar_entries
		WHERE user_id = $1 AND event_id = $2
	`, userID, eventID)
	if err != nil {
		return fmt.Errorf("delete radar entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrRadarEntryNotFound
	}
	return nil
}

// RadarEvents returns the user's saved events ordered by date.
func (s *Store) RadarEvents(ctx context.Context, userID int64) ([]techno.Event, error) {
	return s.queryEvents(ctx, `
		SELECT e.artist_id, e.event_title, e.venue, e.city, e.country, e.date_time, e.source_label, e.event_url
		FROM radar_entries r
		JOIN events e ON e.id = r.event_id
		WHERE r.user_id = $1
		ORDER BY e.date_time ASC
	`, userID)
}

// RadarSummary returns the user's tracked-artist count and the number of
// saved events that are still upcoming.
func (s *Store) RadarSummary(ctx context.Context, userID int64, now time.Time) (techno.RadarSummary, error) {
	var summary techno.RadarSummary

	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM tracked_artists
		WHERE user_id = $1
	`, userID).Scan(&summary.TrackedArtists)
	if err != nil {
		return techno.RadarSummary{}, fmt.Errorf("count tracked artists: %w", err)
	}

	err = s.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM radar_entries r
		JOIN events e ON e.id = r.event_id
		WHERE r.user_id = $1 AND e.date_time >= $2
	`, userID, now.UnixNano()).Scan(&summary.UpcomingEvents)
	if err != nil {
		return techno.RadarSummary{}, fmt.Errorf("count upcoming radar events: %w", err)
	}

	return summary, nil
}
