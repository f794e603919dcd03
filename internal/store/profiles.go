package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"technobeacon/internal/techno"
)

// ProfileByUserID returns the user's saved profile. ErrProfileNotFound
// means the user has confirmed-absent profile state, which first-login
// setup relies on; callers must not conflate it with a query failure.
func (s *Store) ProfileByUserID(ctx context.Context, userID int64) (techno.UserProfile, error) {
	var p techno.UserProfile
	err := s.db.QueryRowContext(ctx, `
		SELECT name
		FROM user_profiles
		WHERE user_id = $1
	`, userID).Scan(&p.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return techno.UserProfile{}, ErrProfileNotFound
		}
		return techno.UserProfile{}, fmt.Errorf("lookup profile: %w", err)
	}
	return p, nil
}

// SaveProfile creates or replaces the user's profile.
func (s *Store) SaveProfile(ctx context.Context, userID int64, profile techno.UserProfile) error {
	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO user_profiles (user_id, name, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET name = EXCLUDED.name, updated_at = NOW()
	`, userID, profile.Name); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}
