// Package store provides Postgres persistence for the event catalogue and
// per-user radar/tracking state.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"technobeacon/internal/techno"
)

var (
	// ErrUserExists signals the username is already taken.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials indicates a login failure.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUserNotFound indicates the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrArtistNotFound indicates the referenced artist does not exist.
	ErrArtistNotFound = errors.New("artist not found")
	// ErrEventNotFound indicates the referenced event does not exist.
	ErrEventNotFound = errors.New("event not found")
	// ErrRadarEntryExists signals the event is already on the user's radar.
	ErrRadarEntryExists = errors.New("event already on radar")
	// ErrRadarEntryNotFound signals the event was not on the user's radar.
	ErrRadarEntryNotFound = errors.New("event not on radar")
	// ErrProfileNotFound indicates the user has not saved a profile yet.
	ErrProfileNotFound = errors.New("profile not found")

	dummyPasswordHash = []byte("$2a$10$CwTycUXWue0Thq9StjUM0uJ8n4VWeNseyX2fA9DE.D7su7J6iYGTC")
)

// User is an authenticated account row.
type User struct {
	ID       int64
	Username string
	Role     techno.Role
}

// Store provides persistence backed by Postgres.
type Store struct {
	db *sql.DB
}

// New sets up a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// CreateUser registers a new user with the given role.
func (s *Store) CreateUser(ctx context.Context, username, password string, role techno.Role) (int64, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return 0, fmt.Errorf("username and password are required")
	}
	if !role.Valid() {
		return 0, fmt.Errorf("invalid role %q", role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	var userID int64
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO users (username, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id
	`, username, hash, string(role)).Scan(&userID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrUserExists
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return userID, nil
}

// Authenticate validates credentials and returns the matching user.
func (s *Store) Authenticate(ctx context.Context, username, password string) (User, error) {
	var (
		u    User
		hash []byte
		role string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, role
		FROM users
		WHERE username = $1
	`, username).Scan(&u.ID, &u.Username, &hash, &role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Burn a comparison so missing users cost the same as bad passwords.
			_ = bcrypt.CompareHashAndPassword(dummyPasswordHash, []byte(password))
			return User{}, ErrInvalidCredentials
		}
		return User{}, fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}

	u.Role = techno.Role(role)
	return u, nil
}

// RoleByUserID returns the stored role for a user. The database is the
// authority for authorization checks; token claims are only a hint.
func (s *Store) RoleByUserID(ctx context.Context, userID int64) (techno.Role, error) {
	var role string
	err := s.db.QueryRowContext(ctx, `
		SELECT role
		FROM users
		WHERE id = $1
	`, userID).Scan(&role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("lookup role: %w", err)
	}
	return techno.Role(role), nil
}

// AssignRole updates the role of the named user.
func (s *Store) AssignRole(ctx context.Context, username string, role techno.Role) error {
	if !role.Valid() {
		return fmt.Errorf("invalid role %q", role)
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE users
		SET role = $2
		WHERE username = $1
	`, username, string(role))
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}
