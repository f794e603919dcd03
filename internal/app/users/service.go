// Package users covers accounts, roles and caller profiles.
package users

import (
	"context"
	"errors"

	"technobeacon/internal/auth"
	"technobeacon/internal/store"
	"technobeacon/internal/techno"
)

// Store describes the persistence operations required by the user service.
type Store interface {
	CreateUser(ctx context.Context, username, password string, role techno.Role) (int64, error)
	Authenticate(ctx context.Context, username, password string) (store.User, error)
	RoleByUserID(ctx context.Context, userID int64) (techno.Role, error)
	AssignRole(ctx context.Context, username string, role techno.Role) error
	ProfileByUserID(ctx context.Context, userID int64) (techno.UserProfile, error)
	SaveProfile(ctx context.Context, userID int64, profile techno.UserProfile) error
}

// Service exposes user-related workflows.
type Service interface {
	Signup(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (string, error)
	Role(ctx context.Context, userID int64) (techno.Role, error)
	IsAdmin(ctx context.Context, userID int64) (bool, error)
	AssignRole(ctx context.Context, username string, role techno.Role) error
	Profile(ctx context.Context, userID int64) (*techno.UserProfile, error)
	SaveProfile(ctx context.Context, userID int64, profile techno.UserProfile) error
}

type service struct {
	store  Store
	tokens *auth.TokenManager
}

// New wires a Service backed by the provided Store and token manager.
func New(st Store, tokens *auth.TokenManager) Service {
	return &service{store: st, tokens: tokens}
}

func (s *service) Signup(ctx context.Context, username, password string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := s.store.CreateUser(ctx, username, password, techno.RoleUser)
	return err
}

func (s *service) Login(ctx context.Context, username, password string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	user, err := s.store.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}
	return s.tokens.Generate(user.ID, user.Role)
}

func (s *service) Role(ctx context.Context, userID int64) (techno.Role, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.store.RoleByUserID(ctx, userID)
}

func (s *service) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	role, err := s.Role(ctx, userID)
	if err != nil {
		return false, err
	}
	return role == techno.RoleAdmin, nil
}

func (s *service) AssignRole(ctx context.Context, username string, role techno.Role) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.AssignRole(ctx, username, role)
}

// Profile returns the caller's profile, or (nil, nil) on confirmed
// absence. The distinction matters to clients: first-login setup must
// trigger only when absence is confirmed, never on a failed fetch.
func (s *service) Profile(ctx context.Context, userID int64) (*techno.UserProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	profile, err := s.store.ProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (s *service) SaveProfile(ctx context.Context, userID int64, profile techno.UserProfile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.SaveProfile(ctx, userID, profile)
}
