package users

import (
	"context"
	"errors"
	"testing"

	"technobeacon/internal/auth"
	"technobeacon/internal/store"
	"technobeacon/internal/techno"
)

type stubStore struct {
	createdRole techno.Role
	createErr   error

	user    store.User
	authErr error

	role    techno.Role
	roleErr error

	profile    techno.UserProfile
	profileErr error
}

func (s *stubStore) CreateUser(_ context.Context, _, _ string, role techno.Role) (int64, error) {
	s.createdRole = role
	if s.createErr != nil {
		return 0, s.createErr
	}
	return 7, nil
}

func (s *stubStore) Authenticate(context.Context, string, string) (store.User, error) {
	return s.user, s.authErr
}

func (s *stubStore) RoleByUserID(context.Context, int64) (techno.Role, error) {
	return s.role, s.roleErr
}

func (s *stubStore) AssignRole(context.Context, string, techno.Role) error { return nil }

func (s *stubStore) ProfileByUserID(context.Context, int64) (techno.UserProfile, error) {
	return s.profile, s.profileErr
}

func (s *stubStore) SaveProfile(context.Context, int64, techno.UserProfile) error { return nil }

func newTestService(st *stubStore) Service {
	return New(st, auth.NewTokenManager("test-secret"))
}

func TestSignup_AlwaysUserRole(t *testing.T) {
	st := &stubStore{}
	svc := newTestService(st)

	if err := svc.Signup(context.Background(), "alice", "hunter2"); err != nil {
		t.Fatalf("Signup() error = %v", err)
	}
	if st.createdRole != techno.RoleUser {
		t.Errorf("Signup() created role %q, want user", st.createdRole)
	}
}

func TestLogin_IssuesParsableToken(t *testing.T) {
	st := &stubStore{user: store.User{ID: 7, Username: "alice", Role: techno.RoleAdmin}}
	tokens := auth.NewTokenManager("test-secret")
	svc := New(st, tokens)

	token, err := svc.Login(context.Background(), "alice", "hunter2")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	claims, err := tokens.Parse(token)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if claims.UserID != 7 || claims.Role != string(techno.RoleAdmin) {
		t.Errorf("claims = %+v, want uid 7 admin", claims)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	st := &stubStore{authErr: store.ErrInvalidCredentials}
	svc := newTestService(st)

	if _, err := svc.Login(context.Background(), "alice", "wrong"); !errors.Is(err, store.ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestIsAdmin(t *testing.T) {
	tests := []struct {
		name string
		role techno.Role
		want bool
	}{
		{name: "admin", role: techno.RoleAdmin, want: true},
		{name: "user", role: techno.RoleUser, want: false},
		{name: "guest", role: techno.RoleGuest, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(&stubStore{role: tt.role})
			got, err := svc.IsAdmin(context.Background(), 7)
			if err != nil {
				t.Fatalf("IsAdmin() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("IsAdmin(%s) = %v, want %v", tt.role, got, tt.want)
			}
		})
	}
}

func TestProfile_ThreeStates(t *testing.T) {
	// Present.
	svc := newTestService(&stubStore{profile: techno.UserProfile{Name: "Alice"}})
	profile, err := svc.Profile(context.Background(), 7)
	if err != nil || profile == nil || profile.Name != "Alice" {
		t.Errorf("Profile() = (%+v, %v), want Alice", profile, err)
	}

	// Confirmed absence maps to (nil, nil).
	svc = newTestService(&stubStore{profileErr: store.ErrProfileNotFound})
	profile, err = svc.Profile(context.Background(), 7)
	if err != nil {
		t.Fatalf("Profile() error = %v, want nil on confirmed absence", err)
	}
	if profile != nil {
		t.Errorf("Profile() = %+v, want nil on confirmed absence", profile)
	}

	// Transient failure keeps the error.
	svc = newTestService(&stubStore{profileErr: errors.New("db down")})
	if _, err = svc.Profile(context.Background(), 7); err == nil {
		t.Error("Profile() error = nil, want transient failure surfaced")
	}
}
