package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"technobeacon/internal/techno"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return New(db), mock
}

func expectMet(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505"}
}

func foreignKeyViolation() error {
	return &pgconn.PgError{Code: "23503"}
}

func TestCreateUser(t *testing.T) {
	store, mock := newMockStore(t)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (username, password_hash, role)")).
		WithArgs("alice", sqlmock.AnyArg(), "user").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	userID, err := store.CreateUser(ctx, "alice", "hunter2", techno.RoleUser)
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	if userID != 7 {
		t.Errorf("CreateUser() userID = %d, want 7", userID)
	}
	expectMet(t, mock)
}

func TestCreateUser_Duplicate(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", sqlmock.AnyArg(), "user").
		WillReturnError(uniqueViolation())

	_, err := store.CreateUser(context.Background(), "alice", "hunter2", techno.RoleUser)
	if !errors.Is(err, ErrUserExists) {
		t.Errorf("CreateUser() error = %v, want ErrUserExists", err)
	}
	expectMet(t, mock)
}

func TestCreateUser_Validation(t *testing.T) {
	store, _ := newMockStore(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
		role     techno.Role
	}{
		{name: "empty username", username: "", password: "x", role: techno.RoleUser},
		{name: "whitespace username", username: "   ", password: "x", role: techno.RoleUser},
		{name: "empty password", username: "alice", password: "", role: techno.RoleUser},
		{name: "invalid role", username: "alice", password: "x", role: techno.Role("root")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := store.CreateUser(ctx, tt.username, tt.password, tt.role); err == nil {
				t.Error("CreateUser() expected error, got nil")
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	store, mock := newMockStore(t)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	mock.ExpectQuery("SELECT id, username, password_hash, role").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "role"}).
			AddRow(int64(7), "alice", hash, "admin"))

	user, err := store.Authenticate(ctx, "alice", "hunter2")
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if user.ID != 7 || user.Role != techno.RoleAdmin {
		t.Errorf("Authenticate() = %+v, want id 7 admin", user)
	}
	expectMet(t, mock)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	store, mock := newMockStore(t)

	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	mock.ExpectQuery("SELECT id, username, password_hash, role").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "role"}).
			AddRow(int64(7), "alice", hash, "user"))

	_, err := store.Authenticate(context.Background(), "alice", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Authenticate() error = %v, want ErrInvalidCredentials", err)
	}
	expectMet(t, mock)
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT id, username, password_hash, role").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "role"}))

	_, err := store.Authenticate(context.Background(), "ghost", "whatever")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Authenticate() error = %v, want ErrInvalidCredentials", err)
	}
	expectMet(t, mock)
}

func TestAssignRole_UnknownUser(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("UPDATE users").
		WithArgs("ghost", "admin").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.AssignRole(context.Background(), "ghost", techno.RoleAdmin)
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("AssignRole() error = %v, want ErrUserNotFound", err)
	}
	expectMet(t, mock)
}

func TestRoleByUserID(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT role").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"role"}).AddRow("admin"))

	role, err := store.RoleByUserID(context.Background(), 7)
	if err != nil {
		t.Fatalf("RoleByUserID() error = %v", err)
	}
	if role != techno.RoleAdmin {
		t.Errorf("RoleByUserID() = %q, want admin", role)
	}
	expectMet(t, mock)
}
