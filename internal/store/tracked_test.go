package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
)

func TestToggleTrackedArtist_Untrack(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("DELETE FROM tracked_artists").
		WithArgs(int64(7), "dave_clarke").
		WillReturnResult(sqlmock.NewResult(0, 1))

	tracked, err := store.ToggleTrackedArtist(context.Background(), 7, "dave_clarke")
	if err != nil {
		t.Fatalf("ToggleTrackedArtist() error = %v", err)
	}
	if tracked {
		t.Error("ToggleTrackedArtist() = tracked, want untracked after delete")
	}
	expectMet(t, mock)
}

func TestToggleTrackedArtist_Track(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("DELETE FROM tracked_artists").
		WithArgs(int64(7), "dave_clarke").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO tracked_artists").
		WithArgs(int64(7), "dave_clarke", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	tracked, err := store.ToggleTrackedArtist(context.Background(), 7, "dave_clarke")
	if err != nil {
		t.Fatalf("ToggleTrackedArtist() error = %v", err)
	}
	if !tracked {
		t.Error("ToggleTrackedArtist() = untracked, want tracked after insert")
	}
	expectMet(t, mock)
}

func TestToggleTrackedArtist_UnknownArtist(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("DELETE FROM tracked_artists").
		WithArgs(int64(7), "nobody").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO tracked_artists").
		WithArgs(int64(7), "nobody", sqlmock.AnyArg()).
		WillReturnError(foreignKeyViolation())

	_, err := store.ToggleTrackedArtist(context.Background(), 7, "nobody")
	if !errors.Is(err, ErrArtistNotFound) {
		t.Errorf("ToggleTrackedArtist() error = %v, want ErrArtistNotFound", err)
	}
	expectMet(t, mock)
}

func TestToggleTrackedArtist_ConcurrentInsert(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("DELETE FROM tracked_artists").
		WithArgs(int64(7), "dave_clarke").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO tracked_artists").
		WithArgs(int64(7), "dave_clarke", sqlmock.AnyArg()).
		WillReturnError(uniqueViolation())

	tracked, err := store.ToggleTrackedArtist(context.Background(), 7, "dave_clarke")
	if err != nil {
		t.Fatalf("ToggleTrackedArtist() error = %v", err)
	}
	if !tracked {
		t.Error("ToggleTrackedArtist() = untracked, want tracked on duplicate insert")
	}
	expectMet(t, mock)
}

func TestTrackedArtistEvents_NoneTracked(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT artist_id").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"artist_id"}))

	events, err := store.TrackedArtistEvents(context.Background(), 7)
	if err != nil {
		t.Fatalf("TrackedArtistEvents() error = %v", err)
	}
	if events != nil {
		t.Errorf("TrackedArtistEvents() = %v, want nil without tracked artists", events)
	}
	expectMet(t, mock)
}

func TestTrackedArtistEvents(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT artist_id").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"artist_id"}).
			AddRow("dave_clarke").
			AddRow("richie_hawtin"))

	rows := sqlmock.NewRows([]string{"artist_id", "event_title", "venue", "city", "country", "date_time", "source_label", "event_url"}).
		AddRow("dave_clarke", "Off The Grid", "Rex Club", "Paris", "France", int64(1768809600000000000), "Resident Advisor", "https://ra.co/events/z")

	mock.ExpectQuery("WHERE artist_id = ANY").
		WithArgs(pq.Array([]string{"dave_clarke", "richie_hawtin"})).
		WillReturnRows(rows)

	events, err := store.TrackedArtistEvents(context.Background(), 7)
	if err != nil {
		t.Fatalf("TrackedArtistEvents() error = %v", err)
	}
	if len(events) != 1 || events[0].City != "Paris" {
		t.Errorf("TrackedArtistEvents() = %+v", events)
	}
	expectMet(t, mock)
}
