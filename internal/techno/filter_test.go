package techno

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d, hour, min int) time.Time {
	return time.Date(y, m, d, hour, min, 0, 0, time.UTC)
}

func testArtists() []Artist {
	return []Artist{
		{ID: "richie_hawtin", Name: "Richie Hawtin"},
		{ID: "dave_clarke", Name: "Dave Clarke"},
	}
}

func testEvents() []Event {
	return []Event{
		{ArtistID: "dave_clarke", EventTitle: "Off The Grid", City: "Paris", DateTime: day(2026, time.March, 10, 23, 0).UnixNano()},
		{ArtistID: "richie_hawtin", EventTitle: "Detroit Love", City: "Detroit", DateTime: day(2026, time.January, 5, 22, 0).UnixNano()},
		{ArtistID: "richie_hawtin", EventTitle: "Berghain Night", City: "Berlin", DateTime: day(2026, time.February, 14, 23, 30).UnixNano()},
		{ArtistID: "dave_clarke", EventTitle: "Fabric Night", City: "London", DateTime: day(2026, time.February, 14, 23, 30).UnixNano()},
	}
}

func TestFilterEvents_NoConstraints(t *testing.T) {
	events := testEvents()
	got := FilterEvents(events, testArtists(), Filter{})

	if len(got) != len(events) {
		t.Fatalf("FilterEvents() returned %d events, want %d", len(got), len(events))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].DateTime > got[i].DateTime {
			t.Errorf("FilterEvents() not sorted at index %d: %d > %d", i, got[i-1].DateTime, got[i].DateTime)
		}
	}
}

func TestFilterEvents_StableOnEqualTimestamps(t *testing.T) {
	got := FilterEvents(testEvents(), testArtists(), Filter{})

	// Berghain Night precedes Fabric Night in the input and shares its
	// timestamp, so it must precede it in the output too.
	var berghain, fabric int
	for i, e := range got {
		switch e.EventTitle {
		case "Berghain Night":
			berghain = i
		case "Fabric Night":
			fabric = i
		}
	}
	if berghain > fabric {
		t.Errorf("equal-timestamp events reordered: Berghain at %d, Fabric at %d", berghain, fabric)
	}
}

func TestFilterEvents_ArtistName(t *testing.T) {
	tests := []struct {
		name      string
		filter    string
		wantCount int
	}{
		{name: "full name", filter: "Richie Hawtin", wantCount: 2},
		{name: "case insensitive substring", filter: "clarke", wantCount: 2},
		{name: "padded input trimmed", filter: "  dave  ", wantCount: 2},
		{name: "no match", filter: "mills", wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterEvents(testEvents(), testArtists(), Filter{ArtistName: tt.filter})
			if len(got) != tt.wantCount {
				t.Errorf("FilterEvents(artist=%q) = %d events, want %d", tt.filter, len(got), tt.wantCount)
			}
		})
	}
}

func TestFilterEvents_UnknownArtistMatchesRawID(t *testing.T) {
	events := []Event{
		{ArtistID: "jeff_mills", EventTitle: "Axis Night", DateTime: 1},
	}
	got := FilterEvents(events, testArtists(), Filter{ArtistName: "jeff"})
	if len(got) != 1 {
		t.Fatalf("FilterEvents() = %d events, want 1 (raw ID fallback)", len(got))
	}
}

func TestFilterEvents_City(t *testing.T) {
	got := FilterEvents(testEvents(), testArtists(), Filter{City: "berlin"})
	if len(got) != 1 || got[0].City != "Berlin" {
		t.Fatalf("FilterEvents(city=berlin) = %+v, want single Berlin event", got)
	}
}

func TestFilterEvents_DateBoundaries(t *testing.T) {
	event := Event{
		ArtistID: "dave_clarke",
		City:     "London",
		DateTime: day(2026, time.February, 14, 23, 59).UnixNano(),
	}

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{
			name:   "from midnight same day included",
			filter: Filter{DateFrom: day(2026, time.February, 14, 0, 0)},
			want:   true,
		},
		{
			name:   "from later day excluded",
			filter: Filter{DateFrom: day(2026, time.February, 15, 0, 0)},
			want:   false,
		},
		{
			name:   "from timestamp mid-day still includes whole day",
			filter: Filter{DateFrom: day(2026, time.February, 14, 23, 59)},
			want:   true,
		},
		{
			name:   "to same day includes late evening",
			filter: Filter{DateTo: day(2026, time.February, 14, 0, 0)},
			want:   true,
		},
		{
			name:   "to previous day excluded",
			filter: Filter{DateTo: day(2026, time.February, 13, 0, 0)},
			want:   false,
		},
		{
			name: "window around the event",
			filter: Filter{
				DateFrom: day(2026, time.February, 10, 0, 0),
				DateTo:   day(2026, time.February, 20, 0, 0),
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterEvents([]Event{event}, testArtists(), tt.filter)
			if (len(got) == 1) != tt.want {
				t.Errorf("FilterEvents() matched=%v, want %v", len(got) == 1, tt.want)
			}
		})
	}
}

func TestFilterEvents_DateToUpperBoundExclusive(t *testing.T) {
	// The day after dateTo starts a new window: an event at or past the
	// next midnight is out even by a millisecond.
	filter := Filter{DateTo: day(2026, time.February, 14, 0, 0)}
	atMidnight := Event{ArtistID: "x", DateTime: day(2026, time.February, 15, 0, 0).UnixNano()}
	justPast := Event{ArtistID: "x", DateTime: day(2026, time.February, 15, 0, 0).Add(time.Millisecond).UnixNano()}

	if got := FilterEvents([]Event{atMidnight, justPast}, nil, filter); len(got) != 0 {
		t.Errorf("FilterEvents() = %d events, want 0 past end of dateTo day", len(got))
	}
}

func TestFilterEvents_ReturnsSubset(t *testing.T) {
	events := testEvents()
	got := FilterEvents(events, testArtists(), Filter{City: "o"})

	byKey := make(map[string]bool, len(events))
	for _, e := range events {
		byKey[e.ArtistID+e.EventTitle] = true
	}
	for _, e := range got {
		if !byKey[e.ArtistID+e.EventTitle] {
			t.Errorf("FilterEvents() returned event not in input: %+v", e)
		}
	}
}

func TestUpcomingEvents(t *testing.T) {
	now := day(2026, time.February, 1, 12, 0)
	events := testEvents()

	got := UpcomingEvents(events, now)
	if len(got) != 3 {
		t.Fatalf("UpcomingEvents() = %d events, want 3", len(got))
	}
	for _, e := range got {
		if e.DateTime < now.UnixNano() {
			t.Errorf("UpcomingEvents() returned past event %q", e.EventTitle)
		}
	}

	// Boundary: an event exactly at now is upcoming.
	exact := []Event{{ArtistID: "x", DateTime: now.UnixNano()}}
	if len(UpcomingEvents(exact, now)) != 1 {
		t.Error("UpcomingEvents() excluded event exactly at now")
	}
}

func TestEventTime(t *testing.T) {
	ts := day(2026, time.January, 5, 22, 0)
	e := Event{DateTime: ts.UnixNano()}
	if !e.Time().Equal(ts) {
		t.Errorf("Time() = %v, want %v", e.Time(), ts)
	}
}
