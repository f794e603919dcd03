package techno

import (
	"sort"
	"strings"
	"time"
)

// Filter narrows an event list for display. Zero values mean "no
// constraint". DateFrom and DateTo are calendar days in the local zone:
// DateFrom is inclusive from 00:00 of that day, DateTo is inclusive
// through the end of that day.
type Filter struct {
	ArtistName string
	City       string
	DateFrom   time.Time
	DateTo     time.Time
}

// FilterEvents returns the events matching the filter, stable-sorted
// ascending by DateTime. The artist list resolves display names from
// artist IDs, since events carry only the ID; events whose artist is not
// in the list are matched against the raw ID.
func FilterEvents(events []Event, artists []Artist, f Filter) []Event {
	names := make(map[string]string, len(artists))
	for _, a := range artists {
		names[a.ID] = a.Name
	}

	nameFilter := strings.ToLower(strings.TrimSpace(f.ArtistName))
	cityFilter := strings.ToLower(strings.TrimSpace(f.City))

	var out []Event
	for _, e := range events {
		name := names[e.ArtistID]
		if name == "" {
			name = e.ArtistID
		}
		if nameFilter != "" && !strings.Contains(strings.ToLower(name), nameFilter) {
			continue
		}
		if cityFilter != "" && !strings.Contains(strings.ToLower(e.City), cityFilter) {
			continue
		}
		if !f.DateFrom.IsZero() && e.Time().Before(startOfDay(f.DateFrom)) {
			continue
		}
		if !f.DateTo.IsZero() && !e.Time().Before(startOfDay(f.DateTo).AddDate(0, 0, 1)) {
			continue
		}
		out = append(out, e)
	}

	SortEventsByDate(out)
	return out
}

// SortEventsByDate sorts events ascending by DateTime in place. The sort
// is stable so events sharing a timestamp keep their input order.
func SortEventsByDate(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].DateTime < events[j].DateTime
	})
}

// UpcomingEvents returns the events at or after now, sorted ascending.
func UpcomingEvents(events []Event, now time.Time) []Event {
	var out []Event
	for _, e := range events {
		if e.DateTime >= now.UnixNano() {
			out = append(out, e)
		}
	}
	SortEventsByDate(out)
	return out
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
