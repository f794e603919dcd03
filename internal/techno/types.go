// Package techno holds the domain types shared by the store, the HTTP API
// and the client: artists, events, user profiles, roles and the tagged
// result values used by radar mutations.
package techno

import "time"

// Artist is a catalogue entry. Artists are created by the seed loader and
// are read-only afterwards.
type Artist struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	Genre    string `json:"genre"`
}

// Event is a single tour date. List responses intentionally omit the
// event's own record ID; callers that need it go through the eventid
// package. DateTime is nanoseconds since the Unix epoch.
type Event struct {
	ArtistID    string `json:"artistId"`
	EventTitle  string `json:"eventTitle"`
	Venue       string `json:"venue"`
	City        string `json:"city"`
	Country     string `json:"country"`
	DateTime    int64  `json:"dateTime"`
	SourceLabel string `json:"sourceLabel"`
	EventURL    string `json:"eventUrl"`
}

// Time converts the event's nanosecond timestamp to a time.Time in the
// local zone.
func (e Event) Time() time.Time {
	return time.Unix(0, e.DateTime)
}

// UserProfile is the per-user display profile, created on first login.
type UserProfile struct {
	Name string `json:"name"`
}

// Role is the authorization level attached to a user account.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleGuest Role = "guest"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleGuest:
		return true
	}
	return false
}

// Result tags the outcome of a radar mutation. AlreadyExists is a
// success-like outcome: adding an event that is already saved is an
// idempotent no-op, not an error.
type Result string

const (
	ResultSuccess       Result = "success"
	ResultAlreadyExists Result = "alreadyExists"
	ResultEventNotFound Result = "eventNotFound"
	ResultNotFound      Result = "notFound"
	ResultUnauthorized  Result = "unauthorized"
)

// Success reports whether the result should be treated as a successful
// outcome by callers.
func (r Result) Success() bool {
	return r == ResultSuccess || r == ResultAlreadyExists
}

// RadarSummary is the pair of counts returned by the radar summary call.
type RadarSummary struct {
	TrackedArtists int `json:"trackedArtists"`
	UpcomingEvents int `json:"upcomingEvents"`
}
