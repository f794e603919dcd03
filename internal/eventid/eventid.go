// Package eventid maps an event's natural attributes to the backend's
// stored record ID. Event list responses omit the record ID, so radar
// mutations cannot reference an event directly; this package closes that
// gap with a static lookup over the (artistID, timestamp) pair plus a
// best-effort slug fallback.
//
// The whole package is a workaround for the missing ID in list responses.
// Once list responses carry the record ID it can be deleted along with the
// structural membership check in beaconclient.
package eventid

import (
	"fmt"
	"strings"

	"technobeacon/internal/techno"
)

// recordIDs maps artistID + "_" + decimal nanosecond timestamp to the
// backend record ID. Must stay in sync with the seed dataset; Resolve
// returning false for a seeded event means this table has a gap.
var recordIDs = map[string]string{
	// Richie Hawtin
	"richie_hawtin_1765117121000000000": "richie_detroit_love_day1",
	"richie_hawtin_1789000000000000000": "richie_berlin_berghain",
	"richie_hawtin_1795800000000000000": "richie_ny_output",
	"richie_hawtin_1784200000000000000": "richie_barcelona_sonar",
	"richie_hawtin_1792600000000000000": "richie_london_fabric",
	"richie_hawtin_1802000000000000000": "richie_tokyo_womb",

	// Dave Clarke
	"dave_clarke_1767952000000000000": "dave_live_techno_vancouver",
	"dave_clarke_1767958400000000000": "dave_toronto_runnymeade",
	"dave_clarke_1768723200000000000": "dave_nancy_wonder_rave",
	"dave_clarke_1768809600000000000": "dave_paris_off_the_grid",
	"dave_clarke_1770995200000000000": "dave_london_fabric_night",
	"dave_clarke_1773528000000000000": "dave_brighton_city_wall",
	"dave_clarke_1779069600000000000": "dave_ostend_beach_festival",
	"dave_clarke_1773715200000000000": "dave_luvmuzik_cardiff",
	"dave_clarke_1820905600000000000": "dave_iceland_eclipse",

	// Jeff Mills. jeff_mills_3 originally shared its timestamp with
	// jeff_mills_2 before the seed correction; see DetectCollisions.
	"jeff_mills_1775484800000000000": "jeff_mills_1",
	"jeff_mills_1775998400000000000": "jeff_mills_2",
	"jeff_mills_1776012800000000000": "jeff_mills_4",
	"jeff_mills_1776086400000000000": "jeff_mills_5",
	"jeff_mills_1776172800000000000": "jeff_mills_6",
	"jeff_mills_1776259200000000000": "jeff_mills_7",
	"jeff_mills_1776793600000000000": "jeff_mills_8",
	"jeff_mills_1776880000000000000": "jeff_mills_9",
	"jeff_mills_1776966400000000000": "jeff_mills_10",
	"jeff_mills_1777587200000000000": "jeff_mills_11",
	"jeff_mills_1777673600000000000": "jeff_mills_12",
	"jeff_mills_1777966400000000000": "jeff_mills_13",
	"jeff_mills_1786134400000000000": "jeff_mills_14",
	"jeff_mills_1792774400000000000": "jeff_mills_15",
	"jeff_mills_1792951000000000000": "jeff_mills_16",
}

// maxSlugLen bounds the derived slug so record IDs stay readable.
const maxSlugLen = 48

// Resolve returns the backend record ID for the (artistID, dateTime)
// pair, or ("", false) when the lookup table has no entry. Pure: the same
// input always yields the same output.
func Resolve(artistID string, dateTime int64) (string, bool) {
	id, ok := recordIDs[key(artistID, dateTime)]
	return id, ok
}

// Derive builds a best-effort record ID from the artist ID and event
// title: the artist ID's first token joined with the slugified title.
// The result is not guaranteed to match the backend's stored key; callers
// must treat a not-found rejection of the derived ID as recoverable.
func Derive(artistID, title string) string {
	token := artistID
	if i := strings.IndexByte(artistID, '_'); i > 0 {
		token = artistID[:i]
	}
	return token + "_" + Slug(title)
}

// ResolveOrDerive resolves through the static table first and falls back
// to Derive. The second return value reports whether the ID came from the
// table (exact) rather than the fallback (best effort).
func ResolveOrDerive(e techno.Event) (string, bool) {
	if id, ok := Resolve(e.ArtistID, e.DateTime); ok {
		return id, true
	}
	return Derive(e.ArtistID, e.EventTitle), false
}

// Slug lowercases s, collapses runs of non-alphanumeric characters to a
// single underscore, strips leading/trailing underscores and truncates to
// a bounded length.
func Slug(s string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			pending = false
			b.WriteRune(r)
		default:
			pending = true
		}
		if b.Len() >= maxSlugLen {
			break
		}
	}
	return b.String()
}

// Collision records two distinct events sharing the same
// (artistID, dateTime) pair. Such pairs break both identity resolution
// and the structural radar membership check, so callers should log them
// loudly when detected.
type Collision struct {
	ArtistID string
	DateTime int64
	Titles   []string
}

func (c Collision) String() string {
	return fmt.Sprintf("artist %s at %d: %s", c.ArtistID, c.DateTime, strings.Join(c.Titles, " / "))
}

// DetectCollisions scans events for (artistID, dateTime) pairs shared by
// more than one distinct title.
func DetectCollisions(events []techno.Event) []Collision {
	byKey := make(map[string][]string)
	order := make([]string, 0, len(events))
	for _, e := range events {
		k := key(e.ArtistID, e.DateTime)
		if _, seen := byKey[k]; !seen {
			order = append(order, k)
		}
		byKey[k] = append(byKey[k], e.EventTitle)
	}

	var out []Collision
	for _, k := range order {
		titles := byKey[k]
		if len(titles) < 2 {
			continue
		}
		distinct := uniqueStrings(titles)
		if len(distinct) < 2 {
			continue
		}
		artistID, dateTime := splitKey(k)
		out = append(out, Collision{ArtistID: artistID, DateTime: dateTime, Titles: distinct})
	}
	return out
}

func key(artistID string, dateTime int64) string {
	return fmt.Sprintf("%s_%d", artistID, dateTime)
}

func splitKey(k string) (string, int64) {
	i := strings.LastIndexByte(k, '_')
	if i < 0 {
		return k, 0
	}
	var ts int64
	_, err := fmt.Sscanf(k[i+1:], "%d", &ts)
	if err != nil {
		return k, 0
	}
	return k[:i], ts
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	var out []string
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
