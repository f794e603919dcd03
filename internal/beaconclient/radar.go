package beaconclient

import "technobeacon/internal/techno"

// OnRadar reports whether the candidate event appears in the saved list.
// Saved events carry no record ID, so the match is structural: same
// artist and exact nanosecond timestamp. Two distinct events sharing an
// (artist, timestamp) pair are therefore indistinguishable here; the
// backend must guarantee that pair unique per artist for this check to
// be sound.
func OnRadar(candidate techno.Event, saved []techno.Event) bool {
	for _, e := range saved {
		if e.ArtistID == candidate.ArtistID && e.DateTime == candidate.DateTime {
			return true
		}
	}
	return false
}
