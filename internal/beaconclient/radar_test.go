package beaconclient

import (
	"testing"
	"time"

	"technobeacon/internal/techno"
)

func TestOnRadar(t *testing.T) {
	saved := []techno.Event{
		{ArtistID: "dave_clarke", EventTitle: "Live Techno Vancouver", DateTime: 1767952000000000000},
		{ArtistID: "richie_hawtin", EventTitle: "Klubnacht", DateTime: 1789000000000000000},
	}

	tests := []struct {
		name      string
		candidate techno.Event
		want      bool
	}{
		{
			name:      "exact match",
			candidate: techno.Event{ArtistID: "dave_clarke", DateTime: 1767952000000000000},
			want:      true,
		},
		{
			name:      "same artist different timestamp",
			candidate: techno.Event{ArtistID: "dave_clarke", DateTime: 1767952000000000001},
			want:      false,
		},
		{
			name:      "same timestamp different artist",
			candidate: techno.Event{ArtistID: "jeff_mills", DateTime: 1767952000000000000},
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OnRadar(tt.candidate, saved); got != tt.want {
				t.Errorf("OnRadar() = %v, want %v", got, tt.want)
			}
		})
	}

	if OnRadar(techno.Event{ArtistID: "dave_clarke", DateTime: 1}, nil) {
		t.Error("OnRadar() = true against nil saved list")
	}
}

// The structural match cannot tell apart two distinct events sharing an
// (artist, timestamp) pair; both read as saved once either one is.
func TestOnRadar_CollisionLimitation(t *testing.T) {
	saved := []techno.Event{
		{ArtistID: "jeff_mills", EventTitle: "The Trip", DateTime: 100},
	}
	other := techno.Event{ArtistID: "jeff_mills", EventTitle: "Exhibitionist", DateTime: 100}

	if !OnRadar(other, saved) {
		t.Error("OnRadar() = false for colliding event; the match is structural, titles are ignored")
	}
}

func TestCacheInvalidate(t *testing.T) {
	cache := NewCache(0)
	cache.put(tagEventsByArtist, "dave_clarke", []byte("a"))
	cache.put(tagEventsByArtist, "richie_hawtin", []byte("b"))
	cache.put(tagArtists, "", []byte("c"))

	cache.Invalidate(tagEventsByArtist)

	if _, ok := cache.get(tagEventsByArtist, "dave_clarke"); ok {
		t.Error("invalidated entry still present")
	}
	if _, ok := cache.get(tagEventsByArtist, "richie_hawtin"); ok {
		t.Error("invalidated entry still present")
	}
	if _, ok := cache.get(tagArtists, ""); !ok {
		t.Error("unrelated tag was invalidated")
	}
}

func TestCacheExpiry(t *testing.T) {
	cache := NewCache(time.Nanosecond)
	cache.put(tagArtists, "", []byte("c"))
	time.Sleep(time.Millisecond)

	if _, ok := cache.get(tagArtists, ""); ok {
		t.Error("expired entry served")
	}
}
