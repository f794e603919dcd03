package store

import "technobeacon/internal/techno"

type seedEvent struct {
	ID    string
	Event techno.Event
}

var seedArtists = []techno.Artist{
	{
		ID:       "richie_hawtin",
		Name:     "Richie Hawtin",
		ImageURL: "https://static.technobeacon.io/artists/richie_hawtin.jpg",
		Genre:    "Minimal Techno",
	},
	{
		ID:       "dave_clarke",
		Name:     "Dave Clarke",
		ImageURL: "https://static.technobeacon.io/artists/dave_clarke.jpg",
		Genre:    "Techno / Electro",
	},
	{
		ID:       "jeff_mills",
		Name:     "Jeff Mills",
		ImageURL: "https://static.technobeacon.io/artists/jeff_mills.jpg",
		Genre:    "Detroit Techno",
	},
}

// seedEvents is the full event dataset. Record IDs here must stay in sync
// with the eventid lookup table. The Jeff Mills dates originally included
// a timestamp shared by two events; the timestamps below carry the
// correction, and seed_test.go guards against regressing it.
var seedEvents = []seedEvent{
	// Richie Hawtin
	{"richie_detroit_love_day1", techno.Event{ArtistID: "richie_hawtin", EventTitle: "Detroit Love Day 1", Venue: "TV Lounge", City: "Detroit", Country: "USA", DateTime: 1765117121000000000, SourceLabel: "Resident Advisor", EventURL: "https://ra.co/events/richie-detroit-love-day1"}},
	{"richie_barcelona_sonar", techno.Event{ArtistID: "richie_hawtin", EventTitle: "Sonar by Night", Venue: "Fira Gran Via", City: "Barcelona", Country: "Spain", DateTime: 1784200000000000000, SourceLabel: "Songkick", EventURL: "https://www.songkick.com/concerts/richie-barcelona-sonar"}},
	{"richie_berlin_berghain", techno.Event{ArtistID: "richie_hawtin", EventTitle: "Klubnacht", Venue: "Berghain", City: "Berlin", Country: "Germany", DateTime: 1789000000000000000, SourceLabel: "Resident Advisor", EventURL: "https://ra.co/events/richie-berlin-berghain"}},
	{"richie_london_fabric", techno.Event{ArtistID: "richie_hawtin", EventTitle: "Fabric Live", Venue: "fabric", City: "London", Country: "UK", DateTime: 1792600000000000000, SourceLabel: "Resident Advisor", EventURL: "https://ra.co/events/richie-london-fabric"}},
	{"richie_ny_output", techno.Event{ArtistID: "richie_hawtin", EventTitle: "Output Reopening", Venue: "Output", City: "New York", Country: "USA", DateTime: 1795800000000000000, SourceLabel: "Bandsintown", EventURL: "https://www.bandsintown.com/e/richie-ny-output"}},
	{"richie_tokyo_womb", techno.Event{ArtistID: "richie_hawtin", EventTitle: "Womb All Night", Venue: "Womb", City: "Tokyo", Country: "Japan", DateTime: 1802000000000000000, SourceLabel: "Resident Advisor", EventURL: "https://ra.co/events/richie-tokyo-womb"}},

	// Dave Clarke
	{"dave_live_techno_vancouver", techno.Event{ArtistID: "dave_clarke", EventTitle: "Live Techno Vancouver", Venue: "The Hollywood Theatre", City: "Vancouver", Country: "Canada", DateTime: 1767952000000000000, SourceLabel: "Songkick", EventURL: "https://www.songkick.com/concerts/dave-live-techno-vancouver"}},
	{"dave_toronto_runnymeade", techno.Event{ArtistID: "dave_clarke", EventTitle: "Runnymeade Sessions", Venue: "CODA", City: "Toronto", Country: "Canada", DateTime: 1767958400000000000, SourceLabel: "Songkick", EventURL: "https://www.songkick.com/concerts/dave-toronto-runnymeade"}},
	{"dave_nancy_wonder_rave", techno.Event{ArtistID: "dave_clarke", EventTitle: "Wonder Rave", Venue: "L'Autre Canal", City: "Nancy", Country: "France", DateTime: 1768723200000000000, SourceLabel: "Resident Advisor", EventURL: "https://ra.co/events/dave-nancy-wonder-rave"}},
	{"dave_paris_off_the_grid", techno.Event{ArtistID: "dave_clarke", EventTitle: "Off The Grid", Venue: "Rex Club", City: "Paris", Country: "France", DateTime: 1768809600000000000, SourceLabel: "Resident Advisor", EventURL: "https://ra.co/events/dave-paris-off-the-grid"}},
	{"dave_london_fabric_night", techno.Event{ArtistID: "dave_clarke", EventTitle: "Fabric Night", Venue: "fabric", City: "London", Country: "UK", DateTime: 1770995200000000000, SourceLabel: "Resident Advisor", EventURL: "https://ra.co/events/dave-london-fabric-night"}},
	{"dave_brighton_city_wall", techno.Event{ArtistID: "dave_clarke", EventTitle: "City Wall", Venue: "The Arch", City: "Brighton", Country: "UK", DateTime: 1773528000000000000, SourceLabel: "Bandsintown", EventURL: "https://www.bandsintown.com/e/dave-brighton-city-wall"}},
	{"dave_luvmuzik_cardiff", techno.Event{ArtistID: "dave_clarke", EventTitle: "LuvMuzik", Venue: "Clwb Ifor Bach", City: "Cardiff", Country: "UK", DateTime: 1773715200000000000, SourceLabel: "Songkick", EventURL: "https://www.songkick.com/concerts/dave-luvmuzik-cardiff"}},
	{"dave_ostend_beach_festival", techno.Event{ArtistID: "dave_clarke", EventTitle: "Ostend Beach Festival", Venue: "TBA", City: "Ostend", Country: "Belgium", DateTime: 1779069600000000000, SourceLabel: "Resident Advisor", EventURL: "https://ra.co/events/dave-ostend-beach-festival"}},
	{"dave_iceland_eclipse", techno.Event{ArtistID: "dave_clarke", EventTitle: "Iceland Eclipse", Venue: "TBA", City: "Hellissandur", Country: "Iceland", DateTime: 1820905600000000000, SourceLabel: "Bandsintown", EventURL: "https://www.bandsintown.com/e/dave-iceland-eclipse"}},

	// Jeff Mills: The Escape Velocity tour
	{"jeff_mills_1", techno.Event{ArtistID: "jeff_mills", EventTitle: "Escape Velocity: Detroit", Venue: "Masonic Temple", City: "Detroit", Country: "USA", DateTime: 1775484800000000000, SourceLabel: "Resident Advisor", EventURL: "https://ra.co/events/jeff-mills-1"}},
	{"jeff_mills_2", techno.Event{ArtistID: "jeff_mills", EventTitle: "Escape Velocity: Chicago", Venue: "Smartbar", City: "Chicago", Country: "USA", DateTime: 1775998400000000000, SourceLabel: "Resident Advisor", EventURL: "https://ra.co/events/jeff-mills-2"}},
	{"jeff_mills_4", techno.Event{ArtistID: "jeff_mills", EventTitle: "Escape Velocity: Montreal", Venue: "Stereo", City: "Montreal", Country: "Canada", DateTime: 1776012800000000000, SourceLabel: "Songkick", EventURL: "https://www.songkick.com/concerts/jeff-mills-4"}},
	{"jeff_mills_5", techno.Event{ArtistID: "jeff_mills", EventTitle: "Escape Velocity: New York", Venue: "Knockdown Center", City: "New York", Country: "USA", DateTime: 1776086400000000000, SourceLabel: "Resident Advisor", EventURL: "https://ra.co/events/jeff-mills-5"}},
	{"jeff_mills_6", techno.Event{ArtistID: "jeff_mills", EventTitle: "Escape Velocity: Amsterdam", Venue: "Paradiso", City: "Amsterdam", Country: "Netherlands", DateTime: 1776172800000000000, SourceLabel: "Resident Advisor", EventURL: "https://ra.co/events/jeff-mills-6"}},
	{"jeff_mills_7", techno.Event{ArtistID: "jeff_mills", EventTitle: "Escape Velocity: Rotterdam", Venue: "Maassilo", City: "Rotterdam", Country: "Netherlands", DateTime: 1776259200000000000, SourceLabel: "Songkick", EventURL: "https://www.songkick.com/concerts/jeff-mills-7"}},
	{"jeff_mills_8", techno.Event{ArtistID: "jeff_mills", EventTitle: "Escape Velocity: Berlin", Venue: "Tresor", City: "Berlin", Country: "Germany", DateTime: 1776793600000000000, SourceLabel: "Resident Advisor", EventURL: "https://ra.co/events/jeff-mills-8"}},
	{"jeff_mills_9", techno.Event{ArtistID: "jeff_mills", EventTitle: "Escape Velocity: Prague", Venue: "Roxy", City: "Prague", Country: "Czechia", DateTime: 1776880000000000000, SourceLabel: "Bandsintown", EventURL: "https://www.bandsintown.com/e/jeff-mills-9"}},
	{"jeff_mills_10", techno.Event{ArtistID: "jeff_mills", EventTitle: "Escape Velocity: Vienna", Venue: "Grelle Forelle", City: "Vienna", Country: "Austria", DateTime: 1776966400000000000, SourceLabel: "Resident Advisor", EventURL: "https://ra.co/events/jeff-mills-10"}},
	{"jeff_mills_11", techno.Event{ArtistID: "jeff_mills", EventTitle: "Escape Velocity: Barcelona", Venue: "Input", City: "Barcelona", Country: "Spain", DateTime: 1777587200000000000, SourceLabel: "Resident Advisor", EventURL: "https://ra.co/events/jeff-mills-11"}},
	{"jeff_mills_12", techno.Event{ArtistID: "jeff_mills", EventTitle: "Escape Velocity: Lisbon", Venue: "Lux Fragil", City: "Lisbon", Country: "Portugal", DateTime: 1777673600000000000, SourceLabel: "Songkick", EventURL: "https://www.songkick.com/concerts/jeff-mills-12"}},
	{"jeff_mills_13", techno.Event{ArtistID: "jeff_mills", EventTitle: "Escape Velocity: Paris", Venue: "La Machine du Moulin Rouge", City: "Paris", Country: "France", DateTime: 1777966400000000000, SourceLabel: "Resident Advisor", EventURL: "https://ra.co/events/jeff-mills-13"}},
	{"jeff_mills_14", techno.Event{ArtistID: "jeff_mills", EventTitle: "Escape Velocity: Tokyo", Venue: "Contact", City: "Tokyo", Country: "Japan", DateTime: 1786134400000000000, SourceLabel: "Resident Advisor", EventURL: "https://ra.co/events/jeff-mills-14"}},
	{"jeff_mills_15", techno.Event{ArtistID: "jeff_mills", EventTitle: "Escape Velocity: Osaka", Venue: "Circus", City: "Osaka", Country: "Japan", DateTime: 1792774400000000000, SourceLabel: "Songkick", EventURL: "https://www.songkick.com/concerts/jeff-mills-15"}},
	{"jeff_mills_16", techno.Event{ArtistID: "jeff_mills", EventTitle: "Escape Velocity: Seoul", Venue: "Faust", City: "Seoul", Country: "South Korea", DateTime: 1792951000000000000, SourceLabel: "Bandsintown", EventURL: "https://www.bandsintown.com/e/jeff-mills-16"}},
}

// SeedEvents exposes the seed dataset without record IDs, shaped the way
// list endpoints return events. Used by the seed regression tests and the
// collision check at seed time.
func SeedEvents() []techno.Event {
	events := make([]techno.Event, len(seedEvents))
	for i, se := range seedEvents {
		events[i] = se.Event
	}
	return events
}

// SeedArtists exposes the seed artist catalogue.
func SeedArtists() []techno.Artist {
	artists := make([]techno.Artist, len(seedArtists))
	copy(artists, seedArtists)
	return artists
}
