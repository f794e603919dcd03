// Package travel builds outbound deep links for trip planning around an
// event: flight search (Skyscanner), lodging search (Booking.com) and
// ticket search (Dice, Songkick). It is string templating over a static
// city-to-airport table, not a travel API client.
package travel

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// cityCodes maps normalised city names to Skyscanner-recognised IATA
// airport or city codes. Keys are lowercase with spaces and punctuation
// stripped so lookups tolerate free-text input.
var cityCodes = map[string]string{
	// Canada
	"vancouver": "YVR",
	"toronto":   "YYZ",
	"montreal":  "YUL",

	// USA
	"detroit":      "DTW",
	"chicago":      "ORD",
	"newyork":      "JFK",
	"newyorkcity":  "JFK",
	"nyc":          "JFK",
	"washingtondc": "DCA",
	"washington":   "DCA",
	"dc":           "DCA",
	"sanfrancisco": "SFO",
	"sf":           "SFO",
	"losangeles":   "LAX",
	"la":           "LAX",
	"denver":       "DEN",
	"atlanta":      "ATL",
	"miami":        "MIA",

	// UK
	"london":     "LON",
	"brighton":   "LGW",
	"cardiff":    "CWL",
	"manchester": "MAN",
	"edinburgh":  "EDI",
	"birmingham": "BHX",
	"glasgow":    "GLA",

	// Iceland
	"hellissandur": "KEF",
	"reykjavik":    "KEF",
	"iceland":      "KEF",
	"akureyri":     "AEY",

	// France
	"paris":      "CDG",
	"nancy":      "ETZ",
	"strasbourg": "SXB",
	"lyon":       "LYS",
	"marseille":  "MRS",
	"nice":       "NCE",
	"bordeaux":   "BOD",
	"toulouse":   "TLS",
	"nantes":     "NTE",

	// Germany
	"berlin":     "BER",
	"munich":     "MUC",
	"hamburg":    "HAM",
	"frankfurt":  "FRA",
	"cologne":    "CGN",
	"dusseldorf": "DUS",
	"stuttgart":  "STR",

	// Netherlands
	"amsterdam": "AMS",
	"rotterdam": "RTM",
	"thehague":  "AMS",
	"denhaag":   "AMS",

	// Belgium
	"brussels": "BRU",
	"ostend":   "OST",
	"antwerp":  "ANR",
	"ghent":    "BRU",

	// Spain
	"barcelona": "BCN",
	"madrid":    "MAD",
	"ibiza":     "IBZ",
	"seville":   "SVQ",
	"valencia":  "VLC",
	"malaga":    "AGP",

	// Italy
	"rome":     "FCO",
	"milan":    "MXP",
	"florence": "FLR",
	"venice":   "VCE",
	"naples":   "NAP",

	// Japan
	"tokyo": "NRT",
	"osaka": "KIX",
	"kyoto": "ITM",

	// South Africa
	"johannesburg": "JNB",
	"capetown":     "CPT",
	"durban":       "DUR",

	// Australia
	"sydney":    "SYD",
	"melbourne": "MEL",
	"brisbane":  "BNE",
	"perth":     "PER",

	// Colombia
	"bogota":   "BOG",
	"medellin": "MDE",
	"medelln":  "MDE",
	"cali":     "CLO",

	// Other
	"dubai":        "DXB",
	"singapore":    "SIN",
	"hongkong":     "HKG",
	"bangkok":      "BKK",
	"istanbul":     "IST",
	"athens":       "ATH",
	"lisbon":       "LIS",
	"porto":        "OPO",
	"vienna":       "VIE",
	"zurich":       "ZRH",
	"geneva":       "GVA",
	"prague":       "PRG",
	"warsaw":       "WAW",
	"budapest":     "BUD",
	"stockholm":    "ARN",
	"oslo":         "OSL",
	"copenhagen":   "CPH",
	"helsinki":     "HEL",
	"dublin":       "DUB",
	"cairo":        "CAI",
	"nairobi":      "NBO",
	"lagos":        "LOS",
	"mumbai":       "BOM",
	"delhi":        "DEL",
	"bangalore":    "BLR",
	"seoul":        "ICN",
	"beijing":      "PEK",
	"shanghai":     "PVG",
	"mexicocity":   "MEX",
	"lima":         "LIM",
	"santiago":     "SCL",
	"buenosaires":  "EZE",
	"saopaulo":     "GRU",
	"riodejaneiro": "GIG",
}

// CabinClass selects the Skyscanner cabin parameter derived from the
// trip budget level.
type CabinClass string

const (
	CabinEconomy  CabinClass = "economy"
	CabinBusiness CabinClass = "business"
)

// CityToIATA resolves a free-text city name to an IATA code. Lookup order:
// exact normalised match, first two words joined, first word alone. When
// nothing matches, the lowercased first word is returned as a raw slug;
// unreliable for the flight site, but better than no link at all.
func CityToIATA(city string) string {
	if code, ok := cityCodes[normalizeCity(city)]; ok {
		return code
	}

	words := strings.Fields(strings.ToLower(strings.TrimSpace(city)))
	if len(words) == 0 {
		return ""
	}
	if len(words) > 1 {
		if code, ok := cityCodes[normalizeCity(words[0]+words[1])]; ok {
			return code
		}
		if code, ok := cityCodes[normalizeCity(words[0])]; ok {
			return code
		}
	}
	return normalizeCity(words[0])
}

// CitySlug converts a city name to a URL-friendly hyphenated slug, e.g.
// "New York City" becomes "new-york-city".
func CitySlug(city string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(city)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-':
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), "-")
}

// FlightSearchURL builds a Skyscanner deep link between two cities.
// Dates are encoded as YYMMDD path segments.
func FlightSearchURL(originCity, destinationCity string, outbound, ret time.Time) string {
	return fmt.Sprintf("https://www.skyscanner.net/transport/flights/%s/%s/%s/%s/",
		CityToIATA(originCity), CityToIATA(destinationCity),
		skyscannerDate(outbound), skyscannerDate(ret))
}

// FlightSearchURLWithCabin appends the cabin-class query parameter used
// by the trip planner's budget selector.
func FlightSearchURLWithCabin(originCity, destinationCity string, outbound, ret time.Time, cabin CabinClass) string {
	return FlightSearchURL(originCity, destinationCity, outbound, ret) + "?cabin=" + string(cabin)
}

// LodgingSearchURL builds a Booking.com search link for the destination
// city over the given stay.
func LodgingSearchURL(city string, checkin, checkout time.Time) string {
	params := url.Values{}
	params.Set("ss", city)
	params.Set("checkin", checkin.Format("2006-01-02"))
	params.Set("checkout", checkout.Format("2006-01-02"))
	return "https://www.booking.com/searchresults.html?" + params.Encode()
}

// TicketPlatform identifies a ticket search site.
type TicketPlatform string

const (
	PlatformDice     TicketPlatform = "dice"
	PlatformSongkick TicketPlatform = "songkick"
)

// TicketSearchURL builds an artist search link on the given platform.
func TicketSearchURL(platform TicketPlatform, artistName string) string {
	encoded := url.QueryEscape(artistName)
	if platform == PlatformDice {
		return "https://dice.fm/search?q=" + encoded
	}
	return "https://www.songkick.com/search?query=" + encoded
}

// OutboundDate is the default departure day: one day before the event.
func OutboundDate(eventTimeNanos int64) time.Time {
	return time.Unix(0, eventTimeNanos).AddDate(0, 0, -1)
}

// ReturnDate is the default return day: one day after the event.
func ReturnDate(eventTimeNanos int64) time.Time {
	return time.Unix(0, eventTimeNanos).AddDate(0, 0, 1)
}

func skyscannerDate(t time.Time) string {
	return t.Format("060102")
}

func normalizeCity(city string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(city)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
