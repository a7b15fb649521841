package catalog

import (
	"strings"
)

// Trade is one entry in the fixed trade catalog. Declaration order is
// significant: extraction scans the slice top to bottom and the first
// matching entry wins, so earlier trades shadow later ones when synonym
// sets overlap.
type Trade struct {
	Slug        string
	DisplayName string
	Icon        string
	Synonyms    []string
}

// City is one entry in the fixed city catalog. Coordinates back the
// geolocation-to-city resolver.
type City struct {
	Name string
	Lat  float64
	Lon  float64
}

func Trades() []Trade {
	return defaultTrades
}

func Cities() []City {
	return defaultCities
}

// TradeBySlug returns the catalog entry for slug, if any.
func TradeBySlug(slug string) (Trade, bool) {
	for _, t := range defaultTrades {
		if t.Slug == slug {
			return t, true
		}
	}
	return Trade{}, false
}

// CityByName matches name against the catalog case-insensitively.
func CityByName(name string) (City, bool) {
	for _, c := range defaultCities {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return City{}, false
}

// CitySlug lowercases a city name for use in listing routes. Multi-word
// names are hyphenated ("Milton Keynes" -> "milton-keynes").
func CitySlug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// ListingPath builds the listing route for a trade/city pair, the target
// the triage engine and voice router hand to the navigation sink.
func ListingPath(tradeSlug, cityName string) string {
	return "/emergency-" + tradeSlug + "/" + CitySlug(cityName)
}

// The gas engineer sits first so "gas leak" and "boiler leak" reach it
// before the plumber's bare "leak" synonym can swallow them.
var defaultTrades = []Trade{
	{
		Slug:        "gas-engineer",
		DisplayName: "Gas Engineer",
		Icon:        "flame",
		Synonyms: []string{
			"gas engineer", "boiler", "gas smell", "smell gas", "gas leak",
			"central heating", "no heating", "carbon monoxide",
		},
	},
	{
		Slug:        "plumber",
		DisplayName: "Plumber",
		Icon:        "wrench",
		Synonyms: []string{
			"plumbing", "pipe", "burst pipe", "leak", "leaking", "flood",
			"tap", "toilet", "radiator", "water heater", "no hot water",
		},
	},
	{
		Slug:        "electrician",
		DisplayName: "Electrician",
		Icon:        "zap",
		Synonyms: []string{
			"electric", "electrical", "spark", "sparking", "power cut",
			"no power", "fuse", "tripped", "wiring", "socket", "lights out",
		},
	},
	{
		Slug:        "locksmith",
		DisplayName: "Locksmith",
		Icon:        "key",
		// No bare "lock" here: "blocked" contains "locked", so short lock
		// words would hijack drain messages under substring matching.
		Synonyms: []string{
			"locksmith", "locked out", "locked myself out", "lost keys",
			"broken lock", "key snapped", "door won't open",
		},
	},
	{
		Slug:        "drain-specialist",
		DisplayName: "Drain Specialist",
		Icon:        "droplets",
		Synonyms: []string{
			"drain", "blocked drain", "drainage", "sewage", "sewer",
			"blocked toilet", "overflow",
		},
	},
	{
		Slug:        "glazier",
		DisplayName: "Glazier",
		Icon:        "square",
		Synonyms: []string{
			"glass", "glazing", "broken window", "smashed window",
			"window repair", "shopfront",
		},
	},
	{
		Slug:        "breakdown",
		DisplayName: "Breakdown Recovery",
		Icon:        "car",
		Synonyms: []string{
			"broke down", "broken down", "car won't start", "flat battery",
			"flat tyre", "recovery", "towing",
		},
	},
}

var defaultCities = []City{
	{Name: "London", Lat: 51.5074, Lon: -0.1278},
	{Name: "Birmingham", Lat: 52.4862, Lon: -1.8904},
	{Name: "Manchester", Lat: 53.4808, Lon: -2.2426},
	{Name: "Leeds", Lat: 53.8008, Lon: -1.5491},
	{Name: "Liverpool", Lat: 53.4084, Lon: -2.9916},
	{Name: "Sheffield", Lat: 53.3811, Lon: -1.4701},
	{Name: "Bristol", Lat: 51.4545, Lon: -2.5879},
	{Name: "Newcastle", Lat: 54.9783, Lon: -1.6178},
	{Name: "Nottingham", Lat: 52.9548, Lon: -1.1581},
	{Name: "Leicester", Lat: 52.6369, Lon: -1.1398},
	{Name: "Coventry", Lat: 52.4068, Lon: -1.5197},
	{Name: "Bradford", Lat: 53.7960, Lon: -1.7594},
	{Name: "Cardiff", Lat: 51.4816, Lon: -3.1791},
	{Name: "Glasgow", Lat: 55.8642, Lon: -4.2518},
	{Name: "Edinburgh", Lat: 55.9533, Lon: -3.1883},
	{Name: "Milton Keynes", Lat: 52.0406, Lon: -0.7594},
	{Name: "Southampton", Lat: 50.9097, Lon: -1.4044},
	{Name: "Portsmouth", Lat: 50.8198, Lon: -1.0880},
	{Name: "Brighton", Lat: 50.8225, Lon: -0.1372},
	{Name: "Stoke-on-Trent", Lat: 53.0027, Lon: -2.1794},
}
