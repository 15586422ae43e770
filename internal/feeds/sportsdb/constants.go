package sportsdb

import "time"

const (
	// SourceName identifies this feed on Game records and health maps.
	SourceName = "thesportsdb"

	defaultBaseURL     = "https://www.thesportsdb.com/api/v1/json"
	defaultAPIKey      = "3" // shared free-tier key
	defaultHTTPTimeout = 10 * time.Second
)

// sportConfigs lists the upstream sport vocabularies queried per date, one
// eventsday request each.
var sportConfigs = []string{
	"Soccer",
	"Basketball",
	"Ice Hockey",
	"American Football",
	"Baseball",
}

// sportTags is the fixed lookup from upstream sport names to canonical
// lowercase-hyphenated tags. Unmapped values pass through lowercased.
var sportTags = map[string]string{
	"Soccer":            "soccer",
	"Basketball":        "basketball",
	"Ice Hockey":        "ice-hockey",
	"American Football": "american-football",
	"Baseball":          "baseball",
	"Motorsport":        "motorsport",
	"Rugby":             "rugby",
}
