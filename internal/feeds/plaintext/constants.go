package plaintext

import "time"

const (
	// SourceName identifies this feed on Game records and health maps.
	SourceName = "plaintext"

	defaultBaseURL     = "https://plaintextsports.com"
	defaultHTTPTimeout = 10 * time.Second
)

// section ties a league header substring in the scraped document to league
// metadata. Order matters: sections are assigned by comparing row offsets
// against the header offsets actually found in the page.
type section struct {
	Marker string
	League string
	Sport  string
}

var sections = []section{
	{Marker: "National Basketball Association", League: "NBA", Sport: "basketball"},
	{Marker: "National Hockey League", League: "NHL", Sport: "ice-hockey"},
	{Marker: "Major League Baseball", League: "MLB", Sport: "baseball"},
	{Marker: "Major League Soccer", League: "MLS", Sport: "soccer"},
}
