package espn

import "time"

const (
	// SourceName identifies this feed on Game records and health maps.
	SourceName = "espn"

	defaultBaseURL     = "https://site.api.espn.com/apis/site/v2/sports"
	defaultHTTPTimeout = 10 * time.Second

	scoreboardDateLayout = "20060102"
)

// scoreboardConfig names one (sport, league) scoreboard this adapter covers.
type scoreboardConfig struct {
	Sport  string // canonical lowercase-hyphenated sport tag
	League string // display name for the competition
	Path   string // ESPN sport/league path segment
}

// Each configuration maps to one scoreboard request per date. A failing
// configuration is skipped without affecting the others.
var scoreboardConfigs = []scoreboardConfig{
	{Sport: "american-football", League: "NFL", Path: "football/nfl"},
	{Sport: "american-football", League: "NCAA Football", Path: "football/college-football"},
	{Sport: "basketball", League: "NBA", Path: "basketball/nba"},
	{Sport: "baseball", League: "MLB", Path: "baseball/mlb"},
	{Sport: "ice-hockey", League: "NHL", Path: "hockey/nhl"},
}
