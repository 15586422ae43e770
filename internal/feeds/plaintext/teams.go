package plaintext

// Per-league team code tables. Codes absent from a table pass through
// unchanged, so the NHL entry staying empty only costs display polish.
var teamNames = map[string]map[string]string{
	"NBA": {
		"ATL": "Atlanta Hawks",
		"BOS": "Boston Celtics",
		"BKN": "Brooklyn Nets",
		"CHA": "Charlotte Hornets",
		"CHI": "Chicago Bulls",
		"CLE": "Cleveland Cavaliers",
		"DAL": "Dallas Mavericks",
		"DEN": "Denver Nuggets",
		"DET": "Detroit Pistons",
		"GSW": "Golden State Warriors",
		"HOU": "Houston Rockets",
		"IND": "Indiana Pacers",
		"LAC": "Los Angeles Clippers",
		"LAL": "Los Angeles Lakers",
		"MEM": "Memphis Grizzlies",
		"MIA": "Miami Heat",
		"MIL": "Milwaukee Bucks",
		"MIN": "Minnesota Timberwolves",
		"NOP": "New Orleans Pelicans",
		"NYK": "New York Knicks",
		"OKC": "Oklahoma City Thunder",
		"ORL": "Orlando Magic",
		"PHI": "Philadelphia 76ers",
		"PHX": "Phoenix Suns",
		"POR": "Portland Trail Blazers",
		"SAC": "Sacramento Kings",
		"SAS": "San Antonio Spurs",
		"TOR": "Toronto Raptors",
		"UTA": "Utah Jazz",
		"WAS": "Washington Wizards",
	},
	"NHL": {},
	"MLB": {
		"ARI": "Arizona Diamondbacks",
		"ATL": "Atlanta Braves",
		"BAL": "Baltimore Orioles",
		"BOS": "Boston Red Sox",
		"CHC": "Chicago Cubs",
		"CWS": "Chicago White Sox",
		"CIN": "Cincinnati Reds",
		"CLE": "Cleveland Guardians",
		"COL": "Colorado Rockies",
		"DET": "Detroit Tigers",
		"HOU": "Houston Astros",
		"KC":  "Kansas City Royals",
		"LAA": "Los Angeles Angels",
		"LAD": "Los Angeles Dodgers",
		"MIA": "Miami Marlins",
		"MIL": "Milwaukee Brewers",
		"MIN": "Minnesota Twins",
		"NYM": "New York Mets",
		"NYY": "New York Yankees",
		"OAK": "Oakland Athletics",
		"PHI": "Philadelphia Phillies",
		"PIT": "Pittsburgh Pirates",
		"SD":  "San Diego Padres",
		"SF":  "San Francisco Giants",
		"SEA": "Seattle Mariners",
		"STL": "St. Louis Cardinals",
		"TB":  "Tampa Bay Rays",
		"TEX": "Texas Rangers",
		"TOR": "Toronto Blue Jays",
		"WSH": "Washington Nationals",
	},
	"MLS": {
		"ATL":  "Atlanta United FC",
		"ATX":  "Austin FC",
		"CLT":  "Charlotte FC",
		"CHI":  "Chicago Fire FC",
		"CIN":  "FC Cincinnati",
		"COL":  "Colorado Rapids",
		"CLB":  "Columbus Crew",
		"DAL":  "FC Dallas",
		"DC":   "D.C. United",
		"HOU":  "Houston Dynamo FC",
		"LA":   "LA Galaxy",
		"LAFC": "Los Angeles FC",
		"MIA":  "Inter Miami CF",
		"MIN":  "Minnesota United FC",
		"MTL":  "CF Montréal",
		"NSH":  "Nashville SC",
		"NE":   "New England Revolution",
		"NYC":  "New York City FC",
		"NYR":  "New York Red Bulls",
		"ORL":  "Orlando City SC",
		"PHI":  "Philadelphia Union",
		"POR":  "Portland Timbers",
		"RSL":  "Real Salt Lake",
		"SJ":   "San Jose Earthquakes",
		"SEA":  "Seattle Sounders FC",
		"SKC":  "Sporting Kansas City",
		"STL":  "St. Louis City SC",
		"TOR":  "Toronto FC",
		"VAN":  "Vancouver Whitecaps FC",
	},
}

// expandTeamCode returns the full display name for a team code within a
// league, or the code itself when no table entry exists.
func expandTeamCode(league, code string) string {
	table, ok := teamNames[league]
	if !ok {
		return code
	}
	if name, ok := table[code]; ok {
		return name
	}
	return code
}
