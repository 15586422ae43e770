package espn

type scoreboardResponse struct {
	Events []eventResponse `json:"events"`
}

type eventResponse struct {
	ID           string                `json:"id"`
	Date         string                `json:"date"`
	Name         string                `json:"name"`
	Competitions []competitionResponse `json:"competitions"`
}

type competitionResponse struct {
	Competitors []competitorResponse `json:"competitors"`
	Status      statusResponse       `json:"status"`
	Venue       venueResponse        `json:"venue"`
}

type competitorResponse struct {
	HomeAway string       `json:"homeAway"`
	Score    string       `json:"score"`
	Team     teamResponse `json:"team"`
}

type teamResponse struct {
	DisplayName  string `json:"displayName"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

type statusResponse struct {
	Period int                `json:"period"`
	Type   statusTypeResponse `json:"type"`
}

type statusTypeResponse struct {
	Description string `json:"description"`
	ShortDetail string `json:"shortDetail"`
}

type venueResponse struct {
	FullName string `json:"fullName"`
}
