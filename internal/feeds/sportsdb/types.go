package sportsdb

// eventsResponse mirrors the eventsday payload; events is null on days with
// no matches.
type eventsResponse struct {
	Events []eventResponse `json:"events"`
}

type eventResponse struct {
	ID        string `json:"idEvent"`
	Name      string `json:"strEvent"`
	Sport     string `json:"strSport"`
	League    string `json:"strLeague"`
	HomeTeam  string `json:"strHomeTeam"`
	AwayTeam  string `json:"strAwayTeam"`
	HomeScore string `json:"intHomeScore"`
	AwayScore string `json:"intAwayScore"`
	DateEvent string `json:"dateEvent"`
	Time      string `json:"strTime"`
	Venue     string `json:"strVenue"`
	Status    string `json:"strStatus"`
}
