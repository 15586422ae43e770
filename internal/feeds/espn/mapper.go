package espn

import (
	"strconv"
	"strings"
	"time"

	domaingames "scoreboard-service/internal/domain/games"
)

// eventDateLayouts covers the timestamp shapes ESPN emits; minutes-precision
// zulu stamps ("2025-09-07T17:00Z") are the common case.
var eventDateLayouts = []string{
	"2006-01-02T15:04Z07:00",
	time.RFC3339,
}

func mapEvent(ev eventResponse, sc scoreboardConfig) (domaingames.Game, bool) {
	if len(ev.Competitions) == 0 {
		return domaingames.Game{}, false
	}
	comp := ev.Competitions[0]

	var home, away competitorResponse
	for _, c := range comp.Competitors {
		switch c.HomeAway {
		case "home":
			home = c
		case "away":
			away = c
		}
	}
	homeName := teamName(home.Team)
	awayName := teamName(away.Team)
	if homeName == "" || awayName == "" {
		return domaingames.Game{}, false
	}

	game := domaingames.Game{
		HomeTeam:  homeName,
		AwayTeam:  awayName,
		Date:      parseEventDate(ev.Date),
		Status:    mapStatus(comp.Status, sc.Sport),
		League:    sc.League,
		Venue:     comp.Venue.FullName,
		Sport:     sc.Sport,
		Source:    SourceName,
		HomeScore: parseScore(home.Score),
		AwayScore: parseScore(away.Score),
	}
	return game, true
}

func teamName(t teamResponse) string {
	if t.DisplayName != "" {
		return t.DisplayName
	}
	return t.Name
}

func parseEventDate(raw string) time.Time {
	for _, layout := range eventDateLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts
		}
	}
	return time.Time{}
}

// fourPeriodSports are the sports where regulation is four periods, so a
// period past four means overtime. Elsewhere ("period" is an inning in MLB,
// and NHL regulation is three) only the short detail signals overtime.
var fourPeriodSports = map[string]bool{
	"american-football": true,
	"basketball":        true,
}

// mapStatus keeps the raw status text and annotates overtime the way the
// scoreboard shows it: "OT" in the short detail or, for four-period sports,
// a period past regulation.
func mapStatus(status statusResponse, sport string) string {
	desc := strings.TrimSpace(status.Type.Description)
	if desc == "" {
		desc = "Scheduled"
	}
	overtime := strings.Contains(status.Type.ShortDetail, "OT")
	if !overtime && fourPeriodSports[sport] {
		overtime = status.Period > 4
	}
	if overtime && !strings.Contains(desc, "OT") {
		return desc + " (OT)"
	}
	return desc
}

// parseScore returns nil for absent scores so upcoming games carry no score
// at all rather than a zero.
func parseScore(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &val
}
