package sportsdb

import (
	"strconv"
	"strings"
	"time"

	domaingames "scoreboard-service/internal/domain/games"
)

func mapEvent(ev eventResponse) (domaingames.Game, bool) {
	home := strings.TrimSpace(ev.HomeTeam)
	away := strings.TrimSpace(ev.AwayTeam)
	if home == "" || away == "" {
		return domaingames.Game{}, false
	}

	return domaingames.Game{
		HomeTeam:  home,
		AwayTeam:  away,
		Date:      parseEventTimestamp(ev.DateEvent, ev.Time),
		Status:    mapStatus(ev.Status),
		League:    strings.TrimSpace(ev.League),
		Venue:     strings.TrimSpace(ev.Venue),
		Sport:     mapSport(ev.Sport),
		Source:    SourceName,
		HomeScore: parseScore(ev.HomeScore),
		AwayScore: parseScore(ev.AwayScore),
	}, true
}

// parseEventTimestamp combines dateEvent with strTime; events without a
// kickoff time land at midnight.
func parseEventTimestamp(date, clock string) time.Time {
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)
	if clock != "" {
		for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02 15:04"} {
			if ts, err := time.Parse(layout, date+" "+clock); err == nil {
				return ts
			}
		}
	}
	ts, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}
	}
	return ts
}

func mapStatus(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "NS" {
		return "Scheduled"
	}
	return raw
}

func mapSport(raw string) string {
	if tag, ok := sportTags[raw]; ok {
		return tag
	}
	return strings.ToLower(raw)
}

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
