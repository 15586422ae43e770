// Package classify maps raw free-text status strings to lifecycle categories.
//
// Upstream status vocabulary is not contractual, so classification is a
// substring heuristic: live markers are checked before final markers and
// anything unrecognized defaults to upcoming.
package classify

import (
	"strings"

	domaingames "scoreboard-service/internal/domain/games"
)

var liveMarkers = []string{
	"live",
	"in progress",
	"quarter",
	"period",
	"half",
	"inning",
	"overtime",
	"top",
	"bottom",
}

var finalMarkers = []string{
	"final",
	"completed",
	"finished",
	"ended",
	"full time",
	"ft",
}

// Classify buckets a raw status string into live, final, or upcoming.
// The live check runs first, so a status matching both vocabularies
// resolves to live.
func Classify(status string) domaingames.Category {
	lowered := strings.ToLower(status)
	for _, marker := range liveMarkers {
		if strings.Contains(lowered, marker) {
			return domaingames.CategoryLive
		}
	}
	for _, marker := range finalMarkers {
		if strings.Contains(lowered, marker) {
			return domaingames.CategoryFinal
		}
	}
	return domaingames.CategoryUpcoming
}

// Partition splits games into category buckets, preserving input order
// within each bucket.
func Partition(list []domaingames.Game) map[domaingames.Category][]domaingames.Game {
	buckets := make(map[domaingames.Category][]domaingames.Game, 3)
	for _, g := range list {
		cat := Classify(g.Status)
		buckets[cat] = append(buckets[cat], g)
	}
	return buckets
}
