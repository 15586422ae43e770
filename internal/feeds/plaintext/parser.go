package plaintext

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// gameRowPattern matches one game box in the scraped page: a status/clock
// cell followed by two team-code cells with optional scores, each on its own
// pipe-delimited row. The page layout is not contractual; this pattern is a
// known fragility and parsing is best-effort.
var gameRowPattern = regexp.MustCompile(
	`\|\s*([^|\n]*?)\s*\|\s*\n` + // status or clock cell
		`\|\s*([A-Z][A-Z0-9]{1,4})\s*(\d*)\s*\|\s*\n` + // away code + optional score
		`\|\s*([A-Z][A-Z0-9]{1,4})\s*(\d*)\s*\|`) // home code + optional score

// clockPattern recognizes a 12-hour start time inside a status cell.
var clockPattern = regexp.MustCompile(`(?i)\b(\d{1,2}):(\d{2})\s*(AM|PM)\b`)

// rawRow is one extracted game box before league assignment.
type rawRow struct {
	Offset    int
	Status    string
	AwayCode  string
	AwayScore *int
	HomeCode  string
	HomeScore *int
}

func extractRows(doc string) []rawRow {
	matches := gameRowPattern.FindAllStringSubmatchIndex(doc, -1)
	rows := make([]rawRow, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, rawRow{
			Offset:    m[0],
			Status:    strings.TrimSpace(group(doc, m, 1)),
			AwayCode:  group(doc, m, 2),
			AwayScore: optionalScore(group(doc, m, 3)),
			HomeCode:  group(doc, m, 4),
			HomeScore: optionalScore(group(doc, m, 5)),
		})
	}
	return rows
}

func group(doc string, m []int, n int) string {
	start, end := m[2*n], m[2*n+1]
	if start < 0 || end < 0 {
		return ""
	}
	return doc[start:end]
}

func optionalScore(raw string) *int {
	if raw == "" {
		return nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &val
}

// sectionBound is a located league header.
type sectionBound struct {
	Offset int
	Sec    section
}

// locateSections finds the first occurrence of each known league header in
// the document. Headers that do not appear are omitted.
func locateSections(doc string) []sectionBound {
	bounds := make([]sectionBound, 0, len(sections))
	for _, sec := range sections {
		if off := strings.Index(doc, sec.Marker); off >= 0 {
			bounds = append(bounds, sectionBound{Offset: off, Sec: sec})
		}
	}
	// Markers appear in page order, but sort-by-offset keeps interval
	// assignment correct if the page reorders them.
	for i := 1; i < len(bounds); i++ {
		for j := i; j > 0 && bounds[j-1].Offset > bounds[j].Offset; j-- {
			bounds[j-1], bounds[j] = bounds[j], bounds[j-1]
		}
	}
	return bounds
}

// sectionFor assigns a row offset to the greatest header offset at or before
// it. Rows ahead of every header belong to no section.
func sectionFor(bounds []sectionBound, offset int) (section, bool) {
	var found section
	ok := false
	for _, b := range bounds {
		if b.Offset > offset {
			break
		}
		found = b.Sec
		ok = true
	}
	return found, ok
}

// parseClock converts a "7:05 PM" style status to a 24-hour time-of-day.
// The second return is false when the status carries no clock, in which case
// the event defaults to midnight.
func parseClock(status string) (hour, minute int, ok bool) {
	m := clockPattern.FindStringSubmatch(status)
	if m == nil {
		return 0, 0, false
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	if hour < 1 || hour > 12 || minute > 59 {
		return 0, 0, false
	}
	if strings.EqualFold(m[3], "PM") && hour != 12 {
		hour += 12
	}
	if strings.EqualFold(m[3], "AM") && hour == 12 {
		hour = 0
	}
	return hour, minute, true
}

// eventTime anchors the parsed clock on the target calendar date.
func eventTime(date time.Time, status string) time.Time {
	hour, minute, ok := parseClock(status)
	if !ok {
		hour, minute = 0, 0
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
}
