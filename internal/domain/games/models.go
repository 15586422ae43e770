package games

import "time"

// Category is the lifecycle bucket a game lands in after classification.
type Category string

const (
	CategoryLive     Category = "live"
	CategoryFinal    Category = "final"
	CategoryUpcoming Category = "upcoming"
)

// Categories lists the buckets in display order.
func Categories() []Category {
	return []Category{CategoryLive, CategoryFinal, CategoryUpcoming}
}

// Valid reports whether c names a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryLive, CategoryFinal, CategoryUpcoming:
		return true
	}
	return false
}

// FeedHealth describes whether a source contributed games in the latest run.
type FeedHealth string

const (
	HealthPending FeedHealth = "pending"
	HealthHealthy FeedHealth = "healthy"
	HealthFailed  FeedHealth = "failed"
)

// Game is the canonical record every feed adapter normalizes into.
// It is immutable once constructed.
type Game struct {
	HomeTeam  string    `json:"homeTeam"`
	AwayTeam  string    `json:"awayTeam"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`
	League    string    `json:"league,omitempty"`
	Venue     string    `json:"venue,omitempty"`
	Sport     string    `json:"sport"`
	Source    string    `json:"source"`
	HomeScore *int      `json:"homeScore,omitempty"`
	AwayScore *int      `json:"awayScore,omitempty"`
}

// Result is the outcome of one aggregation run: the unified game list sorted
// by date ascending and the per-source health derived from it.
type Result struct {
	Games  []Game                `json:"games"`
	Health map[string]FeedHealth `json:"feedHealth"`
	RanAt  time.Time             `json:"ranAt"`
}

// Section is one rendered category bucket: up to the display limit of games
// plus how many were held back.
type Section struct {
	Category  Category `json:"category"`
	Games     []Game   `json:"games"`
	Remaining int      `json:"remaining"`
	Limit     int      `json:"limit"`
}

// View is the paginated, categorized scoreboard handed to the presentation
// layer.
type View struct {
	Sections []Section             `json:"sections"`
	Health   map[string]FeedHealth `json:"feedHealth"`
	RanAt    time.Time             `json:"ranAt"`
}
