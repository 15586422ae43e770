package games

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestCategoryValid(t *testing.T) {
	for _, cat := range Categories() {
		if !cat.Valid() {
			t.Fatalf("%s should be valid", cat)
		}
	}
	if Category("halftime").Valid() {
		t.Fatalf("unknown category accepted")
	}
	if Category("").Valid() {
		t.Fatalf("empty category accepted")
	}
}

func TestCategoriesDisplayOrder(t *testing.T) {
	cats := Categories()
	if len(cats) != 3 {
		t.Fatalf("got %d categories", len(cats))
	}
	if cats[0] != CategoryLive || cats[1] != CategoryFinal || cats[2] != CategoryUpcoming {
		t.Fatalf("unexpected order: %v", cats)
	}
}

func TestGameJSONOmitsAbsentScores(t *testing.T) {
	game := Game{
		HomeTeam: "Boston Celtics",
		AwayTeam: "New York Knicks",
		Date:     time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC),
		Status:   "7:05 PM",
		Sport:    "basketball",
		Source:   "espn",
	}

	raw, err := json.Marshal(game)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "homeScore") {
		t.Fatalf("nil score serialized: %s", raw)
	}

	score := 101
	game.HomeScore = &score
	raw, err = json.Marshal(game)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"homeScore":101`) {
		t.Fatalf("present score missing: %s", raw)
	}
}
