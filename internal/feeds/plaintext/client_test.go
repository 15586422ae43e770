package plaintext

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"scoreboard-service/internal/dedupe"
	"scoreboard-service/internal/testutil"
)

func newTestClient(t *testing.T, rt testutil.RoundTripperFunc, now time.Time) *Client {
	t.Helper()
	logger, _ := testutil.NewBufferLogger()
	client := NewClient(Config{
		BaseURL:    "https://scores.test",
		HTTPClient: &http.Client{Transport: rt},
	}, logger)
	client.now = testutil.NowAt(now)
	return client
}

func TestFetchGamesParsesTodaysPage(t *testing.T) {
	today := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	rt := testutil.RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return testutil.TextResponse(http.StatusOK, samplePage), nil
	})

	client := newTestClient(t, rt, today)

	games, err := client.FetchGames(context.Background(), today, dedupe.NewRegistry())
	if err != nil {
		t.Fatalf("FetchGames: %v", err)
	}

	// Four sectioned boxes; the pre-header box is dropped.
	if len(games) != 4 {
		t.Fatalf("got %d games, want 4", len(games))
	}

	nba := games[0]
	if nba.HomeTeam != "Boston Celtics" || nba.AwayTeam != "New York Knicks" {
		t.Fatalf("nba teams = %s vs %s", nba.HomeTeam, nba.AwayTeam)
	}
	if nba.Status != "3rd Quarter" || nba.League != "NBA" || nba.Sport != "basketball" {
		t.Fatalf("nba row = %+v", nba)
	}
	if nba.HomeScore == nil || *nba.HomeScore != 54 {
		t.Fatalf("nba home score = %v", nba.HomeScore)
	}
	if !nba.Date.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("clockless live game should anchor at midnight, got %v", nba.Date)
	}

	upcoming := games[1]
	if upcoming.HomeTeam != "Miami Heat" || upcoming.AwayTeam != "Philadelphia 76ers" {
		t.Fatalf("upcoming teams = %s vs %s", upcoming.HomeTeam, upcoming.AwayTeam)
	}
	if !upcoming.Date.Equal(time.Date(2026, 3, 1, 19, 5, 0, 0, time.UTC)) {
		t.Fatalf("upcoming start = %v", upcoming.Date)
	}

	nhl := games[2]
	if nhl.HomeTeam != "BOS" || nhl.AwayTeam != "TOR" {
		t.Fatalf("nhl codes should pass through, got %s vs %s", nhl.HomeTeam, nhl.AwayTeam)
	}
	if nhl.League != "NHL" || nhl.Sport != "ice-hockey" {
		t.Fatalf("nhl row = %+v", nhl)
	}

	mlb := games[3]
	if mlb.HomeTeam != "New York Mets" || mlb.AwayTeam != "Philadelphia Phillies" {
		t.Fatalf("mlb teams = %s vs %s", mlb.HomeTeam, mlb.AwayTeam)
	}
	if mlb.Source != SourceName {
		t.Fatalf("source = %q", mlb.Source)
	}
}

func TestFetchGamesOnlyCoversToday(t *testing.T) {
	today := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	requested := false
	rt := testutil.RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		requested = true
		return testutil.TextResponse(http.StatusOK, samplePage), nil
	})

	client := newTestClient(t, rt, today)

	games, err := client.FetchGames(context.Background(), today.AddDate(0, 0, 1), dedupe.NewRegistry())
	if err != nil {
		t.Fatalf("FetchGames: %v", err)
	}
	if len(games) != 0 {
		t.Fatalf("tomorrow should yield nothing, got %d games", len(games))
	}
	if requested {
		t.Fatalf("no request should be made for a non-today date")
	}
}

func TestFetchGamesSwallowsFetchFailure(t *testing.T) {
	today := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	rt := testutil.RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})

	client := newTestClient(t, rt, today)

	games, err := client.FetchGames(context.Background(), today, dedupe.NewRegistry())
	if err != nil {
		t.Fatalf("scrape failure should not error the fetch: %v", err)
	}
	if len(games) != 0 {
		t.Fatalf("got %d games from a failed scrape", len(games))
	}
}

func TestFetchGamesRespectsRegistry(t *testing.T) {
	today := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	rt := testutil.RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return testutil.TextResponse(http.StatusOK, samplePage), nil
	})

	client := newTestClient(t, rt, today)
	reg := dedupe.NewRegistry()

	// Pre-register the NBA matchup under the identity another source would
	// synthesize for the same game.
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	reg.Insert(dedupe.Key("Boston Celtics", "New York Knicks", "2026-03-01", start.Format("15:04")))

	games, err := client.FetchGames(context.Background(), today, reg)
	if err != nil {
		t.Fatalf("FetchGames: %v", err)
	}
	for _, g := range games {
		if g.HomeTeam == "Boston Celtics" && g.AwayTeam == "New York Knicks" {
			t.Fatalf("pre-registered game should have been skipped")
		}
	}
	if len(games) != 3 {
		t.Fatalf("got %d games, want 3", len(games))
	}
}
