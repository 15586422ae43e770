// Package sportsdb fetches games from TheSportsDB events-by-day API, one
// request per configured sport per date.
package sportsdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"scoreboard-service/internal/dedupe"
	domaingames "scoreboard-service/internal/domain/games"
	"scoreboard-service/internal/feeds"
	"scoreboard-service/internal/logging"
	"scoreboard-service/internal/timeutil"
)

// Config controls how the client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// Client is the TheSportsDB feed adapter.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	logger     *slog.Logger
	sports     []string
}

// NewClient constructs the adapter with the provided configuration.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     resolveAPIKey(cfg.APIKey),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		logger:     logger,
		sports:     sportConfigs,
	}
}

// Name identifies the feed for health tracking and display.
func (c *Client) Name() string { return SourceName }

// FetchGames retrieves the event listings for every configured sport on the
// given date. A failing sport is logged and skipped.
func (c *Client) FetchGames(ctx context.Context, date time.Time, reg *dedupe.Registry) ([]domaingames.Game, error) {
	games := make([]domaingames.Game, 0)

	for _, sport := range c.sports {
		fetched, err := c.fetchSport(ctx, sport, date, reg)
		if err != nil {
			logger := logging.FromContext(ctx, c.logger)
			logging.Warn(logger, "eventsday fetch skipped",
				slog.String(logging.FieldSource, SourceName),
				slog.String(logging.FieldSport, sport),
				slog.String(logging.FieldDate, timeutil.FormatDate(date)),
				"error", err,
			)
			continue
		}
		games = append(games, fetched...)
	}

	return games, nil
}

func (c *Client) fetchSport(ctx context.Context, sport string, date time.Time, reg *dedupe.Registry) ([]domaingames.Game, error) {
	url := fmt.Sprintf("%s/%s/eventsday.php", c.baseURL, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	q.Set("d", timeutil.FormatDate(date))
	q.Set("s", sport)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("User-Agent", feeds.DefaultUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &feeds.StatusError{
			Source:     SourceName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var payload eventsResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return nil, decodeErr
	}

	games := make([]domaingames.Game, 0, len(payload.Events))
	for _, ev := range payload.Events {
		game, ok := mapEvent(ev)
		if !ok {
			continue
		}
		// League, not time-of-day, is the discriminator here: the raw
		// payload keys events by competition.
		key := dedupe.Key(ev.HomeTeam, ev.AwayTeam, ev.DateEvent, ev.League)
		if !reg.Insert(key) {
			continue
		}
		games = append(games, game)
	}
	return games, nil
}
