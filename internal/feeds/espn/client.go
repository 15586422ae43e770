// Package espn fetches games from the ESPN public scoreboard API and maps
// them to the canonical Game record, one request per (sport, league)
// configuration per date.
package espn

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
	HTTPClient *http.Client
	UserAgent  string
}

// Client is the ESPN feed adapter.
type Client struct {
	baseURL    string
	httpClient httpDoer
	userAgent  string
	logger     *slog.Logger
	configs    []scoreboardConfig
}

// NewClient constructs the adapter with the provided configuration.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	ua := cfg.UserAgent
	if ua == "" {
		ua = feeds.DefaultUserAgent
	}
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		userAgent:  ua,
		logger:     logger,
		configs:    scoreboardConfigs,
	}
}

// Name identifies the feed for health tracking and display.
func (c *Client) Name() string { return SourceName }

// FetchGames retrieves every configured scoreboard for the given date.
// A failing configuration is logged and skipped; the error return is unused
// in normal operation so the aggregation run never loses sibling configs.
func (c *Client) FetchGames(ctx context.Context, date time.Time, reg *dedupe.Registry) ([]domaingames.Game, error) {
	games := make([]domaingames.Game, 0)

	for _, sc := range c.configs {
		fetched, err := c.fetchScoreboard(ctx, sc, date, reg)
		if err != nil {
			logger := logging.FromContext(ctx, c.logger)
			logging.Warn(logger, "scoreboard fetch skipped",
				slog.String(logging.FieldSource, SourceName),
				slog.String(logging.FieldLeague, sc.League),
				slog.String(logging.FieldDate, timeutil.FormatDate(date)),
				"error", err,
			)
			continue
		}
		games = append(games, fetched...)
	}

	return games, nil
}

func (c *Client) fetchScoreboard(ctx context.Context, sc scoreboardConfig, date time.Time, reg *dedupe.Registry) ([]domaingames.Game, error) {
	req, err := c.buildRequest(ctx, sc, date)
	if err != nil {
		return nil, err
	}

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

	var payload scoreboardResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return nil, decodeErr
	}

	games := make([]domaingames.Game, 0, len(payload.Events))
	for _, ev := range payload.Events {
		game, ok := mapEvent(ev, sc)
		if !ok {
			continue
		}
		key := dedupe.Key(
			game.HomeTeam,
			game.AwayTeam,
			timeutil.FormatDate(game.Date),
			game.Date.Format("15:04"),
		)
		if !reg.Insert(key) {
			continue
		}
		games = append(games, game)
	}
	return games, nil
}

func (c *Client) buildRequest(ctx context.Context, sc scoreboardConfig, date time.Time) (*http.Request, error) {
	url := fmt.Sprintf("%s/%s/scoreboard", c.baseURL, sc.Path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("dates", date.Format(scoreboardDateLayout))
	req.URL.RawQuery = q.Encode()
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json, text/plain, */*")

	return req, nil
}
