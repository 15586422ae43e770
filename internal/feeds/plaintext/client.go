// Package plaintext scrapes a text-formatted scoreboard page. The page only
// shows the current day, so the adapter answers any other date with an empty
// result. Games are recovered from the raw text by pattern matching and
// assigned to leagues by section-header offsets rather than any structured
// markup.
package plaintext

import (
	"context"
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

// Config controls how the client reaches the upstream page.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client is the text-scrape feed adapter.
type Client struct {
	baseURL    string
	httpClient httpDoer
	logger     *slog.Logger
	now        func() time.Time
}

// NewClient constructs the adapter with the provided configuration.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	var doer httpDoer
	if cfg.HTTPClient != nil {
		doer = cfg.HTTPClient
	} else {
		doer = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(base, "/"),
		httpClient: doer,
		logger:     logger,
		now:        time.Now,
	}
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Name identifies the feed for health tracking and display.
func (c *Client) Name() string { return SourceName }

// FetchGames scrapes the page for today's games. Any other date returns an
// empty slice immediately since the source has no historical or future view.
func (c *Client) FetchGames(ctx context.Context, date time.Time, reg *dedupe.Registry) ([]domaingames.Game, error) {
	if !timeutil.SameDate(date, c.now()) {
		return []domaingames.Game{}, nil
	}

	doc, err := c.fetchPage(ctx)
	if err != nil {
		logger := logging.FromContext(ctx, c.logger)
		logging.Warn(logger, "scoreboard page fetch skipped",
			slog.String(logging.FieldSource, SourceName),
			slog.String(logging.FieldDate, timeutil.FormatDate(date)),
			"error", err,
		)
		return []domaingames.Game{}, nil
	}

	bounds := locateSections(doc)
	rows := extractRows(doc)

	games := make([]domaingames.Game, 0, len(rows))
	for _, row := range rows {
		sec, ok := sectionFor(bounds, row.Offset)
		if !ok {
			continue
		}

		home := expandTeamCode(sec.League, row.HomeCode)
		away := expandTeamCode(sec.League, row.AwayCode)
		start := eventTime(date, row.Status)

		key := dedupe.Key(home, away, timeutil.FormatDate(start), start.Format("15:04"))
		if !reg.Insert(key) {
			continue
		}

		games = append(games, domaingames.Game{
			HomeTeam:  home,
			AwayTeam:  away,
			Date:      start,
			Status:    row.Status,
			League:    sec.League,
			Sport:     sec.Sport,
			Source:    SourceName,
			HomeScore: row.HomeScore,
			AwayScore: row.AwayScore,
		})
	}

	return games, nil
}

func (c *Client) fetchPage(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", feeds.DefaultUserAgent)
	req.Header.Set("Accept", "text/html, text/plain, */*")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &feeds.StatusError{Source: SourceName, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
