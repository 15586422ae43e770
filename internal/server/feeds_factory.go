package server

import (
	"log/slog"

	"scoreboard-service/internal/config"
	"scoreboard-service/internal/feeds"
	"scoreboard-service/internal/feeds/espn"
	"scoreboard-service/internal/feeds/plaintext"
	"scoreboard-service/internal/feeds/sportsdb"
	"scoreboard-service/internal/metrics"
)

// feedsFactory assembles the feed adapters with shared wrappers
// (retry + instrumentation).
type feedsFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newFeedsFactory(logger *slog.Logger, metrics *metrics.Recorder) feedsFactory {
	return feedsFactory{logger: logger, metrics: metrics}
}

func (f feedsFactory) build(cfg config.Config) []feeds.Adapter {
	bare := []feeds.Adapter{
		espn.NewClient(espn.Config{BaseURL: cfg.Feeds.ESPNBaseURL}, f.logger),
		sportsdb.NewClient(sportsdb.Config{
			BaseURL: cfg.Feeds.SportsDBBaseURL,
			APIKey:  cfg.Feeds.SportsDBAPIKey,
		}, f.logger),
		plaintext.NewClient(plaintext.Config{BaseURL: cfg.Feeds.TextBaseURL}, f.logger),
	}

	wrapped := make([]feeds.Adapter, 0, len(bare))
	for _, adapter := range bare {
		retrying := feeds.NewRetryingAdapter(adapter, f.logger, 0, 0)
		wrapped = append(wrapped, feeds.NewInstrumentedAdapter(retrying, f.logger, f.metrics))
	}
	return wrapped
}

func adapterNames(adapters []feeds.Adapter) []string {
	names := make([]string, 0, len(adapters))
	for _, adapter := range adapters {
		names = append(names, adapter.Name())
	}
	return names
}
