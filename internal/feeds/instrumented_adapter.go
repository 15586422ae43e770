package feeds

import (
	"context"
	"log/slog"
	"time"

	"scoreboard-service/internal/dedupe"
	domaingames "scoreboard-service/internal/domain/games"
	"scoreboard-service/internal/logging"
	"scoreboard-service/internal/metrics"
	"scoreboard-service/internal/timeutil"
)

// instrumentedAdapter wraps an Adapter with per-fetch logging and metrics.
type instrumentedAdapter struct {
	inner    Adapter
	logger   *slog.Logger
	recorder *metrics.Recorder
}

// NewInstrumentedAdapter decorates the adapter with observability. It is the
// outermost wrapper so retries count as one observed fetch.
func NewInstrumentedAdapter(inner Adapter, logger *slog.Logger, recorder *metrics.Recorder) Adapter {
	return &instrumentedAdapter{inner: inner, logger: logger, recorder: recorder}
}

func (a *instrumentedAdapter) Name() string {
	if a.inner == nil {
		return "instrumented"
	}
	return a.inner.Name()
}

func (a *instrumentedAdapter) FetchGames(ctx context.Context, date time.Time, reg *dedupe.Registry) ([]domaingames.Game, error) {
	if a.inner == nil {
		return nil, ErrAdapterUnavailable
	}

	start := time.Now()
	games, err := a.inner.FetchGames(ctx, date, reg)
	duration := time.Since(start)

	if a.recorder != nil {
		a.recorder.RecordFeedFetch(a.Name(), len(games), duration, err)
	}

	logger := logging.FromContext(ctx, a.logger)
	if err != nil {
		logging.Error(logger, "feed fetch failed", err,
			slog.String(logging.FieldSource, a.Name()),
			slog.String(logging.FieldDate, timeutil.FormatDate(date)),
			slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
		)
		return nil, err
	}

	logging.Info(logger, "feed fetch complete",
		slog.String(logging.FieldSource, a.Name()),
		slog.String(logging.FieldDate, timeutil.FormatDate(date)),
		slog.Int(logging.FieldCount, len(games)),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
	)
	return games, nil
}
