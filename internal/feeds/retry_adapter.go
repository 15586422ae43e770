package feeds

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"scoreboard-service/internal/dedupe"
	domaingames "scoreboard-service/internal/domain/games"
	"scoreboard-service/internal/logging"
)

const (
	defaultRetryAttempts = 3
	defaultRetryInterval = 200 * time.Millisecond
)

// retryingAdapter wraps an Adapter with retry/backoff behavior.
type retryingAdapter struct {
	inner       Adapter
	logger      *slog.Logger
	maxAttempts uint64
	interval    time.Duration
}

// NewRetryingAdapter wraps the given adapter with exponential-backoff retries.
// If maxAttempts/interval are <= 0, defaults are used.
func NewRetryingAdapter(inner Adapter, logger *slog.Logger, maxAttempts int, interval time.Duration) Adapter {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if interval <= 0 {
		interval = defaultRetryInterval
	}
	return &retryingAdapter{
		inner:       inner,
		logger:      logger,
		maxAttempts: uint64(maxAttempts),
		interval:    interval,
	}
}

func (r *retryingAdapter) Name() string {
	if r.inner == nil {
		return "retrying"
	}
	return r.inner.Name()
}

func (r *retryingAdapter) FetchGames(ctx context.Context, date time.Time, reg *dedupe.Registry) ([]domaingames.Game, error) {
	if r.inner == nil {
		return nil, ErrAdapterUnavailable
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = r.interval

	var games []domaingames.Game
	attempt := 0
	operation := func() error {
		attempt++
		fetched, err := r.inner.FetchGames(ctx, date, reg)
		if err != nil {
			r.logWarn(ctx, "feed fetch retry",
				"attempt", attempt,
				"max_attempts", r.maxAttempts,
				"err", err,
			)
			return err
		}
		games = fetched
		return nil
	}

	schedule := backoff.WithContext(backoff.WithMaxRetries(policy, r.maxAttempts-1), ctx)
	if err := backoff.Retry(operation, schedule); err != nil {
		r.logWarn(ctx, "feed fetch failed", "attempts", attempt, "err", err)
		return nil, err
	}
	return games, nil
}

func (r *retryingAdapter) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		args = append(args, slog.String(logging.FieldSource, r.Name()))
		logger.Warn(msg, args...)
	}
}
