// Package refresher drives the boot-time scoreboard refresh and, when an
// interval is configured, keeps refreshing in the background. With a zero
// interval the scoreboard only refreshes on demand after boot.
package refresher

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"scoreboard-service/internal/aggregate"
	domaingames "scoreboard-service/internal/domain/games"
	"scoreboard-service/internal/logging"
)

// Refreshing is the slice of the scoreboard service this package needs.
type Refreshing interface {
	Refresh(ctx context.Context) (domaingames.View, error)
}

// Refresher runs the initial refresh and optional periodic refreshes.
type Refresher struct {
	svc      Refreshing
	logger   *slog.Logger
	interval time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the refresh loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether at least one refresh has succeeded and the loop is
// not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Refresher. interval <= 0 disables periodic refreshes.
func New(svc Refreshing, logger *slog.Logger, interval time.Duration) *Refresher {
	return &Refresher{
		svc:      svc,
		logger:   logger,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start performs the boot refresh and, if an interval is set, keeps
// refreshing until the context is cancelled or Stop is called.
func (r *Refresher) Start(ctx context.Context) {
	r.startMu.Lock()
	if r.started {
		r.startMu.Unlock()
		return
	}
	r.started = true
	// The ticker is created before the goroutine spawns so Stop never races
	// the loop's startup.
	if r.interval > 0 {
		r.ticker = time.NewTicker(r.interval)
	}
	r.startMu.Unlock()

	go func() {
		// Initial refresh so the first render has data.
		r.refreshOnce(ctx)

		if r.interval <= 0 {
			logging.Info(r.logger, "refresher idle, on-demand only")
			return
		}

		logging.Info(r.logger, "refresher started",
			slog.Int64(logging.FieldDurationMS, r.interval.Milliseconds()))

		for {
			select {
			case <-ctx.Done():
				r.stopTicker()
				logging.Info(r.logger, "refresher stopped")
				return
			case <-r.done:
				r.stopTicker()
				logging.Info(r.logger, "refresher stopped")
				return
			case <-r.ticker.C:
				r.refreshOnce(ctx)
			}
		}
	}()
}

// Stop halts the refresh loop.
func (r *Refresher) Stop(ctx context.Context) error {
	_ = ctx
	r.stopOnce.Do(func() {
		close(r.done)
		r.stopTicker()
	})
	return nil
}

func (r *Refresher) refreshOnce(ctx context.Context) {
	start := time.Now()
	r.recordAttempt(start)

	view, err := r.svc.Refresh(ctx)
	if err != nil {
		// An overlapping manual refresh counts as a skip, not a failure.
		if errors.Is(err, aggregate.ErrRunInFlight) {
			logging.Info(r.logger, "refresh already in flight, skipped")
			return
		}
		logging.Error(r.logger, "refresh failed", err,
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		r.recordFailure(err, start)
		return
	}

	r.recordSuccess(start)
	total := 0
	for _, section := range view.Sections {
		total += len(section.Games) + section.Remaining
	}
	logging.Info(r.logger, "scoreboard refreshed",
		slog.Int(logging.FieldCount, total),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
}

func (r *Refresher) stopTicker() {
	r.startMu.Lock()
	defer r.startMu.Unlock()
	if r.ticker != nil {
		r.ticker.Stop()
	}
}

func (r *Refresher) recordAttempt(at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.LastAttempt = at
}

func (r *Refresher) recordSuccess(at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures = 0
	r.status.LastError = ""
	r.status.LastSuccess = at
}

func (r *Refresher) recordFailure(err error, at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures++
	if err != nil {
		r.status.LastError = err.Error()
	}
	r.status.LastAttempt = at
}

// Status returns a snapshot of the refresher's recent health.
func (r *Refresher) Status() Status {
	r.statusMu.RLock()
	defer r.statusMu.RUnlock()
	return r.status
}
