// Package aggregate fans fetches out across every (date, adapter) pair,
// tolerates per-unit failures, and produces the unified time-sorted game
// list together with per-source health.
package aggregate

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"scoreboard-service/internal/dedupe"
	domaingames "scoreboard-service/internal/domain/games"
	"scoreboard-service/internal/feeds"
	"scoreboard-service/internal/logging"
	"scoreboard-service/internal/metrics"
	"scoreboard-service/internal/timeutil"
)

var (
	// ErrRunInFlight is returned when a run is requested while another is
	// still settling. Runs never overlap.
	ErrRunInFlight = errors.New("aggregation run already in flight")
	// ErrNoAdapters is returned when the aggregator was wired without feeds.
	ErrNoAdapters = errors.New("no feed adapters configured")
	// ErrInvalidHorizon is returned for a non-positive horizon.
	ErrInvalidHorizon = errors.New("horizon must be at least one day")
)

// Aggregator orchestrates concurrent fetches across all adapters and dates.
type Aggregator struct {
	adapters []feeds.Adapter
	logger   *slog.Logger
	recorder *metrics.Recorder
	now      func() time.Time

	mu       sync.Mutex
	inFlight bool
}

// New constructs an Aggregator over the given adapters.
func New(adapters []feeds.Adapter, logger *slog.Logger, recorder *metrics.Recorder) *Aggregator {
	return &Aggregator{
		adapters: adapters,
		logger:   logger,
		recorder: recorder,
		now:      time.Now,
	}
}

// Run executes one aggregation over today through horizonDays-1 days ahead.
// Every (date, adapter) pair fetches concurrently sharing one dedup registry;
// a unit's failure never cancels or delays its siblings. The returned games
// are sorted by date ascending with a stable sort, so same-date games keep
// their enumeration order. Errors are returned only for misuse or an
// overlapping run; partial feed failure is reported via the health map.
func (a *Aggregator) Run(ctx context.Context, horizonDays int) (domaingames.Result, error) {
	if err := a.begin(); err != nil {
		return domaingames.Result{}, err
	}
	defer a.end()

	start := time.Now()
	result, err := a.run(ctx, horizonDays)
	if a.recorder != nil {
		a.recorder.RecordAggregationRun(len(result.Games), time.Since(start), err)
	}
	return result, err
}

func (a *Aggregator) run(ctx context.Context, horizonDays int) (domaingames.Result, error) {
	if horizonDays <= 0 {
		return domaingames.Result{}, ErrInvalidHorizon
	}
	if len(a.adapters) == 0 {
		return domaingames.Result{}, ErrNoAdapters
	}

	ranAt := a.now()
	dates := timeutil.DateRange(ranAt, horizonDays)
	reg := dedupe.NewRegistry()

	type unit struct {
		source string
		games  []domaingames.Game
		err    error
	}

	// Results are collected by enumeration index so concatenation order is
	// deterministic regardless of completion order.
	units := make([]unit, len(dates)*len(a.adapters))

	var wg sync.WaitGroup
	idx := 0
	for _, date := range dates {
		for _, adapter := range a.adapters {
			wg.Add(1)
			go func(slot int, adapter feeds.Adapter, date time.Time) {
				defer wg.Done()
				games, err := adapter.FetchGames(ctx, date, reg)
				units[slot] = unit{source: adapter.Name(), games: games, err: err}
			}(idx, adapter, date)
			idx++
		}
	}
	wg.Wait()

	health := make(map[string]domaingames.FeedHealth, len(a.adapters))
	for _, adapter := range a.adapters {
		health[adapter.Name()] = domaingames.HealthFailed
	}

	unified := make([]domaingames.Game, 0)
	for _, u := range units {
		if u.err != nil {
			continue
		}
		if len(u.games) > 0 {
			health[u.source] = domaingames.HealthHealthy
		}
		unified = append(unified, u.games...)
	}

	sort.SliceStable(unified, func(i, j int) bool {
		return unified[i].Date.Before(unified[j].Date)
	})

	logging.Info(a.logger, "aggregation run complete",
		slog.Int(logging.FieldCount, len(unified)),
		slog.Int("dates", len(dates)),
		slog.Int("sources", len(a.adapters)),
		slog.Int("deduped_keys", reg.Len()),
	)

	return domaingames.Result{Games: unified, Health: health, RanAt: ranAt}, nil
}

func (a *Aggregator) begin() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.inFlight {
		return ErrRunInFlight
	}
	a.inFlight = true
	return nil
}

func (a *Aggregator) end() {
	a.mu.Lock()
	a.inFlight = false
	a.mu.Unlock()
}
