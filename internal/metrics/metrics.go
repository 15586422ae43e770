package metrics

import (
	"sync"
	"time"
)

type feedStats struct {
	fetches          int
	errors           int
	lastGameCount    int
	lastFetchLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about feed fetches and
// aggregation runs. It is intentionally simple so it can be swapped for a
// real backend later.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*feedStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*feedStats),
		otel:  otel,
	}
}

// RecordFeedFetch increments counters for one feed configuration fetch and
// stores the last observed latency and game count.
func (r *Recorder) RecordFeedFetch(source string, count int, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(source)
	stats.fetches++
	stats.lastFetchLatency = duration
	if err != nil {
		stats.errors++
	} else {
		stats.lastGameCount = count
	}
	if r.otel != nil {
		r.otel.recordFeedFetch(source, count, duration, err)
	}
}

// RecordAggregationRun tracks one full aggregation fan-out.
func (r *Recorder) RecordAggregationRun(games int, duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordAggregationRun(games, duration, err)
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Snapshot is a copy of the current stats for one feed.
type Snapshot struct {
	Fetches          int
	Errors           int
	LastGameCount    int
	LastFetchLatency time.Duration
}

func (r *Recorder) Snapshot(source string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(source)
	return Snapshot{
		Fetches:          stats.fetches,
		Errors:           stats.errors,
		LastGameCount:    stats.lastGameCount,
		LastFetchLatency: stats.lastFetchLatency,
	}
}

// FeedFetches returns the total fetch attempts recorded for a source.
func (r *Recorder) FeedFetches(source string) int {
	return r.Snapshot(source).Fetches
}

// FeedErrors returns the total failed fetches recorded for a source.
func (r *Recorder) FeedErrors(source string) int {
	return r.Snapshot(source).Errors
}

func (r *Recorder) ensureStats(source string) *feedStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[source]
	if !ok {
		stats = &feedStats{}
		r.stats[source] = stats
	}
	return stats
}

func (r *Recorder) snapshot(source string) feedStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[source]; ok && stats != nil {
		return *stats
	}
	return feedStats{}
}
