// Package scoreboard exposes the operations the presentation layer consumes:
// refresh, show-more, and the paginated categorized view.
package scoreboard

import (
	"context"
	"errors"
	"sync"

	"scoreboard-service/internal/classify"
	"scoreboard-service/internal/config"
	domaingames "scoreboard-service/internal/domain/games"
)

// ErrUnknownCategory is returned for a show-more request naming a category
// that does not exist.
var ErrUnknownCategory = errors.New("unknown category")

// Runner executes one aggregation over the configured horizon.
type Runner interface {
	Run(ctx context.Context, horizonDays int) (domaingames.Result, error)
}

// Store persists the latest aggregation result between renders.
type Store interface {
	Result() (domaingames.Result, bool)
	SetResult(result domaingames.Result)
}

// Service coordinates scoreboard state: the latest aggregation snapshot and
// the per-category display limits.
type Service struct {
	runner      Runner
	store       Store
	sources     []string
	horizonDays int

	mu     sync.Mutex
	limits map[domaingames.Category]int
}

// NewService constructs a Service. sources names every wired feed so health
// can read "pending" before the first refresh completes.
func NewService(runner Runner, store Store, sources []string, horizonDays int) *Service {
	return &Service{
		runner:      runner,
		store:       store,
		sources:     sources,
		horizonDays: horizonDays,
		limits:      baselineLimits(),
	}
}

// Refresh executes a full aggregation run, replaces the stored snapshot, and
// resets every display limit to the baseline. An in-flight run surfaces as
// the runner's ErrRunInFlight; the caller keeps the previous view.
func (s *Service) Refresh(ctx context.Context) (domaingames.View, error) {
	result, err := s.runner.Run(ctx, s.horizonDays)
	if err != nil {
		return domaingames.View{}, err
	}

	s.store.SetResult(result)

	s.mu.Lock()
	s.limits = baselineLimits()
	s.mu.Unlock()

	return s.View(), nil
}

// ShowMore raises one category's display limit by the configured step and
// re-renders. No network traffic is involved.
func (s *Service) ShowMore(category domaingames.Category) (domaingames.View, error) {
	if !category.Valid() {
		return domaingames.View{}, ErrUnknownCategory
	}

	s.mu.Lock()
	s.limits[category] += config.DisplayLimitStep
	s.mu.Unlock()

	return s.View(), nil
}

// Limits returns a copy of the current per-category display limits.
func (s *Service) Limits() map[domaingames.Category]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[domaingames.Category]int, len(s.limits))
	for cat, limit := range s.limits {
		out[cat] = limit
	}
	return out
}

// View renders the latest snapshot: games partitioned by classifier into
// category sections, each truncated to its display limit. Before the first
// refresh the view is empty and every source reads pending.
func (s *Service) View() domaingames.View {
	result, ok := s.store.Result()
	if !ok {
		return s.pendingView()
	}

	limits := s.Limits()
	buckets := classify.Partition(result.Games)

	sections := make([]domaingames.Section, 0, len(domaingames.Categories()))
	for _, cat := range domaingames.Categories() {
		bucket := buckets[cat]
		limit := limits[cat]
		shown := bucket
		if len(bucket) > limit {
			shown = bucket[:limit]
		}
		sections = append(sections, domaingames.Section{
			Category:  cat,
			Games:     append([]domaingames.Game(nil), shown...),
			Remaining: len(bucket) - len(shown),
			Limit:     limit,
		})
	}

	return domaingames.View{Sections: sections, Health: result.Health, RanAt: result.RanAt}
}

func (s *Service) pendingView() domaingames.View {
	limits := s.Limits()
	sections := make([]domaingames.Section, 0, len(domaingames.Categories()))
	for _, cat := range domaingames.Categories() {
		sections = append(sections, domaingames.Section{
			Category: cat,
			Games:    []domaingames.Game{},
			Limit:    limits[cat],
		})
	}
	health := make(map[string]domaingames.FeedHealth, len(s.sources))
	for _, source := range s.sources {
		health[source] = domaingames.HealthPending
	}
	return domaingames.View{Sections: sections, Health: health}
}

func baselineLimits() map[domaingames.Category]int {
	limits := make(map[domaingames.Category]int, len(domaingames.Categories()))
	for _, cat := range domaingames.Categories() {
		limits[cat] = config.DefaultDisplayLimit
	}
	return limits
}
