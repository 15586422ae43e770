package store

import (
	"sync"

	domaingames "scoreboard-service/internal/domain/games"
)

// MemoryStore keeps a thread-safe snapshot of the latest aggregation result.
// Each refresh replaces the snapshot wholesale; nothing is persisted across
// process restarts.
type MemoryStore struct {
	mu     sync.RWMutex
	result domaingames.Result
	loaded bool
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Result returns a copy of the latest snapshot and whether one exists.
func (s *MemoryStore) Result() (domaingames.Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return domaingames.Result{}, false
	}

	out := domaingames.Result{
		Games:  append([]domaingames.Game(nil), s.result.Games...),
		Health: make(map[string]domaingames.FeedHealth, len(s.result.Health)),
		RanAt:  s.result.RanAt,
	}
	for source, health := range s.result.Health {
		out.Health[source] = health
	}
	return out, true
}

// SetResult replaces the snapshot with a new aggregation result.
func (s *MemoryStore) SetResult(result domaingames.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.result = result
	s.loaded = true
}
