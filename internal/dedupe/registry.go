// Package dedupe provides the shared identity registry used to suppress
// duplicate games across feeds within a single aggregation run.
package dedupe

import (
	"strings"
	"sync"
)

// Registry records synthesized game identity keys. One Registry is shared by
// every fetch in a run, so the check-and-insert is guarded by a mutex.
type Registry struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{seen: make(map[string]struct{})}
}

// Insert records the key and reports whether it was newly added. A false
// return means an equivalent game was already ingested and the caller should
// discard its event.
func (r *Registry) Insert(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.seen[key]; dup {
		return false
	}
	r.seen[key] = struct{}{}
	return true
}

// Len returns the number of distinct keys recorded.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.seen)
}

// Key joins identity parts into a normalized lowercase key. Each adapter
// picks its own discriminator parts (time-of-day for some, league for
// others), matching how its raw payload identifies events; cross-source
// suppression is therefore best-effort rather than exact.
func Key(parts ...string) string {
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return strings.Join(parts, "|")
}
