package services

import (
	"sync"
	"time"

	"finance-tracker/internal/cache"
)

// SessionRegistry holds one ledger service, and so one mode selector, per
// browser session. Idle sessions expire after the session TTL and the least
// recently used session is evicted beyond maxSessions.
type SessionRegistry struct {
	mu        sync.Mutex
	deps      *LedgerDependencies
	sessions  *cache.LRUCache[LedgerServiceInterface]
	cacheSize int
	cacheTTL  time.Duration
}

func NewSessionRegistry(deps *LedgerDependencies, maxSessions int, sessionTTL time.Duration, cacheSize int, cacheTTL time.Duration) *SessionRegistry {
	return &SessionRegistry{
		deps:      deps,
		sessions:  cache.NewLRUCache[LedgerServiceInterface](maxSessions, sessionTTL),
		cacheSize: cacheSize,
		cacheTTL:  cacheTTL,
	}
}

// Resolve returns the session's ledger service. demoFlag only matters the
// first time a session is seen: it picks the initial mode.
func (r *SessionRegistry) Resolve(sessionID string, demoFlag bool) LedgerServiceInterface {
	r.mu.Lock()
	defer r.mu.Unlock()

	service, ok := r.sessions.Get(sessionID)
	if !ok {
		service = NewLedgerService(r.deps, NewModeSelector(demoFlag, r.cacheSize, r.cacheTTL))
	}
	// Set again to slide the idle timeout.
	r.sessions.Set(sessionID, service)

	r.deps.Metrics.RecordGauge("active_sessions", float64(r.sessions.Size()), nil)
	return service
}

// Sweep drops expired sessions and returns how many were removed.
func (r *SessionRegistry) Sweep() int {
	removed := r.sessions.CleanExpired()
	if removed > 0 {
		r.deps.Metrics.RecordGauge("active_sessions", float64(r.sessions.Size()), nil)
	}
	return removed
}
