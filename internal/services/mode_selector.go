package services

import (
	"fmt"
	"sync"
	"time"

	"finance-tracker/internal/cache"
)

// Mode selects the data source of a session.
type Mode string

const (
	ModePersisted     Mode = "persisted"
	ModeDemonstration Mode = "demonstration"
)

// ParseMode accepts the two mode names.
func ParseMode(raw string) (Mode, error) {
	switch Mode(raw) {
	case ModePersisted, ModeDemonstration:
		return Mode(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, raw)
	}
}

// ModeSelector is the per-session two-state machine deciding whether reads
// come from the demonstration dataset or the persisted store. It also owns the
// session's cache of demonstration aggregates, emptied on every transition.
type ModeSelector struct {
	mu         sync.RWMutex
	mode       Mode
	generation uint64
	aggregates *cache.LRUCache[any]
}

// NewModeSelector starts in demonstration mode when demoFlag is set.
func NewModeSelector(demoFlag bool, cacheSize int, cacheTTL time.Duration) *ModeSelector {
	mode := ModePersisted
	if demoFlag {
		mode = ModeDemonstration
	}
	return &ModeSelector{
		mode:       mode,
		aggregates: cache.NewLRUCache[any](cacheSize, cacheTTL),
	}
}

func (s *ModeSelector) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// Transition moves to the given mode. It reports false, and changes nothing,
// when the selector is already there.
func (s *ModeSelector) Transition(to Mode) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode == to {
		return false
	}
	s.mode = to
	s.generation++
	s.aggregates.Purge()
	return true
}

// snapshot returns the mode and cache generation a call works against.
func (s *ModeSelector) snapshot() (Mode, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode, s.generation
}

func (s *ModeSelector) cached(key string) (any, bool) {
	return s.aggregates.Get(key)
}

// store caches value unless the selector moved on since generation.
func (s *ModeSelector) store(generation uint64, key string, value any) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.generation != generation {
		return
	}
	s.aggregates.Set(key, value)
}

func (s *ModeSelector) cachedCount() int {
	return s.aggregates.Size()
}
