package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	mode, err := ParseMode("demonstration")
	require.NoError(t, err)
	assert.Equal(t, ModeDemonstration, mode)

	mode, err = ParseMode("persisted")
	require.NoError(t, err)
	assert.Equal(t, ModePersisted, mode)

	_, err = ParseMode("sandbox")
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestModeSelector_InitialMode(t *testing.T) {
	assert.Equal(t, ModePersisted, NewModeSelector(false, 8, time.Minute).Mode())
	assert.Equal(t, ModeDemonstration, NewModeSelector(true, 8, time.Minute).Mode())
}

func TestModeSelector_TransitionPurgesCache(t *testing.T) {
	selector := NewModeSelector(false, 8, time.Minute)

	_, generation := selector.snapshot()
	selector.store(generation, "persisted/u/dashboard", "cached")
	require.Equal(t, 1, selector.cachedCount())

	assert.False(t, selector.Transition(ModePersisted), "no-op transition")
	assert.Equal(t, 1, selector.cachedCount())

	assert.True(t, selector.Transition(ModeDemonstration))
	assert.Equal(t, ModeDemonstration, selector.Mode())
	assert.Zero(t, selector.cachedCount())

	assert.True(t, selector.Transition(ModePersisted))
	assert.Equal(t, ModePersisted, selector.Mode())
}

func TestModeSelector_StaleResultsAreNotCached(t *testing.T) {
	selector := NewModeSelector(false, 8, time.Minute)

	_, before := selector.snapshot()
	selector.Transition(ModeDemonstration)
	selector.store(before, "persisted/u/dashboard", "computed before the transition")
	assert.Zero(t, selector.cachedCount())

	_, current := selector.snapshot()
	selector.store(current, "demonstration/u/dashboard", "fresh")
	value, ok := selector.cached("demonstration/u/dashboard")
	require.True(t, ok)
	assert.Equal(t, "fresh", value)
}

func TestAccountLocks_ReleaseEntries(t *testing.T) {
	locks := newAccountLocks()
	id := uuid.New()

	unlock := locks.lock(id)
	assert.Equal(t, 1, locks.size())

	done := make(chan struct{})
	go func() {
		release := locks.lock(id)
		release()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("second holder acquired the lock while it was held")
	case <-time.After(20 * time.Millisecond):
	}

	unlock()
	<-done
	assert.Zero(t, locks.size())
}
