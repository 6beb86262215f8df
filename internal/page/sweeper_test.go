package page

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewSweeper_SchedulesOneEntry(t *testing.T) {
	cfg := testConfig()
	s, err := NewSweeper(NewStore(cfg, discardLogger()), cfg, discardLogger())
	require.NoError(t, err)

	entries := s.cron.Entries()
	require.Len(t, entries, 1)
	assert.False(t, s.IsRunning())
}

func TestNewSweeper_RejectsBadInterval(t *testing.T) {
	cfg := testConfig()
	cfg.Session.SweepInterval = -time.Minute

	_, err := NewSweeper(NewStore(cfg, discardLogger()), cfg, discardLogger())
	assert.Error(t, err)
}

func TestSweeper_RunRemovesIdleSessions(t *testing.T) {
	store, clock := newClockedStore(time.Minute)
	store.Create()
	clock.Advance(2 * time.Minute)
	live := store.Create()

	s, err := NewSweeper(store, testConfig(), discardLogger())
	require.NoError(t, err)

	s.run()

	assert.Equal(t, 1, store.Len())
	_, err = store.Get(live.ID)
	assert.NoError(t, err)
}

func TestRunSweeper_SweepsOnSchedule(t *testing.T) {
	cfg := testConfig()
	cfg.Session.TTL = time.Millisecond
	cfg.Session.SweepInterval = time.Second
	store := NewStore(cfg, discardLogger())
	store.Create()

	s, err := NewSweeper(store, cfg, discardLogger())
	require.NoError(t, err)

	lc := fxtest.NewLifecycle(t)
	RunSweeper(lc, s)

	require.NoError(t, lc.Start(context.Background()))
	assert.True(t, s.IsRunning())

	assert.Eventually(t, func() bool { return store.Len() == 0 }, 3*time.Second, 20*time.Millisecond)

	require.NoError(t, lc.Stop(context.Background()))
	assert.False(t, s.IsRunning())
}
