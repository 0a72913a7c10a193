package scheduler_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexpan006/blockdash-api/internal/domain"
	"github.com/alexpan006/blockdash-api/internal/logger"
	"github.com/alexpan006/blockdash-api/internal/mocks"
	"github.com/alexpan006/blockdash-api/internal/scheduler"
	"github.com/alexpan006/blockdash-api/internal/store/schema"
	syncpkg "github.com/alexpan006/blockdash-api/internal/sync"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

type registryTestMocks struct {
	collections  *mocks.MockCollectionRegistry
	graph        *mocks.MockGraphStore
	synchronizer *mocks.MockSynchronizer
	detector     *mocks.MockCommunityWriter
	clock        *mocks.MockClock
}

func setupTestRegistry(ctrl *gomock.Controller, cfg scheduler.Config) (scheduler.Registry, *registryTestMocks) {
	m := &registryTestMocks{
		collections:  mocks.NewMockCollectionRegistry(ctrl),
		graph:        mocks.NewMockGraphStore(ctrl),
		synchronizer: mocks.NewMockSynchronizer(ctrl),
		detector:     mocks.NewMockCommunityWriter(ctrl),
		clock:        mocks.NewMockClock(ctrl),
	}
	r := scheduler.NewRegistry(cfg, m.collections, m.graph, m.synchronizer, m.detector, m.clock)
	return r, m
}

func noopTrigger(ctx context.Context) error { return nil }

func TestRegistry_AddRemoveList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, m := setupTestRegistry(ctrl, scheduler.Config{})

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m.clock.EXPECT().Now().Return(now).AnyTimes()

	spec := scheduler.TriggerSpec{
		ID:         scheduler.SyncTriggerID("degods-eth"),
		Collection: "degods-eth",
		Kind:       scheduler.TriggerKindSync,
		Interval:   time.Hour,
		Fn:         noopTrigger,
	}
	require.NoError(t, r.Add(spec))

	// Duplicate id rejected
	err := r.Add(spec)
	assert.ErrorContains(t, err, "already registered")

	infos := r.List()
	require.Len(t, infos, 1)
	assert.Equal(t, "sync:degods-eth", infos[0].ID)
	assert.Equal(t, scheduler.TriggerKindSync, infos[0].Kind)
	assert.Equal(t, time.Hour, infos[0].Interval)
	assert.True(t, infos[0].NextFire.Equal(now.Add(time.Hour)))

	require.NoError(t, r.Remove("sync:degods-eth"))
	assert.Empty(t, r.List())

	assert.ErrorIs(t, r.Remove("sync:degods-eth"), domain.ErrTriggerNotFound)
}

func TestRegistry_AddValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, _ := setupTestRegistry(ctrl, scheduler.Config{})

	assert.Error(t, r.Add(scheduler.TriggerSpec{Interval: time.Hour, Fn: noopTrigger}))
	assert.Error(t, r.Add(scheduler.TriggerSpec{ID: "x", Fn: noopTrigger}))
	assert.Error(t, r.Add(scheduler.TriggerSpec{ID: "x", Interval: time.Hour}))
}

func TestRegistry_Fire(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, m := setupTestRegistry(ctrl, scheduler.Config{})

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m.clock.EXPECT().Now().Return(now).AnyTimes()

	fired := false
	require.NoError(t, r.Add(scheduler.TriggerSpec{
		ID:       "sync:degods-eth",
		Kind:     scheduler.TriggerKindSync,
		Interval: time.Hour,
		Fn: func(ctx context.Context) error {
			fired = true
			return nil
		},
	}))

	require.NoError(t, r.Fire(context.Background(), "sync:degods-eth"))
	assert.True(t, fired)

	assert.ErrorIs(t, r.Fire(context.Background(), "unknown"), domain.ErrTriggerNotFound)
}

// A manual fire is acknowledged before the body finishes, so the HTTP request
// context that carried it is gone while the body still runs. The body must
// survive that cancellation.
func TestRegistry_FireOutlivesCallerContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, m := setupTestRegistry(ctrl, scheduler.Config{})

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m.clock.EXPECT().Now().Return(now).AnyTimes()

	var bodyErr error
	require.NoError(t, r.Add(scheduler.TriggerSpec{
		ID:       "sync:degods-eth",
		Kind:     scheduler.TriggerKindSync,
		Interval: time.Hour,
		Fn: func(ctx context.Context) error {
			bodyErr = ctx.Err()
			return nil
		},
	}))

	reqCtx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, r.Fire(reqCtx, "sync:degods-eth"))
	assert.NoError(t, bodyErr, "trigger body saw a dead context after the fire was acknowledged")
}

func TestRegistry_ArmFromConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := scheduler.Config{
		DefaultFrequency: 86000,
		TopK:             100,
		DetectionTargets: []string{"degods-eth", domain.COMPLETE_COLLECTION},
	}
	r, m := setupTestRegistry(ctrl, cfg)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m.clock.EXPECT().Now().Return(now).AnyTimes()

	ctx := context.Background()
	m.collections.EXPECT().All().Return([]domain.Collection{
		{Slug: "degods-eth"},
		{Slug: "boredapeyachtclub"},
	})

	// degods-eth carries a persisted frequency (used by both of its triggers),
	// boredapeyachtclub falls back to the default
	m.graph.EXPECT().GetUpdateFrequency(ctx, "degods-eth").Return(int64(3600), nil).Times(2)
	m.graph.EXPECT().GetUpdateFrequency(ctx, "boredapeyachtclub").Return(int64(0), domain.ErrCollectionNotFound)

	require.NoError(t, r.ArmFromConfig(ctx))

	infos := r.List()
	require.Len(t, infos, 4)

	byID := make(map[string]scheduler.TriggerInfo)
	for _, info := range infos {
		byID[info.ID] = info
	}
	assert.Equal(t, time.Hour, byID["sync:degods-eth"].Interval)
	assert.Equal(t, 86000*time.Second, byID["sync:boredapeyachtclub"].Interval)
	assert.Equal(t, time.Hour, byID["communities:degods-eth"].Interval)
	assert.Equal(t, 86000*time.Second, byID["communities:complete"].Interval)

	// The armed sync trigger runs the synchronizer with the scheduled label
	m.synchronizer.EXPECT().
		RunUpdate(gomock.Any(), "degods-eth", schema.SyncRunTriggerScheduled).
		Return(&syncpkg.UpdateSummary{Collection: "degods-eth"}, nil)
	require.NoError(t, r.Fire(ctx, "sync:degods-eth"))

	// Overlapping sync runs are a skip, not a failure
	m.synchronizer.EXPECT().
		RunUpdate(gomock.Any(), "degods-eth", schema.SyncRunTriggerScheduled).
		Return(nil, syncpkg.ErrSyncInProgress)
	require.NoError(t, r.Fire(ctx, "sync:degods-eth"))

	// The armed detection trigger runs the writer with the configured topK
	m.detector.EXPECT().RunDetection(gomock.Any(), domain.COMPLETE_COLLECTION, 100).Return(nil)
	require.NoError(t, r.Fire(ctx, "communities:complete"))
}

func TestRegistry_StartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, m := setupTestRegistry(ctrl, scheduler.Config{WorkerPoolSize: 2, WorkerQueueSize: 4})

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m.clock.EXPECT().Now().Return(now).AnyTimes()
	m.clock.EXPECT().NewTicker(gomock.Any()).DoAndReturn(func(d time.Duration) *time.Ticker {
		return time.NewTicker(d)
	}).AnyTimes()

	require.NoError(t, r.Add(scheduler.TriggerSpec{
		ID:       "sync:degods-eth",
		Kind:     scheduler.TriggerKindSync,
		Interval: time.Hour,
		Fn:       noopTrigger,
	}))

	errCh := make(chan error, 1)
	go func() {
		errCh <- r.Start(context.Background())
	}()

	// Give the loop a moment to arm
	time.Sleep(50 * time.Millisecond)

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, r.Stop(stopCtx))

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("registry did not stop")
	}
}

func TestRegistry_ArmFromConfig_FrequencyReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, m := setupTestRegistry(ctrl, scheduler.Config{DefaultFrequency: 86000})

	ctx := context.Background()
	m.collections.EXPECT().All().Return([]domain.Collection{{Slug: "degods-eth"}})
	m.graph.EXPECT().GetUpdateFrequency(ctx, "degods-eth").Return(int64(0), errors.New("neo4j down"))

	err := r.ArmFromConfig(ctx)
	assert.ErrorContains(t, err, "failed to read update frequency")
}
