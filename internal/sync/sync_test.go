package sync_test

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
	"github.com/alexpan006/blockdash-api/internal/providers/opensea"
	"github.com/alexpan006/blockdash-api/internal/store"
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

func TestStalenessGate_Due(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	gate := syncpkg.StalenessGate{Threshold: 48 * time.Hour}

	tests := []struct {
		name       string
		lastSynced int64
		expected   bool
	}{
		{name: "never synced is always due", lastSynced: 0, expected: true},
		{name: "exactly threshold ago is due", lastSynced: now.Add(-48 * time.Hour).Unix(), expected: true},
		{name: "one second within threshold is not due", lastSynced: now.Add(-48*time.Hour + time.Second).Unix(), expected: false},
		{name: "older than threshold is due", lastSynced: now.Add(-72 * time.Hour).Unix(), expected: true},
		{name: "just synced is not due", lastSynced: now.Unix(), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, gate.Due(tt.lastSynced, now))
		})
	}
}

type syncTestMocks struct {
	collections *mocks.MockCollectionRegistry
	graph       *mocks.MockGraphStore
	feed        *mocks.MockOpenSeaClient
	journal     *mocks.MockRunJournal
	cache       *mocks.MockCache
	publisher   *mocks.MockPublisher
	clock       *mocks.MockClock
}

func setupTestSynchronizer(ctrl *gomock.Controller) (syncpkg.Synchronizer, *syncTestMocks) {
	m := &syncTestMocks{
		collections: mocks.NewMockCollectionRegistry(ctrl),
		graph:       mocks.NewMockGraphStore(ctrl),
		feed:        mocks.NewMockOpenSeaClient(ctrl),
		journal:     mocks.NewMockRunJournal(ctrl),
		cache:       mocks.NewMockCache(ctrl),
		publisher:   mocks.NewMockPublisher(ctrl),
		clock:       mocks.NewMockClock(ctrl),
	}

	s := syncpkg.NewSynchronizer(
		m.collections, m.graph, m.feed, m.journal, m.cache, m.publisher, m.clock,
		syncpkg.StalenessGate{Threshold: 48 * time.Hour},
	)
	return s, m
}

func TestSynchronizer_RunUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := setupTestSynchronizer(ctrl)

	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	collection := &domain.Collection{
		Slug:            "degods-eth",
		ContractAddress: "0x8821BeE2ba0dF28761AffF119D66390D594CD280",
		Name:            "DeGods",
	}

	m.collections.EXPECT().Get("degods-eth").Return(collection, nil)
	m.clock.EXPECT().Now().Return(now)
	m.journal.EXPECT().CreateSyncRun(ctx, gomock.Any()).Return(nil)

	// Two tokens: "1" never synced (due), "2" freshly synced (skipped)
	m.graph.EXPECT().ListCollectionTokens(ctx, "degods-eth").Return([]store.TokenSyncState{
		{Identifier: "1", LastSynced: 0},
		{Identifier: "2", LastSynced: now.Unix()},
	}, nil)

	// Token 1 drains a two-page cursor walk
	page1 := &opensea.EventsPage{
		AssetEvents: []opensea.AssetEvent{
			{
				EventType:      "transfer",
				Transaction:    "0xAAA1",
				FromAddress:    "0x1111111111111111111111111111111111111111",
				ToAddress:      "0x2222222222222222222222222222222222222222",
				EventTimestamp: 1700000000,
				NFT:            &opensea.AssetRef{Identifier: "1", Collection: "degods-eth"},
			},
		},
		Next: "cursor-2",
	}
	page2 := &opensea.EventsPage{
		AssetEvents: []opensea.AssetEvent{
			{
				EventType:      "sale",
				Transaction:    "0xAAA2",
				FromAddress:    "0x2222222222222222222222222222222222222222",
				ToAddress:      "0x3333333333333333333333333333333333333333",
				EventTimestamp: 1700000100,
				NFT:            &opensea.AssetRef{Identifier: "1", Collection: "degods-eth"},
			},
		},
		Next: "",
	}
	gomock.InOrder(
		m.feed.EXPECT().ListEvents(ctx, collection.ContractAddress, "1", int64(0), now.Unix(), "").Return(page1, nil),
		m.feed.EXPECT().ListEvents(ctx, collection.ContractAddress, "1", int64(0), now.Unix(), "cursor-2").Return(page2, nil),
	)

	m.graph.EXPECT().ApplyTransferEvent(ctx, gomock.Any()).Return(nil).Times(2)
	m.graph.EXPECT().SetTokenSyncTime(ctx, "degods-eth", "1", now.Unix()).Return(nil)

	m.cache.EXPECT().SetLastUpdate(ctx, now).Return(nil)
	m.cache.EXPECT().Invalidate(ctx, domain.CACHE_KEY_PREFIX).Return(nil)
	m.publisher.EXPECT().PublishGraphEvent(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, event *domain.GraphEvent) error {
			assert.Equal(t, domain.GraphEventSyncCompleted, event.Type)
			assert.Equal(t, "degods-eth", event.Collection)
			assert.Equal(t, 1, event.TokensSynced)
			assert.Equal(t, 2, event.EventsApplied)
			return nil
		})
	m.journal.EXPECT().CompleteSyncRun(ctx, gomock.Any(), gomock.Any()).Return(nil)

	summary, err := s.RunUpdate(ctx, "degods-eth", schema.SyncRunTriggerScheduled)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TokensChecked)
	assert.Equal(t, 1, summary.TokensDue)
	assert.Equal(t, 1, summary.TokensSynced)
	assert.Equal(t, 0, summary.TokensFailed)
	assert.Equal(t, 2, summary.EventsApplied)
	assert.Equal(t, 0, summary.EventsSkipped)
}

func TestSynchronizer_RunUpdate_UnknownCollection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := setupTestSynchronizer(ctrl)

	m.collections.EXPECT().Get("cryptopunks").Return(nil, domain.ErrCollectionNotFound)

	_, err := s.RunUpdate(context.Background(), "cryptopunks", schema.SyncRunTriggerManual)
	assert.ErrorIs(t, err, domain.ErrCollectionNotFound)
}

func TestSynchronizer_RunUpdate_FeedErrorLeavesTokenStale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := setupTestSynchronizer(ctrl)

	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	collection := &domain.Collection{Slug: "degods-eth", ContractAddress: "0x8821BeE2ba0dF28761AffF119D66390D594CD280"}

	m.collections.EXPECT().Get("degods-eth").Return(collection, nil)
	m.clock.EXPECT().Now().Return(now)
	m.journal.EXPECT().CreateSyncRun(ctx, gomock.Any()).Return(nil)
	m.graph.EXPECT().ListCollectionTokens(ctx, "degods-eth").Return([]store.TokenSyncState{
		{Identifier: "1", LastSynced: 0},
		{Identifier: "2", LastSynced: 0},
	}, nil)

	// Token 1 fails at the feed; its sync time is never advanced
	m.feed.EXPECT().ListEvents(ctx, collection.ContractAddress, "1", int64(0), now.Unix(), "").
		Return(nil, errors.New("feed unavailable"))

	// Token 2 succeeds with an empty page
	m.feed.EXPECT().ListEvents(ctx, collection.ContractAddress, "2", int64(0), now.Unix(), "").
		Return(&opensea.EventsPage{}, nil)
	m.graph.EXPECT().SetTokenSyncTime(ctx, "degods-eth", "2", now.Unix()).Return(nil)

	m.cache.EXPECT().SetLastUpdate(ctx, now).Return(nil)
	m.cache.EXPECT().Invalidate(ctx, domain.CACHE_KEY_PREFIX).Return(nil)
	m.publisher.EXPECT().PublishGraphEvent(ctx, gomock.Any()).Return(nil)
	m.journal.EXPECT().CompleteSyncRun(ctx, gomock.Any(), gomock.Any()).Return(nil)

	summary, err := s.RunUpdate(ctx, "degods-eth", schema.SyncRunTriggerScheduled)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TokensFailed)
	assert.Equal(t, 1, summary.TokensSynced)
}

func TestSynchronizer_RunUpdate_ApplyErrorSkipsEventOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := setupTestSynchronizer(ctrl)

	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	collection := &domain.Collection{Slug: "degods-eth", ContractAddress: "0x8821BeE2ba0dF28761AffF119D66390D594CD280"}

	m.collections.EXPECT().Get("degods-eth").Return(collection, nil)
	m.clock.EXPECT().Now().Return(now)
	m.journal.EXPECT().CreateSyncRun(ctx, gomock.Any()).Return(nil)
	m.graph.EXPECT().ListCollectionTokens(ctx, "degods-eth").Return([]store.TokenSyncState{
		{Identifier: "1", LastSynced: 0},
	}, nil)

	page := &opensea.EventsPage{
		AssetEvents: []opensea.AssetEvent{
			{
				EventType:      "transfer",
				Transaction:    "0xBAD1",
				ToAddress:      "0x2222222222222222222222222222222222222222",
				EventTimestamp: 1700000000,
				NFT:            &opensea.AssetRef{Identifier: "1"},
			},
			{
				EventType:      "transfer",
				Transaction:    "0xGOOD",
				ToAddress:      "0x3333333333333333333333333333333333333333",
				EventTimestamp: 1700000001,
				NFT:            &opensea.AssetRef{Identifier: "1"},
			},
		},
	}
	m.feed.EXPECT().ListEvents(ctx, collection.ContractAddress, "1", int64(0), now.Unix(), "").Return(page, nil)

	gomock.InOrder(
		m.graph.EXPECT().ApplyTransferEvent(ctx, gomock.Any()).Return(errors.New("deadlock")),
		m.graph.EXPECT().ApplyTransferEvent(ctx, gomock.Any()).Return(nil),
	)
	m.graph.EXPECT().SetTokenSyncTime(ctx, "degods-eth", "1", now.Unix()).Return(nil)

	m.cache.EXPECT().SetLastUpdate(ctx, now).Return(nil)
	m.cache.EXPECT().Invalidate(ctx, domain.CACHE_KEY_PREFIX).Return(nil)
	m.publisher.EXPECT().PublishGraphEvent(ctx, gomock.Any()).Return(nil)
	m.journal.EXPECT().CompleteSyncRun(ctx, gomock.Any(), gomock.Any()).Return(nil)

	summary, err := s.RunUpdate(ctx, "degods-eth", schema.SyncRunTriggerScheduled)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.EventsApplied)
	assert.Equal(t, 1, summary.EventsSkipped)
	assert.Equal(t, 1, summary.TokensSynced)
}

func TestSynchronizer_RunUpdate_SingleFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := setupTestSynchronizer(ctrl)

	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	collection := &domain.Collection{Slug: "degods-eth", ContractAddress: "0x8821BeE2ba0dF28761AffF119D66390D594CD280"}

	m.collections.EXPECT().Get("degods-eth").Return(collection, nil).Times(2)
	m.clock.EXPECT().Now().Return(now)
	m.journal.EXPECT().CreateSyncRun(ctx, gomock.Any()).Return(nil)

	// The overlapping run is attempted while the first is inside the token walk
	m.graph.EXPECT().ListCollectionTokens(ctx, "degods-eth").DoAndReturn(
		func(ctx context.Context, _ string) ([]store.TokenSyncState, error) {
			_, err := s.RunUpdate(ctx, "degods-eth", schema.SyncRunTriggerManual)
			assert.ErrorIs(t, err, syncpkg.ErrSyncInProgress)
			return nil, nil
		})

	m.cache.EXPECT().SetLastUpdate(ctx, now).Return(nil)
	m.cache.EXPECT().Invalidate(ctx, domain.CACHE_KEY_PREFIX).Return(nil)
	m.publisher.EXPECT().PublishGraphEvent(ctx, gomock.Any()).Return(nil)
	m.journal.EXPECT().CompleteSyncRun(ctx, gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.RunUpdate(ctx, "degods-eth", schema.SyncRunTriggerScheduled)
	require.NoError(t, err)
}

func TestSynchronizer_RunUpdate_ListTokensErrorFailsRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := setupTestSynchronizer(ctrl)

	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	collection := &domain.Collection{Slug: "degods-eth", ContractAddress: "0x8821BeE2ba0dF28761AffF119D66390D594CD280"}

	m.collections.EXPECT().Get("degods-eth").Return(collection, nil)
	m.clock.EXPECT().Now().Return(now)
	m.journal.EXPECT().CreateSyncRun(ctx, gomock.Any()).Return(nil)
	m.graph.EXPECT().ListCollectionTokens(ctx, "degods-eth").Return(nil, errors.New("neo4j down"))
	m.journal.EXPECT().FailSyncRun(ctx, gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.RunUpdate(ctx, "degods-eth", schema.SyncRunTriggerScheduled)
	assert.ErrorContains(t, err, "failed to list collection tokens")
}
