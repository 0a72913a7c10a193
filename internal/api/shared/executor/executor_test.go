package executor_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/golang/mock/gomock"

	"github.com/alexpan006/blockdash-api/internal/adapter"
	"github.com/alexpan006/blockdash-api/internal/analytics"
	"github.com/alexpan006/blockdash-api/internal/api/shared/dto"
	apierrors "github.com/alexpan006/blockdash-api/internal/api/shared/errors"
	"github.com/alexpan006/blockdash-api/internal/api/shared/executor"
	"github.com/alexpan006/blockdash-api/internal/cache"
	"github.com/alexpan006/blockdash-api/internal/centrality"
	"github.com/alexpan006/blockdash-api/internal/domain"
	"github.com/alexpan006/blockdash-api/internal/logger"
	"github.com/alexpan006/blockdash-api/internal/mocks"
	"github.com/alexpan006/blockdash-api/internal/scheduler"
	"github.com/alexpan006/blockdash-api/internal/store"
	"github.com/alexpan006/blockdash-api/internal/store/schema"
)

const defaultFrequency = int64(86000)

var centralityRanking = centrality.Ranking{
	Collection: "degods-eth",
	Nodes: []centrality.RankedNode{
		{Kind: "address", Value: "0x1111111111111111111111111111111111111111", Score: 12.0},
	},
}

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type executorTestMocks struct {
	ctrl        *gomock.Controller
	collections *mocks.MockCollectionRegistry
	graph       *mocks.MockGraphStore
	journal     *mocks.MockRunJournal
	triggers    *mocks.MockRegistry
	communities *mocks.MockCommunityReader
	centrality  *mocks.MockCentralityService
	analytics   *mocks.MockAnalyticsService
	cache       *mocks.MockCache
	executor    executor.Executor
}

func setupTestExecutor(t *testing.T) *executorTestMocks {
	ctrl := gomock.NewController(t)
	m := &executorTestMocks{
		ctrl:        ctrl,
		collections: mocks.NewMockCollectionRegistry(ctrl),
		graph:       mocks.NewMockGraphStore(ctrl),
		journal:     mocks.NewMockRunJournal(ctrl),
		triggers:    mocks.NewMockRegistry(ctrl),
		communities: mocks.NewMockCommunityReader(ctrl),
		centrality:  mocks.NewMockCentralityService(ctrl),
		analytics:   mocks.NewMockAnalyticsService(ctrl),
		cache:       mocks.NewMockCache(ctrl),
	}
	m.executor = executor.NewExecutor(
		m.collections,
		m.graph,
		m.journal,
		m.triggers,
		m.communities,
		m.centrality,
		m.analytics,
		m.cache,
		adapter.NewJSON(),
		defaultFrequency,
	)
	return m
}

func TestLastUpdate(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m.cache.EXPECT().GetLastUpdate(gomock.Any()).Return(at, nil)

	resp, err := m.executor.LastUpdate(context.Background())

	require.NoError(t, err)
	require.NotNil(t, resp.LastUpdate)
	assert.Equal(t, at, *resp.LastUpdate)
}

func TestLastUpdateNeverSynced(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	m.cache.EXPECT().GetLastUpdate(gomock.Any()).Return(time.Time{}, cache.ErrCacheMiss)

	resp, err := m.executor.LastUpdate(context.Background())

	require.NoError(t, err)
	assert.Nil(t, resp.LastUpdate)
}

func TestGetFrequencyPersisted(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	m.collections.EXPECT().Get("degods-eth").Return(&domain.Collection{Slug: "degods-eth"}, nil)
	m.graph.EXPECT().GetUpdateFrequency(gomock.Any(), "degods-eth").Return(int64(3600), nil)

	resp, err := m.executor.GetFrequency(context.Background(), "degods-eth")

	require.NoError(t, err)
	assert.Equal(t, int64(3600), resp.Seconds)
}

func TestGetFrequencyFallsBackToDefault(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	m.collections.EXPECT().Get("degods-eth").Return(&domain.Collection{Slug: "degods-eth"}, nil)
	m.graph.EXPECT().
		GetUpdateFrequency(gomock.Any(), "degods-eth").
		Return(int64(0), domain.ErrCollectionNotFound)

	resp, err := m.executor.GetFrequency(context.Background(), "degods-eth")

	require.NoError(t, err)
	assert.Equal(t, defaultFrequency, resp.Seconds)
}

func TestGetFrequencyUnknownCollection(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	m.collections.EXPECT().Get("nope").Return(nil, domain.ErrCollectionNotFound)

	_, err := m.executor.GetFrequency(context.Background(), "nope")

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.ErrCodeNotFound, apiErr.Code)
}

func TestSetFrequency(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	m.collections.EXPECT().Get("degods-eth").Return(&domain.Collection{Slug: "degods-eth"}, nil)
	m.graph.EXPECT().SetUpdateFrequency(gomock.Any(), "degods-eth", int64(7200)).Return(nil)

	resp, err := m.executor.SetFrequency(context.Background(), dto.SetFrequencyRequest{
		Collection: "degods-eth",
		Seconds:    7200,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7200), resp.Seconds)
}

func TestSetFrequencyRejectsNonPositive(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	m.collections.EXPECT().Get("degods-eth").Return(&domain.Collection{Slug: "degods-eth"}, nil)

	_, err := m.executor.SetFrequency(context.Background(), dto.SetFrequencyRequest{
		Collection: "degods-eth",
		Seconds:    -1,
	})

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.ErrCodeValidationFailed, apiErr.Code)
}

func TestListTriggers(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	m.triggers.EXPECT().List().Return([]scheduler.TriggerInfo{
		{ID: "sync:degods-eth", Collection: "degods-eth", Kind: scheduler.TriggerKindSync, Interval: time.Hour},
	})

	resp := m.executor.ListTriggers(context.Background())

	require.Len(t, resp.Triggers, 1)
	assert.Equal(t, "sync:degods-eth", resp.Triggers[0].ID)
	assert.Equal(t, "1h0m0s", resp.Triggers[0].Interval)
}

func TestRemoveTriggerUnknown(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	m.triggers.EXPECT().Remove("sync:nope").Return(domain.ErrTriggerNotFound)

	err := m.executor.RemoveTrigger(context.Background(), "sync:nope")

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.ErrCodeNotFound, apiErr.Code)
}

func TestFireTrigger(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	m.triggers.EXPECT().Fire(gomock.Any(), "communities:complete").Return(nil)

	err := m.executor.FireTrigger(context.Background(), "communities:complete")

	require.NoError(t, err)
}

func TestListRuns(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	started := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m.journal.EXPECT().
		ListSyncRuns(gomock.Any(), "degods-eth", 20, 0).
		Return([]schema.SyncRun{
			{
				ID:         "01J0000000000000000000TEST",
				Collection: "degods-eth",
				Trigger:    schema.SyncRunTriggerScheduled,
				Status:     schema.SyncRunStatusCompleted,
				StartedAt:  started,
			},
		}, int64(1), nil)

	resp, err := m.executor.ListRuns(context.Background(), "degods-eth", 20, 0)

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Total)
	require.Len(t, resp.Runs, 1)
	assert.Equal(t, "completed", resp.Runs[0].Status)
}

func TestCommunitySummaryCacheHit(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	key := domain.COMMUNITY_CACHE_PREFIX + "abc"
	cached := []byte(`{"collection":"degods-eth","ownership":[3],"transaction":null,"combined":[1],"updated_at":"2025-06-01T12:00:00Z"}`)

	m.cache.EXPECT().Key(domain.COMMUNITY_CACHE_PREFIX, gomock.Any()).Return(key, nil)
	m.cache.EXPECT().Get(gomock.Any(), key).Return(cached, nil)
	// No reader call: the cached payload is served as-is

	resp, err := m.executor.CommunitySummary(context.Background(), "degods-eth")

	require.NoError(t, err)
	assert.Equal(t, []int64{3}, resp.Ownership)
	assert.Equal(t, []int64{1}, resp.Combined)
}

func TestCommunitySummaryCacheMissComputesAndStores(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	key := domain.COMMUNITY_CACHE_PREFIX + "abc"
	summary := &domain.CommunitySummary{
		Collection: "degods-eth",
		Ownership:  []int64{3, 7},
		Combined:   []int64{1},
		UpdatedAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	m.cache.EXPECT().Key(domain.COMMUNITY_CACHE_PREFIX, gomock.Any()).Return(key, nil)
	m.cache.EXPECT().Get(gomock.Any(), key).Return(nil, cache.ErrCacheMiss)
	m.communities.EXPECT().Summary(gomock.Any(), "degods-eth").Return(summary, nil)
	m.cache.EXPECT().Set(gomock.Any(), key, gomock.Any()).Return(nil)

	resp, err := m.executor.CommunitySummary(context.Background(), "degods-eth")

	require.NoError(t, err)
	assert.Equal(t, []int64{3, 7}, resp.Ownership)
}

func TestCommunitySummaryCacheFailureDegradesToCompute(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	summary := &domain.CommunitySummary{Collection: "degods-eth", Combined: []int64{1}}

	m.cache.EXPECT().Key(domain.COMMUNITY_CACHE_PREFIX, gomock.Any()).Return("", errors.New("marshal failed"))
	m.communities.EXPECT().Summary(gomock.Any(), "degods-eth").Return(summary, nil)

	resp, err := m.executor.CommunitySummary(context.Background(), "degods-eth")

	require.NoError(t, err)
	assert.Equal(t, []int64{1}, resp.Combined)
}

func TestCommunitySummaryNotFound(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	key := domain.COMMUNITY_CACHE_PREFIX + "abc"
	m.cache.EXPECT().Key(domain.COMMUNITY_CACHE_PREFIX, gomock.Any()).Return(key, nil)
	m.cache.EXPECT().Get(gomock.Any(), key).Return(nil, cache.ErrCacheMiss)
	m.communities.EXPECT().
		Summary(gomock.Any(), "nope").
		Return(nil, domain.ErrCommunityNotFound)

	_, err := m.executor.CommunitySummary(context.Background(), "nope")

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.ErrCodeNotFound, apiErr.Code)
}

func TestCentralityRankingCacheMiss(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	key := domain.CENTRALITY_CACHE_PREFIX + "abc"
	m.cache.EXPECT().Key(domain.CENTRALITY_CACHE_PREFIX, gomock.Any()).Return(key, nil)
	m.cache.EXPECT().Get(gomock.Any(), key).Return(nil, cache.ErrCacheMiss)
	m.centrality.EXPECT().
		TopCentralNodes(gomock.Any(), "degods-eth", 10).
		Return(&centralityRanking, nil)
	m.cache.EXPECT().Set(gomock.Any(), key, gomock.Any()).Return(nil)

	resp, err := m.executor.CentralityRanking(context.Background(), "degods-eth", 10)

	require.NoError(t, err)
	assert.Equal(t, "degods-eth", resp.Collection)
}

func TestActivityRankingCacheMiss(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	window := domain.TimeWindow{YearFrom: 2024, YearTo: 2024, MonthFrom: 1, MonthTo: 6}
	ranking := &analytics.Ranking{
		Scope:      domain.RankAccountTransaction,
		Collection: "degods-eth",
		Entries: []store.RankedCount{
			{Kind: store.NodeKindAccount, Value: "0x1111111111111111111111111111111111111111", Count: 42},
		},
	}

	key := domain.ANALYTICS_CACHE_PREFIX + "abc"
	m.cache.EXPECT().Key(domain.ANALYTICS_CACHE_PREFIX, gomock.Any()).Return(key, nil)
	m.cache.EXPECT().Get(gomock.Any(), key).Return(nil, cache.ErrCacheMiss)
	m.analytics.EXPECT().
		Ranking(gomock.Any(), domain.RankAccountTransaction, "degods-eth", window, 5).
		Return(ranking, nil)
	m.cache.EXPECT().Set(gomock.Any(), key, gomock.Any()).Return(nil)

	resp, err := m.executor.ActivityRanking(context.Background(), domain.RankAccountTransaction, "degods-eth", window, 5)

	require.NoError(t, err)
	assert.Equal(t, "account_transaction", resp.Scope)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, int64(42), resp.Entries[0].Count)
}

func TestActivityRankingRequiresCollection(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	window := domain.TimeWindow{YearFrom: 2024, YearTo: 2024, MonthFrom: 1, MonthTo: 12}
	key := domain.ANALYTICS_CACHE_PREFIX + "abc"
	m.cache.EXPECT().Key(domain.ANALYTICS_CACHE_PREFIX, gomock.Any()).Return(key, nil)
	m.cache.EXPECT().Get(gomock.Any(), key).Return(nil, cache.ErrCacheMiss)
	m.analytics.EXPECT().
		Ranking(gomock.Any(), domain.RankOwnershipChanges, "", window, 10).
		Return(nil, analytics.ErrCollectionRequired)

	_, err := m.executor.ActivityRanking(context.Background(), domain.RankOwnershipChanges, "", window, 10)

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.ErrCodeValidationFailed, apiErr.Code)
}

func TestSearchAccountUnknownAddress(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	key := domain.ANALYTICS_CACHE_PREFIX + "abc"
	m.cache.EXPECT().Key(domain.ANALYTICS_CACHE_PREFIX, gomock.Any()).Return(key, nil)
	m.cache.EXPECT().Get(gomock.Any(), key).Return(nil, cache.ErrCacheMiss)
	m.analytics.EXPECT().
		FindAccount(gomock.Any(), "0x2222222222222222222222222222222222222222").
		Return(nil, domain.ErrAccountNotFound)

	_, err := m.executor.SearchAccount(context.Background(), "0x2222222222222222222222222222222222222222")

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.ErrCodeNotFound, apiErr.Code)
}

func TestEventHistoryCacheHit(t *testing.T) {
	m := setupTestExecutor(t)
	defer m.ctrl.Finish()

	window := domain.TimeWindow{YearFrom: 2024, YearTo: 2024, MonthFrom: 1, MonthTo: 1}
	key := domain.ANALYTICS_CACHE_PREFIX + "abc"
	cached := []byte(`{"dates":["2024-01-01"],"counts":[3]}`)

	m.cache.EXPECT().Key(domain.ANALYTICS_CACHE_PREFIX, gomock.Any()).Return(key, nil)
	m.cache.EXPECT().Get(gomock.Any(), key).Return(cached, nil)
	// No service call: the cached payload is served as-is

	resp, err := m.executor.EventHistory(context.Background(), domain.RelationTransacted, "", window)

	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-01"}, resp.Dates)
	assert.Equal(t, []float64{3}, resp.Counts)
}
