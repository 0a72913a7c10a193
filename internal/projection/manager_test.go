package projection_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexpan006/blockdash-api/internal/domain"
	"github.com/alexpan006/blockdash-api/internal/logger"
	"github.com/alexpan006/blockdash-api/internal/mocks"
	"github.com/alexpan006/blockdash-api/internal/projection"
	"github.com/alexpan006/blockdash-api/internal/store"
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

func TestManager_WithProjection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockGraphStore(ctrl)
	manager := projection.NewManager(mockStore)

	ctx := context.Background()
	spec := store.ScopeProjection(domain.ScopeCombined, "degods-eth")

	gomock.InOrder(
		mockStore.EXPECT().ListProjections(ctx).Return([]string{"other_owned"}, nil),
		mockStore.EXPECT().CreateProjection(ctx, "degods_eth_owned_trx", spec).Return(nil),
		mockStore.EXPECT().DropProjection(ctx, "degods_eth_owned_trx").Return(nil),
	)

	ran := false
	err := manager.WithProjection(ctx, "degods_eth_owned_trx", spec, func(ctx context.Context) error {
		ran = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ran)
}

func TestManager_WithProjection_DropsStaleProjection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockGraphStore(ctrl)
	manager := projection.NewManager(mockStore)

	ctx := context.Background()
	spec := store.CentralityProjection("")

	gomock.InOrder(
		mockStore.EXPECT().ListProjections(ctx).Return([]string{"centralityGraph", "complete_owned"}, nil),
		mockStore.EXPECT().DropProjection(ctx, "centralityGraph").Return(nil),
		mockStore.EXPECT().CreateProjection(ctx, "centralityGraph", spec).Return(nil),
		mockStore.EXPECT().DropProjection(ctx, "centralityGraph").Return(nil),
	)

	err := manager.WithProjection(ctx, "centralityGraph", spec, func(ctx context.Context) error {
		return nil
	})
	require.NoError(t, err)
}

func TestManager_WithProjection_DropsAfterCallbackError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockGraphStore(ctrl)
	manager := projection.NewManager(mockStore)

	ctx := context.Background()
	spec := store.CentralityProjection("degods-eth")
	callbackErr := errors.New("louvain failed")

	gomock.InOrder(
		mockStore.EXPECT().ListProjections(ctx).Return(nil, nil),
		mockStore.EXPECT().CreateProjection(ctx, "centralityGraph", spec).Return(nil),
		mockStore.EXPECT().DropProjection(ctx, "centralityGraph").Return(nil),
	)

	err := manager.WithProjection(ctx, "centralityGraph", spec, func(ctx context.Context) error {
		return callbackErr
	})
	assert.ErrorIs(t, err, callbackErr)
}

func TestManager_WithProjection_CallbackErrorWinsOverDropError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockGraphStore(ctrl)
	manager := projection.NewManager(mockStore)

	ctx := context.Background()
	spec := store.CentralityProjection("")
	callbackErr := errors.New("stream aborted")

	gomock.InOrder(
		mockStore.EXPECT().ListProjections(ctx).Return(nil, nil),
		mockStore.EXPECT().CreateProjection(ctx, "centralityGraph", spec).Return(nil),
		mockStore.EXPECT().DropProjection(ctx, "centralityGraph").Return(errors.New("drop failed")),
	)

	err := manager.WithProjection(ctx, "centralityGraph", spec, func(ctx context.Context) error {
		return callbackErr
	})
	assert.ErrorIs(t, err, callbackErr)
}

func TestManager_WithProjection_SerializesSameName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockGraphStore(ctrl)
	manager := projection.NewManager(mockStore)

	ctx := context.Background()
	spec := store.CentralityProjection("")

	mockStore.EXPECT().ListProjections(gomock.Any()).Return(nil, nil).Times(2)
	mockStore.EXPECT().CreateProjection(gomock.Any(), "centralityGraph", spec).Return(nil).Times(2)
	mockStore.EXPECT().DropProjection(gomock.Any(), "centralityGraph").Return(nil).Times(2)

	var inside atomic.Int32
	var overlapped atomic.Bool
	body := func(ctx context.Context) error {
		if inside.Add(1) > 1 {
			overlapped.Store(true)
		}
		time.Sleep(20 * time.Millisecond)
		inside.Add(-1)
		return nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, manager.WithProjection(ctx, "centralityGraph", spec, body))
		}()
	}
	wg.Wait()

	assert.False(t, overlapped.Load(), "two callbacks held the same projection name at once")
}

func TestManager_WithProjection_DistinctNamesRunConcurrently(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockGraphStore(ctrl)
	manager := projection.NewManager(mockStore)

	ctx := context.Background()
	spec := store.CentralityProjection("")

	mockStore.EXPECT().ListProjections(gomock.Any()).Return(nil, nil).Times(2)
	mockStore.EXPECT().CreateProjection(gomock.Any(), gomock.Any(), spec).Return(nil).Times(2)
	mockStore.EXPECT().DropProjection(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	// Each callback waits for the other: deadlock here would mean the
	// manager holds one global lock instead of one per name.
	entered := make(chan string, 2)
	release := make(chan struct{})
	body := func(ctx context.Context) error {
		entered <- "in"
		<-release
		return nil
	}

	var wg sync.WaitGroup
	for _, name := range []string{"degods_eth_owned", "boredapeyachtclub_owned"} {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			assert.NoError(t, manager.WithProjection(ctx, name, spec, body))
		}(name)
	}

	for i := 0; i < 2; i++ {
		select {
		case <-entered:
		case <-time.After(5 * time.Second):
			t.Fatal("projections with distinct names blocked each other")
		}
	}
	close(release)
	wg.Wait()
}

func TestManager_WithProjection_CreateError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockGraphStore(ctrl)
	manager := projection.NewManager(mockStore)

	ctx := context.Background()
	spec := store.CentralityProjection("")

	mockStore.EXPECT().ListProjections(ctx).Return(nil, nil)
	mockStore.EXPECT().CreateProjection(ctx, "centralityGraph", spec).Return(errors.New("out of memory"))

	err := manager.WithProjection(ctx, "centralityGraph", spec, func(ctx context.Context) error {
		t.Fatal("callback must not run when create fails")
		return nil
	})
	assert.ErrorContains(t, err, "failed to create projection")
}
