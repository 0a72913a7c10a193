package projection

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/alexpan006/blockdash-api/internal/logger"
	"github.com/alexpan006/blockdash-api/internal/store"
)

// Manager serializes access to named in-memory graph projections. Projections
// are scratch space for a single analytics run: WithProjection creates the
// projection, hands it to the callback, and drops it again before returning,
// so no projection outlives the operation that needed it.
//
//go:generate mockgen -source=manager.go -destination=../mocks/projection_manager.go -package=mocks -mock_names=ProjectionManager=MockProjectionManager
type ProjectionManager interface {
	// WithProjection runs fn against a freshly created projection. The
	// projection is dropped when fn returns, whether it succeeded or not.
	WithProjection(ctx context.Context, name string, spec store.ProjectionSpec, fn func(ctx context.Context) error) error
}

// Manager implements ProjectionManager on top of a graph store
type Manager struct {
	store store.GraphStore

	mu    sync.Mutex
	names map[string]*sync.Mutex
}

// NewManager creates a projection manager
func NewManager(graphStore store.GraphStore) *Manager {
	return &Manager{
		store: graphStore,
		names: make(map[string]*sync.Mutex),
	}
}

// nameLock returns the mutex guarding one projection name, creating it on
// first use. Two callers may hold different names concurrently.
func (m *Manager) nameLock(name string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()

	lock, ok := m.names[name]
	if !ok {
		lock = &sync.Mutex{}
		m.names[name] = lock
	}
	return lock
}

// WithProjection runs fn against a freshly created projection named name. A
// leftover projection with the same name from a crashed earlier run is dropped
// before creating the new one. The projection is always dropped before the
// name lock is released; a drop failure after fn succeeded is logged rather
// than returned, since the analytics result is already in hand.
func (m *Manager) WithProjection(ctx context.Context, name string, spec store.ProjectionSpec, fn func(ctx context.Context) error) error {
	lock := m.nameLock(name)
	lock.Lock()
	defer lock.Unlock()

	existing, err := m.store.ListProjections(ctx)
	if err != nil {
		return fmt.Errorf("failed to list projections: %w", err)
	}
	for _, n := range existing {
		if n != name {
			continue
		}
		logger.WarnCtx(ctx, "dropping stale projection", zap.String("projection", name))
		if err := m.store.DropProjection(ctx, name); err != nil {
			return fmt.Errorf("failed to drop stale projection %s: %w", name, err)
		}
	}

	if err := m.store.CreateProjection(ctx, name, spec); err != nil {
		return fmt.Errorf("failed to create projection %s: %w", name, err)
	}

	fnErr := fn(ctx)

	if err := m.store.DropProjection(ctx, name); err != nil {
		if fnErr != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to drop projection %s: %w", name, err))
			return fnErr
		}
		logger.ErrorCtx(ctx, fmt.Errorf("failed to drop projection %s: %w", name, err),
			zap.String("projection", name))
	}
	return fnErr
}
