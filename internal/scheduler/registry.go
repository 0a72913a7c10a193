package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/alexpan006/blockdash-api/internal/adapter"
	"github.com/alexpan006/blockdash-api/internal/community"
	"github.com/alexpan006/blockdash-api/internal/domain"
	"github.com/alexpan006/blockdash-api/internal/logger"
	collections "github.com/alexpan006/blockdash-api/internal/registry"
	"github.com/alexpan006/blockdash-api/internal/store"
	"github.com/alexpan006/blockdash-api/internal/store/schema"
	syncpkg "github.com/alexpan006/blockdash-api/internal/sync"
)

// TriggerKind distinguishes what a trigger fires
type TriggerKind string

const (
	// TriggerKindSync fires an ingestion run
	TriggerKindSync TriggerKind = "sync"
	// TriggerKindCommunities fires a community detection run
	TriggerKindCommunities TriggerKind = "communities"
)

// TriggerFunc is the body of a trigger
type TriggerFunc func(ctx context.Context) error

// TriggerSpec declares one periodic trigger. Triggers are data: the registry
// stores specs and fires their bodies, nothing else.
type TriggerSpec struct {
	ID         string
	Collection string
	Kind       TriggerKind
	Interval   time.Duration
	Fn         TriggerFunc
}

// TriggerInfo is the read-only view of an armed trigger
type TriggerInfo struct {
	ID         string        `json:"id"`
	Collection string        `json:"collection"`
	Kind       TriggerKind   `json:"kind"`
	Interval   time.Duration `json:"interval"`
	NextFire   time.Time     `json:"next_fire"`
}

// Config holds the trigger registry policy knobs
type Config struct {
	// DefaultFrequency is the trigger interval in seconds for collections
	// without a persisted frequency
	DefaultFrequency int64
	// TopK bounds community summaries armed by ArmFromConfig
	TopK int
	// DetectionTargets lists the slugs (or "complete") detection triggers
	// are armed for
	DetectionTargets []string
	// WorkerPoolSize bounds concurrent trigger bodies
	WorkerPoolSize int
	// WorkerQueueSize bounds queued fires
	WorkerQueueSize int
}

// Registry arms, lists, and fires the periodic triggers of the system
//
//go:generate mockgen -source=registry.go -destination=../mocks/scheduler_registry.go -package=mocks -mock_names=Registry=MockRegistry
type Registry interface {
	// Add arms a trigger. Duplicate ids are rejected.
	Add(spec TriggerSpec) error
	// Remove disarms a trigger. Returns domain.ErrTriggerNotFound for
	// unknown ids.
	Remove(id string) error
	// List returns the armed triggers with their next fire times
	List() []TriggerInfo
	// Fire runs a trigger's body immediately through the worker pool
	Fire(ctx context.Context, id string) error

	// ArmFromConfig arms the boot-time triggers: one sync trigger per
	// registry collection and one communities trigger per detection target
	ArmFromConfig(ctx context.Context) error

	// Start runs the ticker loops. Blocks until Stop or context cancellation.
	Start(ctx context.Context) error
	// Stop stops the tickers and drains the worker pool
	Stop(ctx context.Context) error
}

// trigger is one armed trigger with its scheduling state
type trigger struct {
	spec     TriggerSpec
	nextFire time.Time
	removed  chan struct{}
}

// registry implements Registry
type registry struct {
	cfg          Config
	collections  collections.CollectionRegistry
	graph        store.GraphStore
	synchronizer syncpkg.Synchronizer
	detector     community.Writer
	clock        adapter.Clock

	pool      pond.Pool
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}

	mu       sync.Mutex
	triggers map[string]*trigger
	// loopCtx is the Start context; goroutines for triggers added while
	// running inherit it
	loopCtx context.Context
	wg      sync.WaitGroup
}

// NewRegistry creates a trigger registry
func NewRegistry(
	cfg Config,
	collectionRegistry collections.CollectionRegistry,
	graph store.GraphStore,
	synchronizer syncpkg.Synchronizer,
	detector community.Writer,
	clock adapter.Clock,
) Registry {
	return &registry{
		cfg:          cfg,
		collections:  collectionRegistry,
		graph:        graph,
		synchronizer: synchronizer,
		detector:     detector,
		clock:        clock,
		stopChan:     make(chan struct{}),
		stoppedCh:    make(chan struct{}),
		triggers:     make(map[string]*trigger),
	}
}

// SyncTriggerID is the trigger id of a collection's ingestion trigger
func SyncTriggerID(collection string) string {
	return "sync:" + collection
}

// CommunitiesTriggerID is the trigger id of a collection's detection trigger
func CommunitiesTriggerID(collection string) string {
	return "communities:" + collection
}

// Add arms a trigger. When the registry is already running, the trigger's
// ticker goroutine starts immediately.
func (r *registry) Add(spec TriggerSpec) error {
	if spec.ID == "" {
		return errors.New("trigger id is required")
	}
	if spec.Interval <= 0 {
		return fmt.Errorf("trigger %s: interval must be positive", spec.ID)
	}
	if spec.Fn == nil {
		return fmt.Errorf("trigger %s: fn is required", spec.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.triggers[spec.ID]; exists {
		return fmt.Errorf("trigger %s already registered", spec.ID)
	}

	t := &trigger{
		spec:     spec,
		nextFire: r.clock.Now().Add(spec.Interval),
		removed:  make(chan struct{}),
	}
	r.triggers[spec.ID] = t

	if r.running.Load() && r.loopCtx != nil {
		r.startTicker(r.loopCtx, t)
	}
	return nil
}

// Remove disarms a trigger
func (r *registry) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, exists := r.triggers[id]
	if !exists {
		return domain.ErrTriggerNotFound
	}
	close(t.removed)
	delete(r.triggers, id)
	return nil
}

// List returns the armed triggers sorted nowhere in particular; callers sort
func (r *registry) List() []TriggerInfo {
	r.mu.Lock()
	defer r.mu.Unlock()

	infos := make([]TriggerInfo, 0, len(r.triggers))
	for _, t := range r.triggers {
		infos = append(infos, TriggerInfo{
			ID:         t.spec.ID,
			Collection: t.spec.Collection,
			Kind:       t.spec.Kind,
			Interval:   t.spec.Interval,
			NextFire:   t.nextFire,
		})
	}
	return infos
}

// Fire runs a trigger's body immediately through the worker pool. The body
// itself enforces single-flight per collection; an overlapping fire is a
// logged skip inside the body, not an error here.
//
// The caller's context is typically request-scoped and ends as soon as the
// fire is acknowledged, so the body runs on a detached context that keeps
// the caller's values but not its cancellation.
func (r *registry) Fire(ctx context.Context, id string) error {
	r.mu.Lock()
	t, exists := r.triggers[id]
	r.mu.Unlock()
	if !exists {
		return domain.ErrTriggerNotFound
	}

	r.runBody(context.WithoutCancel(ctx), t)
	return nil
}

// ArmFromConfig arms the boot-time triggers from the collection registry and
// the configured detection targets
func (r *registry) ArmFromConfig(ctx context.Context) error {
	for _, collection := range r.collections.All() {
		interval, err := r.collectionInterval(ctx, collection.Slug)
		if err != nil {
			return err
		}

		slug := collection.Slug
		err = r.Add(TriggerSpec{
			ID:         SyncTriggerID(slug),
			Collection: slug,
			Kind:       TriggerKindSync,
			Interval:   interval,
			Fn: func(ctx context.Context) error {
				_, err := r.synchronizer.RunUpdate(ctx, slug, schema.SyncRunTriggerScheduled)
				if errors.Is(err, syncpkg.ErrSyncInProgress) {
					return nil
				}
				return err
			},
		})
		if err != nil {
			return err
		}
	}

	for _, target := range r.cfg.DetectionTargets {
		interval := time.Duration(r.cfg.DefaultFrequency) * time.Second
		if target != domain.COMPLETE_COLLECTION {
			collectionInterval, err := r.collectionInterval(ctx, target)
			if err != nil {
				return err
			}
			interval = collectionInterval
		}

		slug := target
		err := r.Add(TriggerSpec{
			ID:         CommunitiesTriggerID(slug),
			Collection: slug,
			Kind:       TriggerKindCommunities,
			Interval:   interval,
			Fn: func(ctx context.Context) error {
				return r.detector.RunDetection(ctx, slug, r.cfg.TopK)
			},
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// collectionInterval reads a collection's persisted frequency, falling back
// to the configured default when none was set
func (r *registry) collectionInterval(ctx context.Context, slug string) (time.Duration, error) {
	seconds, err := r.graph.GetUpdateFrequency(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrCollectionNotFound) {
			return time.Duration(r.cfg.DefaultFrequency) * time.Second, nil
		}
		return 0, fmt.Errorf("failed to read update frequency for %s: %w", slug, err)
	}
	return time.Duration(seconds) * time.Second, nil
}

// Start runs the ticker loops. Blocks until Stop or context cancellation.
func (r *registry) Start(ctx context.Context) error {
	if !r.running.CompareAndSwap(false, true) {
		return fmt.Errorf("trigger registry already running")
	}
	defer func() {
		r.running.Store(false)
		close(r.stoppedCh) // Signal that we've stopped
	}()

	r.pool = pond.NewPool(
		r.cfg.WorkerPoolSize,
		pond.WithQueueSize(r.cfg.WorkerQueueSize),
		pond.WithContext(ctx),
	)

	r.mu.Lock()
	r.loopCtx = ctx
	for _, t := range r.triggers {
		r.startTicker(ctx, t)
	}
	count := len(r.triggers)
	r.mu.Unlock()

	logger.InfoCtx(ctx, "Starting trigger registry",
		zap.Int("triggers", count),
		zap.Int("worker_pool_size", r.cfg.WorkerPoolSize))

	select {
	case <-ctx.Done():
		logger.InfoCtx(ctx, "Trigger registry stopping due to context cancellation", zap.Error(ctx.Err()))
	case <-r.stopChan:
		logger.InfoCtx(ctx, "Trigger registry stop requested")
	}

	r.wg.Wait()
	r.pool.StopAndWait()
	return nil
}

// Stop gracefully stops the registry with timeout support
func (r *registry) Stop(ctx context.Context) error {
	if !r.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping trigger registry")
	close(r.stopChan)

	select {
	case <-r.stoppedCh:
		logger.InfoCtx(ctx, "Trigger registry stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Trigger registry stop interrupted by context timeout")
		return ctx.Err()
	}
}

// startTicker launches one trigger's ticker goroutine. Caller holds r.mu.
func (r *registry) startTicker(ctx context.Context, t *trigger) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ticker := r.clock.NewTicker(t.spec.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-r.stopChan:
				return
			case <-t.removed:
				return
			case <-ticker.C:
				r.mu.Lock()
				t.nextFire = r.clock.Now().Add(t.spec.Interval)
				r.mu.Unlock()
				r.runBody(ctx, t)
			}
		}
	}()
}

// runBody submits a trigger body to the worker pool
func (r *registry) runBody(ctx context.Context, t *trigger) {
	body := func() {
		logger.InfoCtx(ctx, "firing trigger",
			zap.String("trigger_id", t.spec.ID),
			zap.String("kind", string(t.spec.Kind)))
		if err := t.spec.Fn(ctx); err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("trigger %s failed: %w", t.spec.ID, err),
				zap.String("trigger_id", t.spec.ID))
		}
	}

	if r.pool != nil {
		r.pool.Submit(body)
		return
	}
	// No pool before Start; manual fires run inline
	body()
}
