package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/alexpan006/blockdash-api/internal/adapter"
	"github.com/alexpan006/blockdash-api/internal/cache"
	"github.com/alexpan006/blockdash-api/internal/domain"
	"github.com/alexpan006/blockdash-api/internal/logger"
	"github.com/alexpan006/blockdash-api/internal/messaging"
	"github.com/alexpan006/blockdash-api/internal/providers/opensea"
	"github.com/alexpan006/blockdash-api/internal/registry"
	"github.com/alexpan006/blockdash-api/internal/store"
	"github.com/alexpan006/blockdash-api/internal/store/schema"
)

// ErrSyncInProgress is returned when a run for the same collection is still in
// flight. Overlapping scheduled runs are skipped, never queued.
var ErrSyncInProgress = errors.New("sync already in progress for collection")

// publishMaxRetries bounds the best-effort graph event publish
const publishMaxRetries = 3

// StalenessGate decides whether an entity's last synchronization is old
// enough to warrant a refresh. It has no side effects.
type StalenessGate struct {
	// Threshold is the minimum elapsed time since the last sync
	Threshold time.Duration
}

// Due reports whether an entity last synced at lastSynced (unix seconds) is
// due for refresh at now. A zero lastSynced means never synchronized and is
// always due.
func (g StalenessGate) Due(lastSynced int64, now time.Time) bool {
	if lastSynced == 0 {
		return true
	}
	return now.Sub(time.Unix(lastSynced, 0)) >= g.Threshold
}

// UpdateSummary holds the counters of one ingestion run
type UpdateSummary struct {
	Collection    string    `json:"collection"`
	TokensChecked int       `json:"tokens_checked"`
	TokensDue     int       `json:"tokens_due"`
	TokensSynced  int       `json:"tokens_synced"`
	TokensFailed  int       `json:"tokens_failed"`
	EventsApplied int       `json:"events_applied"`
	EventsSkipped int       `json:"events_skipped"`
	StartedAt     time.Time `json:"started_at"`
}

// Synchronizer coordinates one collection's ingestion cycle: walk the tracked
// tokens, pull feed events for the stale ones, and apply them to the graph
//
//go:generate mockgen -source=sync.go -destination=../mocks/synchronizer.go -package=mocks -mock_names=Synchronizer=MockSynchronizer
type Synchronizer interface {
	// RunUpdate runs one ingestion cycle for a tracked collection
	RunUpdate(ctx context.Context, collectionSlug string, trigger schema.SyncRunTrigger) (*UpdateSummary, error)
}

// synchronizer implements Synchronizer
type synchronizer struct {
	collections registry.CollectionRegistry
	graph       store.GraphStore
	feed        opensea.Client
	journal     store.RunJournal
	cache       cache.Cache
	publisher   messaging.Publisher
	clock       adapter.Clock
	gate        StalenessGate

	// inFlight tracks collections with a running sync; keys are slugs
	inFlight sync.Map
}

// NewSynchronizer creates a synchronizer. publisher may be nil when event
// publishing is disabled; journal may be nil when no run journal is wired.
func NewSynchronizer(
	collections registry.CollectionRegistry,
	graph store.GraphStore,
	feed opensea.Client,
	journal store.RunJournal,
	responseCache cache.Cache,
	publisher messaging.Publisher,
	clock adapter.Clock,
	gate StalenessGate,
) Synchronizer {
	return &synchronizer{
		collections: collections,
		graph:       graph,
		feed:        feed,
		journal:     journal,
		cache:       responseCache,
		publisher:   publisher,
		clock:       clock,
		gate:        gate,
	}
}

// RunUpdate runs one ingestion cycle for a tracked collection. The walk is
// resilient: a feed error leaves the token at its prior sync time and moves
// on, an apply error skips that event only. The run fails only when the token
// listing itself cannot be read.
func (s *synchronizer) RunUpdate(ctx context.Context, collectionSlug string, trigger schema.SyncRunTrigger) (*UpdateSummary, error) {
	collection, err := s.collections.Get(collectionSlug)
	if err != nil {
		return nil, err
	}

	if _, loaded := s.inFlight.LoadOrStore(collection.Slug, struct{}{}); loaded {
		logger.WarnCtx(ctx, "skipping overlapping sync run", zap.String("collection", collection.Slug))
		return nil, ErrSyncInProgress
	}
	defer s.inFlight.Delete(collection.Slug)

	now := s.clock.Now()
	summary := &UpdateSummary{
		Collection: collection.Slug,
		StartedAt:  now,
	}

	runID := s.openRun(ctx, collection.Slug, trigger, now)

	tokens, err := s.graph.ListCollectionTokens(ctx, collection.Slug)
	if err != nil {
		err = fmt.Errorf("failed to list collection tokens: %w", err)
		s.failRun(ctx, runID, err)
		return nil, err
	}

	summary.TokensChecked = len(tokens)
	for _, token := range tokens {
		if !s.gate.Due(token.LastSynced, now) {
			continue
		}
		summary.TokensDue++

		if err := s.syncToken(ctx, collection, token, now.Unix(), summary); err != nil {
			// The token keeps its prior sync time and is retried next cycle
			summary.TokensFailed++
			logger.ErrorCtx(ctx, fmt.Errorf("failed to sync token: %w", err),
				zap.String("collection", collection.Slug),
				zap.String("identifier", token.Identifier))
			continue
		}

		if err := s.graph.SetTokenSyncTime(ctx, collection.Slug, token.Identifier, now.Unix()); err != nil {
			summary.TokensFailed++
			logger.ErrorCtx(ctx, fmt.Errorf("failed to record token sync time: %w", err),
				zap.String("collection", collection.Slug),
				zap.String("identifier", token.Identifier))
			continue
		}
		summary.TokensSynced++
	}

	s.finishCycle(ctx, collection.Slug, now, summary)
	s.completeRun(ctx, runID, summary)

	logger.InfoCtx(ctx, "sync run completed",
		zap.String("collection", collection.Slug),
		zap.Int("tokens_checked", summary.TokensChecked),
		zap.Int("tokens_due", summary.TokensDue),
		zap.Int("tokens_synced", summary.TokensSynced),
		zap.Int("tokens_failed", summary.TokensFailed),
		zap.Int("events_applied", summary.EventsApplied),
		zap.Int("events_skipped", summary.EventsSkipped))

	return summary, nil
}

// syncToken drains the feed cursor for one token and applies every event.
// Pagination runs until the feed returns an empty cursor; breaking after the
// first page would starve the walk on busy tokens.
func (s *synchronizer) syncToken(ctx context.Context, collection *domain.Collection, token store.TokenSyncState, until int64, summary *UpdateSummary) error {
	cursor := ""
	for {
		page, err := s.feed.ListEvents(ctx, collection.ContractAddress, token.Identifier, token.LastSynced, until, cursor)
		if err != nil {
			return fmt.Errorf("failed to list feed events: %w", err)
		}

		for _, event := range opensea.NormalizeEvents(ctx, page.AssetEvents, collection.Slug) {
			if err := s.graph.ApplyTransferEvent(ctx, event); err != nil {
				summary.EventsSkipped++
				logger.ErrorCtx(ctx, fmt.Errorf("failed to apply transfer event: %w", err),
					zap.String("collection", collection.Slug),
					zap.String("identifier", event.Identifier),
					zap.String("tx_hash", event.TxHash))
				continue
			}
			summary.EventsApplied++
		}

		if page.Next == "" {
			return nil
		}
		cursor = page.Next
	}
}

// finishCycle performs the post-walk bookkeeping: last-update marker, cache
// invalidation, and the best-effort graph event. None of these fail the run.
func (s *synchronizer) finishCycle(ctx context.Context, collection string, now time.Time, summary *UpdateSummary) {
	if s.cache != nil {
		if err := s.cache.SetLastUpdate(ctx, now); err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to set last update marker: %w", err))
		}
		if err := s.cache.Invalidate(ctx, domain.CACHE_KEY_PREFIX); err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to invalidate cache: %w", err))
		}
	}

	s.publish(ctx, &domain.GraphEvent{
		ID:            ulid.MustNewDefault(now).String(),
		Type:          domain.GraphEventSyncCompleted,
		Collection:    collection,
		OccurredAt:    now,
		TokensSynced:  summary.TokensSynced,
		EventsApplied: summary.EventsApplied,
	})
}

// publish sends a graph event with bounded backoff. Failures are logged, not
// returned.
func (s *synchronizer) publish(ctx context.Context, event *domain.GraphEvent) {
	if s.publisher == nil {
		return
	}

	operation := func() error {
		return s.publisher.PublishGraphEvent(ctx, event)
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), publishMaxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to publish graph event: %w", err),
			zap.String("event_type", string(event.Type)),
			zap.String("collection", event.Collection))
	}
}

// openRun opens a journal row for the run. Journal failures never fail the
// run; an empty id disables the completion updates.
func (s *synchronizer) openRun(ctx context.Context, collection string, trigger schema.SyncRunTrigger, now time.Time) string {
	if s.journal == nil {
		return ""
	}

	run := &schema.SyncRun{
		ID:         ulid.MustNewDefault(now).String(),
		Collection: collection,
		Trigger:    trigger,
		Status:     schema.SyncRunStatusRunning,
		StartedAt:  now,
	}
	if err := s.journal.CreateSyncRun(ctx, run); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to create sync run: %w", err),
			zap.String("collection", collection))
		return ""
	}
	return run.ID
}

func (s *synchronizer) completeRun(ctx context.Context, runID string, summary *UpdateSummary) {
	if s.journal == nil || runID == "" {
		return
	}

	stats, err := json.Marshal(summary)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to marshal run stats: %w", err))
		stats = nil
	}
	if err := s.journal.CompleteSyncRun(ctx, runID, datatypes.JSON(stats)); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to complete sync run: %w", err),
			zap.String("run_id", runID))
	}
}

func (s *synchronizer) failRun(ctx context.Context, runID string, runErr error) {
	if s.journal == nil || runID == "" {
		return
	}

	if err := s.journal.FailSyncRun(ctx, runID, runErr.Error()); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to mark sync run failed: %w", err),
			zap.String("run_id", runID))
	}
}
