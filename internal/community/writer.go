package community

import (
	"context"
	"fmt"
	"sort"

	"github.com/cenkalti/backoff/v4"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/alexpan006/blockdash-api/internal/adapter"
	"github.com/alexpan006/blockdash-api/internal/cache"
	"github.com/alexpan006/blockdash-api/internal/domain"
	"github.com/alexpan006/blockdash-api/internal/logger"
	"github.com/alexpan006/blockdash-api/internal/messaging"
	"github.com/alexpan006/blockdash-api/internal/projection"
	"github.com/alexpan006/blockdash-api/internal/store"
)

// publishMaxRetries bounds the best-effort graph event publish
const publishMaxRetries = 3

// Writer runs community detection and persists its results
//
//go:generate mockgen -source=writer.go -destination=../mocks/community_writer.go -package=mocks -mock_names=Writer=MockCommunityWriter
type Writer interface {
	// RunDetection detects communities for a collection across the three
	// scopes and persists memberships plus the top-K summary. An empty slug
	// runs the unfiltered complete variant.
	RunDetection(ctx context.Context, collectionSlug string, topK int) error
}

// writer implements Writer
type writer struct {
	graph       store.GraphStore
	projections projection.ProjectionManager
	cache       cache.Cache
	publisher   messaging.Publisher
	clock       adapter.Clock
}

// NewWriter creates a community detection writer. publisher and responseCache
// may be nil when the corresponding side effect is disabled.
func NewWriter(
	graph store.GraphStore,
	projections projection.ProjectionManager,
	responseCache cache.Cache,
	publisher messaging.Publisher,
	clock adapter.Clock,
) Writer {
	return &writer{
		graph:       graph,
		projections: projections,
		cache:       responseCache,
		publisher:   publisher,
		clock:       clock,
	}
}

// RunDetection walks the three scopes in order. Each scope projects its view
// of the graph, streams Louvain over it, writes the retained communities'
// memberships, and contributes its ordered id list to the summary. Any scope
// error aborts the remaining scopes; writes of completed scopes stand.
func (w *writer) RunDetection(ctx context.Context, collectionSlug string, topK int) error {
	collection := collectionSlug
	if collection == domain.COMPLETE_COLLECTION {
		collection = ""
	}
	// The summary node is keyed by the raw slug; the complete variant gets
	// the pseudo-collection key
	summaryKey := collection
	if summaryKey == "" {
		summaryKey = domain.COMPLETE_COLLECTION
	}

	now := w.clock.Now()
	summary := &domain.CommunitySummary{
		Collection: summaryKey,
		UpdatedAt:  now,
	}

	for _, scope := range domain.AllScopes() {
		ordered, err := w.detectScope(ctx, collection, scope, topK)
		if err != nil {
			return fmt.Errorf("failed to detect %s communities: %w", scope, err)
		}
		summary.SetScopeList(scope, ordered)

		logger.InfoCtx(ctx, "scope detection completed",
			zap.String("collection", summary.Collection),
			zap.String("scope", string(scope)),
			zap.Int("communities", len(ordered)))
	}

	if err := w.graph.ReplaceCommunitySummary(ctx, summaryKey, summary); err != nil {
		return fmt.Errorf("failed to replace community summary: %w", err)
	}

	if w.cache != nil {
		if err := w.cache.Invalidate(ctx, domain.COMMUNITY_CACHE_PREFIX); err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to invalidate community cache: %w", err))
		}
	}

	w.publish(ctx, &domain.GraphEvent{
		ID:          ulid.MustNewDefault(now).String(),
		Type:        domain.GraphEventCommunitiesRefreshed,
		Collection:  summary.Collection,
		OccurredAt:  now,
		Communities: len(summary.Combined),
	})

	return nil
}

// detectScope runs one scope's detection inside its projection and returns
// the retained community ids ordered by descending size
func (w *writer) detectScope(ctx context.Context, collection string, scope domain.Scope, topK int) ([]int64, error) {
	name := store.ScopeProjectionName(scope, collection)
	spec := store.ScopeProjection(scope, collection)

	var ordered []int64
	err := w.projections.WithProjection(ctx, name, spec, func(ctx context.Context) error {
		assignments, err := w.graph.RunLouvain(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to run louvain: %w", err)
		}

		retained, orderedIDs := topCommunities(assignments, topK)
		if err := w.graph.WriteMemberships(ctx, collection, scope, retained); err != nil {
			return fmt.Errorf("failed to write memberships: %w", err)
		}

		ordered = orderedIDs
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ordered, nil
}

// topCommunities groups assignments by community, orders communities by
// descending member count (ties by ascending id for stable output), and keeps
// the topK largest when topK is non-zero. Returns the retained assignments
// and the ordered community ids.
func topCommunities(assignments []store.CommunityAssignment, topK int) ([]store.CommunityAssignment, []int64) {
	counts := make(map[int64]int)
	for _, a := range assignments {
		counts[a.CommunityID]++
	}

	ordered := make([]int64, 0, len(counts))
	for id := range counts {
		ordered = append(ordered, id)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if counts[ordered[i]] != counts[ordered[j]] {
			return counts[ordered[i]] > counts[ordered[j]]
		}
		return ordered[i] < ordered[j]
	})

	if topK != 0 && len(ordered) > topK {
		ordered = ordered[:topK]
	}

	keep := make(map[int64]bool, len(ordered))
	for _, id := range ordered {
		keep[id] = true
	}

	retained := make([]store.CommunityAssignment, 0, len(assignments))
	for _, a := range assignments {
		if keep[a.CommunityID] {
			retained = append(retained, a)
		}
	}
	return retained, ordered
}

// publish sends a graph event with bounded backoff. Failures are logged, not
// returned.
func (w *writer) publish(ctx context.Context, event *domain.GraphEvent) {
	if w.publisher == nil {
		return
	}

	operation := func() error {
		return w.publisher.PublishGraphEvent(ctx, event)
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), publishMaxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to publish graph event: %w", err),
			zap.String("event_type", string(event.Type)),
			zap.String("collection", event.Collection))
	}
}
