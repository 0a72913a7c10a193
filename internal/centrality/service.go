package centrality

import (
	"context"
	"fmt"

	"github.com/alexpan006/blockdash-api/internal/domain"
	"github.com/alexpan006/blockdash-api/internal/projection"
	"github.com/alexpan006/blockdash-api/internal/registry"
	"github.com/alexpan006/blockdash-api/internal/store"
)

// RankedNode is one scored node of a centrality ranking
type RankedNode struct {
	Kind       store.NodeKind `json:"type"`
	Value      string         `json:"value"`
	Collection string         `json:"collection,omitempty"`
	Link       string         `json:"link,omitempty"`
	Score      float64        `json:"score"`
}

// Ranking is the result of one degree centrality computation: the top nodes
// in engine order plus the relationships among exactly those nodes
type Ranking struct {
	Collection    string                        `json:"collection,omitempty"`
	Nodes         []RankedNode                  `json:"nodes"`
	Relationships []store.RelationshipAggregate `json:"relationships"`
}

// Service computes degree centrality rankings on demand
//
//go:generate mockgen -source=service.go -destination=../mocks/centrality_service.go -package=mocks -mock_names=Service=MockCentralityService
type Service interface {
	// TopCentralNodes ranks the most connected nodes, optionally filtered to
	// one collection. An empty slug spans the whole graph.
	TopCentralNodes(ctx context.Context, collectionSlug string, limit int) (*Ranking, error)
}

// service implements Service
type service struct {
	graph       store.GraphStore
	projections projection.ProjectionManager
	collections registry.CollectionRegistry
}

// NewService creates a centrality service
func NewService(graph store.GraphStore, projections projection.ProjectionManager, collections registry.CollectionRegistry) Service {
	return &service{
		graph:       graph,
		projections: projections,
		collections: collections,
	}
}

// TopCentralNodes runs one degree centrality pass inside the shared fixed-name
// projection. All centrality requests contend on that name; the lifecycle
// manager serializes them.
func (s *service) TopCentralNodes(ctx context.Context, collectionSlug string, limit int) (*Ranking, error) {
	collection := collectionSlug
	if collection == domain.COMPLETE_COLLECTION {
		collection = ""
	}
	if collection != "" {
		if _, err := s.collections.Get(collection); err != nil {
			return nil, err
		}
	}

	ranking := &Ranking{Collection: collection}
	spec := store.CentralityProjection(collection)

	err := s.projections.WithProjection(ctx, domain.CENTRALITY_PROJECTION_NAME, spec, func(ctx context.Context) error {
		scores, err := s.graph.RunDegreeCentrality(ctx, domain.CENTRALITY_PROJECTION_NAME, limit)
		if err != nil {
			return fmt.Errorf("failed to run degree centrality: %w", err)
		}

		elementIDs := make([]string, 0, len(scores))
		for _, score := range scores {
			ranking.Nodes = append(ranking.Nodes, s.rankedNode(score))
			elementIDs = append(elementIDs, score.ElementID)
		}

		if len(elementIDs) == 0 {
			return nil
		}

		relationships, err := s.graph.AggregateRelationships(ctx, elementIDs)
		if err != nil {
			return fmt.Errorf("failed to aggregate relationships: %w", err)
		}
		ranking.Relationships = relationships
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ranking, nil
}

// rankedNode converts a raw score into a ranking entry, attaching the
// explorer link for NFT nodes of tracked collections
func (s *service) rankedNode(score store.CentralityScore) RankedNode {
	node := RankedNode{
		Kind:       score.Kind,
		Value:      score.Value,
		Collection: score.Collection,
		Score:      score.Score,
	}
	if node.Kind == store.NodeKindNFT && node.Collection != "" {
		if collection, err := s.collections.Get(node.Collection); err == nil {
			node.Link = domain.EtherscanNFTURL(collection.ContractAddress, node.Value)
		}
	}
	return node
}
