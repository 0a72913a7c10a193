package analytics

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexpan006/blockdash-api/internal/domain"
	"github.com/alexpan006/blockdash-api/internal/registry"
	"github.com/alexpan006/blockdash-api/internal/store"
)

// ErrCollectionRequired is returned when an operation only defined for a
// concrete collection is asked for the complete graph
var ErrCollectionRequired = errors.New("operation requires a specific collection")

// ErrInvalidAddress is returned when a search address is not a 0x hex address
var ErrInvalidAddress = errors.New("not a valid 0x address")

// Ranking is the result of one activity ranking
type Ranking struct {
	Scope      domain.RankScope    `json:"scope"`
	Collection string              `json:"collection,omitempty"`
	Entries    []store.RankedCount `json:"entries"`
}

// Series pairs dates with one value per date. Daily series key days as
// YYYY-MM-DD, monthly series as YYYY-MM.
type Series struct {
	Dates  []string  `json:"dates"`
	Counts []float64 `json:"counts"`
}

// Coefficient selects an inequality measure
type Coefficient string

const (
	CoefficientGini     Coefficient = "gini"
	CoefficientNakamoto Coefficient = "nakamoto"
)

// Service answers activity rankings, node searches, temporal histories, and
// inequality measures from the graph
//
//go:generate mockgen -source=analytics.go -destination=../mocks/analytics_service.go -package=mocks -mock_names=Service=MockAnalyticsService
type Service interface {
	// Ranking ranks accounts or tokens by edge activity inside a window.
	// The ownership_changes scope requires a concrete collection.
	Ranking(ctx context.Context, scope domain.RankScope, collectionSlug string, window domain.TimeWindow, limit int) (*Ranking, error)

	// FindAccount fetches an account's neighborhood profile with its
	// per-collection ownership counts and community memberships
	FindAccount(ctx context.Context, address string) (*store.AccountProfile, error)

	// FindNFT fetches a token's neighborhood profile
	FindNFT(ctx context.Context, collectionSlug, identifier string) (*store.NFTProfile, error)

	// EventHistory counts transacted or mint edges per day across a window,
	// zero-filling days without events
	EventHistory(ctx context.Context, relation domain.RelationType, collectionSlug string, window domain.TimeWindow) (*Series, error)

	// ActiveAccountHistory counts the accounts active per day across a
	// window. The relation set picks what counts as activity: transacted
	// edges, mint edges, or both summed.
	ActiveAccountHistory(ctx context.Context, relations []domain.RelationType, collectionSlug string, window domain.TimeWindow) (*Series, error)

	// Inequality computes one inequality coefficient over the per-account
	// edge counts of a window. Empty windows report -1 for Gini and 0 for
	// Nakamoto.
	Inequality(ctx context.Context, coeff Coefficient, relation domain.RelationType, collectionSlug string, window domain.TimeWindow) (float64, error)

	// InequalityHistory computes one inequality coefficient per month of a
	// window. Months without data report -1.
	InequalityHistory(ctx context.Context, coeff Coefficient, relation domain.RelationType, collectionSlug string, window domain.TimeWindow) (*Series, error)
}

// service implements Service
type service struct {
	graph       store.GraphStore
	collections registry.CollectionRegistry
}

// NewService creates an analytics service
func NewService(graph store.GraphStore, collections registry.CollectionRegistry) Service {
	return &service{
		graph:       graph,
		collections: collections,
	}
}

// resolveCollection maps a requested slug to the store filter. The complete
// pseudo-collection (or an empty slug) reads the unfiltered graph; any other
// slug must be in the registry.
func (s *service) resolveCollection(collectionSlug string) (string, error) {
	if collectionSlug == "" || collectionSlug == domain.COMPLETE_COLLECTION {
		return "", nil
	}
	if _, err := s.collections.Get(collectionSlug); err != nil {
		return "", err
	}
	return collectionSlug, nil
}

func (s *service) Ranking(ctx context.Context, scope domain.RankScope, collectionSlug string, window domain.TimeWindow, limit int) (*Ranking, error) {
	collection, err := s.resolveCollection(collectionSlug)
	if err != nil {
		return nil, err
	}

	var entries []store.RankedCount
	switch scope {
	case domain.RankAccountTransaction:
		entries, err = s.graph.RankAccounts(ctx, domain.RelationTransacted, collection, window, limit)
	case domain.RankConcentrationOwnership:
		entries, err = s.graph.RankAccounts(ctx, domain.RelationOwned, collection, window, limit)
	case domain.RankContribution:
		entries, err = s.graph.RankAccounts(ctx, domain.RelationMint, collection, window, limit)
	case domain.RankOwnershipChanges:
		// Identifiers repeat across collections, so turnover needs the
		// collection to key the tokens
		if collection == "" {
			return nil, ErrCollectionRequired
		}
		entries, err = s.graph.RankTokenTurnover(ctx, collection, window, limit)
	default:
		return nil, domain.ErrRankScopeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to rank %s: %w", scope, err)
	}

	for i := range entries {
		s.decorateRanked(&entries[i])
	}

	return &Ranking{
		Scope:      scope,
		Collection: collection,
		Entries:    entries,
	}, nil
}

func (s *service) FindAccount(ctx context.Context, address string) (*store.AccountProfile, error) {
	if !domain.ValidAddress(address) {
		return nil, ErrInvalidAddress
	}
	address = domain.NormalizeAddress(address)

	profile, err := s.graph.GetAccountProfile(ctx, address)
	if err != nil {
		return nil, err
	}
	profile.Link = domain.EtherscanAddressURL(profile.Address)

	// One membership record per tracked collection plus the complete variant
	for _, collection := range s.collections.All() {
		membership, err := s.graph.GetMembershipRecord(ctx, collection.Slug, store.NodeKindAccount, address)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s membership: %w", collection.Slug, err)
		}
		profile.Communities[collection.Slug] = membership
	}
	membership, err := s.graph.GetMembershipRecord(ctx, "", store.NodeKindAccount, address)
	if err != nil {
		return nil, fmt.Errorf("failed to read complete membership: %w", err)
	}
	profile.Communities[domain.COMPLETE_COLLECTION] = membership

	s.decorateNeighborhood(profile.Neighbors, profile.Relationships)
	return profile, nil
}

func (s *service) FindNFT(ctx context.Context, collectionSlug, identifier string) (*store.NFTProfile, error) {
	collection, err := s.collections.Get(collectionSlug)
	if err != nil {
		return nil, err
	}

	profile, err := s.graph.GetNFTProfile(ctx, collectionSlug, identifier)
	if err != nil {
		return nil, err
	}
	profile.Link = domain.OpenSeaAssetURL(collection.ContractAddress, identifier)
	profile.EtherscanLink = domain.EtherscanNFTURL(collection.ContractAddress, identifier)

	s.decorateNeighborhood(profile.Neighbors, profile.Relationships)
	return profile, nil
}

// decorateRanked attaches the explorer link of one ranking entry
func (s *service) decorateRanked(entry *store.RankedCount) {
	if entry.Kind == store.NodeKindAccount {
		entry.Link = domain.EtherscanAddressURL(entry.Value)
		return
	}
	collection, err := s.collections.Get(entry.Collection)
	if err != nil {
		return
	}
	entry.Link = domain.OpenSeaAssetURL(collection.ContractAddress, entry.Value)
}

// decorateNeighborhood attaches explorer links to neighbors and edges
func (s *service) decorateNeighborhood(neighbors []store.CommunityMember, relationships []store.NeighborRelation) {
	for i := range neighbors {
		s.decorateMember(&neighbors[i])
	}
	for i := range relationships {
		s.decorateMember(&relationships[i].Counterparty)
		if relationships[i].TxHash != "" {
			relationships[i].TxLink = domain.EtherscanTxURL(relationships[i].TxHash)
		}
	}
}

func (s *service) decorateMember(member *store.CommunityMember) {
	if member.Kind == store.NodeKindAccount {
		member.Link = domain.EtherscanAddressURL(member.Value)
		return
	}
	collection, err := s.collections.Get(member.Collection)
	if err != nil {
		return
	}
	member.Link = domain.OpenSeaAssetURL(collection.ContractAddress, member.Value)
}
