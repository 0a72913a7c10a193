package community

import (
	"context"
	"fmt"

	"github.com/alexpan006/blockdash-api/internal/domain"
	"github.com/alexpan006/blockdash-api/internal/registry"
	"github.com/alexpan006/blockdash-api/internal/store"
)

// CommunityShare is the per-community composition breakdown of one scope
type CommunityShare struct {
	CommunityID int64   `json:"community_id"`
	Accounts    int64   `json:"accounts"`
	NFTs        int64   `json:"nfts"`
	NFTShare    float64 `json:"nft_share"`
}

// Reader answers community queries from the persisted detection results
//
//go:generate mockgen -source=reader.go -destination=../mocks/community_reader.go -package=mocks -mock_names=Reader=MockCommunityReader
type Reader interface {
	// Summary returns the collection's community summary record
	Summary(ctx context.Context, collectionSlug string) (*domain.CommunitySummary, error)

	// Members pages through one community's member nodes. NFT members carry
	// explorer links. Unknown communities map to domain.ErrCommunityNotFound.
	Members(ctx context.Context, collectionSlug string, scope domain.Scope, communityID int64, limit, offset int) ([]store.CommunityMember, error)

	// NFTShare breaks down each summary community of a scope into account
	// count, NFT count, and NFT share ratio
	NFTShare(ctx context.Context, collectionSlug string, scope domain.Scope) ([]CommunityShare, error)
}

// reader implements Reader
type reader struct {
	graph       store.GraphStore
	collections registry.CollectionRegistry
}

// NewReader creates a community reader
func NewReader(graph store.GraphStore, collections registry.CollectionRegistry) Reader {
	return &reader{
		graph:       graph,
		collections: collections,
	}
}

// splitSlug maps a requested slug to the summary node key and the membership
// property filter. The complete pseudo-collection (or an empty slug) reads
// the unfiltered variant.
func splitSlug(collectionSlug string) (summaryKey, filter string) {
	if collectionSlug == "" || collectionSlug == domain.COMPLETE_COLLECTION {
		return domain.COMPLETE_COLLECTION, ""
	}
	return collectionSlug, collectionSlug
}

func (r *reader) Summary(ctx context.Context, collectionSlug string) (*domain.CommunitySummary, error) {
	summaryKey, _ := splitSlug(collectionSlug)
	return r.graph.GetCommunitySummary(ctx, summaryKey)
}

func (r *reader) Members(ctx context.Context, collectionSlug string, scope domain.Scope, communityID int64, limit, offset int) ([]store.CommunityMember, error) {
	_, filter := splitSlug(collectionSlug)

	members, err := r.graph.GetCommunityMembers(ctx, filter, scope, communityID, limit, offset)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 && offset == 0 {
		return nil, domain.ErrCommunityNotFound
	}

	for i := range members {
		r.decorate(&members[i])
	}
	return members, nil
}

func (r *reader) NFTShare(ctx context.Context, collectionSlug string, scope domain.Scope) ([]CommunityShare, error) {
	summaryKey, filter := splitSlug(collectionSlug)

	summary, err := r.graph.GetCommunitySummary(ctx, summaryKey)
	if err != nil {
		return nil, err
	}

	communityIDs := summary.ScopeList(scope)
	shares := make([]CommunityShare, 0, len(communityIDs))
	for _, id := range communityIDs {
		composition, err := r.graph.CountCommunityComposition(ctx, filter, scope, id)
		if err != nil {
			return nil, fmt.Errorf("failed to count community %d composition: %w", id, err)
		}

		share := CommunityShare{
			CommunityID: id,
			Accounts:    composition.Accounts,
			NFTs:        composition.NFTs,
		}
		if total := composition.Accounts + composition.NFTs; total > 0 {
			share.NFTShare = float64(composition.NFTs) / float64(total)
		}
		shares = append(shares, share)
	}
	return shares, nil
}

// decorate attaches explorer links to NFT members whose collection is in the
// registry. Accounts and unknown collections stay bare.
func (r *reader) decorate(member *store.CommunityMember) {
	if member.Kind != store.NodeKindNFT || member.Collection == "" {
		return
	}

	collection, err := r.collections.Get(member.Collection)
	if err != nil {
		return
	}
	member.Link = domain.OpenSeaAssetURL(collection.ContractAddress, member.Value)
}
