package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexpan006/blockdash-api/internal/domain"
)

// NodeKind distinguishes account and token nodes in query results
type NodeKind string

const (
	NodeKindAccount NodeKind = "address"
	NodeKindNFT     NodeKind = "identifier"
)

// TokenSyncState holds the sync bookkeeping of one tracked token.
// LastSynced is a unix timestamp; 0 means the token was never synchronized.
type TokenSyncState struct {
	Identifier string
	LastSynced int64
}

// CommunityAssignment maps one graph node to the community a detection run
// placed it in. NodeID is the internal node id inside the projection's
// backing graph.
type CommunityAssignment struct {
	NodeID      int64
	CommunityID int64
}

// CommunityMember is one member node of a community
type CommunityMember struct {
	Kind       NodeKind `json:"type"`
	Value      string   `json:"value"`
	Collection string   `json:"collection,omitempty"`
	Link       string   `json:"link,omitempty"`
}

// CommunityComposition counts member nodes of a community by kind
type CommunityComposition struct {
	CommunityID int64 `json:"community_id"`
	Accounts    int64 `json:"accounts"`
	NFTs        int64 `json:"nfts"`
}

// CentralityScore is one scored node from a centrality run
type CentralityScore struct {
	ElementID  string   `json:"-"`
	Kind       NodeKind `json:"type"`
	Value      string   `json:"value"`
	Collection string   `json:"collection,omitempty"`
	Score      float64  `json:"score"`
}

// RelationshipAggregate groups the edges between one (source, target) node
// pair by relationship type
type RelationshipAggregate struct {
	From     CommunityMember `json:"from"`
	To       CommunityMember `json:"to"`
	Type     string          `json:"relationship_type"`
	Count    int64           `json:"count"`
	TxHashes []string        `json:"transaction_hashes,omitempty"`
}

// RankedCount is one entry of an activity ranking: a node and how many of
// the counted edges it carries inside the requested window
type RankedCount struct {
	Kind       NodeKind `json:"type"`
	Value      string   `json:"value"`
	Collection string   `json:"collection,omitempty"`
	Link       string   `json:"link,omitempty"`
	Count      int64    `json:"count"`
}

// DailyCount is one day of a temporal series, keyed YYYY-MM-DD
type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// NeighborRelation is one edge between a profiled node and a first-order
// neighbor. The per-type fields are populated for TRANSACTED and OWNED edges
// and stay empty otherwise.
type NeighborRelation struct {
	Type           string          `json:"relationship_type"`
	Counterparty   CommunityMember `json:"counterparty"`
	TxHash         string          `json:"transaction_hash,omitempty"`
	TxLink         string          `json:"transaction_link,omitempty"`
	EventType      string          `json:"event_type,omitempty"`
	Identifier     string          `json:"identifier,omitempty"`
	Collection     string          `json:"collection,omitempty"`
	CurrentlyOwned *bool           `json:"currently_owned,omitempty"`
	Timestamp      int64           `json:"timestamp,omitempty"`
}

// AccountProfile is the first-order neighborhood view of one account
type AccountProfile struct {
	Address       string                                `json:"address"`
	Link          string                                `json:"link,omitempty"`
	OwnedCounts   map[string]int64                      `json:"owned_counts"`
	Communities   map[string]domain.CommunityMembership `json:"communities"`
	Neighbors     []CommunityMember                     `json:"neighbors"`
	Relationships []NeighborRelation                    `json:"relationships"`
}

// NFTProfile is the first-order neighborhood view of one token
type NFTProfile struct {
	Identifier    string             `json:"identifier"`
	Collection    string             `json:"collection"`
	Link          string             `json:"link,omitempty"`
	EtherscanLink string             `json:"etherscan_link,omitempty"`
	Neighbors     []CommunityMember  `json:"neighbors"`
	Relationships []NeighborRelation `json:"relationships"`
}

// ProjectionSpec holds the node and relationship Cypher selection of a named
// projection. The collection-scoped and complete variants differ only in the
// filter predicate baked into the queries.
type ProjectionSpec struct {
	NodeQuery         string
	RelationshipQuery string
}

// GraphStore defines the graph database operations
//
//go:generate mockgen -source=graph.go -destination=../mocks/graph_store.go -package=mocks -mock_names=GraphStore=MockGraphStore
type GraphStore interface {
	// GetUpdateFrequency reads the persisted refresh frequency of a collection
	// in seconds. Returns domain.ErrCollectionNotFound when no frequency node
	// exists for the collection.
	GetUpdateFrequency(ctx context.Context, collection string) (int64, error)
	// SetUpdateFrequency upserts the refresh frequency of a collection
	SetUpdateFrequency(ctx context.Context, collection string, seconds int64) error

	// ListCollectionTokens enumerates the tracked tokens of a collection with
	// their last-synchronized unix timestamps
	ListCollectionTokens(ctx context.Context, collection string) ([]TokenSyncState, error)
	// ApplyTransferEvent applies one feed event to the graph. The procedure is
	// idempotent: re-applying an event with the same (transaction hash,
	// identifier) key is a no-op.
	ApplyTransferEvent(ctx context.Context, event *domain.TransferEvent) error
	// SetTokenSyncTime records the last-synchronized timestamp of a token
	SetTokenSyncTime(ctx context.Context, collection, identifier string, syncedAt int64) error
	// EnsureToken creates the NFT node for a token if it does not exist yet
	EnsureToken(ctx context.Context, collection, identifier string) error

	// WriteMemberships overwrites the scope slot of the per-collection
	// membership record on every assigned node
	WriteMemberships(ctx context.Context, collection string, scope domain.Scope, assignments []CommunityAssignment) error
	// ReplaceCommunitySummary replaces the collection's community summary
	// wholesale, all three scope lists at once
	ReplaceCommunitySummary(ctx context.Context, collection string, summary *domain.CommunitySummary) error
	// GetCommunitySummary reads the collection's community summary. Returns
	// domain.ErrCommunityNotFound when no summary was written yet.
	GetCommunitySummary(ctx context.Context, collection string) (*domain.CommunitySummary, error)
	// GetCommunityMembers pages through the member nodes of one community
	GetCommunityMembers(ctx context.Context, collection string, scope domain.Scope, communityID int64, limit, offset int) ([]CommunityMember, error)
	// CountCommunityComposition counts the account and NFT members of one community
	CountCommunityComposition(ctx context.Context, collection string, scope domain.Scope, communityID int64) (*CommunityComposition, error)

	// ListProjections returns the names in the analytics engine's projection
	// directory. The directory is the only source of truth for projection
	// existence.
	ListProjections(ctx context.Context) ([]string, error)
	// CreateProjection creates a named projection from a spec
	CreateProjection(ctx context.Context, name string, spec ProjectionSpec) error
	// DropProjection drops a named projection
	DropProjection(ctx context.Context, name string) error

	// GetMembershipRecord reads a node's per-collection membership record,
	// one community id per scope. Slots no detection run wrote yet report
	// domain.UnassignedCommunity.
	GetMembershipRecord(ctx context.Context, collection string, kind NodeKind, value string) (domain.CommunityMembership, error)

	// RankAccounts counts one edge type per account inside a time window and
	// returns the top accounts by descending count
	RankAccounts(ctx context.Context, relation domain.RelationType, collection string, window domain.TimeWindow, limit int) ([]RankedCount, error)
	// RankTokenTurnover counts ownership edges per token of one collection
	// inside a time window and returns the top tokens by descending count
	RankTokenTurnover(ctx context.Context, collection string, window domain.TimeWindow, limit int) ([]RankedCount, error)

	// GetAccountProfile fetches an account with its first-order neighborhood.
	// Returns domain.ErrAccountNotFound for unknown addresses.
	GetAccountProfile(ctx context.Context, address string) (*AccountProfile, error)
	// GetNFTProfile fetches a token with its first-order neighborhood.
	// Returns domain.ErrNFTNotFound for unknown tokens.
	GetNFTProfile(ctx context.Context, collection, identifier string) (*NFTProfile, error)

	// CountDailyEvents counts transacted or mint edges per day inside a
	// window. Days without events are absent from the result.
	CountDailyEvents(ctx context.Context, relation domain.RelationType, collection string, window domain.TimeWindow) ([]DailyCount, error)
	// CountDailyActiveAccounts counts the distinct accounts with at least one
	// transacted or mint edge per day inside a window
	CountDailyActiveAccounts(ctx context.Context, relation domain.RelationType, collection string, window domain.TimeWindow) ([]DailyCount, error)
	// CountAccountEvents returns the per-account transacted or mint edge
	// counts inside a window, ascending, one entry per active account
	CountAccountEvents(ctx context.Context, relation domain.RelationType, collection string, window domain.TimeWindow) ([]int64, error)
	// CountAccountOwnership returns the per-account count of ownerships
	// active during one month, ascending
	CountAccountOwnership(ctx context.Context, collection string, year, month int) ([]int64, error)

	// RunLouvain executes Louvain community detection over a projection
	RunLouvain(ctx context.Context, projection string) ([]CommunityAssignment, error)
	// RunDegreeCentrality executes degree centrality over a projection and
	// returns the top nodes by score in the order the engine yields them
	RunDegreeCentrality(ctx context.Context, projection string, limit int) ([]CentralityScore, error)
	// AggregateRelationships fetches the edges between exactly the given node
	// set, grouped by (source, target, relationship type)
	AggregateRelationships(ctx context.Context, elementIDs []string) ([]RelationshipAggregate, error)

	// Close releases the underlying driver
	Close(ctx context.Context) error
}

// PropertySlug converts a collection slug into a form usable inside a Neo4j
// property name. An empty slug maps to the complete pseudo-collection.
func PropertySlug(collection string) string {
	if collection == "" {
		return domain.COMPLETE_COLLECTION
	}
	return strings.ReplaceAll(collection, "-", "_")
}

// MembershipProperty is the node property holding a collection's community id
// for one scope
func MembershipProperty(collection string, scope domain.Scope) string {
	slot := "combined"
	switch scope {
	case domain.ScopeOwnership:
		slot = "ownership"
	case domain.ScopeTransaction:
		slot = "transaction"
	}
	return fmt.Sprintf("%s_community_%s", PropertySlug(collection), slot)
}

// ScopeProjectionName is the projection name of one detection scope. An empty
// collection yields the complete variant's name.
func ScopeProjectionName(scope domain.Scope, collection string) string {
	slug := PropertySlug(collection)
	switch scope {
	case domain.ScopeOwnership:
		return slug + "_owned"
	case domain.ScopeTransaction:
		return slug + "_trx"
	default:
		return slug + "_owned_trx"
	}
}

// ScopeProjection builds the projection spec of one detection scope. A
// non-empty collection adds the filter predicate; the complete variant keeps
// the same shape without it.
func ScopeProjection(scope domain.Scope, collection string) ProjectionSpec {
	nftFilter := ""
	trxFilter := ""
	if collection != "" {
		nftFilter = fmt.Sprintf(` WHERE m.collection = "%s"`, collection)
		trxFilter = fmt.Sprintf(` WHERE r.collection_name = "%s"`, collection)
	}

	nftNodeFilter := ""
	if collection != "" {
		nftNodeFilter = fmt.Sprintf(` WHERE n.collection = "%s"`, collection)
	}

	accountAndNFTs := fmt.Sprintf(
		`MATCH (n:Account) RETURN id(n) AS id UNION MATCH (n:NFT)%s RETURN id(n) AS id`,
		nftNodeFilter,
	)
	ownedEdges := fmt.Sprintf(
		`MATCH (n:Account)-[r:OWNED]->(m:NFT)%s RETURN id(n) AS source, id(m) AS target`,
		nftFilter,
	)
	transactedEdges := fmt.Sprintf(
		`MATCH (n:Account)-[r:TRANSACTED]->(m:Account)%s RETURN id(n) AS source, id(m) AS target`,
		trxFilter,
	)

	switch scope {
	case domain.ScopeOwnership:
		return ProjectionSpec{
			NodeQuery:         accountAndNFTs,
			RelationshipQuery: ownedEdges,
		}
	case domain.ScopeTransaction:
		return ProjectionSpec{
			NodeQuery:         `MATCH (n:Account) RETURN id(n) AS id`,
			RelationshipQuery: transactedEdges,
		}
	default:
		return ProjectionSpec{
			NodeQuery:         accountAndNFTs,
			RelationshipQuery: ownedEdges + ` UNION ` + transactedEdges,
		}
	}
}

// CentralityProjection builds the projection spec for the fixed centrality
// projection, filtered by collection or spanning the whole graph when the
// collection is empty
func CentralityProjection(collection string) ProjectionSpec {
	if collection == "" {
		return ProjectionSpec{
			NodeQuery: `MATCH (n) WHERE n:Account OR n:NFT RETURN id(n) AS id`,
			RelationshipQuery: `MATCH (n1)-[r]->(n2) WHERE type(r) IN ["MINT", "OWNED", "TRANSACTED"] ` +
				`RETURN id(n1) AS source, id(n2) AS target`,
		}
	}
	nodeQuery := fmt.Sprintf(
		`MATCH (n:NFT) WHERE n.collection = "%s" RETURN id(n) AS id `+
			`UNION MATCH (a:Account)-[r:TRANSACTED]->() WHERE r.collection_name = "%s" RETURN id(a) AS id `+
			`UNION MATCH (a:Account)-[r:OWNED]->(m:NFT) WHERE m.collection = "%s" RETURN id(a) AS id`,
		collection, collection, collection,
	)
	return ProjectionSpec{
		NodeQuery: nodeQuery,
		RelationshipQuery: `MATCH (n1)-[r]->(n2) WHERE type(r) IN ["MINT", "OWNED", "TRANSACTED"] ` +
			`RETURN id(n1) AS source, id(n2) AS target`,
	}
}
