package store

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/alexpan006/blockdash-api/internal/domain"
	"github.com/alexpan006/blockdash-api/internal/logger"
)

// neo4jStore implements GraphStore over the Neo4j bolt driver
type neo4jStore struct {
	driver   neo4j.DriverWithContext
	database string
}

// NewNeo4jStore creates a graph store bound to one named database
func NewNeo4jStore(driver neo4j.DriverWithContext, database string) GraphStore {
	return &neo4jStore{
		driver:   driver,
		database: database,
	}
}

// Connect dials the Neo4j server and verifies connectivity
func Connect(ctx context.Context, uri, username, password string) (neo4j.DriverWithContext, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to create Neo4j driver: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		return nil, fmt.Errorf("failed to verify Neo4j connectivity: %w", err)
	}
	return driver, nil
}

func (s *neo4jStore) session(ctx context.Context, mode neo4j.AccessMode) neo4j.SessionWithContext {
	return s.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   mode,
		DatabaseName: s.database,
	})
}

// Close releases the underlying driver
func (s *neo4jStore) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

// GetUpdateFrequency reads the persisted refresh frequency of a collection
func (s *neo4jStore) GetUpdateFrequency(ctx context.Context, collection string) (int64, error) {
	session := s.session(ctx, neo4j.AccessModeRead)
	defer session.Close(ctx)

	query := `
		MATCH (n:UpdateFrequency {collection: $collection})
		RETURN n.seconds AS seconds
	`
	result, err := session.Run(ctx, query, map[string]interface{}{
		"collection": collection,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to query update frequency: %w", err)
	}

	if !result.Next(ctx) {
		if err := result.Err(); err != nil {
			return 0, fmt.Errorf("failed to read update frequency: %w", err)
		}
		return 0, domain.ErrCollectionNotFound
	}

	return getInt64FromRecord(result.Record(), "seconds"), nil
}

// SetUpdateFrequency upserts the refresh frequency of a collection
func (s *neo4jStore) SetUpdateFrequency(ctx context.Context, collection string, seconds int64) error {
	session := s.session(ctx, neo4j.AccessModeWrite)
	defer session.Close(ctx)

	query := `
		MERGE (n:UpdateFrequency {collection: $collection})
		SET n.seconds = $seconds
	`
	_, err := session.Run(ctx, query, map[string]interface{}{
		"collection": collection,
		"seconds":    seconds,
	})
	if err != nil {
		return fmt.Errorf("failed to set update frequency: %w", err)
	}

	logger.InfoCtx(ctx, "Update frequency persisted",
		zap.String("collection", collection),
		zap.Int64("seconds", seconds),
	)
	return nil
}

// ListCollectionTokens enumerates the tracked tokens of a collection with
// their last-synchronized unix timestamps
func (s *neo4jStore) ListCollectionTokens(ctx context.Context, collection string) ([]TokenSyncState, error) {
	session := s.session(ctx, neo4j.AccessModeRead)
	defer session.Close(ctx)

	query := `
		MATCH (n:NFT {collection: $collection})
		RETURN n.identifier AS identifier, coalesce(n.last_synced, 0) AS last_synced
	`
	result, err := session.Run(ctx, query, map[string]interface{}{
		"collection": collection,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list collection tokens: %w", err)
	}

	var tokens []TokenSyncState
	for result.Next(ctx) {
		record := result.Record()
		tokens = append(tokens, TokenSyncState{
			Identifier: getStringFromRecord(record, "identifier"),
			LastSynced: getInt64FromRecord(record, "last_synced"),
		})
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read collection tokens: %w", err)
	}

	return tokens, nil
}

// EnsureToken creates the NFT node for a token if it does not exist yet
func (s *neo4jStore) EnsureToken(ctx context.Context, collection, identifier string) error {
	session := s.session(ctx, neo4j.AccessModeWrite)
	defer session.Close(ctx)

	query := `
		MERGE (n:NFT {collection: $collection, identifier: $identifier})
		ON CREATE SET n.last_synced = 0
	`
	_, err := session.Run(ctx, query, map[string]interface{}{
		"collection": collection,
		"identifier": identifier,
	})
	if err != nil {
		return fmt.Errorf("failed to ensure token node: %w", err)
	}
	return nil
}

// SetTokenSyncTime records the last-synchronized timestamp of a token
func (s *neo4jStore) SetTokenSyncTime(ctx context.Context, collection, identifier string, syncedAt int64) error {
	session := s.session(ctx, neo4j.AccessModeWrite)
	defer session.Close(ctx)

	query := `
		MATCH (n:NFT {collection: $collection, identifier: $identifier})
		SET n.last_synced = $synced_at
	`
	_, err := session.Run(ctx, query, map[string]interface{}{
		"collection": collection,
		"identifier": identifier,
		"synced_at":  syncedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to set token sync time: %w", err)
	}
	return nil
}

// ApplyTransferEvent applies one feed event to the graph inside a single
// write transaction. The (transaction hash, identifier) existence gate makes
// the whole procedure idempotent: overlapping feed windows re-deliver events,
// and the second application must leave the graph untouched.
func (s *neo4jStore) ApplyTransferEvent(ctx context.Context, event *domain.TransferEvent) error {
	session := s.session(ctx, neo4j.AccessModeWrite)
	defer session.Close(ctx)

	applied, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		wasApplied, err := s.applyEventTx(ctx, tx, event)
		return wasApplied, err
	})
	if err != nil {
		return fmt.Errorf("failed to apply transfer event: %w", err)
	}

	if wasApplied, ok := applied.(bool); ok && !wasApplied {
		logger.DebugCtx(ctx, "Transfer event already applied, skipping",
			zap.String("transaction_hash", event.TxHash),
			zap.String("identifier", event.Identifier),
		)
	}
	return nil
}

func (s *neo4jStore) applyEventTx(ctx context.Context, tx neo4j.ManagedTransaction, event *domain.TransferEvent) (bool, error) {
	// Idempotence gate: the (transaction hash, identifier) pair keys the event
	gate := `
		MATCH ()-[t:TRANSACTED {transaction_hash: $transaction_hash, identifier: $identifier}]->()
		RETURN t LIMIT 1
	`
	result, err := tx.Run(ctx, gate, map[string]interface{}{
		"transaction_hash": event.TxHash,
		"identifier":       event.Identifier,
	})
	if err != nil {
		return false, err
	}
	if result.Next(ctx) {
		return false, result.Err()
	}
	if err := result.Err(); err != nil {
		return false, err
	}

	// Create-if-absent for both accounts and the token
	upsert := `
		MERGE (from:Account {address: $from})
		MERGE (to:Account {address: $to})
		MERGE (nft:NFT {collection: $collection, identifier: $identifier})
		ON CREATE SET nft.last_synced = 0
	`
	if _, err := tx.Run(ctx, upsert, map[string]interface{}{
		"from":       event.From,
		"to":         event.To,
		"collection": event.Collection,
		"identifier": event.Identifier,
	}); err != nil {
		return false, err
	}

	// Close whichever edge currently holds the ownership flag. The feed may
	// deliver events out of order, so the previous holder is looked up on the
	// token, not assumed to be the event's sender.
	closePrior := `
		MATCH (nft:NFT {collection: $collection, identifier: $identifier})
		OPTIONAL MATCH (:Account)-[o:OWNED {currently_owned: true}]->(nft)
		SET o.currently_owned = false, o.until = $timestamp
	`
	if _, err := tx.Run(ctx, closePrior, map[string]interface{}{
		"collection": event.Collection,
		"identifier": event.Identifier,
		"timestamp":  event.Timestamp,
	}); err != nil {
		return false, err
	}

	// Open the new holder's edge with the open-until sentinel
	open := `
		MATCH (to:Account {address: $to}), (nft:NFT {collection: $collection, identifier: $identifier})
		MERGE (to)-[r:OWNED]->(nft)
		SET r.currently_owned = true, r.from = $timestamp, r.until = 0
	`
	if _, err := tx.Run(ctx, open, map[string]interface{}{
		"to":         event.To,
		"collection": event.Collection,
		"identifier": event.Identifier,
		"timestamp":  event.Timestamp,
	}); err != nil {
		return false, err
	}

	// Append-only transaction log entry
	appendTrx := `
		MATCH (from:Account {address: $from}), (to:Account {address: $to})
		CREATE (from)-[:TRANSACTED {
			event_type: $event_type,
			collection_name: $collection,
			transaction_hash: $transaction_hash,
			transaction_timestamp: $timestamp,
			identifier: $identifier,
			payment_quantity: $payment_quantity,
			payment_symbol: $payment_symbol,
			payment_decimals: $payment_decimals,
			payment_token: $payment_token
		}]->(to)
	`
	if _, err := tx.Run(ctx, appendTrx, map[string]interface{}{
		"from":             event.From,
		"to":               event.To,
		"event_type":       event.Type.EdgeLabel(),
		"collection":       event.Collection,
		"transaction_hash": event.TxHash,
		"timestamp":        event.Timestamp,
		"identifier":       event.Identifier,
		"payment_quantity": event.Payment.Quantity,
		"payment_symbol":   event.Payment.Symbol,
		"payment_decimals": event.Payment.Decimals,
		"payment_token":    event.Payment.TokenAddress,
	}); err != nil {
		return false, err
	}

	// Zero-address sender means a mint; one MINT edge per (account, token)
	if event.Mint() {
		mint := `
			MATCH (to:Account {address: $to}), (nft:NFT {collection: $collection, identifier: $identifier})
			MERGE (to)-[m:MINT]->(nft)
			ON CREATE SET m.timestamp = $timestamp
		`
		if _, err := tx.Run(ctx, mint, map[string]interface{}{
			"to":         event.To,
			"collection": event.Collection,
			"identifier": event.Identifier,
			"timestamp":  event.Timestamp,
		}); err != nil {
			return false, err
		}
	}

	return true, nil
}

// WriteMemberships overwrites the scope slot of the per-collection membership
// record on every assigned node. Property names cannot be parameterized in
// Cypher, so the membership property is formatted into the query.
func (s *neo4jStore) WriteMemberships(ctx context.Context, collection string, scope domain.Scope, assignments []CommunityAssignment) error {
	if len(assignments) == 0 {
		return nil
	}

	session := s.session(ctx, neo4j.AccessModeWrite)
	defer session.Close(ctx)

	batch := make([]map[string]interface{}, 0, len(assignments))
	for _, a := range assignments {
		batch = append(batch, map[string]interface{}{
			"node_id":      a.NodeID,
			"community_id": a.CommunityID,
		})
	}

	query := fmt.Sprintf(`
		UNWIND $batch AS row
		MATCH (n)
		WHERE (n:Account OR n:NFT) AND id(n) = row.node_id
		SET n.%s = row.community_id
	`, MembershipProperty(collection, scope))

	_, err := session.Run(ctx, query, map[string]interface{}{
		"batch": batch,
	})
	if err != nil {
		return fmt.Errorf("failed to write community memberships: %w", err)
	}

	logger.InfoCtx(ctx, "Community memberships written",
		zap.String("collection", collection),
		zap.String("scope", string(scope)),
		zap.Int("nodes", len(assignments)),
	)
	return nil
}

// ReplaceCommunitySummary replaces the collection's community summary wholesale
func (s *neo4jStore) ReplaceCommunitySummary(ctx context.Context, collection string, summary *domain.CommunitySummary) error {
	session := s.session(ctx, neo4j.AccessModeWrite)
	defer session.Close(ctx)

	query := `
		MERGE (n:CommunitySummary {collection: $collection})
		SET n.summary_ownership = $ownership,
			n.summary_transaction = $transaction,
			n.summary_combined = $combined,
			n.updated_at = $updated_at
	`
	_, err := session.Run(ctx, query, map[string]interface{}{
		"collection":  collection,
		"ownership":   summary.Ownership,
		"transaction": summary.Transaction,
		"combined":    summary.Combined,
		"updated_at":  summary.UpdatedAt.Unix(),
	})
	if err != nil {
		return fmt.Errorf("failed to replace community summary: %w", err)
	}
	return nil
}

// GetCommunitySummary reads the collection's community summary
func (s *neo4jStore) GetCommunitySummary(ctx context.Context, collection string) (*domain.CommunitySummary, error) {
	session := s.session(ctx, neo4j.AccessModeRead)
	defer session.Close(ctx)

	query := `
		MATCH (n:CommunitySummary {collection: $collection})
		RETURN n.summary_ownership AS ownership,
			n.summary_transaction AS transaction,
			n.summary_combined AS combined,
			n.updated_at AS updated_at
	`
	result, err := session.Run(ctx, query, map[string]interface{}{
		"collection": collection,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query community summary: %w", err)
	}

	if !result.Next(ctx) {
		if err := result.Err(); err != nil {
			return nil, fmt.Errorf("failed to read community summary: %w", err)
		}
		return nil, domain.ErrCommunityNotFound
	}

	record := result.Record()
	return &domain.CommunitySummary{
		Collection:  collection,
		Ownership:   getInt64ListFromRecord(record, "ownership"),
		Transaction: getInt64ListFromRecord(record, "transaction"),
		Combined:    getInt64ListFromRecord(record, "combined"),
		UpdatedAt:   time.Unix(getInt64FromRecord(record, "updated_at"), 0).UTC(),
	}, nil
}

// GetCommunityMembers pages through the member nodes of one community
func (s *neo4jStore) GetCommunityMembers(ctx context.Context, collection string, scope domain.Scope, communityID int64, limit, offset int) ([]CommunityMember, error) {
	session := s.session(ctx, neo4j.AccessModeRead)
	defer session.Close(ctx)

	query := fmt.Sprintf(`
		MATCH (n)
		WHERE (n:Account OR n:NFT) AND n.%s = $community_id
		RETURN labels(n) AS labels, n.address AS address, n.identifier AS identifier, n.collection AS collection
		ORDER BY coalesce(n.address, n.identifier)
		SKIP $offset LIMIT $limit
	`, MembershipProperty(collection, scope))

	result, err := session.Run(ctx, query, map[string]interface{}{
		"community_id": communityID,
		"offset":       offset,
		"limit":        limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query community members: %w", err)
	}

	var members []CommunityMember
	for result.Next(ctx) {
		members = append(members, memberFromRecord(result.Record()))
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read community members: %w", err)
	}

	return members, nil
}

// CountCommunityComposition counts the account and NFT members of one community
func (s *neo4jStore) CountCommunityComposition(ctx context.Context, collection string, scope domain.Scope, communityID int64) (*CommunityComposition, error) {
	session := s.session(ctx, neo4j.AccessModeRead)
	defer session.Close(ctx)

	query := fmt.Sprintf(`
		MATCH (n)
		WHERE (n:Account OR n:NFT) AND n.%s = $community_id
		RETURN sum(CASE WHEN n:Account THEN 1 ELSE 0 END) AS accounts,
			sum(CASE WHEN n:NFT THEN 1 ELSE 0 END) AS nfts
	`, MembershipProperty(collection, scope))

	result, err := session.Run(ctx, query, map[string]interface{}{
		"community_id": communityID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count community composition: %w", err)
	}

	if !result.Next(ctx) {
		if err := result.Err(); err != nil {
			return nil, fmt.Errorf("failed to read community composition: %w", err)
		}
		return nil, domain.ErrCommunityNotFound
	}

	record := result.Record()
	composition := &CommunityComposition{
		CommunityID: communityID,
		Accounts:    getInt64FromRecord(record, "accounts"),
		NFTs:        getInt64FromRecord(record, "nfts"),
	}
	if composition.Accounts == 0 && composition.NFTs == 0 {
		return nil, domain.ErrCommunityNotFound
	}
	return composition, nil
}

// ListProjections returns the names in the projection directory
func (s *neo4jStore) ListProjections(ctx context.Context) ([]string, error) {
	session := s.session(ctx, neo4j.AccessModeRead)
	defer session.Close(ctx)

	result, err := session.Run(ctx, `CALL gds.graph.list() YIELD graphName RETURN graphName`, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list projections: %w", err)
	}

	var names []string
	for result.Next(ctx) {
		names = append(names, getStringFromRecord(result.Record(), "graphName"))
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read projection list: %w", err)
	}
	return names, nil
}

// CreateProjection creates a named projection from a spec
func (s *neo4jStore) CreateProjection(ctx context.Context, name string, spec ProjectionSpec) error {
	session := s.session(ctx, neo4j.AccessModeWrite)
	defer session.Close(ctx)

	query := `
		CALL gds.graph.project.cypher($name, $node_query, $relationship_query, {validateRelationships: false})
	`
	_, err := session.Run(ctx, query, map[string]interface{}{
		"name":               name,
		"node_query":         spec.NodeQuery,
		"relationship_query": spec.RelationshipQuery,
	})
	if err != nil {
		return fmt.Errorf("failed to create projection %s: %w", name, err)
	}
	return nil
}

// DropProjection drops a named projection
func (s *neo4jStore) DropProjection(ctx context.Context, name string) error {
	session := s.session(ctx, neo4j.AccessModeWrite)
	defer session.Close(ctx)

	_, err := session.Run(ctx, `CALL gds.graph.drop($name)`, map[string]interface{}{
		"name": name,
	})
	if err != nil {
		return fmt.Errorf("failed to drop projection %s: %w", name, err)
	}
	return nil
}

// RunLouvain executes Louvain community detection over a projection
func (s *neo4jStore) RunLouvain(ctx context.Context, projection string) ([]CommunityAssignment, error) {
	session := s.session(ctx, neo4j.AccessModeRead)
	defer session.Close(ctx)

	query := `
		CALL gds.louvain.stream($name)
		YIELD nodeId, communityId
		RETURN nodeId, communityId
	`
	result, err := session.Run(ctx, query, map[string]interface{}{
		"name": projection,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to run Louvain on %s: %w", projection, err)
	}

	var assignments []CommunityAssignment
	for result.Next(ctx) {
		record := result.Record()
		assignments = append(assignments, CommunityAssignment{
			NodeID:      getInt64FromRecord(record, "nodeId"),
			CommunityID: getInt64FromRecord(record, "communityId"),
		})
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read Louvain stream: %w", err)
	}
	return assignments, nil
}

// RunDegreeCentrality executes degree centrality over a projection and returns
// the top nodes by score
func (s *neo4jStore) RunDegreeCentrality(ctx context.Context, projection string, limit int) ([]CentralityScore, error) {
	session := s.session(ctx, neo4j.AccessModeRead)
	defer session.Close(ctx)

	query := `
		CALL gds.degree.stream($name, { orientation: 'UNDIRECTED' })
		YIELD nodeId, score
		WITH gds.util.asNode(nodeId) AS node, score
		RETURN elementId(node) AS element_id, labels(node) AS labels,
			node.address AS address, node.identifier AS identifier,
			node.collection AS collection, score
		ORDER BY score DESC
		LIMIT $limit
	`
	result, err := session.Run(ctx, query, map[string]interface{}{
		"name":  projection,
		"limit": limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to run degree centrality on %s: %w", projection, err)
	}

	var scores []CentralityScore
	for result.Next(ctx) {
		record := result.Record()
		member := memberFromRecord(record)
		scores = append(scores, CentralityScore{
			ElementID:  getStringFromRecord(record, "element_id"),
			Kind:       member.Kind,
			Value:      member.Value,
			Collection: member.Collection,
			Score:      getFloat64FromRecord(record, "score"),
		})
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read centrality stream: %w", err)
	}
	return scores, nil
}

// AggregateRelationships fetches the edges between exactly the given node set,
// grouped by (source, target, relationship type)
func (s *neo4jStore) AggregateRelationships(ctx context.Context, elementIDs []string) ([]RelationshipAggregate, error) {
	if len(elementIDs) == 0 {
		return nil, nil
	}

	session := s.session(ctx, neo4j.AccessModeRead)
	defer session.Close(ctx)

	query := `
		UNWIND $element_ids AS nodeId
		MATCH (node)-[r]->(other)
		WHERE elementId(node) = nodeId AND elementId(other) IN $element_ids
		RETURN labels(node) AS from_labels, node.address AS from_address,
			node.identifier AS from_identifier, node.collection AS from_collection,
			labels(other) AS to_labels, other.address AS to_address,
			other.identifier AS to_identifier, other.collection AS to_collection,
			type(r) AS relationship_type, count(r) AS relationship_count,
			collect(r.transaction_hash) AS transaction_hashes
	`
	result, err := session.Run(ctx, query, map[string]interface{}{
		"element_ids": elementIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate relationships: %w", err)
	}

	var aggregates []RelationshipAggregate
	for result.Next(ctx) {
		record := result.Record()
		aggregate := RelationshipAggregate{
			From:  prefixedMemberFromRecord(record, "from_"),
			To:    prefixedMemberFromRecord(record, "to_"),
			Type:  getStringFromRecord(record, "relationship_type"),
			Count: getInt64FromRecord(record, "relationship_count"),
		}
		if aggregate.Type == "TRANSACTED" {
			aggregate.TxHashes = getStringListFromRecord(record, "transaction_hashes")
		}
		aggregates = append(aggregates, aggregate)
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read relationship aggregates: %w", err)
	}
	return aggregates, nil
}

// memberFromRecord builds a community member from the labels/address/
// identifier/collection columns of a record
func memberFromRecord(record *neo4j.Record) CommunityMember {
	return buildMember(
		getStringListFromRecord(record, "labels"),
		getStringFromRecord(record, "address"),
		getStringFromRecord(record, "identifier"),
		getStringFromRecord(record, "collection"),
	)
}

func prefixedMemberFromRecord(record *neo4j.Record, prefix string) CommunityMember {
	return buildMember(
		getStringListFromRecord(record, prefix+"labels"),
		getStringFromRecord(record, prefix+"address"),
		getStringFromRecord(record, prefix+"identifier"),
		getStringFromRecord(record, prefix+"collection"),
	)
}

func buildMember(labels []string, address, identifier, collection string) CommunityMember {
	for _, label := range labels {
		if label == "Account" {
			return CommunityMember{
				Kind:  NodeKindAccount,
				Value: address,
			}
		}
	}
	return CommunityMember{
		Kind:       NodeKindNFT,
		Value:      identifier,
		Collection: collection,
	}
}

func getStringFromRecord(record *neo4j.Record, key string) string {
	value, ok := record.Get(key)
	if !ok || value == nil {
		return ""
	}
	s, _ := value.(string)
	return s
}

func getBoolFromRecord(record *neo4j.Record, key string) bool {
	value, ok := record.Get(key)
	if !ok || value == nil {
		return false
	}
	b, _ := value.(bool)
	return b
}

func getInt64FromRecord(record *neo4j.Record, key string) int64 {
	value, ok := record.Get(key)
	if !ok || value == nil {
		return 0
	}
	switch v := value.(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	default:
		return 0
	}
}

func getFloat64FromRecord(record *neo4j.Record, key string) float64 {
	value, ok := record.Get(key)
	if !ok || value == nil {
		return 0
	}
	switch v := value.(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	default:
		return 0
	}
}

func getInt64ListFromRecord(record *neo4j.Record, key string) []int64 {
	value, ok := record.Get(key)
	if !ok || value == nil {
		return nil
	}
	raw, ok := value.([]interface{})
	if !ok {
		return nil
	}
	list := make([]int64, 0, len(raw))
	for _, item := range raw {
		if n, ok := item.(int64); ok {
			list = append(list, n)
		}
	}
	return list
}

func getStringListFromRecord(record *neo4j.Record, key string) []string {
	value, ok := record.Get(key)
	if !ok || value == nil {
		return nil
	}
	raw, ok := value.([]interface{})
	if !ok {
		return nil
	}
	list := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok && s != "" {
			list = append(list, s)
		}
	}
	return list
}
