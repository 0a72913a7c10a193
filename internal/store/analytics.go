package store

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/alexpan006/blockdash-api/internal/domain"
)

// GetMembershipRecord reads a node's per-collection membership record. The
// three scope properties cannot be parameterized, so they are formatted into
// the query; missing properties fall back to the unassigned sentinel.
func (s *neo4jStore) GetMembershipRecord(ctx context.Context, collection string, kind NodeKind, value string) (domain.CommunityMembership, error) {
	session := s.session(ctx, neo4j.AccessModeRead)
	defer session.Close(ctx)

	var props [3]string
	for _, scope := range domain.AllScopes() {
		props[scope.Index()] = MembershipProperty(collection, scope)
	}

	match := `MATCH (n:Account {address: $value})`
	notFound := domain.ErrAccountNotFound
	params := map[string]interface{}{"value": value}
	if kind == NodeKindNFT {
		match = `MATCH (n:NFT {identifier: $value, collection: $node_collection})`
		notFound = domain.ErrNFTNotFound
		params["node_collection"] = collection
	}

	query := fmt.Sprintf(`
		%s
		RETURN coalesce(n.%s, %d) AS slot0,
			coalesce(n.%s, %d) AS slot1,
			coalesce(n.%s, %d) AS slot2
	`, match,
		props[0], domain.UnassignedCommunity,
		props[1], domain.UnassignedCommunity,
		props[2], domain.UnassignedCommunity,
	)

	membership := domain.NewCommunityMembership()
	result, err := session.Run(ctx, query, params)
	if err != nil {
		return membership, fmt.Errorf("failed to query membership record: %w", err)
	}

	if !result.Next(ctx) {
		if err := result.Err(); err != nil {
			return membership, fmt.Errorf("failed to read membership record: %w", err)
		}
		return membership, notFound
	}

	record := result.Record()
	for _, scope := range domain.AllScopes() {
		membership.SetSlot(scope, getInt64FromRecord(record, fmt.Sprintf("slot%d", scope.Index())))
	}
	return membership, nil
}

// RankAccounts counts one edge type per account inside a time window and
// returns the top accounts by descending count
func (s *neo4jStore) RankAccounts(ctx context.Context, relation domain.RelationType, collection string, window domain.TimeWindow, limit int) ([]RankedCount, error) {
	session := s.session(ctx, neo4j.AccessModeRead)
	defer session.Close(ctx)

	start, end := window.Bounds()
	params := map[string]interface{}{
		"start": start,
		"end":   end,
		"limit": limit,
	}
	if collection != "" {
		params["collection"] = collection
	}

	match, err := rankMatch(relation, collection)
	if err != nil {
		return nil, err
	}

	query := match + `
		WITH a.address AS address, count(r) AS edge_count
		RETURN address, edge_count
		ORDER BY edge_count DESC
		LIMIT $limit
	`
	result, err := session.Run(ctx, query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to rank accounts: %w", err)
	}

	var ranked []RankedCount
	for result.Next(ctx) {
		record := result.Record()
		ranked = append(ranked, RankedCount{
			Kind:  NodeKindAccount,
			Value: getStringFromRecord(record, "address"),
			Count: getInt64FromRecord(record, "edge_count"),
		})
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read account ranking: %w", err)
	}
	return ranked, nil
}

// RankTokenTurnover counts ownership edges per token of one collection inside
// a time window and returns the top tokens by descending count
func (s *neo4jStore) RankTokenTurnover(ctx context.Context, collection string, window domain.TimeWindow, limit int) ([]RankedCount, error) {
	session := s.session(ctx, neo4j.AccessModeRead)
	defer session.Close(ctx)

	start, end := window.Bounds()
	query := `
		MATCH (:Account)-[r:OWNED]->(n:NFT {collection: $collection})
		WHERE r.from >= $start AND r.from <= $end
		WITH n, count(r) AS edge_count
		RETURN n.identifier AS identifier, n.collection AS collection, edge_count
		ORDER BY edge_count DESC
		LIMIT $limit
	`
	result, err := session.Run(ctx, query, map[string]interface{}{
		"collection": collection,
		"start":      start,
		"end":        end,
		"limit":      limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to rank token turnover: %w", err)
	}

	var ranked []RankedCount
	for result.Next(ctx) {
		record := result.Record()
		ranked = append(ranked, RankedCount{
			Kind:       NodeKindNFT,
			Value:      getStringFromRecord(record, "identifier"),
			Collection: getStringFromRecord(record, "collection"),
			Count:      getInt64FromRecord(record, "edge_count"),
		})
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read token turnover ranking: %w", err)
	}
	return ranked, nil
}

// GetAccountProfile fetches an account with its first-order neighborhood
func (s *neo4jStore) GetAccountProfile(ctx context.Context, address string) (*AccountProfile, error) {
	session := s.session(ctx, neo4j.AccessModeRead)
	defer session.Close(ctx)

	exists, err := session.Run(ctx, `MATCH (a:Account {address: $address}) RETURN a.address AS address`, map[string]interface{}{
		"address": address,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query account: %w", err)
	}
	if !exists.Next(ctx) {
		if err := exists.Err(); err != nil {
			return nil, fmt.Errorf("failed to read account: %w", err)
		}
		return nil, domain.ErrAccountNotFound
	}

	profile := &AccountProfile{
		Address:     address,
		OwnedCounts: make(map[string]int64),
		Communities: make(map[string]domain.CommunityMembership),
	}

	counts, err := session.Run(ctx, `
		MATCH (a:Account {address: $address})-[r:OWNED {currently_owned: true}]->(n:NFT)
		RETURN n.collection AS collection, count(n) AS owned
	`, map[string]interface{}{"address": address})
	if err != nil {
		return nil, fmt.Errorf("failed to count owned tokens: %w", err)
	}
	for counts.Next(ctx) {
		record := counts.Record()
		profile.OwnedCounts[getStringFromRecord(record, "collection")] = getInt64FromRecord(record, "owned")
	}
	if err := counts.Err(); err != nil {
		return nil, fmt.Errorf("failed to read owned counts: %w", err)
	}

	neighbors, relationships, err := s.neighborhood(ctx, session,
		`MATCH (a:Account {address: $address})-[r]-(m)`,
		map[string]interface{}{"address": address})
	if err != nil {
		return nil, err
	}
	profile.Neighbors = neighbors
	profile.Relationships = relationships
	return profile, nil
}

// GetNFTProfile fetches a token with its first-order neighborhood
func (s *neo4jStore) GetNFTProfile(ctx context.Context, collection, identifier string) (*NFTProfile, error) {
	session := s.session(ctx, neo4j.AccessModeRead)
	defer session.Close(ctx)

	exists, err := session.Run(ctx, `
		MATCH (n:NFT {collection: $collection, identifier: $identifier})
		RETURN n.identifier AS identifier
	`, map[string]interface{}{"collection": collection, "identifier": identifier})
	if err != nil {
		return nil, fmt.Errorf("failed to query token: %w", err)
	}
	if !exists.Next(ctx) {
		if err := exists.Err(); err != nil {
			return nil, fmt.Errorf("failed to read token: %w", err)
		}
		return nil, domain.ErrNFTNotFound
	}

	profile := &NFTProfile{
		Identifier: identifier,
		Collection: collection,
	}

	neighbors, relationships, err := s.neighborhood(ctx, session,
		`MATCH (n:NFT {collection: $collection, identifier: $identifier})-[r]-(m)`,
		map[string]interface{}{"collection": collection, "identifier": identifier})
	if err != nil {
		return nil, err
	}
	profile.Neighbors = neighbors
	profile.Relationships = relationships
	return profile, nil
}

// neighborhood fetches first-order neighbors and the edges reaching them. The
// match fragment binds r to the edge and m to the neighbor.
func (s *neo4jStore) neighborhood(ctx context.Context, session neo4j.SessionWithContext, match string, params map[string]interface{}) ([]CommunityMember, []NeighborRelation, error) {
	query := match + `
		RETURN type(r) AS relationship_type,
			labels(m) AS labels, m.address AS address,
			m.identifier AS identifier, m.collection AS collection,
			r.transaction_hash AS transaction_hash, r.event_type AS event_type,
			r.identifier AS edge_identifier, r.collection_name AS edge_collection,
			r.currently_owned AS currently_owned,
			coalesce(r.timestamp, r.transaction_timestamp, 0) AS edge_timestamp
	`
	result, err := session.Run(ctx, query, params)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query neighborhood: %w", err)
	}

	var neighbors []CommunityMember
	var relationships []NeighborRelation
	seen := make(map[string]bool)

	for result.Next(ctx) {
		record := result.Record()
		member := memberFromRecord(record)

		key := string(member.Kind) + "|" + member.Value + "|" + member.Collection
		if !seen[key] {
			seen[key] = true
			neighbors = append(neighbors, member)
		}

		relation := NeighborRelation{
			Type:         getStringFromRecord(record, "relationship_type"),
			Counterparty: member,
			Timestamp:    getInt64FromRecord(record, "edge_timestamp"),
		}
		switch relation.Type {
		case "TRANSACTED":
			relation.TxHash = getStringFromRecord(record, "transaction_hash")
			relation.EventType = getStringFromRecord(record, "event_type")
			relation.Identifier = getStringFromRecord(record, "edge_identifier")
			relation.Collection = getStringFromRecord(record, "edge_collection")
		case "OWNED":
			owned := getBoolFromRecord(record, "currently_owned")
			relation.CurrentlyOwned = &owned
		}
		relationships = append(relationships, relation)
	}
	if err := result.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read neighborhood: %w", err)
	}
	return neighbors, relationships, nil
}

// CountDailyEvents counts transacted or mint edges per day inside a window
func (s *neo4jStore) CountDailyEvents(ctx context.Context, relation domain.RelationType, collection string, window domain.TimeWindow) ([]DailyCount, error) {
	match, timestamp, params, err := temporalMatch(relation, collection, window)
	if err != nil {
		return nil, err
	}

	session := s.session(ctx, neo4j.AccessModeRead)
	defer session.Close(ctx)

	query := fmt.Sprintf(`%s
		WITH date(datetime({epochSeconds: %s})) AS day, count(r) AS day_count
		RETURN toString(day) AS day, day_count
		ORDER BY day
	`, match, timestamp)

	return s.runDailyCounts(ctx, session, query, params)
}

// CountDailyActiveAccounts counts the distinct accounts with at least one
// transacted or mint edge per day inside a window
func (s *neo4jStore) CountDailyActiveAccounts(ctx context.Context, relation domain.RelationType, collection string, window domain.TimeWindow) ([]DailyCount, error) {
	match, timestamp, params, err := temporalMatch(relation, collection, window)
	if err != nil {
		return nil, err
	}

	session := s.session(ctx, neo4j.AccessModeRead)
	defer session.Close(ctx)

	query := fmt.Sprintf(`%s
		WITH date(datetime({epochSeconds: %s})) AS day, count(DISTINCT a) AS day_count
		RETURN toString(day) AS day, day_count
		ORDER BY day
	`, match, timestamp)

	return s.runDailyCounts(ctx, session, query, params)
}

// CountAccountEvents returns the per-account transacted or mint edge counts
// inside a window, ascending
func (s *neo4jStore) CountAccountEvents(ctx context.Context, relation domain.RelationType, collection string, window domain.TimeWindow) ([]int64, error) {
	match, _, params, err := temporalMatch(relation, collection, window)
	if err != nil {
		return nil, err
	}

	session := s.session(ctx, neo4j.AccessModeRead)
	defer session.Close(ctx)

	query := match + `
		WITH a.address AS owner, count(r) AS amount
		RETURN amount
		ORDER BY amount ASC
	`
	return s.runAmounts(ctx, session, query, params)
}

// CountAccountOwnership returns the per-account count of ownerships active
// during one month, ascending. An ownership is active when it started on or
// before the month's end and either still holds or ended inside the month.
func (s *neo4jStore) CountAccountOwnership(ctx context.Context, collection string, year, month int) ([]int64, error) {
	session := s.session(ctx, neo4j.AccessModeRead)
	defer session.Close(ctx)

	start, end := domain.MonthWindow(year, month).Bounds()
	params := map[string]interface{}{"start": start, "end": end}

	filter := ""
	if collection != "" {
		filter = ` AND n.collection = $collection`
		params["collection"] = collection
	}

	query := fmt.Sprintf(`
		MATCH (a:Account)-[r:OWNED]->(n:NFT)
		WHERE r.from <= $end AND (r.currently_owned OR r.until >= $start)%s
		WITH a.address AS owner, count(r) AS amount
		RETURN amount
		ORDER BY amount ASC
	`, filter)

	return s.runAmounts(ctx, session, query, params)
}

// rankMatch builds the match fragment for the activity rankings, binding a to
// the account and r to the edge. Transactions match undirected: the edge
// counts for both parties.
func rankMatch(relation domain.RelationType, collection string) (string, error) {
	var match string
	switch relation {
	case domain.RelationTransacted:
		match = `MATCH (a:Account)-[r:TRANSACTED]-()
			WHERE r.transaction_timestamp >= $start AND r.transaction_timestamp <= $end`
		if collection != "" {
			match += ` AND r.collection_name = $collection`
		}
	case domain.RelationMint:
		match = `MATCH (a:Account)-[r:MINT]->(n:NFT)
			WHERE r.timestamp >= $start AND r.timestamp <= $end`
		if collection != "" {
			match += ` AND n.collection = $collection`
		}
	case domain.RelationOwned:
		match = `MATCH (a:Account)-[r:OWNED]->(n:NFT)
			WHERE r.from >= $start AND r.from <= $end`
		if collection != "" {
			match += ` AND n.collection = $collection`
		}
	default:
		return "", domain.ErrRelationTypeNotFound
	}
	return match, nil
}

// temporalMatch builds the match fragment counting one edge type inside a
// window, binding a to the account and r to the edge. Only transacted and
// mint edges carry a point timestamp.
func temporalMatch(relation domain.RelationType, collection string, window domain.TimeWindow) (match, timestamp string, params map[string]interface{}, err error) {
	start, end := window.Bounds()
	params = map[string]interface{}{"start": start, "end": end}
	if collection != "" {
		params["collection"] = collection
	}

	switch relation {
	case domain.RelationTransacted:
		timestamp = "r.transaction_timestamp"
		match = `MATCH (a:Account)-[r:TRANSACTED]->()
			WHERE r.transaction_timestamp >= $start AND r.transaction_timestamp <= $end`
		if collection != "" {
			match += ` AND r.collection_name = $collection`
		}
	case domain.RelationMint:
		timestamp = "r.timestamp"
		match = `MATCH (a:Account)-[r:MINT]->(n:NFT)
			WHERE r.timestamp >= $start AND r.timestamp <= $end`
		if collection != "" {
			match += ` AND n.collection = $collection`
		}
	default:
		return "", "", nil, domain.ErrRelationTypeNotFound
	}
	return match, timestamp, params, nil
}

func (s *neo4jStore) runDailyCounts(ctx context.Context, session neo4j.SessionWithContext, query string, params map[string]interface{}) ([]DailyCount, error) {
	result, err := session.Run(ctx, query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily counts: %w", err)
	}

	var counts []DailyCount
	for result.Next(ctx) {
		record := result.Record()
		counts = append(counts, DailyCount{
			Date:  getStringFromRecord(record, "day"),
			Count: getInt64FromRecord(record, "day_count"),
		})
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read daily counts: %w", err)
	}
	return counts, nil
}

func (s *neo4jStore) runAmounts(ctx context.Context, session neo4j.SessionWithContext, query string, params map[string]interface{}) ([]int64, error) {
	result, err := session.Run(ctx, query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to query per-account amounts: %w", err)
	}

	var amounts []int64
	for result.Next(ctx) {
		amounts = append(amounts, getInt64FromRecord(result.Record(), "amount"))
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read per-account amounts: %w", err)
	}
	return amounts, nil
}
