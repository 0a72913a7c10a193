package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexpan006/blockdash-api/internal/domain"
)

func TestRankMatch_TransactedCountsBothParties(t *testing.T) {
	match, err := rankMatch(domain.RelationTransacted, "")
	require.NoError(t, err)
	assert.Contains(t, match, "-[r:TRANSACTED]-()")
	assert.NotContains(t, match, "-[r:TRANSACTED]->")
}

func TestRankMatch_CollectionFilters(t *testing.T) {
	match, err := rankMatch(domain.RelationTransacted, "degods-eth")
	require.NoError(t, err)
	assert.Contains(t, match, "r.collection_name = $collection")

	match, err = rankMatch(domain.RelationMint, "degods-eth")
	require.NoError(t, err)
	assert.Contains(t, match, "n.collection = $collection")

	match, err = rankMatch(domain.RelationOwned, "")
	require.NoError(t, err)
	assert.Contains(t, match, "r.from >= $start")
}

func TestRankMatch_UnknownRelation(t *testing.T) {
	_, err := rankMatch(domain.RelationType("staked"), "")
	assert.ErrorIs(t, err, domain.ErrRelationTypeNotFound)
}

func TestTemporalMatch_DirectedPointEvents(t *testing.T) {
	window := domain.TimeWindow{YearFrom: 2024, YearTo: 2024, MonthFrom: 1, MonthTo: 12}

	match, timestamp, params, err := temporalMatch(domain.RelationTransacted, "", window)
	require.NoError(t, err)
	assert.Contains(t, match, "-[r:TRANSACTED]->")
	assert.Equal(t, "r.transaction_timestamp", timestamp)
	assert.Equal(t, int64(1704067200), params["start"])

	match, timestamp, _, err = temporalMatch(domain.RelationMint, "degods-eth", window)
	require.NoError(t, err)
	assert.Contains(t, match, "-[r:MINT]->")
	assert.Equal(t, "r.timestamp", timestamp)
}

func TestTemporalMatch_OwnedHasNoPointTimestamp(t *testing.T) {
	window := domain.TimeWindow{YearFrom: 2024, YearTo: 2024, MonthFrom: 1, MonthTo: 12}
	_, _, _, err := temporalMatch(domain.RelationOwned, "", window)
	assert.ErrorIs(t, err, domain.ErrRelationTypeNotFound)
}
