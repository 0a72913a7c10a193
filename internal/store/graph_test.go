package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexpan006/blockdash-api/internal/domain"
)

func TestPropertySlug(t *testing.T) {
	assert.Equal(t, "degods_eth", PropertySlug("degods-eth"))
	assert.Equal(t, "boredapeyachtclub", PropertySlug("boredapeyachtclub"))
	assert.Equal(t, "complete", PropertySlug(""))
}

func TestMembershipProperty(t *testing.T) {
	assert.Equal(t, "degods_eth_community_ownership", MembershipProperty("degods-eth", domain.ScopeOwnership))
	assert.Equal(t, "degods_eth_community_transaction", MembershipProperty("degods-eth", domain.ScopeTransaction))
	assert.Equal(t, "degods_eth_community_combined", MembershipProperty("degods-eth", domain.ScopeCombined))
	assert.Equal(t, "complete_community_combined", MembershipProperty("", domain.ScopeCombined))
}

func TestScopeProjectionName(t *testing.T) {
	assert.Equal(t, "degods_eth_owned", ScopeProjectionName(domain.ScopeOwnership, "degods-eth"))
	assert.Equal(t, "degods_eth_trx", ScopeProjectionName(domain.ScopeTransaction, "degods-eth"))
	assert.Equal(t, "degods_eth_owned_trx", ScopeProjectionName(domain.ScopeCombined, "degods-eth"))
	assert.Equal(t, "complete_owned", ScopeProjectionName(domain.ScopeOwnership, ""))
}

func TestScopeProjection_CollectionFilter(t *testing.T) {
	spec := ScopeProjection(domain.ScopeOwnership, "degods-eth")
	assert.Contains(t, spec.NodeQuery, `n.collection = "degods-eth"`)
	assert.Contains(t, spec.RelationshipQuery, "OWNED")
	assert.NotContains(t, spec.RelationshipQuery, "TRANSACTED")

	trx := ScopeProjection(domain.ScopeTransaction, "degods-eth")
	assert.NotContains(t, trx.NodeQuery, "NFT")
	assert.Contains(t, trx.RelationshipQuery, `r.collection_name = "degods-eth"`)

	combined := ScopeProjection(domain.ScopeCombined, "degods-eth")
	assert.Contains(t, combined.RelationshipQuery, "OWNED")
	assert.Contains(t, combined.RelationshipQuery, "TRANSACTED")
}

func TestScopeProjection_CompleteVariantHasNoFilter(t *testing.T) {
	// The complete variant differs only in the predicate, not in shape
	for _, scope := range domain.AllScopes() {
		scoped := ScopeProjection(scope, "degods-eth")
		complete := ScopeProjection(scope, "")
		assert.NotContains(t, complete.NodeQuery, "WHERE")
		assert.NotContains(t, complete.RelationshipQuery, "WHERE")
		assert.NotEqual(t, scoped.NodeQuery, complete.NodeQuery+" ")
	}
}

func TestCentralityProjection(t *testing.T) {
	unfiltered := CentralityProjection("")
	assert.Contains(t, unfiltered.NodeQuery, "n:Account OR n:NFT")
	assert.Contains(t, unfiltered.RelationshipQuery, "MINT")

	filtered := CentralityProjection("degods-eth")
	assert.Contains(t, filtered.NodeQuery, `"degods-eth"`)
	assert.Contains(t, filtered.RelationshipQuery, "TRANSACTED")
}
