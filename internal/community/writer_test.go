package community

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexpan006/blockdash-api/internal/store"
)

func TestTopCommunities(t *testing.T) {
	assignments := []store.CommunityAssignment{
		{NodeID: 1, CommunityID: 10},
		{NodeID: 2, CommunityID: 10},
		{NodeID: 3, CommunityID: 10},
		{NodeID: 4, CommunityID: 20},
		{NodeID: 5, CommunityID: 20},
		{NodeID: 6, CommunityID: 30},
		{NodeID: 7, CommunityID: 40},
		{NodeID: 8, CommunityID: 40},
		{NodeID: 9, CommunityID: 40},
		{NodeID: 10, CommunityID: 40},
		{NodeID: 11, CommunityID: 50},
	}

	t.Run("orders by descending size and truncates to topK", func(t *testing.T) {
		retained, ordered := topCommunities(assignments, 3)
		assert.Equal(t, []int64{40, 10, 20}, ordered)
		// Members of dropped communities 30 and 50 are not retained
		assert.Len(t, retained, 9)
		for _, a := range retained {
			assert.NotEqual(t, int64(30), a.CommunityID)
			assert.NotEqual(t, int64(50), a.CommunityID)
		}
	})

	t.Run("topK zero keeps all communities", func(t *testing.T) {
		retained, ordered := topCommunities(assignments, 0)
		assert.Equal(t, []int64{40, 10, 20, 30, 50}, ordered)
		assert.Len(t, retained, len(assignments))
	})

	t.Run("size ties break by ascending community id", func(t *testing.T) {
		_, ordered := topCommunities([]store.CommunityAssignment{
			{NodeID: 1, CommunityID: 7},
			{NodeID: 2, CommunityID: 3},
		}, 0)
		assert.Equal(t, []int64{3, 7}, ordered)
	})

	t.Run("empty assignments yield empty lists", func(t *testing.T) {
		retained, ordered := topCommunities(nil, 5)
		assert.Empty(t, retained)
		assert.Empty(t, ordered)
	})
}
