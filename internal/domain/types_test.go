package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScope(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		expected Scope
		wantErr  error
	}{
		{
			name:     "ownership",
			label:    "ownership",
			expected: ScopeOwnership,
		},
		{
			name:     "transaction",
			label:    "transaction",
			expected: ScopeTransaction,
		},
		{
			name:     "combined via all",
			label:    "all",
			expected: ScopeCombined,
		},
		{
			name:     "mixed case",
			label:    "Ownership",
			expected: ScopeOwnership,
		},
		{
			name:    "unknown label",
			label:   "everything",
			wantErr: ErrScopeNotFound,
		},
		{
			name:    "empty label",
			label:   "",
			wantErr: ErrScopeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope, err := ParseScope(tt.label)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, scope)
		})
	}
}

func TestScopeIndex(t *testing.T) {
	assert.Equal(t, 0, ScopeOwnership.Index())
	assert.Equal(t, 1, ScopeTransaction.Index())
	assert.Equal(t, 2, ScopeCombined.Index())
}

func TestParseEventType(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		expected EventType
		wantErr  error
	}{
		{
			name:     "transfer",
			label:    "transfer",
			expected: EventTypeTransfer,
		},
		{
			name:     "sale",
			label:    "sale",
			expected: EventTypeSale,
		},
		{
			name:     "upper case",
			label:    "SALE",
			expected: EventTypeSale,
		},
		{
			name:    "unknown",
			label:   "listing",
			wantErr: ErrUnknownEventType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			et, err := ParseEventType(tt.label)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, et)
		})
	}
}

func TestEventTypeEdgeLabel(t *testing.T) {
	assert.Equal(t, "Transfer", EventTypeTransfer.EdgeLabel())
	assert.Equal(t, "Sale and Transfer", EventTypeSale.EdgeLabel())
}

func TestTransferEventValid(t *testing.T) {
	valid := TransferEvent{
		Type:       EventTypeTransfer,
		From:       "0x1111111111111111111111111111111111111111",
		To:         "0x2222222222222222222222222222222222222222",
		Collection: "boredapeyachtclub",
		Identifier: "42",
		TxHash:     "0xabc",
		Timestamp:  1700000000,
		Payment:    UnknownPayment(),
	}

	tests := []struct {
		name     string
		mutate   func(e *TransferEvent)
		expected bool
	}{
		{
			name:     "valid transfer",
			mutate:   func(e *TransferEvent) {},
			expected: true,
		},
		{
			name:     "mint from zero address is valid",
			mutate:   func(e *TransferEvent) { e.From = ETHEREUM_ZERO_ADDRESS },
			expected: true,
		},
		{
			name:     "missing identifier",
			mutate:   func(e *TransferEvent) { e.Identifier = "" },
			expected: false,
		},
		{
			name:     "missing tx hash",
			mutate:   func(e *TransferEvent) { e.TxHash = "" },
			expected: false,
		},
		{
			name:     "missing recipient",
			mutate:   func(e *TransferEvent) { e.To = "" },
			expected: false,
		},
		{
			name:     "burn to zero address",
			mutate:   func(e *TransferEvent) { e.To = ETHEREUM_ZERO_ADDRESS },
			expected: false,
		},
		{
			name:     "unknown event type",
			mutate:   func(e *TransferEvent) { e.Type = EventType("listing") },
			expected: false,
		},
		{
			name:     "zero timestamp",
			mutate:   func(e *TransferEvent) { e.Timestamp = 0 },
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := valid
			tt.mutate(&event)
			assert.Equal(t, tt.expected, event.Valid())
		})
	}
}

func TestTransferEventMint(t *testing.T) {
	event := TransferEvent{From: ETHEREUM_ZERO_ADDRESS}
	assert.True(t, event.Mint())

	event.From = ""
	assert.True(t, event.Mint())

	event.From = "0x1111111111111111111111111111111111111111"
	assert.False(t, event.Mint())
}

func TestCommunityMembershipSlots(t *testing.T) {
	m := NewCommunityMembership()
	assert.Equal(t, UnassignedCommunity, m.Ownership)
	assert.Equal(t, UnassignedCommunity, m.Transaction)
	assert.Equal(t, UnassignedCommunity, m.Combined)

	m.SetSlot(ScopeOwnership, 7)
	m.SetSlot(ScopeTransaction, 11)
	m.SetSlot(ScopeCombined, 3)

	assert.Equal(t, int64(7), m.Ownership)
	assert.Equal(t, int64(11), m.Transaction)
	assert.Equal(t, int64(3), m.Combined)
}

func TestCommunitySummaryScopeLists(t *testing.T) {
	s := CommunitySummary{Collection: "degods-eth"}
	s.SetScopeList(ScopeOwnership, []int64{5, 2})
	s.SetScopeList(ScopeTransaction, []int64{9})
	s.SetScopeList(ScopeCombined, []int64{1, 4, 8})

	assert.Equal(t, []int64{5, 2}, s.ScopeList(ScopeOwnership))
	assert.Equal(t, []int64{9}, s.ScopeList(ScopeTransaction))
	assert.Equal(t, []int64{1, 4, 8}, s.ScopeList(ScopeCombined))
}

func TestNormalizeAddress(t *testing.T) {
	tests := []struct {
		name     string
		address  string
		expected string
	}{
		{
			name:     "lowercase to checksum",
			address:  "0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d",
			expected: "0xBC4CA0EdA7647A8aB7C2061c2E118A18a936f13D",
		},
		{
			name:     "checksum unchanged",
			address:  "0xBC4CA0EdA7647A8aB7C2061c2E118A18a936f13D",
			expected: "0xBC4CA0EdA7647A8aB7C2061c2E118A18a936f13D",
		},
		{
			name:     "non hex passthrough",
			address:  "not-an-address",
			expected: "not-an-address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeAddress(tt.address))
		})
	}
}

func TestLinkBuilders(t *testing.T) {
	contract := "0xBC4CA0EdA7647A8aB7C2061c2E118A18a936f13D"
	assert.Equal(t,
		"https://etherscan.io/nft/0xBC4CA0EdA7647A8aB7C2061c2E118A18a936f13D/42",
		EtherscanNFTURL(contract, "42"),
	)
	assert.Equal(t,
		"https://opensea.io/assets/ethereum/0xBC4CA0EdA7647A8aB7C2061c2E118A18a936f13D/42",
		OpenSeaAssetURL(contract, "42"),
	)
}
