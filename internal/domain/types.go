package domain

import (
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// EventType represents the type of marketplace event consumed from the event feed
type EventType string

const (
	EventTypeTransfer EventType = "transfer"
	EventTypeSale     EventType = "sale"
)

// ParseEventType maps a feed event type label to an EventType
func ParseEventType(s string) (EventType, error) {
	switch EventType(strings.ToLower(s)) {
	case EventTypeTransfer:
		return EventTypeTransfer, nil
	case EventTypeSale:
		return EventTypeSale, nil
	default:
		return "", ErrUnknownEventType
	}
}

// Valid checks if an event type is known
func (t EventType) Valid() bool {
	return t == EventTypeTransfer || t == EventTypeSale
}

// EdgeLabel returns the label stored on transaction edges for this event type
func (t EventType) EdgeLabel() string {
	switch t {
	case EventTypeSale:
		return "Sale and Transfer"
	default:
		return "Transfer"
	}
}

// Scope represents one of the three fixed relationship views used for
// community detection and membership storage
type Scope string

const (
	ScopeOwnership   Scope = "ownership"
	ScopeTransaction Scope = "transaction"
	ScopeCombined    Scope = "all"
)

// ParseScope maps a scope label to a Scope. Any label outside the three
// fixed views is rejected with ErrScopeNotFound.
func ParseScope(s string) (Scope, error) {
	switch Scope(strings.ToLower(s)) {
	case ScopeOwnership:
		return ScopeOwnership, nil
	case ScopeTransaction:
		return ScopeTransaction, nil
	case ScopeCombined:
		return ScopeCombined, nil
	default:
		return "", ErrScopeNotFound
	}
}

// Valid checks if a scope is one of the three fixed views
func (s Scope) Valid() bool {
	return s == ScopeOwnership || s == ScopeTransaction || s == ScopeCombined
}

// Index returns the stable slot index of a scope: ownership 0, transaction 1, combined 2
func (s Scope) Index() int {
	switch s {
	case ScopeOwnership:
		return 0
	case ScopeTransaction:
		return 1
	default:
		return 2
	}
}

// AllScopes returns the three scopes in detection order
func AllScopes() [3]Scope {
	return [3]Scope{ScopeOwnership, ScopeTransaction, ScopeCombined}
}

// Collection represents a tracked NFT collection from the seed registry
type Collection struct {
	Slug            string `json:"slug"`
	ContractAddress string `json:"contract_address"`
	Name            string `json:"name"`
}

// Payment holds the payment terms attached to a sale event
type Payment struct {
	Quantity     string `json:"quantity"`
	Symbol       string `json:"symbol"`
	Decimals     int64  `json:"decimals"`
	TokenAddress string `json:"token_address"`
}

// UnknownPayment returns the sentinel payment used when the feed omits or
// malforms payment data. Ingestion never fails on payment fields.
func UnknownPayment() Payment {
	return Payment{
		Quantity:     "0",
		Symbol:       UNKNOWN_PAYMENT_VALUE,
		Decimals:     0,
		TokenAddress: UNKNOWN_PAYMENT_VALUE,
	}
}

// TransferEvent represents a normalized ownership-changing event pulled from the feed
type TransferEvent struct {
	Type       EventType
	From       string
	To         string
	Collection string
	Identifier string
	TxHash     string
	Timestamp  int64
	Payment    Payment
}

// Valid checks whether an event carries enough data to be applied to the graph
func (e *TransferEvent) Valid() bool {
	if !e.Type.Valid() {
		return false
	}
	if e.Identifier == "" || e.TxHash == "" {
		return false
	}
	if e.To == "" || e.To == ETHEREUM_ZERO_ADDRESS {
		return false
	}
	return e.Timestamp > 0
}

// Mint reports whether the event originates from the zero address
func (e *TransferEvent) Mint() bool {
	return e.From == "" || e.From == ETHEREUM_ZERO_ADDRESS
}

// UnassignedCommunity marks a membership slot no detection run has written yet
const UnassignedCommunity int64 = -1

// CommunityMembership is the fixed per-collection membership record of a node,
// one community id per scope
type CommunityMembership struct {
	Ownership   int64 `json:"ownership"`
	Transaction int64 `json:"transaction"`
	Combined    int64 `json:"combined"`
}

// NewCommunityMembership returns a membership record with all slots unassigned
func NewCommunityMembership() CommunityMembership {
	return CommunityMembership{
		Ownership:   UnassignedCommunity,
		Transaction: UnassignedCommunity,
		Combined:    UnassignedCommunity,
	}
}

// SetSlot assigns the community id for a scope
func (m *CommunityMembership) SetSlot(scope Scope, id int64) {
	switch scope {
	case ScopeOwnership:
		m.Ownership = id
	case ScopeTransaction:
		m.Transaction = id
	default:
		m.Combined = id
	}
}

// CommunitySummary is the per-collection top-K community record, one ordered
// id list per scope ranked by descending community size. Replaced wholesale
// on every detection run.
type CommunitySummary struct {
	Collection  string    `json:"collection"`
	Ownership   []int64   `json:"ownership"`
	Transaction []int64   `json:"transaction"`
	Combined    []int64   `json:"combined"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ScopeList returns the ordered community id list for a scope
func (s *CommunitySummary) ScopeList(scope Scope) []int64 {
	switch scope {
	case ScopeOwnership:
		return s.Ownership
	case ScopeTransaction:
		return s.Transaction
	default:
		return s.Combined
	}
}

// SetScopeList replaces the ordered community id list for a scope
func (s *CommunitySummary) SetScopeList(scope Scope, ids []int64) {
	switch scope {
	case ScopeOwnership:
		s.Ownership = ids
	case ScopeTransaction:
		s.Transaction = ids
	default:
		s.Combined = ids
	}
}

// GraphEventType represents the type of graph change notification
type GraphEventType string

const (
	GraphEventSyncCompleted        GraphEventType = "sync_completed"
	GraphEventCommunitiesRefreshed GraphEventType = "communities_refreshed"
)

// GraphEvent represents a graph change notification published after a
// completed sync or detection run
type GraphEvent struct {
	ID            string         `json:"id"`
	Type          GraphEventType `json:"type"`
	Collection    string         `json:"collection"`
	OccurredAt    time.Time      `json:"occurred_at"`
	TokensSynced  int            `json:"tokens_synced,omitempty"`
	EventsApplied int            `json:"events_applied,omitempty"`
	Communities   int            `json:"communities,omitempty"`
}

// NormalizeAddress normalizes a 0x address to checksum format
func NormalizeAddress(address string) string {
	if strings.HasPrefix(address, "0x") {
		return common.HexToAddress(address).String()
	}
	return address
}

// ValidAddress checks if an address is a valid 0x hex address
func ValidAddress(address string) bool {
	return common.IsHexAddress(address)
}
