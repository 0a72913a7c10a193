package domain

import "errors"

var (
	// ErrCollectionNotFound is returned when a collection slug is not tracked
	ErrCollectionNotFound = errors.New("collection not found")

	// ErrScopeNotFound is returned when a scope label is outside the three fixed views
	ErrScopeNotFound = errors.New("scope not found")

	// ErrCommunityNotFound is returned when a community id has no members for the
	// requested collection and scope
	ErrCommunityNotFound = errors.New("community not found")

	// ErrTriggerNotFound is returned when a trigger id is not registered
	ErrTriggerNotFound = errors.New("trigger not found")

	// ErrRankScopeNotFound is returned when a ranking scope label is unknown
	ErrRankScopeNotFound = errors.New("ranking scope not found")

	// ErrRelationTypeNotFound is returned when a relationship type label is
	// outside transacted/mint/owned
	ErrRelationTypeNotFound = errors.New("relationship type not found")

	// ErrAccountNotFound is returned when an address has no account node
	ErrAccountNotFound = errors.New("account not found")

	// ErrNFTNotFound is returned when a (collection, identifier) pair has no
	// token node
	ErrNFTNotFound = errors.New("nft not found")

	// ErrUnknownEventType is returned when the feed reports an event type outside
	// transfer/sale
	ErrUnknownEventType = errors.New("unknown event type")
)
