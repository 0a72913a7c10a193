package domain

const (
	// Cache constants
	CACHE_KEY_PREFIX        = "application-cache:"
	COMMUNITY_CACHE_PREFIX  = "application-cache:community:"
	CENTRALITY_CACHE_PREFIX = "application-cache:centrality:"
	ANALYTICS_CACHE_PREFIX  = "application-cache:analytics:"
	LAST_UPDATE_CACHE_KEY   = "lastUpdateAt"

	// Blockchain constants
	ETHEREUM_ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"

	// COMPLETE_COLLECTION is the pseudo-collection slug for the unfiltered
	// variant spanning all tracked collections
	COMPLETE_COLLECTION = "complete"

	// CENTRALITY_PROJECTION_NAME is the fixed projection name shared by all
	// centrality queries
	CENTRALITY_PROJECTION_NAME = "centralityGraph"

	// Payment sentinel for missing or malformed feed payment data
	UNKNOWN_PAYMENT_VALUE = "unknown"
)
