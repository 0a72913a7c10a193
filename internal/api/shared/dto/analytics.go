package dto

import (
	"github.com/alexpan006/blockdash-api/internal/analytics"
	"github.com/alexpan006/blockdash-api/internal/store"
)

// ActivityRankingResponse is the result of one activity ranking
type ActivityRankingResponse struct {
	Scope      string              `json:"scope"`
	Collection string              `json:"collection,omitempty"`
	Entries    []store.RankedCount `json:"entries"`
}

// MapActivityRankingToDTO converts an activity ranking into its response form
func MapActivityRankingToDTO(ranking *analytics.Ranking) *ActivityRankingResponse {
	return &ActivityRankingResponse{
		Scope:      string(ranking.Scope),
		Collection: ranking.Collection,
		Entries:    ranking.Entries,
	}
}

// AccountSearchResponse is the neighborhood profile of one account
type AccountSearchResponse struct {
	Account *store.AccountProfile `json:"account"`
}

// NFTSearchResponse is the neighborhood profile of one token
type NFTSearchResponse struct {
	NFT *store.NFTProfile `json:"nft"`
}

// SeriesResponse is a temporal series, one value per date
type SeriesResponse struct {
	Dates  []string  `json:"dates"`
	Counts []float64 `json:"counts"`
}

// MapSeriesToDTO converts a series into its response form
func MapSeriesToDTO(series *analytics.Series) *SeriesResponse {
	return &SeriesResponse{
		Dates:  series.Dates,
		Counts: series.Counts,
	}
}

// InequalityResponse is one inequality coefficient over a time window
type InequalityResponse struct {
	Coefficient string  `json:"coefficient"`
	Relation    string  `json:"relation"`
	Collection  string  `json:"collection,omitempty"`
	Value       float64 `json:"value"`
}
