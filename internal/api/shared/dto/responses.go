package dto

import (
	"time"

	"github.com/alexpan006/blockdash-api/internal/centrality"
	"github.com/alexpan006/blockdash-api/internal/community"
	"github.com/alexpan006/blockdash-api/internal/domain"
	"github.com/alexpan006/blockdash-api/internal/scheduler"
	"github.com/alexpan006/blockdash-api/internal/store"
	"github.com/alexpan006/blockdash-api/internal/store/schema"
)

// LastUpdateResponse reports the wall-clock time of the latest completed sync.
// LastUpdate is null when no sync has completed yet.
type LastUpdateResponse struct {
	LastUpdate *time.Time `json:"last_update"`
}

// FrequencyResponse reports a collection's refresh frequency
type FrequencyResponse struct {
	Collection string `json:"collection"`
	Seconds    int64  `json:"seconds"`
}

// TriggerResponse is the read view of one armed trigger
type TriggerResponse struct {
	ID         string    `json:"id"`
	Collection string    `json:"collection"`
	Kind       string    `json:"kind"`
	Interval   string    `json:"interval"`
	NextFire   time.Time `json:"next_fire"`
}

// TriggerListResponse lists the armed triggers
type TriggerListResponse struct {
	Triggers []TriggerResponse `json:"triggers"`
}

// MapTriggerToDTO converts a trigger info into its response form
func MapTriggerToDTO(info scheduler.TriggerInfo) TriggerResponse {
	return TriggerResponse{
		ID:         info.ID,
		Collection: info.Collection,
		Kind:       string(info.Kind),
		Interval:   info.Interval.String(),
		NextFire:   info.NextFire,
	}
}

// SyncRunResponse is the read view of one journal row
type SyncRunResponse struct {
	ID          string     `json:"id"`
	Collection  string     `json:"collection"`
	Trigger     string     `json:"trigger"`
	Status      string     `json:"status"`
	Stats       any        `json:"stats,omitempty"`
	Error       *string    `json:"error,omitempty"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	FailedAt    *time.Time `json:"failed_at,omitempty"`
}

// SyncRunListResponse is one journal page plus the unfiltered total
type SyncRunListResponse struct {
	Runs  []SyncRunResponse `json:"runs"`
	Total int64             `json:"total"`
}

// MapSyncRunToDTO converts a journal row into its response form
func MapSyncRunToDTO(run schema.SyncRun) SyncRunResponse {
	resp := SyncRunResponse{
		ID:          run.ID,
		Collection:  run.Collection,
		Trigger:     string(run.Trigger),
		Status:      string(run.Status),
		Error:       run.Error,
		StartedAt:   run.StartedAt,
		CompletedAt: run.CompletedAt,
		FailedAt:    run.FailedAt,
	}
	if len(run.Stats) > 0 {
		resp.Stats = run.Stats
	}
	return resp
}

// CommunitySummaryResponse is the per-collection community summary
type CommunitySummaryResponse struct {
	Collection  string    `json:"collection"`
	Ownership   []int64   `json:"ownership"`
	Transaction []int64   `json:"transaction"`
	Combined    []int64   `json:"combined"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MapSummaryToDTO converts a community summary into its response form
func MapSummaryToDTO(summary *domain.CommunitySummary) *CommunitySummaryResponse {
	return &CommunitySummaryResponse{
		Collection:  summary.Collection,
		Ownership:   summary.Ownership,
		Transaction: summary.Transaction,
		Combined:    summary.Combined,
		UpdatedAt:   summary.UpdatedAt,
	}
}

// CommunityMembersResponse is one page of a community's member nodes
type CommunityMembersResponse struct {
	Collection  string                  `json:"collection"`
	Scope       string                  `json:"scope"`
	CommunityID int64                   `json:"community_id"`
	Members     []store.CommunityMember `json:"members"`
}

// NFTShareResponse breaks down one scope's summary communities
type NFTShareResponse struct {
	Collection string                     `json:"collection"`
	Scope      string                     `json:"scope"`
	Shares     []community.CommunityShare `json:"shares"`
}

// RankingResponse is the result of one centrality computation
type RankingResponse struct {
	Collection    string                        `json:"collection,omitempty"`
	Nodes         []centrality.RankedNode       `json:"nodes"`
	Relationships []store.RelationshipAggregate `json:"relationships"`
}

// MapRankingToDTO converts a centrality ranking into its response form
func MapRankingToDTO(ranking *centrality.Ranking) *RankingResponse {
	return &RankingResponse{
		Collection:    ranking.Collection,
		Nodes:         ranking.Nodes,
		Relationships: ranking.Relationships,
	}
}
