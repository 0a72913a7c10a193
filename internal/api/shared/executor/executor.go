package executor

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/alexpan006/blockdash-api/internal/adapter"
	"github.com/alexpan006/blockdash-api/internal/analytics"
	"github.com/alexpan006/blockdash-api/internal/api/shared/dto"
	apierrors "github.com/alexpan006/blockdash-api/internal/api/shared/errors"
	"github.com/alexpan006/blockdash-api/internal/cache"
	"github.com/alexpan006/blockdash-api/internal/centrality"
	"github.com/alexpan006/blockdash-api/internal/community"
	"github.com/alexpan006/blockdash-api/internal/domain"
	"github.com/alexpan006/blockdash-api/internal/logger"
	"github.com/alexpan006/blockdash-api/internal/scheduler"
	"github.com/alexpan006/blockdash-api/internal/store"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// LastUpdate returns the wall-clock time of the latest completed sync
	LastUpdate(ctx context.Context) (*dto.LastUpdateResponse, error)

	// GetFrequency returns a collection's refresh frequency. Collections
	// without a persisted frequency report the configured default.
	GetFrequency(ctx context.Context, collection string) (*dto.FrequencyResponse, error)

	// SetFrequency persists a collection's refresh frequency
	SetFrequency(ctx context.Context, req dto.SetFrequencyRequest) (*dto.FrequencyResponse, error)

	// ListTriggers returns the armed triggers
	ListTriggers(ctx context.Context) *dto.TriggerListResponse

	// RemoveTrigger disarms a trigger by id
	RemoveTrigger(ctx context.Context, id string) error

	// FireTrigger runs a trigger's body immediately
	FireTrigger(ctx context.Context, id string) error

	// ListRuns pages through the sync run journal, newest first
	ListRuns(ctx context.Context, collection string, limit, offset int) (*dto.SyncRunListResponse, error)

	// CommunitySummary returns the stored community summary for a collection
	CommunitySummary(ctx context.Context, collection string) (*dto.CommunitySummaryResponse, error)

	// CommunityMembers pages through the member nodes of one community
	CommunityMembers(ctx context.Context, collection string, scope domain.Scope, communityID int64, limit, offset int) (*dto.CommunityMembersResponse, error)

	// NFTShare breaks down one scope's summary communities by node kind
	NFTShare(ctx context.Context, collection string, scope domain.Scope) (*dto.NFTShareResponse, error)

	// CentralityRanking computes the top central nodes of a collection's
	// subgraph, or of the whole graph when collection is empty or "complete"
	CentralityRanking(ctx context.Context, collection string, limit int) (*dto.RankingResponse, error)

	// ActivityRanking ranks accounts or tokens by edge activity inside a window
	ActivityRanking(ctx context.Context, scope domain.RankScope, collection string, window domain.TimeWindow, limit int) (*dto.ActivityRankingResponse, error)

	// SearchAccount fetches an account's neighborhood profile
	SearchAccount(ctx context.Context, address string) (*dto.AccountSearchResponse, error)

	// SearchNFT fetches a token's neighborhood profile
	SearchNFT(ctx context.Context, collection, identifier string) (*dto.NFTSearchResponse, error)

	// EventHistory counts transacted or mint edges per day across a window
	EventHistory(ctx context.Context, relation domain.RelationType, collection string, window domain.TimeWindow) (*dto.SeriesResponse, error)

	// ActiveAccountHistory counts the accounts active per day across a window
	ActiveAccountHistory(ctx context.Context, relations []domain.RelationType, collection string, window domain.TimeWindow) (*dto.SeriesResponse, error)

	// Inequality computes one inequality coefficient over a window
	Inequality(ctx context.Context, coeff analytics.Coefficient, relation domain.RelationType, collection string, window domain.TimeWindow) (*dto.InequalityResponse, error)

	// InequalityHistory computes one inequality coefficient per month of a window
	InequalityHistory(ctx context.Context, coeff analytics.Coefficient, relation domain.RelationType, collection string, window domain.TimeWindow) (*dto.SeriesResponse, error)
}

type executor struct {
	collections      registryapi
	graph            store.GraphStore
	journal          store.RunJournal
	triggers         scheduler.Registry
	communities      community.Reader
	centrality       centrality.Service
	analytics        analytics.Service
	responseCache    cache.Cache
	jsonAdapter      adapter.JSON
	defaultFrequency int64
}

// registryapi is the slice of the collection registry the executor needs
type registryapi interface {
	Get(slug string) (*domain.Collection, error)
}

// NewExecutor creates a new API executor. responseCache may be nil, in which
// case every read computes.
func NewExecutor(
	collections registryapi,
	graph store.GraphStore,
	journal store.RunJournal,
	triggers scheduler.Registry,
	communities community.Reader,
	centralitySvc centrality.Service,
	analyticsSvc analytics.Service,
	responseCache cache.Cache,
	jsonAdapter adapter.JSON,
	defaultFrequency int64,
) Executor {
	return &executor{
		collections:      collections,
		graph:            graph,
		journal:          journal,
		triggers:         triggers,
		communities:      communities,
		centrality:       centralitySvc,
		analytics:        analyticsSvc,
		responseCache:    responseCache,
		jsonAdapter:      jsonAdapter,
		defaultFrequency: defaultFrequency,
	}
}

// fetchCached serves a response from the cache when present, otherwise
// computes it and stores the result. Cache failures degrade to computing:
// they are logged and never surface to the caller.
func fetchCached[T any](ctx context.Context, e *executor, prefix string, params any, compute func(ctx context.Context) (*T, error)) (*T, error) {
	if e.responseCache == nil {
		return compute(ctx)
	}

	key, err := e.responseCache.Key(prefix, params)
	if err != nil {
		logger.WarnCtx(ctx, "failed to build cache key", zap.Error(err), zap.String("prefix", prefix))
		return compute(ctx)
	}

	if payload, err := e.responseCache.Get(ctx, key); err == nil {
		var cached T
		if err := e.jsonAdapter.Unmarshal(payload, &cached); err == nil {
			return &cached, nil
		}
		logger.WarnCtx(ctx, "failed to decode cached response", zap.Error(err), zap.String("key", key))
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		logger.WarnCtx(ctx, "cache read failed", zap.Error(err), zap.String("key", key))
	}

	result, err := compute(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := e.jsonAdapter.Marshal(result)
	if err != nil {
		logger.WarnCtx(ctx, "failed to encode response for caching", zap.Error(err), zap.String("key", key))
		return result, nil
	}
	if err := e.responseCache.Set(ctx, key, payload); err != nil {
		logger.WarnCtx(ctx, "cache write failed", zap.Error(err), zap.String("key", key))
	}

	return result, nil
}

func (e *executor) LastUpdate(ctx context.Context) (*dto.LastUpdateResponse, error) {
	if e.responseCache == nil {
		return &dto.LastUpdateResponse{}, nil
	}

	at, err := e.responseCache.GetLastUpdate(ctx)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return &dto.LastUpdateResponse{}, nil
		}
		return nil, apierrors.NewServiceError(fmt.Sprintf("Failed to read last update: %v", err))
	}

	return &dto.LastUpdateResponse{LastUpdate: &at}, nil
}

func (e *executor) GetFrequency(ctx context.Context, collection string) (*dto.FrequencyResponse, error) {
	if _, err := e.collections.Get(collection); err != nil {
		return nil, apierrors.NewNotFoundError("Collection not found")
	}

	seconds, err := e.graph.GetUpdateFrequency(ctx, collection)
	if err != nil {
		if errors.Is(err, domain.ErrCollectionNotFound) {
			seconds = e.defaultFrequency
		} else {
			return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get update frequency: %v", err))
		}
	}

	return &dto.FrequencyResponse{Collection: collection, Seconds: seconds}, nil
}

func (e *executor) SetFrequency(ctx context.Context, req dto.SetFrequencyRequest) (*dto.FrequencyResponse, error) {
	if _, err := e.collections.Get(req.Collection); err != nil {
		return nil, apierrors.NewNotFoundError("Collection not found")
	}
	if req.Seconds <= 0 {
		return nil, apierrors.NewValidationError("seconds must be positive")
	}

	if err := e.graph.SetUpdateFrequency(ctx, req.Collection, req.Seconds); err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to set update frequency: %v", err))
	}

	return &dto.FrequencyResponse{Collection: req.Collection, Seconds: req.Seconds}, nil
}

func (e *executor) ListTriggers(ctx context.Context) *dto.TriggerListResponse {
	infos := e.triggers.List()
	resp := &dto.TriggerListResponse{Triggers: make([]dto.TriggerResponse, 0, len(infos))}
	for _, info := range infos {
		resp.Triggers = append(resp.Triggers, dto.MapTriggerToDTO(info))
	}
	return resp
}

func (e *executor) RemoveTrigger(ctx context.Context, id string) error {
	if err := e.triggers.Remove(id); err != nil {
		if errors.Is(err, domain.ErrTriggerNotFound) {
			return apierrors.NewNotFoundError("Trigger not found")
		}
		return apierrors.NewServiceError(fmt.Sprintf("Failed to remove trigger: %v", err))
	}
	return nil
}

func (e *executor) FireTrigger(ctx context.Context, id string) error {
	if err := e.triggers.Fire(ctx, id); err != nil {
		if errors.Is(err, domain.ErrTriggerNotFound) {
			return apierrors.NewNotFoundError("Trigger not found")
		}
		return apierrors.NewServiceError(fmt.Sprintf("Failed to fire trigger: %v", err))
	}
	return nil
}

func (e *executor) ListRuns(ctx context.Context, collection string, limit, offset int) (*dto.SyncRunListResponse, error) {
	if e.journal == nil {
		return nil, apierrors.NewServiceError("Run journal is not configured")
	}

	runs, total, err := e.journal.ListSyncRuns(ctx, collection, limit, offset)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list sync runs: %v", err))
	}

	resp := &dto.SyncRunListResponse{
		Runs:  make([]dto.SyncRunResponse, 0, len(runs)),
		Total: total,
	}
	for _, run := range runs {
		resp.Runs = append(resp.Runs, dto.MapSyncRunToDTO(run))
	}
	return resp, nil
}

func (e *executor) CommunitySummary(ctx context.Context, collection string) (*dto.CommunitySummaryResponse, error) {
	params := map[string]any{"op": "summary", "collection": collection}
	resp, err := fetchCached(ctx, e, domain.COMMUNITY_CACHE_PREFIX, params, func(ctx context.Context) (*dto.CommunitySummaryResponse, error) {
		summary, err := e.communities.Summary(ctx, collection)
		if err != nil {
			return nil, err
		}
		return dto.MapSummaryToDTO(summary), nil
	})
	if err != nil {
		return nil, mapDomainError(err, "Failed to get community summary")
	}
	return resp, nil
}

func (e *executor) CommunityMembers(ctx context.Context, collection string, scope domain.Scope, communityID int64, limit, offset int) (*dto.CommunityMembersResponse, error) {
	params := map[string]any{
		"op":           "members",
		"collection":   collection,
		"scope":        string(scope),
		"community_id": communityID,
		"limit":        limit,
		"offset":       offset,
	}
	resp, err := fetchCached(ctx, e, domain.COMMUNITY_CACHE_PREFIX, params, func(ctx context.Context) (*dto.CommunityMembersResponse, error) {
		members, err := e.communities.Members(ctx, collection, scope, communityID, limit, offset)
		if err != nil {
			return nil, err
		}
		return &dto.CommunityMembersResponse{
			Collection:  collection,
			Scope:       string(scope),
			CommunityID: communityID,
			Members:     members,
		}, nil
	})
	if err != nil {
		return nil, mapDomainError(err, "Failed to get community members")
	}
	return resp, nil
}

func (e *executor) NFTShare(ctx context.Context, collection string, scope domain.Scope) (*dto.NFTShareResponse, error) {
	params := map[string]any{"op": "nft_share", "collection": collection, "scope": string(scope)}
	resp, err := fetchCached(ctx, e, domain.COMMUNITY_CACHE_PREFIX, params, func(ctx context.Context) (*dto.NFTShareResponse, error) {
		shares, err := e.communities.NFTShare(ctx, collection, scope)
		if err != nil {
			return nil, err
		}
		return &dto.NFTShareResponse{
			Collection: collection,
			Scope:      string(scope),
			Shares:     shares,
		}, nil
	})
	if err != nil {
		return nil, mapDomainError(err, "Failed to get NFT share")
	}
	return resp, nil
}

func (e *executor) CentralityRanking(ctx context.Context, collection string, limit int) (*dto.RankingResponse, error) {
	params := map[string]any{"op": "ranking", "collection": collection, "limit": limit}
	resp, err := fetchCached(ctx, e, domain.CENTRALITY_CACHE_PREFIX, params, func(ctx context.Context) (*dto.RankingResponse, error) {
		ranking, err := e.centrality.TopCentralNodes(ctx, collection, limit)
		if err != nil {
			return nil, err
		}
		return dto.MapRankingToDTO(ranking), nil
	})
	if err != nil {
		return nil, mapDomainError(err, "Failed to compute centrality ranking")
	}
	return resp, nil
}

func (e *executor) ActivityRanking(ctx context.Context, scope domain.RankScope, collection string, window domain.TimeWindow, limit int) (*dto.ActivityRankingResponse, error) {
	params := map[string]any{
		"op":         "activity_ranking",
		"scope":      string(scope),
		"collection": collection,
		"window":     window,
		"limit":      limit,
	}
	resp, err := fetchCached(ctx, e, domain.ANALYTICS_CACHE_PREFIX, params, func(ctx context.Context) (*dto.ActivityRankingResponse, error) {
		ranking, err := e.analytics.Ranking(ctx, scope, collection, window, limit)
		if err != nil {
			return nil, err
		}
		return dto.MapActivityRankingToDTO(ranking), nil
	})
	if err != nil {
		return nil, mapDomainError(err, "Failed to compute activity ranking")
	}
	return resp, nil
}

func (e *executor) SearchAccount(ctx context.Context, address string) (*dto.AccountSearchResponse, error) {
	params := map[string]any{"op": "search_account", "address": address}
	resp, err := fetchCached(ctx, e, domain.ANALYTICS_CACHE_PREFIX, params, func(ctx context.Context) (*dto.AccountSearchResponse, error) {
		profile, err := e.analytics.FindAccount(ctx, address)
		if err != nil {
			return nil, err
		}
		return &dto.AccountSearchResponse{Account: profile}, nil
	})
	if err != nil {
		return nil, mapDomainError(err, "Failed to search account")
	}
	return resp, nil
}

func (e *executor) SearchNFT(ctx context.Context, collection, identifier string) (*dto.NFTSearchResponse, error) {
	params := map[string]any{"op": "search_nft", "collection": collection, "identifier": identifier}
	resp, err := fetchCached(ctx, e, domain.ANALYTICS_CACHE_PREFIX, params, func(ctx context.Context) (*dto.NFTSearchResponse, error) {
		profile, err := e.analytics.FindNFT(ctx, collection, identifier)
		if err != nil {
			return nil, err
		}
		return &dto.NFTSearchResponse{NFT: profile}, nil
	})
	if err != nil {
		return nil, mapDomainError(err, "Failed to search NFT")
	}
	return resp, nil
}

func (e *executor) EventHistory(ctx context.Context, relation domain.RelationType, collection string, window domain.TimeWindow) (*dto.SeriesResponse, error) {
	params := map[string]any{
		"op":         "event_history",
		"relation":   string(relation),
		"collection": collection,
		"window":     window,
	}
	resp, err := fetchCached(ctx, e, domain.ANALYTICS_CACHE_PREFIX, params, func(ctx context.Context) (*dto.SeriesResponse, error) {
		series, err := e.analytics.EventHistory(ctx, relation, collection, window)
		if err != nil {
			return nil, err
		}
		return dto.MapSeriesToDTO(series), nil
	})
	if err != nil {
		return nil, mapDomainError(err, "Failed to compute event history")
	}
	return resp, nil
}

func (e *executor) ActiveAccountHistory(ctx context.Context, relations []domain.RelationType, collection string, window domain.TimeWindow) (*dto.SeriesResponse, error) {
	labels := make([]string, 0, len(relations))
	for _, relation := range relations {
		labels = append(labels, string(relation))
	}
	params := map[string]any{
		"op":         "active_account_history",
		"relations":  labels,
		"collection": collection,
		"window":     window,
	}
	resp, err := fetchCached(ctx, e, domain.ANALYTICS_CACHE_PREFIX, params, func(ctx context.Context) (*dto.SeriesResponse, error) {
		series, err := e.analytics.ActiveAccountHistory(ctx, relations, collection, window)
		if err != nil {
			return nil, err
		}
		return dto.MapSeriesToDTO(series), nil
	})
	if err != nil {
		return nil, mapDomainError(err, "Failed to compute active account history")
	}
	return resp, nil
}

func (e *executor) Inequality(ctx context.Context, coeff analytics.Coefficient, relation domain.RelationType, collection string, window domain.TimeWindow) (*dto.InequalityResponse, error) {
	params := map[string]any{
		"op":          "inequality",
		"coefficient": string(coeff),
		"relation":    string(relation),
		"collection":  collection,
		"window":      window,
	}
	resp, err := fetchCached(ctx, e, domain.ANALYTICS_CACHE_PREFIX, params, func(ctx context.Context) (*dto.InequalityResponse, error) {
		value, err := e.analytics.Inequality(ctx, coeff, relation, collection, window)
		if err != nil {
			return nil, err
		}
		return &dto.InequalityResponse{
			Coefficient: string(coeff),
			Relation:    string(relation),
			Collection:  collection,
			Value:       value,
		}, nil
	})
	if err != nil {
		return nil, mapDomainError(err, "Failed to compute inequality coefficient")
	}
	return resp, nil
}

func (e *executor) InequalityHistory(ctx context.Context, coeff analytics.Coefficient, relation domain.RelationType, collection string, window domain.TimeWindow) (*dto.SeriesResponse, error) {
	params := map[string]any{
		"op":          "inequality_history",
		"coefficient": string(coeff),
		"relation":    string(relation),
		"collection":  collection,
		"window":      window,
	}
	resp, err := fetchCached(ctx, e, domain.ANALYTICS_CACHE_PREFIX, params, func(ctx context.Context) (*dto.SeriesResponse, error) {
		series, err := e.analytics.InequalityHistory(ctx, coeff, relation, collection, window)
		if err != nil {
			return nil, err
		}
		return dto.MapSeriesToDTO(series), nil
	})
	if err != nil {
		return nil, mapDomainError(err, "Failed to compute inequality history")
	}
	return resp, nil
}

// mapDomainError translates domain sentinel errors into API errors. Anything
// unrecognized becomes a database error carrying the fallback message.
func mapDomainError(err error, fallback string) error {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	case errors.Is(err, domain.ErrCollectionNotFound):
		return apierrors.NewNotFoundError("Collection not found")
	case errors.Is(err, domain.ErrCommunityNotFound):
		return apierrors.NewNotFoundError("Community not found")
	case errors.Is(err, domain.ErrScopeNotFound):
		return apierrors.NewNotFoundError("Scope not found")
	case errors.Is(err, domain.ErrRankScopeNotFound):
		return apierrors.NewNotFoundError("Ranking scope not found")
	case errors.Is(err, domain.ErrRelationTypeNotFound):
		return apierrors.NewNotFoundError("Relationship type not found")
	case errors.Is(err, domain.ErrAccountNotFound):
		return apierrors.NewNotFoundError("Account not found")
	case errors.Is(err, domain.ErrNFTNotFound):
		return apierrors.NewNotFoundError("NFT not found")
	case errors.Is(err, analytics.ErrCollectionRequired):
		return apierrors.NewValidationError(analytics.ErrCollectionRequired.Error())
	case errors.Is(err, analytics.ErrInvalidAddress):
		return apierrors.NewValidationError(analytics.ErrInvalidAddress.Error())
	default:
		return apierrors.NewDatabaseError(fmt.Sprintf("%s: %v", fallback, err))
	}
}
