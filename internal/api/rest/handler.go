package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexpan006/blockdash-api/internal/analytics"
	"github.com/alexpan006/blockdash-api/internal/api/shared/dto"
	"github.com/alexpan006/blockdash-api/internal/api/shared/executor"
	"github.com/alexpan006/blockdash-api/internal/domain"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// GetLastUpdate returns the wall-clock time of the latest completed sync
	// GET /api/v1/sync/last-update
	GetLastUpdate(c *gin.Context)

	// GetFrequency returns a collection's refresh frequency
	// GET /api/v1/sync/frequency?collection=<slug>
	GetFrequency(c *gin.Context)

	// SetFrequency persists a collection's refresh frequency
	// PUT /api/v1/sync/frequency
	SetFrequency(c *gin.Context)

	// ListTriggers lists the armed triggers with their next fire times
	// GET /api/v1/sync/triggers
	ListTriggers(c *gin.Context)

	// RemoveTrigger disarms a trigger
	// DELETE /api/v1/sync/triggers/:id
	RemoveTrigger(c *gin.Context)

	// FireTrigger runs a trigger's body immediately
	// POST /api/v1/sync/triggers/:id/fire
	FireTrigger(c *gin.Context)

	// ListRuns pages through the sync run journal, newest first
	// GET /api/v1/sync/runs?collection=<slug>&limit=<limit>&offset=<offset>
	ListRuns(c *gin.Context)

	// GetCommunitySummary returns the stored community summary
	// GET /api/v1/communities/summary?collection=<slug>
	GetCommunitySummary(c *gin.Context)

	// GetCommunityMembers pages through the member nodes of one community
	// GET /api/v1/communities/members?collection=<slug>&scope=<scope>&community_id=<id>&limit=<limit>&offset=<offset>
	GetCommunityMembers(c *gin.Context)

	// GetNFTShare breaks down one scope's summary communities by node kind
	// GET /api/v1/communities/nft-share?collection=<slug>&scope=<scope>
	GetNFTShare(c *gin.Context)

	// GetCentralityRanking computes the top central nodes
	// GET /api/v1/centrality/ranking?collection=<slug>&limit=<limit>
	GetCentralityRanking(c *gin.Context)

	// GetActivityRanking ranks accounts or tokens by edge activity
	// GET /api/v1/ranking?scope=<scope>&collection=<slug>&limit=<limit>&year_from=...&month_to=...
	GetActivityRanking(c *gin.Context)

	// SearchAccount fetches an account's neighborhood profile
	// GET /api/v1/search/account?address=<0x address>
	SearchAccount(c *gin.Context)

	// SearchNFT fetches a token's neighborhood profile
	// GET /api/v1/search/nft?collection=<slug>&identifier=<id>
	SearchNFT(c *gin.Context)

	// GetTransactionHistory counts transactions per day
	// GET /api/v1/history/transactions?collection=<slug>&year_from=...&month_to=...
	GetTransactionHistory(c *gin.Context)

	// GetMintHistory counts mint events per day
	// GET /api/v1/history/mints?collection=<slug>&year_from=...&month_to=...
	GetMintHistory(c *gin.Context)

	// GetActiveAccountHistory counts active accounts per day
	// GET /api/v1/history/active-accounts?collection=<slug>&relation_type=transacted&relation_type=mint&...
	GetActiveAccountHistory(c *gin.Context)

	// GetGini computes the Gini coefficient over a window
	// GET /api/v1/equality/gini?collection=<slug>&relation_type=<type>&...
	GetGini(c *gin.Context)

	// GetGiniHistory computes the Gini coefficient per month
	// GET /api/v1/equality/gini/history?collection=<slug>&relation_type=<type>&...
	GetGiniHistory(c *gin.Context)

	// GetNakamoto computes the Nakamoto coefficient over a window
	// GET /api/v1/equality/nakamoto?collection=<slug>&relation_type=<type>&...
	GetNakamoto(c *gin.Context)

	// GetNakamotoHistory computes the Nakamoto coefficient per month
	// GET /api/v1/equality/nakamoto/history?collection=<slug>&relation_type=<type>&...
	GetNakamotoHistory(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /healthz
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{executor: exec}
}

func (h *handler) GetLastUpdate(c *gin.Context) {
	resp, err := h.executor.LastUpdate(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get last update")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetFrequency(c *gin.Context) {
	collection := c.Query("collection")
	if collection == "" {
		respondBadRequest(c, "Collection is required")
		return
	}

	resp, err := h.executor.GetFrequency(c.Request.Context(), collection)
	if err != nil {
		respondError(c, err, "Failed to get update frequency")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) SetFrequency(c *gin.Context) {
	var req dto.SetFrequencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.SetFrequency(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to set update frequency")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) ListTriggers(c *gin.Context) {
	c.JSON(http.StatusOK, h.executor.ListTriggers(c.Request.Context()))
}

func (h *handler) RemoveTrigger(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Trigger id is required")
		return
	}

	if err := h.executor.RemoveTrigger(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to remove trigger")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handler) FireTrigger(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Trigger id is required")
		return
	}

	if err := h.executor.FireTrigger(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to fire trigger")
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "fired", "id": id})
}

func (h *handler) ListRuns(c *gin.Context) {
	params, err := ParseSyncRunsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.ListRuns(c.Request.Context(), params.Collection, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to list sync runs")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetCommunitySummary(c *gin.Context) {
	resp, err := h.executor.CommunitySummary(c.Request.Context(), c.Query("collection"))
	if err != nil {
		respondError(c, err, "Failed to get community summary")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetCommunityMembers(c *gin.Context) {
	params, scope, err := ParseCommunityMembersQuery(c)
	if err != nil {
		if errors.Is(err, domain.ErrScopeNotFound) {
			respondNotFound(c, "Scope not found")
			return
		}
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.CommunityMembers(c.Request.Context(), params.Collection, scope, params.CommunityID, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to get community members")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetNFTShare(c *gin.Context) {
	params, scope, err := ParseNFTShareQuery(c)
	if err != nil {
		if errors.Is(err, domain.ErrScopeNotFound) {
			respondNotFound(c, "Scope not found")
			return
		}
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.NFTShare(c.Request.Context(), params.Collection, scope)
	if err != nil {
		respondError(c, err, "Failed to get NFT share")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetCentralityRanking(c *gin.Context) {
	params, err := ParseRankingQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.CentralityRanking(c.Request.Context(), params.Collection, params.Limit)
	if err != nil {
		respondError(c, err, "Failed to compute centrality ranking")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetActivityRanking(c *gin.Context) {
	params, scope, err := ParseActivityRankingQuery(c)
	if err != nil {
		if errors.Is(err, domain.ErrRankScopeNotFound) {
			respondNotFound(c, "Ranking scope not found")
			return
		}
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.ActivityRanking(c.Request.Context(), scope, params.Collection, params.Window(), params.Limit)
	if err != nil {
		respondError(c, err, "Failed to compute activity ranking")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) SearchAccount(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		respondBadRequest(c, "Address is required")
		return
	}

	resp, err := h.executor.SearchAccount(c.Request.Context(), address)
	if err != nil {
		respondError(c, err, "Failed to search account")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) SearchNFT(c *gin.Context) {
	collection := c.Query("collection")
	identifier := c.Query("identifier")
	if collection == "" || identifier == "" {
		respondBadRequest(c, "Collection and identifier are required")
		return
	}

	resp, err := h.executor.SearchNFT(c.Request.Context(), collection, identifier)
	if err != nil {
		respondError(c, err, "Failed to search NFT")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetTransactionHistory(c *gin.Context) {
	h.eventHistory(c, domain.RelationTransacted)
}

func (h *handler) GetMintHistory(c *gin.Context) {
	h.eventHistory(c, domain.RelationMint)
}

func (h *handler) eventHistory(c *gin.Context, relation domain.RelationType) {
	params, err := ParseTemporalQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.EventHistory(c.Request.Context(), relation, params.Collection, params.Window())
	if err != nil {
		respondError(c, err, "Failed to compute event history")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetActiveAccountHistory(c *gin.Context) {
	params, err := ParseTemporalQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	relations, err := params.Relations()
	if err != nil {
		respondNotFound(c, "Relationship type not found")
		return
	}

	resp, err := h.executor.ActiveAccountHistory(c.Request.Context(), relations, params.Collection, params.Window())
	if err != nil {
		respondError(c, err, "Failed to compute active account history")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetGini(c *gin.Context) {
	h.inequality(c, analytics.CoefficientGini)
}

func (h *handler) GetNakamoto(c *gin.Context) {
	h.inequality(c, analytics.CoefficientNakamoto)
}

func (h *handler) inequality(c *gin.Context, coeff analytics.Coefficient) {
	params, err := ParseTemporalQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	// Ownership has no point timestamp: the overall variants only count
	// transacted and mint edges
	relation, err := params.PickRelation(false)
	if err != nil {
		respondNotFound(c, "Relationship type not found")
		return
	}

	resp, err := h.executor.Inequality(c.Request.Context(), coeff, relation, params.Collection, params.Window())
	if err != nil {
		respondError(c, err, "Failed to compute inequality coefficient")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetGiniHistory(c *gin.Context) {
	h.inequalityHistory(c, analytics.CoefficientGini)
}

func (h *handler) GetNakamotoHistory(c *gin.Context) {
	h.inequalityHistory(c, analytics.CoefficientNakamoto)
}

func (h *handler) inequalityHistory(c *gin.Context, coeff analytics.Coefficient) {
	params, err := ParseTemporalQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	relation, err := params.PickRelation(true)
	if err != nil {
		respondNotFound(c, "Relationship type not found")
		return
	}

	resp, err := h.executor.InequalityHistory(c.Request.Context(), coeff, relation, params.Collection, params.Window())
	if err != nil {
		respondError(c, err, "Failed to compute inequality history")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
