package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/alexpan006/blockdash-api/internal/domain"
)

const MAX_PAGE_SIZE = 100

// CommunityMembersQueryParams holds query parameters for GET /communities/members
type CommunityMembersQueryParams struct {
	Collection  string `form:"collection"`
	Scope       string `form:"scope,default=all"`
	CommunityID int64  `form:"community_id" binding:"required"`
	Limit       int    `form:"limit,default=20"`
	Offset      int    `form:"offset,default=0"`
}

// ParseCommunityMembersQuery parses query parameters for GET /communities/members
func ParseCommunityMembersQuery(c *gin.Context) (*CommunityMembersQueryParams, domain.Scope, error) {
	var params CommunityMembersQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, "", err
	}

	scope, err := domain.ParseScope(params.Scope)
	if err != nil {
		return nil, "", err
	}

	if params.Limit <= 0 {
		params.Limit = 20
	}
	if params.Limit > MAX_PAGE_SIZE {
		params.Limit = MAX_PAGE_SIZE
	}
	if params.Offset < 0 {
		params.Offset = 0
	}

	return &params, scope, nil
}

// NFTShareQueryParams holds query parameters for GET /communities/nft-share
type NFTShareQueryParams struct {
	Collection string `form:"collection"`
	Scope      string `form:"scope,default=all"`
}

// ParseNFTShareQuery parses query parameters for GET /communities/nft-share
func ParseNFTShareQuery(c *gin.Context) (*NFTShareQueryParams, domain.Scope, error) {
	var params NFTShareQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, "", err
	}

	scope, err := domain.ParseScope(params.Scope)
	if err != nil {
		return nil, "", err
	}

	return &params, scope, nil
}

// SyncRunsQueryParams holds query parameters for GET /sync/runs
type SyncRunsQueryParams struct {
	Collection string `form:"collection"`
	Limit      int    `form:"limit,default=20"`
	Offset     int    `form:"offset,default=0"`
}

// ParseSyncRunsQuery parses query parameters for GET /sync/runs
func ParseSyncRunsQuery(c *gin.Context) (*SyncRunsQueryParams, error) {
	var params SyncRunsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Limit <= 0 {
		params.Limit = 20
	}
	if params.Limit > MAX_PAGE_SIZE {
		params.Limit = MAX_PAGE_SIZE
	}
	if params.Offset < 0 {
		params.Offset = 0
	}

	return &params, nil
}

// TimeWindowQuery holds the shared month-granular time range parameters
type TimeWindowQuery struct {
	YearFrom  int `form:"year_from,default=2024"`
	YearTo    int `form:"year_to,default=2024"`
	MonthFrom int `form:"month_from,default=1"`
	MonthTo   int `form:"month_to,default=12"`
}

// Window converts the query parameters into a domain time window
func (q TimeWindowQuery) Window() domain.TimeWindow {
	return domain.TimeWindow{
		YearFrom:  q.YearFrom,
		YearTo:    q.YearTo,
		MonthFrom: q.MonthFrom,
		MonthTo:   q.MonthTo,
	}
}

// ActivityRankingQueryParams holds query parameters for GET /ranking
type ActivityRankingQueryParams struct {
	TimeWindowQuery
	Scope      string `form:"scope"`
	Collection string `form:"collection"`
	Limit      int    `form:"limit,default=10"`
}

// ParseActivityRankingQuery parses query parameters for GET /ranking
func ParseActivityRankingQuery(c *gin.Context) (*ActivityRankingQueryParams, domain.RankScope, error) {
	var params ActivityRankingQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, "", err
	}

	scope, err := domain.ParseRankScope(params.Scope)
	if err != nil {
		return nil, "", err
	}
	if err := params.Window().Validate(); err != nil {
		return nil, "", err
	}

	if params.Limit <= 0 {
		params.Limit = 10
	}
	if params.Limit > MAX_PAGE_SIZE {
		params.Limit = MAX_PAGE_SIZE
	}

	return &params, scope, nil
}

// TemporalQueryParams holds query parameters shared by the history and
// equality endpoints
type TemporalQueryParams struct {
	TimeWindowQuery
	Collection   string   `form:"collection"`
	RelationType []string `form:"relation_type"`
}

// ParseTemporalQuery parses the shared history/equality query parameters
func ParseTemporalQuery(c *gin.Context) (*TemporalQueryParams, error) {
	var params TemporalQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if err := params.Window().Validate(); err != nil {
		return nil, err
	}
	return &params, nil
}

// Relations parses the relation_type labels. Unknown labels map to
// domain.ErrRelationTypeNotFound.
func (p *TemporalQueryParams) Relations() ([]domain.RelationType, error) {
	relations := make([]domain.RelationType, 0, len(p.RelationType))
	for _, label := range p.RelationType {
		relation, err := domain.ParseRelationType(label)
		if err != nil {
			return nil, err
		}
		relations = append(relations, relation)
	}
	return relations, nil
}

// PickRelation reduces the relation_type labels to the single relation the
// equality endpoints compute over: transacted wins over mint wins over owned,
// and owned is only allowed where the caller supports it
func (p *TemporalQueryParams) PickRelation(allowOwned bool) (domain.RelationType, error) {
	relations, err := p.Relations()
	if err != nil {
		return "", err
	}

	picked := domain.RelationType("")
	for _, relation := range relations {
		switch relation {
		case domain.RelationTransacted:
			return domain.RelationTransacted, nil
		case domain.RelationMint:
			picked = domain.RelationMint
		case domain.RelationOwned:
			if picked == "" && allowOwned {
				picked = domain.RelationOwned
			}
		}
	}
	if picked == "" {
		return "", domain.ErrRelationTypeNotFound
	}
	return picked, nil
}

// RankingQueryParams holds query parameters for GET /centrality/ranking
type RankingQueryParams struct {
	Collection string `form:"collection"`
	Limit      int    `form:"limit,default=10"`
}

// ParseRankingQuery parses query parameters for GET /centrality/ranking
func ParseRankingQuery(c *gin.Context) (*RankingQueryParams, error) {
	var params RankingQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Limit <= 0 {
		params.Limit = 10
	}
	if params.Limit > MAX_PAGE_SIZE {
		params.Limit = MAX_PAGE_SIZE
	}

	return &params, nil
}
