package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/alexpan006/blockdash-api/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/healthz", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Sync endpoints (public read access)
		v1.GET("/sync/last-update", handler.GetLastUpdate)
		v1.GET("/sync/frequency", handler.GetFrequency)
		v1.GET("/sync/runs", handler.ListRuns)
		v1.GET("/sync/triggers", handler.ListTriggers)

		// Sync mutations (requires authentication)
		v1.PUT("/sync/frequency", middleware.Auth(authCfg), handler.SetFrequency)
		v1.DELETE("/sync/triggers/:id", middleware.Auth(authCfg), handler.RemoveTrigger)
		v1.POST("/sync/triggers/:id/fire", middleware.Auth(authCfg), handler.FireTrigger)

		// Community endpoints (public read access)
		v1.GET("/communities/summary", handler.GetCommunitySummary)
		v1.GET("/communities/members", handler.GetCommunityMembers)
		v1.GET("/communities/nft-share", handler.GetNFTShare)

		// Centrality endpoints (public read access)
		v1.GET("/centrality/ranking", handler.GetCentralityRanking)

		// Activity ranking (public read access)
		v1.GET("/ranking", handler.GetActivityRanking)

		// Search endpoints (public read access)
		v1.GET("/search/account", handler.SearchAccount)
		v1.GET("/search/nft", handler.SearchNFT)

		// Temporal history endpoints (public read access)
		v1.GET("/history/transactions", handler.GetTransactionHistory)
		v1.GET("/history/mints", handler.GetMintHistory)
		v1.GET("/history/active-accounts", handler.GetActiveAccountHistory)

		// Inequality endpoints (public read access)
		v1.GET("/equality/gini", handler.GetGini)
		v1.GET("/equality/gini/history", handler.GetGiniHistory)
		v1.GET("/equality/nakamoto", handler.GetNakamoto)
		v1.GET("/equality/nakamoto/history", handler.GetNakamotoHistory)
	}
}
