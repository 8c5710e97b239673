package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/RackSavant/sistachat-sub000/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// Mutations are signed by the caller's wallet through the JWT subject
	signed := []gin.HandlerFunc{middleware.Auth(authCfg), middleware.RequireCaller()}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Platform endpoints
		v1.GET("/platform", handler.GetPlatform)
		v1.POST("/platform", append(signed, handler.InitializePlatform)...)
		v1.PATCH("/platform", append(signed, handler.UpdatePlatform)...)
		v1.POST("/platform/withdrawals", append(signed, handler.WithdrawFee)...)

		// Settlement account endpoints
		v1.GET("/accounts/:address", handler.GetAccount)
		v1.POST("/accounts/:address/deposits", append(signed, handler.FundAccount)...)

		// Designer endpoints
		v1.POST("/designers", append(signed, handler.RegisterDesigner)...)
		v1.GET("/designers/:owner", handler.GetDesigner)
		v1.GET("/designers/:owner/designs", handler.ListDesigns)

		// Design endpoints
		v1.POST("/designs", append(signed, handler.UploadDesign)...)
		v1.GET("/designs/:address", handler.GetDesign)
		v1.PATCH("/designs/:address/price", append(signed, handler.UpdatePrice)...)
		v1.POST("/designs/:address/purchases", append(signed, handler.Buy)...)
		v1.GET("/designs/:address/escrow", handler.GetEscrow)

		// Distribution is permissionless; an authenticated caller is recorded as the actor
		v1.POST("/designs/:address/distributions", middleware.OptionalAuth(authCfg), handler.DistributeToHolder)

		// Designer token endpoints
		v1.POST("/mints/:address/transfers", append(signed, handler.TransferShares)...)
		v1.GET("/mints/:address/holdings", handler.ListHoldings)
		v1.GET("/mints/:address/holdings/:holder", handler.GetHolding)

		// Journal endpoint (public read access, API keys accepted for operators)
		v1.GET("/journal", middleware.OptionalAuth(authCfg), handler.GetJournal)
	}
}
