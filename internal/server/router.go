package server

import (
	"net/http"

	escrow "escrow-engine/internal/escrowService"
	handler "escrow-engine/services/escrow/handler"

	"github.com/gin-gonic/gin"
)

// Options tunes the router beyond the escrow routes
type Options struct {
	// CurrencyDecimals is the precision of the display amounts in responses
	CurrencyDecimals int32
	// Limiter throttles per client IP; nil disables throttling
	Limiter *ClientLimiter
	// Metrics serves GET /metrics when set
	Metrics http.Handler
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(escrowService *escrow.EscrowService, opts Options) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestIDMiddleware)     // X-Request-ID on every response
	router.Use(RequestLoggerMiddleware) // custom request logging

	if opts.Metrics != nil {
		router.GET("/metrics", gin.WrapH(opts.Metrics))
	}

	escrowHandler := handler.NewEscrowHandler(escrowService, opts.CurrencyDecimals)

	api := router.Group("")
	api.Use(RateLimitMiddleware(opts.Limiter))

	items := api.Group("/items")
	{
		items.POST("", escrowHandler.ListItemHandler)
		items.GET("/:item_id", escrowHandler.GetItemHandler)
		items.GET("/:item_id/events", escrowHandler.GetItemEventsHandler)
		items.POST("/:item_id/purchase", escrowHandler.PurchaseHandler)
		items.POST("/:item_id/confirm", escrowHandler.ConfirmDeliveryHandler)
		items.POST("/:item_id/refund-request", escrowHandler.RequestRefundHandler)
		items.POST("/:item_id/refund-agreement", escrowHandler.AgreeToRefundHandler)
		items.POST("/:item_id/resolve", escrowHandler.ResolveDisputeHandler)
	}

	fee := api.Group("/fee")
	{
		fee.GET("", escrowHandler.GetFeeHandler)
		fee.PUT("", escrowHandler.UpdateFeeHandler)
	}

	accounts := api.Group("")
	{
		accounts.POST("/deposits", escrowHandler.DepositHandler)
		accounts.GET("/accounts/:account", escrowHandler.GetAccountHandler)
	}

	return router
}
