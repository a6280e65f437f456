package app

import "github.com/SIRETECH254/sire-payment-tracker/internal/handlers"

func (a *App) RegisterRoutes(h *handlers.TrackingHandler) {
	a.Router.GET("/health", h.Health)

	tracking := a.Router.Group("/tracking")
	tracking.POST("", h.StartTracking)
	tracking.GET("/:id", h.GetTracking)
	tracking.DELETE("/:id", h.StopTracking)

	payments := a.Router.Group("/payments")
	payments.GET("/:paymentId/status", h.GetResolvedStatus)
	payments.GET("/:paymentId/history", h.GetPaymentHistory)
}
