package app

import "github.com/hasinhayder/tutor-sslcommerz/internal/handlers"

func (a *App) RegisterRoutes(h *handlers.PaymentHandler) {
	app := a.Router.Group("/payments")
	app.POST("", h.CreateCheckout)
	app.POST("/callback", h.GatewayCallback)
	app.POST("/ipn", h.GatewayIPN)
}
