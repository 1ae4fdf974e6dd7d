package app

import (
	"github.com/gin-gonic/gin"
	handlers "github.com/jeffleon2/draftea-billing-service/internal/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (a *App) RegisterRoutes(h *handlers.BitPayHandler) {
	bitpay := a.Router.Group("/bitpay")
	bitpay.POST("/ipn", h.PostIPN)

	a.Router.GET("/health", h.Health)
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
