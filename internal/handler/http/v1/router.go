package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1.
// Запись требует API-ключ, чтение открыто.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	auth := APIKeyAuthMiddleware(h.cfg, h.logger)
	limit := RateLimitMiddleware(h.cfg.RateLimitRPS, h.cfg.RateLimitBurst, h.logger)

	outages := api.Group("/outages")
	{
		outages.POST("", limit, auth, h.createOutage)
		outages.GET("", h.listOutages)
		// /nearby регистрируем до /:id
		outages.GET("/nearby", h.findNearby)
		outages.GET("/:id", h.getOutage)
		outages.PATCH("/:id/status", auth, h.updateOutageStatus)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
