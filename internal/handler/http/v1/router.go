package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Прием координат и настройка шеринга - только с API-ключом
	location := api.Group("/location", APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		location.POST("", h.reportLocation)
		location.PUT("/sharing", h.setSharing)
		location.GET("/sharing/:user_id", h.getSharing)
	}

	// Поиск попутчиков
	travelers := api.Group("/travelers")
	{
		travelers.GET("/nearby", h.nearbyTravelers)
		travelers.GET("/stats", APIKeyAuthMiddleware(h.cfg, h.logger), h.getStats)
	}

	// Точки интереса
	places := api.Group("/places")
	{
		places.GET("/nearby", h.nearbyPlaces)
		places.GET("/:id", h.placeDetails)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
