package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/travlrhub/proximity_service/internal/config"
	"github.com/travlrhub/proximity_service/internal/models"
	"github.com/travlrhub/proximity_service/internal/service"
)

type Handler struct {
	presenceService  service.PresenceService
	proximityService service.ProximityService
	placesService    service.PlacesService
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(presenceService service.PresenceService, proximityService service.ProximityService, placesService service.PlacesService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		presenceService:  presenceService,
		proximityService: proximityService,
		placesService:    placesService,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// @Summary Report a device location fix
// @Description Save a location fix for a user. Coordinate and sharing flag are written as one unit. Requires API key.
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param fix body ReportLocationRequest true "Location fix"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /location [post]
func (h *Handler) reportLocation(c *gin.Context) {
	var input ReportLocationRequest
	log := h.logger.WithField("method", "reportLocation")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coord := models.Coordinate{Latitude: input.Latitude, Longitude: input.Longitude}
	if err := h.presenceService.ReportLocation(c.Request.Context(), input.UserID, coord); err != nil {
		log.WithError(err).Error("Failed to report location in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Set the location sharing preference
// @Description Enable or disable location sharing. Opting out clears the stored coordinate. Requires API key.
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param preference body SetSharingRequest true "Sharing preference"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /location/sharing [put]
func (h *Handler) setSharing(c *gin.Context) {
	var input SetSharingRequest
	log := h.logger.WithField("method", "setSharing")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.presenceService.SetSharing(c.Request.Context(), input.UserID, input.Enabled); err != nil {
		log.WithError(err).Error("Failed to set sharing preference in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get the location sharing state of a user
// @Description Get the current sharing state for a user. Requires API key.
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param user_id path string true "User ID"
// @Success 200 {object} SharingResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User not found"
// @Router /location/sharing/{user_id} [get]
func (h *Handler) getSharing(c *gin.Context) {
	userID := c.Param("user_id")
	log := h.logger.WithField("method", "getSharing").WithField("user_id", userID)

	user, err := h.presenceService.GetUser(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).Warn("Failed to get user from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToSharingResponse(user))
}

// @Summary Find travelers near a point
// @Description Find users sharing a fresh location within a radius of the reference point, sorted by distance. Degrades to an empty list on downstream failure.
// @Tags Travelers
// @Accept json
// @Produce json
// @Param lat query number true "Reference latitude"
// @Param lon query number true "Reference longitude"
// @Param radius_km query number false "Max distance in kilometers" default(10)
// @Param max_results query int false "Max number of results" default(20)
// @Param exclude_user_id query string false "User ID to exclude (the caller)"
// @Success 200 {array} TravelerResponse
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Router /travelers/nearby [get]
func (h *Handler) nearbyTravelers(c *gin.Context) {
	log := h.logger.WithField("method", "nearbyTravelers")

	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	if latErr != nil || lonErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reference coordinates"})
		return
	}

	radiusKm, err := strconv.ParseFloat(c.DefaultQuery("radius_km", "0"), 64)
	if err != nil || radiusKm <= 0 {
		radiusKm = h.cfg.NearbyRadiusKm
	}
	maxResults, err := strconv.Atoi(c.DefaultQuery("max_results", "0"))
	if err != nil || maxResults <= 0 {
		maxResults = h.cfg.NearbyMaxResults
	}
	excludeUserID := c.Query("exclude_user_id")

	reference := &models.Coordinate{Latitude: lat, Longitude: lon}
	travelers := h.proximityService.FindNearbyTravelers(c.Request.Context(), reference, excludeUserID, radiusKm, maxResults)

	log.WithField("count", len(travelers)).Debug("Nearby travelers request served")
	c.JSON(http.StatusOK, ModelsToTravelerResponses(travelers))
}

// @Summary Get sharer statistics
// @Description Get the count of users currently sharing a fresh location. Requires API key.
// @Tags Travelers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /travelers/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	count, err := h.proximityService.ActiveSharerCount(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{SharerCount: count})
}

// @Summary Find places near a point
// @Description Search the external places provider around a point, each place decorated with a traveler count.
// @Tags Places
// @Accept json
// @Produce json
// @Param lat query number true "Center latitude"
// @Param lon query number true "Center longitude"
// @Param radius query int false "Search radius in meters" default(1500)
// @Param category query string false "Place category filter"
// @Param viewer_id query string false "Viewing user ID"
// @Success 200 {array} PlaceResponse
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /places/nearby [get]
func (h *Handler) nearbyPlaces(c *gin.Context) {
	log := h.logger.WithField("method", "nearbyPlaces")

	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	if latErr != nil || lonErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid center coordinates"})
		return
	}

	radiusMeters, err := strconv.Atoi(c.DefaultQuery("radius", "0"))
	if err != nil || radiusMeters <= 0 {
		radiusMeters = h.cfg.PlacesRadiusMeters
	}

	center := models.Coordinate{Latitude: lat, Longitude: lon}
	places, err := h.placesService.NearbyPlaces(c.Request.Context(), center, radiusMeters, c.Query("category"), c.Query("viewer_id"))
	if err != nil {
		log.WithError(err).Error("Failed to fetch nearby places from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToPlaceResponses(places))
}

// @Summary Get place details
// @Description Get a detail record for a place from the external provider.
// @Tags Places
// @Accept json
// @Produce json
// @Param id path string true "Place ID"
// @Success 200 {object} PlaceResponse
// @Failure 404 {object} map[string]string "Place not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /places/{id} [get]
func (h *Handler) placeDetails(c *gin.Context) {
	placeID := c.Param("id")
	log := h.logger.WithField("method", "placeDetails").WithField("place_id", placeID)

	place, err := h.placesService.PlaceDetails(c.Request.Context(), placeID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch place details from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if place == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "place not found"})
		return
	}

	c.JSON(http.StatusOK, ModelToPlaceResponse(place))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
