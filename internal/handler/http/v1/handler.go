package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/outage_reporting_system/internal/config"
	"github.com/shenikar/outage_reporting_system/internal/models"
	"github.com/shenikar/outage_reporting_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	outageService service.OutageService
	logger        *logrus.Logger
	validate      *validator.Validate
	cfg           *config.Config
}

func NewHandler(outageService service.OutageService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		outageService: outageService,
		logger:        logger,
		validate:      validator.New(),
		cfg:           cfg,
	}
}

// @Summary Report an outage
// @Description Create a new outage report. Coordinates are optional if an address is given. Requires API key.
// @Tags Outages
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param outage body CreateOutageRequest true "Outage report"
// @Success 201 {object} OutageResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "Location could not be resolved"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /outages [post]
func (h *Handler) createOutage(c *gin.Context) {
	var input CreateOutageRequest
	log := h.logger.WithField("method", "createOutage")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	input.Type = strings.TrimSpace(input.Type)
	input.Description = strings.TrimSpace(input.Description)
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if (input.Latitude == nil) != (input.Longitude == nil) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "latitude and longitude must be provided together"})
		return
	}

	model := DTOToOutageModel(input)
	if err := h.outageService.ReportOutage(c.Request.Context(), model); err != nil {
		if errors.Is(err, service.ErrLocationUnresolved) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": service.ErrLocationUnresolved.Error()})
			return
		}
		log.WithError(err).Error("Failed to create outage in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToOutageResponse(model))
}

// @Summary List outages
// @Description List all outage reports newest first, optionally filtered by type.
// @Tags Outages
// @Produce json
// @Param type query string false "Outage type, e.g. electricity"
// @Success 200 {array} OutageResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /outages [get]
func (h *Handler) listOutages(c *gin.Context) {
	log := h.logger.WithField("method", "listOutages")

	outages, err := h.outageService.ListOutages(c.Request.Context(), strings.TrimSpace(c.Query("type")))
	if err != nil {
		log.WithError(err).Error("Failed to list outages from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToOutageResponses(outages))
}

// @Summary Get outage by ID
// @Description Get a single outage report by its ID.
// @Tags Outages
// @Produce json
// @Param id path string true "Outage ID"
// @Success 200 {object} OutageResponse
// @Failure 404 {object} map[string]string "Outage not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /outages/{id} [get]
func (h *Handler) getOutage(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getOutage").WithField("id", id)

	outage, err := h.outageService.GetOutage(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrOutageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "outage not found"})
			return
		}
		log.WithError(err).Error("Failed to get outage from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToOutageResponse(outage))
}

// @Summary Update outage status
// @Description Mark an outage as active or resolved. Requires API key.
// @Tags Outages
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Outage ID"
// @Param status body UpdateStatusRequest true "New status"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Outage not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /outages/{id}/status [patch]
func (h *Handler) updateOutageStatus(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateOutageStatus").WithField("id", id)

	var input UpdateStatusRequest
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

	if err := h.outageService.UpdateOutageStatus(c.Request.Context(), id, input.Status); err != nil {
		switch {
		case errors.Is(err, models.ErrOutageNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "outage not found"})
		case errors.Is(err, service.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.WithError(err).Error("Failed to update outage status in service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Find outages nearby
// @Description Return outages within radius_km (inclusive) of the given point, in store order (newest first). Records without coordinates are skipped.
// @Tags Outages
// @Produce json
// @Param lat query number true "Latitude in degrees"
// @Param lon query number true "Longitude in degrees"
// @Param radius_km query number false "Search radius in kilometres" default(10)
// @Success 200 {array} OutageResponse
// @Failure 400 {object} map[string]string "Invalid coordinates or radius"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /outages/nearby [get]
func (h *Handler) findNearby(c *gin.Context) {
	var input NearbyQueryRequest
	log := h.logger.WithField("method", "findNearby")

	if err := c.ShouldBindQuery(&input); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	outages, err := h.outageService.FindNearby(c.Request.Context(), DTOToNearbyQuery(input))
	if err != nil {
		log.WithError(err).Error("Failed to find nearby outages in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToOutageResponses(outages))
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
