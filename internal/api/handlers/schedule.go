package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"guard-ops-backend/internal/auth"
	apperrors "guard-ops-backend/internal/errors"
	"guard-ops-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ScheduleHandler handles HTTP requests for schedule generation and reads
type ScheduleHandler struct {
	service service.ScheduleGeneratorInterface
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(service service.ScheduleGeneratorInterface) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

// GenerateScheduleRequest scopes one generation run to a post and month
type GenerateScheduleRequest struct {
	PostID uuid.UUID `json:"post_id" binding:"required"`
	Year   int       `json:"year" binding:"required,min=2020,max=2100"`
	Month  int       `json:"month" binding:"required,min=1,max=12"`
}

// GenerateBatchRequest scopes one generation run to a whole installation
type GenerateBatchRequest struct {
	InstallationID uuid.UUID `json:"installation_id" binding:"required"`
	Year           int       `json:"year" binding:"required,min=2020,max=2100"`
	Month          int       `json:"month" binding:"required,min=1,max=12"`
}

// GenerateMonth handles POST /api/v1/schedules/generate
// @Summary Generate a monthly schedule for a post
// @Description Generate planned/off entries for one post and month, continuing the cycle phase from the previous month. Manually overridden entries are never touched.
// @Tags schedules
// @Accept json
// @Produce json
// @Param request body GenerateScheduleRequest true "Generation scope"
// @Success 200 {object} service.GenerateMonthResult "Generation report"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Post not found"
// @Failure 422 {object} ErrorResponse "Post's role has no usable pattern"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /schedules/generate [post]
func (h *ScheduleHandler) GenerateMonth(c *gin.Context) {
	var req GenerateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	result, err := h.service.GenerateMonth(req.PostID, req.Year, req.Month, auth.Actor(c))
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsUnresolvedPattern(err):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInvalidMonth):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate schedule", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// GenerateBatch handles POST /api/v1/schedules/generate-batch
// @Summary Generate monthly schedules for a whole installation
// @Description Generate schedules for every active post of an installation. Posts whose role has no usable pattern are skipped and reported.
// @Tags schedules
// @Accept json
// @Produce json
// @Param request body GenerateBatchRequest true "Generation scope"
// @Success 200 {object} service.BatchGenerateResult "Batch generation report"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Installation not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /schedules/generate-batch [post]
func (h *ScheduleHandler) GenerateBatch(c *gin.Context) {
	var req GenerateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	result, err := h.service.GenerateForInstallation(req.InstallationID, req.Year, req.Month, auth.Actor(c))
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate schedules", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetMonth handles GET /api/v1/schedules/:postID/:year/:month
// @Summary Get a post's monthly schedule
// @Description Get every schedule entry of one post for one month, ordered by day
// @Tags schedules
// @Accept json
// @Produce json
// @Param postID path string true "Post ID (UUID)"
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {array} models.ScheduleEntry "Schedule entries"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 404 {object} ErrorResponse "Post not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /schedules/{postID}/{year}/{month} [get]
func (h *ScheduleHandler) GetMonth(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("postID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID: invalid UUID format"})
		return
	}
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month: must be between 1 and 12"})
		return
	}

	entries, err := h.service.GetMonth(postID, year, month)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get schedule", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}
