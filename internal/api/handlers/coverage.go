package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"guard-ops-backend/internal/auth"
	"guard-ops-backend/internal/database/models"
	apperrors "guard-ops-backend/internal/errors"
	"guard-ops-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CoverageHandler handles HTTP requests for the coverage detector and the
// assignment engine.
type CoverageHandler struct {
	detector service.CoverageDetectorInterface
	engine   service.AssignmentEngineInterface
}

// NewCoverageHandler creates a new coverage handler
func NewCoverageHandler(detector service.CoverageDetectorInterface, engine service.AssignmentEngineInterface) *CoverageHandler {
	return &CoverageHandler{detector: detector, engine: engine}
}

// PendingCoverageListResponse represents a paginated list of pending coverage records
type PendingCoverageListResponse struct {
	PendingCoverage []models.PendingCoverage `json:"pending_coverage"`
	Total           int64                    `json:"total"`
	Page            int                      `json:"page"`
	PageSize        int                      `json:"page_size"`
}

// Detect handles POST /api/v1/coverage/detect
// @Summary Run the coverage gap detector
// @Description Scan posts for uncovered duty on the evaluated date and create or refresh pending-coverage records. Idempotent per open gap.
// @Tags coverage
// @Accept json
// @Produce json
// @Param request body service.DetectRequest true "Detection scope"
// @Success 200 {object} service.DetectReport "Detection report"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Installation not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /coverage/detect [post]
func (h *CoverageHandler) Detect(c *gin.Context) {
	var req service.DetectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	report, err := h.detector.Detect(&req, auth.Actor(c))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidMonth):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to run detection", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, report)
}

// ListPending handles GET /api/v1/coverage/pending
// @Summary List pending coverage records
// @Description Get a paginated list of coverage records, optionally filtered by state
// @Tags coverage
// @Accept json
// @Produce json
// @Param state query string false "Coverage state filter" default(pending)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} PendingCoverageListResponse "Pending coverage records"
// @Failure 400 {object} ErrorResponse "Invalid state"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /coverage/pending [get]
func (h *CoverageHandler) ListPending(c *gin.Context) {
	state := models.CoverageState(c.DefaultQuery("state", string(models.CoverageStatePending)))
	if !state.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coverage state"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	records, total, err := h.detector.ListPending(state, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list pending coverage", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, PendingCoverageListResponse{
		PendingCoverage: records,
		Total:           total,
		Page:            page,
		PageSize:        pageSize,
	})
}

// AutoAssign handles POST /api/v1/coverage/auto-assign
// @Summary Run the automatic assignment engine
// @Description Process every pending coverage record, earliest detection first, binding the best available guard to each. Records with no eligible candidate are surfaced for manual handling.
// @Tags coverage
// @Accept json
// @Produce json
// @Success 200 {object} service.RunReport "Assignment run report"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /coverage/auto-assign [post]
func (h *CoverageHandler) AutoAssign(c *gin.Context) {
	report, err := h.engine.Run(auth.Actor(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to run assignment engine", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}
