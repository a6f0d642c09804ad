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
	"github.com/google/uuid"
)

// AssignmentHandler handles HTTP requests for coverage assignments
type AssignmentHandler struct {
	service service.AssignmentEngineInterface
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(service service.AssignmentEngineInterface) *AssignmentHandler {
	return &AssignmentHandler{service: service}
}

// AssignmentListResponse represents a paginated list of a guard's assignments
type AssignmentListResponse struct {
	Assignments []models.Assignment `json:"assignments"`
	Total       int64               `json:"total"`
	Page        int                 `json:"page"`
	PageSize    int                 `json:"page_size"`
}

// ListAssignments handles GET /api/v1/assignments
// @Summary List a guard's assignments
// @Description Get a guard's assignment history, newest first
// @Tags assignments
// @Accept json
// @Produce json
// @Param guard_id query string true "Guard ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} AssignmentListResponse "Assignments"
// @Failure 400 {object} ErrorResponse "Invalid guard ID"
// @Failure 404 {object} ErrorResponse "Guard not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /assignments [get]
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	guardID, err := uuid.Parse(c.Query("guard_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid guard ID: invalid UUID format"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	assignments, total, err := h.service.ListForGuard(guardID, page, pageSize)
	if err != nil {
		if errors.Is(err, apperrors.ErrGuardNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list assignments", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, AssignmentListResponse{
		Assignments: assignments,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	})
}

// FinishAssignment handles POST /api/v1/assignments/:id/finish
// @Summary Finish an assignment
// @Description Close an active assignment as completed and release the guard
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Success 204 "Assignment finished"
// @Failure 400 {object} ErrorResponse "Invalid assignment ID"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Failure 409 {object} ErrorResponse "Assignment is not active"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /assignments/{id}/finish [post]
func (h *AssignmentHandler) FinishAssignment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignment ID: invalid UUID format"})
		return
	}

	if err := h.service.Finish(id, auth.Actor(c)); err != nil {
		h.closeError(c, err, "Failed to finish assignment")
		return
	}
	c.Status(http.StatusNoContent)
}

// CancelAssignment handles POST /api/v1/assignments/:id/cancel
// @Summary Cancel an assignment
// @Description Close an active assignment as cancelled and release the guard
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Success 204 "Assignment cancelled"
// @Failure 400 {object} ErrorResponse "Invalid assignment ID"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Failure 409 {object} ErrorResponse "Assignment is not active"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /assignments/{id}/cancel [post]
func (h *AssignmentHandler) CancelAssignment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignment ID: invalid UUID format"})
		return
	}

	if err := h.service.Cancel(id, auth.Actor(c)); err != nil {
		h.closeError(c, err, "Failed to cancel assignment")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AssignmentHandler) closeError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, apperrors.ErrAssignmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrAssignmentNotActive):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg, "details": err.Error()})
	}
}
