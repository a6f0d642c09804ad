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

// GuardHandler handles HTTP requests for the guard roster
type GuardHandler struct {
	service service.GuardServiceInterface
}

// NewGuardHandler creates a new guard handler
func NewGuardHandler(service service.GuardServiceInterface) *GuardHandler {
	return &GuardHandler{service: service}
}

// CreateGuard handles POST /api/v1/guards
// @Summary Create a new guard
// @Description Register a guard on the roster
// @Tags guards
// @Accept json
// @Produce json
// @Param guard body service.CreateGuardRequest true "Guard data"
// @Success 201 {object} models.Guard "Successfully created guard"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /guards [post]
func (h *GuardHandler) CreateGuard(c *gin.Context) {
	var req service.CreateGuardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	guard, err := h.service.Create(&req, auth.Actor(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create guard", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, guard)
}

// GetGuard handles GET /api/v1/guards/:id
// @Summary Get guard by ID
// @Description Get a specific guard by its UUID
// @Tags guards
// @Accept json
// @Produce json
// @Param id path string true "Guard ID (UUID)"
// @Success 200 {object} models.Guard "Successfully retrieved guard"
// @Failure 400 {object} ErrorResponse "Invalid guard ID"
// @Failure 404 {object} ErrorResponse "Guard not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /guards/{id} [get]
func (h *GuardHandler) GetGuard(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid guard ID: invalid UUID format"})
		return
	}

	guard, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrGuardNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get guard", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, guard)
}

// ListGuards handles GET /api/v1/guards
// @Summary List guards
// @Description Get a paginated list of guards, optionally filtered by a name query
// @Tags guards
// @Accept json
// @Produce json
// @Param q query string false "Name search query"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.GuardListResponse "Successfully retrieved guards"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /guards [get]
func (h *GuardHandler) ListGuards(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.service.List(c.Query("q"), page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list guards", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateGuard handles PUT /api/v1/guards/:id
// @Summary Update a guard
// @Description Update a guard's details, availability or coordinates
// @Tags guards
// @Accept json
// @Produce json
// @Param id path string true "Guard ID (UUID)"
// @Param guard body service.UpdateGuardRequest true "Guard data"
// @Success 200 {object} models.Guard "Successfully updated guard"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Guard not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /guards/{id} [put]
func (h *GuardHandler) UpdateGuard(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid guard ID: invalid UUID format"})
		return
	}

	var req service.UpdateGuardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	guard, err := h.service.Update(id, &req, auth.Actor(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrGuardNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update guard", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, guard)
}
