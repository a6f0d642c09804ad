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

// InstallationHandler handles HTTP requests for installations
type InstallationHandler struct {
	service service.InstallationServiceInterface
}

// NewInstallationHandler creates a new installation handler
func NewInstallationHandler(service service.InstallationServiceInterface) *InstallationHandler {
	return &InstallationHandler{service: service}
}

// CreateInstallation handles POST /api/v1/installations
// @Summary Create a new installation
// @Description Create a guarded site. Its required posts are materialized as unassigned slots.
// @Tags installations
// @Accept json
// @Produce json
// @Param installation body service.CreateInstallationRequest true "Installation data"
// @Success 201 {object} models.Installation "Successfully created installation"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Client not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /installations [post]
func (h *InstallationHandler) CreateInstallation(c *gin.Context) {
	var req service.CreateInstallationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	installation, err := h.service.Create(&req, auth.Actor(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrServiceRoleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create installation", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, installation)
}

// GetInstallation handles GET /api/v1/installations/:id
// @Summary Get installation by ID
// @Description Get a specific installation by its UUID
// @Tags installations
// @Accept json
// @Produce json
// @Param id path string true "Installation ID (UUID)"
// @Param include_posts query bool false "Include operational posts" default(false)
// @Success 200 {object} models.Installation "Successfully retrieved installation"
// @Failure 400 {object} ErrorResponse "Invalid installation ID"
// @Failure 404 {object} ErrorResponse "Installation not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /installations/{id} [get]
func (h *InstallationHandler) GetInstallation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid installation ID: invalid UUID format"})
		return
	}

	var installation interface{}
	if c.Query("include_posts") == "true" {
		installation, err = h.service.GetWithPosts(id)
	} else {
		installation, err = h.service.GetByID(id)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrInstallationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get installation", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, installation)
}

// ListInstallations handles GET /api/v1/installations
// @Summary List installations
// @Description Get a paginated list of installations, optionally filtered by client
// @Tags installations
// @Accept json
// @Produce json
// @Param client_id query string false "Filter by client ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.InstallationListResponse "Successfully retrieved installations"
// @Failure 400 {object} ErrorResponse "Invalid client ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /installations [get]
func (h *InstallationHandler) ListInstallations(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	var clientID *uuid.UUID
	if raw := c.Query("client_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID: invalid UUID format"})
			return
		}
		clientID = &id
	}

	resp, err := h.service.List(clientID, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list installations", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateInstallation handles PUT /api/v1/installations/:id
// @Summary Update an installation
// @Description Update an existing installation's details
// @Tags installations
// @Accept json
// @Produce json
// @Param id path string true "Installation ID (UUID)"
// @Param installation body service.UpdateInstallationRequest true "Installation data"
// @Success 200 {object} models.Installation "Successfully updated installation"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Installation not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /installations/{id} [put]
func (h *InstallationHandler) UpdateInstallation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid installation ID: invalid UUID format"})
		return
	}

	var req service.UpdateInstallationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	installation, err := h.service.Update(id, &req, auth.Actor(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrInstallationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update installation", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, installation)
}
