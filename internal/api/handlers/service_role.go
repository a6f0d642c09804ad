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

// ServiceRoleHandler handles HTTP requests for service roles
type ServiceRoleHandler struct {
	service service.ServiceRoleServiceInterface
}

// NewServiceRoleHandler creates a new service role handler
func NewServiceRoleHandler(service service.ServiceRoleServiceInterface) *ServiceRoleHandler {
	return &ServiceRoleHandler{service: service}
}

// CreateServiceRole handles POST /api/v1/service-roles
// @Summary Create a new service role
// @Description Create a shift pattern definition (work/rest cycle or weekdays-only)
// @Tags service-roles
// @Accept json
// @Produce json
// @Param role body service.CreateServiceRoleRequest true "Service role data"
// @Success 201 {object} models.ServiceRole "Successfully created service role"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Service role already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /service-roles [post]
func (h *ServiceRoleHandler) CreateServiceRole(c *gin.Context) {
	var req service.CreateServiceRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	role, err := h.service.Create(&req, auth.Actor(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrServiceRoleExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		var validationErr *apperrors.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service role", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, role)
}

// GetServiceRole handles GET /api/v1/service-roles/:id
// @Summary Get service role by ID
// @Description Get a specific service role by its UUID
// @Tags service-roles
// @Accept json
// @Produce json
// @Param id path string true "Service role ID (UUID)"
// @Success 200 {object} models.ServiceRole "Successfully retrieved service role"
// @Failure 400 {object} ErrorResponse "Invalid service role ID"
// @Failure 404 {object} ErrorResponse "Service role not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /service-roles/{id} [get]
func (h *ServiceRoleHandler) GetServiceRole(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service role ID: invalid UUID format"})
		return
	}

	role, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrServiceRoleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get service role", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, role)
}

// ListServiceRoles handles GET /api/v1/service-roles
// @Summary List service roles
// @Description Get a paginated list of service roles
// @Tags service-roles
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ServiceRoleListResponse "Successfully retrieved service roles"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /service-roles [get]
func (h *ServiceRoleHandler) ListServiceRoles(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.service.List(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list service roles", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateServiceRole handles PUT /api/v1/service-roles/:id
// @Summary Update a service role
// @Description Update a role's name, shift times or active flag. The work/rest cycle itself is immutable.
// @Tags service-roles
// @Accept json
// @Produce json
// @Param id path string true "Service role ID (UUID)"
// @Param role body service.UpdateServiceRoleRequest true "Service role data"
// @Success 200 {object} models.ServiceRole "Successfully updated service role"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Service role not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /service-roles/{id} [put]
func (h *ServiceRoleHandler) UpdateServiceRole(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service role ID: invalid UUID format"})
		return
	}

	var req service.UpdateServiceRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	role, err := h.service.Update(id, &req, auth.Actor(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrServiceRoleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update service role", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, role)
}
