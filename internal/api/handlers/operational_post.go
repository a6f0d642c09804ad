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

// OperationalPostHandler handles HTTP requests for operational posts
type OperationalPostHandler struct {
	service service.OperationalPostServiceInterface
}

// NewOperationalPostHandler creates a new operational post handler
func NewOperationalPostHandler(service service.OperationalPostServiceInterface) *OperationalPostHandler {
	return &OperationalPostHandler{service: service}
}

// CreatePost handles POST /api/v1/posts
// @Summary Create a new operational post
// @Description Create a guard slot on an installation. A post without a guard starts pending coverage.
// @Tags posts
// @Accept json
// @Produce json
// @Param post body service.CreatePostRequest true "Post data"
// @Success 201 {object} models.OperationalPost "Successfully created post"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Referenced entity not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /posts [post]
func (h *OperationalPostHandler) CreatePost(c *gin.Context) {
	var req service.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	post, err := h.service.Create(&req, auth.Actor(c))
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, post)
}

// GetPost handles GET /api/v1/posts/:id
// @Summary Get operational post by ID
// @Description Get a specific operational post by its UUID
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID (UUID)"
// @Success 200 {object} models.OperationalPost "Successfully retrieved post"
// @Failure 400 {object} ErrorResponse "Invalid post ID"
// @Failure 404 {object} ErrorResponse "Post not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /posts/{id} [get]
func (h *OperationalPostHandler) GetPost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID: invalid UUID format"})
		return
	}

	post, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrOperationalPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get post", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, post)
}

// ListPostsByInstallation handles GET /api/v1/installations/:id/posts
// @Summary List posts of an installation
// @Description Get a paginated list of operational posts for one installation
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Installation ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.PostListResponse "Successfully retrieved posts"
// @Failure 400 {object} ErrorResponse "Invalid installation ID"
// @Failure 404 {object} ErrorResponse "Installation not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /installations/{id}/posts [get]
func (h *OperationalPostHandler) ListPostsByInstallation(c *gin.Context) {
	installationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid installation ID: invalid UUID format"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.service.ListByInstallation(installationID, page, pageSize)
	if err != nil {
		if errors.Is(err, apperrors.ErrInstallationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list posts", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdatePost handles PUT /api/v1/posts/:id
// @Summary Update an operational post
// @Description Update a post's guard binding, label or pending flag
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID (UUID)"
// @Param post body service.UpdatePostRequest true "Post data"
// @Success 200 {object} models.OperationalPost "Successfully updated post"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Post not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /posts/{id} [put]
func (h *OperationalPostHandler) UpdatePost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID: invalid UUID format"})
		return
	}

	var req service.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	post, err := h.service.Update(id, &req, auth.Actor(c))
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeactivatePost handles DELETE /api/v1/posts/:id
// @Summary Deactivate an operational post
// @Description Mark a post inactive. Its schedule history is preserved.
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID (UUID)"
// @Success 204 "Post deactivated"
// @Failure 400 {object} ErrorResponse "Invalid post ID"
// @Failure 404 {object} ErrorResponse "Post not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /posts/{id} [delete]
func (h *OperationalPostHandler) DeactivatePost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID: invalid UUID format"})
		return
	}

	if err := h.service.Deactivate(id, auth.Actor(c)); err != nil {
		if errors.Is(err, apperrors.ErrOperationalPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate post", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
