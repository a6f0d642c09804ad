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

// ClientHandler handles HTTP requests for clients
type ClientHandler struct {
	service service.ClientServiceInterface
}

// NewClientHandler creates a new client handler
func NewClientHandler(service service.ClientServiceInterface) *ClientHandler {
	return &ClientHandler{service: service}
}

// CreateClient handles POST /api/v1/clients
// @Summary Create a new client
// @Description Create a new contracting client
// @Tags clients
// @Accept json
// @Produce json
// @Param client body service.CreateClientRequest true "Client data"
// @Success 201 {object} models.Client "Successfully created client"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Client already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req service.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	client, err := h.service.Create(&req, auth.Actor(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrClientExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create client", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, client)
}

// GetClient handles GET /api/v1/clients/:id
// @Summary Get client by ID
// @Description Get a specific client by its UUID
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID (UUID)"
// @Success 200 {object} models.Client "Successfully retrieved client"
// @Failure 400 {object} ErrorResponse "Invalid client ID"
// @Failure 404 {object} ErrorResponse "Client not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID: invalid UUID format"})
		return
	}

	client, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get client", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, client)
}

// ListClients handles GET /api/v1/clients
// @Summary List clients
// @Description Get a paginated list of clients
// @Tags clients
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ClientListResponse "Successfully retrieved clients"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.service.List(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list clients", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateClient handles PUT /api/v1/clients/:id
// @Summary Update a client
// @Description Update an existing client's details
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID (UUID)"
// @Param client body service.UpdateClientRequest true "Client data"
// @Success 200 {object} models.Client "Successfully updated client"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Client not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID: invalid UUID format"})
		return
	}

	var req service.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	client, err := h.service.Update(id, &req, auth.Actor(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update client", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, client)
}
