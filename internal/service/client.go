package service

import (
	"errors"
	"fmt"

	"guard-ops-backend/internal/database/models"
	apperrors "guard-ops-backend/internal/errors"
	"guard-ops-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientService handles business logic for clients
type ClientService struct {
	repo      *repository.ClientRepository
	validator *validator.Validate
}

// NewClientService creates a new client service
func NewClientService(repo *repository.ClientRepository, validator *validator.Validate) *ClientService {
	return &ClientService{repo: repo, validator: validator}
}

// CreateClientRequest represents the request to create a client
type CreateClientRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	ContactName string `json:"contact_name,omitempty" validate:"max=100"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       string `json:"phone,omitempty" validate:"max=30"`
}

// UpdateClientRequest represents the request to update a client
type UpdateClientRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	ContactName *string `json:"contact_name,omitempty" validate:"omitempty,max=100"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Active      *bool   `json:"active,omitempty"`
}

// ClientListResponse represents a paginated list of clients
type ClientListResponse struct {
	Clients  []models.Client `json:"clients"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Create creates a new client
func (s *ClientService) Create(req *CreateClientRequest, actor string) (*models.Client, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByName(req.Name); err == nil {
		return nil, apperrors.ErrClientExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check client name: %w", err)
	}

	client := &models.Client{
		BaseModel:   models.BaseModel{CreatedBy: actor, UpdatedBy: actor},
		Name:        req.Name,
		ContactName: req.ContactName,
		Email:       req.Email,
		Phone:       req.Phone,
		Active:      true,
	}
	if err := s.repo.Create(client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return client, nil
}

// GetByID retrieves a client by ID
func (s *ClientService) GetByID(id uuid.UUID) (*models.Client, error) {
	client, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return client, nil
}

// List retrieves clients with pagination
func (s *ClientService) List(page, pageSize int) (*ClientListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	clients, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return &ClientListResponse{Clients: clients, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update updates a client
func (s *ClientService) Update(id uuid.UUID, req *UpdateClientRequest, actor string) (*models.Client, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	client, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.ContactName != nil {
		client.ContactName = *req.ContactName
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Active != nil {
		client.Active = *req.Active
	}
	client.UpdatedBy = actor

	if err := s.repo.Update(client); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return client, nil
}
