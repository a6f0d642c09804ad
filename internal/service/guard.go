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

// GuardService handles business logic for the guard roster
type GuardService struct {
	repo      *repository.GuardRepository
	validator *validator.Validate
}

// NewGuardService creates a new guard service
func NewGuardService(repo *repository.GuardRepository, validator *validator.Validate) *GuardService {
	return &GuardService{repo: repo, validator: validator}
}

// CreateGuardRequest represents the request to create a guard
type CreateGuardRequest struct {
	FirstName       string   `json:"first_name" validate:"required,min=1,max=60"`
	LastName        string   `json:"last_name" validate:"required,min=1,max=60"`
	Latitude        *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude       *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	ExperienceYears *int     `json:"experience_years,omitempty" validate:"omitempty,min=0,max=60"`
	AvailableNow    bool     `json:"available_now"`
}

// UpdateGuardRequest represents the request to update a guard
type UpdateGuardRequest struct {
	FirstName       *string  `json:"first_name,omitempty" validate:"omitempty,min=1,max=60"`
	LastName        *string  `json:"last_name,omitempty" validate:"omitempty,min=1,max=60"`
	Latitude        *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude       *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	ExperienceYears *int     `json:"experience_years,omitempty" validate:"omitempty,min=0,max=60"`
	AvailableNow    *bool    `json:"available_now,omitempty"`
	Active          *bool    `json:"active,omitempty"`
}

// GuardListResponse represents a paginated list of guards
type GuardListResponse struct {
	Guards   []models.Guard `json:"guards"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create creates a new guard
func (s *GuardService) Create(req *CreateGuardRequest, actor string) (*models.Guard, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	guard := &models.Guard{
		BaseModel:       models.BaseModel{CreatedBy: actor, UpdatedBy: actor},
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		ExperienceYears: req.ExperienceYears,
		AvailableNow:    req.AvailableNow,
		Active:          true,
	}
	if err := s.repo.Create(guard); err != nil {
		return nil, fmt.Errorf("failed to create guard: %w", err)
	}
	return guard, nil
}

// GetByID retrieves a guard by ID
func (s *GuardService) GetByID(id uuid.UUID) (*models.Guard, error) {
	guard, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGuardNotFound
		}
		return nil, fmt.Errorf("failed to get guard: %w", err)
	}
	return guard, nil
}

// List retrieves guards with pagination, optionally filtered by name query
func (s *GuardService) List(query string, page, pageSize int) (*GuardListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	var (
		guards []models.Guard
		total  int64
		err    error
	)
	if query != "" {
		guards, total, err = s.repo.Search(query, pageSize, offset)
	} else {
		guards, total, err = s.repo.GetAll(pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list guards: %w", err)
	}
	return &GuardListResponse{Guards: guards, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update updates a guard
func (s *GuardService) Update(id uuid.UUID, req *UpdateGuardRequest, actor string) (*models.Guard, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	guard, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		guard.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		guard.LastName = *req.LastName
	}
	if req.Latitude != nil {
		guard.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		guard.Longitude = req.Longitude
	}
	if req.ExperienceYears != nil {
		guard.ExperienceYears = req.ExperienceYears
	}
	if req.AvailableNow != nil {
		guard.AvailableNow = *req.AvailableNow
	}
	if req.Active != nil {
		guard.Active = *req.Active
	}
	guard.UpdatedBy = actor

	if err := s.repo.Update(guard); err != nil {
		return nil, fmt.Errorf("failed to update guard: %w", err)
	}
	return guard, nil
}
