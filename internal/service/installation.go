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

// InstallationService handles business logic for installations. Changing an
// installation's required-post count materializes or deactivates its
// operational posts.
type InstallationService struct {
	repo       *repository.InstallationRepository
	clientRepo *repository.ClientRepository
	postRepo   *repository.OperationalPostRepository
	roleRepo   *repository.ServiceRoleRepository
	validator  *validator.Validate
}

// NewInstallationService creates a new installation service
func NewInstallationService(repo *repository.InstallationRepository, clientRepo *repository.ClientRepository, postRepo *repository.OperationalPostRepository, roleRepo *repository.ServiceRoleRepository, validator *validator.Validate) *InstallationService {
	return &InstallationService{
		repo:       repo,
		clientRepo: clientRepo,
		postRepo:   postRepo,
		roleRepo:   roleRepo,
		validator:  validator,
	}
}

// CreateInstallationRequest represents the request to create an installation
type CreateInstallationRequest struct {
	ClientID      uuid.UUID  `json:"client_id" validate:"required"`
	Name          string     `json:"name" validate:"required,min=1,max=100"`
	Address       string     `json:"address,omitempty" validate:"max=200"`
	Latitude      *float64   `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude     *float64   `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	RequiredPosts int        `json:"required_posts" validate:"min=0,max=100"`
	ServiceRoleID *uuid.UUID `json:"service_role_id,omitempty"`
}

// UpdateInstallationRequest represents the request to update an installation
type UpdateInstallationRequest struct {
	Name      *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Address   *string  `json:"address,omitempty" validate:"omitempty,max=200"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	Active    *bool    `json:"active,omitempty"`
}

// InstallationListResponse represents a paginated list of installations
type InstallationListResponse struct {
	Installations []models.Installation `json:"installations"`
	Total         int64                 `json:"total"`
	Page          int                   `json:"page"`
	PageSize      int                   `json:"page_size"`
}

// Create creates an installation and, when a service role is given,
// materializes its required posts as pending-coverage slots.
func (s *InstallationService) Create(req *CreateInstallationRequest, actor string) (*models.Installation, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.clientRepo.GetByID(req.ClientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to verify client: %w", err)
	}

	if req.RequiredPosts > 0 && req.ServiceRoleID == nil {
		return nil, apperrors.NewValidationError("service_role_id", "required when required_posts > 0")
	}
	if req.ServiceRoleID != nil {
		if _, err := s.roleRepo.GetByID(*req.ServiceRoleID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrServiceRoleNotFound
			}
			return nil, fmt.Errorf("failed to verify service role: %w", err)
		}
	}

	installation := &models.Installation{
		BaseModel:     models.BaseModel{CreatedBy: actor, UpdatedBy: actor},
		ClientID:      req.ClientID,
		Name:          req.Name,
		Address:       req.Address,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		RequiredPosts: req.RequiredPosts,
		Active:        true,
	}
	if err := s.repo.Create(installation); err != nil {
		return nil, fmt.Errorf("failed to create installation: %w", err)
	}

	if req.RequiredPosts > 0 {
		posts := make([]models.OperationalPost, req.RequiredPosts)
		for i := range posts {
			posts[i] = models.OperationalPost{
				BaseModel:         models.BaseModel{CreatedBy: actor, UpdatedBy: actor},
				InstallationID:    installation.ID,
				ServiceRoleID:     *req.ServiceRoleID,
				Label:             fmt.Sprintf("%s #%d", req.Name, i+1),
				IsPendingCoverage: true,
				Active:            true,
			}
		}
		if err := s.postRepo.CreateBatch(posts); err != nil {
			return nil, fmt.Errorf("failed to materialize posts: %w", err)
		}
	}

	return installation, nil
}

// GetByID retrieves an installation by ID
func (s *InstallationService) GetByID(id uuid.UUID) (*models.Installation, error) {
	installation, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInstallationNotFound
		}
		return nil, fmt.Errorf("failed to get installation: %w", err)
	}
	return installation, nil
}

// GetWithPosts retrieves an installation including its posts
func (s *InstallationService) GetWithPosts(id uuid.UUID) (*models.Installation, error) {
	installation, err := s.repo.GetWithPosts(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInstallationNotFound
		}
		return nil, fmt.Errorf("failed to get installation: %w", err)
	}
	return installation, nil
}

// List retrieves installations with pagination, optionally by client
func (s *InstallationService) List(clientID *uuid.UUID, page, pageSize int) (*InstallationListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	var (
		installations []models.Installation
		total         int64
		err           error
	)
	if clientID != nil {
		installations, total, err = s.repo.GetByClientID(*clientID, pageSize, offset)
	} else {
		installations, total, err = s.repo.GetAll(pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list installations: %w", err)
	}
	return &InstallationListResponse{Installations: installations, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update updates an installation
func (s *InstallationService) Update(id uuid.UUID, req *UpdateInstallationRequest, actor string) (*models.Installation, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	installation, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		installation.Name = *req.Name
	}
	if req.Address != nil {
		installation.Address = *req.Address
	}
	if req.Latitude != nil {
		installation.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		installation.Longitude = req.Longitude
	}
	if req.Active != nil {
		installation.Active = *req.Active
	}
	installation.UpdatedBy = actor

	if err := s.repo.Update(installation); err != nil {
		return nil, fmt.Errorf("failed to update installation: %w", err)
	}
	return installation, nil
}
