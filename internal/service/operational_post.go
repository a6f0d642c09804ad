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

// OperationalPostService handles business logic for operational posts
type OperationalPostService struct {
	repo             *repository.OperationalPostRepository
	installationRepo *repository.InstallationRepository
	roleRepo         *repository.ServiceRoleRepository
	guardRepo        *repository.GuardRepository
	validator        *validator.Validate
}

// NewOperationalPostService creates a new operational post service
func NewOperationalPostService(repo *repository.OperationalPostRepository, installationRepo *repository.InstallationRepository, roleRepo *repository.ServiceRoleRepository, guardRepo *repository.GuardRepository, validator *validator.Validate) *OperationalPostService {
	return &OperationalPostService{
		repo:             repo,
		installationRepo: installationRepo,
		roleRepo:         roleRepo,
		guardRepo:        guardRepo,
		validator:        validator,
	}
}

// CreatePostRequest represents the request to create an operational post
type CreatePostRequest struct {
	InstallationID uuid.UUID  `json:"installation_id" validate:"required"`
	ServiceRoleID  uuid.UUID  `json:"service_role_id" validate:"required"`
	GuardID        *uuid.UUID `json:"guard_id,omitempty"`
	Label          string     `json:"label,omitempty" validate:"max=100"`
}

// UpdatePostRequest represents the request to update an operational post
type UpdatePostRequest struct {
	GuardID           *uuid.UUID `json:"guard_id,omitempty"`
	Label             *string    `json:"label,omitempty" validate:"omitempty,max=100"`
	IsPendingCoverage *bool      `json:"is_pending_coverage,omitempty"`
}

// PostListResponse represents a paginated list of operational posts
type PostListResponse struct {
	Posts    []models.OperationalPost `json:"posts"`
	Total    int64                    `json:"total"`
	Page     int                      `json:"page"`
	PageSize int                      `json:"page_size"`
}

// Create creates a new operational post. A post without a guard starts as a
// pending-coverage slot.
func (s *OperationalPostService) Create(req *CreatePostRequest, actor string) (*models.OperationalPost, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.installationRepo.GetByID(req.InstallationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInstallationNotFound
		}
		return nil, fmt.Errorf("failed to verify installation: %w", err)
	}
	if _, err := s.roleRepo.GetByID(req.ServiceRoleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrServiceRoleNotFound
		}
		return nil, fmt.Errorf("failed to verify service role: %w", err)
	}
	if req.GuardID != nil {
		if _, err := s.guardRepo.GetByID(*req.GuardID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrGuardNotFound
			}
			return nil, fmt.Errorf("failed to verify guard: %w", err)
		}
	}

	post := &models.OperationalPost{
		BaseModel:         models.BaseModel{CreatedBy: actor, UpdatedBy: actor},
		InstallationID:    req.InstallationID,
		ServiceRoleID:     req.ServiceRoleID,
		GuardID:           req.GuardID,
		Label:             req.Label,
		IsPendingCoverage: req.GuardID == nil,
		Active:            true,
	}
	if err := s.repo.Create(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

// GetByID retrieves an operational post by ID
func (s *OperationalPostService) GetByID(id uuid.UUID) (*models.OperationalPost, error) {
	post, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOperationalPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return post, nil
}

// ListByInstallation retrieves posts of an installation with pagination
func (s *OperationalPostService) ListByInstallation(installationID uuid.UUID, page, pageSize int) (*PostListResponse, error) {
	if _, err := s.installationRepo.GetByID(installationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInstallationNotFound
		}
		return nil, fmt.Errorf("failed to verify installation: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	posts, total, err := s.repo.GetByInstallationID(installationID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return &PostListResponse{Posts: posts, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update updates an operational post. Binding a guard clears the pending
// flag; unbinding sets it.
func (s *OperationalPostService) Update(id uuid.UUID, req *UpdatePostRequest, actor string) (*models.OperationalPost, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	post, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.GuardID != nil {
		if *req.GuardID == uuid.Nil {
			post.GuardID = nil
			post.IsPendingCoverage = true
		} else {
			if _, err := s.guardRepo.GetByID(*req.GuardID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, apperrors.ErrGuardNotFound
				}
				return nil, fmt.Errorf("failed to verify guard: %w", err)
			}
			post.GuardID = req.GuardID
			post.IsPendingCoverage = false
		}
	}
	if req.Label != nil {
		post.Label = *req.Label
	}
	if req.IsPendingCoverage != nil {
		post.IsPendingCoverage = *req.IsPendingCoverage
	}
	post.UpdatedBy = actor

	if err := s.repo.Update(post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return post, nil
}

// Deactivate marks a post inactive, preserving its history
func (s *OperationalPostService) Deactivate(id uuid.UUID, actor string) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.repo.Deactivate(id)
}
