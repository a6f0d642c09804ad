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

// ServiceRoleService handles business logic for the shift-pattern catalog.
// Roles already referenced by generated schedules are treated as immutable
// pattern-wise; edits only affect future generations.
type ServiceRoleService struct {
	repo      *repository.ServiceRoleRepository
	validator *validator.Validate
}

// NewServiceRoleService creates a new service role service
func NewServiceRoleService(repo *repository.ServiceRoleRepository, validator *validator.Validate) *ServiceRoleService {
	return &ServiceRoleService{repo: repo, validator: validator}
}

// CreateServiceRoleRequest represents the request to create a service role
type CreateServiceRoleRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=60"`
	WorkDays     int    `json:"work_days" validate:"min=0,max=31"`
	RestDays     int    `json:"rest_days" validate:"min=0,max=31"`
	WeekdaysOnly bool   `json:"weekdays_only"`
	StartTime    string `json:"start_time,omitempty" validate:"omitempty,len=5"`
	EndTime      string `json:"end_time,omitempty" validate:"omitempty,len=5"`
}

// UpdateServiceRoleRequest represents the request to update a service role
type UpdateServiceRoleRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1,max=60"`
	StartTime *string `json:"start_time,omitempty" validate:"omitempty,len=5"`
	EndTime   *string `json:"end_time,omitempty" validate:"omitempty,len=5"`
	Active    *bool   `json:"active,omitempty"`
}

// ServiceRoleListResponse represents a paginated list of service roles
type ServiceRoleListResponse struct {
	ServiceRoles []models.ServiceRole `json:"service_roles"`
	Total        int64                `json:"total"`
	Page         int                  `json:"page"`
	PageSize     int                  `json:"page_size"`
}

// Create creates a new service role
func (s *ServiceRoleService) Create(req *CreateServiceRoleRequest, actor string) (*models.ServiceRole, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if !req.WeekdaysOnly && req.WorkDays == 0 {
		return nil, apperrors.NewValidationError("work_days", "a cyclic pattern needs at least one work day")
	}

	if _, err := s.repo.GetByName(req.Name); err == nil {
		return nil, apperrors.ErrServiceRoleExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check role name: %w", err)
	}

	role := &models.ServiceRole{
		BaseModel:    models.BaseModel{CreatedBy: actor, UpdatedBy: actor},
		Name:         req.Name,
		WorkDays:     req.WorkDays,
		RestDays:     req.RestDays,
		WeekdaysOnly: req.WeekdaysOnly,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Active:       true,
	}
	if err := s.repo.Create(role); err != nil {
		return nil, fmt.Errorf("failed to create service role: %w", err)
	}
	return role, nil
}

// GetByID retrieves a service role by ID
func (s *ServiceRoleService) GetByID(id uuid.UUID) (*models.ServiceRole, error) {
	role, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrServiceRoleNotFound
		}
		return nil, fmt.Errorf("failed to get service role: %w", err)
	}
	return role, nil
}

// List retrieves service roles with pagination
func (s *ServiceRoleService) List(page, pageSize int) (*ServiceRoleListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	roles, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list service roles: %w", err)
	}
	return &ServiceRoleListResponse{ServiceRoles: roles, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update updates a service role. The work/rest cycle itself is not
// editable; create a new role instead so generated history stays coherent.
func (s *ServiceRoleService) Update(id uuid.UUID, req *UpdateServiceRoleRequest, actor string) (*models.ServiceRole, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	role, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		role.Name = *req.Name
	}
	if req.StartTime != nil {
		role.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		role.EndTime = *req.EndTime
	}
	if req.Active != nil {
		role.Active = *req.Active
	}
	role.UpdatedBy = actor

	if err := s.repo.Update(role); err != nil {
		return nil, fmt.Errorf("failed to update service role: %w", err)
	}
	return role, nil
}
