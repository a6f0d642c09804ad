package service

import (
	"guard-ops-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ClientServiceInterface defines the interface for client service
type ClientServiceInterface interface {
	Create(req *CreateClientRequest, actor string) (*models.Client, error)
	GetByID(id uuid.UUID) (*models.Client, error)
	List(page, pageSize int) (*ClientListResponse, error)
	Update(id uuid.UUID, req *UpdateClientRequest, actor string) (*models.Client, error)
}

// InstallationServiceInterface defines the interface for installation service
type InstallationServiceInterface interface {
	Create(req *CreateInstallationRequest, actor string) (*models.Installation, error)
	GetByID(id uuid.UUID) (*models.Installation, error)
	GetWithPosts(id uuid.UUID) (*models.Installation, error)
	List(clientID *uuid.UUID, page, pageSize int) (*InstallationListResponse, error)
	Update(id uuid.UUID, req *UpdateInstallationRequest, actor string) (*models.Installation, error)
}

// ServiceRoleServiceInterface defines the interface for service role service
type ServiceRoleServiceInterface interface {
	Create(req *CreateServiceRoleRequest, actor string) (*models.ServiceRole, error)
	GetByID(id uuid.UUID) (*models.ServiceRole, error)
	List(page, pageSize int) (*ServiceRoleListResponse, error)
	Update(id uuid.UUID, req *UpdateServiceRoleRequest, actor string) (*models.ServiceRole, error)
}

// GuardServiceInterface defines the interface for guard service
type GuardServiceInterface interface {
	Create(req *CreateGuardRequest, actor string) (*models.Guard, error)
	GetByID(id uuid.UUID) (*models.Guard, error)
	List(query string, page, pageSize int) (*GuardListResponse, error)
	Update(id uuid.UUID, req *UpdateGuardRequest, actor string) (*models.Guard, error)
}

// OperationalPostServiceInterface defines the interface for post service
type OperationalPostServiceInterface interface {
	Create(req *CreatePostRequest, actor string) (*models.OperationalPost, error)
	GetByID(id uuid.UUID) (*models.OperationalPost, error)
	ListByInstallation(installationID uuid.UUID, page, pageSize int) (*PostListResponse, error)
	Update(id uuid.UUID, req *UpdatePostRequest, actor string) (*models.OperationalPost, error)
	Deactivate(id uuid.UUID, actor string) error
}

// ScheduleGeneratorInterface defines the interface for the monthly generator
type ScheduleGeneratorInterface interface {
	GenerateMonth(postID uuid.UUID, year, month int, actor string) (*GenerateMonthResult, error)
	GenerateForInstallation(installationID uuid.UUID, year, month int, actor string) (*BatchGenerateResult, error)
	GetMonth(postID uuid.UUID, year, month int) ([]models.ScheduleEntry, error)
}

// AttendanceServiceInterface defines the interface for attendance actions
type AttendanceServiceInterface interface {
	MarkAttendance(entryID uuid.UUID, req *MarkAttendanceRequest, actor string) (*models.ScheduleEntry, error)
	MarkExtraShift(req *MarkExtraShiftRequest, actor string) (*models.ScheduleEntry, error)
	Undo(entryID uuid.UUID, actor string) (*models.ScheduleEntry, error)
}

// CoverageDetectorInterface defines the interface for the gap detector
type CoverageDetectorInterface interface {
	Detect(req *DetectRequest, actor string) (*DetectReport, error)
	ListPending(state models.CoverageState, page, pageSize int) ([]models.PendingCoverage, int64, error)
}

// AssignmentEngineInterface defines the interface for the assignment engine
type AssignmentEngineInterface interface {
	Run(actor string) (*RunReport, error)
	ListForGuard(guardID uuid.UUID, page, pageSize int) ([]models.Assignment, int64, error)
	Finish(id uuid.UUID, actor string) error
	Cancel(id uuid.UUID, actor string) error
}
