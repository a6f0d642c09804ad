package repository

import (
	"time"

	"guard-ops-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ServiceRoleReader is the catalog surface the schedule generator needs
type ServiceRoleReader interface {
	GetByID(id uuid.UUID) (*models.ServiceRole, error)
}

// OperationalPostStore defines post operations used by the scheduling core
type OperationalPostStore interface {
	GetByID(id uuid.UUID) (*models.OperationalPost, error)
	GetWithRole(id uuid.UUID) (*models.OperationalPost, error)
	GetWithInstallation(id uuid.UUID) (*models.OperationalPost, error)
	GetActive(installationID *uuid.UUID) ([]models.OperationalPost, error)
	SetPendingFlag(id uuid.UUID, pending bool) error
}

// ScheduleEntryStore defines schedule-entry operations used by the
// generator and the attendance state machine
type ScheduleEntryStore interface {
	GetByID(id uuid.UUID) (*models.ScheduleEntry, error)
	GetByPostDate(postID uuid.UUID, year, month, day int) (*models.ScheduleEntry, error)
	GetMonth(postID uuid.UUID, year, month int) ([]models.ScheduleEntry, error)
	GetLastOfMonth(postID uuid.UUID, year, month int) (*models.ScheduleEntry, error)
	GetForDate(postIDs []uuid.UUID, year, month, day int) ([]models.ScheduleEntry, error)
	Update(entry *models.ScheduleEntry) error
	SaveMonth(entries []*models.ScheduleEntry) error
}

// PendingCoverageStore defines pending-coverage operations used by the
// detector and the assignment engine
type PendingCoverageStore interface {
	Create(pc *models.PendingCoverage) error
	GetByID(id uuid.UUID) (*models.PendingCoverage, error)
	GetOpenByPostID(postID uuid.UUID) (*models.PendingCoverage, error)
	GetAllPending() ([]models.PendingCoverage, error)
	GetByState(state models.CoverageState, limit, offset int) ([]models.PendingCoverage, int64, error)
	Update(pc *models.PendingCoverage) error
}

// GuardReader is the roster surface the assignment engine needs
type GuardReader interface {
	GetByID(id uuid.UUID) (*models.Guard, error)
	GetActiveWithCoordinates() ([]models.Guard, error)
}

// AssignmentStore defines assignment operations used by the engine
type AssignmentStore interface {
	Create(assignment *models.Assignment) error
	GetByID(id uuid.UUID) (*models.Assignment, error)
	GetByGuardID(guardID uuid.UUID, limit, offset int) ([]models.Assignment, int64, error)
	GetOpenByGuardID(guardID uuid.UUID) (*models.Assignment, error)
	GetBusyGuardIDs() ([]uuid.UUID, error)
	HasOpenAssignmentForPost(postID uuid.UUID) (bool, error)
	BindPendingCoverage(pc *models.PendingCoverage, assignment *models.Assignment) error
	Close(id uuid.UUID, state models.AssignmentState, endDate time.Time) error
}

// ExtraShiftAppender is the best-effort ledger collaborator
type ExtraShiftAppender interface {
	Create(shift *models.ExtraShift) error
}

// AuditLogWriter is the fire-and-forget audit collaborator
type AuditLogWriter interface {
	Create(log *models.AuditLog) error
}
