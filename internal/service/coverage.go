package service

import (
	"errors"
	"fmt"
	"time"

	"guard-ops-backend/internal/audit"
	"guard-ops-backend/internal/database/models"
	apperrors "guard-ops-backend/internal/errors"
	"guard-ops-backend/internal/logger"
	"guard-ops-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultHighPriorityWindow escalates a gap to high priority when its
// deadline is closer than this.
const DefaultHighPriorityWindow = 48 * time.Hour

// CoverageDetectorService scans posts and schedules for coverage gaps and
// materializes pending-coverage records. Detection is idempotent: an
// already-open record is refreshed, never duplicated.
type CoverageDetectorService struct {
	posts       repository.OperationalPostStore
	entries     repository.ScheduleEntryStore
	pending     repository.PendingCoverageStore
	assignments repository.AssignmentStore
	auditor     *audit.Recorder
	log         *logger.Logger
	highWindow  time.Duration
	now         func() time.Time
}

// NewCoverageDetectorService creates a new coverage detector service
func NewCoverageDetectorService(posts repository.OperationalPostStore, entries repository.ScheduleEntryStore, pending repository.PendingCoverageStore, assignments repository.AssignmentStore, auditor *audit.Recorder) *CoverageDetectorService {
	return &CoverageDetectorService{
		posts:       posts,
		entries:     entries,
		pending:     pending,
		assignments: assignments,
		auditor:     auditor,
		log:         logger.New(),
		highWindow:  DefaultHighPriorityWindow,
		now:         time.Now,
	}
}

// SetHighPriorityWindow overrides the escalation window, in hours. Values
// below one hour keep the default.
func (s *CoverageDetectorService) SetHighPriorityWindow(hours int) {
	if hours >= 1 {
		s.highWindow = time.Duration(hours) * time.Hour
	}
}

// DetectRequest scopes one detector run
type DetectRequest struct {
	Year           int        `json:"year" validate:"required,min=2020,max=2100"`
	Month          int        `json:"month" validate:"required,min=1,max=12"`
	Day            int        `json:"day" validate:"required,min=1,max=31"`
	InstallationID *uuid.UUID `json:"installation_id,omitempty"`
}

// DetectReport summarizes a detector run
type DetectReport struct {
	Created   int         `json:"created"`
	Refreshed int         `json:"refreshed"`
	Open      []uuid.UUID `json:"open"`
}

// PriorityFor derives a gap's priority from deadline proximity: high inside
// the window, normal otherwise or when no deadline is known. Pure function.
func PriorityFor(deadline *time.Time, now time.Time, window time.Duration) models.CoveragePriority {
	if deadline == nil {
		return models.CoveragePriorityNormal
	}
	if deadline.Sub(now) <= window {
		return models.CoveragePriorityHigh
	}
	return models.CoveragePriorityNormal
}

// Detect scans the scoped posts for the evaluated date and creates or
// refreshes pending-coverage records.
func (s *CoverageDetectorService) Detect(req *DetectRequest, actor string) (*DetectReport, error) {
	if req.Month < 1 || req.Month > 12 {
		return nil, apperrors.ErrInvalidMonth
	}

	posts, err := s.posts.GetActive(req.InstallationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load posts: %w", err)
	}
	postIDs := make([]uuid.UUID, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	entries, err := s.entries.GetForDate(postIDs, req.Year, req.Month, req.Day)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule entries: %w", err)
	}
	entryByPost := make(map[uuid.UUID]*models.ScheduleEntry, len(entries))
	for i := range entries {
		entryByPost[entries[i].PostID] = &entries[i]
	}

	report := &DetectReport{}
	for _, post := range posts {
		reason, gap := s.gapReason(&post, entryByPost[post.ID])
		if !gap {
			continue
		}

		deadline := time.Date(req.Year, time.Month(req.Month), req.Day, 0, 0, 0, 0, time.UTC)
		created, err := s.upsert(post.ID, reason, &deadline, actor)
		if err != nil {
			return nil, err
		}
		if created {
			report.Created++
		} else {
			report.Refreshed++
		}
	}

	open, err := s.pending.GetAllPending()
	if err != nil {
		return nil, fmt.Errorf("failed to list open coverage: %w", err)
	}
	for _, pc := range open {
		report.Open = append(report.Open, pc.ID)
	}

	return report, nil
}

// gapReason decides whether a post needs coverage on the evaluated date
func (s *CoverageDetectorService) gapReason(post *models.OperationalPost, entry *models.ScheduleEntry) (models.CoverageReason, bool) {
	if entry != nil {
		switch entry.State {
		case models.EntryStateUncovered:
			return models.CoverageReasonUncovered, true
		case models.EntryStateAbsent:
			return models.CoverageReasonNoShow, true
		case models.EntryStateMedicalLeave:
			return models.CoverageReasonMedicalLeave, true
		}
	}

	if post.IsPendingCoverage {
		covered, err := s.assignments.HasOpenAssignmentForPost(post.ID)
		if err != nil {
			s.log.WithField("post_id", post.ID).Warnf("assignment lookup failed: %v", err)
			return "", false
		}
		if !covered {
			return models.CoverageReasonUnassigned, true
		}
	}

	return "", false
}

func (s *CoverageDetectorService) upsert(postID uuid.UUID, reason models.CoverageReason, deadline *time.Time, actor string) (created bool, err error) {
	now := s.now()
	priority := PriorityFor(deadline, now, s.highWindow)

	existing, err := s.pending.GetOpenByPostID(postID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to look up open coverage: %w", err)
	}

	if existing != nil {
		before := *existing
		existing.Reason = reason
		existing.Priority = priority
		existing.Deadline = deadline
		existing.DetectedAt = now
		existing.UpdatedBy = actor
		if err := s.pending.Update(existing); err != nil {
			return false, fmt.Errorf("failed to refresh pending coverage: %w", err)
		}
		s.auditor.Record(models.AuditEntityPendingCoverage, existing.ID, "refresh", actor, &before, existing)
		return false, nil
	}

	pc := &models.PendingCoverage{
		BaseModel:  models.BaseModel{CreatedBy: actor, UpdatedBy: actor},
		PostID:     postID,
		Reason:     reason,
		Priority:   priority,
		State:      models.CoverageStatePending,
		DetectedAt: now,
		Deadline:   deadline,
	}
	if err := s.pending.Create(pc); err != nil {
		return false, fmt.Errorf("failed to create pending coverage: %w", err)
	}
	s.auditor.Record(models.AuditEntityPendingCoverage, pc.ID, "detect", actor, nil, pc)
	return true, nil
}

// ListPending returns pending-coverage records by state with pagination
func (s *CoverageDetectorService) ListPending(state models.CoverageState, page, pageSize int) ([]models.PendingCoverage, int64, error) {
	if !state.IsValid() {
		state = models.CoverageStatePending
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	return s.pending.GetByState(state, pageSize, offset)
}
