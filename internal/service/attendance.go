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

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceService applies attendance actions to schedule entries. Every
// action is last-write-wins on the single entry row; the only implicit
// state decision is that a covering guard forces "replacement".
type AttendanceService struct {
	entries   repository.ScheduleEntryStore
	posts     repository.OperationalPostStore
	extras    repository.ExtraShiftAppender
	auditor   *audit.Recorder
	validator *validator.Validate
	log       *logger.Logger
	now       func() time.Time
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(entries repository.ScheduleEntryStore, posts repository.OperationalPostStore, extras repository.ExtraShiftAppender, auditor *audit.Recorder, validator *validator.Validate) *AttendanceService {
	return &AttendanceService{
		entries:   entries,
		posts:     posts,
		extras:    extras,
		auditor:   auditor,
		validator: validator,
		log:       logger.New(),
		now:       time.Now,
	}
}

// MarkAttendanceRequest carries one attendance action
type MarkAttendanceRequest struct {
	Outcome         models.EntryState      `json:"outcome,omitempty"`
	CoveringGuardID *uuid.UUID             `json:"covering_guard_id,omitempty"`
	Origin          string                 `json:"origin,omitempty" validate:"max=60"`
	Extra           map[string]interface{} `json:"extra,omitempty"`
}

// ResolveOutcome decides the entry state an attendance action produces. A
// covering guard (or an existing replacement hint) always wins; otherwise
// an explicitly requested outcome is taken as-is and the default is
// "worked". Pure function.
func ResolveOutcome(req *MarkAttendanceRequest, current models.EntryMetadata) (models.EntryState, error) {
	if req.CoveringGuardID != nil || current.CoveringGuardID != nil {
		return models.EntryStateReplacement, nil
	}
	if req.Outcome == "" {
		return models.EntryStateWorked, nil
	}
	if !req.Outcome.IsValid() || req.Outcome == models.EntryStatePlanned {
		return "", apperrors.ErrInvalidOutcome
	}
	return req.Outcome, nil
}

// MarkAttendance records the outcome of one scheduled day
func (s *AttendanceService) MarkAttendance(entryID uuid.UUID, req *MarkAttendanceRequest, actor string) (*models.ScheduleEntry, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	entry, err := s.entries.GetByID(entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to load schedule entry: %w", err)
	}

	state, err := ResolveOutcome(req, entry.Metadata)
	if err != nil {
		return nil, err
	}

	before := *entry
	now := s.now()

	entry.State = state
	entry.ManualOverride = true
	entry.UpdatedBy = actor
	if req.CoveringGuardID != nil {
		entry.Metadata.CoveringGuardID = req.CoveringGuardID
	}
	entry.Metadata.Actor = actor
	entry.Metadata.Action = "mark_attendance"
	entry.Metadata.RecordedAt = &now
	if req.Origin != "" {
		entry.Metadata.Origin = req.Origin
	}
	mergeExtra(&entry.Metadata, req.Extra)

	if err := s.entries.Update(entry); err != nil {
		return nil, fmt.Errorf("failed to update schedule entry: %w", err)
	}

	s.auditor.Record(models.AuditEntityScheduleEntry, entry.ID, "mark_attendance", actor, &before, entry)
	return entry, nil
}

// MarkExtraShiftRequest records a shift worked outside the generated plan
type MarkExtraShiftRequest struct {
	PostID          uuid.UUID  `json:"post_id" validate:"required"`
	InstallationID  uuid.UUID  `json:"installation_id" validate:"required"`
	ServiceRoleID   uuid.UUID  `json:"service_role_id" validate:"required"`
	Year            int        `json:"year" validate:"required,min=2020,max=2100"`
	Month           int        `json:"month" validate:"required,min=1,max=12"`
	Day             int        `json:"day" validate:"required,min=1,max=31"`
	CoveringGuardID *uuid.UUID `json:"covering_guard_id,omitempty"`
	Origin          string     `json:"origin,omitempty" validate:"max=60"`
}

// MarkExtraShift locates the entry by (post, date) and marks it worked,
// then appends a ledger record. The ledger append is best-effort: its
// failure is logged and never rolls back the state change.
func (s *AttendanceService) MarkExtraShift(req *MarkExtraShiftRequest, actor string) (*models.ScheduleEntry, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	entry, err := s.entries.GetByPostDate(req.PostID, req.Year, req.Month, req.Day)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoScheduleForDate
		}
		return nil, fmt.Errorf("failed to load schedule entry: %w", err)
	}

	before := *entry
	now := s.now()

	entry.State = models.EntryStateWorked
	entry.ManualOverride = true
	entry.UpdatedBy = actor
	if req.CoveringGuardID != nil {
		entry.Metadata.CoveringGuardID = req.CoveringGuardID
	}
	entry.Metadata.Actor = actor
	entry.Metadata.Action = "mark_extra_shift"
	entry.Metadata.Origin = req.Origin
	entry.Metadata.RecordedAt = &now

	if err := s.entries.Update(entry); err != nil {
		return nil, fmt.Errorf("failed to update schedule entry: %w", err)
	}

	ledger := &models.ExtraShift{
		BaseModel:       models.BaseModel{CreatedBy: actor, UpdatedBy: actor},
		PostID:          req.PostID,
		InstallationID:  req.InstallationID,
		ServiceRoleID:   req.ServiceRoleID,
		CoveringGuardID: req.CoveringGuardID,
		Date:            time.Date(req.Year, time.Month(req.Month), req.Day, 0, 0, 0, 0, time.UTC),
		Origin:          req.Origin,
	}
	if err := s.extras.Create(ledger); err != nil {
		s.log.WithField("post_id", req.PostID).Warnf("extra-shift ledger append failed: %v", err)
	}

	s.auditor.Record(models.AuditEntityScheduleEntry, entry.ID, "mark_extra_shift", actor, &before, entry)
	return entry, nil
}

// Undo reverts an entry to the planned baseline implied by its stored cycle
// phase and clears the metadata written by prior actions.
func (s *AttendanceService) Undo(entryID uuid.UUID, actor string) (*models.ScheduleEntry, error) {
	entry, err := s.entries.GetByID(entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to load schedule entry: %w", err)
	}

	post, err := s.posts.GetWithRole(entry.PostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOperationalPostNotFound
		}
		return nil, fmt.Errorf("failed to load post: %w", err)
	}

	before := *entry
	pattern := PatternSpec{
		WorkDays:     post.ServiceRole.WorkDays,
		RestDays:     post.ServiceRole.RestDays,
		WeekdaysOnly: post.ServiceRole.WeekdaysOnly,
	}

	entry.State = PlannedStateFor(pattern, entry.CyclePhase, entry.Year, entry.Month, entry.Day)
	entry.ManualOverride = false
	entry.Metadata = models.EntryMetadata{}
	entry.UpdatedBy = actor

	if err := s.entries.Update(entry); err != nil {
		return nil, fmt.Errorf("failed to update schedule entry: %w", err)
	}

	s.auditor.Record(models.AuditEntityScheduleEntry, entry.ID, "undo", actor, &before, entry)
	return entry, nil
}

func mergeExtra(meta *models.EntryMetadata, extra map[string]interface{}) {
	if len(extra) == 0 {
		return
	}
	if meta.Extra == nil {
		meta.Extra = make(map[string]interface{}, len(extra))
	}
	for k, v := range extra {
		meta.Extra[k] = v
	}
}
