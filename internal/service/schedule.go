package service

import (
	"errors"
	"fmt"

	"guard-ops-backend/internal/audit"
	"guard-ops-backend/internal/calendar"
	"guard-ops-backend/internal/database/models"
	apperrors "guard-ops-backend/internal/errors"
	"guard-ops-backend/internal/logger"
	"guard-ops-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PatternSpec is the resolved shift pattern driving a month's generation
type PatternSpec struct {
	WorkDays     int
	RestDays     int
	WeekdaysOnly bool
}

// CycleLength returns the repeating cycle length in days
func (p PatternSpec) CycleLength() int {
	if p.WeekdaysOnly {
		return 7
	}
	return p.WorkDays + p.RestDays
}

// PlannedDay is one generated day of a month
type PlannedDay struct {
	Day   int
	Phase int
	State models.EntryState
}

// PlanMonth computes the full month plan for a pattern. phasePrev is the
// cycle phase of the last day of the previous month; pass 0 for a fresh
// cycle, which makes day 1 start at phase 1. The function is pure so cycle
// continuity can be verified without a store.
func PlanMonth(pattern PatternSpec, phasePrev, year, month int) []PlannedDay {
	cycle := pattern.CycleLength()
	if phasePrev <= 0 {
		phasePrev = cycle
	}

	numDays := calendar.DaysInMonth(year, month)
	days := make([]PlannedDay, 0, numDays)
	for d := 1; d <= numDays; d++ {
		phase := ((phasePrev + d - 1) % cycle) + 1

		var state models.EntryState
		if pattern.WeekdaysOnly {
			if calendar.IsWeekday(year, month, d) {
				state = models.EntryStatePlanned
			} else {
				state = models.EntryStateOff
			}
		} else if phase <= pattern.WorkDays {
			state = models.EntryStatePlanned
		} else {
			state = models.EntryStateOff
		}

		days = append(days, PlannedDay{Day: d, Phase: phase, State: state})
	}
	return days
}

// PlannedStateFor returns the state the generator would assign to a day
// with the given phase. Used by undo to restore the planned baseline.
func PlannedStateFor(pattern PatternSpec, phase, year, month, day int) models.EntryState {
	if pattern.WeekdaysOnly {
		if calendar.IsWeekday(year, month, day) {
			return models.EntryStatePlanned
		}
		return models.EntryStateOff
	}
	if phase <= pattern.WorkDays {
		return models.EntryStatePlanned
	}
	return models.EntryStateOff
}

// ScheduleGeneratorService produces and maintains monthly schedules
type ScheduleGeneratorService struct {
	posts   repository.OperationalPostStore
	entries repository.ScheduleEntryStore
	auditor *audit.Recorder
	log     *logger.Logger
}

// NewScheduleGeneratorService creates a new schedule generator service
func NewScheduleGeneratorService(posts repository.OperationalPostStore, entries repository.ScheduleEntryStore, auditor *audit.Recorder) *ScheduleGeneratorService {
	return &ScheduleGeneratorService{
		posts:   posts,
		entries: entries,
		auditor: auditor,
		log:     logger.New(),
	}
}

// GenerateMonthResult reports what a generation run did
type GenerateMonthResult struct {
	PostID  uuid.UUID `json:"post_id"`
	Year    int       `json:"year"`
	Month   int       `json:"month"`
	Created int       `json:"created"`
	Updated int       `json:"updated"`
	Skipped int       `json:"skipped"` // manual overrides left untouched
}

// GenerateMonth generates (or regenerates) one post's schedule for a month.
// The operation is idempotent: existing entries are updated in place and
// entries carrying a manual override are never touched. The cycle phase is
// carried over from the last generated day of the previous month so the
// work/rest rhythm crosses month boundaries without a gap.
func (s *ScheduleGeneratorService) GenerateMonth(postID uuid.UUID, year, month int, actor string) (*GenerateMonthResult, error) {
	if month < 1 || month > 12 {
		return nil, apperrors.ErrInvalidMonth
	}

	post, err := s.posts.GetWithRole(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOperationalPostNotFound
		}
		return nil, fmt.Errorf("failed to load post: %w", err)
	}

	role := post.ServiceRole
	if role.ID == uuid.Nil || !role.HasUsablePattern() {
		return nil, apperrors.NewUnresolvedPatternError(postID)
	}
	pattern := PatternSpec{WorkDays: role.WorkDays, RestDays: role.RestDays, WeekdaysOnly: role.WeekdaysOnly}

	phasePrev := 0
	prevYear, prevMonth := calendar.PreviousMonth(year, month)
	last, err := s.entries.GetLastOfMonth(post.ID, prevYear, prevMonth)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load previous month: %w", err)
	}
	if last != nil {
		phasePrev = last.CyclePhase
	}

	plan := PlanMonth(pattern, phasePrev, year, month)

	existing, err := s.entries.GetMonth(post.ID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load current month: %w", err)
	}
	byDay := make(map[int]*models.ScheduleEntry, len(existing))
	for i := range existing {
		byDay[existing[i].Day] = &existing[i]
	}

	result := &GenerateMonthResult{PostID: post.ID, Year: year, Month: month}
	batch := make([]*models.ScheduleEntry, 0, len(plan))
	for _, day := range plan {
		if current, ok := byDay[day.Day]; ok {
			if current.ManualOverride {
				result.Skipped++
				continue
			}
			current.State = day.State
			current.CyclePhase = day.Phase
			current.GuardID = post.GuardID
			current.UpdatedBy = actor
			batch = append(batch, current)
			result.Updated++
			continue
		}

		batch = append(batch, &models.ScheduleEntry{
			BaseModel:  models.BaseModel{CreatedBy: actor, UpdatedBy: actor},
			PostID:     post.ID,
			GuardID:    post.GuardID,
			Year:       year,
			Month:      month,
			Day:        day.Day,
			State:      day.State,
			CyclePhase: day.Phase,
		})
		result.Created++
	}

	if err := s.entries.SaveMonth(batch); err != nil {
		return nil, fmt.Errorf("failed to persist schedule: %w", err)
	}

	s.auditor.Record(models.AuditEntityOperationalPost, post.ID, "generate_month", actor, nil, result)
	return result, nil
}

// SkippedPost reports a post a batch run could not generate for
type SkippedPost struct {
	PostID uuid.UUID `json:"post_id"`
	Reason string    `json:"reason"`
}

// BatchGenerateResult reports a batch generation run across an installation
type BatchGenerateResult struct {
	Generated []GenerateMonthResult `json:"generated"`
	Skipped   []SkippedPost         `json:"skipped"`
}

// GenerateForInstallation generates a month for every active post of an
// installation. Posts without a resolvable pattern are skipped and
// reported, never silently defaulted.
func (s *ScheduleGeneratorService) GenerateForInstallation(installationID uuid.UUID, year, month int, actor string) (*BatchGenerateResult, error) {
	if month < 1 || month > 12 {
		return nil, apperrors.ErrInvalidMonth
	}

	posts, err := s.posts.GetActive(&installationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load posts: %w", err)
	}

	result := &BatchGenerateResult{}
	for _, post := range posts {
		res, err := s.GenerateMonth(post.ID, year, month, actor)
		if err != nil {
			if apperrors.IsUnresolvedPattern(err) {
				result.Skipped = append(result.Skipped, SkippedPost{PostID: post.ID, Reason: err.Error()})
				s.log.WithField("post_id", post.ID).Warnf("skipping post in batch generation: %v", err)
				continue
			}
			return nil, err
		}
		result.Generated = append(result.Generated, *res)
	}
	return result, nil
}

// GetMonth returns the generated schedule of a post for a month
func (s *ScheduleGeneratorService) GetMonth(postID uuid.UUID, year, month int) ([]models.ScheduleEntry, error) {
	if month < 1 || month > 12 {
		return nil, apperrors.ErrInvalidMonth
	}
	if _, err := s.posts.GetByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOperationalPostNotFound
		}
		return nil, fmt.Errorf("failed to load post: %w", err)
	}
	return s.entries.GetMonth(postID, year, month)
}
