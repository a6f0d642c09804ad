package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"guard-ops-backend/internal/audit"
	"guard-ops-backend/internal/database/models"
	apperrors "guard-ops-backend/internal/errors"
	"guard-ops-backend/internal/logger"
	"guard-ops-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentEngineService greedily binds guards to pending-coverage records.
// Single pass, per-vacancy: each decision is locally justified by a visible
// score, at the cost of global optimality.
type AssignmentEngineService struct {
	pending     repository.PendingCoverageStore
	posts       repository.OperationalPostStore
	guards      repository.GuardReader
	assignments repository.AssignmentStore
	auditor     *audit.Recorder
	log         *logger.Logger
	now         func() time.Time
}

// NewAssignmentEngineService creates a new assignment engine service
func NewAssignmentEngineService(pending repository.PendingCoverageStore, posts repository.OperationalPostStore, guards repository.GuardReader, assignments repository.AssignmentStore, auditor *audit.Recorder) *AssignmentEngineService {
	return &AssignmentEngineService{
		pending:     pending,
		posts:       posts,
		guards:      guards,
		assignments: assignments,
		auditor:     auditor,
		log:         logger.New(),
		now:         time.Now,
	}
}

// rankedCandidate pairs a guard with its score for one coverage gap
type rankedCandidate struct {
	Guard      *models.Guard
	Score      float64
	DistanceKm float64
}

// RankCandidates scores every guard against the installation and orders
// them best first: score descending, then distance ascending, then guard id
// ascending for determinism. Pure given its inputs.
func RankCandidates(guards []*models.Guard, installation *models.Installation) []rankedCandidate {
	ranked := make([]rankedCandidate, 0, len(guards))
	for _, g := range guards {
		score, dist := ScoreGuard(g, installation)
		ranked = append(ranked, rankedCandidate{Guard: g, Score: score, DistanceKm: dist})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		if ranked[i].DistanceKm != ranked[j].DistanceKm {
			return ranked[i].DistanceKm < ranked[j].DistanceKm
		}
		return ranked[i].Guard.ID.String() < ranked[j].Guard.ID.String()
	})
	return ranked
}

// AssignedCoverage reports one successful bind
type AssignedCoverage struct {
	PendingCoverageID uuid.UUID `json:"pending_coverage_id"`
	PostID            uuid.UUID `json:"post_id"`
	GuardID           uuid.UUID `json:"guard_id"`
	AssignmentID      uuid.UUID `json:"assignment_id"`
	Score             float64   `json:"score"`
	DistanceKm        float64   `json:"distance_km"`
}

// ManualCoverage reports a gap the engine could not fill
type ManualCoverage struct {
	PendingCoverageID uuid.UUID `json:"pending_coverage_id"`
	PostID            uuid.UUID `json:"post_id"`
	Reason            string    `json:"reason"`
}

// RunReport summarizes one engine run
type RunReport struct {
	Assigned       []AssignedCoverage `json:"assigned"`
	RequiresManual []ManualCoverage   `json:"requires_manual"`
}

// Run processes every pending coverage record, earliest detection first,
// and binds the best unconsumed candidate to each. A guard consumed by an
// earlier record in the run is never offered to a later one. Records with
// no eligible candidate stay pending and are surfaced for manual handling.
func (s *AssignmentEngineService) Run(actor string) (*RunReport, error) {
	pcs, err := s.pending.GetAllPending()
	if err != nil {
		return nil, fmt.Errorf("failed to list pending coverage: %w", err)
	}

	roster, err := s.guards.GetActiveWithCoordinates()
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	busyIDs, err := s.assignments.GetBusyGuardIDs()
	if err != nil {
		return nil, fmt.Errorf("failed to load busy guards: %w", err)
	}
	busy := make(map[uuid.UUID]bool, len(busyIDs))
	for _, id := range busyIDs {
		busy[id] = true
	}

	pool := make([]*models.Guard, 0, len(roster))
	for i := range roster {
		if !busy[roster[i].ID] {
			pool = append(pool, &roster[i])
		}
	}

	// Run-scoped: a guard bound in this pass must not be matched twice.
	consumed := make(map[uuid.UUID]bool)
	report := &RunReport{}
	today := s.now().Truncate(24 * time.Hour)

	for i := range pcs {
		pc := pcs[i]

		post, err := s.posts.GetWithInstallation(pc.PostID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				report.RequiresManual = append(report.RequiresManual, ManualCoverage{
					PendingCoverageID: pc.ID, PostID: pc.PostID, Reason: apperrors.ErrOperationalPostNotFound.Error(),
				})
				continue
			}
			return nil, fmt.Errorf("failed to load post: %w", err)
		}

		if !post.Installation.HasCoordinates() {
			report.RequiresManual = append(report.RequiresManual, ManualCoverage{
				PendingCoverageID: pc.ID, PostID: pc.PostID, Reason: "installation has no coordinates",
			})
			continue
		}

		available := make([]*models.Guard, 0, len(pool))
		for _, g := range pool {
			if !consumed[g.ID] {
				available = append(available, g)
			}
		}

		ranked := RankCandidates(available, &post.Installation)
		if len(ranked) == 0 {
			report.RequiresManual = append(report.RequiresManual, ManualCoverage{
				PendingCoverageID: pc.ID, PostID: pc.PostID, Reason: apperrors.ErrNoEligibleCandidate.Error(),
			})
			continue
		}

		top := ranked[0]
		assignment := &models.Assignment{
			BaseModel:         models.BaseModel{CreatedBy: actor, UpdatedBy: actor},
			GuardID:           top.Guard.ID,
			PostID:            pc.PostID,
			PendingCoverageID: &pc.ID,
			Type:              models.AssignmentTypePPCFill,
			State:             models.AssignmentStateActive,
			StartDate:         today,
		}

		if err := s.assignments.BindPendingCoverage(&pc, assignment); err != nil {
			if errors.Is(err, apperrors.ErrDuplicateBind) {
				// A concurrent run got there first; the gap is handled.
				s.log.WithField("pending_coverage_id", pc.ID).Info("skipping already-bound coverage")
				continue
			}
			return nil, fmt.Errorf("failed to bind pending coverage: %w", err)
		}

		consumed[top.Guard.ID] = true
		report.Assigned = append(report.Assigned, AssignedCoverage{
			PendingCoverageID: pc.ID,
			PostID:            pc.PostID,
			GuardID:           top.Guard.ID,
			AssignmentID:      assignment.ID,
			Score:             top.Score,
			DistanceKm:        top.DistanceKm,
		})
		s.auditor.Record(models.AuditEntityAssignment, assignment.ID, "auto_assign", actor, nil, map[string]interface{}{
			"pending_coverage_id": pc.ID,
			"guard_id":            top.Guard.ID,
			"score":               top.Score,
			"distance_km":         top.DistanceKm,
		})
	}

	return report, nil
}

// ListForGuard returns a guard's assignment history, newest first
func (s *AssignmentEngineService) ListForGuard(guardID uuid.UUID, page, pageSize int) ([]models.Assignment, int64, error) {
	if _, err := s.guards.GetByID(guardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, apperrors.ErrGuardNotFound
		}
		return nil, 0, fmt.Errorf("failed to load guard: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	return s.assignments.GetByGuardID(guardID, pageSize, offset)
}

// Finish ends an assignment normally
func (s *AssignmentEngineService) Finish(id uuid.UUID, actor string) error {
	return s.close(id, models.AssignmentStateFinished, actor)
}

// Cancel ends an assignment before its natural end
func (s *AssignmentEngineService) Cancel(id uuid.UUID, actor string) error {
	return s.close(id, models.AssignmentStateCancelled, actor)
}

func (s *AssignmentEngineService) close(id uuid.UUID, state models.AssignmentState, actor string) error {
	assignment, err := s.assignments.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to load assignment: %w", err)
	}

	if err := s.assignments.Close(id, state, s.now()); err != nil {
		return err
	}

	s.auditor.Record(models.AuditEntityAssignment, id, "close_"+string(state), actor, assignment, nil)
	return nil
}
