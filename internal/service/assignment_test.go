package service_test

import (
	"testing"
	"time"

	"guard-ops-backend/internal/audit"
	"guard-ops-backend/internal/database/models"
	apperrors "guard-ops-backend/internal/errors"
	"guard-ops-backend/internal/mocks"
	"guard-ops-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func guardAt(lat, lon float64) *models.Guard {
	return &models.Guard{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Latitude:  &lat,
		Longitude: &lon,
		Active:    true,
	}
}

func TestRankCandidatesOrdering(t *testing.T) {
	installation := &models.Installation{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Latitude:  floatPtr(32.0853),
		Longitude: floatPtr(34.7818),
	}

	near := guardAt(32.0809, 34.7740)
	far := guardAt(32.7940, 34.9896)
	veteran := guardAt(32.7940, 34.9896)
	veteran.ExperienceYears = intPtr(10)
	veteran.AvailableNow = true

	ranked := service.RankCandidates([]*models.Guard{far, near, veteran}, installation)

	assert.Len(t, ranked, 3)
	// Proximity dominates; bonuses only lift the veteran over the plain
	// distant guard
	assert.Equal(t, near.ID, ranked[0].Guard.ID)
	assert.Equal(t, veteran.ID, ranked[1].Guard.ID)
	assert.Equal(t, far.ID, ranked[2].Guard.ID)
	assert.Greater(t, ranked[0].Score, ranked[1].Score)
}

func TestRankCandidatesTieBreakByID(t *testing.T) {
	installation := &models.Installation{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Latitude:  floatPtr(32.0853),
		Longitude: floatPtr(34.7818),
	}

	a := guardAt(32.0853, 34.7818)
	b := guardAt(32.0853, 34.7818)
	a.ID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	b.ID = uuid.MustParse("22222222-2222-2222-2222-222222222222")

	// Identical score and distance regardless of input order
	ranked := service.RankCandidates([]*models.Guard{b, a}, installation)
	assert.Equal(t, a.ID, ranked[0].Guard.ID)
	assert.Equal(t, b.ID, ranked[1].Guard.ID)

	ranked = service.RankCandidates([]*models.Guard{a, b}, installation)
	assert.Equal(t, a.ID, ranked[0].Guard.ID)
}

// AssignmentEngineServiceTestSuite defines the test suite for AssignmentEngineService
type AssignmentEngineServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockPending     *mocks.MockPendingCoverageStore
	mockPosts       *mocks.MockOperationalPostStore
	mockGuards      *mocks.MockGuardReader
	mockAssignments *mocks.MockAssignmentStore
	mockAudit       *mocks.MockAuditLogWriter
	engine          *service.AssignmentEngineService
}

// SetupTest sets up the test suite
func (suite *AssignmentEngineServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPending = mocks.NewMockPendingCoverageStore(suite.ctrl)
	suite.mockPosts = mocks.NewMockOperationalPostStore(suite.ctrl)
	suite.mockGuards = mocks.NewMockGuardReader(suite.ctrl)
	suite.mockAssignments = mocks.NewMockAssignmentStore(suite.ctrl)
	suite.mockAudit = mocks.NewMockAuditLogWriter(suite.ctrl)
	suite.mockAudit.EXPECT().Create(gomock.Any()).Return(nil).AnyTimes()

	suite.engine = service.NewAssignmentEngineService(
		suite.mockPending, suite.mockPosts, suite.mockGuards, suite.mockAssignments,
		audit.NewRecorder(suite.mockAudit),
	)
}

// TearDownTest cleans up after each test
func (suite *AssignmentEngineServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AssignmentEngineServiceTestSuite) postWithCoordinates() *models.OperationalPost {
	return &models.OperationalPost{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Active:    true,
		Installation: models.Installation{
			BaseModel: models.BaseModel{ID: uuid.New()},
			Latitude:  floatPtr(32.0853),
			Longitude: floatPtr(34.7818),
		},
	}
}

func pendingFor(postID uuid.UUID, detectedAt time.Time) models.PendingCoverage {
	return models.PendingCoverage{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		PostID:     postID,
		Reason:     models.CoverageReasonUncovered,
		Priority:   models.CoveragePriorityNormal,
		State:      models.CoverageStatePending,
		DetectedAt: detectedAt,
	}
}

// TestRunGreedyNoReuse tests that a guard bound to an earlier gap is never
// offered to a later one in the same run
func (suite *AssignmentEngineServiceTestSuite) TestRunGreedyNoReuse() {
	postA := suite.postWithCoordinates()
	postB := suite.postWithCoordinates()
	now := time.Now()
	pc1 := pendingFor(postA.ID, now.Add(-2*time.Hour))
	pc2 := pendingFor(postB.ID, now.Add(-time.Hour))

	best := guardAt(32.0853, 34.7818)
	second := guardAt(32.2000, 34.8500)

	suite.mockPending.EXPECT().GetAllPending().Return([]models.PendingCoverage{pc1, pc2}, nil).Times(1)
	suite.mockGuards.EXPECT().GetActiveWithCoordinates().Return([]models.Guard{*best, *second}, nil).Times(1)
	suite.mockAssignments.EXPECT().GetBusyGuardIDs().Return(nil, nil).Times(1)

	suite.mockPosts.EXPECT().GetWithInstallation(postA.ID).Return(postA, nil).Times(1)
	suite.mockPosts.EXPECT().GetWithInstallation(postB.ID).Return(postB, nil).Times(1)

	var bound []uuid.UUID
	suite.mockAssignments.EXPECT().
		BindPendingCoverage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(pc *models.PendingCoverage, assignment *models.Assignment) error {
			assignment.ID = uuid.New()
			bound = append(bound, assignment.GuardID)
			return nil
		}).
		Times(2)

	report, err := suite.engine.Run("dispatcher")

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), report.Assigned, 2)
	assert.Empty(suite.T(), report.RequiresManual)

	// The earlier gap gets the best candidate, the later one the runner-up
	assert.Equal(suite.T(), []uuid.UUID{best.ID, second.ID}, bound)
	assert.Equal(suite.T(), pc1.ID, report.Assigned[0].PendingCoverageID)
	assert.NotEqual(suite.T(), report.Assigned[0].GuardID, report.Assigned[1].GuardID)
}

// TestRunExhaustedPool tests that a gap with no remaining candidate is
// surfaced for manual handling and stays pending
func (suite *AssignmentEngineServiceTestSuite) TestRunExhaustedPool() {
	postA := suite.postWithCoordinates()
	postB := suite.postWithCoordinates()
	now := time.Now()
	pc1 := pendingFor(postA.ID, now.Add(-2*time.Hour))
	pc2 := pendingFor(postB.ID, now.Add(-time.Hour))

	only := guardAt(32.0853, 34.7818)

	suite.mockPending.EXPECT().GetAllPending().Return([]models.PendingCoverage{pc1, pc2}, nil).Times(1)
	suite.mockGuards.EXPECT().GetActiveWithCoordinates().Return([]models.Guard{*only}, nil).Times(1)
	suite.mockAssignments.EXPECT().GetBusyGuardIDs().Return(nil, nil).Times(1)

	suite.mockPosts.EXPECT().GetWithInstallation(postA.ID).Return(postA, nil).Times(1)
	suite.mockPosts.EXPECT().GetWithInstallation(postB.ID).Return(postB, nil).Times(1)

	suite.mockAssignments.EXPECT().
		BindPendingCoverage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(pc *models.PendingCoverage, assignment *models.Assignment) error {
			assignment.ID = uuid.New()
			return nil
		}).
		Times(1)

	report, err := suite.engine.Run("dispatcher")

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), report.Assigned, 1)
	assert.Equal(suite.T(), pc1.ID, report.Assigned[0].PendingCoverageID)
	assert.Len(suite.T(), report.RequiresManual, 1)
	assert.Equal(suite.T(), pc2.ID, report.RequiresManual[0].PendingCoverageID)
	assert.Equal(suite.T(), apperrors.ErrNoEligibleCandidate.Error(), report.RequiresManual[0].Reason)
}

// TestRunExcludesBusyGuards tests that guards with an open assignment never
// enter the pool
func (suite *AssignmentEngineServiceTestSuite) TestRunExcludesBusyGuards() {
	post := suite.postWithCoordinates()
	pc := pendingFor(post.ID, time.Now())

	busy := guardAt(32.0853, 34.7818)
	free := guardAt(32.3000, 34.9000)

	suite.mockPending.EXPECT().GetAllPending().Return([]models.PendingCoverage{pc}, nil).Times(1)
	suite.mockGuards.EXPECT().GetActiveWithCoordinates().Return([]models.Guard{*busy, *free}, nil).Times(1)
	suite.mockAssignments.EXPECT().GetBusyGuardIDs().Return([]uuid.UUID{busy.ID}, nil).Times(1)
	suite.mockPosts.EXPECT().GetWithInstallation(post.ID).Return(post, nil).Times(1)

	var assignedGuard uuid.UUID
	suite.mockAssignments.EXPECT().
		BindPendingCoverage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(pc *models.PendingCoverage, assignment *models.Assignment) error {
			assignment.ID = uuid.New()
			assignedGuard = assignment.GuardID
			return nil
		}).
		Times(1)

	report, err := suite.engine.Run("dispatcher")

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), report.Assigned, 1)
	// The closer guard is busy, so the free one wins despite the distance
	assert.Equal(suite.T(), free.ID, assignedGuard)
}

// TestRunInstallationWithoutCoordinates tests routing unscorable gaps to
// manual handling
func (suite *AssignmentEngineServiceTestSuite) TestRunInstallationWithoutCoordinates() {
	post := suite.postWithCoordinates()
	post.Installation.Latitude = nil
	post.Installation.Longitude = nil
	pc := pendingFor(post.ID, time.Now())

	suite.mockPending.EXPECT().GetAllPending().Return([]models.PendingCoverage{pc}, nil).Times(1)
	suite.mockGuards.EXPECT().GetActiveWithCoordinates().Return([]models.Guard{*guardAt(32.1, 34.8)}, nil).Times(1)
	suite.mockAssignments.EXPECT().GetBusyGuardIDs().Return(nil, nil).Times(1)
	suite.mockPosts.EXPECT().GetWithInstallation(post.ID).Return(post, nil).Times(1)

	report, err := suite.engine.Run("dispatcher")

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), report.Assigned)
	assert.Len(suite.T(), report.RequiresManual, 1)
	assert.Contains(suite.T(), report.RequiresManual[0].Reason, "no coordinates")
}

// TestRunSkipsConcurrentlyBoundCoverage tests that a duplicate bind is
// skipped without failing the run or consuming the guard
func (suite *AssignmentEngineServiceTestSuite) TestRunSkipsConcurrentlyBoundCoverage() {
	postA := suite.postWithCoordinates()
	postB := suite.postWithCoordinates()
	now := time.Now()
	pc1 := pendingFor(postA.ID, now.Add(-2*time.Hour))
	pc2 := pendingFor(postB.ID, now.Add(-time.Hour))

	only := guardAt(32.0853, 34.7818)

	suite.mockPending.EXPECT().GetAllPending().Return([]models.PendingCoverage{pc1, pc2}, nil).Times(1)
	suite.mockGuards.EXPECT().GetActiveWithCoordinates().Return([]models.Guard{*only}, nil).Times(1)
	suite.mockAssignments.EXPECT().GetBusyGuardIDs().Return(nil, nil).Times(1)

	suite.mockPosts.EXPECT().GetWithInstallation(postA.ID).Return(postA, nil).Times(1)
	suite.mockPosts.EXPECT().GetWithInstallation(postB.ID).Return(postB, nil).Times(1)

	gomock.InOrder(
		suite.mockAssignments.EXPECT().
			BindPendingCoverage(gomock.Any(), gomock.Any()).
			Return(apperrors.ErrDuplicateBind).
			Times(1),
		suite.mockAssignments.EXPECT().
			BindPendingCoverage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(pc *models.PendingCoverage, assignment *models.Assignment) error {
				assignment.ID = uuid.New()
				return nil
			}).
			Times(1),
	)

	report, err := suite.engine.Run("dispatcher")

	assert.NoError(suite.T(), err)
	// The first gap was taken concurrently; its guard stays free for the second
	assert.Len(suite.T(), report.Assigned, 1)
	assert.Equal(suite.T(), pc2.ID, report.Assigned[0].PendingCoverageID)
	assert.Equal(suite.T(), only.ID, report.Assigned[0].GuardID)
	assert.Empty(suite.T(), report.RequiresManual)
}

// TestListForGuard tests that out-of-range paging falls back to defaults
func (suite *AssignmentEngineServiceTestSuite) TestListForGuard() {
	guard := guardAt(32.0700, 34.7800)
	history := []models.Assignment{
		{
			BaseModel: models.BaseModel{ID: uuid.New()},
			GuardID:   guard.ID,
			PostID:    uuid.New(),
			State:     models.AssignmentStateFinished,
		},
	}

	suite.mockGuards.EXPECT().GetByID(guard.ID).Return(guard, nil).Times(1)
	suite.mockAssignments.EXPECT().
		GetByGuardID(guard.ID, 20, 0).
		Return(history, int64(1), nil).
		Times(1)

	assignments, total, err := suite.engine.ListForGuard(guard.ID, 0, -5)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), total)
	assert.Len(suite.T(), assignments, 1)
	assert.Equal(suite.T(), guard.ID, assignments[0].GuardID)
}

// TestListForGuardNotFound tests listing for an unknown guard
func (suite *AssignmentEngineServiceTestSuite) TestListForGuardNotFound() {
	id := uuid.New()

	suite.mockGuards.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound).Times(1)

	_, _, err := suite.engine.ListForGuard(id, 1, 20)
	assert.ErrorIs(suite.T(), err, apperrors.ErrGuardNotFound)
}

// TestFinish tests closing an assignment normally
func (suite *AssignmentEngineServiceTestSuite) TestFinish() {
	assignment := &models.Assignment{
		BaseModel: models.BaseModel{ID: uuid.New()},
		GuardID:   uuid.New(),
		PostID:    uuid.New(),
		State:     models.AssignmentStateActive,
	}

	suite.mockAssignments.EXPECT().GetByID(assignment.ID).Return(assignment, nil).Times(1)
	suite.mockAssignments.EXPECT().
		Close(assignment.ID, models.AssignmentStateFinished, gomock.Any()).
		Return(nil).
		Times(1)

	err := suite.engine.Finish(assignment.ID, "dispatcher")
	assert.NoError(suite.T(), err)
}

// TestCancelNotFound tests the missing-assignment error mapping
func (suite *AssignmentEngineServiceTestSuite) TestCancelNotFound() {
	id := uuid.New()
	suite.mockAssignments.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound).Times(1)

	err := suite.engine.Cancel(id, "dispatcher")
	assert.ErrorIs(suite.T(), err, apperrors.ErrAssignmentNotFound)
}

// TestAssignmentEngineServiceTestSuite runs the test suite
func TestAssignmentEngineServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentEngineServiceTestSuite))
}
