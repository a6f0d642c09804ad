package service_test

import (
	"testing"
	"time"

	"guard-ops-backend/internal/audit"
	"guard-ops-backend/internal/database/models"
	"guard-ops-backend/internal/mocks"
	"guard-ops-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestPriorityFor(t *testing.T) {
	now := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)
	window := 48 * time.Hour

	near := now.Add(24 * time.Hour)
	edge := now.Add(window)
	far := now.Add(72 * time.Hour)
	past := now.Add(-time.Hour)

	assert.Equal(t, models.CoveragePriorityNormal, service.PriorityFor(nil, now, window))
	assert.Equal(t, models.CoveragePriorityHigh, service.PriorityFor(&near, now, window))
	assert.Equal(t, models.CoveragePriorityHigh, service.PriorityFor(&edge, now, window))
	assert.Equal(t, models.CoveragePriorityNormal, service.PriorityFor(&far, now, window))
	assert.Equal(t, models.CoveragePriorityHigh, service.PriorityFor(&past, now, window))
}

// CoverageDetectorServiceTestSuite defines the test suite for CoverageDetectorService
type CoverageDetectorServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockPosts       *mocks.MockOperationalPostStore
	mockEntries     *mocks.MockScheduleEntryStore
	mockPending     *mocks.MockPendingCoverageStore
	mockAssignments *mocks.MockAssignmentStore
	mockAudit       *mocks.MockAuditLogWriter
	detector        *service.CoverageDetectorService
}

// SetupTest sets up the test suite
func (suite *CoverageDetectorServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPosts = mocks.NewMockOperationalPostStore(suite.ctrl)
	suite.mockEntries = mocks.NewMockScheduleEntryStore(suite.ctrl)
	suite.mockPending = mocks.NewMockPendingCoverageStore(suite.ctrl)
	suite.mockAssignments = mocks.NewMockAssignmentStore(suite.ctrl)
	suite.mockAudit = mocks.NewMockAuditLogWriter(suite.ctrl)
	suite.mockAudit.EXPECT().Create(gomock.Any()).Return(nil).AnyTimes()

	suite.detector = service.NewCoverageDetectorService(
		suite.mockPosts, suite.mockEntries, suite.mockPending, suite.mockAssignments,
		audit.NewRecorder(suite.mockAudit),
	)
}

// TearDownTest cleans up after each test
func (suite *CoverageDetectorServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func activePost() models.OperationalPost {
	return models.OperationalPost{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		InstallationID: uuid.New(),
		ServiceRoleID:  uuid.New(),
		Active:         true,
	}
}

// TestDetectAbsence tests that a no-show entry produces a pending-coverage record
func (suite *CoverageDetectorServiceTestSuite) TestDetectAbsence() {
	post := activePost()
	entry := models.ScheduleEntry{
		BaseModel: models.BaseModel{ID: uuid.New()},
		PostID:    post.ID, Year: 2099, Month: 3, Day: 15,
		State: models.EntryStateAbsent, CyclePhase: 1,
	}

	suite.mockPosts.EXPECT().GetActive(gomock.Nil()).Return([]models.OperationalPost{post}, nil).Times(1)
	suite.mockEntries.EXPECT().GetForDate([]uuid.UUID{post.ID}, 2099, 3, 15).Return([]models.ScheduleEntry{entry}, nil).Times(1)
	suite.mockPending.EXPECT().GetOpenByPostID(post.ID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	var created *models.PendingCoverage
	suite.mockPending.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(pc *models.PendingCoverage) error {
			created = pc
			return nil
		}).
		Times(1)
	suite.mockPending.EXPECT().GetAllPending().Return([]models.PendingCoverage{{BaseModel: models.BaseModel{ID: uuid.New()}}}, nil).Times(1)

	report, err := suite.detector.Detect(&service.DetectRequest{Year: 2099, Month: 3, Day: 15}, "dispatcher")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, report.Created)
	assert.Equal(suite.T(), 0, report.Refreshed)
	assert.Len(suite.T(), report.Open, 1)

	assert.Equal(suite.T(), post.ID, created.PostID)
	assert.Equal(suite.T(), models.CoverageReasonNoShow, created.Reason)
	assert.Equal(suite.T(), models.CoverageStatePending, created.State)
	// A deadline decades out is well outside the escalation window
	assert.Equal(suite.T(), models.CoveragePriorityNormal, created.Priority)
}

// TestDetectUnassignedPost tests flagging a post with no guard and no open assignment
func (suite *CoverageDetectorServiceTestSuite) TestDetectUnassignedPost() {
	post := activePost()
	post.IsPendingCoverage = true

	suite.mockPosts.EXPECT().GetActive(gomock.Nil()).Return([]models.OperationalPost{post}, nil).Times(1)
	suite.mockEntries.EXPECT().GetForDate([]uuid.UUID{post.ID}, 2025, 8, 1).Return(nil, nil).Times(1)
	suite.mockAssignments.EXPECT().HasOpenAssignmentForPost(post.ID).Return(false, nil).Times(1)
	suite.mockPending.EXPECT().GetOpenByPostID(post.ID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	var created *models.PendingCoverage
	suite.mockPending.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(pc *models.PendingCoverage) error {
			created = pc
			return nil
		}).
		Times(1)
	suite.mockPending.EXPECT().GetAllPending().Return(nil, nil).Times(1)

	report, err := suite.detector.Detect(&service.DetectRequest{Year: 2025, Month: 8, Day: 1}, "dispatcher")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, report.Created)
	assert.Equal(suite.T(), models.CoverageReasonUnassigned, created.Reason)
	// A date already in the past is escalated
	assert.Equal(suite.T(), models.CoveragePriorityHigh, created.Priority)
}

// TestDetectCoveredPost tests that an open assignment suppresses the gap
func (suite *CoverageDetectorServiceTestSuite) TestDetectCoveredPost() {
	post := activePost()
	post.IsPendingCoverage = true

	suite.mockPosts.EXPECT().GetActive(gomock.Nil()).Return([]models.OperationalPost{post}, nil).Times(1)
	suite.mockEntries.EXPECT().GetForDate([]uuid.UUID{post.ID}, 2025, 8, 1).Return(nil, nil).Times(1)
	suite.mockAssignments.EXPECT().HasOpenAssignmentForPost(post.ID).Return(true, nil).Times(1)
	suite.mockPending.EXPECT().GetAllPending().Return(nil, nil).Times(1)

	report, err := suite.detector.Detect(&service.DetectRequest{Year: 2025, Month: 8, Day: 1}, "dispatcher")

	assert.NoError(suite.T(), err)
	assert.Zero(suite.T(), report.Created)
	assert.Zero(suite.T(), report.Refreshed)
}

// TestDetectPlannedDayNoGap tests that a normally planned day is not a gap
func (suite *CoverageDetectorServiceTestSuite) TestDetectPlannedDayNoGap() {
	post := activePost()
	entry := models.ScheduleEntry{
		BaseModel: models.BaseModel{ID: uuid.New()},
		PostID:    post.ID, Year: 2025, Month: 8, Day: 1,
		State: models.EntryStatePlanned, CyclePhase: 1,
	}

	suite.mockPosts.EXPECT().GetActive(gomock.Nil()).Return([]models.OperationalPost{post}, nil).Times(1)
	suite.mockEntries.EXPECT().GetForDate([]uuid.UUID{post.ID}, 2025, 8, 1).Return([]models.ScheduleEntry{entry}, nil).Times(1)
	suite.mockPending.EXPECT().GetAllPending().Return(nil, nil).Times(1)

	report, err := suite.detector.Detect(&service.DetectRequest{Year: 2025, Month: 8, Day: 1}, "dispatcher")

	assert.NoError(suite.T(), err)
	assert.Zero(suite.T(), report.Created)
}

// TestDetectRefreshesOpenRecord tests idempotent detection: the open record
// is refreshed in place, never duplicated
func (suite *CoverageDetectorServiceTestSuite) TestDetectRefreshesOpenRecord() {
	post := activePost()
	entry := models.ScheduleEntry{
		BaseModel: models.BaseModel{ID: uuid.New()},
		PostID:    post.ID, Year: 2025, Month: 8, Day: 1,
		State: models.EntryStateMedicalLeave, CyclePhase: 1,
	}
	existing := &models.PendingCoverage{
		BaseModel: models.BaseModel{ID: uuid.New()},
		PostID:    post.ID,
		Reason:    models.CoverageReasonUncovered,
		Priority:  models.CoveragePriorityNormal,
		State:     models.CoverageStatePending,
	}

	suite.mockPosts.EXPECT().GetActive(gomock.Nil()).Return([]models.OperationalPost{post}, nil).Times(1)
	suite.mockEntries.EXPECT().GetForDate([]uuid.UUID{post.ID}, 2025, 8, 1).Return([]models.ScheduleEntry{entry}, nil).Times(1)
	suite.mockPending.EXPECT().GetOpenByPostID(post.ID).Return(existing, nil).Times(1)
	suite.mockPending.EXPECT().Update(existing).Return(nil).Times(1)
	suite.mockPending.EXPECT().GetAllPending().Return([]models.PendingCoverage{*existing}, nil).Times(1)

	report, err := suite.detector.Detect(&service.DetectRequest{Year: 2025, Month: 8, Day: 1}, "dispatcher")

	assert.NoError(suite.T(), err)
	assert.Zero(suite.T(), report.Created)
	assert.Equal(suite.T(), 1, report.Refreshed)
	assert.Equal(suite.T(), models.CoverageReasonMedicalLeave, existing.Reason)
	assert.Equal(suite.T(), models.CoveragePriorityHigh, existing.Priority)
}

// TestListPendingDefaults tests state and pagination normalization
func (suite *CoverageDetectorServiceTestSuite) TestListPendingDefaults() {
	suite.mockPending.EXPECT().
		GetByState(models.CoverageStatePending, 20, 0).
		Return([]models.PendingCoverage{}, int64(0), nil).
		Times(1)

	_, total, err := suite.detector.ListPending(models.CoverageState("nonsense"), 0, 0)

	assert.NoError(suite.T(), err)
	assert.Zero(suite.T(), total)
}

// TestCoverageDetectorServiceTestSuite runs the test suite
func TestCoverageDetectorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CoverageDetectorServiceTestSuite))
}
