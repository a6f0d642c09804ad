package handlers

import (
	"net/http"
	"testing"
	"time"

	"guard-ops-backend/internal/database/models"
	"guard-ops-backend/internal/mocks"
	"guard-ops-backend/internal/service"
	"guard-ops-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CoverageHandlerTestSuite defines the test suite for CoverageHandler
type CoverageHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockDetector *mocks.MockCoverageDetectorInterface
	mockEngine   *mocks.MockAssignmentEngineInterface
	handler      *CoverageHandler
	httpSuite    *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *CoverageHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockDetector = mocks.NewMockCoverageDetectorInterface(suite.ctrl)
	suite.mockEngine = mocks.NewMockAssignmentEngineInterface(suite.ctrl)

	suite.handler = NewCoverageHandler(suite.mockDetector, suite.mockEngine)
	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	coverage := v1.Group("/coverage")
	{
		coverage.POST("/detect", suite.handler.Detect)
		coverage.GET("/pending", suite.handler.ListPending)
		coverage.POST("/auto-assign", suite.handler.AutoAssign)
	}
}

// TearDownTest cleans up after each test
func (suite *CoverageHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestDetect tests running the gap detector
func (suite *CoverageHandlerTestSuite) TestDetect() {
	requestBody := map[string]interface{}{
		"year":  2025,
		"month": 9,
		"day":   3,
	}

	openID := uuid.New()
	expected := &service.DetectReport{Created: 2, Refreshed: 1, Open: []uuid.UUID{openID}}

	suite.mockDetector.EXPECT().
		Detect(gomock.Any(), "system").
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/coverage/detect", requestBody)

	var response service.DetectReport
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), 2, response.Created)
	assert.Equal(suite.T(), 1, response.Refreshed)
	assert.Equal(suite.T(), []uuid.UUID{openID}, response.Open)
}

// TestDetectBadBody tests request body validation
func (suite *CoverageHandlerTestSuite) TestDetectBadBody() {
	requestBody := map[string]interface{}{
		"year": 2025,
	}

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/coverage/detect", requestBody)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestListPending tests listing pending coverage records
func (suite *CoverageHandlerTestSuite) TestListPending() {
	records := []models.PendingCoverage{
		{
			BaseModel:  models.BaseModel{ID: uuid.New()},
			PostID:     uuid.New(),
			Reason:     models.CoverageReasonNoShow,
			Priority:   models.CoveragePriorityHigh,
			State:      models.CoverageStatePending,
			DetectedAt: time.Now().UTC(),
		},
	}

	suite.mockDetector.EXPECT().
		ListPending(models.CoverageStatePending, 1, 20).
		Return(records, int64(1), nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/coverage/pending", nil)

	var response PendingCoverageListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), int64(1), response.Total)
	assert.Len(suite.T(), response.PendingCoverage, 1)
	assert.Equal(suite.T(), models.CoverageReasonNoShow, response.PendingCoverage[0].Reason)
}

// TestListPendingInvalidState tests rejecting an unknown state filter
func (suite *CoverageHandlerTestSuite) TestListPendingInvalidState() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/coverage/pending?state=bogus", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid coverage state")
}

// TestAutoAssign tests running the assignment engine
func (suite *CoverageHandlerTestSuite) TestAutoAssign() {
	expected := &service.RunReport{
		Assigned: []service.AssignedCoverage{
			{
				PendingCoverageID: uuid.New(),
				PostID:            uuid.New(),
				GuardID:           uuid.New(),
				AssignmentID:      uuid.New(),
				Score:             112.5,
				DistanceKm:        3.2,
			},
		},
		RequiresManual: []service.ManualCoverage{
			{PendingCoverageID: uuid.New(), PostID: uuid.New(), Reason: "no eligible candidate for pending coverage"},
		},
	}

	suite.mockEngine.EXPECT().
		Run("system").
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/coverage/auto-assign", nil)

	var response service.RunReport
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response.Assigned, 1)
	assert.Len(suite.T(), response.RequiresManual, 1)
	assert.Equal(suite.T(), 112.5, response.Assigned[0].Score)
}

// TestCoverageHandlerTestSuite runs the test suite
func TestCoverageHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CoverageHandlerTestSuite))
}
