package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"guard-ops-backend/internal/database/models"
	apperrors "guard-ops-backend/internal/errors"
	"guard-ops-backend/internal/mocks"
	"guard-ops-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AssignmentHandlerTestSuite defines the test suite for AssignmentHandler
type AssignmentHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockAssignmentEngineInterface
	handler     *AssignmentHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *AssignmentHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockAssignmentEngineInterface(suite.ctrl)

	suite.handler = NewAssignmentHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	assignments := v1.Group("/assignments")
	{
		assignments.GET("", suite.handler.ListAssignments)
		assignments.POST("/:id/finish", suite.handler.FinishAssignment)
		assignments.POST("/:id/cancel", suite.handler.CancelAssignment)
	}
}

// TearDownTest cleans up after each test
func (suite *AssignmentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListAssignments tests listing a guard's assignment history
func (suite *AssignmentHandlerTestSuite) TestListAssignments() {
	guardID := uuid.New()
	assignments := []models.Assignment{
		{
			BaseModel: models.BaseModel{ID: uuid.New()},
			GuardID:   guardID,
			PostID:    uuid.New(),
			Type:      models.AssignmentTypePPCFill,
			State:     models.AssignmentStateActive,
		},
	}

	suite.mockService.EXPECT().
		ListForGuard(guardID, 1, 20).
		Return(assignments, int64(1), nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/assignments?guard_id=%s", guardID), nil)

	var response AssignmentListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), int64(1), response.Total)
	assert.Len(suite.T(), response.Assignments, 1)
	assert.Equal(suite.T(), guardID, response.Assignments[0].GuardID)
}

// TestListAssignmentsGuardNotFound tests the unknown-guard path
func (suite *AssignmentHandlerTestSuite) TestListAssignmentsGuardNotFound() {
	guardID := uuid.New()

	suite.mockService.EXPECT().
		ListForGuard(guardID, 1, 20).
		Return(nil, int64(0), apperrors.ErrGuardNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/assignments?guard_id=%s", guardID), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "guard not found")
}

// TestListAssignmentsInvalidGuardID tests rejecting a malformed guard id
func (suite *AssignmentHandlerTestSuite) TestListAssignmentsInvalidGuardID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/assignments?guard_id=not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid guard ID")
}

// TestFinishAssignment tests finishing an assignment
func (suite *AssignmentHandlerTestSuite) TestFinishAssignment() {
	id := uuid.New()

	suite.mockService.EXPECT().
		Finish(id, "system").
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/assignments/%s/finish", id), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestFinishAssignmentNotFound tests finishing a missing assignment
func (suite *AssignmentHandlerTestSuite) TestFinishAssignmentNotFound() {
	id := uuid.New()

	suite.mockService.EXPECT().
		Finish(id, "system").
		Return(apperrors.ErrAssignmentNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/assignments/%s/finish", id), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "assignment not found")
}

// TestCancelAssignment tests cancelling an assignment
func (suite *AssignmentHandlerTestSuite) TestCancelAssignment() {
	id := uuid.New()

	suite.mockService.EXPECT().
		Cancel(id, "system").
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/assignments/%s/cancel", id), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestCancelAssignmentNotActive tests the 409 mapping for a closed assignment
func (suite *AssignmentHandlerTestSuite) TestCancelAssignmentNotActive() {
	id := uuid.New()

	suite.mockService.EXPECT().
		Cancel(id, "system").
		Return(apperrors.ErrAssignmentNotActive).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/assignments/%s/cancel", id), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "assignment is not active")
}

// TestCancelAssignmentInvalidID tests UUID validation on the path parameter
func (suite *AssignmentHandlerTestSuite) TestCancelAssignmentInvalidID() {
	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/assignments/not-a-uuid/cancel", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid assignment ID")
}

// TestAssignmentHandlerTestSuite runs the test suite
func TestAssignmentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentHandlerTestSuite))
}
