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

// AttendanceHandlerTestSuite defines the test suite for AttendanceHandler
type AttendanceHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockAttendanceServiceInterface
	handler     *AttendanceHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *AttendanceHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockAttendanceServiceInterface(suite.ctrl)

	suite.handler = NewAttendanceHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	attendance := v1.Group("/attendance")
	{
		attendance.POST("/entries/:id/mark", suite.handler.MarkAttendance)
		attendance.POST("/entries/:id/undo", suite.handler.UndoAttendance)
		attendance.POST("/extra-shift", suite.handler.MarkExtraShift)
	}
}

// TearDownTest cleans up after each test
func (suite *AttendanceHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestMarkAttendance tests marking a scheduled day
func (suite *AttendanceHandlerTestSuite) TestMarkAttendance() {
	entryID := uuid.New()
	requestBody := map[string]interface{}{
		"outcome": "absent",
		"origin":  "mobile",
	}

	updated := &models.ScheduleEntry{
		BaseModel:      models.BaseModel{ID: entryID},
		PostID:         uuid.New(),
		Year:           2025, Month: 9, Day: 3,
		State:          models.EntryStateAbsent,
		CyclePhase:     3,
		ManualOverride: true,
	}

	suite.mockService.EXPECT().
		MarkAttendance(entryID, gomock.Any(), "system").
		Return(updated, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/attendance/entries/%s/mark", entryID), requestBody)

	var response models.ScheduleEntry
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), models.EntryStateAbsent, response.State)
	assert.True(suite.T(), response.ManualOverride)
}

// TestMarkAttendanceInvalidID tests UUID validation on the path parameter
func (suite *AttendanceHandlerTestSuite) TestMarkAttendanceInvalidID() {
	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/attendance/entries/not-a-uuid/mark", map[string]interface{}{})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid entry ID")
}

// TestMarkAttendanceNotFound tests marking a missing entry
func (suite *AttendanceHandlerTestSuite) TestMarkAttendanceNotFound() {
	entryID := uuid.New()

	suite.mockService.EXPECT().
		MarkAttendance(entryID, gomock.Any(), "system").
		Return(nil, apperrors.ErrEntryNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/attendance/entries/%s/mark", entryID), map[string]interface{}{})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "schedule entry not found")
}

// TestMarkAttendanceInvalidOutcome tests the 400 mapping for invalid outcomes
func (suite *AttendanceHandlerTestSuite) TestMarkAttendanceInvalidOutcome() {
	entryID := uuid.New()
	requestBody := map[string]interface{}{"outcome": "planned"}

	suite.mockService.EXPECT().
		MarkAttendance(entryID, gomock.Any(), "system").
		Return(nil, apperrors.ErrInvalidOutcome).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/attendance/entries/%s/mark", entryID), requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid attendance outcome")
}

// TestMarkExtraShift tests recording an off-plan shift
func (suite *AttendanceHandlerTestSuite) TestMarkExtraShift() {
	postID := uuid.New()
	requestBody := map[string]interface{}{
		"post_id":         postID.String(),
		"installation_id": uuid.New().String(),
		"service_role_id": uuid.New().String(),
		"year":            2025,
		"month":           9,
		"day":             3,
	}

	updated := &models.ScheduleEntry{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		PostID:         postID,
		Year:           2025, Month: 9, Day: 3,
		State:          models.EntryStateWorked,
		CyclePhase:     6,
		ManualOverride: true,
	}

	suite.mockService.EXPECT().
		MarkExtraShift(gomock.Any(), "system").
		Return(updated, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/attendance/extra-shift", requestBody)

	var response models.ScheduleEntry
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), models.EntryStateWorked, response.State)
}

// TestMarkExtraShiftNoSchedule tests the 404 mapping for an ungenerated date
func (suite *AttendanceHandlerTestSuite) TestMarkExtraShiftNoSchedule() {
	requestBody := map[string]interface{}{
		"post_id":         uuid.New().String(),
		"installation_id": uuid.New().String(),
		"service_role_id": uuid.New().String(),
		"year":            2025,
		"month":           9,
		"day":             3,
	}

	suite.mockService.EXPECT().
		MarkExtraShift(gomock.Any(), "system").
		Return(nil, apperrors.ErrNoScheduleForDate).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/attendance/extra-shift", requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "no schedule entry exists")
}

// TestUndoAttendance tests reverting an entry to its planned baseline
func (suite *AttendanceHandlerTestSuite) TestUndoAttendance() {
	entryID := uuid.New()
	restored := &models.ScheduleEntry{
		BaseModel:  models.BaseModel{ID: entryID},
		PostID:     uuid.New(),
		Year:       2025, Month: 9, Day: 3,
		State:      models.EntryStatePlanned,
		CyclePhase: 3,
	}

	suite.mockService.EXPECT().
		Undo(entryID, "system").
		Return(restored, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/attendance/entries/%s/undo", entryID), nil)

	var response models.ScheduleEntry
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), models.EntryStatePlanned, response.State)
	assert.False(suite.T(), response.ManualOverride)
}

// TestAttendanceHandlerTestSuite runs the test suite
func TestAttendanceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AttendanceHandlerTestSuite))
}
