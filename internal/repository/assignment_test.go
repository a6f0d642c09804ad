//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"guard-ops-backend/internal/database/models"
	apperrors "guard-ops-backend/internal/errors"
	"guard-ops-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// AssignmentRepositoryTestSuite tests the AssignmentRepository
type AssignmentRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AssignmentRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *AssignmentRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewAssignmentRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *AssignmentRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AssignmentRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *AssignmentRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

type assignmentFixture struct {
	guard *models.Guard
	post  *models.OperationalPost
	pc    *models.PendingCoverage
}

// createFixture persists an unassigned post with an open coverage gap and a
// free guard
func (suite *AssignmentRepositoryTestSuite) createFixture() assignmentFixture {
	db := suite.baseTestSuite.DB

	client := suite.factories.Client.Create()
	suite.NoError(db.Create(client).Error)

	installation := suite.factories.Installation.Create(client.ID)
	suite.NoError(db.Create(installation).Error)

	role := suite.factories.ServiceRole.Create()
	suite.NoError(db.Create(role).Error)

	guard := suite.factories.Guard.Create()
	suite.NoError(db.Create(guard).Error)

	post := suite.factories.OperationalPost.Create(installation.ID, role.ID, nil)
	suite.NoError(db.Create(post).Error)

	pc := suite.factories.PendingCoverage.Create(post.ID)
	suite.NoError(db.Create(pc).Error)

	return assignmentFixture{guard: guard, post: post, pc: pc}
}

func (suite *AssignmentRepositoryTestSuite) newAssignment(f assignmentFixture) *models.Assignment {
	return &models.Assignment{
		GuardID:           f.guard.ID,
		PostID:            f.post.ID,
		PendingCoverageID: &f.pc.ID,
		Type:              models.AssignmentTypePPCFill,
		State:             models.AssignmentStateActive,
		StartDate:         time.Now().Truncate(24 * time.Hour),
	}
}

// TestBindPendingCoverage tests the atomic bind: coverage transitions to
// assigned, the assignment row exists, the post flag clears and the guard's
// workload counter is bumped
func (suite *AssignmentRepositoryTestSuite) TestBindPendingCoverage() {
	f := suite.createFixture()
	assignment := suite.newAssignment(f)

	suite.NoError(suite.repo.BindPendingCoverage(f.pc, assignment))

	var pc models.PendingCoverage
	suite.NoError(suite.baseTestSuite.DB.First(&pc, "id = ?", f.pc.ID).Error)
	suite.Equal(models.CoverageStateAssigned, pc.State)
	suite.Equal(f.guard.ID, *pc.AssignedGuardID)
	suite.NotNil(pc.AssignedAt)

	var post models.OperationalPost
	suite.NoError(suite.baseTestSuite.DB.First(&post, "id = ?", f.post.ID).Error)
	suite.False(post.IsPendingCoverage)

	var guard models.Guard
	suite.NoError(suite.baseTestSuite.DB.First(&guard, "id = ?", f.guard.ID).Error)
	suite.Equal(1, guard.PriorAssignments)

	stored, err := suite.repo.GetByID(assignment.ID)
	suite.NoError(err)
	suite.True(stored.IsOpen())
}

// TestBindPendingCoverageDuplicate tests the optimistic state check: a
// second bind of the same record fails and writes nothing
func (suite *AssignmentRepositoryTestSuite) TestBindPendingCoverageDuplicate() {
	f := suite.createFixture()
	suite.NoError(suite.repo.BindPendingCoverage(f.pc, suite.newAssignment(f)))

	second := suite.createFixture()
	late := suite.newAssignment(second)
	late.PendingCoverageID = &f.pc.ID

	err := suite.repo.BindPendingCoverage(f.pc, late)
	suite.ErrorIs(err, apperrors.ErrDuplicateBind)

	// The losing assignment row was never written
	var count int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.Assignment{}).
		Where("guard_id = ?", second.guard.ID).Count(&count).Error)
	suite.Zero(count)
}

// TestGetByGuardID tests paging a guard's history newest first
func (suite *AssignmentRepositoryTestSuite) TestGetByGuardID() {
	f := suite.createFixture()
	first := suite.newAssignment(f)
	first.StartDate = time.Now().AddDate(0, 0, -10).Truncate(24 * time.Hour)
	suite.NoError(suite.repo.Create(first))

	second := suite.newAssignment(f)
	second.PendingCoverageID = nil
	suite.NoError(suite.repo.Create(second))

	assignments, total, err := suite.repo.GetByGuardID(f.guard.ID, 1, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(assignments, 1)
	suite.Equal(second.ID, assignments[0].ID)

	assignments, total, err = suite.repo.GetByGuardID(uuid.New(), 10, 0)
	suite.NoError(err)
	suite.Zero(total)
	suite.Empty(assignments)
}

// TestGetBusyGuardIDs tests that only open, active assignments occupy guards
func (suite *AssignmentRepositoryTestSuite) TestGetBusyGuardIDs() {
	f := suite.createFixture()
	assignment := suite.newAssignment(f)
	suite.NoError(suite.repo.BindPendingCoverage(f.pc, assignment))

	ids, err := suite.repo.GetBusyGuardIDs()
	suite.NoError(err)
	suite.Equal([]uuid.UUID{f.guard.ID}, ids)

	suite.NoError(suite.repo.Close(assignment.ID, models.AssignmentStateFinished, time.Now()))

	ids, err = suite.repo.GetBusyGuardIDs()
	suite.NoError(err)
	suite.Empty(ids)
}

// TestHasOpenAssignmentForPost tests post coverage lookups
func (suite *AssignmentRepositoryTestSuite) TestHasOpenAssignmentForPost() {
	f := suite.createFixture()

	covered, err := suite.repo.HasOpenAssignmentForPost(f.post.ID)
	suite.NoError(err)
	suite.False(covered)

	suite.NoError(suite.repo.BindPendingCoverage(f.pc, suite.newAssignment(f)))

	covered, err = suite.repo.HasOpenAssignmentForPost(f.post.ID)
	suite.NoError(err)
	suite.True(covered)
}

// TestClose tests ending an assignment and stamping the guard
func (suite *AssignmentRepositoryTestSuite) TestClose() {
	f := suite.createFixture()
	assignment := suite.newAssignment(f)
	suite.NoError(suite.repo.BindPendingCoverage(f.pc, assignment))

	end := time.Now()
	suite.NoError(suite.repo.Close(assignment.ID, models.AssignmentStateCancelled, end))

	stored, err := suite.repo.GetByID(assignment.ID)
	suite.NoError(err)
	suite.Equal(models.AssignmentStateCancelled, stored.State)
	suite.NotNil(stored.EndDate)

	var guard models.Guard
	suite.NoError(suite.baseTestSuite.DB.First(&guard, "id = ?", f.guard.ID).Error)
	suite.NotNil(guard.LastAssignmentEnd)
}

// TestCloseTwice tests that a closed assignment cannot be closed again
func (suite *AssignmentRepositoryTestSuite) TestCloseTwice() {
	f := suite.createFixture()
	assignment := suite.newAssignment(f)
	suite.NoError(suite.repo.BindPendingCoverage(f.pc, assignment))
	suite.NoError(suite.repo.Close(assignment.ID, models.AssignmentStateFinished, time.Now()))

	err := suite.repo.Close(assignment.ID, models.AssignmentStateCancelled, time.Now())
	suite.ErrorIs(err, apperrors.ErrAssignmentNotActive)
}

// TestAssignmentRepositoryTestSuite runs the test suite
func TestAssignmentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentRepositoryTestSuite))
}
