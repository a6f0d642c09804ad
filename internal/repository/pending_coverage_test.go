//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"guard-ops-backend/internal/database/models"
	"guard-ops-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// PendingCoverageRepositoryTestSuite tests the PendingCoverageRepository
type PendingCoverageRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *PendingCoverageRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *PendingCoverageRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewPendingCoverageRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *PendingCoverageRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *PendingCoverageRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *PendingCoverageRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createPost persists the entity chain and returns an unassigned post
func (suite *PendingCoverageRepositoryTestSuite) createPost() *models.OperationalPost {
	db := suite.baseTestSuite.DB

	client := suite.factories.Client.Create()
	suite.NoError(db.Create(client).Error)

	installation := suite.factories.Installation.Create(client.ID)
	suite.NoError(db.Create(installation).Error)

	role := suite.factories.ServiceRole.Create()
	suite.NoError(db.Create(role).Error)

	post := suite.factories.OperationalPost.Create(installation.ID, role.ID, nil)
	suite.NoError(db.Create(post).Error)
	return post
}

// TestGetOpenByPostID tests looking up the single open record of a post
func (suite *PendingCoverageRepositoryTestSuite) TestGetOpenByPostID() {
	post := suite.createPost()
	pc := suite.factories.PendingCoverage.Create(post.ID)
	suite.NoError(suite.repo.Create(pc))

	open, err := suite.repo.GetOpenByPostID(post.ID)
	suite.NoError(err)
	suite.Equal(pc.ID, open.ID)
}

// TestGetOpenByPostIDIgnoresTerminal tests that terminal records do not count
// as open
func (suite *PendingCoverageRepositoryTestSuite) TestGetOpenByPostIDIgnoresTerminal() {
	post := suite.createPost()
	pc := suite.factories.PendingCoverage.Create(post.ID)
	pc.State = models.CoverageStateCancelled
	suite.NoError(suite.repo.Create(pc))

	open, err := suite.repo.GetOpenByPostID(post.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(open)
}

// TestGetAllPendingOrdering tests earliest-detection-first ordering
func (suite *PendingCoverageRepositoryTestSuite) TestGetAllPendingOrdering() {
	now := time.Now()

	late := suite.factories.PendingCoverage.Create(suite.createPost().ID)
	late.DetectedAt = now
	suite.NoError(suite.repo.Create(late))

	early := suite.factories.PendingCoverage.Create(suite.createPost().ID)
	early.DetectedAt = now.Add(-2 * time.Hour)
	suite.NoError(suite.repo.Create(early))

	assigned := suite.factories.PendingCoverage.Create(suite.createPost().ID)
	assigned.State = models.CoverageStateAssigned
	suite.NoError(suite.repo.Create(assigned))

	pcs, err := suite.repo.GetAllPending()
	suite.NoError(err)
	suite.Len(pcs, 2)
	suite.Equal(early.ID, pcs[0].ID)
	suite.Equal(late.ID, pcs[1].ID)
}

// TestGetByState tests pagination over a state filter
func (suite *PendingCoverageRepositoryTestSuite) TestGetByState() {
	for i := 0; i < 3; i++ {
		suite.NoError(suite.repo.Create(suite.factories.PendingCoverage.Create(suite.createPost().ID)))
	}

	pcs, total, err := suite.repo.GetByState(models.CoverageStatePending, 2, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(pcs, 2)

	pcs, total, err = suite.repo.GetByState(models.CoverageStateCompleted, 10, 0)
	suite.NoError(err)
	suite.Zero(total)
	suite.Empty(pcs)
}

// TestTransition tests the guarded state transition
func (suite *PendingCoverageRepositoryTestSuite) TestTransition() {
	pc := suite.factories.PendingCoverage.Create(suite.createPost().ID)
	suite.NoError(suite.repo.Create(pc))

	moved, err := suite.repo.Transition(pc.ID, models.CoverageStatePending, models.CoverageStateCancelled)
	suite.NoError(err)
	suite.True(moved)

	// Already left the expected state
	moved, err = suite.repo.Transition(pc.ID, models.CoverageStatePending, models.CoverageStateCompleted)
	suite.NoError(err)
	suite.False(moved)
}

// TestPendingCoverageRepositoryTestSuite runs the test suite
func TestPendingCoverageRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PendingCoverageRepositoryTestSuite))
}
