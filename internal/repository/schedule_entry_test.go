//go:build integration
// +build integration

package repository

import (
	"testing"

	"guard-ops-backend/internal/database/models"
	"guard-ops-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ScheduleEntryRepositoryTestSuite tests the ScheduleEntryRepository
type ScheduleEntryRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ScheduleEntryRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ScheduleEntryRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewScheduleEntryRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ScheduleEntryRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ScheduleEntryRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ScheduleEntryRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createPost persists the client/installation/role chain and returns a post
func (suite *ScheduleEntryRepositoryTestSuite) createPost() *models.OperationalPost {
	db := suite.baseTestSuite.DB

	client := suite.factories.Client.Create()
	suite.NoError(db.Create(client).Error)

	installation := suite.factories.Installation.Create(client.ID)
	suite.NoError(db.Create(installation).Error)

	role := suite.factories.ServiceRole.Create()
	suite.NoError(db.Create(role).Error)

	guard := suite.factories.Guard.Create()
	suite.NoError(db.Create(guard).Error)

	post := suite.factories.OperationalPost.Create(installation.ID, role.ID, &guard.ID)
	suite.NoError(db.Create(post).Error)
	return post
}

// TestCreateAndGetByPostDate tests creating and reading one day's entry
func (suite *ScheduleEntryRepositoryTestSuite) TestCreateAndGetByPostDate() {
	post := suite.createPost()
	entry := suite.factories.ScheduleEntry.Create(post.ID, 2025, 9, 3, 3)

	suite.NoError(suite.repo.Create(entry))

	retrieved, err := suite.repo.GetByPostDate(post.ID, 2025, 9, 3)
	suite.NoError(err)
	suite.Equal(entry.ID, retrieved.ID)
	suite.Equal(models.EntryStatePlanned, retrieved.State)
	suite.Equal(3, retrieved.CyclePhase)
}

// TestUniquePerPostAndDate tests the one-entry-per-day constraint
func (suite *ScheduleEntryRepositoryTestSuite) TestUniquePerPostAndDate() {
	post := suite.createPost()
	suite.NoError(suite.repo.Create(suite.factories.ScheduleEntry.Create(post.ID, 2025, 9, 3, 3)))

	duplicate := suite.factories.ScheduleEntry.Create(post.ID, 2025, 9, 3, 3)
	suite.Error(suite.repo.Create(duplicate))
}

// TestGetMonthOrdering tests that a month reads back ordered by day
func (suite *ScheduleEntryRepositoryTestSuite) TestGetMonthOrdering() {
	post := suite.createPost()
	for _, day := range []int{14, 2, 30} {
		suite.NoError(suite.repo.Create(suite.factories.ScheduleEntry.Create(post.ID, 2025, 9, day, 1)))
	}

	entries, err := suite.repo.GetMonth(post.ID, 2025, 9)
	suite.NoError(err)
	suite.Len(entries, 3)
	suite.Equal(2, entries[0].Day)
	suite.Equal(14, entries[1].Day)
	suite.Equal(30, entries[2].Day)
}

// TestGetLastOfMonth tests reading the highest day number of a month
func (suite *ScheduleEntryRepositoryTestSuite) TestGetLastOfMonth() {
	post := suite.createPost()
	for day, phase := range map[int]int{1: 5, 15: 3, 28: 8} {
		suite.NoError(suite.repo.Create(suite.factories.ScheduleEntry.Create(post.ID, 2025, 9, day, phase)))
	}

	last, err := suite.repo.GetLastOfMonth(post.ID, 2025, 9)
	suite.NoError(err)
	suite.Equal(28, last.Day)
	suite.Equal(8, last.CyclePhase)
}

// TestGetLastOfMonthEmpty tests the not-found path for a fresh month
func (suite *ScheduleEntryRepositoryTestSuite) TestGetLastOfMonthEmpty() {
	post := suite.createPost()

	last, err := suite.repo.GetLastOfMonth(post.ID, 2025, 9)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(last)
}

// TestGetForDate tests fetching one day across several posts
func (suite *ScheduleEntryRepositoryTestSuite) TestGetForDate() {
	postA := suite.createPost()
	postB := suite.createPost()
	suite.NoError(suite.repo.Create(suite.factories.ScheduleEntry.Create(postA.ID, 2025, 9, 3, 1)))
	suite.NoError(suite.repo.Create(suite.factories.ScheduleEntry.Create(postB.ID, 2025, 9, 3, 1)))
	suite.NoError(suite.repo.Create(suite.factories.ScheduleEntry.Create(postB.ID, 2025, 9, 4, 2)))

	entries, err := suite.repo.GetForDate([]uuid.UUID{postA.ID, postB.ID}, 2025, 9, 3)
	suite.NoError(err)
	suite.Len(entries, 2)

	entries, err = suite.repo.GetForDate(nil, 2025, 9, 3)
	suite.NoError(err)
	suite.Empty(entries)
}

// TestSaveMonthMixedBatch tests that SaveMonth inserts new rows and updates
// existing ones in one transaction
func (suite *ScheduleEntryRepositoryTestSuite) TestSaveMonthMixedBatch() {
	post := suite.createPost()
	existing := suite.factories.ScheduleEntry.Create(post.ID, 2025, 9, 1, 1)
	suite.NoError(suite.repo.Create(existing))

	existing.State = models.EntryStateOff
	fresh := &models.ScheduleEntry{
		PostID: post.ID,
		Year:   2025, Month: 9, Day: 2,
		State:      models.EntryStatePlanned,
		CyclePhase: 2,
	}

	suite.NoError(suite.repo.SaveMonth([]*models.ScheduleEntry{existing, fresh}))

	entries, err := suite.repo.GetMonth(post.ID, 2025, 9)
	suite.NoError(err)
	suite.Len(entries, 2)
	suite.Equal(models.EntryStateOff, entries[0].State)
	suite.NotEqual(uuid.Nil, entries[1].ID)
}

// TestMetadataRoundTrip tests that the jsonb action payload survives storage
func (suite *ScheduleEntryRepositoryTestSuite) TestMetadataRoundTrip() {
	post := suite.createPost()
	coveringID := uuid.New()

	entry := suite.factories.ScheduleEntry.Create(post.ID, 2025, 9, 3, 3)
	entry.State = models.EntryStateReplacement
	entry.ManualOverride = true
	entry.Metadata = models.EntryMetadata{
		CoveringGuardID: &coveringID,
		Actor:           "supervisor",
		Action:          "mark_attendance",
		Extra:           map[string]interface{}{"shift_note": "late arrival"},
	}
	suite.NoError(suite.repo.Create(entry))

	retrieved, err := suite.repo.GetByID(entry.ID)
	suite.NoError(err)
	suite.Equal(&coveringID, retrieved.Metadata.CoveringGuardID)
	suite.Equal("mark_attendance", retrieved.Metadata.Action)
	suite.Equal("late arrival", retrieved.Metadata.Extra["shift_note"])
}

// TestScheduleEntryRepositoryTestSuite runs the test suite
func TestScheduleEntryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleEntryRepositoryTestSuite))
}
