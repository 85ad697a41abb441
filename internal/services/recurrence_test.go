package services

import (
	"testing"
	"time"

	"github.com/lifedesk/lifedesk-api/internal/models"
	"github.com/lifedesk/lifedesk-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// RecurrenceTestSuite exercises the sweep over a store backed by
// in-memory SQLite.
type RecurrenceTestSuite struct {
	suite.Suite
	db    *gorm.DB
	store *store.Store
	tasks *TaskService
}

func (suite *RecurrenceTestSuite) SetupTest() {
	var err error
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.db.AutoMigrate(&models.Collection{}))

	suite.store, err = store.New(suite.db)
	suite.Require().NoError(err)

	suite.tasks = NewTaskService(suite.store)
}

func (suite *RecurrenceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *RecurrenceTestSuite) seed(tasks ...models.Task) {
	suite.store.Save(store.CollectionTasks, tasks)
}

func (suite *RecurrenceTestSuite) allTasks() []models.Task {
	var tasks []models.Task
	suite.store.Load(store.CollectionTasks, &tasks)
	return tasks
}

func at(value string) time.Time {
	t, err := time.Parse("2006-01-02T15:04", value)
	if err != nil {
		panic(err)
	}
	return t
}

func (suite *RecurrenceTestSuite) TestDailyRegeneration() {
	suite.seed(models.Task{
		ID:             "TSK-20240109-080000",
		Title:          "Water plants",
		DueDate:        "2024-01-10",
		Status:         models.TaskStatusDone,
		Priority:       models.PriorityHigh,
		IsRecurring:    true,
		RecurrenceRule: models.RecurrenceDaily,
		Notes:          "the balcony ones too",
	})

	created := suite.tasks.RegenerateRecurring(at("2024-01-11T00:01"))

	assert.Equal(suite.T(), 1, created)
	tasks := suite.allTasks()
	suite.Require().Len(tasks, 2)

	next := tasks[1]
	assert.Equal(suite.T(), "Water plants", next.Title)
	assert.Equal(suite.T(), "2024-01-11", next.DueDate)
	assert.Equal(suite.T(), models.TaskStatusTodo, next.Status)
	assert.Equal(suite.T(), models.PriorityHigh, next.Priority)
	assert.Equal(suite.T(), "the balcony ones too", next.Notes)
	assert.True(suite.T(), next.IsRecurring)
	assert.NotEqual(suite.T(), tasks[0].ID, next.ID)

	// The completed parent is never deleted.
	assert.Equal(suite.T(), models.TaskStatusDone, tasks[0].Status)
}

func (suite *RecurrenceTestSuite) TestSweepIsIdempotent() {
	suite.seed(models.Task{
		ID:             "TSK-20240109-080000",
		Title:          "Water plants",
		DueDate:        "2024-01-10",
		Status:         models.TaskStatusDone,
		IsRecurring:    true,
		RecurrenceRule: models.RecurrenceDaily,
	})

	now := at("2024-01-11T00:01")
	first := suite.tasks.RegenerateRecurring(now)
	second := suite.tasks.RegenerateRecurring(now)

	assert.Equal(suite.T(), 1, first)
	assert.Equal(suite.T(), 0, second)
	assert.Len(suite.T(), suite.allTasks(), 2)
}

func (suite *RecurrenceTestSuite) TestWeeklyAddsSevenDays() {
	suite.seed(models.Task{
		ID:             "TSK-20240101-080000",
		Title:          "Weekly review",
		DueDate:        "2024-01-05",
		Status:         models.TaskStatusDone,
		IsRecurring:    true,
		RecurrenceRule: models.RecurrenceWeekly,
	})

	created := suite.tasks.RegenerateRecurring(at("2024-01-12T09:00"))

	assert.Equal(suite.T(), 1, created)
	assert.Equal(suite.T(), "2024-01-12", suite.allTasks()[1].DueDate)
}

func (suite *RecurrenceTestSuite) TestMonthlyClampsToShorterMonth() {
	suite.seed(models.Task{
		ID:             "TSK-20240101-080000",
		Title:          "Pay rent",
		DueDate:        "2024-01-31",
		Status:         models.TaskStatusDone,
		IsRecurring:    true,
		RecurrenceRule: models.RecurrenceMonthly,
	})

	created := suite.tasks.RegenerateRecurring(at("2024-03-01T00:01"))

	assert.Equal(suite.T(), 1, created)
	// 2024 is a leap year.
	assert.Equal(suite.T(), "2024-02-29", suite.allTasks()[1].DueDate)
}

func (suite *RecurrenceTestSuite) TestMonthlyClampsInNonLeapYear() {
	suite.seed(models.Task{
		ID:             "TSK-20230101-080000",
		Title:          "Pay rent",
		DueDate:        "2023-01-31",
		Status:         models.TaskStatusDone,
		IsRecurring:    true,
		RecurrenceRule: models.RecurrenceMonthly,
	})

	created := suite.tasks.RegenerateRecurring(at("2023-03-01T00:01"))

	assert.Equal(suite.T(), 1, created)
	assert.Equal(suite.T(), "2023-02-28", suite.allTasks()[1].DueDate)
}

func (suite *RecurrenceTestSuite) TestMonthlyKeepsDayWhenItFits() {
	suite.seed(models.Task{
		ID:             "TSK-20240101-080000",
		Title:          "Backup photos",
		DueDate:        "2024-01-15",
		Status:         models.TaskStatusDone,
		IsRecurring:    true,
		RecurrenceRule: models.RecurrenceMonthly,
	})

	created := suite.tasks.RegenerateRecurring(at("2024-02-15T08:00"))

	assert.Equal(suite.T(), 1, created)
	assert.Equal(suite.T(), "2024-02-15", suite.allTasks()[1].DueDate)
}

func (suite *RecurrenceTestSuite) TestNextOccurrenceNotYetDue() {
	suite.seed(models.Task{
		ID:             "TSK-20240109-080000",
		Title:          "Water plants",
		DueDate:        "2024-01-10",
		Status:         models.TaskStatusDone,
		IsRecurring:    true,
		RecurrenceRule: models.RecurrenceDaily,
	})

	created := suite.tasks.RegenerateRecurring(at("2024-01-10T12:00"))

	assert.Equal(suite.T(), 0, created)
	assert.Len(suite.T(), suite.allTasks(), 1)
}

func (suite *RecurrenceTestSuite) TestOpenOccurrenceSuppressesRegeneration() {
	suite.seed(
		models.Task{
			ID:             "TSK-20240109-080000",
			Title:          "Water plants",
			DueDate:        "2024-01-10",
			Status:         models.TaskStatusDone,
			IsRecurring:    true,
			RecurrenceRule: models.RecurrenceDaily,
		},
		models.Task{
			ID:      "TSK-20240110-090000",
			Title:   "Water plants",
			DueDate: "2024-01-11",
			Status:  models.TaskStatusInProgress,
		},
	)

	created := suite.tasks.RegenerateRecurring(at("2024-01-11T00:01"))

	assert.Equal(suite.T(), 0, created)
	assert.Len(suite.T(), suite.allTasks(), 2)
}

// The dedup key is title+date+non-DONE, so an unrelated task that happens
// to share both also suppresses regeneration. Inherited behavior, kept.
func (suite *RecurrenceTestSuite) TestUnrelatedTaskWithSameTitleAndDateSuppresses() {
	suite.seed(
		models.Task{
			ID:             "TSK-20240109-080000",
			Title:          "Call home",
			DueDate:        "2024-01-10",
			Status:         models.TaskStatusDone,
			IsRecurring:    true,
			RecurrenceRule: models.RecurrenceDaily,
		},
		models.Task{
			ID:      "TSK-20240108-090000",
			Title:   "Call home",
			DueDate: "2024-01-11",
			Status:  models.TaskStatusTodo,
		},
	)

	created := suite.tasks.RegenerateRecurring(at("2024-01-11T00:01"))

	assert.Equal(suite.T(), 0, created)
}

func (suite *RecurrenceTestSuite) TestNonRecurringAndUnfinishedTasksIgnored() {
	suite.seed(
		models.Task{
			ID:      "TSK-20240109-080000",
			Title:   "One-off chore",
			DueDate: "2024-01-10",
			Status:  models.TaskStatusDone,
		},
		models.Task{
			ID:             "TSK-20240109-080001",
			Title:          "Water plants",
			DueDate:        "2024-01-10",
			Status:         models.TaskStatusTodo,
			IsRecurring:    true,
			RecurrenceRule: models.RecurrenceDaily,
		},
	)

	created := suite.tasks.RegenerateRecurring(at("2024-01-20T00:01"))

	assert.Equal(suite.T(), 0, created)
	assert.Len(suite.T(), suite.allTasks(), 2)
}

func (suite *RecurrenceTestSuite) TestUnparsableDueDateSkipped() {
	suite.seed(models.Task{
		ID:             "TSK-20240109-080000",
		Title:          "Broken date",
		DueDate:        "someday",
		Status:         models.TaskStatusDone,
		IsRecurring:    true,
		RecurrenceRule: models.RecurrenceDaily,
	})

	created := suite.tasks.RegenerateRecurring(at("2024-01-11T00:01"))

	assert.Equal(suite.T(), 0, created)
}

func (suite *RecurrenceTestSuite) TestSweepHandlesMultipleLineages() {
	suite.seed(
		models.Task{
			ID:             "TSK-20240109-080000",
			Title:          "Water plants",
			DueDate:        "2024-01-10",
			Status:         models.TaskStatusDone,
			IsRecurring:    true,
			RecurrenceRule: models.RecurrenceDaily,
		},
		models.Task{
			ID:             "TSK-20240105-080000",
			Title:          "Weekly review",
			DueDate:        "2024-01-05",
			Status:         models.TaskStatusDone,
			IsRecurring:    true,
			RecurrenceRule: models.RecurrenceWeekly,
		},
	)

	created := suite.tasks.RegenerateRecurring(at("2024-01-12T09:00"))

	assert.Equal(suite.T(), 2, created)
	tasks := suite.allTasks()
	suite.Require().Len(tasks, 4)

	// Occurrences minted in the same tick still get distinct ids.
	assert.NotEqual(suite.T(), tasks[2].ID, tasks[3].ID)
}

func TestRecurrenceTestSuite(t *testing.T) {
	suite.Run(t, new(RecurrenceTestSuite))
}
