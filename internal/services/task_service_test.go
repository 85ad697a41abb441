package services

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/lifedesk/lifedesk-api/internal/models"
	"github.com/lifedesk/lifedesk-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type TaskServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *TaskService
}

func (suite *TaskServiceTestSuite) SetupTest() {
	var err error
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.db.AutoMigrate(&models.Collection{}))

	st, err := store.New(suite.db)
	suite.Require().NoError(err)

	suite.service = NewTaskService(st)

	// Advance one second per call so generated IDs stay unique.
	clock := time.Date(2024, 1, 10, 15, 30, 45, 0, time.UTC)
	suite.service.now = func() time.Time {
		now := clock
		clock = clock.Add(time.Second)
		return now
	}
}

func (suite *TaskServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *TaskServiceTestSuite) TestCreateAppliesDefaults() {
	task, err := suite.service.Create(CreateTaskInput{Title: "Water plants"})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "TSK-20240110-153045", task.ID)
	assert.Equal(suite.T(), models.TaskStatusTodo, task.Status)
	assert.Equal(suite.T(), models.PriorityMedium, task.Priority)
}

func (suite *TaskServiceTestSuite) TestCreateRequiresTitle() {
	_, err := suite.service.Create(CreateTaskInput{})

	assert.ErrorIs(suite.T(), err, ErrTitleRequired)
}

func (suite *TaskServiceTestSuite) TestCreateRejectsBadDate() {
	_, err := suite.service.Create(CreateTaskInput{Title: "x", DueDate: "10/01/2024"})

	assert.ErrorIs(suite.T(), err, ErrInvalidDate)
}

func (suite *TaskServiceTestSuite) TestCreateDropsRuleWhenNotRecurring() {
	task, err := suite.service.Create(CreateTaskInput{
		Title:          "One-off",
		IsRecurring:    false,
		RecurrenceRule: models.RecurrenceDaily,
	})

	suite.Require().NoError(err)
	assert.False(suite.T(), task.IsRecurring)
	assert.Empty(suite.T(), task.RecurrenceRule)
}

func (suite *TaskServiceTestSuite) TestCreateRecurringNeedsValidRule() {
	_, err := suite.service.Create(CreateTaskInput{
		Title:          "Water plants",
		IsRecurring:    true,
		RecurrenceRule: "FORTNIGHTLY",
	})

	assert.ErrorIs(suite.T(), err, ErrInvalidRecurrenceRule)
}

func (suite *TaskServiceTestSuite) TestUpdateMergesOnlySubmittedFields() {
	task, err := suite.service.Create(CreateTaskInput{
		Title:    "Water plants",
		Assignee: "me",
		Notes:    "balcony",
	})
	suite.Require().NoError(err)

	title := "Water all plants"
	status := models.TaskStatusInProgress
	updated, err := suite.service.Update(task.ID, UpdateTaskInput{
		Title:  &title,
		Status: &status,
	})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "Water all plants", updated.Title)
	assert.Equal(suite.T(), models.TaskStatusInProgress, updated.Status)
	assert.Equal(suite.T(), "me", updated.Assignee)
	assert.Equal(suite.T(), "balcony", updated.Notes)
}

func (suite *TaskServiceTestSuite) TestUpdateRejectsEmptyTitle() {
	task, err := suite.service.Create(CreateTaskInput{Title: "Water plants"})
	suite.Require().NoError(err)

	empty := ""
	_, err = suite.service.Update(task.ID, UpdateTaskInput{Title: &empty})

	assert.ErrorIs(suite.T(), err, ErrTitleEmpty)
}

func (suite *TaskServiceTestSuite) TestUpdateClearsRuleWhenRecurrenceDisabled() {
	task, err := suite.service.Create(CreateTaskInput{
		Title:          "Water plants",
		IsRecurring:    true,
		RecurrenceRule: models.RecurrenceDaily,
	})
	suite.Require().NoError(err)

	off := false
	updated, err := suite.service.Update(task.ID, UpdateTaskInput{IsRecurring: &off})

	suite.Require().NoError(err)
	assert.False(suite.T(), updated.IsRecurring)
	assert.Empty(suite.T(), updated.RecurrenceRule)
}

func (suite *TaskServiceTestSuite) TestUpdateMissingTask() {
	title := "x"
	_, err := suite.service.Update("TSK-20240101-000000", UpdateTaskInput{Title: &title})

	assert.ErrorIs(suite.T(), err, ErrTaskNotFound)
}

func (suite *TaskServiceTestSuite) TestDeleteRemovesTask() {
	task, err := suite.service.Create(CreateTaskInput{Title: "Water plants"})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.service.Delete(task.ID))

	_, err = suite.service.Get(task.ID)
	assert.ErrorIs(suite.T(), err, ErrTaskNotFound)
}

func (suite *TaskServiceTestSuite) TestDeleteMissingTask() {
	err := suite.service.Delete("TSK-20240101-000000")

	assert.ErrorIs(suite.T(), err, ErrTaskNotFound)
}

func (suite *TaskServiceTestSuite) TestToggleStatusFlipsBetweenTodoAndDone() {
	task, err := suite.service.Create(CreateTaskInput{Title: "Water plants"})
	suite.Require().NoError(err)

	toggled, err := suite.service.ToggleStatus(task.ID)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.TaskStatusDone, toggled.Status)

	toggled, err = suite.service.ToggleStatus(task.ID)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.TaskStatusTodo, toggled.Status)
}

func (suite *TaskServiceTestSuite) TestToggleStatusFromInProgressGoesToDone() {
	task, err := suite.service.Create(CreateTaskInput{
		Title:  "Water plants",
		Status: models.TaskStatusInProgress,
	})
	suite.Require().NoError(err)

	toggled, err := suite.service.ToggleStatus(task.ID)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.TaskStatusDone, toggled.Status)
}

func (suite *TaskServiceTestSuite) TestListFiltersByQueryAndStatus() {
	_, err := suite.service.Create(CreateTaskInput{Title: "Water plants", Notes: "garden"})
	suite.Require().NoError(err)
	_, err = suite.service.Create(CreateTaskInput{Title: "Pay rent", Status: models.TaskStatusDone})
	suite.Require().NoError(err)
	_, err = suite.service.Create(CreateTaskInput{Title: "Weed the garden"})
	suite.Require().NoError(err)

	all := suite.service.List("", nil)
	assert.Len(suite.T(), all, 3)

	byQuery := suite.service.List("garden", nil)
	assert.Len(suite.T(), byQuery, 2)

	done := models.TaskStatusDone
	byStatus := suite.service.List("", &done)
	suite.Require().Len(byStatus, 1)
	assert.Equal(suite.T(), "Pay rent", byStatus[0].Title)

	both := suite.service.List("garden", &done)
	assert.Empty(suite.T(), both)
}

func (suite *TaskServiceTestSuite) TestListPreservesInsertionOrder() {
	for _, title := range []string{"first", "second", "third"} {
		_, err := suite.service.Create(CreateTaskInput{Title: title})
		suite.Require().NoError(err)
	}

	tasks := suite.service.List("", nil)

	suite.Require().Len(tasks, 3)
	assert.Equal(suite.T(), "first", tasks[0].Title)
	assert.Equal(suite.T(), "second", tasks[1].Title)
	assert.Equal(suite.T(), "third", tasks[2].Title)
}

// Parallel requests append through the store's atomic update, so a
// create that returned successfully can never be erased by a concurrent
// writer.
func (suite *TaskServiceTestSuite) TestConcurrentCreatesKeepEveryTask() {
	suite.service.now = time.Now

	const writers = 64
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := suite.service.Create(CreateTaskInput{Title: fmt.Sprintf("task %02d", n)})
			assert.NoError(suite.T(), err)
		}(i)
	}
	wg.Wait()

	assert.Len(suite.T(), suite.service.List("", nil), writers)
}

func (suite *TaskServiceTestSuite) TestConcurrentDeletesRemoveExactlyTheirTasks() {
	for i := 0; i < 8; i++ {
		_, err := suite.service.Create(CreateTaskInput{Title: fmt.Sprintf("task %d", i)})
		suite.Require().NoError(err)
	}
	tasks := suite.service.List("", nil)
	suite.Require().Len(tasks, 8)

	var wg sync.WaitGroup
	for _, t := range tasks[:4] {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			assert.NoError(suite.T(), suite.service.Delete(id))
		}(t.ID)
	}
	wg.Wait()

	assert.Len(suite.T(), suite.service.List("", nil), 4)
}

func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}
