package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lifedesk/lifedesk-api/internal/models"
	"github.com/lifedesk/lifedesk-api/internal/services"
	"github.com/lifedesk/lifedesk-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// TaskHandlerTestSuite defines the test suite for TaskHandler
type TaskHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *services.TaskService
	router  *gin.Engine
}

// SetupTest runs before each test
func (suite *TaskHandlerTestSuite) SetupTest() {
	var err error
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.db.AutoMigrate(&models.Collection{}))

	st, err := store.New(suite.db)
	suite.Require().NoError(err)

	suite.service = services.NewTaskService(st)
	handler := NewTaskHandler(suite.service)

	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.GET("/api/tasks", handler.ListTasks)
	suite.router.POST("/api/tasks", handler.CreateTask)
	suite.router.GET("/api/tasks/:id", handler.GetTask)
	suite.router.PATCH("/api/tasks/:id", handler.UpdateTask)
	suite.router.DELETE("/api/tasks/:id", handler.DeleteTask)
	suite.router.POST("/api/tasks/:id/toggle", handler.ToggleTask)
}

// TearDownTest runs after each test
func (suite *TaskHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *TaskHandlerTestSuite) request(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *TaskHandlerTestSuite) createTestTask(title string) models.Task {
	task, err := suite.service.Create(services.CreateTaskInput{Title: title})
	suite.Require().NoError(err)
	return *task
}

func (suite *TaskHandlerTestSuite) TestCreateTask() {
	w := suite.request(http.MethodPost, "/api/tasks", gin.H{
		"title":    "Water plants",
		"due_date": "2024-01-11",
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var task models.Task
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &task))
	assert.NotEmpty(suite.T(), task.ID)
	assert.Equal(suite.T(), "Water plants", task.Title)
	assert.Equal(suite.T(), models.TaskStatusTodo, task.Status)
}

func (suite *TaskHandlerTestSuite) TestCreateTaskWithoutTitle() {
	w := suite.request(http.MethodPost, "/api/tasks", gin.H{"notes": "no title"})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *TaskHandlerTestSuite) TestCreateTaskInvalidBody() {
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *TaskHandlerTestSuite) TestListTasks() {
	suite.createTestTask("Water plants")
	suite.createTestTask("Pay rent")

	w := suite.request(http.MethodGet, "/api/tasks", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response struct {
		Tasks []models.Task `json:"tasks"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(suite.T(), response.Tasks, 2)
}

func (suite *TaskHandlerTestSuite) TestListTasksFiltered() {
	suite.createTestTask("Water plants")
	suite.createTestTask("Pay rent")

	w := suite.request(http.MethodGet, "/api/tasks?q=rent", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response struct {
		Tasks []models.Task `json:"tasks"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response.Tasks, 1)
	assert.Equal(suite.T(), "Pay rent", response.Tasks[0].Title)
}

func (suite *TaskHandlerTestSuite) TestGetTask() {
	task := suite.createTestTask("Water plants")

	w := suite.request(http.MethodGet, "/api/tasks/"+task.ID, nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got models.Task
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), task.ID, got.ID)
}

func (suite *TaskHandlerTestSuite) TestGetTaskNotFound() {
	w := suite.request(http.MethodGet, "/api/tasks/TSK-20240101-000000", nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *TaskHandlerTestSuite) TestUpdateTask() {
	task := suite.createTestTask("Water plants")

	w := suite.request(http.MethodPatch, "/api/tasks/"+task.ID, gin.H{
		"status": "IN_PROGRESS",
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got models.Task
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), models.TaskStatusInProgress, got.Status)
	assert.Equal(suite.T(), "Water plants", got.Title)
}

func (suite *TaskHandlerTestSuite) TestUpdateTaskNotFound() {
	w := suite.request(http.MethodPatch, "/api/tasks/TSK-20240101-000000", gin.H{
		"title": "anything",
	})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *TaskHandlerTestSuite) TestDeleteTask() {
	task := suite.createTestTask("Water plants")

	w := suite.request(http.MethodDelete, "/api/tasks/"+task.ID, nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.request(http.MethodGet, "/api/tasks/"+task.ID, nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *TaskHandlerTestSuite) TestToggleTask() {
	task := suite.createTestTask("Water plants")

	w := suite.request(http.MethodPost, "/api/tasks/"+task.ID+"/toggle", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got models.Task
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), models.TaskStatusDone, got.Status)
}

func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
