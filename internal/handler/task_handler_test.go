package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskboard/internal/handler"
	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) List(ctx context.Context) ([]model.Task, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskRepository) ListByProject(ctx context.Context, projectID uint) ([]model.Task, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskRepository) GetByID(ctx context.Context, id uint) (*model.Task, error) {
	args := m.Called(ctx, id)
	task := args.Get(0)
	if task == nil {
		return nil, args.Error(1)
	}
	return task.(*model.Task), args.Error(1)
}

func (m *MockTaskRepository) Create(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) Update(ctx context.Context, id uint, fields map[string]any) (*model.Task, error) {
	args := m.Called(ctx, id, fields)
	task := args.Get(0)
	if task == nil {
		return nil, args.Error(1)
	}
	return task.(*model.Task), args.Error(1)
}

func (m *MockTaskRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTaskRepository) Move(ctx context.Context, id uint, column string, order int) (*model.Task, error) {
	args := m.Called(ctx, id, column, order)
	task := args.Get(0)
	if task == nil {
		return nil, args.Error(1)
	}
	return task.(*model.Task), args.Error(1)
}

func setupTaskRouter() (*gin.Engine, *MockTaskRepository) {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	mockRepo := new(MockTaskRepository)
	taskHandler := handler.NewTaskHandler(mockRepo)

	r.GET("/tasks", taskHandler.List)
	r.POST("/tasks", taskHandler.Create)
	r.GET("/tasks/:id", taskHandler.GetByID)
	r.PATCH("/tasks/:id", taskHandler.Update)
	r.DELETE("/tasks/:id", taskHandler.Delete)
	r.POST("/tasks/:id/move", taskHandler.Move)

	return r, mockRepo
}

func TestTaskCreate_AppliesDefaults(t *testing.T) {
	// Arrange
	router, mockRepo := setupTaskRouter()

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(task *model.Task) bool {
		return task.Status == model.TaskStatusTodo &&
			task.Priority == model.PriorityMedium &&
			task.Column == model.ColumnTodo
	})).Return(nil)

	jsonBody := []byte(`{"title": "New card", "projectId": 1}`)
	req, _ := http.NewRequest("POST", "/tasks", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusCreated, resp.Code)
	mockRepo.AssertExpectations(t)
}

func TestTaskCreate_MissingFieldsEnumerated(t *testing.T) {
	// Arrange
	router, _ := setupTaskRouter()

	jsonBody := []byte(`{"description": "no title, no project"}`)
	req, _ := http.NewRequest("POST", "/tasks", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var response struct {
		Error  string   `json:"error"`
		Fields []string `json:"fields"`
	}
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Invalid task data", response.Error)
	// Field names come back as the client sent them, not Go identifiers
	assert.ElementsMatch(t, []string{"title", "projectId"}, response.Fields)
}

func TestTaskList_ByProject(t *testing.T) {
	// Arrange
	router, mockRepo := setupTaskRouter()

	mockRepo.On("ListByProject", mock.Anything, uint(3)).
		Return([]model.Task{{ID: 1, Title: "scoped", ProjectID: 3}}, nil)

	req, _ := http.NewRequest("GET", "/tasks?projectId=3", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "scoped")
	mockRepo.AssertExpectations(t)
}

func TestTaskMove_ValidColumn(t *testing.T) {
	// Arrange
	router, mockRepo := setupTaskRouter()

	moved := &model.Task{ID: 5, Title: "card", Column: model.ColumnReview, Order: 2}
	mockRepo.On("Move", mock.Anything, uint(5), model.ColumnReview, 2).Return(moved, nil)

	jsonBody := []byte(`{"column": "review", "order": 2}`)
	req, _ := http.NewRequest("POST", "/tasks/5/move", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	mockRepo.AssertExpectations(t)
}

func TestTaskMove_UnknownColumnFallsBackToCurrentLane(t *testing.T) {
	// Arrange
	router, mockRepo := setupTaskRouter()

	// Drag-end handlers sometimes send a drop-target id, not a lane name
	current := &model.Task{ID: 5, Title: "card", Column: model.ColumnInProgress, Order: 1}
	mockRepo.On("GetByID", mock.Anything, uint(5)).Return(current, nil)
	mockRepo.On("Move", mock.Anything, uint(5), model.ColumnInProgress, 4).Return(current, nil)

	jsonBody := []byte(`{"column": "droppable-17", "order": 4}`)
	req, _ := http.NewRequest("POST", "/tasks/5/move", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	mockRepo.AssertExpectations(t)
}

func TestTaskMove_MissingOrderDefaultsToZero(t *testing.T) {
	// Arrange
	router, mockRepo := setupTaskRouter()

	moved := &model.Task{ID: 5, Column: model.ColumnTodo, Order: 0}
	mockRepo.On("Move", mock.Anything, uint(5), model.ColumnTodo, 0).Return(moved, nil)

	jsonBody := []byte(`{"column": "todo"}`)
	req, _ := http.NewRequest("POST", "/tasks/5/move", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	mockRepo.AssertExpectations(t)
}

func TestTaskMove_NotFound(t *testing.T) {
	// Arrange
	router, mockRepo := setupTaskRouter()

	mockRepo.On("GetByID", mock.Anything, uint(99)).Return(nil, repository.ErrTaskNotFound)

	jsonBody := []byte(`{"column": "nope"}`)
	req, _ := http.NewRequest("POST", "/tasks/99/move", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "Task not found")
	mockRepo.AssertExpectations(t)
}

func TestTaskUpdate_CoercesAndForwardsFields(t *testing.T) {
	// Arrange
	router, mockRepo := setupTaskRouter()

	updated := &model.Task{ID: 5, Title: "card", TimeSpent: 90}
	mockRepo.On("Update", mock.Anything, uint(5), mock.MatchedBy(func(fields map[string]any) bool {
		return fields["time_spent"] == 90
	})).Return(updated, nil)

	jsonBody := []byte(`{"timeSpent": "90"}`)
	req, _ := http.NewRequest("PATCH", "/tasks/5", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	mockRepo.AssertExpectations(t)
}

func TestTaskUpdate_BadDateRejected(t *testing.T) {
	// Arrange
	router, mockRepo := setupTaskRouter()

	jsonBody := []byte(`{"dueDate": "next tuesday"}`)
	req, _ := http.NewRequest("PATCH", "/tasks/5", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "dueDate")
	mockRepo.AssertNotCalled(t, "Update")
}

func TestTaskDelete_NotFound(t *testing.T) {
	// Arrange
	router, mockRepo := setupTaskRouter()

	mockRepo.On("Delete", mock.Anything, uint(42)).Return(repository.ErrTaskNotFound)

	req, _ := http.NewRequest("DELETE", "/tasks/42", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockRepo.AssertExpectations(t)
}
