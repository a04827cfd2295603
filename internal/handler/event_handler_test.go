package handler_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskboard/internal/handler"
	"taskboard/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) List(ctx context.Context) ([]model.Event, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Event), args.Error(1)
}

func (m *MockEventRepository) ListByProject(ctx context.Context, projectID uint) ([]model.Event, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]model.Event), args.Error(1)
}

func (m *MockEventRepository) GetByID(ctx context.Context, id uint) (*model.Event, error) {
	args := m.Called(ctx, id)
	event := args.Get(0)
	if event == nil {
		return nil, args.Error(1)
	}
	return event.(*model.Event), args.Error(1)
}

func (m *MockEventRepository) Create(ctx context.Context, event *model.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) Update(ctx context.Context, id uint, fields map[string]any) (*model.Event, error) {
	args := m.Called(ctx, id, fields)
	event := args.Get(0)
	if event == nil {
		return nil, args.Error(1)
	}
	return event.(*model.Event), args.Error(1)
}

func (m *MockEventRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupEventRouter() (*gin.Engine, *MockEventRepository) {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	mockRepo := new(MockEventRepository)
	eventHandler := handler.NewEventHandler(mockRepo)

	r.POST("/events", eventHandler.Create)

	return r, mockRepo
}

func TestEventCreate_AppliesDefaults(t *testing.T) {
	// Arrange
	router, mockRepo := setupEventRouter()

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(event *model.Event) bool {
		return event.Type == model.EventTypeMeeting && event.Color == model.EventColorDefault
	})).Return(nil)

	jsonBody := []byte(`{"title": "Kickoff", "start": "2025-09-01T09:00:00Z"}`)
	req, _ := http.NewRequest("POST", "/events", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusCreated, resp.Code)
	mockRepo.AssertExpectations(t)
}

func TestEventCreate_ExplicitValuesKept(t *testing.T) {
	// Arrange
	router, mockRepo := setupEventRouter()

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(event *model.Event) bool {
		return event.Type == model.EventTypeDeadline && event.Color == "red"
	})).Return(nil)

	jsonBody := []byte(`{"title": "Cutoff", "start": "2025-10-01", "type": "deadline", "color": "red"}`)
	req, _ := http.NewRequest("POST", "/events", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusCreated, resp.Code)
	mockRepo.AssertExpectations(t)
}
