package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/fastflight/internal/domain"
	"github.com/Domenick1991/fastflight/internal/service/alerts"
	"github.com/Domenick1991/fastflight/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAlertUseCase struct {
	mock.Mock
}

func (m *MockAlertUseCase) CreateAlert(ctx context.Context, input alerts.CreateAlertInput) (*domain.PriceAlert, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceAlert), args.Error(1)
}

func (m *MockAlertUseCase) CheckAlerts(ctx context.Context, flights []domain.Flight) (bool, error) {
	args := m.Called(ctx, flights)
	return args.Bool(0), args.Error(1)
}

func (m *MockAlertUseCase) Alerts(ctx context.Context) ([]domain.PriceAlert, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.PriceAlert), args.Error(1)
}

func (m *MockAlertUseCase) RemoveAlert(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestAlertHandler_create(t *testing.T) {
	mockService := &MockAlertUseCase{}
	handler := NewAlertHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	input := alerts.CreateAlertInput{
		Origin:      "Delhi",
		Destination: "Goa",
		Date:        "2026-12-20",
		TargetPrice: 3500,
	}
	body, _ := json.Marshal(input)
	c.Request = httptest.NewRequest("POST", "/alerts", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	alert := &domain.PriceAlert{ID: "AL-12345678", Origin: "Delhi", Destination: "Goa", TargetPrice: 3500}
	mockService.On("CreateAlert", c.Request.Context(), input).Return(alert, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response domain.PriceAlert
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "AL-12345678", response.ID)

	mockService.AssertExpectations(t)
}

func TestAlertHandler_list(t *testing.T) {
	mockService := &MockAlertUseCase{}
	handler := NewAlertHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/alerts", nil)

	mockService.On("Alerts", c.Request.Context()).Return([]domain.PriceAlert{{ID: "AL-1"}, {ID: "AL-2"}}, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []domain.PriceAlert
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response, 2)
}

func TestAlertHandler_remove(t *testing.T) {
	mockService := &MockAlertUseCase{}
	handler := NewAlertHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("DELETE", "/alerts/AL-1", nil)
	c.Params = gin.Params{{Key: "id", Value: "AL-1"}}

	mockService.On("RemoveAlert", c.Request.Context(), "AL-1").Return(nil)

	handler.remove(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAlertHandler_remove_notFound(t *testing.T) {
	mockService := &MockAlertUseCase{}
	handler := NewAlertHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("DELETE", "/alerts/AL-MISSING", nil)
	c.Params = gin.Params{{Key: "id", Value: "AL-MISSING"}}

	mockService.On("RemoveAlert", c.Request.Context(), "AL-MISSING").Return(store.ErrNotFound)

	handler.remove(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
