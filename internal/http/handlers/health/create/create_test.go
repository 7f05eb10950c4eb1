package create

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/health-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/health-tracker/internal/lib/apperr"
	"github.com/magabrotheeeer/health-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/health-tracker/internal/lib/validation"
	"github.com/magabrotheeeer/health-tracker/internal/models"
)

// MockService реализует интерфейс create.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, userID string, in models.HealthRecordInput) (*models.HealthRecord, error) {
	args := m.Called(ctx, userID, in)
	rec, _ := args.Get(0).(*models.HealthRecord)
	return rec, args.Error(1)
}

func TestCreateHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное создание записи",
			body: `{"date":"2024-01-15","weight":70.5,"bloodPressure":{"systolic":120,"diastolic":80}}`,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, "u1", mock.MatchedBy(func(in models.HealthRecordInput) bool {
					return in.Date == "2024-01-15" && *in.Weight == 70.5 && *in.BloodPressure.Diastolic == 80
				})).Return(&models.HealthRecord{ID: "r1", Date: "2024-01-15"}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"id":"r1"`,
		},
		{
			name:           "дата обязательна",
			body:           `{"weight":70}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"field":"date"`,
		},
		{
			name:           "неверный формат даты",
			body:           `{"date":"15.01.2024"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "must be a date in format YYYY-MM-DD",
		},
		{
			name:           "давление вне диапазона",
			body:           `{"date":"2024-01-15","bloodPressure":{"systolic":400}}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"field":"bloodPressure.systolic"`,
		},
		{
			name: "запись за дату уже есть",
			body: `{"date":"2024-01-15"}`,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, "u1", mock.Anything).Return(nil, apperr.ErrDuplicateRecord).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "a record for this date already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/health-info", strings.NewReader(tt.body))
			req = req.WithContext(middlewarectx.WithIdentity(req.Context(), models.Identity{UserID: "u1", Role: models.RoleUser}))
			w := httptest.NewRecorder()

			New(sl.Discard(), svc, validation.New()).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())
			svc.AssertExpectations(t)
		})
	}
}
