package read

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/health-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/health-tracker/internal/lib/apperr"
	"github.com/magabrotheeeer/health-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/health-tracker/internal/models"
)

// MockService реализует интерфейс read.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Get(ctx context.Context, userID, date string) (*models.HealthRecord, error) {
	args := m.Called(ctx, userID, date)
	if res := args.Get(0); res != nil {
		return res.(*models.HealthRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestReadHandler(t *testing.T) {
	tests := []struct {
		name           string
		date           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное чтение записи",
			date: "2024-01-15",
			setupMock: func(m *MockService) {
				m.On("Get", mock.Anything, "u1", "2024-01-15").Return(&models.HealthRecord{ID: "r1", Date: "2024-01-15"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"date":"2024-01-15"`,
		},
		{
			name:           "некорректная дата в URL",
			date:           "yesterday",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "date must be in format YYYY-MM-DD",
		},
		{
			name: "запись не найдена",
			date: "2024-02-01",
			setupMock: func(m *MockService) {
				m.On("Get", mock.Anything, "u1", "2024-02-01").Return(nil, apperr.New(apperr.KindNotFound, "health record not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"message":"health record not found"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(sl.Discard(), mockService)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/health-info/"+tt.date, nil)
			// Устанавливаем URL params с помощью роутера chi
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("date", tt.date)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			ctx = middlewarectx.WithIdentity(ctx, models.Identity{UserID: "u1", Role: models.RoleUser})
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
