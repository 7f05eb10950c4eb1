package update

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
	"github.com/magabrotheeeer/health-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/health-tracker/internal/lib/validation"
	"github.com/magabrotheeeer/health-tracker/internal/models"
)

// MockService реализует интерфейс update.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Update(ctx context.Context, userID, date string, metrics models.HealthMetrics) (*models.HealthRecord, error) {
	args := m.Called(ctx, userID, date, metrics)
	rec, _ := args.Get(0).(*models.HealthRecord)
	return rec, args.Error(1)
}

func TestUpdateHandler(t *testing.T) {
	tests := []struct {
		name           string
		date           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное обновление записи",
			date: "2024-01-15",
			body: `{"steps":12000}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, "u1", "2024-01-15", mock.MatchedBy(func(hm models.HealthMetrics) bool {
					return hm.Steps != nil && *hm.Steps == 12000 && hm.Weight == nil
				})).Return(&models.HealthRecord{ID: "r1"}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "health record updated successfully",
		},
		{
			name:           "отрицательные шаги",
			date:           "2024-01-15",
			body:           `{"steps":-5}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"field":"steps"`,
		},
		{
			name:           "тело не JSON",
			date:           "2024-01-15",
			body:           `steps=1`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "failed to decode request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			req := httptest.NewRequest(http.MethodPut, "/api/v1/health-info/"+tt.date, strings.NewReader(tt.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("date", tt.date)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			ctx = middlewarectx.WithIdentity(ctx, models.Identity{UserID: "u1", Role: models.RoleUser})
			w := httptest.NewRecorder()

			New(sl.Discard(), svc, validation.New()).ServeHTTP(w, req.WithContext(ctx))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}
