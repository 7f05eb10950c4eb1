package stats

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/health-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/health-tracker/internal/lib/apperr"
	"github.com/magabrotheeeer/health-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/health-tracker/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Stats(ctx context.Context, userID string, dr models.DateRange) (*models.HealthStats, error) {
	args := m.Called(ctx, userID, dr)
	st, _ := args.Get(0).(*models.HealthStats)
	return st, args.Error(1)
}

func TestStatsHandler(t *testing.T) {
	identity := models.Identity{UserID: "u1", Role: models.RoleUser}

	t.Run("empty metrics serialize as null", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Stats", mock.Anything, "u1", models.DateRange{Start: "2024-01-01"}).
			Return(&models.HealthStats{DateRange: models.StatsDateRange{Start: "2024-01-01", End: "2024-01-01", Count: 1}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/health-info/stats?startDate=2024-01-01", nil)
		w := httptest.NewRecorder()
		New(sl.Discard(), svc).ServeHTTP(w, req.WithContext(middlewarectx.WithIdentity(req.Context(), identity)))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"weight":{"avg":null,"min":null,"max":null,"count":0}`)
		svc.AssertExpectations(t)
	})

	t.Run("no records", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Stats", mock.Anything, "u1", models.DateRange{}).Return(nil, apperr.New(apperr.KindNotFound, "no health records found")).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/health-info/stats", nil)
		w := httptest.NewRecorder()
		New(sl.Discard(), svc).ServeHTTP(w, req.WithContext(middlewarectx.WithIdentity(req.Context(), identity)))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
