package chart

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
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

func (m *MockService) Chart(ctx context.Context, userID, metric string, dr models.DateRange) (*models.Chart, error) {
	args := m.Called(ctx, userID, metric, dr)
	c, _ := args.Get(0).(*models.Chart)
	return c, args.Error(1)
}

func chartRequest(metric string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health-info/chart/"+metric, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("metric", metric)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	return req.WithContext(middlewarectx.WithIdentity(ctx, models.Identity{UserID: "u1", Role: models.RoleUser}))
}

func TestChartHandler(t *testing.T) {
	w70 := 70.0
	svc := new(MockService)
	svc.On("Chart", mock.Anything, "u1", "weight", models.DateRange{}).Return(&models.Chart{
		Labels:   []string{"2024-01-01", "2024-01-02"},
		Datasets: []models.ChartDataset{{Label: "Weight", Data: []*float64{&w70, nil}}},
	}, nil).Once()
	svc.On("Chart", mock.Anything, "u1", "mood", models.DateRange{}).
		Return(nil, apperr.Invalid("unsupported metric", apperr.FieldError{Field: "metric", Message: "bad"})).Once()
	handler := New(sl.Discard(), svc)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, chartRequest("weight"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[70,null]`)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, chartRequest("mood"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"metric"`)

	svc.AssertExpectations(t)
}
