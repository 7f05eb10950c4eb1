package list

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/health-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/health-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/health-tracker/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, userID string, q models.ListQuery) (*models.Page[models.HealthRecord], error) {
	args := m.Called(ctx, userID, q)
	p, _ := args.Get(0).(*models.Page[models.HealthRecord])
	return p, args.Error(1)
}

func TestListHandler(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantQuery *models.ListQuery
		wantCode  int
		wantBody  string
	}{
		{
			name:      "defaults",
			query:     "",
			wantQuery: &models.ListQuery{Page: 1, Limit: 10},
			wantCode:  http.StatusOK,
			wantBody:  `"pagination"`,
		},
		{
			name:  "date filter normalized",
			query: "?page=3&limit=20&startDate=2024-01-01T10:00:00Z&endDate=2024-01-31",
			wantQuery: &models.ListQuery{Page: 3, Limit: 20, DateRange: models.DateRange{
				Start: "2024-01-01", End: "2024-01-31",
			}},
			wantCode: http.StatusOK,
			wantBody: `"items":[]`,
		},
		{
			name:     "page zero",
			query:    "?page=0",
			wantCode: http.StatusBadRequest,
			wantBody: `"field":"page"`,
		},
		{
			name:     "reversed range",
			query:    "?startDate=2024-02-01&endDate=2024-01-01",
			wantCode: http.StatusBadRequest,
			wantBody: `"field":"endDate"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			if tt.wantQuery != nil {
				svc.On("List", mock.Anything, "u1", *tt.wantQuery).Return(&models.Page[models.HealthRecord]{
					Items:      []models.HealthRecord{},
					Pagination: models.NewPagination(*tt.wantQuery, 0),
				}, nil).Once()
			}

			req := httptest.NewRequest(http.MethodGet, "/api/v1/health-info"+tt.query, nil)
			req = req.WithContext(middlewarectx.WithIdentity(req.Context(), models.Identity{UserID: "u1", Role: models.RoleUser}))
			w := httptest.NewRecorder()

			New(sl.Discard(), svc).ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			svc.AssertExpectations(t)
		})
	}
}
