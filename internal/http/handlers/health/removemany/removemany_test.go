package removemany

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

type MockService struct {
	mock.Mock
}

func (m *MockService) DeleteMany(ctx context.Context, userID string, ids []string) (*models.DeleteResult, error) {
	args := m.Called(ctx, userID, ids)
	res, _ := args.Get(0).(*models.DeleteResult)
	return res, args.Error(1)
}

func TestRemoveManyHandler(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(*MockService)
		wantCode  int
		wantBody  string
	}{
		{
			name: "deletes owned records",
			body: `{"ids":["a","b","c"]}`,
			setupMock: func(m *MockService) {
				m.On("DeleteMany", mock.Anything, "u1", []string{"a", "b", "c"}).Return(&models.DeleteResult{Deleted: 2}, nil).Once()
			},
			wantCode: http.StatusOK,
			wantBody: `"deleted":2`,
		},
		{
			name:     "empty ids",
			body:     `{"ids":[]}`,
			wantCode: http.StatusBadRequest,
			wantBody: `"field":"ids"`,
		},
		{
			name: "nothing deleted",
			body: `{"ids":["x"]}`,
			setupMock: func(m *MockService) {
				m.On("DeleteMany", mock.Anything, "u1", []string{"x"}).Return(nil, apperr.New(apperr.KindNotFound, "no records found to delete")).Once()
			},
			wantCode: http.StatusNotFound,
			wantBody: "no records found to delete",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}
			req := httptest.NewRequest(http.MethodPost, "/api/v1/health-info/multiple-delete", strings.NewReader(tt.body))
			req = req.WithContext(middlewarectx.WithIdentity(req.Context(), models.Identity{UserID: "u1", Role: models.RoleUser}))
			w := httptest.NewRecorder()

			New(sl.Discard(), svc, validation.New()).ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			svc.AssertExpectations(t)
		})
	}
}
