package remove

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

func (m *MockService) Delete(ctx context.Context, userID, date string) error {
	return m.Called(ctx, userID, date).Error(0)
}

func deleteRequest(date string) *http.Request {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/health-info/"+date, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("date", date)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	return req.WithContext(middlewarectx.WithIdentity(ctx, models.Identity{UserID: "u1", Role: models.RoleUser}))
}

func TestRemoveHandler(t *testing.T) {
	svc := new(MockService)
	svc.On("Delete", mock.Anything, "u1", "2024-01-15").Return(nil).Once()
	svc.On("Delete", mock.Anything, "u1", "2024-01-16").Return(apperr.New(apperr.KindNotFound, "health record not found")).Once()
	handler := New(sl.Discard(), svc)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, deleteRequest("2024-01-15"))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, deleteRequest("2024-01-16"))
	assert.Equal(t, http.StatusNotFound, w.Code)

	svc.AssertExpectations(t)
}
