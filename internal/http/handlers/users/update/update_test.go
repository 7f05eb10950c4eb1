package update

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

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) UpdateProfile(ctx context.Context, userID string, in models.ProfileUpdate) (*models.PublicUser, error) {
	args := m.Called(ctx, userID, in)
	u, _ := args.Get(0).(*models.PublicUser)
	return u, args.Error(1)
}

func TestUpdateHandler(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(*ServiceMock)
		wantCode  int
		wantBody  string
	}{
		{
			name: "bio only",
			body: `{"bio":"runner"}`,
			setupMock: func(m *ServiceMock) {
				m.On("UpdateProfile", mock.Anything, "u1", mock.MatchedBy(func(in models.ProfileUpdate) bool {
					return in.Bio != nil && *in.Bio == "runner" && in.Name == nil && in.Username == nil
				})).Return(&models.PublicUser{ID: "u1", Bio: "runner"}, nil).Once()
			},
			wantCode: http.StatusOK,
			wantBody: `"bio":"runner"`,
		},
		{
			name:     "bio too long",
			body:     `{"bio":"` + strings.Repeat("a", 201) + `"}`,
			wantCode: http.StatusBadRequest,
			wantBody: `"field":"bio"`,
		},
		{
			name:     "username with spaces",
			body:     `{"username":"bad name"}`,
			wantCode: http.StatusBadRequest,
			wantBody: `"field":"username"`,
		},
		{
			name: "username taken",
			body: `{"username":"taken_name"}`,
			setupMock: func(m *ServiceMock) {
				m.On("UpdateProfile", mock.Anything, "u1", mock.Anything).Return(nil, apperr.ErrDuplicateUsername).Once()
			},
			wantCode: http.StatusBadRequest,
			wantBody: "username is already taken",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			req := httptest.NewRequest(http.MethodPut, "/api/v1/users/me", strings.NewReader(tt.body))
			req = req.WithContext(middlewarectx.WithIdentity(req.Context(), models.Identity{UserID: "u1", Role: models.RoleUser}))
			rec := httptest.NewRecorder()

			New(sl.Discard(), svc, validation.New()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			svc.AssertExpectations(t)
		})
	}
}
