package middlewarectx_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/health-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/health-tracker/internal/lib/apperr"
	"github.com/magabrotheeeer/health-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/health-tracker/internal/models"
)

type AuthenticatorMock struct {
	mock.Mock
}

func (m *AuthenticatorMock) Authenticate(ctx context.Context, token string) (models.Identity, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(models.Identity), args.Error(1)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr error
	}{
		{header: "", wantErr: apperr.ErrUnauthenticated},
		{header: "Bearer", wantErr: apperr.ErrMalformedToken},
		{header: "Bearer ", wantErr: apperr.ErrMalformedToken},
		{header: "Basic abc", wantErr: apperr.ErrMalformedToken},
		{header: "bearer abc", wantErr: apperr.ErrMalformedToken},
		{header: "Bearer a b", wantErr: apperr.ErrMalformedToken},
		{header: "Bearer abc", want: "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := middlewarectx.BearerToken(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJWTMiddleware(t *testing.T) {
	tests := []struct {
		name        string
		authHeader  string
		mockID      models.Identity
		mockErr     error
		callsAuth   bool
		wantStatus  int
		wantMessage string
		wantCalled  bool
	}{
		{
			name:        "missing header",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "authentication required",
		},
		{
			name:        "malformed header",
			authHeader:  "Token abc",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "malformed authorization token",
		},
		{
			name:        "expired token",
			authHeader:  "Bearer expired",
			mockErr:     apperr.ErrExpiredToken,
			callsAuth:   true,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "token has expired, please log in again",
		},
		{
			name:        "revoked token",
			authHeader:  "Bearer revoked",
			mockErr:     apperr.ErrInvalidToken,
			callsAuth:   true,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "invalid token",
		},
		{
			name:        "revocation lookup fails closed",
			authHeader:  "Bearer tok",
			mockErr:     errors.New("redis down"),
			callsAuth:   true,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "internal server error",
		},
		{
			name:       "valid token",
			authHeader: "Bearer good",
			mockID:     models.Identity{UserID: "u1", Role: models.RoleUser},
			callsAuth:  true,
			wantStatus: http.StatusOK,
			wantCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock := new(AuthenticatorMock)
			if tt.callsAuth {
				token, _ := middlewarectx.BearerToken(tt.authHeader)
				authMock.On("Authenticate", mock.Anything, token).Return(tt.mockID, tt.mockErr).Once()
			}

			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				id, ok := middlewarectx.IdentityFrom(r.Context())
				assert.True(t, ok)
				assert.Equal(t, tt.mockID, id)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/health-info", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			middlewarectx.JWTMiddleware(authMock, sl.Discard())(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalled, called)
			if tt.wantMessage != "" {
				var body struct {
					Status  string `json:"status"`
					Message string `json:"message"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, "error", body.Status)
				assert.Equal(t, tt.wantMessage, body.Message)
			}
			authMock.AssertExpectations(t)
		})
	}
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	h := middlewarectx.RequireRole(models.RoleAdmin, sl.Discard())(next)

	tests := []struct {
		name string
		id   *models.Identity
		want int
	}{
		{name: "no identity", want: http.StatusUnauthorized},
		{name: "regular user", id: &models.Identity{UserID: "u1", Role: models.RoleUser}, want: http.StatusForbidden},
		{name: "admin", id: &models.Identity{UserID: "a1", Role: models.RoleAdmin}, want: http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			if tt.id != nil {
				req = req.WithContext(middlewarectx.WithIdentity(req.Context(), *tt.id))
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
