package login

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/health-tracker/internal/lib/apperr"
	"github.com/magabrotheeeer/health-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/health-tracker/internal/lib/validation"
	"github.com/magabrotheeeer/health-tracker/internal/models"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Login(ctx context.Context, in models.LoginInput) (*models.AuthResult, error) {
	args := m.Called(ctx, in)
	res, _ := args.Get(0).(*models.AuthResult)
	return res, args.Error(1)
}

func TestLoginHandler_ServeHTTP(t *testing.T) {
	in := models.LoginInput{Email: "john@example.com", Password: "Passw0rd!"}

	tests := []struct {
		name         string
		body         any
		mockRes      *models.AuthResult
		mockErr      error
		callsService bool
		wantCode     int
		wantBody     string
	}{
		{
			name:         "valid login",
			body:         in,
			mockRes:      &models.AuthResult{Token: "tok", User: models.PublicUser{ID: "u1"}},
			callsService: true,
			wantCode:     http.StatusOK,
			wantBody:     `"token":"tok"`,
		},
		{
			name:     "missing password",
			body:     models.LoginInput{Email: "john@example.com"},
			wantCode: http.StatusBadRequest,
			wantBody: `"field password is a required field"`,
		},
		{
			name:         "wrong credentials",
			body:         in,
			mockErr:      apperr.ErrInvalidCredentials,
			callsService: true,
			wantCode:     http.StatusUnauthorized,
			wantBody:     `"message":"invalid email or password"`,
		},
		{
			name:         "disabled account",
			body:         in,
			mockErr:      apperr.ErrAccountDisabled,
			callsService: true,
			wantCode:     http.StatusUnauthorized,
			wantBody:     `"message":"account is disabled"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			if tt.callsService {
				svc.On("Login", mock.Anything, in).Return(tt.mockRes, tt.mockErr).Once()
			}
			handler := New(sl.Discard(), svc, validation.New())

			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.True(t, strings.Contains(rec.Body.String(), tt.wantBody),
				"response body should contain %s, got %s", tt.wantBody, rec.Body.String())
			svc.AssertExpectations(t)
		})
	}
}
