package logout

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/health-tracker/internal/lib/apperr"
	"github.com/magabrotheeeer/health-tracker/internal/lib/sl"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Logout(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func TestLogoutHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		body      string
		token     string
		mockErr   error
		callsSvc  bool
		wantCode  int
		wantInMsg string
	}{
		{name: "token from header", header: "Bearer abc", token: "abc", callsSvc: true, wantCode: http.StatusOK, wantInMsg: "logged out successfully"},
		{name: "token from body", body: `{"token":"xyz"}`, token: "xyz", callsSvc: true, wantCode: http.StatusOK, wantInMsg: "logged out successfully"},
		{
			name:      "no token",
			token:     "",
			mockErr:   apperr.New(apperr.KindBadRequest, "token is required"),
			callsSvc:  true,
			wantCode:  http.StatusBadRequest,
			wantInMsg: "token is required",
		},
		{name: "malformed header", header: "Token abc", wantCode: http.StatusUnauthorized, wantInMsg: "malformed authorization token"},
		{
			name:      "undecodable token",
			header:    "Bearer garbage",
			token:     "garbage",
			mockErr:   apperr.ErrMalformedToken,
			callsSvc:  true,
			wantCode:  http.StatusUnauthorized,
			wantInMsg: "malformed authorization token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			if tt.callsSvc {
				svc.On("Logout", mock.Anything, tt.token).Return(tt.mockErr).Once()
			}
			handler := New(sl.Discard(), svc)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", strings.NewReader(tt.body))
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantInMsg)
			svc.AssertExpectations(t)
		})
	}
}
