package healthz

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/health-tracker/internal/lib/sl"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthzHandler(t *testing.T) {
	up := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("connection refused") })

	tests := []struct {
		name     string
		checks   map[string]Pinger
		wantCode int
		wantBody string
	}{
		{name: "all up", checks: map[string]Pinger{"storage": up, "cache": up}, wantCode: http.StatusOK, wantBody: `"cache":"ok"`},
		{name: "cache down", checks: map[string]Pinger{"storage": up, "cache": down}, wantCode: http.StatusServiceUnavailable, wantBody: `"cache":"down"`},
		{name: "no checks", checks: nil, wantCode: http.StatusOK, wantBody: `"status":"success"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			New(sl.Discard(), tt.checks).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}
