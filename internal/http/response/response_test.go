package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/health-tracker/internal/lib/apperr"
	"github.com/magabrotheeeer/health-tracker/internal/lib/sl"
)

type envelope struct {
	Status     string              `json:"status"`
	StatusCode int                 `json:"statusCode"`
	Message    string              `json:"message"`
	Data       json.RawMessage     `json:"data"`
	Errors     []apperr.FieldError `json:"errors"`
	Timestamp  string              `json:"timestamp"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func serve(debug bool, h http.HandlerFunc) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	WithDebug(debug)(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	return rec
}

func TestCreated(t *testing.T) {
	rec := serve(false, func(w http.ResponseWriter, r *http.Request) {
		Created(w, r, "created", map[string]string{"id": "1"})
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, StatusSuccess, env.Status)
	assert.Equal(t, http.StatusCreated, env.StatusCode)
	assert.Equal(t, "created", env.Message)
	assert.JSONEq(t, `{"id":"1"}`, string(env.Data))
	assert.NotEmpty(t, env.Timestamp)
}

func TestError(t *testing.T) {
	tests := []struct {
		name       string
		debug      bool
		err        error
		wantStatus int
		wantMsg    string
		wantErrors int
	}{
		{
			name:       "validation with fields",
			err:        apperr.Invalid("validation failed", apperr.FieldError{Field: "email", Message: "bad"}),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "validation failed",
			wantErrors: 1,
		},
		{
			name:       "sentinel",
			err:        apperr.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "invalid email or password",
		},
		{
			name:       "unknown error hidden in production",
			err:        errors.New("db exploded"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "internal server error",
		},
		{
			name:       "unknown error shown in development",
			debug:      true,
			err:        errors.New("db exploded"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "internal server error",
			wantErrors: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(tt.debug, func(w http.ResponseWriter, r *http.Request) {
				Error(w, r, sl.Discard(), tt.err)
			})
			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decode(t, rec)
			assert.Equal(t, StatusError, env.Status)
			assert.Equal(t, tt.wantStatus, env.StatusCode)
			assert.Equal(t, tt.wantMsg, env.Message)
			assert.Len(t, env.Errors, tt.wantErrors)
			assert.Empty(t, env.Data)
		})
	}
}

func TestError_DebugDetail(t *testing.T) {
	rec := serve(true, func(w http.ResponseWriter, r *http.Request) {
		Error(w, r, sl.Discard(), errors.New("db exploded"))
	})
	env := decode(t, rec)
	require.Len(t, env.Errors, 1)
	assert.Equal(t, "db exploded", env.Errors[0].Message)
}
