package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/health-tracker/internal/storage"
)

func TestKindStatus(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindInvalidInput, http.StatusBadRequest},
		{KindDuplicateRecord, http.StatusBadRequest},
		{KindInvalidCredentials, http.StatusUnauthorized},
		{KindExpiredToken, http.StatusUnauthorized},
		{KindForbidden, http.StatusForbidden},
		{KindNotFound, http.StatusNotFound},
		{KindPayloadTooLarge, http.StatusRequestEntityTooLarge},
		{KindTooManyRequests, http.StatusTooManyRequests},
		{KindServerError, http.StatusInternalServerError},
		{Kind("Unknown"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.Status())
		})
	}
}

func TestIsMatchesByKind(t *testing.T) {
	err := fmt.Errorf("service: %w", Wrap(KindNotFound, "record not found", errors.New("no rows")))

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrForbidden)
}

func TestFrom(t *testing.T) {
	assert.Nil(t, From(nil))

	known := fmt.Errorf("wrapped: %w", ErrDuplicateEmail)
	assert.Equal(t, KindDuplicateEmail, From(known).Kind)

	plain := errors.New("boom")
	got := From(plain)
	assert.Equal(t, KindServerError, got.Kind)
	assert.ErrorIs(t, got, plain)
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "NotFound: resource not found", ErrNotFound.Error())
	assert.Equal(t, "ServerError: internal server error: boom", Internal(errors.New("boom")).Error())
}

func TestFromStore(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		msg     string
		want    *Error
		wantMsg string
	}{
		{name: "not found", err: fmt.Errorf("op: %w", storage.ErrNotFound), want: ErrNotFound, wantMsg: "resource not found"},
		{name: "not found custom", err: storage.ErrNotFound, msg: "user not found", want: ErrNotFound, wantMsg: "user not found"},
		{name: "email", err: fmt.Errorf("op: %w", storage.ErrDuplicateEmail), want: ErrDuplicateEmail, wantMsg: ErrDuplicateEmail.Message},
		{name: "username", err: storage.ErrDuplicateUsername, want: ErrDuplicateUsername, wantMsg: ErrDuplicateUsername.Message},
		{name: "record", err: storage.ErrDuplicateRecord, want: ErrDuplicateRecord, wantMsg: ErrDuplicateRecord.Message},
		{name: "other", err: errors.New("boom"), want: New(KindServerError, ""), wantMsg: "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromStore(tt.err, tt.msg)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err)
			var e *Error
			require.ErrorAs(t, got, &e)
			assert.Equal(t, tt.wantMsg, e.Message)
		})
	}
	assert.NoError(t, FromStore(nil, ""))
}
