// Package apperr описывает прикладные ошибки сервиса и их HTTP-статусы.
//
// Сервисы возвращают *Error с нужным Kind, обработчики отдают его клиенту
// через пакет response без дополнительного разбора.
package apperr

import (
	"errors"
	"net/http"

	"github.com/magabrotheeeer/health-tracker/internal/storage"
)

// Kind классифицирует ошибку.
type Kind string

// Виды ошибок.
const (
	KindInvalidInput       Kind = "InvalidInput"
	KindBadRequest         Kind = "BadRequest"
	KindDuplicateEmail     Kind = "DuplicateEmail"
	KindDuplicateUsername  Kind = "DuplicateUsername"
	KindDuplicateRecord    Kind = "DuplicateRecord"
	KindInvalidCredentials Kind = "InvalidCredentials"
	KindAccountDisabled    Kind = "AccountDisabled"
	KindUnauthenticated    Kind = "Unauthenticated"
	KindMalformedToken     Kind = "MalformedToken"
	KindExpiredToken       Kind = "ExpiredToken"
	KindInvalidToken       Kind = "InvalidToken"
	KindForbidden          Kind = "Forbidden"
	KindNotFound           Kind = "NotFound"
	KindPayloadTooLarge    Kind = "PayloadTooLarge"
	KindTooManyRequests    Kind = "TooManyRequests"
	KindServerError        Kind = "ServerError"
)

var statuses = map[Kind]int{
	KindInvalidInput:       http.StatusBadRequest,
	KindBadRequest:         http.StatusBadRequest,
	KindDuplicateEmail:     http.StatusBadRequest,
	KindDuplicateUsername:  http.StatusBadRequest,
	KindDuplicateRecord:    http.StatusBadRequest,
	KindInvalidCredentials: http.StatusUnauthorized,
	KindAccountDisabled:    http.StatusUnauthorized,
	KindUnauthenticated:    http.StatusUnauthorized,
	KindMalformedToken:     http.StatusUnauthorized,
	KindExpiredToken:       http.StatusUnauthorized,
	KindInvalidToken:       http.StatusUnauthorized,
	KindForbidden:          http.StatusForbidden,
	KindNotFound:           http.StatusNotFound,
	KindPayloadTooLarge:    http.StatusRequestEntityTooLarge,
	KindTooManyRequests:    http.StatusTooManyRequests,
	KindServerError:        http.StatusInternalServerError,
}

// Status возвращает HTTP-статус для вида ошибки.
func (k Kind) Status() int {
	if s, ok := statuses[k]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// FieldError описывает нарушение для конкретного поля запроса.
type FieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Error прикладная ошибка. Err хранит исходную причину для логов.
type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return string(e.Kind) + ": " + e.Message + ": " + e.Err.Error()
	}
	return string(e.Kind) + ": " + e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is сравнивает ошибки по виду, чтобы errors.Is работал с сентинелами ниже.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Status HTTP-статус ошибки.
func (e *Error) Status() int { return e.Kind.Status() }

// New создаёт ошибку заданного вида.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Wrap создаёт ошибку заданного вида с причиной.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// Invalid ошибка валидации с деталями по полям.
func Invalid(msg string, fields ...FieldError) *Error {
	return &Error{Kind: KindInvalidInput, Message: msg, Fields: fields}
}

// Internal оборачивает неожиданную ошибку.
func Internal(err error) *Error {
	return &Error{Kind: KindServerError, Message: "internal server error", Err: err}
}

// From приводит произвольную ошибку к *Error. Неизвестные ошибки становятся ServerError.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal(err)
}

// Сентинелы для часто встречающихся ошибок.
var (
	ErrInvalidCredentials = New(KindInvalidCredentials, "invalid email or password")
	ErrAccountDisabled    = New(KindAccountDisabled, "account is disabled")
	ErrDuplicateEmail     = New(KindDuplicateEmail, "email is already registered")
	ErrDuplicateUsername  = New(KindDuplicateUsername, "username is already taken")
	ErrDuplicateRecord    = New(KindDuplicateRecord, "a record for this date already exists")
	ErrUnauthenticated    = New(KindUnauthenticated, "authentication required")
	ErrMalformedToken     = New(KindMalformedToken, "malformed authorization token")
	ErrExpiredToken       = New(KindExpiredToken, "token has expired, please log in again")
	ErrInvalidToken       = New(KindInvalidToken, "invalid token")
	ErrForbidden          = New(KindForbidden, "you do not have permission to perform this action")
	ErrNotFound           = New(KindNotFound, "resource not found")
	ErrTooManyRequests    = New(KindTooManyRequests, "too many requests, please try again later")
)

// FromStore переводит ошибку хранилища в прикладную, сохраняя причину.
// notFoundMsg заменяет общее сообщение для ErrNotFound, если не пусто.
func FromStore(err error, notFoundMsg string) error {
	if err == nil {
		return nil
	}
	var sentinel *Error
	switch {
	case errors.Is(err, storage.ErrNotFound):
		sentinel = ErrNotFound
		if notFoundMsg != "" {
			return &Error{Kind: KindNotFound, Message: notFoundMsg, Err: err}
		}
	case errors.Is(err, storage.ErrDuplicateEmail):
		sentinel = ErrDuplicateEmail
	case errors.Is(err, storage.ErrDuplicateUsername):
		sentinel = ErrDuplicateUsername
	case errors.Is(err, storage.ErrDuplicateRecord):
		sentinel = ErrDuplicateRecord
	default:
		return Internal(err)
	}
	return &Error{Kind: sentinel.Kind, Message: sentinel.Message, Err: err}
}
