// Package response формирует единый JSON-конверт для всех ответов API:
// {status, statusCode, message, data?, errors?, timestamp}.
package response

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/health-tracker/internal/lib/apperr"
	"github.com/magabrotheeeer/health-tracker/internal/lib/sl"
)

const (
	// StatusSuccess значение поля status при успехе.
	StatusSuccess = "success"
	// StatusError значение поля status при ошибке.
	StatusError = "error"
)

// Response конверт ответа.
type Response struct {
	Status     string              `json:"status" example:"success"`
	StatusCode int                 `json:"statusCode" example:"200"`
	Message    string              `json:"message" example:"ok"`
	Data       any                 `json:"data,omitempty"`
	Errors     []apperr.FieldError `json:"errors,omitempty"`
	Timestamp  time.Time           `json:"timestamp"`
}

// ErrorResponse конверт ошибки для Swagger-документации.
type ErrorResponse struct {
	Status     string              `json:"status" example:"error"`
	StatusCode int                 `json:"statusCode" example:"400"`
	Message    string              `json:"message" example:"validation failed"`
	Errors     []apperr.FieldError `json:"errors,omitempty"`
	Timestamp  time.Time           `json:"timestamp"`
}

type debugKey struct{}

// WithDebug включает в ответы на внутренние ошибки их текст.
func WithDebug(debug bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), debugKey{}, debug)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func debugEnabled(r *http.Request) bool {
	v, _ := r.Context().Value(debugKey{}).(bool)
	return v
}

// Success отдаёт успешный ответ с данными.
func Success(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	render.Status(r, status)
	render.JSON(w, r, Response{
		Status:     StatusSuccess,
		StatusCode: status,
		Message:    message,
		Data:       data,
		Timestamp:  time.Now().UTC(),
	})
}

// OK отдаёт 200 с данными.
func OK(w http.ResponseWriter, r *http.Request, message string, data any) {
	Success(w, r, http.StatusOK, message, data)
}

// Created отдаёт 201 с данными.
func Created(w http.ResponseWriter, r *http.Request, message string, data any) {
	Success(w, r, http.StatusCreated, message, data)
}

// Error отдаёт ошибку в конверте. Неизвестные ошибки превращаются в ServerError
// и логируются, их текст попадает в ответ только в режиме отладки.
func Error(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	e := apperr.From(err)
	status := e.Status()

	resp := ErrorResponse{
		Status:     StatusError,
		StatusCode: status,
		Message:    e.Message,
		Errors:     e.Fields,
		Timestamp:  time.Now().UTC(),
	}
	if status >= http.StatusInternalServerError {
		log.Error("request failed", sl.Err(err))
		if debugEnabled(r) && e.Err != nil {
			resp.Errors = append(resp.Errors, apperr.FieldError{Message: e.Err.Error()})
		}
	} else {
		log.Info("request rejected", slog.String("kind", string(e.Kind)), sl.Err(err))
	}

	render.Status(r, status)
	render.JSON(w, r, resp)
}
