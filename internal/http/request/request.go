// Package request разбирает тела, параметры и загружаемые файлы HTTP-запросов
// и превращает ошибки разбора в apperr.
package request

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/health-tracker/internal/lib/apperr"
	"github.com/magabrotheeeer/health-tracker/internal/lib/validation"
	"github.com/magabrotheeeer/health-tracker/internal/models"
)

// MaxBodySize предел JSON-тела запроса.
const MaxBodySize = 1 << 20

// Пагинация по умолчанию.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Validator проверяет структуру запроса.
type Validator interface {
	Struct(s any) error
}

// Decode читает JSON-тело в v.
func Decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	if err := render.DecodeJSON(r.Body, v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return apperr.Wrap(apperr.KindPayloadTooLarge, "request body is too large", err)
		}
		return apperr.Wrap(apperr.KindBadRequest, "failed to decode request body", err)
	}
	return nil
}

// DecodeValid читает JSON-тело и проверяет его валидатором.
func DecodeValid(w http.ResponseWriter, r *http.Request, val Validator, v any) error {
	if err := Decode(w, r, v); err != nil {
		return err
	}
	return val.Struct(v)
}

// ListQuery разбирает page, limit, startDate и endDate из строки запроса.
func ListQuery(r *http.Request) (models.ListQuery, error) {
	q := models.ListQuery{Page: DefaultPage, Limit: DefaultLimit}
	var fields []apperr.FieldError

	if s := r.URL.Query().Get("page"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			fields = append(fields, apperr.FieldError{Field: "page", Message: "page must be a positive integer"})
		} else {
			q.Page = n
		}
	}
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > MaxLimit {
			fields = append(fields, apperr.FieldError{Field: "limit", Message: "limit must be between 1 and 100"})
		} else {
			q.Limit = n
		}
	}

	dr, err := DateRange(r)
	if err != nil {
		var e *apperr.Error
		if errors.As(err, &e) {
			fields = append(fields, e.Fields...)
		}
	}
	if len(fields) > 0 {
		return q, apperr.Invalid("invalid query parameters", fields...)
	}
	q.DateRange = dr
	return q, nil
}

// DateRange разбирает startDate и endDate. Даты приводятся к YYYY-MM-DD.
func DateRange(r *http.Request) (models.DateRange, error) {
	var (
		dr     models.DateRange
		fields []apperr.FieldError
	)
	parse := func(name string, dst *string) {
		s := r.URL.Query().Get(name)
		if s == "" {
			return
		}
		t, err := validation.ParseDate(s)
		if err != nil {
			fields = append(fields, apperr.FieldError{Field: name, Message: name + " must be a valid date"})
			return
		}
		*dst = t.Format(models.DateLayout)
	}
	parse("startDate", &dr.Start)
	parse("endDate", &dr.End)

	if len(fields) == 0 && dr.Start != "" && dr.End != "" && dr.Start > dr.End {
		fields = append(fields, apperr.FieldError{Field: "endDate", Message: "endDate must not be before startDate"})
	}
	if len(fields) > 0 {
		return dr, apperr.Invalid("invalid date range", fields...)
	}
	return dr, nil
}

// Day разбирает календарный день из параметра пути.
func Day(s string) (string, error) {
	t, err := validation.ParseDay(s)
	if err != nil {
		return "", apperr.Invalid("invalid date",
			apperr.FieldError{Field: "date", Message: "date must be in format YYYY-MM-DD"})
	}
	return t.Format(models.DateLayout), nil
}
