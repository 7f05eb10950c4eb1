// Package validation настраивает go-playground/validator под правила сервиса
// и переводит ошибки валидации в сообщения по полям.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/health-tracker/internal/lib/apperr"
	"github.com/magabrotheeeer/health-tracker/internal/lib/password"
)

var usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]{4,20}$`)

// Границы длины отображаемого имени без краевых пробелов.
const (
	NameMinLen = 2
	NameMaxLen = 50
)

// Validator обёртка над validator.Validate с зарегистрированными правилами.
type Validator struct {
	v *validator.Validate
}

// New создаёт валидатор с тегами username, password, displayname, day и isodate.
// Имена полей в ошибках берутся из json-тегов.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	// ошибки регистрации возможны только при пустом имени тега
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return password.MeetsPolicy(fl.Field().String())
	})
	_ = v.RegisterValidation("displayname", func(fl validator.FieldLevel) bool {
		return DisplayName(fl.Field().String())
	})
	_ = v.RegisterValidation("day", func(fl validator.FieldLevel) bool {
		_, err := ParseDay(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})
	return &Validator{v: v}
}

// Struct проверяет структуру и возвращает apperr с деталями по полям.
func (v *Validator) Struct(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.Wrap(apperr.KindBadRequest, "invalid request", err)
	}
	return apperr.Invalid("validation failed", Fields(verrs)...)
}

// Fields формирует человеко‑читаемые сообщения для каждого нарушения.
func Fields(errs validator.ValidationErrors) []apperr.FieldError {
	out := make([]apperr.FieldError, 0, len(errs))
	for _, err := range errs {
		out = append(out, apperr.FieldError{
			Field:   fieldPath(err),
			Message: message(err),
		})
	}
	return out
}

// fieldPath убирает имя корневой структуры и встроенных структур из пути поля.
func fieldPath(err validator.FieldError) string {
	parts := strings.Split(err.Namespace(), ".")
	if len(parts) <= 1 {
		return err.Field()
	}
	path := make([]string, 0, len(parts)-1)
	for _, p := range parts[1:] {
		if p == "HealthMetrics" {
			continue
		}
		path = append(path, p)
	}
	return strings.Join(path, ".")
}

func message(err validator.FieldError) string {
	field := err.Field()
	switch err.ActualTag() {
	case "required":
		return fmt.Sprintf("field %s is a required field", field)
	case "email":
		return fmt.Sprintf("field %s must be a valid email address", field)
	case "username":
		return fmt.Sprintf("field %s must be 4-20 characters of letters, digits or underscore", field)
	case "password":
		return fmt.Sprintf("field %s must be 8-72 characters and contain upper and lower case letters, a digit and a special character", field)
	case "min":
		if err.Kind() == reflect.String {
			return fmt.Sprintf("field %s must be at least %s characters", field, err.Param())
		}
		return fmt.Sprintf("field %s must contain at least %s items", field, err.Param())
	case "max":
		return fmt.Sprintf("field %s must be at most %s characters", field, err.Param())
	case "gte":
		return fmt.Sprintf("field %s must be greater than or equal to %s", field, err.Param())
	case "lte":
		return fmt.Sprintf("field %s must be less than or equal to %s", field, err.Param())
	case "oneof":
		return fmt.Sprintf("field %s must be one of: %s", field, strings.ReplaceAll(err.Param(), " ", ", "))
	case "day":
		return fmt.Sprintf("field %s must be a date in format YYYY-MM-DD", field)
	case "displayname":
		return NameMessage(field)
	case "isodate":
		return fmt.Sprintf("field %s must be an ISO 8601 date", field)
	default:
		return fmt.Sprintf("field %s is not valid", field)
	}
}

// ParseDate разбирает дату в формате RFC 3339 или YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// ParseDay разбирает календарный день YYYY-MM-DD.
func ParseDay(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// DisplayName сообщает, укладывается ли имя без краевых пробелов в допустимую длину.
func DisplayName(s string) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(s))
	return n >= NameMinLen && n <= NameMaxLen
}

// NameMessage текст ошибки для имени вне допустимой длины.
func NameMessage(field string) string {
	return fmt.Sprintf("field %s must be %d-%d characters", field, NameMinLen, NameMaxLen)
}
