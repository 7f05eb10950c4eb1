// Package export выгружает записи о здоровье файлом CSV, XLSX или JSON.
//
// Файл собирается в памяти целиком, поэтому ошибка формирования
// возвращается обычным JSON-ответом, а не обрывком вложения.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/health-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/health-tracker/internal/http/request"
	"github.com/magabrotheeeer/health-tracker/internal/http/response"
	"github.com/magabrotheeeer/health-tracker/internal/lib/apperr"
	"github.com/magabrotheeeer/health-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/health-tracker/internal/lib/tabular"
	"github.com/magabrotheeeer/health-tracker/internal/models"
)

// Форматы выгрузки.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
	FormatJSON = "json"
)

var contentTypes = map[string]string{
	FormatCSV:  "text/csv; charset=utf-8",
	FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	FormatJSON: "application/json; charset=utf-8",
}

type Service interface {
	Export(ctx context.Context, userID string, dr models.DateRange) ([]models.HealthRecord, error)
}

type Handler struct {
	log     *slog.Logger
	service Service
	now     func() time.Time
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service, now: time.Now}
}

// ServeHTTP godoc
// @Summary Выгрузка записей
// @Tags Health
// @Produce  text/csv
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce  json
// @Security BearerAuth
// @Param format query string false "csv, xlsx или json" default(csv)
// @Param startDate query string false "Начало периода"
// @Param endDate query string false "Конец периода"
// @Success 200 {file} file
// @Failure 400 {object} response.ErrorResponse "Неизвестный формат"
// @Failure 404 {object} response.ErrorResponse "Нет данных для выгрузки"
// @Router /health-info/export [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health.export"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := middlewarectx.Identity(r)
	if err != nil {
		response.Error(w, r, log, err)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = FormatCSV
	}
	contentType, ok := contentTypes[format]
	if !ok {
		response.Error(w, r, log, apperr.Invalid("unsupported export format", apperr.FieldError{
			Field:   "format",
			Message: "format must be one of csv, xlsx, json",
		}))
		return
	}
	dr, err := request.DateRange(r)
	if err != nil {
		response.Error(w, r, log, err)
		return
	}

	records, err := h.service.Export(r.Context(), id.UserID, dr)
	if err != nil {
		response.Error(w, r, log, err)
		return
	}

	var buf bytes.Buffer
	switch format {
	case FormatCSV:
		err = tabular.WriteCSV(&buf, records)
	case FormatXLSX:
		err = tabular.WriteXLSX(&buf, records)
	case FormatJSON:
		err = json.NewEncoder(&buf).Encode(records)
	}
	if err != nil {
		response.Error(w, r, log, apperr.Internal(fmt.Errorf("%s: %w", op, err)))
		return
	}

	filename := fmt.Sprintf("health-info-%s.%s", h.now().Format("20060102"), format)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err = buf.WriteTo(w); err != nil {
		log.Warn("failed to write export", slog.String("format", format), sl.Err(err))
		return
	}
	log.Info("export sent", slog.String("format", format), slog.Int("records", len(records)))
}
