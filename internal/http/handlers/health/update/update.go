// Package update меняет показатели записи за день. Не переданные поля сохраняются.
package update

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/health-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/health-tracker/internal/http/request"
	"github.com/magabrotheeeer/health-tracker/internal/http/response"
	"github.com/magabrotheeeer/health-tracker/internal/models"
)

type Service interface {
	Update(ctx context.Context, userID, date string, m models.HealthMetrics) (*models.HealthRecord, error)
}

type Handler struct {
	log      *slog.Logger
	service  Service
	validate request.Validator
}

func New(log *slog.Logger, service Service, validate request.Validator) *Handler {
	return &Handler{log: log, service: service, validate: validate}
}

// ServeHTTP godoc
// @Summary Обновление записи за день
// @Tags Health
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param date path string true "Дата YYYY-MM-DD"
// @Param request body models.HealthMetrics true "Изменяемые показатели"
// @Success 200 {object} response.Response{data=models.HealthRecord}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /health-info/{date} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := middlewarectx.Identity(r)
	if err != nil {
		response.Error(w, r, log, err)
		return
	}
	date, err := request.Day(chi.URLParam(r, "date"))
	if err != nil {
		response.Error(w, r, log, err)
		return
	}

	var req models.HealthMetrics
	if err = request.DecodeValid(w, r, h.validate, &req); err != nil {
		response.Error(w, r, log, err)
		return
	}

	rec, err := h.service.Update(r.Context(), id.UserID, date, req)
	if err != nil {
		response.Error(w, r, log, err)
		return
	}
	log.Info("health record updated", slog.String("date", date))
	response.OK(w, r, "health record updated successfully", rec)
}
