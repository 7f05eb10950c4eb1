package read

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
	Get(ctx context.Context, userID, date string) (*models.HealthRecord, error)
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Запись за день
// @Tags Health
// @Produce  json
// @Security BearerAuth
// @Param date path string true "Дата YYYY-MM-DD"
// @Success 200 {object} response.Response{data=models.HealthRecord}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /health-info/{date} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health.read"

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

	rec, err := h.service.Get(r.Context(), id.UserID, date)
	if err != nil {
		response.Error(w, r, log, err)
		return
	}
	response.OK(w, r, "health record retrieved successfully", rec)
}
