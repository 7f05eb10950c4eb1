package chart

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
	Chart(ctx context.Context, userID, metric string, dr models.DateRange) (*models.Chart, error)
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Данные для графика
// @Tags Health
// @Produce  json
// @Security BearerAuth
// @Param metric path string true "weight, blood-pressure, steps, blood-sugar или sleep"
// @Param startDate query string false "Начало периода"
// @Param endDate query string false "Конец периода"
// @Success 200 {object} response.Response{data=models.Chart}
// @Failure 400 {object} response.ErrorResponse "Неизвестная метрика"
// @Failure 404 {object} response.ErrorResponse
// @Router /health-info/chart/{metric} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health.chart"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := middlewarectx.Identity(r)
	if err != nil {
		response.Error(w, r, log, err)
		return
	}
	dr, err := request.DateRange(r)
	if err != nil {
		response.Error(w, r, log, err)
		return
	}

	ch, err := h.service.Chart(r.Context(), id.UserID, chi.URLParam(r, "metric"), dr)
	if err != nil {
		response.Error(w, r, log, err)
		return
	}
	response.OK(w, r, "chart data retrieved successfully", ch)
}
