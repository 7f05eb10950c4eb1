package stats

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/health-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/health-tracker/internal/http/request"
	"github.com/magabrotheeeer/health-tracker/internal/http/response"
	"github.com/magabrotheeeer/health-tracker/internal/models"
)

type Service interface {
	Stats(ctx context.Context, userID string, dr models.DateRange) (*models.HealthStats, error)
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Статистика показателей
// @Description avg/min/max/count по весу, росту, давлению и шагам за период.
// @Tags Health
// @Produce  json
// @Security BearerAuth
// @Param startDate query string false "Начало периода"
// @Param endDate query string false "Конец периода"
// @Success 200 {object} response.Response{data=models.HealthStats}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Нет записей за период"
// @Router /health-info/stats [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health.stats"

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

	st, err := h.service.Stats(r.Context(), id.UserID, dr)
	if err != nil {
		response.Error(w, r, log, err)
		return
	}
	response.OK(w, r, "health stats retrieved successfully", st)
}
