package list

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
	List(ctx context.Context, userID string, q models.ListQuery) (*models.Page[models.HealthRecord], error)
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список записей о здоровье
// @Description Записи текущего пользователя, новые сверху.
// @Tags Health
// @Produce  json
// @Security BearerAuth
// @Param page query int false "Номер страницы" default(1)
// @Param limit query int false "Размер страницы, 1-100" default(10)
// @Param startDate query string false "Начало периода"
// @Param endDate query string false "Конец периода"
// @Success 200 {object} response.Response "items и pagination"
// @Failure 400 {object} response.ErrorResponse
// @Router /health-info [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := middlewarectx.Identity(r)
	if err != nil {
		response.Error(w, r, log, err)
		return
	}
	q, err := request.ListQuery(r)
	if err != nil {
		response.Error(w, r, log, err)
		return
	}

	page, err := h.service.List(r.Context(), id.UserID, q)
	if err != nil {
		response.Error(w, r, log, err)
		return
	}
	response.OK(w, r, "health records retrieved successfully", page)
}
