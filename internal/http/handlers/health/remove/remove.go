package remove

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/health-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/health-tracker/internal/http/request"
	"github.com/magabrotheeeer/health-tracker/internal/http/response"
)

type Service interface {
	Delete(ctx context.Context, userID, date string) error
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Удаление записи за день
// @Tags Health
// @Produce  json
// @Security BearerAuth
// @Param date path string true "Дата YYYY-MM-DD"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse
// @Router /health-info/{date} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health.remove"

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

	if err = h.service.Delete(r.Context(), id.UserID, date); err != nil {
		response.Error(w, r, log, err)
		return
	}
	log.Info("health record deleted", slog.String("date", date))
	response.OK(w, r, "health record deleted successfully", nil)
}
