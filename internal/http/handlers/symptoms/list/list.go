package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/health-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/health-tracker/internal/http/response"
	"github.com/magabrotheeeer/health-tracker/internal/models"
)

type Service interface {
	List(ctx context.Context, userID string) ([]models.Symptom, error)
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Журнал симптомов
// @Tags Symptoms
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=[]models.Symptom}
// @Router /symptoms [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.symptoms.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := middlewarectx.Identity(r)
	if err != nil {
		response.Error(w, r, log, err)
		return
	}
	items, err := h.service.List(r.Context(), id.UserID)
	if err != nil {
		response.Error(w, r, log, err)
		return
	}
	response.OK(w, r, "symptoms retrieved successfully", items)
}
