package remove

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/health-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/health-tracker/internal/http/response"
)

type Service interface {
	Delete(ctx context.Context, userID, id string) error
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Удаление симптома
// @Tags Symptoms
// @Produce  json
// @Security BearerAuth
// @Param id path string true "ID симптома"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse
// @Router /symptoms/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.symptoms.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := middlewarectx.Identity(r)
	if err != nil {
		response.Error(w, r, log, err)
		return
	}
	symptomID := chi.URLParam(r, "id")
	if err = h.service.Delete(r.Context(), id.UserID, symptomID); err != nil {
		response.Error(w, r, log, err)
		return
	}
	log.Info("symptom deleted", slog.String("id", symptomID))
	response.OK(w, r, "symptom deleted successfully", nil)
}
