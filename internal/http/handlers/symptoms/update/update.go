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
	Update(ctx context.Context, userID, id string, in models.SymptomInput) (*models.Symptom, error)
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
// @Summary Замена симптома
// @Tags Symptoms
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path string true "ID симптома"
// @Param request body models.SymptomInput true "Симптом"
// @Success 200 {object} response.Response{data=models.Symptom}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /symptoms/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.symptoms.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := middlewarectx.Identity(r)
	if err != nil {
		response.Error(w, r, log, err)
		return
	}

	var req models.SymptomInput
	if err = request.DecodeValid(w, r, h.validate, &req); err != nil {
		response.Error(w, r, log, err)
		return
	}

	sm, err := h.service.Update(r.Context(), id.UserID, chi.URLParam(r, "id"), req)
	if err != nil {
		response.Error(w, r, log, err)
		return
	}
	response.OK(w, r, "symptom updated successfully", sm)
}
