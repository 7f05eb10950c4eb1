// Package create реализует добавление симптома в журнал пользователя.
package create

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
	Create(ctx context.Context, userID string, in models.SymptomInput) (*models.Symptom, error)
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
// @Summary Добавление симптома
// @Tags Symptoms
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.SymptomInput true "Симптом"
// @Success 201 {object} response.Response{data=models.Symptom}
// @Failure 400 {object} response.ErrorResponse
// @Router /symptoms [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.symptoms.create"

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

	sm, err := h.service.Create(r.Context(), id.UserID, req)
	if err != nil {
		response.Error(w, r, log, err)
		return
	}
	response.Created(w, r, "symptom created successfully", sm)
}
