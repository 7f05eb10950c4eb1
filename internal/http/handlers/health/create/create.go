// Package create реализует создание записи о здоровье за день.
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

// Service описывает бизнес-логику создания записи.
type Service interface {
	Create(ctx context.Context, userID string, in models.HealthRecordInput) (*models.HealthRecord, error)
}

// Handler обрабатывает HTTP-запросы на создание записи.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate request.Validator
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service, validate request.Validator) *Handler {
	return &Handler{log: log, service: service, validate: validate}
}

// ServeHTTP godoc
// @Summary Создание записи о здоровье
// @Description Одна запись на пользователя за день.
// @Tags Health
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.HealthRecordInput true "Показатели за день"
// @Success 201 {object} response.Response{data=models.HealthRecord}
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации или запись за дату уже есть"
// @Failure 401 {object} response.ErrorResponse
// @Router /health-info [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := middlewarectx.Identity(r)
	if err != nil {
		response.Error(w, r, log, err)
		return
	}

	var req models.HealthRecordInput
	if err = request.DecodeValid(w, r, h.validate, &req); err != nil {
		response.Error(w, r, log, err)
		return
	}

	rec, err := h.service.Create(r.Context(), id.UserID, req)
	if err != nil {
		response.Error(w, r, log, err)
		return
	}
	log.Info("health record created", slog.String("id", rec.ID))
	response.Created(w, r, "health record created successfully", rec)
}
