// Package removemany удаляет несколько записей по идентификаторам.
package removemany

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
	DeleteMany(ctx context.Context, userID string, ids []string) (*models.DeleteResult, error)
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
// @Summary Удаление нескольких записей
// @Description Удаляются только записи текущего пользователя.
// @Tags Health
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.DeleteManyInput true "Идентификаторы записей"
// @Success 200 {object} response.Response{data=models.DeleteResult}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Ни одна запись не удалена"
// @Router /health-info/multiple-delete [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health.removemany"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := middlewarectx.Identity(r)
	if err != nil {
		response.Error(w, r, log, err)
		return
	}

	var req models.DeleteManyInput
	if err = request.DecodeValid(w, r, h.validate, &req); err != nil {
		response.Error(w, r, log, err)
		return
	}

	res, err := h.service.DeleteMany(r.Context(), id.UserID, req.IDs)
	if err != nil {
		response.Error(w, r, log, err)
		return
	}
	response.OK(w, r, "health records deleted successfully", res)
}
