package password

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
	ChangePassword(ctx context.Context, userID string, in models.PasswordChange) error
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
// @Summary Смена пароля
// @Tags Users
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.PasswordChange true "Текущий и новый пароль"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Новый пароль не соответствует политике"
// @Failure 401 {object} response.ErrorResponse "Неверный текущий пароль"
// @Router /users/me/password [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.password"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := middlewarectx.Identity(r)
	if err != nil {
		response.Error(w, r, log, err)
		return
	}

	var req models.PasswordChange
	if err = request.DecodeValid(w, r, h.validate, &req); err != nil {
		response.Error(w, r, log, err)
		return
	}

	if err = h.service.ChangePassword(r.Context(), id.UserID, req); err != nil {
		response.Error(w, r, log, err)
		return
	}
	response.OK(w, r, "password changed successfully", nil)
}
