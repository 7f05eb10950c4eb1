// Package register реализует HTTP-обработчик регистрации пользователя.
//
// Тело запроса декодируется и проверяется валидатором до обращения к сервису.
// При успехе возвращается 201 с токеном и публичным профилем.
package register

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/health-tracker/internal/http/request"
	"github.com/magabrotheeeer/health-tracker/internal/http/response"
	"github.com/magabrotheeeer/health-tracker/internal/models"
)

// Service описывает бизнес-логику регистрации.
type Service interface {
	Register(ctx context.Context, in models.RegisterInput) (*models.AuthResult, error)
}

// Handler обрабатывает HTTP-запросы регистрации.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate request.Validator
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service, validate request.Validator) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validate,
	}
}

// ServeHTTP godoc
// @Summary Регистрация пользователя
// @Description Создаёт пользователя и возвращает JWT.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body models.RegisterInput true "Данные пользователя"
// @Success 201 {object} response.Response{data=models.AuthResult}
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации или занятый email/username"
// @Failure 500 {object} response.ErrorResponse
// @Router /auth/register [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.RegisterInput
	if err := request.DecodeValid(w, r, h.validate, &req); err != nil {
		response.Error(w, r, log, err)
		return
	}

	res, err := h.service.Register(r.Context(), req)
	if err != nil {
		response.Error(w, r, log, err)
		return
	}

	log.Info("user registered", slog.String("user_id", res.User.ID))
	response.Created(w, r, "user registered successfully", res)
}
