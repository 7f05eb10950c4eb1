// Package login реализует HTTP-обработчик входа по email и паролю.
package login

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/health-tracker/internal/http/request"
	"github.com/magabrotheeeer/health-tracker/internal/http/response"
	"github.com/magabrotheeeer/health-tracker/internal/models"
)

// Service описывает интерфейс бизнес-логики аутентификации.
type Service interface {
	Login(ctx context.Context, in models.LoginInput) (*models.AuthResult, error)
}

// Handler обрабатывает HTTP-запросы для авторизации.
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
// @Summary Авторизация пользователя
// @Description Аутентифицирует пользователя по email и паролю. Возвращает JWT.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body models.LoginInput true "Учетные данные пользователя"
// @Success 200 {object} response.Response{data=models.AuthResult}
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Неверные учетные данные или аккаунт отключён"
// @Failure 429 {object} response.ErrorResponse "Слишком много попыток"
// @Router /auth/login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.LoginInput
	if err := request.DecodeValid(w, r, h.validate, &req); err != nil {
		response.Error(w, r, log, err)
		return
	}

	res, err := h.service.Login(r.Context(), req)
	if err != nil {
		response.Error(w, r, log, err)
		return
	}

	log.Info("login success", slog.String("user_id", res.User.ID))
	response.OK(w, r, "login successful", res)
}
