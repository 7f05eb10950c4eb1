// Package logout реализует выход: токен из заголовка или тела попадает в список отозванных.
package logout

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
	Logout(ctx context.Context, token string) error
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Выход
// @Description Отзывает токен до окончания его срока действия.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param Authorization header string false "Bearer <token>"
// @Param request body models.LogoutInput false "Токен, если не передан в заголовке"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Токен не передан"
// @Failure 401 {object} response.ErrorResponse "Токен не разбирается"
// @Router /auth/logout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var token string
	if header := r.Header.Get("Authorization"); header != "" {
		t, err := middlewarectx.BearerToken(header)
		if err != nil {
			response.Error(w, r, log, err)
			return
		}
		token = t
	} else if r.ContentLength != 0 {
		var req models.LogoutInput
		if err := request.Decode(w, r, &req); err != nil {
			response.Error(w, r, log, err)
			return
		}
		token = req.Token
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		response.Error(w, r, log, err)
		return
	}

	log.Info("logout success")
	response.OK(w, r, "logged out successfully", nil)
}
