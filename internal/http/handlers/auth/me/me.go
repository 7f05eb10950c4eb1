// Package me отдаёт публичный профиль текущего пользователя.
package me

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
	Me(ctx context.Context, userID string) (*models.PublicUser, error)
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Текущий пользователь
// @Tags Auth
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=models.PublicUser}
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/me [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.me"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := middlewarectx.Identity(r)
	if err != nil {
		response.Error(w, r, log, err)
		return
	}

	user, err := h.service.Me(r.Context(), id.UserID)
	if err != nil {
		response.Error(w, r, log, err)
		return
	}
	response.OK(w, r, "user retrieved successfully", user)
}
