// Package avatar принимает изображение профиля в поле profileImage.
//
// Тип файла определяется по содержимому, а не по имени или заголовку
// Content-Type. Принимаются PNG, JPEG, GIF и WebP размером до 5 МБ.
package avatar

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
	UploadAvatar(ctx context.Context, userID string, data []byte, contentType, ext string) (*models.PublicUser, error)
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Загрузка аватара
// @Tags Users
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param profileImage formData file true "PNG, JPEG, GIF или WebP до 5 МБ"
// @Success 200 {object} response.Response{data=models.PublicUser}
// @Failure 400 {object} response.ErrorResponse "Файл не передан или не PNG, JPEG, GIF, WebP"
// @Failure 413 {object} response.ErrorResponse "Файл больше 5 МБ"
// @Router /users/me/avatar [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.avatar"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := middlewarectx.Identity(r)
	if err != nil {
		response.Error(w, r, log, err)
		return
	}

	upload, err := request.Image(w, r)
	if err != nil {
		response.Error(w, r, log, err)
		return
	}
	log.Info("image received", slog.String("mime", upload.MIME), slog.Int("size", len(upload.Data)))

	user, err := h.service.UploadAvatar(r.Context(), id.UserID, upload.Data, upload.MIME, upload.Ext)
	if err != nil {
		response.Error(w, r, log, err)
		return
	}
	response.OK(w, r, "profile image uploaded successfully", user)
}
