// Package importcsv принимает CSV-файл и сохраняет все строки как записи о здоровье.
package importcsv

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
	Import(ctx context.Context, userID string, data []byte) (*models.ImportResult, error)
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Импорт записей из CSV
// @Description Колонки Date,Weight,Height,Systolic,Diastolic,Steps. Если хотя бы одна дата уже записана, файл отклоняется целиком.
// @Tags Health
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param file formData file true "CSV до 5 МБ"
// @Success 200 {object} response.Response{data=models.ImportResult}
// @Failure 400 {object} response.ErrorResponse
// @Failure 413 {object} response.ErrorResponse
// @Router /health-info/import [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health.import"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := middlewarectx.Identity(r)
	if err != nil {
		response.Error(w, r, log, err)
		return
	}

	upload, err := request.CSV(w, r)
	if err != nil {
		response.Error(w, r, log, err)
		return
	}

	res, err := h.service.Import(r.Context(), id.UserID, upload.Data)
	if err != nil {
		response.Error(w, r, log, err)
		return
	}
	log.Info("csv imported", slog.String("filename", upload.Filename), slog.Int("imported", res.Imported))
	response.OK(w, r, "health records imported successfully", res)
}
