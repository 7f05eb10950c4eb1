package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/magabrotheeeer/health-tracker/internal/events"
	"github.com/magabrotheeeer/health-tracker/internal/lib/apperr"
	"github.com/magabrotheeeer/health-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/health-tracker/internal/lib/tabular"
	"github.com/magabrotheeeer/health-tracker/internal/models"
)

// Import разбирает CSV и сохраняет все строки одной операцией. Если хотя бы
// одна дата уже есть у пользователя, не сохраняется ничего.
func (s *HealthService) Import(ctx context.Context, userID string, data []byte) (*models.ImportResult, error) {
	rows, err := tabular.ReadCSV(bytes.NewReader(data))
	if err != nil {
		return nil, apperr.Invalid("invalid CSV format", apperr.FieldError{
			Field:   "file",
			Message: strings.TrimPrefix(err.Error(), "tabular.ReadCSV: "),
		})
	}
	if len(rows) == 0 {
		return nil, apperr.New(apperr.KindBadRequest, "file contains no records")
	}

	records := make([]models.HealthRecord, 0, len(rows))
	dates := make([]string, 0, len(rows))
	for i, row := range rows {
		if err := s.validator.Struct(row); err != nil {
			var e *apperr.Error
			if errors.As(err, &e) {
				return nil, apperr.Invalid(fmt.Sprintf("invalid values on line %d", i+2), e.Fields...)
			}
			return nil, err
		}
		rec := models.HealthRecord{UserID: userID, Date: row.Date}
		row.HealthMetrics.Apply(&rec)
		records = append(records, rec)
		dates = append(dates, row.Date)
	}

	existing, err := s.repo.ExistingDates(ctx, userID, dates)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(existing) > 0 {
		return nil, &apperr.Error{
			Kind:    apperr.KindDuplicateRecord,
			Message: "records already exist for dates: " + strings.Join(existing, ", "),
		}
	}

	if err = s.repo.InsertHealthRecords(ctx, records); err != nil {
		return nil, apperr.FromStore(err, "")
	}
	s.invalidate(ctx, userID)
	s.log.Info("health records imported", slog.String("user_id", userID), slog.Int("count", len(records)))

	evt := events.ImportEvent{UserID: userID, Imported: len(records), At: time.Now().UTC()}
	if err := s.events.Publish(ctx, events.HealthImported, evt); err != nil {
		s.log.Warn("failed to publish event", slog.String("routing_key", events.HealthImported), sl.Err(err))
	}
	return &models.ImportResult{Imported: len(records)}, nil
}
