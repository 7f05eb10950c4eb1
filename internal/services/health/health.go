// Package services содержит логику записей о здоровье: CRUD, статистику,
// графики, экспорт и импорт.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/health-tracker/internal/lib/apperr"
	"github.com/magabrotheeeer/health-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/health-tracker/internal/models"
)

// HealthRepository описывает контракт хранилища записей о здоровье.
type HealthRepository interface {
	CreateHealthRecord(ctx context.Context, r models.HealthRecord) (*models.HealthRecord, error)
	GetHealthRecord(ctx context.Context, userID, date string) (*models.HealthRecord, error)
	UpdateHealthRecord(ctx context.Context, r models.HealthRecord) (*models.HealthRecord, error)
	DeleteHealthRecord(ctx context.Context, userID, date string) error
	DeleteHealthRecords(ctx context.Context, userID string, ids []string) (int64, error)
	ListHealthRecords(ctx context.Context, userID string, q models.ListQuery) ([]models.HealthRecord, int64, error)
	HealthRecordsInRange(ctx context.Context, userID string, dr models.DateRange) ([]models.HealthRecord, error)
	ExistingDates(ctx context.Context, userID string, dates []string) ([]string, error)
	InsertHealthRecords(ctx context.Context, records []models.HealthRecord) error
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
}

// EventPublisher публикует доменные события.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// Validator проверяет структуру.
type Validator interface {
	Struct(s any) error
}

const (
	recordNotFound = "health record not found"
	statsTTL       = 10 * time.Minute
)

// HealthService реализует бизнес-логику записей о здоровье, включая кеширование статистики.
type HealthService struct {
	repo      HealthRepository
	cache     Cache
	events    EventPublisher
	validator Validator
	log       *slog.Logger
}

// NewHealthService создает новый экземпляр HealthService.
func NewHealthService(repo HealthRepository, cache Cache, publisher EventPublisher, validator Validator, log *slog.Logger) *HealthService {
	return &HealthService{
		repo:      repo,
		cache:     cache,
		events:    publisher,
		validator: validator,
		log:       log,
	}
}

func statsKey(userID string) string {
	return fmt.Sprintf("health:stats:%s", userID)
}

// invalidate сбрасывает кешированную статистику пользователя после изменений.
func (s *HealthService) invalidate(ctx context.Context, userID string) {
	if err := s.cache.Invalidate(ctx, statsKey(userID)); err != nil {
		s.log.Warn("failed to invalidate cache", slog.String("key", statsKey(userID)), sl.Err(err))
	}
}

// Create сохраняет запись за день. Повторная дата даёт ErrDuplicateRecord.
func (s *HealthService) Create(ctx context.Context, userID string, in models.HealthRecordInput) (*models.HealthRecord, error) {
	rec := models.HealthRecord{UserID: userID, Date: in.Date}
	in.HealthMetrics.Apply(&rec)

	created, err := s.repo.CreateHealthRecord(ctx, rec)
	if err != nil {
		return nil, apperr.FromStore(err, "")
	}
	s.invalidate(ctx, userID)
	s.log.Info("health record created", slog.String("user_id", userID), slog.String("date", in.Date))
	return created, nil
}

// List возвращает страницу записей, новые сверху.
func (s *HealthService) List(ctx context.Context, userID string, q models.ListQuery) (*models.Page[models.HealthRecord], error) {
	items, total, err := s.repo.ListHealthRecords(ctx, userID, q)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if items == nil {
		items = []models.HealthRecord{}
	}
	return &models.Page[models.HealthRecord]{Items: items, Pagination: models.NewPagination(q, total)}, nil
}

// Get возвращает запись за день.
func (s *HealthService) Get(ctx context.Context, userID, date string) (*models.HealthRecord, error) {
	rec, err := s.repo.GetHealthRecord(ctx, userID, date)
	if err != nil {
		return nil, apperr.FromStore(err, recordNotFound)
	}
	return rec, nil
}

// Update меняет только переданные показатели записи.
func (s *HealthService) Update(ctx context.Context, userID, date string, m models.HealthMetrics) (*models.HealthRecord, error) {
	rec, err := s.repo.GetHealthRecord(ctx, userID, date)
	if err != nil {
		return nil, apperr.FromStore(err, recordNotFound)
	}
	m.Apply(rec)

	updated, err := s.repo.UpdateHealthRecord(ctx, *rec)
	if err != nil {
		return nil, apperr.FromStore(err, recordNotFound)
	}
	s.invalidate(ctx, userID)
	return updated, nil
}

// Delete удаляет запись за день.
func (s *HealthService) Delete(ctx context.Context, userID, date string) error {
	if err := s.repo.DeleteHealthRecord(ctx, userID, date); err != nil {
		return apperr.FromStore(err, recordNotFound)
	}
	s.invalidate(ctx, userID)
	return nil
}

// DeleteMany удаляет записи пользователя из списка ids. Чужие и
// несуществующие идентификаторы пропускаются.
func (s *HealthService) DeleteMany(ctx context.Context, userID string, ids []string) (*models.DeleteResult, error) {
	n, err := s.repo.DeleteHealthRecords(ctx, userID, ids)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if n == 0 {
		return nil, apperr.New(apperr.KindNotFound, "no records found to delete")
	}
	s.invalidate(ctx, userID)
	s.log.Info("health records deleted", slog.String("user_id", userID), slog.Int64("deleted", n))
	return &models.DeleteResult{Deleted: n}, nil
}

// inRange возвращает записи по возрастанию даты. Пустая выборка даёт NotFound с msg.
func (s *HealthService) inRange(ctx context.Context, userID string, dr models.DateRange, msg string) ([]models.HealthRecord, error) {
	records, err := s.repo.HealthRecordsInRange(ctx, userID, dr)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(records) == 0 {
		return nil, apperr.New(apperr.KindNotFound, msg)
	}
	return records, nil
}

// Export возвращает записи за период для выгрузки.
func (s *HealthService) Export(ctx context.Context, userID string, dr models.DateRange) ([]models.HealthRecord, error) {
	return s.inRange(ctx, userID, dr, "no data to export")
}
