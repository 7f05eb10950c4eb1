// Package services реализует журнал симптомов пользователя.
package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/magabrotheeeer/health-tracker/internal/lib/apperr"
	"github.com/magabrotheeeer/health-tracker/internal/lib/validation"
	"github.com/magabrotheeeer/health-tracker/internal/models"
)

// SymptomRepository описывает контракт хранилища симптомов.
type SymptomRepository interface {
	CreateSymptom(ctx context.Context, sm models.Symptom) (*models.Symptom, error)
	GetSymptom(ctx context.Context, userID, id string) (*models.Symptom, error)
	ListSymptoms(ctx context.Context, userID string) ([]models.Symptom, error)
	UpdateSymptom(ctx context.Context, sm models.Symptom) (*models.Symptom, error)
	DeleteSymptom(ctx context.Context, userID, id string) error
}

const symptomNotFound = "symptom not found"

// SymptomService управляет симптомами. Все операции ограничены владельцем.
type SymptomService struct {
	repo SymptomRepository
	log  *slog.Logger
	now  func() time.Time
}

// NewSymptomService создает новый экземпляр SymptomService.
func NewSymptomService(repo SymptomRepository, log *slog.Logger) *SymptomService {
	return &SymptomService{repo: repo, log: log, now: time.Now}
}

// WithClock подменяет источник времени.
func (s *SymptomService) WithClock(now func() time.Time) *SymptomService {
	s.now = now
	return s
}

// build собирает симптом из входных данных. Пустая дата означает текущий момент.
func (s *SymptomService) build(userID string, in models.SymptomInput) (models.Symptom, error) {
	date := s.now().UTC()
	if in.Date != "" {
		d, err := validation.ParseDate(in.Date)
		if err != nil {
			return models.Symptom{}, apperr.Invalid("validation failed", apperr.FieldError{
				Field:   "date",
				Message: "field date must be an ISO 8601 date",
			})
		}
		date = d.UTC()
	}
	return models.Symptom{
		UserID:      userID,
		Category:    in.Category,
		Description: strings.TrimSpace(in.Description),
		Severity:    in.Severity,
		Duration:    strings.TrimSpace(in.Duration),
		Notes:       strings.TrimSpace(in.Notes),
		Date:        date.Truncate(time.Millisecond),
	}, nil
}

// Create сохраняет новый симптом.
func (s *SymptomService) Create(ctx context.Context, userID string, in models.SymptomInput) (*models.Symptom, error) {
	sm, err := s.build(userID, in)
	if err != nil {
		return nil, err
	}
	created, err := s.repo.CreateSymptom(ctx, sm)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	s.log.Info("symptom created", slog.String("user_id", userID), slog.String("id", created.ID))
	return created, nil
}

// List возвращает симптомы пользователя, новые сверху.
func (s *SymptomService) List(ctx context.Context, userID string) ([]models.Symptom, error) {
	items, err := s.repo.ListSymptoms(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if items == nil {
		items = []models.Symptom{}
	}
	return items, nil
}

// Get возвращает симптом по идентификатору.
func (s *SymptomService) Get(ctx context.Context, userID, id string) (*models.Symptom, error) {
	sm, err := s.repo.GetSymptom(ctx, userID, id)
	if err != nil {
		return nil, apperr.FromStore(err, symptomNotFound)
	}
	return sm, nil
}

// Update заменяет изменяемые поля симптома.
func (s *SymptomService) Update(ctx context.Context, userID, id string, in models.SymptomInput) (*models.Symptom, error) {
	sm, err := s.build(userID, in)
	if err != nil {
		return nil, err
	}
	sm.ID = id
	updated, err := s.repo.UpdateSymptom(ctx, sm)
	if err != nil {
		return nil, apperr.FromStore(err, symptomNotFound)
	}
	return updated, nil
}

// Delete удаляет симптом.
func (s *SymptomService) Delete(ctx context.Context, userID, id string) error {
	if err := s.repo.DeleteSymptom(ctx, userID, id); err != nil {
		return apperr.FromStore(err, symptomNotFound)
	}
	return nil
}
