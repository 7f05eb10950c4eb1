package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/health-tracker/internal/models"
	"github.com/magabrotheeeer/health-tracker/internal/storage"
)

const symptomColumns = `id, user_id, category, description, severity, duration, notes, date, created_at, updated_at`

func scanSymptom(row rowScanner) (*models.Symptom, error) {
	sm := &models.Symptom{}
	if err := row.Scan(&sm.ID, &sm.UserID, &sm.Category, &sm.Description, &sm.Severity,
		&sm.Duration, &sm.Notes, &sm.Date, &sm.CreatedAt, &sm.UpdatedAt); err != nil {
		return nil, err
	}
	return sm, nil
}

// CreateSymptom сохраняет симптом.
func (s *Storage) CreateSymptom(ctx context.Context, sm models.Symptom) (*models.Symptom, error) {
	const op = "storage.postgresql.CreateSymptom"

	now := time.Now().UTC()
	sm.ID = uuid.NewString()
	sm.CreatedAt, sm.UpdatedAt = now, now
	if _, err := s.DB.ExecContext(ctx, `INSERT INTO symptoms (`+symptomColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		sm.ID, sm.UserID, sm.Category, sm.Description, sm.Severity,
		sm.Duration, sm.Notes, sm.Date, sm.CreatedAt, sm.UpdatedAt); err != nil {
		return nil, wrap(op, err)
	}
	return &sm, nil
}

// GetSymptom возвращает симптом пользователя по идентификатору.
func (s *Storage) GetSymptom(ctx context.Context, userID, id string) (*models.Symptom, error) {
	const op = "storage.postgresql.GetSymptom"
	if !validID(userID) || !validID(id) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	sm, err := scanSymptom(s.DB.QueryRowContext(ctx,
		`SELECT `+symptomColumns+` FROM symptoms WHERE id = $1 AND user_id = $2`, id, userID))
	if err != nil {
		return nil, wrap(op, err)
	}
	return sm, nil
}

// ListSymptoms возвращает симптомы пользователя, свежие первыми.
func (s *Storage) ListSymptoms(ctx context.Context, userID string) ([]models.Symptom, error) {
	const op = "storage.postgresql.ListSymptoms"
	out := []models.Symptom{}
	if !validID(userID) {
		return out, nil
	}
	rows, err := s.DB.QueryContext(ctx,
		`SELECT `+symptomColumns+` FROM symptoms WHERE user_id = $1 ORDER BY date DESC`, userID)
	if err != nil {
		return nil, wrap(op, err)
	}
	defer rows.Close()

	for rows.Next() {
		sm, err := scanSymptom(rows)
		if err != nil {
			return nil, wrap(op, err)
		}
		out = append(out, *sm)
	}
	if err = rows.Err(); err != nil {
		return nil, wrap(op, err)
	}
	return out, nil
}

// UpdateSymptom перезаписывает изменяемые поля симптома.
func (s *Storage) UpdateSymptom(ctx context.Context, sm models.Symptom) (*models.Symptom, error) {
	const op = "storage.postgresql.UpdateSymptom"
	if !validID(sm.UserID) || !validID(sm.ID) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	updated, err := scanSymptom(s.DB.QueryRowContext(ctx, `UPDATE symptoms
		SET category = $1, description = $2, severity = $3, duration = $4, notes = $5,
		    date = $6, updated_at = $7
		WHERE id = $8 AND user_id = $9
		RETURNING `+symptomColumns,
		sm.Category, sm.Description, sm.Severity, sm.Duration, sm.Notes,
		sm.Date, time.Now().UTC(), sm.ID, sm.UserID))
	if err != nil {
		return nil, wrap(op, err)
	}
	return updated, nil
}

// DeleteSymptom удаляет симптом пользователя.
func (s *Storage) DeleteSymptom(ctx context.Context, userID, id string) error {
	const op = "storage.postgresql.DeleteSymptom"
	if !validID(userID) || !validID(id) {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	res, err := s.DB.ExecContext(ctx, `DELETE FROM symptoms WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return wrap(op, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	return nil
}
