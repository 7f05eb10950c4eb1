package postgresql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/health-tracker/internal/models"
	"github.com/magabrotheeeer/health-tracker/internal/storage"
)

const healthColumns = `id, user_id, date, weight, height, systolic, diastolic,
	blood_sugar, steps, sleep_hours, note, created_at, updated_at`

func scanHealthRecord(row rowScanner) (*models.HealthRecord, error) {
	r := &models.HealthRecord{}
	var (
		date                time.Time
		systolic, diastolic *float64
	)
	if err := row.Scan(&r.ID, &r.UserID, &date, &r.Weight, &r.Height, &systolic, &diastolic,
		&r.BloodSugar, &r.Steps, &r.SleepHours, &r.Note, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	r.Date = date.Format(models.DateLayout)
	if systolic != nil || diastolic != nil {
		r.BloodPressure = &models.BloodPressure{Systolic: systolic, Diastolic: diastolic}
	}
	return r, nil
}

func pressure(r models.HealthRecord) (systolic, diastolic *float64) {
	if r.BloodPressure == nil {
		return nil, nil
	}
	return r.BloodPressure.Systolic, r.BloodPressure.Diastolic
}

func dateRangeWhere(userID string, dr models.DateRange) *whereBuilder {
	w := &whereBuilder{}
	w.add("user_id = $%d", userID)
	if dr.Start != "" {
		w.add("date >= $%d", dr.Start)
	}
	if dr.End != "" {
		w.add("date <= $%d", dr.End)
	}
	return w
}

func (s *Storage) queryHealthRecords(ctx context.Context, query string, args ...any) ([]models.HealthRecord, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.HealthRecord
	for rows.Next() {
		r, err := scanHealthRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}

// CreateHealthRecord сохраняет запись. Повтор даты даёт storage.ErrDuplicateRecord.
func (s *Storage) CreateHealthRecord(ctx context.Context, r models.HealthRecord) (*models.HealthRecord, error) {
	const op = "storage.postgresql.CreateHealthRecord"

	now := time.Now().UTC()
	r.ID = uuid.NewString()
	r.CreatedAt, r.UpdatedAt = now, now
	if err := s.insertHealthRecord(ctx, s.DB, r); err != nil {
		return nil, wrap(op, err)
	}
	return &r, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Storage) insertHealthRecord(ctx context.Context, db execer, r models.HealthRecord) error {
	systolic, diastolic := pressure(r)
	_, err := db.ExecContext(ctx, `INSERT INTO health_records (`+healthColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		r.ID, r.UserID, r.Date, r.Weight, r.Height, systolic, diastolic,
		r.BloodSugar, r.Steps, r.SleepHours, r.Note, r.CreatedAt, r.UpdatedAt)
	return err
}

// GetHealthRecord возвращает запись пользователя за день.
func (s *Storage) GetHealthRecord(ctx context.Context, userID, date string) (*models.HealthRecord, error) {
	const op = "storage.postgresql.GetHealthRecord"
	if !validID(userID) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	r, err := scanHealthRecord(s.DB.QueryRowContext(ctx,
		`SELECT `+healthColumns+` FROM health_records WHERE user_id = $1 AND date = $2`, userID, date))
	if err != nil {
		return nil, wrap(op, err)
	}
	return r, nil
}

// UpdateHealthRecord перезаписывает показатели записи (UserID, Date).
func (s *Storage) UpdateHealthRecord(ctx context.Context, r models.HealthRecord) (*models.HealthRecord, error) {
	const op = "storage.postgresql.UpdateHealthRecord"
	if !validID(r.UserID) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	systolic, diastolic := pressure(r)
	updated, err := scanHealthRecord(s.DB.QueryRowContext(ctx, `UPDATE health_records
		SET weight = $1, height = $2, systolic = $3, diastolic = $4, blood_sugar = $5,
		    steps = $6, sleep_hours = $7, note = $8, updated_at = $9
		WHERE user_id = $10 AND date = $11
		RETURNING `+healthColumns,
		r.Weight, r.Height, systolic, diastolic, r.BloodSugar,
		r.Steps, r.SleepHours, r.Note, time.Now().UTC(), r.UserID, r.Date))
	if err != nil {
		return nil, wrap(op, err)
	}
	return updated, nil
}

// DeleteHealthRecord удаляет запись пользователя за день.
func (s *Storage) DeleteHealthRecord(ctx context.Context, userID, date string) error {
	const op = "storage.postgresql.DeleteHealthRecord"
	if !validID(userID) {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	res, err := s.DB.ExecContext(ctx, `DELETE FROM health_records WHERE user_id = $1 AND date = $2`, userID, date)
	if err != nil {
		return wrap(op, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	return nil
}

// DeleteHealthRecords удаляет записи пользователя из списка ids. Чужие и
// некорректные идентификаторы пропускаются.
func (s *Storage) DeleteHealthRecords(ctx context.Context, userID string, ids []string) (int64, error) {
	const op = "storage.postgresql.DeleteHealthRecords"

	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if validID(id) {
			valid = append(valid, id)
		}
	}
	if len(valid) == 0 || !validID(userID) {
		return 0, nil
	}
	res, err := s.DB.ExecContext(ctx,
		`DELETE FROM health_records WHERE user_id = $1 AND id = ANY($2::uuid[])`, userID, valid)
	if err != nil {
		return 0, wrap(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, wrap(op, err)
	}
	return n, nil
}

// ListHealthRecords возвращает страницу записей по убыванию даты и общее количество.
func (s *Storage) ListHealthRecords(ctx context.Context, userID string, q models.ListQuery) ([]models.HealthRecord, int64, error) {
	const op = "storage.postgresql.ListHealthRecords"
	if !validID(userID) {
		return []models.HealthRecord{}, 0, nil
	}

	w := dateRangeWhere(userID, q.DateRange)
	var total int64
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM health_records`+w.String(), w.args...).
		Scan(&total); err != nil {
		return nil, 0, wrap(op, err)
	}

	args := append(w.args, q.Limit, q.Offset())
	query := fmt.Sprintf(`SELECT %s FROM health_records%s ORDER BY date DESC LIMIT $%d OFFSET $%d`,
		healthColumns, w.String(), len(args)-1, len(args))
	records, err := s.queryHealthRecords(ctx, query, args...)
	if err != nil {
		return nil, 0, wrap(op, err)
	}
	if records == nil {
		records = []models.HealthRecord{}
	}
	return records, total, nil
}

// HealthRecordsInRange возвращает все записи в интервале по возрастанию даты.
func (s *Storage) HealthRecordsInRange(ctx context.Context, userID string, dr models.DateRange) ([]models.HealthRecord, error) {
	const op = "storage.postgresql.HealthRecordsInRange"
	if !validID(userID) {
		return nil, nil
	}
	w := dateRangeWhere(userID, dr)
	records, err := s.queryHealthRecords(ctx,
		`SELECT `+healthColumns+` FROM health_records`+w.String()+` ORDER BY date ASC`, w.args...)
	if err != nil {
		return nil, wrap(op, err)
	}
	return records, nil
}

// ExistingDates возвращает те из dates, на которые у пользователя уже есть записи.
func (s *Storage) ExistingDates(ctx context.Context, userID string, dates []string) ([]string, error) {
	const op = "storage.postgresql.ExistingDates"
	if len(dates) == 0 || !validID(userID) {
		return nil, nil
	}
	rows, err := s.DB.QueryContext(ctx,
		`SELECT date FROM health_records WHERE user_id = $1 AND date = ANY($2::date[]) ORDER BY date`,
		userID, dates)
	if err != nil {
		return nil, wrap(op, err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var d time.Time
		if err = rows.Scan(&d); err != nil {
			return nil, wrap(op, err)
		}
		out = append(out, d.Format(models.DateLayout))
	}
	if err = rows.Err(); err != nil {
		return nil, wrap(op, err)
	}
	return out, nil
}

// InsertHealthRecords сохраняет записи в одной транзакции: либо все, либо ни одной.
func (s *Storage) InsertHealthRecords(ctx context.Context, records []models.HealthRecord) (err error) {
	const op = "storage.postgresql.InsertHealthRecords"

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return wrap(op, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	now := time.Now().UTC()
	for _, r := range records {
		r.ID = uuid.NewString()
		r.CreatedAt, r.UpdatedAt = now, now
		if err = s.insertHealthRecord(ctx, tx, r); err != nil {
			return wrap(op, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return wrap(op, err)
	}
	return nil
}
