// Package postgresql реализует хранилище пользователей, записей о здоровье
// и симптомов на PostgreSQL через database/sql и драйвер pgx.
package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/magabrotheeeer/health-tracker/internal/storage"
)

// Имена ограничений уникальности из миграций.
const (
	constraintUsersEmail     = "users_email_key"
	constraintUsersUsername  = "users_username_key"
	constraintHealthUserDate = "health_records_user_date_key"
)

// Storage инкапсулирует соединение с базой данных PostgreSQL.
type Storage struct {
	DB *sql.DB
}

// New открывает пул соединений и проверяет доступность базы.
func New(ctx context.Context, connectionString string) (*Storage, error) {
	const op = "storage.postgresql.New"

	db, err := sql.Open("pgx", connectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Storage{DB: db}, nil
}

// Ping проверяет соединение.
func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

// Close закрывает пул соединений.
func (s *Storage) Close(_ context.Context) error {
	return s.DB.Close()
}

// translate переводит ошибки драйвера в ошибки пакета storage.
func translate(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		switch pgErr.ConstraintName {
		case constraintUsersEmail:
			return storage.ErrDuplicateEmail
		case constraintUsersUsername:
			return storage.ErrDuplicateUsername
		case constraintHealthUserDate:
			return storage.ErrDuplicateRecord
		}
	}
	return err
}

// wrap добавляет имя операции и сохраняет цепочку для errors.Is.
func wrap(op string, err error) error {
	t := translate(err)
	if t == err {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, t, err)
}

// validID отсекает заведомо несуществующие идентификаторы до запроса.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// whereBuilder собирает условия с позиционными параметрами.
type whereBuilder struct {
	conds []string
	args  []any
}

func (w *whereBuilder) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, fmt.Sprintf(cond, len(w.args)))
}

func (w *whereBuilder) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}
