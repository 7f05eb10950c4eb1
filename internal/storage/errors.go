// Package storage содержит общие ошибки драйверов хранилища.
// Реализации находятся в подпакетах mongodb и postgresql.
package storage

import "errors"

var (
	// ErrNotFound запись не найдена или принадлежит другому пользователю.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail нарушен уникальный индекс по email.
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrDuplicateUsername нарушен уникальный индекс по username.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrDuplicateRecord у пользователя уже есть запись на эту дату.
	ErrDuplicateRecord = errors.New("record for date already exists")
)
