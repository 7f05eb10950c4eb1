// Package events публикует доменные события сервиса в RabbitMQ.
//
// Если брокер не настроен, используется Noop, и сервисы работают без изменений.
package events

import (
	"context"
	"time"
)

// Ключи маршрутизации событий.
const (
	UserRegistered = "user.registered"
	UserLoggedOut  = "user.logged_out"
	HealthImported = "health.imported"
)

// Publisher отправляет событие с ключом маршрутизации.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
	Close() error
}

// UserEvent событие, связанное с учётной записью.
type UserEvent struct {
	UserID string    `json:"userId"`
	Email  string    `json:"email,omitempty"`
	At     time.Time `json:"at"`
}

// ImportEvent событие успешного импорта записей.
type ImportEvent struct {
	UserID   string    `json:"userId"`
	Imported int       `json:"imported"`
	At       time.Time `json:"at"`
}

// Noop ничего не публикует.
type Noop struct{}

// Publish ничего не делает.
func (Noop) Publish(context.Context, string, any) error { return nil }

// Close ничего не делает.
func (Noop) Close() error { return nil }
