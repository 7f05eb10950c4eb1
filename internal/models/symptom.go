package models

import "time"

// Symptom отмеченный пользователем симптом.
type Symptom struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Severity    string    `json:"severity,omitempty"`
	Duration    string    `json:"duration,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SymptomInput тело запроса на создание или замену симптома.
// Date в формате RFC 3339 или YYYY-MM-DD, по умолчанию текущий момент.
type SymptomInput struct {
	Category    string `json:"category" validate:"required,oneof=headache stomachache muscle_pain cough other"`
	Description string `json:"description" validate:"required,max=1000"`
	Severity    string `json:"severity" validate:"omitempty,oneof=mild moderate severe"`
	Duration    string `json:"duration" validate:"max=100"`
	Notes       string `json:"notes" validate:"max=1000"`
	Date        string `json:"date" validate:"omitempty,isodate"`
}
