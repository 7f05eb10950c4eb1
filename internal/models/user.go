// Package models содержит доменные структуры сервиса: пользователей,
// записи о здоровье, симптомы и входные данные запросов с правилами валидации.
package models

import "time"

// Роли пользователей.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User представляет зарегистрированного пользователя системы.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Username     string     `json:"username"`
	Name         string     `json:"name"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	Active       bool       `json:"active"`
	Bio          string     `json:"bio,omitempty"`
	ProfileImage string     `json:"profileImage,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
}

// PublicUser проекция пользователя, которую видит клиент.
type PublicUser struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Username     string     `json:"username"`
	Name         string     `json:"name"`
	Role         string     `json:"role"`
	Active       bool       `json:"active"`
	Bio          string     `json:"bio,omitempty"`
	ProfileImage string     `json:"profileImage,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
}

// Public возвращает публичную проекцию без хэша пароля.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		Name:         u.Name,
		Role:         u.Role,
		Active:       u.Active,
		Bio:          u.Bio,
		ProfileImage: u.ProfileImage,
		CreatedAt:    u.CreatedAt,
		LastLoginAt:  u.LastLoginAt,
	}
}

// RegisterInput тело запроса на регистрацию.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,username"`
	Password string `json:"password" validate:"required,password"`
	Name     string `json:"name" validate:"required,displayname"`
}

// LoginInput тело запроса на вход.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LogoutInput тело запроса на выход, если токен не передан в заголовке.
type LogoutInput struct {
	Token string `json:"token"`
}

// AuthResult ответ на успешную регистрацию или вход.
type AuthResult struct {
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expiresAt"`
	User      PublicUser `json:"user"`
}

// ProfileUpdate частичное обновление профиля. Пустые указатели не меняют поле.
type ProfileUpdate struct {
	Name     *string `json:"name" validate:"omitempty,displayname"`
	Username *string `json:"username" validate:"omitempty,username"`
	Bio      *string `json:"bio" validate:"omitempty,max=200"`
}

// PasswordChange запрос на смену пароля.
type PasswordChange struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,password"`
}

// StatusUpdate запрос администратора на (де)активацию пользователя.
type StatusUpdate struct {
	Active *bool `json:"active" validate:"required"`
}

// UserPatch набор изменений пользователя для хранилища.
type UserPatch struct {
	Name         *string
	Username     *string
	Bio          *string
	ProfileImage *string
	PasswordHash *string
	Active       *bool
}

// Identity субъект запроса, извлечённый из проверенного токена.
type Identity struct {
	UserID string
	Role   string
}
