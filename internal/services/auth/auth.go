// Package services содержит логику регистрации, входа, выхода и проверки токенов.
package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/magabrotheeeer/health-tracker/internal/events"
	"github.com/magabrotheeeer/health-tracker/internal/lib/apperr"
	"github.com/magabrotheeeer/health-tracker/internal/lib/jwt"
	"github.com/magabrotheeeer/health-tracker/internal/lib/password"
	"github.com/magabrotheeeer/health-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/health-tracker/internal/lib/validation"
	"github.com/magabrotheeeer/health-tracker/internal/models"
	"github.com/magabrotheeeer/health-tracker/internal/storage"
)

// UserRepository описывает контракт хранилища пользователей.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	EnsureUser(ctx context.Context, user models.User) (bool, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
}

// RevocationList список отозванных токенов.
type RevocationList interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// EventPublisher публикует доменные события.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// AuthService отвечает за регистрацию, вход, выход и проверку JWT.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
	revoked  RevocationList
	events   EventPublisher
	log      *slog.Logger
	now      func() time.Time
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker, revoked RevocationList, publisher EventPublisher, log *slog.Logger) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
		revoked:  revoked,
		events:   publisher,
		log:      log,
		now:      time.Now,
	}
}

// WithClock подменяет источник времени.
func (s *AuthService) WithClock(now func() time.Time) *AuthService {
	s.now = now
	return s
}

// NormalizeEmail приводит email к виду, в котором он хранится.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register создаёт пользователя с ролью user и сразу выдаёт токен.
func (s *AuthService) Register(ctx context.Context, in models.RegisterInput) (*models.AuthResult, error) {
	email := NormalizeEmail(in.Email)
	username := strings.TrimSpace(in.Username)
	name := norm.NFC.String(strings.TrimSpace(in.Name))
	if !validation.DisplayName(name) {
		return nil, apperr.Invalid("validation failed", apperr.FieldError{Field: "name", Message: validation.NameMessage("name")})
	}

	if err := s.ensureFree(ctx, email, username); err != nil {
		return nil, err
	}

	hash, err := password.GetHash(in.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	user, err := s.users.CreateUser(ctx, models.User{
		Email:        email,
		Username:     username,
		Name:         name,
		PasswordHash: hash,
		Role:         models.RoleUser,
		Active:       true,
	})
	if err != nil {
		return nil, apperr.FromStore(err, "")
	}

	token, expiresAt, err := s.jwtMaker.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	s.log.Info("new user registered", slog.String("user_id", user.ID))
	s.publish(ctx, events.UserRegistered, events.UserEvent{UserID: user.ID, Email: user.Email, At: s.now().UTC()})

	return &models.AuthResult{Token: token, ExpiresAt: expiresAt, User: user.Public()}, nil
}

// ensureFree проверяет уникальность заранее. Гонку двух регистраций
// окончательно решает уникальный индекс хранилища.
func (s *AuthService) ensureFree(ctx context.Context, email, username string) error {
	_, err := s.users.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return apperr.ErrDuplicateEmail
	case !errors.Is(err, storage.ErrNotFound):
		return apperr.Internal(err)
	}
	_, err = s.users.GetUserByUsername(ctx, username)
	switch {
	case err == nil:
		return apperr.ErrDuplicateUsername
	case !errors.Is(err, storage.ErrNotFound):
		return apperr.Internal(err)
	}
	return nil
}

// Login проверяет учётные данные. Неизвестный email и неверный пароль
// неразличимы ни по ответу, ни по времени.
func (s *AuthService) Login(ctx context.Context, in models.LoginInput) (*models.AuthResult, error) {
	user, err := s.users.GetUserByEmail(ctx, NormalizeEmail(in.Email))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			password.CompareDummy(in.Password)
			return nil, apperr.ErrInvalidCredentials
		}
		return nil, apperr.Internal(err)
	}
	if !user.Active {
		return nil, apperr.ErrAccountDisabled
	}
	if !password.Verify(user.PasswordHash, in.Password) {
		return nil, apperr.ErrInvalidCredentials
	}

	now := s.now().UTC()
	if err = s.users.TouchLastLogin(ctx, user.ID, now); err != nil {
		return nil, apperr.FromStore(err, "")
	}
	user.LastLoginAt = &now

	token, expiresAt, err := s.jwtMaker.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	s.log.Info("user logged in", slog.String("user_id", user.ID))
	return &models.AuthResult{Token: token, ExpiresAt: expiresAt, User: user.Public()}, nil
}

// Logout отзывает токен до его естественного истечения. Подпись не проверяется:
// нужен только exp. Уже истёкший токен в список не попадает.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return apperr.New(apperr.KindBadRequest, "token is required")
	}
	claims, err := s.jwtMaker.DecodeToken(token)
	if err != nil {
		return &apperr.Error{Kind: apperr.KindMalformedToken, Message: apperr.ErrMalformedToken.Message, Err: err}
	}

	ttl := time.Duration(claims.ExpiresAt.Unix()-s.now().Unix()) * time.Second
	if err = s.revoked.Revoke(ctx, token, ttl); err != nil {
		return apperr.Internal(err)
	}
	s.log.Info("user logged out", slog.String("user_id", claims.UserID), slog.Duration("ttl", ttl))
	s.publish(ctx, events.UserLoggedOut, events.UserEvent{UserID: claims.UserID, At: s.now().UTC()})
	return nil
}

// Authenticate проверяет подпись, срок действия и отзыв токена.
// Ошибка доступа к списку отзыва означает отказ.
func (s *AuthService) Authenticate(ctx context.Context, token string) (models.Identity, error) {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Identity{}, &apperr.Error{Kind: apperr.KindExpiredToken, Message: apperr.ErrExpiredToken.Message, Err: err}
		}
		return models.Identity{}, &apperr.Error{Kind: apperr.KindInvalidToken, Message: apperr.ErrInvalidToken.Message, Err: err}
	}

	revoked, err := s.revoked.IsRevoked(ctx, token)
	if err != nil {
		return models.Identity{}, apperr.Internal(err)
	}
	if revoked {
		return models.Identity{}, apperr.ErrInvalidToken
	}
	return models.Identity{UserID: claims.UserID, Role: claims.Role}, nil
}

// Me возвращает публичную проекцию пользователя.
func (s *AuthService) Me(ctx context.Context, userID string) (*models.PublicUser, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, apperr.FromStore(err, "user not found")
	}
	pub := user.Public()
	return &pub, nil
}

// SeedAdmin создаёт администратора, если пользователя с таким email ещё нет.
func (s *AuthService) SeedAdmin(ctx context.Context, email, username, rawPassword string) (bool, error) {
	const op = "services.SeedAdmin"
	if !password.MeetsPolicy(rawPassword) {
		return false, apperr.Invalid(op + ": admin password does not meet the password policy")
	}
	hash, err := password.GetHash(rawPassword)
	if err != nil {
		return false, err
	}
	created, err := s.users.EnsureUser(ctx, models.User{
		Email:        NormalizeEmail(email),
		Username:     strings.TrimSpace(username),
		Name:         "Administrator",
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		Active:       true,
	})
	if err != nil {
		return false, apperr.FromStore(err, "")
	}
	if created {
		s.log.Info("admin account created", slog.String("email", NormalizeEmail(email)))
	}
	return created, nil
}

func (s *AuthService) publish(ctx context.Context, key string, payload any) {
	if err := s.events.Publish(ctx, key, payload); err != nil {
		s.log.Warn("failed to publish event", slog.String("routing_key", key), sl.Err(err))
	}
}
