// Package services содержит логику профиля пользователя и административного управления учётными записями.
package services

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/magabrotheeeer/health-tracker/internal/lib/apperr"
	"github.com/magabrotheeeer/health-tracker/internal/lib/password"
	"github.com/magabrotheeeer/health-tracker/internal/lib/validation"
	"github.com/magabrotheeeer/health-tracker/internal/models"
	"github.com/magabrotheeeer/health-tracker/internal/objectstore"
	"github.com/magabrotheeeer/health-tracker/internal/storage"
)

// UserRepository описывает контракт хранилища пользователей.
type UserRepository interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateUser(ctx context.Context, id string, patch models.UserPatch) (*models.User, error)
	ListUsers(ctx context.Context, q models.ListQuery) ([]models.User, int64, error)
}

const userNotFound = "user not found"

// UserService управляет профилем, паролем, аватаром и статусом пользователей.
type UserService struct {
	users UserRepository
	store objectstore.Store
	log   *slog.Logger
}

// NewUserService создаёт сервис пользователей.
func NewUserService(users UserRepository, store objectstore.Store, log *slog.Logger) *UserService {
	return &UserService{users: users, store: store, log: log}
}

// Profile возвращает профиль пользователя.
func (s *UserService) Profile(ctx context.Context, userID string) (*models.PublicUser, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, apperr.FromStore(err, userNotFound)
	}
	pub := user.Public()
	return &pub, nil
}

// UpdateProfile меняет имя, username и bio. Занятый другим пользователем
// username даёт ErrDuplicateUsername.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in models.ProfileUpdate) (*models.PublicUser, error) {
	var patch models.UserPatch
	if in.Name != nil {
		name := norm.NFC.String(strings.TrimSpace(*in.Name))
		if !validation.DisplayName(name) {
			return nil, apperr.Invalid("validation failed", apperr.FieldError{Field: "name", Message: validation.NameMessage("name")})
		}
		patch.Name = &name
	}
	if in.Bio != nil {
		bio := strings.TrimSpace(*in.Bio)
		patch.Bio = &bio
	}
	if in.Username != nil {
		username := strings.TrimSpace(*in.Username)
		other, err := s.users.GetUserByUsername(ctx, username)
		switch {
		case err == nil && other.ID != userID:
			return nil, apperr.ErrDuplicateUsername
		case err != nil && !errors.Is(err, storage.ErrNotFound):
			return nil, apperr.Internal(err)
		}
		patch.Username = &username
	}

	user, err := s.users.UpdateUser(ctx, userID, patch)
	if err != nil {
		return nil, apperr.FromStore(err, userNotFound)
	}
	s.log.Info("profile updated", slog.String("user_id", userID))
	pub := user.Public()
	return &pub, nil
}

// ChangePassword проверяет текущий пароль и сохраняет хэш нового.
func (s *UserService) ChangePassword(ctx context.Context, userID string, in models.PasswordChange) error {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return apperr.FromStore(err, userNotFound)
	}
	if !password.Verify(user.PasswordHash, in.CurrentPassword) {
		return apperr.New(apperr.KindInvalidCredentials, "current password is incorrect")
	}
	hash, err := password.GetHash(in.NewPassword)
	if err != nil {
		return apperr.Internal(err)
	}
	if _, err = s.users.UpdateUser(ctx, userID, models.UserPatch{PasswordHash: &hash}); err != nil {
		return apperr.FromStore(err, userNotFound)
	}
	s.log.Info("password changed", slog.String("user_id", userID))
	return nil
}

// UploadAvatar сохраняет изображение в хранилище объектов и записывает его URL в профиль.
func (s *UserService) UploadAvatar(ctx context.Context, userID string, data []byte, contentType, ext string) (*models.PublicUser, error) {
	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		return nil, apperr.FromStore(err, userNotFound)
	}
	url, err := s.store.Put(ctx, objectstore.AvatarKey(userID, ext), contentType, bytes.NewReader(data))
	if err != nil {
		return nil, apperr.Internal(err)
	}
	user, err := s.users.UpdateUser(ctx, userID, models.UserPatch{ProfileImage: &url})
	if err != nil {
		return nil, apperr.FromStore(err, userNotFound)
	}
	s.log.Info("avatar uploaded", slog.String("user_id", userID), slog.String("url", url))
	pub := user.Public()
	return &pub, nil
}

// ListUsers возвращает страницу пользователей для администратора.
func (s *UserService) ListUsers(ctx context.Context, q models.ListQuery) (*models.Page[models.PublicUser], error) {
	users, total, err := s.users.ListUsers(ctx, q)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	items := make([]models.PublicUser, 0, len(users))
	for i := range users {
		items = append(items, users[i].Public())
	}
	return &models.Page[models.PublicUser]{Items: items, Pagination: models.NewPagination(q, total)}, nil
}

// SetStatus включает или отключает учётную запись. Администратор не может
// изменить статус самому себе.
func (s *UserService) SetStatus(ctx context.Context, adminID, userID string, active bool) (*models.PublicUser, error) {
	if adminID == userID {
		return nil, apperr.New(apperr.KindForbidden, "administrators cannot change their own status")
	}
	user, err := s.users.UpdateUser(ctx, userID, models.UserPatch{Active: &active})
	if err != nil {
		return nil, apperr.FromStore(err, userNotFound)
	}
	s.log.Info("user status changed",
		slog.String("admin_id", adminID),
		slog.String("user_id", userID),
		slog.Bool("active", active),
	)
	pub := user.Public()
	return &pub, nil
}
