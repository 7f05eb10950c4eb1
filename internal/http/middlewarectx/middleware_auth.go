// Package middlewarectx содержит HTTP middleware: проверку JWT, проверку роли
// и ограничение частоты запросов.
//
// JWTMiddleware проверяет заголовок Authorization, делегирует проверку токена
// сервису аутентификации и кладёт в контекст идентификатор и роль пользователя.
// Любая ошибка завершает запрос ответом 401 в едином формате.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/health-tracker/internal/http/response"
	"github.com/magabrotheeeer/health-tracker/internal/lib/apperr"
	"github.com/magabrotheeeer/health-tracker/internal/models"
)

type identityKey struct{}

// Authenticator проверяет подпись, срок действия и отзыв токена.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (models.Identity, error)
}

// BearerToken извлекает токен из значения заголовка Authorization.
// Пустой заголовок даёт ErrUnauthenticated, иной формат ErrMalformedToken.
func BearerToken(header string) (string, error) {
	if header == "" {
		return "", apperr.ErrUnauthenticated
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", apperr.ErrMalformedToken
	}
	return parts[1], nil
}

// WithIdentity кладёт субъект запроса в контекст.
func WithIdentity(ctx context.Context, id models.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom достаёт субъект запроса из контекста.
func IdentityFrom(ctx context.Context) (models.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(models.Identity)
	return id, ok && id.UserID != ""
}

// JWTMiddleware пропускает запрос дальше только с действующим токеном.
func JWTMiddleware(auth Authenticator, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"
			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			token, err := BearerToken(r.Header.Get("Authorization"))
			if err != nil {
				response.Error(w, r, log, err)
				return
			}

			id, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				response.Error(w, r, log, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

// RequireRole пропускает только пользователей с ролью role. Ставится после JWTMiddleware.
func RequireRole(role string, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFrom(r.Context())
			if !ok {
				response.Error(w, r, log, apperr.ErrUnauthenticated)
				return
			}
			if id.Role != role {
				response.Error(w, r, log, apperr.ErrForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Identity возвращает субъект запроса или ErrUnauthenticated, если его нет в контексте.
func Identity(r *http.Request) (models.Identity, error) {
	id, ok := IdentityFrom(r.Context())
	if !ok {
		return models.Identity{}, apperr.ErrUnauthenticated
	}
	return id, nil
}
