package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CustomClaims описывает пользовательские данные, хранящиеся в JWT.
type CustomClaims struct {
	UserID               string `json:"userId"`
	Role                 string `json:"role"`
	jwt.RegisteredClaims        // ExpiresAt, IssuedAt, ID (jti)
}

// GenerateToken создает JWT токен с идентификатором пользователя и ролью.
//
// Каждый токен получает уникальный jti, поэтому два токена, выпущенные
// в одну секунду, различаются.
func (j *MakerImpl) GenerateToken(userID, role string) (string, time.Time, error) {
	const op = "jwt.GenerateToken"
	now := j.now()
	expiresAt := now.Add(j.tokenTTL)
	claims := CustomClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%s: %w", op, err)
	}
	return signed, claims.ExpiresAt.Time, nil
}

// ParseToken парсит JWT токен, проверяет его подпись и срок действия.
// Ошибка всегда оборачивает одну из ErrTokenExpired, ErrTokenMalformed, ErrTokenInvalid.
func (j *MakerImpl) ParseToken(tokenStr string) (*CustomClaims, error) {
	const op = "jwt.ParseToken"
	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, func(_ *jwt.Token) (any, error) {
		return j.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, fmt.Errorf("%s: %w", op, ErrTokenExpired)
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, fmt.Errorf("%s: %w: %v", op, ErrTokenMalformed, err)
		default:
			return nil, fmt.Errorf("%s: %w: %v", op, ErrTokenInvalid, err)
		}
	}
	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrTokenInvalid)
	}
	return claims, nil
}

// DecodeToken разбирает токен без проверки подписи. Нужен при выходе,
// чтобы узнать exp отзываемого токена.
func (j *MakerImpl) DecodeToken(tokenStr string) (*CustomClaims, error) {
	const op = "jwt.DecodeToken"
	claims := &CustomClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenStr, claims); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrTokenMalformed, err)
	}
	if claims.ExpiresAt == nil {
		return nil, fmt.Errorf("%s: %w: exp is missing", op, ErrTokenMalformed)
	}
	return claims, nil
}
