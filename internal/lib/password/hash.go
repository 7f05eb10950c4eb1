// Package password реализует хеширование паролей и проверку парольной политики.
//
// GetHash создает bcrypt-хеш пароля для безопасного хранения.
// Verify сравнивает хеш с введённым паролем и никогда не возвращает ошибку наружу.
package password

import (
	"errors"
	"fmt"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// Границы длины пароля в байтах. bcrypt не учитывает байты после 72-го.
const (
	MinLength = 8
	MaxLength = 72
)

// ErrEmptyPassword возвращается при попытке захешировать пустой пароль.
var ErrEmptyPassword = errors.New("password is empty")

// dummyHash используется для выравнивания времени ответа, когда пользователь не найден.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy-password-for-timing"), bcrypt.DefaultCost)

// GetHash принимает пароль пользователя и возвращает его bcrypt‑хэш.
func GetHash(password string) (string, error) {
	const op = "password.GetHash"
	if password == "" {
		return "", fmt.Errorf("%s: %w", op, ErrEmptyPassword)
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashedPassword), nil
}

// Verify сообщает, соответствует ли пароль хэшу.
// Повреждённый хэш или пустые значения дают false.
func Verify(hash, password string) bool {
	if hash == "" || password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// CompareDummy выполняет сравнение с фиктивным хэшем и всегда возвращает false.
func CompareDummy(password string) bool {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
	return false
}

// MeetsPolicy проверяет длину и наличие заглавной, строчной буквы, цифры и спецсимвола.
func MeetsPolicy(password string) bool {
	if len(password) < MinLength || len(password) > MaxLength {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsSpace(r):
		case !unicode.IsLetter(r):
			special = true
		}
	}
	return upper && lower && digit && special
}
