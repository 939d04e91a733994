package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/yourusername/moral-quiz-api/internal/pkg/errors"
	"github.com/yourusername/moral-quiz-api/pkg/auth"
)

func newTestAuthService() (*AuthService, *fakeUserRepo) {
	userRepo := newFakeUserRepo()
	return NewAuthService(userRepo, auth.NewJWTService("test-secret", 24)), userRepo
}

func TestAuthService_RegisterValidation(t *testing.T) {
	// Arrange
	svc, _ := newTestAuthService()

	// Act & Assert: короткий пароль
	_, _, err := svc.Register("budi", "budi@example.com", "short")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	// Пустые поля
	_, _, err = svc.Register("", "budi@example.com", "password123")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	// Arrange
	svc, _ := newTestAuthService()
	_, _, err := svc.Register("budi", "budi@example.com", "password123")
	require.NoError(t, err)

	// Act & Assert: email нормализуется к нижнему регистру
	_, _, err = svc.Register("lain", "BUDI@example.com", "password123")
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestAuthService_RegisterReturnsToken(t *testing.T) {
	// Arrange
	svc, _ := newTestAuthService()

	// Act
	user, token, err := svc.Register("budi", "budi@example.com", "password123")

	// Assert
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEmpty(t, token)
	assert.Equal(t, "user", user.Role)
}

func TestAuthService_LoginWrongCredentials(t *testing.T) {
	// Arrange: fakeUserRepo не хеширует пароль, поэтому проверка
	// CheckPassword с сырым значением всегда провалится — этого
	// достаточно, чтобы убедиться в маппинге на Unauthorized.
	svc, _ := newTestAuthService()
	_, _, err := svc.Register("budi", "budi@example.com", "password123")
	require.NoError(t, err)

	// Act & Assert
	_, _, err = svc.Login("budi@example.com", "wrong-password")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, _, err = svc.Login("tidakada@example.com", "password123")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized, "Несуществующий email не должен раскрываться отдельной ошибкой")
}
