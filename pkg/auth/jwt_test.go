package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/moral-quiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/moral-quiz-api/internal/pkg/errors"
)

func TestJWTService_GenerateAndParse(t *testing.T) {
	// Arrange
	svc := NewJWTService("test-secret-key", 24)
	user := &entity.User{ID: 7, Email: "budi@example.com", Role: "user"}

	// Act
	token, err := svc.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ParseToken(token)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "budi@example.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
}

func TestJWTService_ParseInvalidToken(t *testing.T) {
	svc := NewJWTService("test-secret-key", 24)

	_, err := svc.ParseToken("not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestJWTService_ParseWrongSecret(t *testing.T) {
	// Arrange: токен подписан другим ключом
	other := NewJWTService("other-secret", 24)
	token, err := other.GenerateToken(&entity.User{ID: 1, Email: "a@b.c"})
	require.NoError(t, err)

	// Act & Assert
	svc := NewJWTService("test-secret-key", 24)
	_, err = svc.ParseToken(token)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
