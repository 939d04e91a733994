package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/moral-quiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/moral-quiz-api/internal/pkg/errors"
	"github.com/yourusername/moral-quiz-api/internal/repository/memory"
)

func seedResult(t *testing.T, repo *memory.ResultRepo, userID uint) *entity.QuizResult {
	t.Helper()
	result := &entity.QuizResult{
		PublicID:        uuid.New().String(),
		UserID:          userID,
		AspectScores:    entity.ScoreMap{entity.AspectEmpati: 80},
		OverallScore:    80,
		OverallCategory: "Sangat Baik",
		Interpretation:  "ok",
		CompletedAt:     time.Now(),
	}
	require.NoError(t, repo.Save(result))
	return result
}

func TestResultService_GetForUser_OwnerAndAdmin(t *testing.T) {
	// Arrange
	repo := memory.NewResultRepo()
	svc := NewResultService(repo)
	result := seedResult(t, repo, 1)

	// Act & Assert: владелец читает
	got, err := svc.GetForUser(result.PublicID, 1, false)
	require.NoError(t, err)
	assert.Equal(t, result.PublicID, got.PublicID)

	// Чужой пользователь — запрещено
	_, err = svc.GetForUser(result.PublicID, 2, false)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	// Администратор читает чужую запись
	_, err = svc.GetForUser(result.PublicID, 2, true)
	assert.NoError(t, err)
}

func TestResultService_Delete_OwnerOrAdmin(t *testing.T) {
	// Arrange
	repo := memory.NewResultRepo()
	svc := NewResultService(repo)

	// Чужой пользователь не может удалить
	result := seedResult(t, repo, 1)
	assert.ErrorIs(t, svc.Delete(result.PublicID, 2, false), apperrors.ErrForbidden)

	// Владелец удаляет
	require.NoError(t, svc.Delete(result.PublicID, 1, false))
	_, err := svc.GetForUser(result.PublicID, 1, false)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// Администратор удаляет чужую запись
	other := seedResult(t, repo, 1)
	assert.NoError(t, svc.Delete(other.PublicID, 99, true))
}

func TestResultService_DeleteMissing(t *testing.T) {
	svc := NewResultService(memory.NewResultRepo())
	assert.ErrorIs(t, svc.Delete("missing", 1, true), apperrors.ErrNotFound)
}

func TestResultService_ListDefaultsLimit(t *testing.T) {
	// Arrange
	repo := memory.NewResultRepo()
	svc := NewResultService(repo)
	for i := 0; i < 3; i++ {
		seedResult(t, repo, 1)
	}

	// Act: некорректный limit заменяется дефолтным
	results, total, err := svc.ListForUser(1, -5, -1)

	// Assert
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, results, 3)
}
