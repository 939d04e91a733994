package memory

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/moral-quiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/moral-quiz-api/internal/pkg/errors"
)

func newResult(userID uint, completedAt time.Time, score float64) *entity.QuizResult {
	return &entity.QuizResult{
		PublicID:        uuid.New().String(),
		UserID:          userID,
		AspectScores:    entity.ScoreMap{entity.AspectEmpati: score},
		OverallScore:    score,
		OverallCategory: "Baik",
		Interpretation:  "ok",
		CompletedAt:     completedAt,
	}
}

func TestResultRepo_SaveAndGet(t *testing.T) {
	// Arrange
	repo := NewResultRepo()
	result := newResult(1, time.Now(), 62.5)

	// Act
	require.NoError(t, repo.Save(result))
	got, err := repo.GetByPublicID(result.PublicID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, result.PublicID, got.PublicID)
	assert.InDelta(t, 62.5, got.OverallScore, 0.0001)
	assert.Equal(t, result.AspectScores, got.AspectScores)
}

func TestResultRepo_GetMissing(t *testing.T) {
	repo := NewResultRepo()
	_, err := repo.GetByPublicID("nope")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestResultRepo_ListForUser_MostRecentFirst(t *testing.T) {
	// Arrange: три записи с разным временем, вразнобой
	repo := NewResultRepo()
	base := time.Now()
	middle := newResult(1, base.Add(-time.Hour), 50)
	oldest := newResult(1, base.Add(-2*time.Hour), 40)
	newest := newResult(1, base, 60)
	require.NoError(t, repo.Save(middle))
	require.NoError(t, repo.Save(newest))
	require.NoError(t, repo.Save(oldest))
	require.NoError(t, repo.Save(newResult(2, base, 99))) // чужая запись

	// Act
	results, total, err := repo.ListForUser(1, 10, 0)

	// Assert
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, results, 3)
	assert.Equal(t, newest.PublicID, results[0].PublicID, "Новые записи должны идти первыми")
	assert.Equal(t, middle.PublicID, results[1].PublicID)
	assert.Equal(t, oldest.PublicID, results[2].PublicID)
}

func TestResultRepo_ListForUser_LimitAndOffset(t *testing.T) {
	// Arrange
	repo := NewResultRepo()
	base := time.Now()
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Save(newResult(1, base.Add(time.Duration(i)*time.Minute), float64(i*10))))
	}

	// Act
	page, total, err := repo.ListForUser(1, 2, 1)

	// Assert
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, page, 2)

	// Offset за пределами — пустая страница, не паника
	empty, _, err := repo.ListForUser(1, 2, 100)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestResultRepo_Delete(t *testing.T) {
	// Arrange
	repo := NewResultRepo()
	result := newResult(1, time.Now(), 70)
	require.NoError(t, repo.Save(result))

	// Act
	require.NoError(t, repo.Delete(result.PublicID))

	// Assert
	_, err := repo.GetByPublicID(result.PublicID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(result.PublicID), apperrors.ErrNotFound, "Повторное удаление — NotFound")
}

func TestResultRepo_ConcurrentSaves(t *testing.T) {
	// Arrange
	repo := NewResultRepo()
	done := make(chan struct{})

	// Act: параллельные записи не должны гонять данные
	for i := 0; i < 10; i++ {
		go func(i int) {
			defer func() { done <- struct{}{} }()
			_ = repo.Save(newResult(1, time.Now().Add(time.Duration(i)*time.Second), float64(i)))
		}(i)
	}
	for i := 0; i < 10; i++ {
		<-done
	}

	// Assert
	_, total, err := repo.ListForUser(1, 100, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 10, total, fmt.Sprintf("Все 10 записей должны сохраниться, получили %d", total))
}
