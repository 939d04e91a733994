package repository

import (
	"time"

	"github.com/yourusername/moral-quiz-api/internal/domain/entity"
)

// SessionRepository определяет методы для снимков незавершённых сессий теста.
// Снимок позволяет пользователю продолжить прохождение после обрыва соединения.
type SessionRepository interface {
	SaveSnapshot(session *entity.QuizSession, ttl time.Duration) error
	GetSnapshot(userID uint) (*entity.QuizSession, error)
	DeleteSnapshot(userID uint) error
}
