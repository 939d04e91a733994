package repository

import (
	"github.com/yourusername/moral-quiz-api/internal/domain/entity"
)

// ResultRepository определяет методы для работы с историей результатов теста.
// Записи неизменяемы: после сохранения доступны только чтение и удаление.
type ResultRepository interface {
	Save(result *entity.QuizResult) error
	GetByPublicID(publicID string) (*entity.QuizResult, error)
	// ListForUser возвращает записи пользователя, новые первыми.
	ListForUser(userID uint, limit, offset int) ([]entity.QuizResult, int64, error)
	Delete(publicID string) error
}
