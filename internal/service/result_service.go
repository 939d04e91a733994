package service

import (
	"log"

	"github.com/yourusername/moral-quiz-api/internal/domain/entity"
	"github.com/yourusername/moral-quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/moral-quiz-api/internal/pkg/errors"
)

// ResultService предоставляет доступ к истории результатов теста
type ResultService struct {
	resultRepo repository.ResultRepository
}

// NewResultService создает новый сервис истории результатов
func NewResultService(resultRepo repository.ResultRepository) *ResultService {
	return &ResultService{resultRepo: resultRepo}
}

// ListForUser возвращает историю пользователя, новые записи первыми
func (s *ResultService) ListForUser(userID uint, limit, offset int) ([]entity.QuizResult, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.resultRepo.ListForUser(userID, limit, offset)
}

// GetForUser возвращает запись истории, проверяя право доступа:
// читать запись может её владелец или администратор.
func (s *ResultService) GetForUser(publicID string, requesterID uint, requesterIsAdmin bool) (*entity.QuizResult, error) {
	result, err := s.resultRepo.GetByPublicID(publicID)
	if err != nil {
		return nil, err
	}
	if result.UserID != requesterID && !requesterIsAdmin {
		return nil, apperrors.ErrForbidden
	}
	return result, nil
}

// Delete удаляет запись истории. Удалять может владелец или администратор.
func (s *ResultService) Delete(publicID string, requesterID uint, requesterIsAdmin bool) error {
	result, err := s.resultRepo.GetByPublicID(publicID)
	if err != nil {
		return err
	}
	if result.UserID != requesterID && !requesterIsAdmin {
		return apperrors.ErrForbidden
	}
	if err := s.resultRepo.Delete(publicID); err != nil {
		return err
	}
	log.Printf("[ResultService] Запись истории %s удалена пользователем %d", publicID, requesterID)
	return nil
}
