package service

import (
	"github.com/yourusername/moral-quiz-api/internal/domain/entity"
	"github.com/yourusername/moral-quiz-api/internal/domain/repository"
	"github.com/yourusername/moral-quiz-api/internal/service/scoring"
)

// UserStats — сводная статистика пользователя по пройденным тестам.
type UserStats struct {
	QuizzesCompleted int64   `json:"quizzes_completed"`
	BestOverallScore float64 `json:"best_overall_score"`
	BestCategory     string  `json:"best_category"`
	LastOverallScore float64 `json:"last_overall_score"`
	LastQuizAt       string  `json:"last_quiz_at,omitempty"`
}

// UserService предоставляет данные о пользователях
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService создает новый сервис пользователей
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetByID возвращает пользователя по ID
func (s *UserService) GetByID(id uint) (*entity.User, error) {
	return s.userRepo.GetByID(id)
}

// GetStats возвращает статистику пользователя по пройденным тестам
func (s *UserService) GetStats(id uint) (*UserStats, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	stats := &UserStats{
		QuizzesCompleted: user.QuizzesCompleted,
		BestOverallScore: user.BestOverallScore,
		LastOverallScore: user.LastOverallScore,
	}
	if user.QuizzesCompleted > 0 {
		stats.BestCategory = scoring.CategoryFor(user.BestOverallScore)
	}
	if user.LastQuizAt != nil {
		stats.LastQuizAt = user.LastQuizAt.Format("2006-01-02T15:04:05Z07:00")
	}
	return stats, nil
}
