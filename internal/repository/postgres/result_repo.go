package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/moral-quiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/moral-quiz-api/internal/pkg/errors"
)

// ResultRepo реализует repository.ResultRepository
type ResultRepo struct {
	db *gorm.DB
}

// NewResultRepo создает новый репозиторий результатов
func NewResultRepo(db *gorm.DB) *ResultRepo {
	return &ResultRepo{db: db}
}

// Save сохраняет итоговую запись истории
func (r *ResultRepo) Save(result *entity.QuizResult) error {
	if err := r.db.Create(result).Error; err != nil {
		return apperrors.ErrPersistence
	}
	return nil
}

// GetByPublicID возвращает запись истории по публичному идентификатору
func (r *ResultRepo) GetByPublicID(publicID string) (*entity.QuizResult, error) {
	var result entity.QuizResult
	err := r.db.Where("public_id = ?", publicID).First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

// ListForUser возвращает записи пользователя, новые первыми, с пагинацией
func (r *ResultRepo) ListForUser(userID uint, limit, offset int) ([]entity.QuizResult, int64, error) {
	var results []entity.QuizResult
	var total int64

	// Транзакция для согласованности списка и общего количества
	tx := r.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()
	if tx.Error != nil {
		return nil, 0, tx.Error
	}

	err := tx.Model(&entity.QuizResult{}).Where("user_id = ?", userID).Count(&total).Error
	if err != nil {
		tx.Rollback()
		return nil, 0, err
	}

	err = tx.Where("user_id = ?", userID).
		Order("completed_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&results).Error
	if err != nil {
		tx.Rollback()
		return nil, 0, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

// Delete удаляет запись истории по публичному идентификатору
func (r *ResultRepo) Delete(publicID string) error {
	res := r.db.Where("public_id = ?", publicID).Delete(&entity.QuizResult{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
