// Package memory содержит эталонные реализации репозиториев в памяти.
// Используются в тестах и в автономном режиме без PostgreSQL.
package memory

import (
	"sort"
	"sync"

	"github.com/yourusername/moral-quiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/moral-quiz-api/internal/pkg/errors"
)

// ResultRepo реализует repository.ResultRepository поверх map.
// Потокобезопасен.
type ResultRepo struct {
	mu      sync.RWMutex
	byID    map[string]entity.QuizResult
	nextSeq uint
}

// NewResultRepo создает пустое хранилище результатов в памяти
func NewResultRepo() *ResultRepo {
	return &ResultRepo{byID: make(map[string]entity.QuizResult)}
}

// Save сохраняет копию записи; хранилище не отдаёт внутренние ссылки
func (r *ResultRepo) Save(result *entity.QuizResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextSeq++
	result.ID = r.nextSeq
	r.byID[result.PublicID] = *result
	return nil
}

// GetByPublicID возвращает запись истории по публичному идентификатору
func (r *ResultRepo) GetByPublicID(publicID string) (*entity.QuizResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res, ok := r.byID[publicID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &res, nil
}

// ListForUser возвращает записи пользователя, новые первыми
func (r *ResultRepo) ListForUser(userID uint, limit, offset int) ([]entity.QuizResult, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var all []entity.QuizResult
	for _, res := range r.byID {
		if res.UserID == userID {
			all = append(all, res)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CompletedAt.After(all[j].CompletedAt)
	})

	total := int64(len(all))
	if offset >= len(all) {
		return []entity.QuizResult{}, total, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, total, nil
}

// Delete удаляет запись истории
func (r *ResultRepo) Delete(publicID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[publicID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.byID, publicID)
	return nil
}
