package redis

import (
	"fmt"
	"time"

	"github.com/yourusername/moral-quiz-api/internal/domain/entity"
	"github.com/yourusername/moral-quiz-api/internal/domain/repository"
)

// sessionKey строит ключ снимка сессии для пользователя.
// У пользователя не бывает двух активных сессий одновременно.
func sessionKey(userID uint) string {
	return fmt.Sprintf("mi:session:%d", userID)
}

// SessionRepo реализует repository.SessionRepository поверх кеша.
// Снимок хранится как JSON целиком; TTL продлевается при каждом сохранении.
type SessionRepo struct {
	cache repository.CacheRepository
}

// NewSessionRepo создает новый репозиторий снимков сессий
func NewSessionRepo(cache repository.CacheRepository) (*SessionRepo, error) {
	if cache == nil {
		return nil, fmt.Errorf("cache repository is required for SessionRepo")
	}
	return &SessionRepo{cache: cache}, nil
}

// SaveSnapshot сохраняет JSON-снимок сессии с TTL
func (r *SessionRepo) SaveSnapshot(session *entity.QuizSession, ttl time.Duration) error {
	return r.cache.SetJSON(sessionKey(session.UserID), session, ttl)
}

// GetSnapshot восстанавливает сессию пользователя из снимка
func (r *SessionRepo) GetSnapshot(userID uint) (*entity.QuizSession, error) {
	var session entity.QuizSession
	if err := r.cache.GetJSON(sessionKey(userID), &session); err != nil {
		return nil, err
	}
	if session.Answers == nil {
		session.Answers = make(map[int]entity.Answer)
	}
	return &session, nil
}

// DeleteSnapshot удаляет снимок сессии пользователя
func (r *SessionRepo) DeleteSnapshot(userID uint) error {
	return r.cache.Delete(sessionKey(userID))
}
