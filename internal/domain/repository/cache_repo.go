package repository

import (
	"time"
)

// CacheRepository — операции над кешем: строковые значения, счётчики квот
// и JSON-снимки целых структур. Каждый метод самодостаточен, TTL задаётся
// при записи.
type CacheRepository interface {
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string) (string, error)
	Delete(key string) error
	Exists(key string) (bool, error)

	// Счётчики (суточные квоты и т.п.)
	Increment(key string) (int64, error)
	ExpireAt(key string, expiration time.Time) error

	// JSON-снимки структур (сессии теста)
	SetJSON(key string, value interface{}, expiration time.Duration) error
	GetJSON(key string, dest interface{}) error
}
