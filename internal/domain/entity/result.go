package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// ScoreMap - пользовательский тип для работы с JSONB.
// Хранит процент (0-100) по каждому аспекту.
type ScoreMap map[Aspect]float64

// Scan реализует интерфейс sql.Scanner для ScoreMap
// Используется GORM для чтения JSONB данных из базы
func (m *ScoreMap) Scan(value interface{}) error {
	if value == nil {
		*m = ScoreMap{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to unmarshal JSONB value: expected []byte")
	}

	if len(bytes) == 0 {
		*m = ScoreMap{}
		return nil
	}

	return json.Unmarshal(bytes, m)
}

// Value реализует интерфейс driver.Valuer для ScoreMap
// Используется GORM для записи ScoreMap в JSONB в базе
func (m ScoreMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return []byte("{}"), nil // Возвращаем пустой JSON объект вместо null
	}
	return json.Marshal(m)
}

// AnswerList - пользовательский тип JSONB для необработанных ответов сессии.
type AnswerList []Answer

// Scan реализует интерфейс sql.Scanner для AnswerList
func (l *AnswerList) Scan(value interface{}) error {
	if value == nil {
		*l = AnswerList{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to unmarshal JSONB value: expected []byte")
	}

	if len(bytes) == 0 {
		*l = AnswerList{}
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// Value реализует интерфейс driver.Valuer для AnswerList
func (l AnswerList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

// QuizResult представляет одну запись истории: итог завершённой сессии теста.
// Запись неизменяема после сохранения; допускается только удаление.
type QuizResult struct {
	ID               uint       `gorm:"primaryKey" json:"-"`
	PublicID         string     `gorm:"size:36;not null;uniqueIndex" json:"id"`
	UserID           uint       `gorm:"not null;index:idx_results_user_completed" json:"user_id"`
	AspectScores     ScoreMap   `gorm:"type:jsonb;not null" json:"aspect_scores"`
	OverallScore     float64    `gorm:"not null;default:0" json:"overall_score"`
	OverallCategory  string     `gorm:"size:50;not null" json:"overall_category"`
	Interpretation   string     `gorm:"type:text;not null" json:"interpretation"`
	RawAnswers       AnswerList `gorm:"type:jsonb;not null" json:"raw_answers,omitempty"`
	TimeSpentSeconds int        `gorm:"not null;default:0" json:"time_spent_seconds"`
	CompletedAt      time.Time  `gorm:"not null;index:idx_results_user_completed,sort:desc" json:"completed_at"`
	CreatedAt        time.Time  `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (QuizResult) TableName() string {
	return "quiz_results"
}
