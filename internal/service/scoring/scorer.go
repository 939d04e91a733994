// Package scoring содержит чистую логику оценки ответов и сведения итогов.
// Функции пакета детерминированы и не имеют внешних зависимостей,
// поэтому безопасны для параллельного вызова.
package scoring

import (
	"strings"
	"unicode/utf8"

	"github.com/yourusername/moral-quiz-api/internal/domain/entity"
)

// Policy задаёт константы эвристики оценивания.
// Значения по умолчанию перенесены из клиентской реализации.
type Policy struct {
	// KeywordWeight — очки за каждое найденное ключевое слово.
	KeywordWeight int
	// LengthBonusStep — за каждые LengthBonusStep символов ответа
	// добавляется один бонусный балл.
	LengthBonusStep int
	// MaxLengthBonus — потолок бонуса за длину.
	MaxLengthBonus int
	// MaxScore — потолок итоговой оценки за один ответ.
	MaxScore int
	// MinAnswerLength — минимальная длина осмысленного ответа в символах.
	// Проверяется сервисом до вызова скорера.
	MinAnswerLength int
}

// DefaultPolicy — действующие константы эвристики.
var DefaultPolicy = Policy{
	KeywordWeight:   2,
	LengthBonusStep: 100,
	MaxLengthBonus:  2,
	MaxScore:        10,
	MinAnswerLength: 10,
}

// Scorer оценивает свободный текстовый ответ по ключевым словам аспекта.
type Scorer struct {
	policy Policy
}

// NewScorer создаёт скорер с заданной политикой.
func NewScorer(policy Policy) *Scorer {
	return &Scorer{policy: policy}
}

// Policy возвращает действующую политику оценивания.
func (s *Scorer) Policy() Policy {
	return s.policy
}

// Score возвращает оценку ответа в диапазоне [0, MaxScore] по ключевым
// словам аспекта из каталога.
func (s *Scorer) Score(answerText string, aspect entity.Aspect) int {
	return s.ScoreWithKeywords(answerText, entity.KeywordsFor(aspect))
}

// ScoreWithKeywords оценивает ответ по произвольному списку ключевых слов.
// Ответ приводится к нижнему регистру; каждое ключевое слово учитывается
// не более одного раза, вхождение ищется как подстрока.
// Длина ответа считается в рунах.
func (s *Scorer) ScoreWithKeywords(answerText string, keywords []string) int {
	lower := strings.ToLower(answerText)

	matched := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			matched++
		}
	}

	lengthBonus := utf8.RuneCountInString(answerText) / s.policy.LengthBonusStep
	if lengthBonus > s.policy.MaxLengthBonus {
		lengthBonus = s.policy.MaxLengthBonus
	}

	score := matched*s.policy.KeywordWeight + lengthBonus
	if score > s.policy.MaxScore {
		score = s.policy.MaxScore
	}
	return score
}

// MeetsMinLength проверяет, что ответ не короче минимальной длины.
// Пробелы по краям не считаются содержательной частью ответа.
func (s *Scorer) MeetsMinLength(answerText string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(answerText)) >= s.policy.MinAnswerLength
}
