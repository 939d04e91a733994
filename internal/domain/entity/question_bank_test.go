package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllAspects_OrderAndCount(t *testing.T) {
	// Act
	aspects := AllAspects()

	// Assert
	require.Len(t, aspects, 7, "Каталог должен содержать ровно 7 аспектов")
	assert.Equal(t, AspectEmpati, aspects[0], "Первым аспектом должен быть empati")
	assert.Equal(t, AspectKeadilan, aspects[6], "Последним аспектом должен быть keadilan")
}

func TestAllAspects_ReturnsCopy(t *testing.T) {
	// Act
	aspects := AllAspects()
	aspects[0] = AspectKeadilan

	// Assert: изменение копии не должно влиять на каталог
	assert.Equal(t, AspectEmpati, AllAspects()[0], "Модификация возвращённого среза не должна менять порядок каталога")
}

func TestQuestionBank_TenQuestionsPerAspect(t *testing.T) {
	for _, aspect := range AllAspects() {
		questions := QuestionsFor(aspect)
		require.Len(t, questions, 10, "Аспект %s должен содержать 10 вопросов", aspect)

		for i, q := range questions {
			assert.Equal(t, aspect, q.Aspect, "Вопрос должен принадлежать своему аспекту")
			assert.Equal(t, i, q.Index, "Индекс вопроса должен совпадать с позицией")
			assert.NotEmpty(t, q.Text, "Текст вопроса не должен быть пустым")
		}
	}
}

func TestQuestionBank_Deterministic(t *testing.T) {
	// Act: два чтения подряд
	first := QuestionsFor(AspectEmpati)
	second := QuestionsFor(AspectEmpati)

	// Assert
	assert.Equal(t, first, second, "Порядок и тексты вопросов должны быть одинаковыми при каждом вызове")
}

func TestQuestionBank_TotalQuestions(t *testing.T) {
	assert.Equal(t, 70, TotalQuestions(), "Всего должно быть 70 вопросов (7 аспектов по 10)")
}

func TestKeywordBank_NonEmptyAndLowercase(t *testing.T) {
	for _, aspect := range AllAspects() {
		keywords := KeywordsFor(aspect)
		require.NotEmpty(t, keywords, "У аспекта %s должны быть ключевые слова", aspect)
	}
}

func TestKeywordsFor_ReturnsCopy(t *testing.T) {
	// Act
	keywords := KeywordsFor(AspectEmpati)
	original := keywords[0]
	keywords[0] = "mutated"

	// Assert
	assert.Equal(t, original, KeywordsFor(AspectEmpati)[0], "Модификация возвращённого среза не должна менять каталог")
}

func TestParseAspect(t *testing.T) {
	// Act & Assert: валидные идентификаторы
	aspect, err := ParseAspect("hatiNurani")
	require.NoError(t, err)
	assert.Equal(t, AspectHatiNurani, aspect)

	// Невалидный идентификатор
	_, err = ParseAspect("unknown")
	assert.Error(t, err, "Неизвестный аспект должен возвращать ошибку")
}

func TestAspect_DisplayName(t *testing.T) {
	assert.Equal(t, "Pengendalian Diri", AspectPengendalianDiri.DisplayName())
	assert.Equal(t, "Kebaikan Hati", AspectKebaikanHati.DisplayName())
}
