package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/moral-quiz-api/internal/domain/entity"
)

func TestAggregate_PerAspectPercentage(t *testing.T) {
	// Arrange: один аспект с 2 ответами на 4 и 6 очков
	tallies := map[entity.Aspect]entity.AspectTally{
		entity.AspectEmpati: {Sum: 10, Answered: 2},
	}

	// Act
	final := Aggregate(tallies, 10)

	// Assert: 10 / (2×10) × 100 = 50
	require.Len(t, final.AspectResults, 7)
	assert.InDelta(t, 50.0, final.AspectResults[0].Percentage, 0.001)
	assert.Equal(t, entity.AspectEmpati, final.AspectResults[0].Aspect)
}

func TestAggregate_UnansweredAspectIsZero(t *testing.T) {
	// Arrange: ни одного ответа
	final := Aggregate(map[entity.Aspect]entity.AspectTally{}, 10)

	// Assert: никаких NaN, все нули
	for _, ar := range final.AspectResults {
		assert.Zero(t, ar.Percentage, "Аспект без ответов должен давать 0, а не деление на ноль")
	}
	assert.Zero(t, final.OverallScore)
}

func TestAggregate_OverallIsUnweightedMean(t *testing.T) {
	// Arrange: аспект на 100% (1 ответ) и аспект на 0% (10 ответов).
	// Простое среднее по двум аспектам — 50, независимо от числа ответов.
	tallies := map[entity.Aspect]entity.AspectTally{
		entity.AspectEmpati:     {Sum: 10, Answered: 1},
		entity.AspectHatiNurani: {Sum: 0, Answered: 10},
	}

	// Act
	final := Aggregate(tallies, 10)

	// Assert: (100 + 0 + 0×5) / 7
	assert.InDelta(t, 100.0/7.0, final.OverallScore, 0.001, "Итог — невзвешенное среднее по всем 7 аспектам")

	// Контроль перекоса: доля отвеченных вопросов не влияет на вклад аспекта
	var empati, hati AspectResult
	for _, ar := range final.AspectResults {
		switch ar.Aspect {
		case entity.AspectEmpati:
			empati = ar
		case entity.AspectHatiNurani:
			hati = ar
		}
	}
	assert.InDelta(t, 100.0, empati.Percentage, 0.001)
	assert.Zero(t, hati.Percentage)
}

func TestCategoryFor_Bands(t *testing.T) {
	tests := []struct {
		score    float64
		expected string
	}{
		{0, CategoryPerluPerbaikan},
		{25, CategoryPerluPerbaikan},
		{25.1, CategoryCukupBaik},
		{50, CategoryCukupBaik},
		{50.1, CategoryBaik},
		{75, CategoryBaik},
		{75.1, CategorySangatBaik},
		{100, CategorySangatBaik},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, CategoryFor(tt.score), "Категория для %.1f", tt.score)
	}
}

func TestInterpretationFor_NonEmptyForAllBands(t *testing.T) {
	for _, score := range []float64{10, 40, 60, 90} {
		interpretation := InterpretationFor(score)
		assert.NotEmpty(t, interpretation, "Интерпретация для %.0f не должна быть пустой", score)
	}
}

func TestAggregate_CategoryMatchesOverall(t *testing.T) {
	// Arrange: все аспекты по 8/10 → 80%
	tallies := make(map[entity.Aspect]entity.AspectTally)
	for _, a := range entity.AllAspects() {
		tallies[a] = entity.AspectTally{Sum: 80, Answered: 10}
	}

	// Act
	final := Aggregate(tallies, 10)

	// Assert
	assert.InDelta(t, 80.0, final.OverallScore, 0.001)
	assert.Equal(t, CategorySangatBaik, final.OverallCategory)
	assert.Equal(t, InterpretationFor(80), final.Interpretation)
}

func TestAggregate_StrengthsAndFocusArea(t *testing.T) {
	// Arrange: выраженные сильные и слабая стороны
	tallies := make(map[entity.Aspect]entity.AspectTally)
	for _, a := range entity.AllAspects() {
		tallies[a] = entity.AspectTally{Sum: 50, Answered: 10}
	}
	tallies[entity.AspectToleransi] = entity.AspectTally{Sum: 90, Answered: 10}
	tallies[entity.AspectHormat] = entity.AspectTally{Sum: 80, Answered: 10}
	tallies[entity.AspectKeadilan] = entity.AspectTally{Sum: 10, Answered: 10}

	// Act
	final := Aggregate(tallies, 10)

	// Assert
	require.Len(t, final.Strengths, 2)
	assert.Equal(t, entity.AspectToleransi, final.Strengths[0].Aspect)
	assert.Equal(t, entity.AspectHormat, final.Strengths[1].Aspect)
	require.NotNil(t, final.FocusArea)
	assert.Equal(t, entity.AspectKeadilan, final.FocusArea.Aspect)
}

func TestAggregate_TiesFollowCatalogOrder(t *testing.T) {
	// Arrange: все аспекты равны
	tallies := make(map[entity.Aspect]entity.AspectTally)
	for _, a := range entity.AllAspects() {
		tallies[a] = entity.AspectTally{Sum: 60, Answered: 10}
	}

	// Act
	final := Aggregate(tallies, 10)

	// Assert: при равенстве берутся первые по каноническому порядку
	require.Len(t, final.Strengths, 2)
	assert.Equal(t, entity.AspectEmpati, final.Strengths[0].Aspect)
	assert.Equal(t, entity.AspectHatiNurani, final.Strengths[1].Aspect)
	require.NotNil(t, final.FocusArea)
	assert.Equal(t, entity.AspectEmpati, final.FocusArea.Aspect)
}

func TestStrengthsAndFocus_FromStoredScores(t *testing.T) {
	// Arrange: проценты из сохранённой записи истории
	scores := map[entity.Aspect]float64{
		entity.AspectEmpati:     60,
		entity.AspectToleransi:  95,
		entity.AspectHormat:     80,
		entity.AspectKeadilan:   20,
		entity.AspectHatiNurani: 60,
	}

	// Act
	strengths, focus := StrengthsAndFocus(scores)

	// Assert
	require.Len(t, strengths, 2)
	assert.Equal(t, entity.AspectToleransi, strengths[0].Aspect)
	assert.Equal(t, entity.AspectHormat, strengths[1].Aspect)
	require.NotNil(t, focus)
	assert.Equal(t, entity.AspectKeadilan, focus.Aspect)
	assert.Equal(t, CategoryPerluPerbaikan, focus.Category)
}

func TestStrengthsAndFocus_EmptyScores(t *testing.T) {
	strengths, focus := StrengthsAndFocus(nil)

	assert.Empty(t, strengths)
	assert.Nil(t, focus, "Без сохранённых процентов зоны роста нет")
}

func TestAnswerFeedback_Bands(t *testing.T) {
	// Act & Assert: границы полос 4 и 7
	low := AnswerFeedback(3)
	medium := AnswerFeedback(4)
	high := AnswerFeedback(7)

	assert.NotEmpty(t, low)
	assert.NotEmpty(t, medium)
	assert.NotEmpty(t, high)
	assert.NotEqual(t, low, medium)
	assert.NotEqual(t, medium, high)
	assert.Equal(t, medium, AnswerFeedback(6), "Оценки 4-6 — одна полоса")
	assert.Equal(t, high, AnswerFeedback(10), "Оценки 7-10 — одна полоса")
}
