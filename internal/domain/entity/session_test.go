package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/yourusername/moral-quiz-api/internal/pkg/errors"
)

func TestQuizSession_StartTransition(t *testing.T) {
	// Arrange
	session := NewQuizSession(1)
	assert.Equal(t, SessionNotStarted, session.State)

	// Act
	err := session.Start()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, SessionInProgress, session.State)

	question, err := session.CurrentQuestion()
	require.NoError(t, err)
	assert.Equal(t, AspectEmpati, question.Aspect, "Сессия должна начинаться с первого аспекта")
	assert.Equal(t, 0, question.Index, "Сессия должна начинаться с первого вопроса")
}

func TestQuizSession_DoubleStart(t *testing.T) {
	// Arrange
	session := NewQuizSession(1)
	require.NoError(t, session.Start())

	// Act & Assert
	assert.ErrorIs(t, session.Start(), apperrors.ErrConflict, "Повторный Start должен возвращать конфликт")
}

func TestQuizSession_CurrentQuestionBeforeStart(t *testing.T) {
	// Arrange
	session := NewQuizSession(1)

	// Act & Assert
	_, err := session.CurrentQuestion()
	assert.ErrorIs(t, err, apperrors.ErrOutOfRange, "Доступ к вопросу до Start должен падать громко")
}

func TestQuizSession_SubmitAdvancesWithinAspect(t *testing.T) {
	// Arrange
	session := NewQuizSession(1)
	require.NoError(t, session.Start())

	// Act
	require.NoError(t, session.SubmitAnswer("jawaban pertama saya", 4))

	// Assert
	question, err := session.CurrentQuestion()
	require.NoError(t, err)
	assert.Equal(t, AspectEmpati, question.Aspect)
	assert.Equal(t, 1, question.Index, "После ответа позиция должна сдвинуться на следующий вопрос")
	assert.Equal(t, 1, session.AnsweredCount())
}

func TestQuizSession_SubmitCrossesAspectBoundary(t *testing.T) {
	// Arrange: отвечаем на все 10 вопросов первого аспекта
	session := NewQuizSession(1)
	require.NoError(t, session.Start())
	for i := 0; i < 10; i++ {
		require.NoError(t, session.SubmitAnswer("jawaban untuk soal ini", 5))
	}

	// Assert: позиция на первом вопросе второго аспекта
	question, err := session.CurrentQuestion()
	require.NoError(t, err)
	assert.Equal(t, AspectHatiNurani, question.Aspect, "После 10 ответов должен начаться второй аспект")
	assert.Equal(t, 0, question.Index)
}

func TestQuizSession_CompletesAfterLastAnswer(t *testing.T) {
	// Arrange: отвечаем на все 70 вопросов
	session := NewQuizSession(1)
	require.NoError(t, session.Start())
	for i := 0; i < TotalQuestions(); i++ {
		require.NoError(t, session.SubmitAnswer("jawaban lengkap untuk semua soal", 6))
	}

	// Assert
	assert.Equal(t, SessionCompleted, session.State)
	require.NotNil(t, session.CompletedAt)
	assert.Equal(t, TotalQuestions(), session.AnsweredCount())

	// Доступ после завершения — ошибка, а не устаревшие данные
	_, err := session.CurrentQuestion()
	assert.ErrorIs(t, err, apperrors.ErrOutOfRange)
	assert.ErrorIs(t, session.SubmitAnswer("lagi", 1), apperrors.ErrOutOfRange)
	assert.ErrorIs(t, session.MoveToPrevious(), apperrors.ErrOutOfRange)
}

func TestQuizSession_MoveToPreviousAtFirstQuestion(t *testing.T) {
	// Arrange
	session := NewQuizSession(1)
	require.NoError(t, session.Start())

	// Act: шаг назад на самом первом вопросе
	require.NoError(t, session.MoveToPrevious())

	// Assert: позиция не изменилась, это не ошибка
	question, err := session.CurrentQuestion()
	require.NoError(t, err)
	assert.Equal(t, AspectEmpati, question.Aspect)
	assert.Equal(t, 0, question.Index, "На первом вопросе шаг назад должен быть no-op")
}

func TestQuizSession_MoveToPreviousCrossesAspectBackward(t *testing.T) {
	// Arrange: доходим до первого вопроса второго аспекта
	session := NewQuizSession(1)
	require.NoError(t, session.Start())
	for i := 0; i < 10; i++ {
		require.NoError(t, session.SubmitAnswer("jawaban untuk soal ini", 5))
	}

	// Act
	require.NoError(t, session.MoveToPrevious())

	// Assert: позиция на последнем вопросе первого аспекта
	question, err := session.CurrentQuestion()
	require.NoError(t, err)
	assert.Equal(t, AspectEmpati, question.Aspect, "Шаг назад должен пересекать границу аспектов")
	assert.Equal(t, 9, question.Index)

	// Сохранённый ответ доступен для предзаполнения
	stored, ok := session.CurrentAnswer()
	require.True(t, ok)
	assert.Equal(t, "jawaban untuk soal ini", stored.Text)
}

func TestQuizSession_ResubmitOverwritesAnswerAndScore(t *testing.T) {
	// Arrange
	session := NewQuizSession(1)
	require.NoError(t, session.Start())
	require.NoError(t, session.SubmitAnswer("jawaban awal saya di sini", 2))

	// Act: возвращаемся и отвечаем заново
	require.NoError(t, session.MoveToPrevious())
	require.NoError(t, session.SubmitAnswer("jawaban baru yang lebih baik", 8))

	// Assert: один ответ, и текст, и оценка перезаписаны
	assert.Equal(t, 1, session.AnsweredCount(), "Повторный ответ не должен создавать дубликат")
	answer, ok := session.AnswerAt(0)
	require.True(t, ok)
	assert.Equal(t, "jawaban baru yang lebih baik", answer.Text)
	assert.Equal(t, 8, answer.Score, "Оценка должна быть перезаписана вместе с текстом")
}

func TestQuizSession_AspectScores(t *testing.T) {
	// Arrange
	session := NewQuizSession(1)
	require.NoError(t, session.Start())
	require.NoError(t, session.SubmitAnswer("jawaban pertama", 4))
	require.NoError(t, session.SubmitAnswer("jawaban kedua", 6))

	// Act
	tallies := session.AspectScores()

	// Assert
	require.Len(t, tallies, 7, "Все аспекты должны присутствовать в сводке")
	assert.Equal(t, AspectTally{Sum: 10, Answered: 2}, tallies[AspectEmpati])
	assert.Equal(t, AspectTally{}, tallies[AspectKeadilan], "Неотвеченный аспект должен быть с нулями")
}

func TestQuizSession_AnswersSoFarGroupedAndOrdered(t *testing.T) {
	// Arrange: 10 ответов первого аспекта и 2 второго, с перезаписью
	session := NewQuizSession(1)
	require.NoError(t, session.Start())
	for i := 0; i < 10; i++ {
		require.NoError(t, session.SubmitAnswer("jawaban untuk soal ini", 5))
	}
	require.NoError(t, session.SubmitAnswer("jawaban aspek kedua pertama", 4))
	require.NoError(t, session.SubmitAnswer("jawaban aspek kedua kedua", 6))
	// Возврат и перезапись второго ответа второго аспекта
	require.NoError(t, session.MoveToPrevious())
	require.NoError(t, session.SubmitAnswer("jawaban kedua yang diperbaiki", 9))

	// Act
	byAspect := session.AnswersSoFar()

	// Assert: только отвеченные аспекты, в порядке вопросов, без дубликатов
	require.Len(t, byAspect, 2, "Аспекты без ответов не должны попадать в выборку")
	require.Len(t, byAspect[AspectEmpati], 10)
	hati := byAspect[AspectHatiNurani]
	require.Len(t, hati, 2)
	for i, answer := range hati {
		assert.Equal(t, i, answer.QuestionIndex, "Ответы внутри аспекта должны идти по возрастанию индекса")
	}
	assert.Equal(t, "jawaban kedua yang diperbaiki", hati[1].Text)
	assert.Equal(t, 9, hati[1].Score)
}

func TestQuizSession_JSONRoundTrip(t *testing.T) {
	// Arrange
	session := NewQuizSession(42)
	require.NoError(t, session.Start())
	require.NoError(t, session.SubmitAnswer("jawaban yang akan di-snapshot", 7))

	// Act: снимок и восстановление
	data, err := json.Marshal(session)
	require.NoError(t, err)

	var restored QuizSession
	require.NoError(t, json.Unmarshal(data, &restored))

	// Assert
	assert.Equal(t, session.ID, restored.ID)
	assert.Equal(t, session.State, restored.State)
	assert.Equal(t, session.AspectIndex, restored.AspectIndex)
	assert.Equal(t, session.QuestionIndex, restored.QuestionIndex)
	require.Len(t, restored.Answers, 1)
	assert.Equal(t, session.Answers[0].Text, restored.Answers[0].Text)
	assert.Equal(t, session.Answers[0].Score, restored.Answers[0].Score)
}
