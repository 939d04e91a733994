package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreMap_ValueScanRoundTrip(t *testing.T) {
	// Arrange
	original := ScoreMap{
		AspectEmpati:   87.5,
		AspectKeadilan: 42.0,
	}

	// Act: запись в JSONB и чтение обратно
	value, err := original.Value()
	require.NoError(t, err)

	var restored ScoreMap
	require.NoError(t, restored.Scan(value))

	// Assert: проценты без потерь
	assert.Equal(t, original, restored)
}

func TestScoreMap_ScanNull(t *testing.T) {
	var m ScoreMap
	require.NoError(t, m.Scan(nil))
	assert.Empty(t, m)
}

func TestScoreMap_EmptyValueIsJSONObject(t *testing.T) {
	value, err := ScoreMap{}.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("{}"), value, "Пустая карта должна писаться как {} а не NULL")
}

func TestAnswerList_ValueScanRoundTrip(t *testing.T) {
	// Arrange
	original := AnswerList{
		{Aspect: AspectHormat, QuestionIndex: 3, Text: "jawaban saya", Score: 6, AnsweredAt: time.Now().Truncate(time.Second)},
	}

	// Act
	value, err := original.Value()
	require.NoError(t, err)

	var restored AnswerList
	require.NoError(t, restored.Scan(value))

	// Assert
	require.Len(t, restored, 1)
	assert.Equal(t, original[0].Text, restored[0].Text)
	assert.Equal(t, original[0].Score, restored[0].Score)
	assert.Equal(t, original[0].Aspect, restored[0].Aspect)
}

func TestAnswerList_ScanInvalidType(t *testing.T) {
	var l AnswerList
	assert.Error(t, l.Scan(12345), "Не-байтовое значение из базы должно возвращать ошибку")
}

func TestUser_RecordQuizCompletion(t *testing.T) {
	// Arrange
	user := &User{}
	first := time.Now().Add(-time.Hour)
	second := time.Now()

	// Act
	user.RecordQuizCompletion(70, first)
	user.RecordQuizCompletion(55, second)

	// Assert: лучший балл сохраняется, последний обновляется
	assert.EqualValues(t, 2, user.QuizzesCompleted)
	assert.EqualValues(t, 70, user.BestOverallScore)
	assert.EqualValues(t, 55, user.LastOverallScore)
	require.NotNil(t, user.LastQuizAt)
	assert.Equal(t, second, *user.LastQuizAt)
}
