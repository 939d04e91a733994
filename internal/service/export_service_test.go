package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/moral-quiz-api/internal/domain/entity"
)

func TestExportService_WriteXLSX(t *testing.T) {
	// Arrange
	svc := NewExportService()
	result := &entity.QuizResult{
		PublicID: "abc",
		UserID:   1,
		AspectScores: entity.ScoreMap{
			entity.AspectEmpati:   85,
			entity.AspectKeadilan: 40,
		},
		OverallScore:    62.5,
		OverallCategory: "Baik",
		Interpretation:  "Anda menunjukkan moral intelligence yang baik.",
		CompletedAt:     time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}

	// Act
	var buf bytes.Buffer
	require.NoError(t, svc.WriteXLSX(result, "budi", &buf))

	// Assert: файл читается и содержит ожидаемые данные
	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Hasil Tes")
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, "Laporan Hasil Tes Moral Intelligence", rows[0][0])

	flat := ""
	for _, row := range rows {
		for _, cell := range row {
			flat += cell + "|"
		}
	}
	assert.Contains(t, flat, "budi")
	assert.Contains(t, flat, "62.5%")
	assert.Contains(t, flat, "Empati")
	assert.Contains(t, flat, "Keadilan")
}

func TestExportService_SanitizeFormulaInjection(t *testing.T) {
	// Act & Assert
	assert.Equal(t, "'=cmd", sanitizeForExcel("=cmd"))
	assert.Equal(t, "'+1", sanitizeForExcel("+1"))
	assert.Equal(t, "budi", sanitizeForExcel("budi"))
	assert.Equal(t, "", sanitizeForExcel(""))
}
