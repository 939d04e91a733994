package service

import (
	"fmt"
	"io"
	"log"

	"github.com/xuri/excelize/v2"

	"github.com/yourusername/moral-quiz-api/internal/domain/entity"
	"github.com/yourusername/moral-quiz-api/internal/service/scoring"
)

// ExportService формирует XLSX-отчёт по записи истории результатов
type ExportService struct{}

// NewExportService создает новый сервис экспорта
func NewExportService() *ExportService {
	return &ExportService{}
}

// WriteXLSX пишет отчёт по результату в w.
// Используем StreamWriter для единообразия с остальными экспортами.
func (s *ExportService) WriteXLSX(result *entity.QuizResult, username string, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Hasil Tes"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create stream writer: %w", err)
	}

	// Шапка отчёта
	rows := [][]interface{}{
		{"Laporan Hasil Tes Moral Intelligence"},
		{"Pengguna", sanitizeForExcel(username)},
		{"Tanggal", result.CompletedAt.Format("2006-01-02 15:04")},
		{"Skor Keseluruhan", fmt.Sprintf("%.1f%%", result.OverallScore)},
		{"Kategori", result.OverallCategory},
		{"Interpretasi", result.Interpretation},
		{},
		{"Aspek", "Skor (%)", "Kategori"},
	}
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := sw.SetRow(cell, row); err != nil {
			log.Printf("[ExportService] Ошибка записи строки %d: %v", i+1, err)
		}
	}

	// Таблица по аспектам в каноническом порядке
	rowNum := len(rows) + 1
	for _, a := range entity.AllAspects() {
		pct, ok := result.AspectScores[a]
		if !ok {
			continue
		}
		cell := fmt.Sprintf("A%d", rowNum)
		row := []interface{}{a.DisplayName(), fmt.Sprintf("%.1f", pct), scoring.CategoryFor(pct)}
		if err := sw.SetRow(cell, row); err != nil {
			log.Printf("[ExportService] Ошибка записи строки %d: %v", rowNum, err)
		}
		rowNum++
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush stream writer: %w", err)
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write xlsx: %w", err)
	}
	return nil
}

// sanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	if s[0] == '=' || s[0] == '+' || s[0] == '-' || s[0] == '@' || s[0] == '\t' || s[0] == '\r' {
		return "'" + s
	}
	return s
}
