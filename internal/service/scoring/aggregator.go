package scoring

import (
	"sort"

	"github.com/yourusername/moral-quiz-api/internal/domain/entity"
)

// Категории итогового результата (индонезийский, как в клиентском приложении).
const (
	CategoryPerluPerbaikan = "Perlu Perbaikan"
	CategoryCukupBaik      = "Cukup Baik"
	CategoryBaik           = "Baik"
	CategorySangatBaik     = "Sangat Baik"
)

// AspectResult — итог по одному аспекту.
type AspectResult struct {
	Aspect     entity.Aspect `json:"aspect"`
	Name       string        `json:"name"`
	Answered   int           `json:"answered"`
	Percentage float64       `json:"percentage"`
	Category   string        `json:"category"`
}

// FinalResults — сведённый итог завершённой (или частичной) сессии.
type FinalResults struct {
	AspectResults   []AspectResult `json:"aspect_results"`
	OverallScore    float64        `json:"overall_score"`
	OverallCategory string         `json:"overall_category"`
	Interpretation  string         `json:"interpretation"`
	Strengths       []AspectResult `json:"strengths"`
	FocusArea       *AspectResult  `json:"focus_area,omitempty"`
}

// Aggregate сводит промежуточные суммы по аспектам в итоговый результат.
// Процент аспекта = сумма / (отвечено × MaxScore) × 100; аспект без единого
// ответа получает 0 (деление на ноль исключено). Итоговый балл — простое
// среднее процентов по ВСЕМ аспектам, включая неотвеченные.
func Aggregate(tallies map[entity.Aspect]entity.AspectTally, maxScore int) FinalResults {
	aspects := entity.AllAspects()
	results := make([]AspectResult, 0, len(aspects))

	var sum float64
	for _, a := range aspects {
		t := tallies[a]
		pct := 0.0
		if t.Answered > 0 {
			pct = float64(t.Sum) / float64(t.Answered*maxScore) * 100
		}
		sum += pct
		results = append(results, AspectResult{
			Aspect:     a,
			Name:       a.DisplayName(),
			Answered:   t.Answered,
			Percentage: pct,
			Category:   CategoryFor(pct),
		})
	}

	overall := sum / float64(len(aspects))

	return FinalResults{
		AspectResults:   results,
		OverallScore:    overall,
		OverallCategory: CategoryFor(overall),
		Interpretation:  InterpretationFor(overall),
		Strengths:       topStrengths(results, 2),
		FocusArea:       weakestAspect(results),
	}
}

// CategoryFor возвращает категорию для процента [0,100].
// Границы включительны сверху, как в исходной шкале.
func CategoryFor(score float64) string {
	switch {
	case score <= 25:
		return CategoryPerluPerbaikan
	case score <= 50:
		return CategoryCukupBaik
	case score <= 75:
		return CategoryBaik
	default:
		return CategorySangatBaik
	}
}

// InterpretationFor возвращает текстовую интерпретацию итогового балла.
func InterpretationFor(score float64) string {
	switch {
	case score <= 25:
		return "Anda memiliki potensi besar untuk mengembangkan moral intelligence. Mari fokus pada empati dan kejujuran sebagai langkah awal."
	case score <= 50:
		return "Moral intelligence Anda sudah cukup baik, namun masih ada ruang untuk peningkatan dalam memahami dan merespons orang lain."
	case score <= 75:
		return "Anda menunjukkan moral intelligence yang baik. Terus kembangkan aspek-aspek yang masih perlu diperkuat."
	default:
		return "Selamat! Anda memiliki moral intelligence yang sangat baik. Pertahankan dan terus jadilah teladan bagi orang lain."
	}
}

// AnswerFeedback возвращает сообщение обратной связи по оценке одного ответа.
func AnswerFeedback(score int) string {
	switch {
	case score >= 7:
		return "🌟 Excellent! Jawaban yang sangat baik dan penuh empati."
	case score >= 4:
		return "👍 Bagus! Anda menunjukkan pemahaman yang cukup baik."
	default:
		return "💪 Jawaban Anda baik, tapi bisa lebih detail lagi!"
	}
}

// StrengthsAndFocus восстанавливает сильные стороны и зону роста из
// сохранённых процентов (например, записи истории). Учитываются только
// присутствующие аспекты; при равенстве — канонический порядок.
func StrengthsAndFocus(scores map[entity.Aspect]float64) ([]AspectResult, *AspectResult) {
	results := make([]AspectResult, 0, len(scores))
	for _, a := range entity.AllAspects() {
		pct, ok := scores[a]
		if !ok {
			continue
		}
		results = append(results, AspectResult{
			Aspect:     a,
			Name:       a.DisplayName(),
			Percentage: pct,
			Category:   CategoryFor(pct),
		})
	}
	return topStrengths(results, 2), weakestAspect(results)
}

// topStrengths возвращает n аспектов с наибольшим процентом.
// При равенстве сохраняется канонический порядок каталога.
func topStrengths(results []AspectResult, n int) []AspectResult {
	sorted := make([]AspectResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Percentage > sorted[j].Percentage
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// weakestAspect возвращает аспект с наименьшим процентом (первый по каталогу
// при равенстве) как зону роста.
func weakestAspect(results []AspectResult) *AspectResult {
	if len(results) == 0 {
		return nil
	}
	weakest := results[0]
	for _, r := range results[1:] {
		if r.Percentage < weakest.Percentage {
			weakest = r
		}
	}
	return &weakest
}
