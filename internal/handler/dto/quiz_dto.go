package dto

import (
	"time"

	"github.com/yourusername/moral-quiz-api/internal/domain/entity"
	"github.com/yourusername/moral-quiz-api/internal/service"
	"github.com/yourusername/moral-quiz-api/internal/service/scoring"
)

// AspectResponse описывает один аспект каталога
type AspectResponse struct {
	ID            entity.Aspect `json:"id"`
	Name          string        `json:"name"`
	QuestionCount int           `json:"question_count"`
}

// NewAspectListResponse строит список аспектов в каноническом порядке
func NewAspectListResponse() []AspectResponse {
	aspects := entity.AllAspects()
	out := make([]AspectResponse, 0, len(aspects))
	for _, a := range aspects {
		out = append(out, AspectResponse{
			ID:            a,
			Name:          a.DisplayName(),
			QuestionCount: entity.QuestionCount(a),
		})
	}
	return out
}

// QuestionResponse представляет текущий вопрос сессии
type QuestionResponse struct {
	Aspect         entity.Aspect `json:"aspect"`
	AspectName     string        `json:"aspect_name"`
	QuestionNumber int           `json:"question_number"`
	TotalQuestions int           `json:"total_questions"`
	Text           string        `json:"text"`
	StoredAnswer   string        `json:"stored_answer,omitempty"`
	HasAnswer      bool          `json:"has_answer"`
}

// NewQuestionResponse преобразует представление сервиса в DTO
func NewQuestionResponse(v *service.QuestionView) QuestionResponse {
	return QuestionResponse{
		Aspect:         v.Aspect,
		AspectName:     v.AspectName,
		QuestionNumber: v.QuestionNumber,
		TotalQuestions: v.TotalQuestions,
		Text:           v.Text,
		StoredAnswer:   v.StoredAnswer,
		HasAnswer:      v.HasAnswer,
	}
}

// SubmitAnswerRequest представляет запрос на отправку ответа
type SubmitAnswerRequest struct {
	Text string `json:"text" binding:"required"`
}

// SubmitAnswerResponse представляет итог отправки ответа
type SubmitAnswerResponse struct {
	Score     int               `json:"score"`
	Feedback  string            `json:"feedback"`
	Completed bool              `json:"completed"`
	Next      *QuestionResponse `json:"next,omitempty"`
	Summary   *ResultResponse   `json:"summary,omitempty"`
}

// NewSubmitAnswerResponse преобразует итог сервиса в DTO
func NewSubmitAnswerResponse(o *service.SubmitOutcome) SubmitAnswerResponse {
	resp := SubmitAnswerResponse{
		Score:     o.Score,
		Feedback:  o.Feedback,
		Completed: o.Completed,
	}
	if o.Next != nil {
		next := NewQuestionResponse(o.Next)
		resp.Next = &next
	}
	if o.Summary != nil {
		summary := NewResultResponse(o.Summary)
		resp.Summary = &summary
	}
	return resp
}

// AspectScoreResponse представляет итог по одному аспекту
type AspectScoreResponse struct {
	Aspect   entity.Aspect `json:"aspect"`
	Name     string        `json:"name"`
	Score    float64       `json:"score"`
	Category string        `json:"category"`
}

// ResultResponse представляет запись истории результатов
type ResultResponse struct {
	ID               string                `json:"id"`
	AspectScores     []AspectScoreResponse `json:"aspect_scores"`
	OverallScore     float64               `json:"overall_score"`
	OverallCategory  string                `json:"overall_category"`
	Interpretation   string                `json:"interpretation"`
	Strengths        []AspectScoreResponse `json:"strengths"`
	FocusArea        *AspectScoreResponse  `json:"focus_area,omitempty"`
	TimeSpentSeconds int                   `json:"time_spent_seconds"`
	CompletedAt      time.Time             `json:"completed_at"`
}

// NewResultResponse преобразует запись истории в DTO.
// Аспекты идут в каноническом порядке каталога.
func NewResultResponse(r *entity.QuizResult) ResultResponse {
	scores := make([]AspectScoreResponse, 0, len(r.AspectScores))
	for _, a := range entity.AllAspects() {
		pct, ok := r.AspectScores[a]
		if !ok {
			continue
		}
		scores = append(scores, AspectScoreResponse{
			Aspect:   a,
			Name:     a.DisplayName(),
			Score:    pct,
			Category: scoring.CategoryFor(pct),
		})
	}
	strengths, focus := scoring.StrengthsAndFocus(r.AspectScores)
	resp := ResultResponse{
		ID:               r.PublicID,
		AspectScores:     scores,
		OverallScore:     r.OverallScore,
		OverallCategory:  r.OverallCategory,
		Interpretation:   r.Interpretation,
		Strengths:        toAspectScores(strengths),
		TimeSpentSeconds: r.TimeSpentSeconds,
		CompletedAt:      r.CompletedAt,
	}
	if focus != nil {
		fa := toAspectScore(*focus)
		resp.FocusArea = &fa
	}
	return resp
}

func toAspectScore(ar scoring.AspectResult) AspectScoreResponse {
	return AspectScoreResponse{
		Aspect:   ar.Aspect,
		Name:     ar.Name,
		Score:    ar.Percentage,
		Category: ar.Category,
	}
}

func toAspectScores(results []scoring.AspectResult) []AspectScoreResponse {
	out := make([]AspectScoreResponse, 0, len(results))
	for _, ar := range results {
		out = append(out, toAspectScore(ar))
	}
	return out
}

// ResultListResponse представляет страницу истории
type ResultListResponse struct {
	Results []ResultResponse `json:"results"`
	Total   int64            `json:"total"`
}

// NewResultListResponse строит страницу истории из записей
func NewResultListResponse(results []entity.QuizResult, total int64) ResultListResponse {
	out := make([]ResultResponse, 0, len(results))
	for i := range results {
		out = append(out, NewResultResponse(&results[i]))
	}
	return ResultListResponse{Results: out, Total: total}
}

// ProgressResponse представляет промежуточный прогресс сессии
type ProgressResponse struct {
	Text          string                `json:"text"`
	AspectScores  []AspectScoreResponse `json:"aspect_scores"`
	AnsweredCount int                   `json:"answered_count"`
}

// NewProgressResponse строит DTO прогресса из промежуточной сводки
func NewProgressResponse(text string, partial scoring.FinalResults) ProgressResponse {
	scores := make([]AspectScoreResponse, 0, len(partial.AspectResults))
	answered := 0
	for _, ar := range partial.AspectResults {
		answered += ar.Answered
		if ar.Answered == 0 {
			continue
		}
		scores = append(scores, AspectScoreResponse{
			Aspect:   ar.Aspect,
			Name:     ar.Name,
			Score:    ar.Percentage,
			Category: ar.Category,
		})
	}
	return ProgressResponse{
		Text:          text,
		AspectScores:  scores,
		AnsweredCount: answered,
	}
}
