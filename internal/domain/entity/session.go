package entity

import (
	"sort"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/yourusername/moral-quiz-api/internal/pkg/errors"
)

// SessionState представляет состояние сессии теста
type SessionState string

const (
	SessionNotStarted SessionState = "not_started"
	SessionInProgress SessionState = "in_progress"
	SessionCompleted  SessionState = "completed"
)

// Answer представляет сохранённый ответ на один вопрос сессии.
// Score — целочисленная оценка в диапазоне [0,10], присвоенная в момент отправки.
type Answer struct {
	Aspect        Aspect    `json:"aspect"`
	QuestionIndex int       `json:"question_index"`
	Text          string    `json:"text"`
	Score         int       `json:"score"`
	AnsweredAt    time.Time `json:"answered_at"`
}

// QuizSession — сессия прохождения теста одним пользователем.
// Поля экспортированы, чтобы сессию можно было целиком сериализовать
// в JSON-снимок для Redis и восстановить без потери состояния.
//
// Сессия НЕ потокобезопасна: синхронизацию обеспечивает владеющий сервис.
type QuizSession struct {
	ID     string       `json:"id"`
	UserID uint         `json:"user_id"`
	State  SessionState `json:"state"`

	// Позиция в каноническом порядке обхода: индекс аспекта в AllAspects()
	// и индекс вопроса внутри аспекта. Валидны только в состоянии InProgress.
	AspectIndex   int `json:"aspect_index"`
	QuestionIndex int `json:"question_index"`

	// Answers хранит ответы разреженно по сквозной позиции вопроса.
	// Повторный ответ на тот же вопрос перезаписывает и текст, и оценку.
	Answers map[int]Answer `json:"answers"`

	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// NewQuizSession создаёт сессию в состоянии NotStarted.
func NewQuizSession(userID uint) *QuizSession {
	return &QuizSession{
		ID:      uuid.New().String(),
		UserID:  userID,
		State:   SessionNotStarted,
		Answers: make(map[int]Answer),
	}
}

// Start переводит сессию в InProgress на первом вопросе первого аспекта.
// Повторный запуск уже идущей или завершённой сессии — конфликт состояния.
func (s *QuizSession) Start() error {
	if s.State != SessionNotStarted {
		return apperrors.ErrConflict
	}
	s.State = SessionInProgress
	s.AspectIndex = 0
	s.QuestionIndex = 0
	s.StartedAt = time.Now()
	if s.Answers == nil {
		s.Answers = make(map[int]Answer)
	}
	return nil
}

// CurrentQuestion возвращает вопрос на текущей позиции.
// Вне состояния InProgress позиция не определена.
func (s *QuizSession) CurrentQuestion() (Question, error) {
	if s.State != SessionInProgress {
		return Question{}, apperrors.ErrOutOfRange
	}
	aspect := aspectOrder[s.AspectIndex]
	return Question{
		Aspect: aspect,
		Index:  s.QuestionIndex,
		Text:   questionBank[aspect][s.QuestionIndex],
	}, nil
}

// SubmitAnswer сохраняет ответ с уже вычисленной оценкой и продвигает позицию
// вперёд. На границе аспекта переходит к первому вопросу следующего аспекта;
// ответ на последний вопрос последнего аспекта завершает сессию.
// Оценка ответа — забота вызывающего сервиса, сессия её только хранит.
func (s *QuizSession) SubmitAnswer(text string, score int) error {
	if s.State != SessionInProgress {
		return apperrors.ErrOutOfRange
	}

	aspect := aspectOrder[s.AspectIndex]
	s.Answers[s.GlobalPosition()] = Answer{
		Aspect:        aspect,
		QuestionIndex: s.QuestionIndex,
		Text:          text,
		Score:         score,
		AnsweredAt:    time.Now(),
	}

	// Продвижение вперёд в каноническом порядке.
	if s.QuestionIndex < len(questionBank[aspect])-1 {
		s.QuestionIndex++
		return nil
	}
	if s.AspectIndex < len(aspectOrder)-1 {
		s.AspectIndex++
		s.QuestionIndex = 0
		return nil
	}

	now := time.Now()
	s.State = SessionCompleted
	s.CompletedAt = &now
	return nil
}

// MoveToPrevious сдвигает позицию на один вопрос назад, пересекая границы
// аспектов. На самом первом вопросе ничего не делает (это не ошибка).
func (s *QuizSession) MoveToPrevious() error {
	if s.State != SessionInProgress {
		return apperrors.ErrOutOfRange
	}
	if s.QuestionIndex > 0 {
		s.QuestionIndex--
		return nil
	}
	if s.AspectIndex > 0 {
		s.AspectIndex--
		prev := aspectOrder[s.AspectIndex]
		s.QuestionIndex = len(questionBank[prev]) - 1
	}
	return nil
}

// GlobalPosition возвращает сквозной номер текущего вопроса (0..TotalQuestions-1).
func (s *QuizSession) GlobalPosition() int {
	pos := 0
	for i := 0; i < s.AspectIndex; i++ {
		pos += len(questionBank[aspectOrder[i]])
	}
	return pos + s.QuestionIndex
}

// AnswerAt возвращает сохранённый ответ для сквозной позиции, если он есть.
func (s *QuizSession) AnswerAt(position int) (Answer, bool) {
	a, ok := s.Answers[position]
	return a, ok
}

// CurrentAnswer возвращает ранее сохранённый ответ на текущий вопрос
// (используется при возврате назад, чтобы показать пользователю его текст).
func (s *QuizSession) CurrentAnswer() (Answer, bool) {
	if s.State != SessionInProgress {
		return Answer{}, false
	}
	return s.AnswerAt(s.GlobalPosition())
}

// AnsweredCount возвращает число отвеченных вопросов.
func (s *QuizSession) AnsweredCount() int {
	return len(s.Answers)
}

// AnswersSoFar возвращает сохранённые ответы, сгруппированные по аспектам,
// внутри каждого аспекта — по возрастанию индекса вопроса. Аспекты без
// единого ответа в результате отсутствуют.
func (s *QuizSession) AnswersSoFar() map[Aspect][]Answer {
	out := make(map[Aspect][]Answer)
	for _, ans := range s.Answers {
		out[ans.Aspect] = append(out[ans.Aspect], ans)
	}
	for _, answers := range out {
		sort.Slice(answers, func(i, j int) bool {
			return answers[i].QuestionIndex < answers[j].QuestionIndex
		})
	}
	return out
}

// AspectScores возвращает по каждому аспекту сумму оценок и число
// отвеченных вопросов. Аспекты без ответов присутствуют с нулями.
func (s *QuizSession) AspectScores() map[Aspect]AspectTally {
	out := make(map[Aspect]AspectTally, len(aspectOrder))
	for _, a := range aspectOrder {
		out[a] = AspectTally{}
	}
	for _, ans := range s.Answers {
		t := out[ans.Aspect]
		t.Sum += ans.Score
		t.Answered++
		out[ans.Aspect] = t
	}
	return out
}

// AspectTally — промежуточный итог по одному аспекту.
type AspectTally struct {
	Sum      int `json:"sum"`
	Answered int `json:"answered"`
}
