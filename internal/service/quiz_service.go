package service

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/moral-quiz-api/internal/domain/entity"
	"github.com/yourusername/moral-quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/moral-quiz-api/internal/pkg/errors"
	"github.com/yourusername/moral-quiz-api/internal/service/scoring"
)

// QuestionView — текущий вопрос вместе с позицией в тесте.
type QuestionView struct {
	Aspect         entity.Aspect
	AspectName     string
	QuestionNumber int // сквозной номер, с 1
	TotalQuestions int
	Text           string
	// StoredAnswer — ранее сохранённый ответ на этот вопрос (при возврате назад).
	StoredAnswer string
	HasAnswer    bool
}

// SubmitOutcome — результат отправки одного ответа.
type SubmitOutcome struct {
	Score     int
	Feedback  string
	Completed bool
	// Next заполнен, если тест продолжается.
	Next *QuestionView
	// Summary заполнен, если этот ответ завершил тест.
	Summary *entity.QuizResult
}

// QuizService владеет сессиями прохождения теста: по одной активной на
// пользователя. Активные сессии живут в памяти процесса и зеркалируются
// в Redis-снимки, чтобы пережить рестарт.
type QuizService struct {
	resultRepo  repository.ResultRepository
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	scorer      *scoring.Scorer
	sessionTTL  time.Duration

	mu       sync.Mutex
	sessions map[uint]*entity.QuizSession
}

// NewQuizService создает новый сервис теста
func NewQuizService(
	resultRepo repository.ResultRepository,
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	scorer *scoring.Scorer,
	sessionTTL time.Duration,
) *QuizService {
	return &QuizService{
		resultRepo:  resultRepo,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		scorer:      scorer,
		sessionTTL:  sessionTTL,
		sessions:    make(map[uint]*entity.QuizSession),
	}
}

// StartSession начинает новую сессию для пользователя.
// Если сессия уже идёт (в памяти или в снимке), возвращает ErrConflict.
func (s *QuizService) StartSession(userID uint) (*QuestionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, err := s.loadSessionLocked(userID); err == nil {
		if existing.State == entity.SessionInProgress {
			return nil, apperrors.ErrConflict
		}
		// Завершённая сессия с незаписанным итогом: сначала доводим
		// сохранение, чтобы новая сессия не затёрла результат.
		if existing.State == entity.SessionCompleted {
			if _, err := s.completeLocked(existing); err != nil {
				return nil, err
			}
		}
	}

	session := entity.NewQuizSession(userID)
	if err := session.Start(); err != nil {
		return nil, err
	}
	s.sessions[userID] = session
	s.snapshotLocked(session)

	log.Printf("[QuizService] Пользователь %d начал сессию %s", userID, session.ID)
	return s.questionViewLocked(session)
}

// CurrentQuestion возвращает текущий вопрос активной сессии пользователя.
func (s *QuizService) CurrentQuestion(userID uint) (*QuestionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.loadSessionLocked(userID)
	if err != nil {
		return nil, err
	}
	return s.questionViewLocked(session)
}

// SubmitAnswer оценивает ответ, сохраняет его и продвигает сессию вперёд.
// Ответ короче минимальной длины отклоняется без изменения состояния.
// Ответ на последний вопрос завершает сессию: итог сводится, сохраняется в
// историю, агрегаты пользователя обновляются, снимок удаляется.
func (s *QuizService) SubmitAnswer(userID uint, text string) (*SubmitOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.loadSessionLocked(userID)
	if err != nil {
		return nil, err
	}

	// Сессия уже завершена, но итог не записан в историю (сбой хранилища
	// при прошлой попытке): повторная отправка повторяет сохранение.
	if session.State == entity.SessionCompleted {
		return s.finishLocked(session)
	}

	if !s.scorer.MeetsMinLength(text) {
		return nil, apperrors.ErrValidation
	}

	question, err := session.CurrentQuestion()
	if err != nil {
		return nil, err
	}

	score := s.scorer.Score(text, question.Aspect)
	if err := session.SubmitAnswer(text, score); err != nil {
		return nil, err
	}

	if session.State == entity.SessionCompleted {
		return s.finishLocked(session)
	}

	outcome := &SubmitOutcome{
		Score:    score,
		Feedback: scoring.AnswerFeedback(score),
	}

	s.snapshotLocked(session)
	next, err := s.questionViewLocked(session)
	if err != nil {
		return nil, err
	}
	outcome.Next = next
	return outcome, nil
}

// MoveToPrevious возвращает сессию на предыдущий вопрос.
// На первом вопросе ничего не меняет и возвращает его же.
func (s *QuizService) MoveToPrevious(userID uint) (*QuestionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.loadSessionLocked(userID)
	if err != nil {
		return nil, err
	}
	if err := session.MoveToPrevious(); err != nil {
		return nil, err
	}
	s.snapshotLocked(session)
	return s.questionViewLocked(session)
}

// Abandon прекращает активную сессию пользователя без сохранения итога.
func (s *QuizService) Abandon(userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.loadSessionLocked(userID); err != nil {
		return err
	}
	delete(s.sessions, userID)
	if err := s.sessionRepo.DeleteSnapshot(userID); err != nil {
		log.Printf("[QuizService] Не удалось удалить снимок сессии пользователя %d: %v", userID, err)
	}
	return nil
}

// Progress возвращает текстовую сводку прогресса и промежуточные проценты.
func (s *QuizService) Progress(userID uint) (string, scoring.FinalResults, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.loadSessionLocked(userID)
	if err != nil {
		return "", scoring.FinalResults{}, err
	}

	partial := scoring.Aggregate(session.AspectScores(), s.scorer.Policy().MaxScore)

	if session.AnsweredCount() == 0 {
		return "Anda belum menjawab soal apapun. Silakan mulai menjawab!", partial, nil
	}

	var b strings.Builder
	b.WriteString("Progress Quiz Anda:\n\n")
	for _, ar := range partial.AspectResults {
		if ar.Answered == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s: %d soal → %.1f%% (%s)\n", ar.Name, ar.Answered, ar.Percentage, ar.Category)
	}
	fmt.Fprintf(&b, "\nTotal dijawab: %d dari %d soal\n", session.AnsweredCount(), entity.TotalQuestions())
	return b.String(), partial, nil
}

// ActiveSessionQuestion возвращает текущий вопрос, если сессия идёт.
// Используется AI-ассистентом, чтобы помочь с текущим вопросом.
func (s *QuizService) ActiveSessionQuestion(userID uint) (*QuestionView, error) {
	return s.CurrentQuestion(userID)
}

// finishLocked доводит завершённую сессию до записи в историю и строит итог
// отправки. При сбое хранилища сессия и её снимок остаются жить, чтобы
// повторная отправка могла повторить сохранение. Вызывается под s.mu.
func (s *QuizService) finishLocked(session *entity.QuizSession) (*SubmitOutcome, error) {
	result, err := s.completeLocked(session)
	if err != nil {
		s.snapshotLocked(session)
		return nil, err
	}
	last, _ := session.AnswerAt(entity.TotalQuestions() - 1)
	return &SubmitOutcome{
		Score:     last.Score,
		Feedback:  scoring.AnswerFeedback(last.Score),
		Completed: true,
		Summary:   result,
	}, nil
}

// completeLocked сводит завершённую сессию в запись истории и сохраняет её.
// Вызывается под s.mu.
func (s *QuizService) completeLocked(session *entity.QuizSession) (*entity.QuizResult, error) {
	final := scoring.Aggregate(session.AspectScores(), s.scorer.Policy().MaxScore)

	aspectScores := make(entity.ScoreMap, len(final.AspectResults))
	for _, ar := range final.AspectResults {
		aspectScores[ar.Aspect] = ar.Percentage
	}

	// Ответы в запись попадают в порядке обхода теста.
	byAspect := session.AnswersSoFar()
	rawAnswers := make(entity.AnswerList, 0, session.AnsweredCount())
	for _, a := range entity.AllAspects() {
		rawAnswers = append(rawAnswers, byAspect[a]...)
	}

	completedAt := time.Now()
	if session.CompletedAt != nil {
		completedAt = *session.CompletedAt
	}

	result := &entity.QuizResult{
		PublicID:         uuid.New().String(),
		UserID:           session.UserID,
		AspectScores:     aspectScores,
		OverallScore:     final.OverallScore,
		OverallCategory:  final.OverallCategory,
		Interpretation:   final.Interpretation,
		RawAnswers:       rawAnswers,
		TimeSpentSeconds: int(completedAt.Sub(session.StartedAt).Seconds()),
		CompletedAt:      completedAt,
	}

	if err := s.resultRepo.Save(result); err != nil {
		// Итог не должен пропасть молча: сессия остаётся завершённой в
		// памяти, повторная отправка ответа повторит сохранение.
		log.Printf("[QuizService] Ошибка сохранения результата пользователя %d: %v", session.UserID, err)
		return nil, apperrors.ErrPersistence
	}

	// Обновляем агрегаты пользователя; их потеря не критична для итога.
	if user, err := s.userRepo.GetByID(session.UserID); err == nil {
		user.RecordQuizCompletion(final.OverallScore, completedAt)
		if err := s.userRepo.Update(user); err != nil {
			log.Printf("[QuizService] Не удалось обновить статистику пользователя %d: %v", session.UserID, err)
		}
	}

	delete(s.sessions, session.UserID)
	if err := s.sessionRepo.DeleteSnapshot(session.UserID); err != nil {
		log.Printf("[QuizService] Не удалось удалить снимок сессии пользователя %d: %v", session.UserID, err)
	}

	log.Printf("[QuizService] Пользователь %d завершил тест: %.1f%% (%s)",
		session.UserID, final.OverallScore, final.OverallCategory)
	return result, nil
}

// loadSessionLocked возвращает активную сессию из памяти или из снимка Redis.
// Вызывается под s.mu.
func (s *QuizService) loadSessionLocked(userID uint) (*entity.QuizSession, error) {
	if session, ok := s.sessions[userID]; ok {
		return session, nil
	}

	session, err := s.sessionRepo.GetSnapshot(userID)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}
	// Восстанавливаем идущие сессии и завершённые с незаписанным итогом
	// (снимок завершённой сессии остаётся только после сбоя сохранения).
	if session.State != entity.SessionInProgress && session.State != entity.SessionCompleted {
		return nil, apperrors.ErrNotFound
	}
	s.sessions[userID] = session
	log.Printf("[QuizService] Сессия %s пользователя %d восстановлена из снимка", session.ID, userID)
	return session, nil
}

// snapshotLocked зеркалирует сессию в Redis. Ошибка снимка не прерывает
// прохождение: сессия остаётся в памяти процесса.
func (s *QuizService) snapshotLocked(session *entity.QuizSession) {
	if err := s.sessionRepo.SaveSnapshot(session, s.sessionTTL); err != nil {
		log.Printf("[QuizService] Не удалось сохранить снимок сессии %s: %v", session.ID, err)
	}
}

func (s *QuizService) questionViewLocked(session *entity.QuizSession) (*QuestionView, error) {
	question, err := session.CurrentQuestion()
	if err != nil {
		return nil, err
	}
	view := &QuestionView{
		Aspect:         question.Aspect,
		AspectName:     question.Aspect.DisplayName(),
		QuestionNumber: session.GlobalPosition() + 1,
		TotalQuestions: entity.TotalQuestions(),
		Text:           question.Text,
	}
	if stored, ok := session.CurrentAnswer(); ok {
		view.StoredAnswer = stored.Text
		view.HasAnswer = true
	}
	return view, nil
}
