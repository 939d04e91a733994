package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/moral-quiz-api/internal/handler/dto"
	"github.com/yourusername/moral-quiz-api/internal/middleware"
	"github.com/yourusername/moral-quiz-api/internal/service"
)

// QuizHandler обрабатывает запросы прохождения теста
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler создает новый обработчик теста
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// ListAspects возвращает каталог аспектов (публичный)
func (h *QuizHandler) ListAspects(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"aspects": dto.NewAspectListResponse()})
}

// StartSession начинает новую сессию теста
func (h *QuizHandler) StartSession(c *gin.Context) {
	userID := middleware.UserID(c)

	view, err := h.quizService.StartSession(userID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewQuestionResponse(view))
}

// CurrentQuestion возвращает текущий вопрос активной сессии
func (h *QuizHandler) CurrentQuestion(c *gin.Context) {
	userID := middleware.UserID(c)

	view, err := h.quizService.CurrentQuestion(userID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewQuestionResponse(view))
}

// SubmitAnswer принимает ответ на текущий вопрос
func (h *QuizHandler) SubmitAnswer(c *gin.Context) {
	var req dto.SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := middleware.UserID(c)
	outcome, err := h.quizService.SubmitAnswer(userID, req.Text)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSubmitAnswerResponse(outcome))
}

// MoveToPrevious возвращает сессию на предыдущий вопрос
func (h *QuizHandler) MoveToPrevious(c *gin.Context) {
	userID := middleware.UserID(c)

	view, err := h.quizService.MoveToPrevious(userID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewQuestionResponse(view))
}

// Progress возвращает промежуточный прогресс сессии
func (h *QuizHandler) Progress(c *gin.Context) {
	userID := middleware.UserID(c)

	text, partial, err := h.quizService.Progress(userID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProgressResponse(text, partial))
}

// AbandonSession прекращает активную сессию
func (h *QuizHandler) AbandonSession(c *gin.Context) {
	userID := middleware.UserID(c)

	if err := h.quizService.Abandon(userID); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session abandoned"})
}
