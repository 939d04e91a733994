package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/moral-quiz-api/internal/middleware"
	"github.com/yourusername/moral-quiz-api/internal/service"
)

// ChatHandler обрабатывает запросы к AI-ассистенту
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler создает новый обработчик чата
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// AskRequest представляет свободный вопрос ассистенту
type AskRequest struct {
	Message string `json:"message" binding:"required"`
}

// ExplainRequest представляет запрос на объяснение аспекта
type ExplainRequest struct {
	Aspect string `json:"aspect" binding:"required"`
}

// Ask обрабатывает свободный вопрос ассистенту
func (h *ChatHandler) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.chatService.Ask(c.Request.Context(), middleware.UserID(c), req.Message)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// Help просит ассистента помочь с текущим вопросом сессии
func (h *ChatHandler) Help(c *gin.Context) {
	reply, err := h.chatService.HelpWithCurrentQuestion(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// Explain просит ассистента объяснить один из аспектов
func (h *ChatHandler) Explain(c *gin.Context) {
	var req ExplainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.chatService.ExplainAspect(c.Request.Context(), req.Aspect)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// Discuss просит ассистента обсудить последний результат пользователя
func (h *ChatHandler) Discuss(c *gin.Context) {
	reply, err := h.chatService.DiscussResults(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
