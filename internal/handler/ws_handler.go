package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	gorillaws "github.com/gorilla/websocket"

	"github.com/yourusername/moral-quiz-api/internal/middleware"
	"github.com/yourusername/moral-quiz-api/internal/service"
)

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		// Если Origin пустой - это не браузерный клиент (мобильное приложение, curl и т.д.)
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		allowedOrigins := []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}
		for _, allowed := range allowedOrigins {
			if origin == allowed {
				return true
			}
		}
		log.Printf("WebSocket: отклонён origin %s", origin)
		return false
	},
}

// wsChatRequest — входящее сообщение чата.
// Type: "ask" (свободный вопрос), "help" (помощь с текущим вопросом),
// "explain" (объяснение аспекта), "discuss" (обсуждение последнего результата).
type wsChatRequest struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
	Aspect  string `json:"aspect,omitempty"`
}

type wsChatResponse struct {
	Reply string `json:"reply,omitempty"`
	Error string `json:"error,omitempty"`
}

// WSChatHandler обслуживает websocket-соединение с AI-ассистентом.
// Каждое соединение обрабатывает сообщения последовательно: ассистент
// и так ограничен минимальным интервалом между запросами.
type WSChatHandler struct {
	chatService *service.ChatService
}

// NewWSChatHandler создает новый websocket-обработчик чата
func NewWSChatHandler(chatService *service.ChatService) *WSChatHandler {
	return &WSChatHandler{chatService: chatService}
}

// HandleConnection апгрейдит соединение и запускает цикл чтения.
// Аутентификация выполняется middleware по query-параметру token.
func (h *WSChatHandler) HandleConnection(c *gin.Context) {
	userID := middleware.UserID(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket: ошибка апгрейда для пользователя %d: %v", userID, err)
		return
	}
	defer conn.Close()

	log.Printf("WebSocket: соединение открыто для пользователя %d", userID)
	conn.SetReadLimit(8192)

	for {
		var req wsChatRequest
		if err := conn.ReadJSON(&req); err != nil {
			if gorillaws.IsUnexpectedCloseError(err, gorillaws.CloseGoingAway, gorillaws.CloseNormalClosure) {
				log.Printf("WebSocket: неожиданное закрытие для пользователя %d: %v", userID, err)
			}
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		reply, err := h.dispatch(ctx, userID, req)
		cancel()

		resp := wsChatResponse{Reply: reply}
		if err != nil {
			resp = wsChatResponse{Error: "Maaf, permintaan tidak dapat diproses saat ini."}
			log.Printf("WebSocket: ошибка ассистента для пользователя %d: %v", userID, err)
		}
		if err := conn.WriteJSON(resp); err != nil {
			log.Printf("WebSocket: ошибка записи для пользователя %d: %v", userID, err)
			return
		}
	}
}

func (h *WSChatHandler) dispatch(ctx context.Context, userID uint, req wsChatRequest) (string, error) {
	switch req.Type {
	case "help":
		return h.chatService.HelpWithCurrentQuestion(ctx, userID)
	case "explain":
		return h.chatService.ExplainAspect(ctx, req.Aspect)
	case "discuss":
		return h.chatService.DiscussResults(ctx, userID)
	default:
		return h.chatService.Ask(ctx, userID, req.Message)
	}
}
