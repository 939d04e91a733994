package handler

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/moral-quiz-api/internal/handler/dto"
	"github.com/yourusername/moral-quiz-api/internal/middleware"
	"github.com/yourusername/moral-quiz-api/internal/service"
)

// HistoryHandler обрабатывает запросы к истории результатов
type HistoryHandler struct {
	resultService *service.ResultService
	userService   *service.UserService
	exportService *service.ExportService
	emailService  service.EmailService
}

// NewHistoryHandler создает новый обработчик истории
func NewHistoryHandler(
	resultService *service.ResultService,
	userService *service.UserService,
	exportService *service.ExportService,
	emailService service.EmailService,
) *HistoryHandler {
	return &HistoryHandler{
		resultService: resultService,
		userService:   userService,
		exportService: exportService,
		emailService:  emailService,
	}
}

// List возвращает историю текущего пользователя, новые записи первыми
func (h *HistoryHandler) List(c *gin.Context) {
	userID := middleware.UserID(c)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	results, total, err := h.resultService.ListForUser(userID, limit, offset)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewResultListResponse(results, total))
}

// Get возвращает одну запись истории
func (h *HistoryHandler) Get(c *gin.Context) {
	result, err := h.resultService.GetForUser(c.Param("id"), middleware.UserID(c), middleware.IsAdmin(c))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewResultResponse(result))
}

// Delete удаляет запись истории (владелец или администратор)
func (h *HistoryHandler) Delete(c *gin.Context) {
	if err := h.resultService.Delete(c.Param("id"), middleware.UserID(c), middleware.IsAdmin(c)); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Result deleted"})
}

// Export отдаёт запись истории как XLSX-файл
func (h *HistoryHandler) Export(c *gin.Context) {
	userID := middleware.UserID(c)

	result, err := h.resultService.GetForUser(c.Param("id"), userID, middleware.IsAdmin(c))
	if err != nil {
		handleError(c, err)
		return
	}

	username := ""
	if user, err := h.userService.GetByID(result.UserID); err == nil {
		username = user.Username
	}

	filename := fmt.Sprintf("hasil-tes-%s", result.CompletedAt.Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))

	if err := h.exportService.WriteXLSX(result, username, c.Writer); err != nil {
		log.Printf("[HistoryHandler] Ошибка записи Excel в response: %v", err)
	}
}

// Email отправляет отчёт о результате на почту владельца
func (h *HistoryHandler) Email(c *gin.Context) {
	userID := middleware.UserID(c)

	result, err := h.resultService.GetForUser(c.Param("id"), userID, middleware.IsAdmin(c))
	if err != nil {
		handleError(c, err)
		return
	}

	user, err := h.userService.GetByID(result.UserID)
	if err != nil {
		handleError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	if err := h.emailService.SendResultReport(ctx, user.Email, user.Username, result); err != nil {
		log.Printf("[HistoryHandler] Ошибка отправки отчёта на %s: %v", user.Email, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send email"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Report sent"})
}
