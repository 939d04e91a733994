package dto

import (
	"time"

	"github.com/yourusername/moral-quiz-api/internal/domain/entity"
)

// RegisterRequest представляет запрос на регистрацию
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest представляет запрос на вход
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse представляет публичные данные пользователя
type UserResponse struct {
	ID               uint      `json:"id"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	QuizzesCompleted int64     `json:"quizzes_completed"`
	CreatedAt        time.Time `json:"created_at"`
}

// NewUserResponse преобразует пользователя в DTO
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:               u.ID,
		Username:         u.Username,
		Email:            u.Email,
		QuizzesCompleted: u.QuizzesCompleted,
		CreatedAt:        u.CreatedAt,
	}
}

// AuthResponse представляет ответ с токеном
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
