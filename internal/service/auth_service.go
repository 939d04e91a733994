package service

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/yourusername/moral-quiz-api/internal/domain/entity"
	"github.com/yourusername/moral-quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/moral-quiz-api/internal/pkg/errors"
	"github.com/yourusername/moral-quiz-api/pkg/auth"
)

// AuthService отвечает за регистрацию и вход пользователей
type AuthService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService создает новый сервис аутентификации
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register создает нового пользователя и возвращает его вместе с токеном
func (s *AuthService) Register(username, email, password string) (*entity.User, string, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if username == "" || email == "" || len(password) < 8 {
		return nil, "", fmt.Errorf("%w: username, email and password (min 8 chars) are required", apperrors.ErrValidation)
	}

	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return nil, "", apperrors.ErrConflict
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, "", err
	}
	if _, err := s.userRepo.GetByUsername(username); err == nil {
		return nil, "", apperrors.ErrConflict
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, "", err
	}

	user := &entity.User{
		Username: username,
		Email:    email,
		Password: password, // хешируется в BeforeSave
		Role:     "user",
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, "", err
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}

	log.Printf("[AuthService] Зарегистрирован пользователь %d (%s)", user.ID, user.Email)
	return user, token, nil
}

// Login проверяет учётные данные и возвращает пользователя с токеном
func (s *AuthService) Login(email, password string) (*entity.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", apperrors.ErrUnauthorized
		}
		return nil, "", err
	}

	if !user.CheckPassword(password) {
		return nil, "", apperrors.ErrUnauthorized
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
