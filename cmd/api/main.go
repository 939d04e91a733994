package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/moral-quiz-api/internal/config"
	"github.com/yourusername/moral-quiz-api/internal/handler"
	"github.com/yourusername/moral-quiz-api/internal/middleware"
	pgRepo "github.com/yourusername/moral-quiz-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/moral-quiz-api/internal/repository/redis"
	"github.com/yourusername/moral-quiz-api/internal/service"
	"github.com/yourusername/moral-quiz-api/internal/service/scoring"
	"github.com/yourusername/moral-quiz-api/pkg/auth"
	"github.com/yourusername/moral-quiz-api/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к Redis
	redisClient, err := database.NewUniversalRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}

	// Репозитории
	userRepo := pgRepo.NewUserRepo(db)
	resultRepo := pgRepo.NewResultRepo(db)

	cacheRepo, err := redisRepo.NewCacheRepo(redisClient)
	if err != nil {
		log.Printf("Failed to create cache repo: %v", err)
		os.Exit(1)
	}
	sessionRepo, err := redisRepo.NewSessionRepo(cacheRepo)
	if err != nil {
		log.Printf("Failed to create session repo: %v", err)
		os.Exit(1)
	}

	// Сервисы
	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpirationHrs)

	scorer := scoring.NewScorer(scoring.Policy{
		KeywordWeight:   cfg.Quiz.KeywordWeight,
		LengthBonusStep: cfg.Quiz.LengthBonusStep,
		MaxLengthBonus:  cfg.Quiz.MaxLengthBonus,
		MaxScore:        cfg.Quiz.MaxScore,
		MinAnswerLength: cfg.Quiz.MinAnswerLength,
	})

	quizService := service.NewQuizService(resultRepo, userRepo, sessionRepo, scorer, cfg.Quiz.SessionTTL())
	resultService := service.NewResultService(resultRepo)
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo)
	exportService := service.NewExportService()

	var emailService service.EmailService
	if cfg.Email.ResendAPIKey != "" {
		from := cfg.Email.FromAddress
		if cfg.Email.FromName != "" {
			from = cfg.Email.FromName + " <" + cfg.Email.FromAddress + ">"
		}
		emailService, err = service.NewResendEmailService(cfg.Email.ResendAPIKey, from)
		if err != nil {
			log.Printf("Failed to create email service: %v", err)
			os.Exit(1)
		}
	} else {
		log.Println("RESEND_API_KEY не задан, отправка писем отключена")
		emailService = &service.NoopEmailService{}
	}

	chatService := service.NewChatService(
		cfg.Gemini.APIKey,
		cfg.Gemini.Model,
		time.Duration(cfg.Gemini.TimeoutSec)*time.Second,
		cacheRepo,
		quizService,
		resultRepo,
		time.Duration(cfg.Gemini.MinIntervalSec)*time.Second,
		cfg.Gemini.DailyLimit,
	)

	// Обработчики
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	authHandler := handler.NewAuthHandler(authService, userService)
	quizHandler := handler.NewQuizHandler(quizService)
	historyHandler := handler.NewHistoryHandler(resultService, userService, exportService, emailService)
	chatHandler := handler.NewChatHandler(chatService)
	wsChatHandler := handler.NewWSChatHandler(chatService)

	// Роутер
	router := gin.Default()

	if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
		log.Printf("Warning: failed to set trusted proxies: %v", err)
	}

	// Настройка CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Маршруты API
	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		usersGroup := api.Group("/users")
		usersGroup.Use(authMiddleware.RequireAuth())
		{
			usersGroup.GET("/me", authHandler.Me)
			usersGroup.GET("/me/stats", authHandler.Stats)
		}

		quizGroup := api.Group("/quiz")
		{
			quizGroup.GET("/aspects", quizHandler.ListAspects)

			sessionGroup := quizGroup.Group("/session")
			sessionGroup.Use(authMiddleware.RequireAuth())
			{
				sessionGroup.POST("", quizHandler.StartSession)
				sessionGroup.GET("", quizHandler.CurrentQuestion)
				sessionGroup.POST("/answer", quizHandler.SubmitAnswer)
				sessionGroup.POST("/previous", quizHandler.MoveToPrevious)
				sessionGroup.GET("/progress", quizHandler.Progress)
				sessionGroup.DELETE("", quizHandler.AbandonSession)
			}
		}

		historyGroup := api.Group("/history")
		historyGroup.Use(authMiddleware.RequireAuth())
		{
			historyGroup.GET("", historyHandler.List)
			historyGroup.GET("/:id", historyHandler.Get)
			historyGroup.DELETE("/:id", historyHandler.Delete)
			historyGroup.GET("/:id/export", historyHandler.Export)
			historyGroup.POST("/:id/email", historyHandler.Email)
		}

		chatGroup := api.Group("/chat")
		chatGroup.Use(authMiddleware.RequireAuth())
		{
			chatGroup.POST("/ask", chatHandler.Ask)
			chatGroup.POST("/help", chatHandler.Help)
			chatGroup.POST("/explain", chatHandler.Explain)
			chatGroup.POST("/discuss", chatHandler.Discuss)
		}
	}

	// WebSocket-чат: токен передаётся query-параметром
	router.GET("/ws/chat", authMiddleware.RequireAuth(), wsChatHandler.HandleConnection)

	// HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	// Ожидаем сигнал остановки
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Server exited properly")
}
