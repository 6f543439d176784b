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
	"github.com/yourusername/quizify-api/internal/config"
	"github.com/yourusername/quizify-api/internal/domain/repository"
	"github.com/yourusername/quizify-api/internal/generation"
	"github.com/yourusername/quizify-api/internal/handler"
	"github.com/yourusername/quizify-api/internal/middleware"
	memRepo "github.com/yourusername/quizify-api/internal/repository/memory"
	pgRepo "github.com/yourusername/quizify-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/quizify-api/internal/repository/redis"
	"github.com/yourusername/quizify-api/internal/service"
	"github.com/yourusername/quizify-api/pkg/database"
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

	// Инициализируем хранилище: PostgreSQL или память (для локальной
	// разработки и демо без внешней БД)
	var quizRepo repository.QuizRepository
	var questionRepo repository.QuestionRepository
	var historyRepo repository.HistoryRepository

	switch cfg.Database.Driver {
	case "memory":
		log.Println("Используется хранилище в памяти (database.driver=memory)")
		storage := memRepo.NewStorage()
		quizRepo = storage
		questionRepo = storage.QuestionRepo()
		historyRepo = storage.HistoryRepo()
	default:
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

		quizRepo = pgRepo.NewQuizRepo(db)
		questionRepo = pgRepo.NewQuestionRepo(db)
		historyRepo = pgRepo.NewHistoryRepo(db)
	}

	// Инициализируем подключение к Redis с использованием унифицированной конфигурации
	redisClient, err := database.NewUniversalRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	log.Println("Successfully connected to Redis")

	stagingRepo, err := redisRepo.NewStagingRepo(
		redisClient,
		time.Duration(cfg.Staging.DraftTTLHours)*time.Hour,
		time.Duration(cfg.Staging.DocumentTTLHours)*time.Hour,
	)
	if err != nil {
		log.Printf("Failed to initialize StagingRepo: %v", err)
		os.Exit(1)
	}

	// Инициализируем внешний генератор
	provider, err := generation.NewOpenAIProvider(generation.OpenAIConfig{
		APIKey:  cfg.OpenAI.APIKey,
		Model:   cfg.OpenAI.Model,
		BaseURL: cfg.OpenAI.BaseURL,
	})
	if err != nil {
		log.Printf("Failed to initialize generation provider: %v", err)
		os.Exit(1)
	}

	// Инициализируем сервисы
	historyService := service.NewHistoryService(historyRepo)
	quizService := service.NewQuizService(quizRepo, questionRepo, provider, historyService)
	draftService := service.NewDraftService(stagingRepo, quizService)

	maxUploadBytes := cfg.Upload.MaxFileSizeBytes()

	// Инициализируем обработчики
	quizHandler := handler.NewQuizHandler(quizService, maxUploadBytes)
	draftHandler := handler.NewDraftHandler(draftService, maxUploadBytes)
	historyHandler := handler.NewHistoryHandler(historyService)

	// Инициализируем middleware
	rateLimiter := middleware.NewRateLimiter(redisClient)
	generationLimit := rateLimiter.Limit(middleware.GenerationRateLimitConfig())

	// Инициализируем роутер Gin
	router := gin.Default()

	isProduction := gin.Mode() == gin.ReleaseMode

	// Настройка доверенных прокси для корректной работы c.ClientIP()
	if isProduction {
		// Production: не доверять прокси-заголовкам
		// Если используете load balancer, замените nil на []string{"IP_БАЛАНСИРОВЩИКА"}
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		// Development: доверяем localhost
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Настройка CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.SessionKeyHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.SessionKeyHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Настраиваем маршруты API
	api := router.Group("/api")
	{
		// Викторины
		quizzes := api.Group("/quizzes")
		{
			quizzes.POST("/generate", generationLimit, quizHandler.GenerateQuiz)
			quizzes.POST("/generate-from-file", generationLimit, quizHandler.GenerateQuizFromFile)

			// Группа маршрутов, требующих quizID
			quizWithID := quizzes.Group("/:id")
			quizWithID.Use(middleware.ExtractUintParam("id", "quizID")) // Применяем middleware
			{
				quizWithID.GET("", quizHandler.GetQuiz)
				quizWithID.POST("/submit", quizHandler.SubmitAnswers)
			}
		}

		// Черновики (пошаговое создание); сессия выбирается заголовком X-Session-Key
		drafts := api.Group("/drafts")
		drafts.Use(middleware.SessionKey())
		{
			drafts.POST("/topic", draftHandler.StartTopicDraft)
			drafts.POST("/document", draftHandler.StartDocumentDraft)
			drafts.PUT("", draftHandler.ConfigureDraft)
			drafts.GET("", draftHandler.GetDraft)
			drafts.DELETE("", draftHandler.AbandonDraft)
			drafts.POST("/generate", generationLimit, draftHandler.GenerateFromDraft)
		}

		// История прохождений
		history := api.Group("/history")
		{
			history.GET("", historyHandler.ListHistory)
			history.GET("/export", historyHandler.ExportHistory)

			historyWithID := history.Group("/:quizId")
			historyWithID.Use(middleware.ExtractUintParam("quizId", "quizID"))
			{
				historyWithID.GET("", historyHandler.GetHistoryRecord)
				historyWithID.DELETE("", historyHandler.DeleteHistory)
			}
		}
	}

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	// Ждем сигнала остановки
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Graceful shutdown с таймаутом
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
