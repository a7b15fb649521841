package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/database/postgres"
	blogHandler "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/api/blog/handler"
	blogRepository "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/api/blog/repository"
	blogService "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/api/blog/service"
	directoryHandler "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/api/directory/handler"
	directoryRepository "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/api/directory/repository"
	directoryService "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/api/directory/service"
	triageHandler "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/api/triage/handler"
	triageRepository "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/api/triage/repository"
	triageService "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/api/triage/service"
	voiceHandler "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/api/voice/handler"
	voiceRepository "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/api/voice/repository"
	voiceService "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/api/voice/service"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/middleware"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/catalog"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/gemini"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/redis"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/s3"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/triage"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/utils"
	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/whisper"
)

type ServerOption func(*Server) error

type Server struct {
	engine       *fiber.App
	db           *sqlx.DB
	log          *logrus.Logger
	middleware   middleware.Middleware
	validator    *validator.Validate
	utils        utils.IUtils
	handlers     []handler
	redisServer  redis.IRedis
	geminiClient gemini.IGemini
	transcriber  whisper.ITranscriber
	s3Client     s3.ItfS3
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithGeminiClient() ServerOption {
	return func(s *Server) error {
		client, err := gemini.NewGeminiClient()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to create Gemini client: %v", err)
			}
			return fmt.Errorf("failed to create Gemini client: %w", err)
		}
		s.geminiClient = client
		return nil
	}
}

func WithTranscriber() ServerOption {
	return func(s *Server) error {
		s.transcriber = whisper.NewTranscriber()
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Triage Domain
	engine := triage.NewEngine(catalog.Trades(), catalog.Cities())
	triageRepo := triageRepository.New(s.db, s.log)
	triageServices := triageService.NewTriageService(s.log, engine, triageRepo, s.redisServer, s.utils)
	triageHandlers := triageHandler.New(s.log, s.validator, s.middleware, triageServices)

	// Voice Domain
	voiceRepo := voiceRepository.New(s.db, s.log)
	voiceServices := voiceService.NewVoiceService(s.log, voiceRepo, s.geminiClient, s.transcriber, s.utils)
	voiceHandlers := voiceHandler.New(s.log, s.validator, s.middleware, voiceServices, s.utils)

	// Directory Domain
	directoryRepo := directoryRepository.New(s.db, s.log)
	directoryServices := directoryService.NewDirectoryService(s.log, directoryRepo, s.redisServer, s.s3Client, s.utils)
	directoryHandlers := directoryHandler.New(s.log, s.validator, s.middleware, directoryServices)

	// Blog Domain
	blogRepo := blogRepository.New(s.db, s.log)
	blogServices := blogService.NewBlogsService(s.log, blogRepo, s.s3Client, s.utils)
	blogHandlers := blogHandler.New(s.log, s.validator, s.middleware, blogServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, triageHandlers, voiceHandlers, directoryHandlers, blogHandlers)
}

func (s *Server) Run() error {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	router := s.engine.Group("/api/v1")

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
