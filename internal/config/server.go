package config

import (
	"InterviewCoach/database/postgres"
	interviewHandler "InterviewCoach/internal/api/interview/handler"
	interviewService "InterviewCoach/internal/api/interview/service"
	questionHandler "InterviewCoach/internal/api/question/handler"
	questionRepository "InterviewCoach/internal/api/question/repository"
	questionService "InterviewCoach/internal/api/question/service"
	"InterviewCoach/internal/middleware"
	"InterviewCoach/pkg/landmark"
	"InterviewCoach/pkg/nlp"
	"InterviewCoach/pkg/redis"
	"InterviewCoach/pkg/utils"
	"context"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine           *fiber.App
	db               *sqlx.DB
	log              *logrus.Logger
	middleware       middleware.Middleware
	validator        *validator.Validate
	utils            utils.IUtils
	handlers         []handler
	redisServer      redis.IRedis
	landmarkDetector landmark.IDetector
	questionService  questionService.IQuestionService
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

func WithLandmarkDetector(detector landmark.IDetector) ServerOption {
	return func(s *Server) error {
		s.landmarkDetector = detector
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

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Question Bank Domain
	questionRepo := questionRepository.New(s.db, s.log)
	scorer := nlp.NewScorer()
	questionServices := questionService.NewQuestionService(s.log, questionRepo, scorer, s.utils)
	questionHandlers := questionHandler.New(s.log, s.validator, s.middleware, questionServices)
	s.questionService = questionServices

	// Interview Session Domain
	interviewServices := interviewService.NewInterviewService(s.log, s.landmarkDetector, s.redisServer, s.utils)
	interviewHandlers := interviewHandler.New(s.log, s.middleware, interviewServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, questionHandlers, interviewHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	for _, h := range s.handlers {
		h.Start(router)
	}

	if s.questionService != nil {
		if err := s.questionService.EnsureDefaultQuestions(context.Background()); err != nil {
			s.log.Errorf("Failed to seed default questions: %v", err)
		}
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	if err := s.engine.Listen(fmt.Sprintf(":%s", port)); err != nil {
		if s.landmarkDetector != nil {
			s.landmarkDetector.Close()
		}
		return err
	}

	return nil
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
