package questionHandler

import (
	questionService "InterviewCoach/internal/api/question/service"
	"InterviewCoach/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type QuestionHandler struct {
	log             *logrus.Logger
	validator       *validator.Validate
	middleware      middleware.Middleware
	questionService questionService.IQuestionService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	qs questionService.IQuestionService,
) *QuestionHandler {
	return &QuestionHandler{
		log:             log,
		validator:       validate,
		middleware:      middleware,
		questionService: qs,
	}
}

func (h *QuestionHandler) Start(srv fiber.Router) {
	questions := srv.Group("/questions")

	// Transcript scoring registered before the :id routes so it is not
	// captured as a path parameter.
	questions.Post("/transcript", h.middleware.NewRateLimiter, h.EvaluateTranscript)

	questions.Get("", h.GetAllQuestions)
	questions.Get("/:id", h.GetQuestionByID)

	questions.Post("/", h.middleware.NewRateLimiter, h.CreateQuestion)
	questions.Put("/:id", h.middleware.NewRateLimiter, h.UpdateQuestion)
	questions.Delete("/:id", h.middleware.NewRateLimiter, h.DeleteQuestion)
}
