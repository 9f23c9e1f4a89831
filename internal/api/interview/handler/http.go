package interviewHandler

import (
	interviewService "InterviewCoach/internal/api/interview/service"
	"InterviewCoach/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type InterviewHandler struct {
	log              *logrus.Logger
	middleware       middleware.Middleware
	interviewService interviewService.IInterviewService
}

func New(
	log *logrus.Logger,
	middleware middleware.Middleware,
	is interviewService.IInterviewService,
) *InterviewHandler {
	return &InterviewHandler{
		log:              log,
		middleware:       middleware,
		interviewService: is,
	}
}

func (h *InterviewHandler) Start(srv fiber.Router) {
	wsMiddleware := func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}

	interview := srv.Group("/interview")
	interview.Use("/ws", wsMiddleware)
	interview.Get("/ws", websocket.New(h.handleInterviewWebSocket))

	interview.Get("/sessions/:id/metrics", h.GetSessionMetrics)
}
