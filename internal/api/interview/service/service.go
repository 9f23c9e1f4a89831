package interviewService

import (
	"InterviewCoach/internal/api/interview"
	"InterviewCoach/pkg/landmark"
	"InterviewCoach/pkg/redis"
	"InterviewCoach/pkg/utils"
	"InterviewCoach/pkg/vision"
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"
)

// Session is the per-connection analysis state. It is owned by the websocket
// goroutine that created it and must not be shared.
type Session struct {
	ID        string
	processor *vision.Processor
}

type IInterviewService interface {
	NewSession(ctx context.Context) (*Session, error)
	ProcessFrame(ctx context.Context, session *Session, payload string) (interview.MetricsFrame, error)
	EndSession(ctx context.Context, session *Session)
	GetSessionMetrics(ctx context.Context, sessionID string) (json.RawMessage, error)
}

type interviewService struct {
	log      *logrus.Logger
	detector landmark.IDetector
	cache    redis.IRedis
	utils    utils.IUtils
}

func NewInterviewService(
	log *logrus.Logger,
	detector landmark.IDetector,
	cache redis.IRedis,
	utils utils.IUtils,
) IInterviewService {
	return &interviewService{
		log:      log,
		detector: detector,
		cache:    cache,
		utils:    utils,
	}
}
