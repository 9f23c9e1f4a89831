package interviewService

import (
	"InterviewCoach/internal/api/interview"
	contextPkg "InterviewCoach/pkg/context"
	"InterviewCoach/pkg/redis"
	"InterviewCoach/pkg/vision"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// metricsCacheTTL bounds how long the last snapshot of a session stays
// readable after the websocket goes away.
const metricsCacheTTL = 30 * time.Minute

func (s *interviewService) NewSession(ctx context.Context) (*Session, error) {
	sessionID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to generate session ULID")
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"session_id": sessionID,
	}).Info("Interview session started")

	return &Session{
		ID:        sessionID,
		processor: vision.NewProcessor(),
	}, nil
}

// ProcessFrame runs one camera frame through the landmark detector and the
// session's analysis pipeline. Frames that cannot be decoded, fail detection,
// or carry a malformed landmark set return an error and leave the session
// untouched; only a clean "no face" reply decays the score.
func (s *interviewService) ProcessFrame(ctx context.Context, session *Session, payload string) (interview.MetricsFrame, error) {
	if strings.TrimSpace(payload) == "" {
		return interview.MetricsFrame{}, interview.ErrEmptyFramePayload
	}

	frame, err := s.utils.DecodeBase64Frame(payload)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": session.ID,
			"error":      err.Error(),
		}).Warn("Frame payload is not valid base64")
		return interview.MetricsFrame{}, err
	}

	var snapshot vision.Snapshot

	result, err := s.detector.DetectLandmarks(frame)
	switch {
	case err != nil:
		s.log.WithFields(logrus.Fields{
			"session_id": session.ID,
			"error":      err.Error(),
		}).Warn("Landmark detection failed for frame")
		return interview.MetricsFrame{}, interview.ErrDetectionFailed

	case !result.FaceDetected:
		snapshot = session.processor.ProcessNoFace()

	default:
		snapshot, err = session.processor.ProcessLandmarks(result.Landmarks)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"session_id": session.ID,
				"landmarks":  len(result.Landmarks),
				"error":      err.Error(),
			}).Warn("Landmark set rejected")
			return interview.MetricsFrame{}, err
		}
	}

	metrics := interview.MetricsFrame{
		SessionID: session.ID,
		Snapshot:  snapshot,
	}

	s.cacheMetrics(ctx, session.ID, metrics)

	return metrics, nil
}

// cacheMetrics stores the latest snapshot for later retrieval over REST.
// Failures are logged and swallowed; the websocket stream never depends on
// the cache being up.
func (s *interviewService) cacheMetrics(ctx context.Context, sessionID string, metrics interview.MetricsFrame) {
	payload, err := json.Marshal(metrics)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("Failed to marshal metrics for cache")
		return
	}

	if err := s.cache.SetSessionMetrics(ctx, sessionID, payload, metricsCacheTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("Failed to cache session metrics")
	}
}

// EndSession tears down the per-connection state and drops the cached
// snapshot so a finished interview is no longer queryable.
func (s *interviewService) EndSession(ctx context.Context, session *Session) {
	if session == nil {
		return
	}

	if err := s.cache.DeleteSessionMetrics(ctx, session.ID); err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": session.ID,
			"error":      err.Error(),
		}).Warn("Failed to drop cached session metrics")
	}

	session.processor.Reset()

	s.log.WithFields(logrus.Fields{
		"session_id": session.ID,
	}).Info("Interview session ended")
}

func (s *interviewService) GetSessionMetrics(ctx context.Context, sessionID string) (json.RawMessage, error) {
	requestID := contextPkg.GetRequestID(ctx)

	payload, err := s.cache.GetSessionMetrics(ctx, sessionID)
	if err != nil {
		if errors.Is(err, redis.ErrNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"session_id": sessionID,
			}).Warn("No cached metrics for session")
			return nil, interview.ErrSessionNotFound
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to read cached session metrics")
		return nil, err
	}

	return payload, nil
}
