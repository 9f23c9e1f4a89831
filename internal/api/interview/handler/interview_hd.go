package interviewHandler

import (
	"InterviewCoach/internal/api/interview"
	contextPkg "InterviewCoach/pkg/context"
	"InterviewCoach/pkg/handlerUtil"
	"InterviewCoach/pkg/log"
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"golang.org/x/net/context"
)

func (h *InterviewHandler) handleInterviewWebSocket(c *websocket.Conn) {
	ctx := context.Background()

	session, err := h.interviewService.NewSession(ctx)
	if err != nil {
		h.log.Errorf("Failed to start interview session: %v", err)
		_ = c.WriteJSON(map[string]string{"error": "failed to start session"})
		return
	}

	h.log.Infof("Interview WebSocket client connected, session %s", session.ID)
	defer func() {
		h.interviewService.EndSession(ctx, session)
		h.log.Infof("Interview WebSocket client disconnected, session %s", session.ID)
	}()

	c.SetPingHandler(func(data string) error {
		h.log.Debug("Received ping, sending pong")
		if err := c.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(5*time.Second)); err != nil {
			h.log.Errorf("Error sending pong: %v", err)
		}
		return nil
	})

	greeting := interview.SessionGreeting{
		Type:      "session_started",
		SessionID: session.ID,
		Message:   "Interview session ready. Send frames as {\"image\": \"<base64>\"}.",
		Timestamp: time.Now().Unix(),
	}
	if err := c.WriteJSON(greeting); err != nil {
		h.log.Errorf("Error sending session greeting: %v", err)
		return
	}

	maxReadTimeout := 60 * time.Second

	for {
		if err := c.SetReadDeadline(time.Now().Add(maxReadTimeout)); err != nil {
			h.log.Errorf("Error setting read deadline: %v", err)
			break
		}

		messageType, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Errorf("Interview WebSocket error: %v", err)
			} else {
				h.log.Info("Interview WebSocket connection closed")
			}
			break
		}

		if messageType != websocket.TextMessage {
			h.log.Warnf("Received unexpected message type: %d", messageType)
			continue
		}

		var payload interview.FramePayload
		if err := json.Unmarshal(message, &payload); err != nil {
			if writeErr := c.WriteJSON(interview.FrameError{
				Error:     "invalid frame message",
				SessionID: session.ID,
			}); writeErr != nil {
				h.log.Errorf("Error sending error response: %v", writeErr)
				break
			}
			continue
		}

		metrics, err := h.interviewService.ProcessFrame(ctx, session, payload.Image)
		if err != nil {
			h.log.Warnf("Error processing frame for session %s: %v", session.ID, err)
			if writeErr := c.WriteJSON(interview.FrameError{
				Error:     err.Error(),
				SessionID: session.ID,
			}); writeErr != nil {
				h.log.Errorf("Error sending error response: %v", writeErr)
				break
			}
			continue
		}

		if err := c.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
			h.log.Errorf("Error setting write deadline: %v", err)
			break
		}

		if err := c.WriteJSON(metrics); err != nil {
			h.log.Errorf("Error writing metrics frame: %v", err)
			break
		}

		if err := c.SetWriteDeadline(time.Time{}); err != nil {
			h.log.Errorf("Error resetting write deadline: %v", err)
			break
		}
	}
}

func (h *InterviewHandler) GetSessionMetrics(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get session metrics request")

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("session ID is required"), ctx.Path())
	}

	payload, err := h.interviewService.GetSessionMetrics(c, id)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_session_metrics")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return ctx.Status(fiber.StatusOK).Send(payload)
	}
}
