package interview

import "InterviewCoach/pkg/vision"

// FramePayload is one inbound websocket message: a single camera frame,
// base64-encoded (plain or as a data URL).
type FramePayload struct {
	Image string `json:"image"`
}

// SessionGreeting is the first message pushed after the websocket upgrade.
type SessionGreeting struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

// FrameError is sent in place of a metrics frame when a single frame could
// not be processed. The connection stays open.
type FrameError struct {
	Error     string `json:"error"`
	SessionID string `json:"session_id"`
}

// MetricsFrame is the per-frame websocket reply: the behavioral snapshot
// tagged with the owning session.
type MetricsFrame struct {
	SessionID string `json:"session_id"`
	vision.Snapshot
}
