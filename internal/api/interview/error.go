package interview

import "errors"

var (
	// ErrSessionNotFound means no metrics snapshot is cached for the
	// requested session; it either never existed or already expired.
	ErrSessionNotFound = errors.New("session metrics not found")

	ErrEmptyFramePayload = errors.New("frame payload is empty")

	// ErrDetectionFailed scopes a landmark-service failure to one frame; the
	// session and its metrics are left untouched.
	ErrDetectionFailed = errors.New("landmark detection failed")
)
