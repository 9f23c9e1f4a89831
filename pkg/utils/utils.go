package utils

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

var ErrInvalidBase64 = errors.New("invalid base64 frame payload")

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	DecodeBase64Frame(payload string) ([]byte, error)
}

type utils struct{}

func New() IUtils {
	return &utils{}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

// DecodeBase64Frame decodes a frame payload sent by the browser. Payloads
// may arrive as plain base64 or as a data URL ("data:image/jpeg;base64,...");
// only the part after the last comma is decoded.
func (u *utils) DecodeBase64Frame(payload string) ([]byte, error) {
	if idx := strings.LastIndex(payload, ","); idx >= 0 {
		payload = payload[idx+1:]
	}

	frame, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrInvalidBase64
	}
	if len(frame) == 0 {
		return nil, ErrInvalidBase64
	}

	return frame, nil
}
