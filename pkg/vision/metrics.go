package vision

import "math"

// Mood labels reported to the client.
const (
	MoodEngaged = "Engaged"
	MoodNeutral = "Neutral"
	MoodTense   = "Tense"
)

const (
	WarningHeadMovement = "Too much head movement detected."
	WarningLookingAway  = "Maintain eye contact with the camera."
	WarningRapidBlink   = "Blinking rapidly detected."
	WarningNoFace       = "Face not detected"

	microexpressionMessage = "Detected sudden facial change"
)

// Metrics is the per-session running state reported back to the client.
// BlinkCount and HeadMovementEvents never decrease within a session.
type Metrics struct {
	BlinkCount         int
	ConfidenceScore    float64
	LastWarning        string
	GazeDeviationScore float64
	HeadMovementEvents int
	MoodScore          float64
	MoodLabel          string
	Microexpression    string
	MouthActivityScore float64
}

// Snapshot is the wire form of one processed frame. Warning serializes as an
// explicit null when no warning is active; the geometry fields are omitted
// entirely on frames where no face was found.
type Snapshot struct {
	ConfidenceScore float64  `json:"confidence_score"`
	BlinkCount      int      `json:"blink_count"`
	Warning         *string  `json:"warning"`
	MovementAlerts  int      `json:"movement_alerts"`
	HeadPitch       *float64 `json:"head_pitch,omitempty"`
	HeadYaw         *float64 `json:"head_yaw,omitempty"`
	GazeDeviation   *float64 `json:"gaze_deviation,omitempty"`
	MoodScore       *float64 `json:"mood_score,omitempty"`
	MoodLabel       string   `json:"mood_label,omitempty"`
	Microexpression string   `json:"microexpression,omitempty"`
	MouthActivity   *float64 `json:"mouth_activity,omitempty"`
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }

func floatPtr(v float64) *float64 { return &v }
