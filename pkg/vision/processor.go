// Package vision turns a per-frame stream of facial landmark positions into
// smoothed, debounced behavioral metrics: blink rate, head pose, gaze
// deviation, mood, and a bounded confidence score with cooldown-gated
// warnings.
//
// A Processor holds the state of exactly one interview session and is owned
// by a single goroutine; it performs no internal locking.
package vision

import (
	"errors"
	"math"

	"InterviewCoach/internal/entity"
)

const (
	defaultBlinkThreshold    = 0.25
	defaultBlinkConsecFrames = 3
	defaultMaxConfidence     = 100.0
	defaultMinConfidence     = 20.0
	defaultScoreDecay        = 1.4
	defaultScoreRecovery     = 1.0

	earWindowSize       = 12
	rapidBlinkLowSamples = 4

	movementCooldownFrames        = 15
	microexpressionCooldownFrames = 25
	microexpressionReportFloor    = 10
	calmFramesCap                 = 20
)

// ErrInsufficientLandmarks indicates a frame whose landmark set does not
// cover every index the extractor reads. Session state is untouched when it
// is returned.
var ErrInsufficientLandmarks = errors.New("landmark set is missing required points")

type Processor struct {
	blinkThreshold    float64
	blinkConsecFrames int
	maxConfidence     float64
	minConfidence     float64
	scoreDecay        float64
	scoreRecovery     float64

	recentEAR               []float64
	consecutiveBlinkFrames  int
	calmFrames              int
	movementCooldown        int
	microexpressionCooldown int
	lastSmileRatio          float64
	metrics                 Metrics
}

func NewProcessor() *Processor {
	p := &Processor{
		blinkThreshold:    defaultBlinkThreshold,
		blinkConsecFrames: defaultBlinkConsecFrames,
		maxConfidence:     defaultMaxConfidence,
		minConfidence:     defaultMinConfidence,
		scoreDecay:        defaultScoreDecay,
		scoreRecovery:     defaultScoreRecovery,
		recentEAR:         make([]float64, 0, earWindowSize),
	}
	p.Reset()
	return p
}

// Reset restores the session to its initial state: full confidence, zeroed
// counters and cooldowns, empty sample window.
func (p *Processor) Reset() {
	p.recentEAR = p.recentEAR[:0]
	p.consecutiveBlinkFrames = 0
	p.calmFrames = 0
	p.movementCooldown = 0
	p.microexpressionCooldown = 0
	p.lastSmileRatio = 0
	p.metrics = Metrics{
		ConfidenceScore: p.maxConfidence,
		MoodScore:       70.0,
		MoodLabel:       MoodNeutral,
	}
}

// ProcessNoFace handles a frame in which the detector found no face: the
// confidence decays (no multiplier) and the snapshot carries no geometry.
func (p *Processor) ProcessNoFace() Snapshot {
	p.metrics.ConfidenceScore = math.Max(p.minConfidence, p.metrics.ConfidenceScore-p.scoreDecay)
	return p.buildSnapshot(WarningNoFace, nil)
}

type frameGeometry struct {
	pitch         float64
	yaw           float64
	gaze          float64
	moodScore     float64
	moodLabel     string
	mouthActivity float64
}

// ProcessLandmarks runs the full per-frame pipeline over one landmark set.
// The set is validated before any state is touched, so a malformed frame
// leaves the session exactly as it was.
func (p *Processor) ProcessLandmarks(points []entity.Point) (Snapshot, error) {
	if len(points) < entity.MinFaceLandmarks {
		return Snapshot{}, ErrInsufficientLandmarks
	}

	earLeft := eyeAspectRatio(eyePoints(points, entity.LeftEyeContour))
	earRight := eyeAspectRatio(eyePoints(points, entity.RightEyeContour))
	ear := (earLeft + earRight) / 2
	p.pushEAR(ear)
	p.trackBlinks(ear)

	pitch, yaw := headPose(points)
	gaze := gazeDeviation(points)
	p.metrics.GazeDeviationScore = gaze

	moodScore, moodLabel, microexpression, mouthActivity := p.analyzeExpression(points, pitch, yaw, gaze)
	p.metrics.MoodScore = moodScore
	p.metrics.MoodLabel = moodLabel
	if microexpression != "" {
		p.metrics.Microexpression = microexpression
	}
	p.metrics.MouthActivityScore = mouthActivity

	warning := p.updateConfidence(pitch, yaw, gaze)

	return p.buildSnapshot(warning, &frameGeometry{
		pitch:         pitch,
		yaw:           yaw,
		gaze:          gaze,
		moodScore:     moodScore,
		moodLabel:     moodLabel,
		mouthActivity: mouthActivity,
	}), nil
}

// buildSnapshot assembles the wire payload. A frame without a fresh warning
// keeps reporting the stored one until confidence fully recovers. A flagged
// microexpression is reported while its cooldown is high and cleared once the
// cooldown drops below the report floor.
func (p *Processor) buildSnapshot(warning string, geom *frameGeometry) Snapshot {
	if warning == "" {
		warning = p.metrics.LastWarning
	}

	s := Snapshot{
		ConfidenceScore: round1(p.metrics.ConfidenceScore),
		BlinkCount:      p.metrics.BlinkCount,
		MovementAlerts:  p.metrics.HeadMovementEvents,
	}
	if warning != "" {
		s.Warning = &warning
	}

	if geom != nil {
		s.HeadPitch = floatPtr(round2(geom.pitch))
		s.HeadYaw = floatPtr(round2(geom.yaw))
		s.GazeDeviation = floatPtr(round3(geom.gaze))
		s.MoodScore = floatPtr(geom.moodScore)
		s.MoodLabel = geom.moodLabel
		s.MouthActivity = floatPtr(geom.mouthActivity)
	}

	if p.metrics.Microexpression != "" {
		s.Microexpression = p.metrics.Microexpression
		if p.microexpressionCooldown < microexpressionReportFloor {
			p.metrics.Microexpression = ""
		}
	}

	return s
}
