package vision

import (
	"testing"

	"InterviewCoach/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func processFrame(t *testing.T, p *Processor, pts []entity.Point) Snapshot {
	t.Helper()
	snapshot, err := p.ProcessLandmarks(pts)
	require.NoError(t, err)
	return snapshot
}

func TestBlinkCountedAfterThreeClosedFrames(t *testing.T) {
	p := NewProcessor()

	open := neutralFace()
	closed := neutralFace()
	closeEyes(closed)

	processFrame(t, p, open)
	for i := 0; i < 3; i++ {
		processFrame(t, p, closed)
	}
	snapshot := processFrame(t, p, open)

	assert.Equal(t, 1, snapshot.BlinkCount)
}

func TestShortClosureIsNotABlink(t *testing.T) {
	p := NewProcessor()

	open := neutralFace()
	closed := neutralFace()
	closeEyes(closed)

	processFrame(t, p, open)
	processFrame(t, p, closed)
	processFrame(t, p, closed)
	snapshot := processFrame(t, p, open)

	assert.Equal(t, 0, snapshot.BlinkCount)
}

func TestRapidBlinkWarning(t *testing.T) {
	p := NewProcessor()

	open := neutralFace()
	closed := neutralFace()
	closeEyes(closed)

	// Fill the 12-sample window with 8 low frames: two closed, one open,
	// repeated. The final frame has no head or gaze anomaly, so the rapid
	// blink warning wins.
	var snapshot Snapshot
	for i := 0; i < 4; i++ {
		processFrame(t, p, closed)
		processFrame(t, p, closed)
		snapshot = processFrame(t, p, open)
	}

	require.NotNil(t, snapshot.Warning)
	assert.Equal(t, WarningRapidBlink, *snapshot.Warning)
}

func TestHeadMovementEventGatedByCooldown(t *testing.T) {
	p := NewProcessor()

	turned := neutralFace()
	turnHead(turned)

	var snapshot Snapshot
	for i := 0; i < 15; i++ {
		snapshot = processFrame(t, p, turned)
	}
	assert.Equal(t, 1, snapshot.MovementAlerts)

	// Cooldown expires on the 16th consecutive frame and the event counts
	// again.
	snapshot = processFrame(t, p, turned)
	assert.Equal(t, 2, snapshot.MovementAlerts)

	require.NotNil(t, snapshot.Warning)
	assert.Equal(t, WarningHeadMovement, *snapshot.Warning)
}

func TestConfidenceDecaysToFloor(t *testing.T) {
	p := NewProcessor()

	turned := neutralFace()
	turnHead(turned)

	var snapshot Snapshot
	for i := 0; i < 50; i++ {
		snapshot = processFrame(t, p, turned)
	}

	assert.Equal(t, 20.0, snapshot.ConfidenceScore)
}

func TestWarningPersistsUntilFullRecovery(t *testing.T) {
	p := NewProcessor()

	turned := neutralFace()
	turnHead(turned)
	calm := neutralFace()

	for i := 0; i < 5; i++ {
		processFrame(t, p, turned)
	}

	// First calm frame: confidence is still recovering, so the last warning
	// keeps being reported.
	snapshot := processFrame(t, p, calm)
	assert.Less(t, snapshot.ConfidenceScore, 100.0)
	require.NotNil(t, snapshot.Warning)
	assert.Equal(t, WarningHeadMovement, *snapshot.Warning)

	for i := 0; i < 30; i++ {
		snapshot = processFrame(t, p, calm)
	}
	assert.Equal(t, 100.0, snapshot.ConfidenceScore)
	assert.Nil(t, snapshot.Warning)
}

func TestRecoveryEscalatesWithCalmStreak(t *testing.T) {
	p := NewProcessor()

	turned := neutralFace()
	turnHead(turned)
	calm := neutralFace()

	for i := 0; i < 20; i++ {
		processFrame(t, p, turned)
	}
	before := p.metrics.ConfidenceScore

	processFrame(t, p, calm)
	firstBoost := p.metrics.ConfidenceScore - before

	for i := 0; i < 25; i++ {
		processFrame(t, p, turned)
	}
	for i := 0; i < 19; i++ {
		processFrame(t, p, calm)
	}
	before = p.metrics.ConfidenceScore
	processFrame(t, p, calm)
	cappedBoost := p.metrics.ConfidenceScore - before

	assert.InDelta(t, 1.05, firstBoost, 0.0001)
	assert.InDelta(t, 2.0, cappedBoost, 0.0001)
}

func TestLookingAwayWarning(t *testing.T) {
	p := NewProcessor()

	away := neutralFace()
	lookAway(away)

	snapshot := processFrame(t, p, away)

	require.NotNil(t, snapshot.Warning)
	assert.Equal(t, WarningLookingAway, *snapshot.Warning)
	require.NotNil(t, snapshot.GazeDeviation)
	assert.InDelta(t, 0.3, *snapshot.GazeDeviation, 0.001)
	assert.InDelta(t, 98.6, snapshot.ConfidenceScore, 0.001)
}

func TestHeadMovementOutranksGaze(t *testing.T) {
	p := NewProcessor()

	pts := neutralFace()
	turnHead(pts)
	lookAway(pts)

	snapshot := processFrame(t, p, pts)

	require.NotNil(t, snapshot.Warning)
	assert.Equal(t, WarningHeadMovement, *snapshot.Warning)
}

func TestNoFaceDecaysWithoutGeometry(t *testing.T) {
	p := NewProcessor()

	snapshot := p.ProcessNoFace()

	assert.InDelta(t, 98.6, snapshot.ConfidenceScore, 0.001)
	require.NotNil(t, snapshot.Warning)
	assert.Equal(t, WarningNoFace, *snapshot.Warning)
	assert.Nil(t, snapshot.HeadPitch)
	assert.Nil(t, snapshot.HeadYaw)
	assert.Nil(t, snapshot.GazeDeviation)
	assert.Nil(t, snapshot.MoodScore)
	assert.Empty(t, snapshot.MoodLabel)
}

func TestMalformedLandmarksLeaveStateUntouched(t *testing.T) {
	p := NewProcessor()

	processFrame(t, p, neutralFace())
	before := p.metrics

	_, err := p.ProcessLandmarks(make([]entity.Point, 10))
	assert.ErrorIs(t, err, ErrInsufficientLandmarks)
	assert.Equal(t, before, p.metrics)
}

func TestResetRestoresDefaults(t *testing.T) {
	p := NewProcessor()

	closed := neutralFace()
	closeEyes(closed)
	turnHead(closed)
	for i := 0; i < 10; i++ {
		processFrame(t, p, closed)
	}

	p.Reset()

	assert.Equal(t, 100.0, p.metrics.ConfidenceScore)
	assert.Equal(t, 0, p.metrics.BlinkCount)
	assert.Equal(t, 0, p.metrics.HeadMovementEvents)
	assert.Equal(t, 70.0, p.metrics.MoodScore)
	assert.Equal(t, MoodNeutral, p.metrics.MoodLabel)
	assert.Empty(t, p.metrics.LastWarning)
}

func TestMoodLabels(t *testing.T) {
	p := NewProcessor()

	snapshot := processFrame(t, p, neutralFace())
	assert.Equal(t, MoodEngaged, snapshot.MoodLabel)

	narrowMouth := neutralFace()
	narrowMouth[entity.MouthLeft] = entity.Point{X: 160, Y: 200}
	narrowMouth[entity.MouthRight] = entity.Point{X: 170, Y: 200}

	p.Reset()
	snapshot = processFrame(t, p, narrowMouth)
	assert.Equal(t, MoodNeutral, snapshot.MoodLabel)

	tense := neutralFace()
	tense[entity.MouthLeft] = entity.Point{X: 160, Y: 200}
	tense[entity.MouthRight] = entity.Point{X: 170, Y: 200}
	lookAway(tense)

	p.Reset()
	snapshot = processFrame(t, p, tense)
	assert.Equal(t, MoodTense, snapshot.MoodLabel)
	require.NotNil(t, snapshot.MoodScore)
	assert.Less(t, *snapshot.MoodScore, 40.0)
}

func TestMicroexpressionReportWindow(t *testing.T) {
	p := NewProcessor()

	face := neutralFace()

	// The very first frame jumps from a zero baseline, so it flags a
	// microexpression immediately.
	snapshot := processFrame(t, p, face)
	assert.Equal(t, "Detected sudden facial change", snapshot.Microexpression)

	// The flag keeps being reported while the cooldown is high.
	for i := 0; i < 15; i++ {
		snapshot = processFrame(t, p, face)
		assert.NotEmpty(t, snapshot.Microexpression)
	}

	// Final reported frame, then the flag clears.
	snapshot = processFrame(t, p, face)
	assert.NotEmpty(t, snapshot.Microexpression)

	snapshot = processFrame(t, p, face)
	assert.Empty(t, snapshot.Microexpression)
}

func TestMouthActivityClamped(t *testing.T) {
	p := NewProcessor()

	snapshot := processFrame(t, p, neutralFace())
	require.NotNil(t, snapshot.MouthActivity)
	assert.Equal(t, 100.0, *snapshot.MouthActivity)

	// Closed mouth: height near zero drives the activity to the floor.
	quiet := neutralFace()
	quiet[entity.MouthTop] = entity.Point{X: 165, Y: 200}
	quiet[entity.MouthBottom] = entity.Point{X: 165, Y: 201}

	p.Reset()
	snapshot = processFrame(t, p, quiet)
	require.NotNil(t, snapshot.MouthActivity)
	assert.Equal(t, 0.0, *snapshot.MouthActivity)
}
