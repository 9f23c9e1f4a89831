package vision

import (
	"testing"

	"InterviewCoach/internal/entity"
	"github.com/stretchr/testify/assert"
)

// neutralFace builds a synthetic landmark set for a forward-facing subject
// with open eyes, centered irises, and a wide smile. Tests mutate individual
// regions to provoke specific behaviors.
func neutralFace() []entity.Point {
	pts := make([]entity.Point, entity.MinFaceLandmarks)
	set := func(idx int, x, y, z float64) {
		pts[idx] = entity.Point{X: x, Y: y, Z: z}
	}

	le := entity.LeftEyeContour
	set(le[0], 100, 100, 0)
	set(le[1], 110, 95, 0)
	set(le[2], 120, 95, 0)
	set(le[3], 130, 100, 0)
	set(le[4], 120, 105, 0)
	set(le[5], 110, 105, 0)

	re := entity.RightEyeContour
	set(re[0], 200, 100, 0)
	set(re[1], 210, 95, 0)
	set(re[2], 220, 95, 0)
	set(re[3], 230, 100, 0)
	set(re[4], 220, 105, 0)
	set(re[5], 210, 105, 0)

	set(entity.LeftIris, 115, 100, 0)
	set(entity.RightIris, 215, 100, 0)

	set(entity.LeftEarTragion, 80, 100, 0)
	set(entity.RightEarTragion, 250, 100, 0)
	set(entity.NoseTip, 165, 160, 0)

	set(entity.MouthLeft, 140, 200, 0)
	set(entity.MouthRight, 190, 200, 0)
	set(entity.MouthTop, 165, 195, 0)
	set(entity.MouthBottom, 165, 205, 0)

	set(entity.LeftBrow, 110, 70, 0)
	set(entity.RightBrow, 220, 70, 0)

	return pts
}

func closeEyes(pts []entity.Point) {
	for _, contour := range [][6]int{entity.LeftEyeContour, entity.RightEyeContour} {
		pts[contour[1]].Y = 99
		pts[contour[2]].Y = 99
		pts[contour[4]].Y = 101
		pts[contour[5]].Y = 101
	}
}

func lookAway(pts []entity.Point) {
	pts[entity.LeftIris].X = 124
	pts[entity.RightIris].X = 224
}

func turnHead(pts []entity.Point) {
	pts[entity.RightEarTragion].Y = 170
}

func tiltHead(pts []entity.Point) {
	pts[entity.NoseTip].Z = 30
}

func TestEyeAspectRatio(t *testing.T) {
	pts := neutralFace()

	open := eyeAspectRatio(eyePoints(pts, entity.LeftEyeContour))
	assert.InDelta(t, 0.3333, open, 0.001)

	closeEyes(pts)
	closed := eyeAspectRatio(eyePoints(pts, entity.LeftEyeContour))
	assert.InDelta(t, 0.0667, closed, 0.001)
}

func TestEyeAspectRatioDegenerateGeometry(t *testing.T) {
	var eye [6]entity.Point
	assert.Equal(t, 0.0, eyeAspectRatio(eye))
}

func TestHeadPoseNeutral(t *testing.T) {
	pitch, yaw := headPose(neutralFace())
	assert.InDelta(t, 0, pitch, 0.001)
	assert.InDelta(t, 0, yaw, 0.001)
}

func TestHeadPoseTurnAndTilt(t *testing.T) {
	pts := neutralFace()
	turnHead(pts)
	_, yaw := headPose(pts)
	assert.Greater(t, yaw, 20.0)

	pts = neutralFace()
	tiltHead(pts)
	pitch, _ := headPose(pts)
	assert.Greater(t, pitch, 15.0)
}

func TestPitchIgnoresHorizontalNoseOffset(t *testing.T) {
	pts := neutralFace()
	tiltHead(pts)
	pitch, _ := headPose(pts)

	// Pitch reads only the depth and vertical components of the
	// nose-to-ear-midpoint vector; sliding the nose sideways changes nothing.
	pts[entity.NoseTip].X += 40
	shifted, _ := headPose(pts)
	assert.Equal(t, pitch, shifted)
}

func TestGazeDeviation(t *testing.T) {
	pts := neutralFace()
	assert.InDelta(t, 0, gazeDeviation(pts), 0.001)

	lookAway(pts)
	assert.InDelta(t, 0.3, gazeDeviation(pts), 0.001)
}

func TestGazeRatioDegenerateSpan(t *testing.T) {
	var eye [6]entity.Point
	assert.Equal(t, 0.5, gazeRatio(eye, entity.Point{X: 1}))
}
