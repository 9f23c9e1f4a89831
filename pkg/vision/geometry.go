package vision

import (
	"InterviewCoach/internal/entity"
	"math"
)

const epsilon = 1e-6

func euclidean(a, b entity.Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func eyePoints(points []entity.Point, contour [6]int) [6]entity.Point {
	var eye [6]entity.Point
	for i, idx := range contour {
		eye[i] = points[idx]
	}
	return eye
}

// eyeAspectRatio computes (|p2-p6| + |p3-p5|) / (2 * |p1-p4|) over the six
// ordered eye contour points. Degenerate geometry (zero horizontal span)
// yields 0 rather than a division by zero.
func eyeAspectRatio(eye [6]entity.Point) float64 {
	vertical := euclidean(eye[1], eye[5]) + euclidean(eye[2], eye[4])
	horizontal := euclidean(eye[0], eye[3])
	if horizontal == 0 {
		return 0
	}
	return vertical / (2.0 * horizontal)
}

// headPose derives pitch and yaw in degrees. Yaw is the angle of the
// ear-to-ear vector in the image plane; pitch the angle of the vector from
// the ear midpoint to the nose tip, using its depth and vertical components.
func headPose(points []entity.Point) (pitch, yaw float64) {
	nose := points[entity.NoseTip]
	leftEar := points[entity.LeftEarTragion]
	rightEar := points[entity.RightEarTragion]

	yaw = degrees(math.Atan2(rightEar.Y-leftEar.Y, rightEar.X-leftEar.X))

	midY := (leftEar.Y + rightEar.Y) / 2
	midZ := (leftEar.Z + rightEar.Z) / 2
	pitch = degrees(math.Atan2(nose.Z-midZ, nose.Y-midY))
	return pitch, yaw
}

// gazeDeviation measures how far the irises sit from the eye centers:
// 0 means perfectly centered, values approach 0.5 as the iris reaches a
// corner.
func gazeDeviation(points []entity.Point) float64 {
	left := gazeRatio(eyePoints(points, entity.LeftEyeContour), points[entity.LeftIris])
	right := gazeRatio(eyePoints(points, entity.RightEyeContour), points[entity.RightIris])
	return math.Abs((left+right)/2 - 0.5)
}

func gazeRatio(eye [6]entity.Point, iris entity.Point) float64 {
	innerCorner := eye[0]
	outerCorner := eye[3]
	span := euclidean(innerCorner, outerCorner)
	if span == 0 {
		return 0.5
	}
	return euclidean(iris, innerCorner) / span
}

type expressionGeometry struct {
	smileRatio         float64
	mouthActivityRatio float64
	browGap            float64
}

func measureExpression(points []entity.Point) expressionGeometry {
	mouthWidth := euclidean(points[entity.MouthLeft], points[entity.MouthRight])
	mouthHeight := euclidean(points[entity.MouthTop], points[entity.MouthBottom])

	eyeLeft := points[entity.LeftEyeOuter]
	eyeRight := points[entity.RightEyeOuter]
	interOcular := euclidean(eyeLeft, eyeRight)
	browGap := (euclidean(points[entity.LeftBrow], eyeLeft) +
		euclidean(points[entity.RightBrow], eyeRight)) / (2 * math.Max(interOcular, epsilon))

	return expressionGeometry{
		smileRatio:         mouthWidth / math.Max(mouthHeight, epsilon),
		mouthActivityRatio: mouthHeight / math.Max(mouthWidth, epsilon),
		browGap:            browGap,
	}
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
