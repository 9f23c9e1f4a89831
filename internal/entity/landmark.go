package entity

// Face-mesh landmark indices, MediaPipe convention with refined iris
// landmarks enabled. Points are in pixel space: x and y scaled by the frame
// dimensions, z in the same horizontal scale as x.
const (
	NoseTip         = 1
	LeftEyeOuter    = 33
	LeftBrow        = 105
	LeftEarTragion  = 234
	RightEyeOuter   = 263
	RightBrow       = 334
	RightEarTragion = 454
	LeftIris        = 468
	RightIris       = 473

	MouthLeft   = 61
	MouthRight  = 291
	MouthTop    = 13
	MouthBottom = 14

	// MinFaceLandmarks is the smallest landmark count that covers every
	// index above (the right iris is the highest one used).
	MinFaceLandmarks = RightIris + 1
)

// Eye contour points ordered [p1..p6] for the aspect-ratio formula.
var (
	LeftEyeContour  = [6]int{33, 160, 158, 133, 153, 144}
	RightEyeContour = [6]int{362, 385, 387, 263, 373, 380}
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// LandmarkResult is one detector reply for one frame. FaceDetected false
// with empty Landmarks is a normal outcome, not an error.
type LandmarkResult struct {
	FaceDetected bool    `json:"face_detected"`
	Landmarks    []Point `json:"landmarks"`
}
