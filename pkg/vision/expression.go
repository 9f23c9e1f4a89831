package vision

import (
	"InterviewCoach/internal/entity"
	"math"
)

// analyzeExpression scores the facial mood from mouth and brow geometry,
// penalized by head motion and gaze deviation, and watches for abrupt
// frame-to-frame smile changes (microexpressions) behind a cooldown.
func (p *Processor) analyzeExpression(points []entity.Point, pitch, yaw, gaze float64) (moodScore float64, moodLabel, microexpression string, mouthActivity float64) {
	geom := measureExpression(points)

	moodScore = 60.0
	moodScore += (geom.smileRatio - 2.5) * 12
	moodScore += (geom.browGap - 0.05) * 50
	moodScore -= (math.Abs(pitch) + math.Abs(yaw)) * 0.5
	moodScore -= gaze * 70
	moodScore = clamp(moodScore, 0, 100)

	switch {
	case moodScore > 70:
		moodLabel = MoodEngaged
	case moodScore < 40:
		moodLabel = MoodTense
	default:
		moodLabel = MoodNeutral
	}

	if p.microexpressionCooldown > 0 {
		p.microexpressionCooldown--
	}
	if math.Abs(geom.smileRatio-p.lastSmileRatio) > 1.0 && p.microexpressionCooldown == 0 {
		microexpression = microexpressionMessage
		p.microexpressionCooldown = microexpressionCooldownFrames
	}

	mouthActivity = clamp((geom.mouthActivityRatio-0.06)*1600, 0, 100)

	p.lastSmileRatio = geom.smileRatio
	return round1(moodScore), moodLabel, microexpression, round1(mouthActivity)
}
