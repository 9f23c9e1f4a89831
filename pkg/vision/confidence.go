package vision

import "math"

// updateConfidence evaluates the frame's anomalies in priority order (head
// movement, then gaze, then rapid blinking), applies the asymmetric
// decay/recovery to the confidence score, and returns the warning raised this
// frame, if any.
//
// Head-movement events are counted behind a 15-frame cooldown so a sustained
// head turn registers once, not once per frame. Recovery escalates with
// consecutive calm frames, capped at 20; reaching full confidence clears the
// stored warning.
func (p *Processor) updateConfidence(pitch, yaw, gaze float64) string {
	excessiveHead := math.Abs(pitch) > 15 || math.Abs(yaw) > 20
	lookingAway := gaze > 0.2
	rapidBlink := p.rapidBlink()

	if p.movementCooldown > 0 {
		p.movementCooldown--
	}

	var warning string
	switch {
	case excessiveHead:
		warning = WarningHeadMovement
		if p.movementCooldown == 0 {
			p.metrics.HeadMovementEvents++
			p.movementCooldown = movementCooldownFrames
		}
	case lookingAway:
		warning = WarningLookingAway
	case rapidBlink:
		warning = WarningRapidBlink
	}

	if warning != "" {
		p.calmFrames = 0
		penalty := 1.0
		if excessiveHead {
			penalty = 1.5
		} else if rapidBlink {
			penalty = 1.2
		}
		p.metrics.ConfidenceScore = math.Max(p.minConfidence, p.metrics.ConfidenceScore-p.scoreDecay*penalty)
		p.metrics.LastWarning = warning
	} else {
		if p.calmFrames < calmFramesCap {
			p.calmFrames++
		}
		boost := p.scoreRecovery * (1 + float64(p.calmFrames)/float64(calmFramesCap))
		p.metrics.ConfidenceScore = math.Min(p.maxConfidence, p.metrics.ConfidenceScore+boost)
		if p.metrics.ConfidenceScore == p.maxConfidence {
			p.metrics.LastWarning = ""
		}
	}

	return warning
}
