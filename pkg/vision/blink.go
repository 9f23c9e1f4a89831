package vision

// pushEAR appends one eye-aspect-ratio sample to the bounded window, evicting
// the oldest sample once the window is full.
func (p *Processor) pushEAR(ear float64) {
	if len(p.recentEAR) == earWindowSize {
		copy(p.recentEAR, p.recentEAR[1:])
		p.recentEAR = p.recentEAR[:earWindowSize-1]
	}
	p.recentEAR = append(p.recentEAR, ear)
}

// trackBlinks debounces the continuous ratio into discrete blink events: a
// run of at least blinkConsecFrames low-ratio frames counts as exactly one
// blink once the eye reopens. A single noisy low frame never counts.
func (p *Processor) trackBlinks(ear float64) {
	if ear < p.blinkThreshold {
		p.consecutiveBlinkFrames++
		return
	}
	if p.consecutiveBlinkFrames >= p.blinkConsecFrames {
		p.metrics.BlinkCount++
	}
	p.consecutiveBlinkFrames = 0
}

// rapidBlink is true only once the window holds a full 12 samples and more
// than 4 of them sit below the blink threshold.
func (p *Processor) rapidBlink() bool {
	if len(p.recentEAR) != earWindowSize {
		return false
	}
	low := 0
	for _, ear := range p.recentEAR {
		if ear < p.blinkThreshold {
			low++
		}
	}
	return low > rapidBlinkLowSamples
}
