package format

import "time"

// Pulse keyframes for the paused label.
const (
	PulseHalf   = time.Second // one direction, 1.0 -> 0.4
	PulsePeriod = 2 * PulseHalf

	pulseStart = 1.0
	pulseMid   = 0.7 // reached at PulseHalf/2
	pulseEnd   = 0.4
)

// Pulse returns the label opacity at the given time since the pause began.
// The value falls linearly through the keyframes 1.0, 0.7, 0.4 over one
// second, then climbs back, and repeats.
func Pulse(elapsed time.Duration) float32 {
	if elapsed < 0 {
		elapsed = 0
	}
	t := elapsed % PulsePeriod
	if t > PulseHalf {
		t = PulsePeriod - t
	}
	return PulseAt(float32(t) / float32(PulseHalf))
}

// PulseAt maps a progress value in [0,1] of the forward half onto opacity.
func PulseAt(progress float32) float32 {
	switch {
	case progress <= 0:
		return pulseStart
	case progress >= 1:
		return pulseEnd
	case progress <= 0.5:
		return pulseStart + (pulseMid-pulseStart)*(progress/0.5)
	default:
		return pulseMid + (pulseEnd-pulseMid)*((progress-0.5)/0.5)
	}
}
