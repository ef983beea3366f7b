package scrollpos

// EasingFunc maps time progress t in [0, 1] to value progress in [0, 1].
type EasingFunc func(t float64) float64

var (
	// EaseLinear - constant speed.
	EaseLinear EasingFunc = func(t float64) float64 { return t }

	// EaseOutCubic - smooth deceleration, the default for tab glides.
	EaseOutCubic EasingFunc = func(t float64) float64 {
		t--
		return t*t*t + 1
	}

	// EaseInOutQuad - accelerate then decelerate.
	EaseInOutQuad EasingFunc = func(t float64) float64 {
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t
	}
)
