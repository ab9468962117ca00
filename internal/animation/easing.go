package animation

// Easing maps linear progress in [0,1] to eased progress in [0,1].
type Easing func(t float64) float64

// Linear is the identity curve.
func Linear(t float64) float64 {
	return clamp01(t)
}

// EaseIn starts slow (quadratic).
func EaseIn(t float64) float64 {
	t = clamp01(t)
	return t * t
}

// EaseOut ends slow (quadratic).
func EaseOut(t float64) float64 {
	t = clamp01(t)
	return t * (2 - t)
}

// EaseInOut is slow at both ends.
func EaseInOut(t float64) float64 {
	t = clamp01(t)
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
