package color

// Gradient returns steps colors blended linearly from start to end, both included.
func Gradient(start, end Color, steps int) []Color {
	switch {
	case steps <= 0:
		return nil
	case steps == 1:
		return []Color{start}
	}
	out := make([]Color, steps)
	for i := range steps {
		out[i] = start.Interpolate(end, float64(i)/float64(steps-1))
	}
	return out
}

// PulseGradient goes from base to bright in the first half and back in the second.
func PulseGradient(base, bright Color, steps int) []Color {
	if steps <= 0 {
		return nil
	}
	half := steps / 2
	out := make([]Color, 0, steps)
	for i := range half {
		out = append(out, base.Interpolate(bright, float64(i)/float64(half)))
	}
	rest := steps - half
	for i := range rest {
		out = append(out, bright.Interpolate(base, float64(i)/float64(rest)))
	}
	return out
}

// HCLGradient is Gradient blended in HCL space.
func HCLGradient(start, end Color, steps int) []Color {
	switch {
	case steps <= 0:
		return nil
	case steps == 1:
		return []Color{start}
	}
	out := make([]Color, steps)
	for i := range steps {
		out[i] = start.BlendHCL(end, float64(i)/float64(steps-1))
	}
	return out
}
