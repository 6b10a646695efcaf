package anim

import "math"

// Curve maps linear progress in [0, 1] to eased progress.
type Curve func(float64) float64

// Linear applies no easing.
func Linear(t float64) float64 {
	return t
}

// EaseOut starts quickly and decelerates. Sheet transitions use it.
var EaseOut = CubicBezier(0.0, 0.0, 0.2, 1.0)

// EaseInOut starts and ends slowly.
var EaseInOut = CubicBezier(0.4, 0.0, 0.2, 1.0)

// CubicBezier returns an easing curve matching CSS cubic-bezier(x1, y1, x2, y2).
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		for range 8 {
			x := bezier(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return bezier(y1, y2, clampUnit(u))
			}
			dx := bezierSlope(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Newton did not converge, bisect.
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for range 20 {
			x := bezier(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) / 2
		}
		return bezier(y1, y2, u)
	}
}

func bezier(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func bezierSlope(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(v float64) float64 {
	return max(0, min(v, 1))
}
