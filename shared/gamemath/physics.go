package gamemath

import "math"

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speedX, friction float64) float64 {
	if speedX > friction {
		return speedX - friction
	}
	if speedX < -friction {
		return speedX + friction
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Clamp clamps v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// InputDirection folds held left/right flags into -1, 0 or 1.
// Both held cancel out.
func InputDirection(left, right bool) float64 {
	switch {
	case left && !right:
		return -1
	case right && !left:
		return 1
	}
	return 0
}

// Damp scales speed and snaps tiny results to zero.
func Damp(speed, factor float64) float64 {
	v := speed * factor
	if math.Abs(v) < 1e-3 {
		return 0
	}
	return v
}
