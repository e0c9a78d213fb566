package gortrace

import "math"

// A small epsilon value for floating-point comparisons to avoid precision errors.
// Every geometric predicate goes through the Float* family below; changing it
// moves primitive edges in the rendered image.
const epsilon = 1e-6

// FloatEqual reports whether a and b differ by less than epsilon.
func FloatEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// FloatGreater is a strict a > b that excludes values within epsilon.
func FloatGreater(a, b float64) bool {
	return a > b && !FloatEqual(a, b)
}

// FloatLess is a strict a < b that excludes values within epsilon.
func FloatLess(a, b float64) bool {
	return a < b && !FloatEqual(a, b)
}

func FloatLessOrEqual(a, b float64) bool {
	return a < b || FloatEqual(a, b)
}

func FloatGreaterOrEqual(a, b float64) bool {
	return a > b || FloatEqual(a, b)
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
