package errors

import (
	"math"
)

// ValidateFinite rejects NaN and infinite values. The name identifies the
// offending field in the message (e.g. "from.x").
func ValidateFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidCoordinate, "%s must be a finite number, got %g", name, v)
	}
	return nil
}

// ValidateClearance checks that a clearance is finite and non-negative.
// Every derivation in the router assumes the approach point lies on the
// facing side of its anchor, which a negative clearance would invert.
func ValidateClearance(c float64) error {
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return New(ErrCodeInvalidClearance, "clearance must be a finite number, got %g", c)
	}
	if c < 0 {
		return New(ErrCodeInvalidClearance, "clearance must be non-negative, got %g", c)
	}
	return nil
}

// ValidateBias checks that a midline bias lies in [0, 1].
func ValidateBias(b float64) error {
	if math.IsNaN(b) || b < 0 || b > 1 {
		return New(ErrCodeInvalidBias, "bias must be within [0, 1], got %g", b)
	}
	return nil
}

// ValidateWorkers checks a worker pool size. Zero means "use the default".
func ValidateWorkers(n int) error {
	if n < 0 {
		return New(ErrCodeInvalidConfig, "workers must be non-negative, got %d", n)
	}
	const maxWorkers = 1024
	if n > maxWorkers {
		return New(ErrCodeInvalidConfig, "workers too large (max %d), got %d", maxWorkers, n)
	}
	return nil
}
