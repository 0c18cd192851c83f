package core

import "math"

const defaultEpsilon = 1e-12

// Unit scale factors used when converting annotated instrument values to SI.
const (
	MHz         = 1e6
	Microsecond = 1e-6
)

// ClampInt limits value to the inclusive range [min, max].
func ClampInt(value, min, max int) int {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// DBPowerToLinear converts dB to linear power (10*log10 convention).
func DBPowerToLinear(db float64) float64 {
	return math.Pow(10, db/10)
}

// LinearPowerToDB converts linear power to dB (10*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearPowerToDB(power float64) float64 {
	if power < 0 {
		return math.NaN()
	}

	if power == 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(power)
}

// PowerRatioDB returns |10*log10(a) - 10*log10(b)| for two linear power samples.
// Two zero samples are 0 dB apart; a single zero sample is +Inf dB away.
// Negative input yields NaN.
func PowerRatioDB(a, b float64) float64 {
	if a < 0 || b < 0 {
		return math.NaN()
	}

	switch {
	case a == 0 && b == 0:
		return 0
	case a == 0 || b == 0:
		return math.Inf(1)
	}

	return math.Abs(10 * math.Log10(a/b))
}
