// Package mathx provides small numeric helpers that extend the standard math package.
package mathx

import "math"

// DefaultRelTol is the relative tolerance used by [Close] callers that don't have a better value.
const DefaultRelTol = 1e-9

// Close reports whether x and y are close in value.
// Two values are considered close when the difference between them is within at least one of the tolerances:
// relTol is relative to the larger magnitude of the two values, and absTol is an absolute difference.
// Either tolerance may be zero to disable it.
//
// Infinities are only close to themselves, and NaN is never close to anything.
func Close(x, y, relTol, absTol float64) bool {
	if x == y {
		return true
	}
	if math.IsInf(x, 0) || math.IsInf(y, 0) {
		return false
	}
	diff := math.Abs(x - y)
	return diff <= math.Abs(relTol*math.Max(math.Abs(x), math.Abs(y))) || diff <= math.Abs(absTol)
}
