package precision

import "math"

// IsClose reports whether two finite computed results are approximately
// equal within the given tolerances. NaN and infinity operands always
// compare false, even against themselves: the predicate validates
// finite results, and an infinite or undefined magnitude has no
// meaningful distance. Exactly equal finite operands compare true
// (covering exact integers and zero) before any tolerance math.
// Otherwise the difference is checked against
// max(relative*max(|a|,|b|), absolute). Negative tolerances are a
// caller contract violation and are not guarded here.
func IsClose(a, b, relative, absolute float64) bool {
	// Reject non-finite operands before the equality shortcut: IEEE
	// equality holds for Inf == Inf, which must still compare false.
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	if a == b {
		return true
	}
	tolerance := math.Max(relative*math.Max(math.Abs(a), math.Abs(b)), absolute)
	return math.Abs(a-b) <= tolerance
}
