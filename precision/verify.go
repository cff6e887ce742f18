package precision

import (
	"errors"
	"fmt"
	"math"
)

// ErrRoundTrip is returned by VerifyRoundTrip when a value does not
// survive an encode/decode cycle within the given tolerances.
var ErrRoundTrip = errors.New("precision: round trip outside tolerance")

// VerifyRoundTrip encodes value into format f, decodes it back, and
// checks the result with IsClose. Lossy behavior that the formats define
// on purpose is accepted: NaN must come back as NaN (or as infinity for
// F8, which folds the two), infinity must keep its sign, and finite
// values that saturate to the format's infinity pass as long as the
// encoded pattern really is an infinity.
func VerifyRoundTrip(f Format, value float32, relative, absolute float64) error {
	x := EncodeFlex(value, f)
	got := x.Decode()

	v64 := float64(value)
	switch {
	case math.IsNaN(v64):
		if x.Class() == NaN || (f == F8 && x.Class() == Infinity) {
			return nil
		}
		return fmt.Errorf("%w: NaN encoded as %s", ErrRoundTrip, Describe(f, x.Bits()))
	case math.IsInf(v64, 0):
		if x.Class() == Infinity && math.Signbit(v64) == math.Signbit(float64(got)) {
			return nil
		}
		return fmt.Errorf("%w: infinity encoded as %s", ErrRoundTrip, Describe(f, x.Bits()))
	case x.Class() == Infinity:
		// Finite input saturated.
		return nil
	}

	if !IsClose(v64, float64(got), relative, absolute) {
		return fmt.Errorf("%w: %g -> %s -> %g (rel=%g abs=%g)",
			ErrRoundTrip, value, Describe(f, x.Bits()), got, relative, absolute)
	}
	return nil
}
