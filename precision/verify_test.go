package precision

import (
	"errors"
	"math"
	"testing"
)

func TestVerifyRoundTripExact(t *testing.T) {
	// Values exactly representable in every format round-trip with zero
	// tolerance.
	for _, v := range []float32{0, 1, -1, 0.5, 2, 1.5, -240} {
		for _, f := range []Format{F32, F16, BF16, F8} {
			if err := VerifyRoundTrip(f, v, 0, 0); err != nil {
				t.Errorf("VerifyRoundTrip(%v, %g): %v", f, v, err)
			}
		}
	}
}

func TestVerifyRoundTripTolerance(t *testing.T) {
	// 1.001 is not representable in f8 (truncates to 1.0) but passes
	// with a loose relative tolerance.
	if err := VerifyRoundTrip(F8, 1.001, 1e-2, 0); err != nil {
		t.Errorf("loose tolerance: %v", err)
	}
	err := VerifyRoundTrip(F8, 1.1, 1e-3, 0)
	if err == nil {
		t.Fatal("tight tolerance should fail for f8 truncation loss")
	}
	if !errors.Is(err, ErrRoundTrip) {
		t.Errorf("error does not wrap ErrRoundTrip: %v", err)
	}
}

func TestVerifyRoundTripSpecials(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	for _, f := range []Format{F32, F16, BF16, F8} {
		if err := VerifyRoundTrip(f, nan, 1e-3, 0); err != nil {
			t.Errorf("NaN through %v: %v", f, err)
		}
		if err := VerifyRoundTrip(f, inf, 1e-3, 0); err != nil {
			t.Errorf("+Inf through %v: %v", f, err)
		}
		if err := VerifyRoundTrip(f, -inf, 1e-3, 0); err != nil {
			t.Errorf("-Inf through %v: %v", f, err)
		}
	}

	// Finite values that saturate to the format's infinity are accepted.
	if err := VerifyRoundTrip(F16, 65520, 1e-3, 0); err != nil {
		t.Errorf("f16 saturation: %v", err)
	}
	if err := VerifyRoundTrip(F8, 300, 1e-3, 0); err != nil {
		t.Errorf("f8 saturation: %v", err)
	}
}
