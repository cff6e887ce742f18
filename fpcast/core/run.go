package core

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/teleprint-me/precision-go/precision"
)

// ErrUnknownFormat is returned when a format name is not recognized.
var ErrUnknownFormat = errors.New("fpcast: unknown format")

// ParseFormat maps a CLI format name to a precision.Format. Both the
// short tags (f16) and the descriptor names (binary16) are accepted.
func ParseFormat(name string) (precision.Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "f32", "binary32", "float32":
		return precision.F32, nil
	case "f16", "binary16", "float16", "half":
		return precision.F16, nil
	case "bf16", "bfloat16":
		return precision.BF16, nil
	case "f8", "e4m3", "float8":
		return precision.F8, nil
	default:
		return precision.F32, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Encode parses decimal values, compresses each into format f, and
// prints one line per value.
func Encode(w io.Writer, f precision.Format, values []string, verbose bool) error {
	d := precision.Lookup(f)
	for _, raw := range values {
		v, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return fmt.Errorf("parse %q: %w", raw, err)
		}
		x := precision.EncodeFlex(float32(v), f)
		if verbose {
			fmt.Fprintf(w, "%s\n", precision.Describe(f, x.Bits()))
			continue
		}
		fmt.Fprintf(w, "0x%0*x\n", int(d.TotalBits/4), x.Bits())
	}
	return nil
}

// Decode parses hex bit patterns in format f and prints the decoded
// values, one per line.
func Decode(w io.Writer, f precision.Format, words []string, verbose bool) error {
	d := precision.Lookup(f)
	for _, raw := range words {
		s := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(raw)), "0x")
		bits, err := strconv.ParseUint(s, 16, int(d.TotalBits))
		if err != nil {
			return fmt.Errorf("parse bits %q: %w", raw, err)
		}
		x := precision.FlexFromBits(uint32(bits), f)
		if verbose {
			fmt.Fprintf(w, "%s\n", precision.Describe(f, x.Bits()))
			continue
		}
		fmt.Fprintf(w, "%g (%s)\n", x.Decode(), x.Class())
	}
	return nil
}

// Table prints every representable bit pattern of an 8-bit format in
// field notation. Wider formats get their layout summary instead; a
// 65536-line or 4-billion-line dump helps nobody.
func Table(w io.Writer, f precision.Format) error {
	d := precision.Lookup(f)
	if d.TotalBits > 8 {
		fmt.Fprintf(w, "%s: %d bits = 1 sign + %d exponent (bias %d) + %d mantissa, exponents %d..%d\n",
			d.Name, d.TotalBits, d.ExponentBits, d.Bias, d.MantissaBits,
			d.MinExponent(), d.MaxExponent())
		return nil
	}
	for i := 0; i < 1<<d.TotalBits; i++ {
		fmt.Fprintf(w, "%s\n", precision.Describe(f, uint32(i)))
	}
	return nil
}

// Verify round-trips each value through format f and reports per-value
// results. It returns precision.ErrRoundTrip (wrapped) if any value
// fails, after printing all of them.
func Verify(w io.Writer, f precision.Format, values []string, relative, absolute float64) error {
	var failed bool
	for _, raw := range values {
		v, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return fmt.Errorf("parse %q: %w", raw, err)
		}
		if err := precision.VerifyRoundTrip(f, float32(v), relative, absolute); err != nil {
			failed = true
			fmt.Fprintf(w, "FAIL %s\n", err)
			continue
		}
		fmt.Fprintf(w, "ok   %g [%s]\n", v, f)
	}
	if failed {
		return fmt.Errorf("%w: one or more values failed verification", precision.ErrRoundTrip)
	}
	return nil
}
