// Package precision converts numeric values between binary32 (the native
// single-precision format) and three reduced-width floating-point
// formats: binary16 (IEEE 754 half precision), bfloat16, and an 8-bit
// E4M3 micro-float.
//
// This package defines three "families" of functions:
//   - EncodeXxxx() compresses a float32 into the raw bits of a narrower format.
//   - DecodeXxxx() expands raw bits of a narrower format back into a float32.
//   - Lookup/Classify/Describe inspect formats and raw bit patterns
//     without converting them.
//
// Every conversion is a pure, total function over value types: every bit
// pattern of the stated width is a legal decode input, and every finite,
// infinite, or NaN float is a legal encode input. Special values (zero,
// subnormal, infinity, NaN) are ordinary branches of the algorithms,
// never error conditions, so no function in this package returns an
// error or panics. There is no shared mutable state; any number of
// goroutines may call any function concurrently without coordination.
package precision

// Format identifies one of the floating-point layouts handled by this
// package.
type Format byte

// Floating-point formats
const (
	F32  Format = iota // IEEE 754 binary32
	F16                // IEEE 754 binary16 (half precision)
	BF16               // Google Brain bfloat16
	F8                 // 8-bit micro-float, E4M3 layout

	// FormatCount is the number of defined formats.
	FormatCount
)

// String implements fmt.Stringer
func (f Format) String() string {
	switch f {
	case F32:
		return "f32"
	case F16:
		return "f16"
	case BF16:
		return "bf16"
	case F8:
		return "f8"
	default:
		return "<invalid>"
	}
}

// Class is the derived classification of a raw bit pattern. It is never
// stored; it is recomputed from the exponent and mantissa fields on
// demand.
type Class byte

// Bit pattern classes
const (
	Zero      Class = iota // both fields zero
	Subnormal              // exponent field zero, mantissa nonzero
	Normal                 // exponent field strictly between zero and all-ones
	Infinity               // exponent field all-ones, mantissa zero
	NaN                    // exponent field all-ones, mantissa nonzero
)

// String implements fmt.Stringer
func (c Class) String() string {
	switch c {
	case Zero:
		return "zero"
	case Subnormal:
		return "subnormal"
	case Normal:
		return "normal"
	case Infinity:
		return "infinity"
	case NaN:
		return "nan"
	default:
		return "<invalid>"
	}
}
