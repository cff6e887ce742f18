package precision

// Binary16 conversion uses the multiplicative range-compression
// technique: scaling by a large power of two pushes any binary32
// exponent that would overflow the half-precision window into binary32
// overflow, so IEEE multiply semantics perform the saturation and the
// round-to-nearest-even mantissa rounding for free. The magic constants
// below are binary32 bit patterns of exact powers of two.
const (
	f16ScaleToInf  uint32 = 0x77800000 // 0x1p+112
	f16ScaleToZero uint32 = 0x08800000 // 0x1p-110
	f16ExpScale    uint32 = 0x07800000 // 0x1p-112

	f16QuietNaN uint16 = 0x7E00
	f16Infinity uint16 = 0x7C00
)

// EncodeFloat16 compresses a float32 into IEEE 754 binary16 bits with
// round-to-nearest-even. Values at or beyond 65520 saturate to infinity;
// values below the binary16 subnormal range flush to signed zero. NaN
// maps to the canonical quiet pattern with the sign preserved.
func EncodeFloat16(value float32) uint16 {
	w := EncodeFloat32(value)
	shl1w := w + w // exponent byte moves to the top of the word
	sign := w & float32SignBit

	abs := DecodeFloat32(w &^ float32SignBit)
	saturated := abs * DecodeFloat32(f16ScaleToInf)
	base := saturated * DecodeFloat32(f16ScaleToZero)

	// Exponent bias selects the sticky window for subnormal results.
	bias := shl1w & 0xFF000000
	if bias < 0x71000000 {
		bias = 0x71000000
	}
	base = DecodeFloat32((bias>>1)+f16ExpScale) + base

	bits := EncodeFloat32(base)
	expBits := (bits >> 13) & 0x00007C00
	mantBits := bits & 0x00000FFF
	nonsign := uint16(expBits + mantBits)

	// Exponent byte all-ones in the doubled pattern means the input was
	// infinity or NaN; force the canonical quiet patterns.
	if shl1w >= 0xFF000000 {
		if shl1w > 0xFF000000 {
			nonsign = f16QuietNaN
		} else {
			nonsign = f16Infinity
		}
	}
	return uint16(sign>>16) | nonsign
}

// DecodeFloat16 expands IEEE 754 binary16 bits into a float32. Every
// 16-bit pattern is a legal input.
func DecodeFloat16(bits uint16) float32 {
	w := uint32(bits) << 16
	sign := w & float32SignBit
	two := w + w

	// Normal path: widen the exponent into the binary32 window, then
	// rescale. Inf and NaN ride through the multiply untouched.
	expOffset := uint32(0xE0) << float32ExpShift
	normalized := DecodeFloat32((two>>4)+expOffset) * DecodeFloat32(f16ExpScale)

	// Subnormal path: plant the mantissa behind a magic exponent and
	// subtract the bias so the hardware normalizes it.
	magicMask := uint32(126) << float32ExpShift
	denormalized := DecodeFloat32((two>>17)|magicMask) - 0.5

	denormCutoff := uint32(1) << 27
	result := EncodeFloat32(normalized)
	if two < denormCutoff {
		result = EncodeFloat32(denormalized)
	}
	return DecodeFloat32(sign | result)
}
