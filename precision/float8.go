package precision

// Micro-float E4M3: 1 sign bit, 4 exponent bits (bias 7), 3 mantissa
// bits. The all-ones exponent field is reserved for infinity; this
// profile does not represent NaN distinctly from infinity. Mantissa
// narrowing truncates instead of rounding to nearest, a deliberate
// simplicity trade-off.

const float8InfBits = float8ExpMask << float8ExpShift // 0x78

// EncodeFloat8 compresses a float32 into E4M3 micro-float bits.
// Magnitudes at or above 2^8 (and NaN) saturate to signed infinity;
// magnitudes below the subnormal range drop to signed zero.
func EncodeFloat8(value float32) uint8 {
	bits := EncodeFloat32(value)
	sign := uint8(bits>>(float32SignShift-float8SignShift)) & (1 << float8SignShift)
	exp32 := int(bits>>float32ExpShift) & int(float32ExpMask)
	mant3 := uint8(bits>>float32ToFloat8MantShift) & float8MantMask

	// Binary32 zeros and subnormals sit far below the micro-float
	// subnormal range.
	if exp32 == 0 {
		return sign
	}

	exp := exp32 - float32ExpBias + float8ExpBias
	if exp >= int(float8ExpMask) {
		// Overflow, infinity, and NaN all saturate to signed infinity.
		return sign | float8InfBits
	}
	if exp <= 0 {
		// Subnormal: shift the implicit-1 mantissa right until the
		// exponent reaches the minimum. Shifts past the field width
		// drop to signed zero.
		shift := uint(1 - exp)
		if shift > float8MantBits {
			return sign
		}
		return sign | (float8HiddenBit|mant3)>>shift
	}
	return sign | uint8(exp)<<float8ExpShift | mant3
}

// DecodeFloat8 expands E4M3 micro-float bits into a float32. Every
// 8-bit pattern is a legal input; all-ones exponent patterns decode to
// signed infinity regardless of mantissa.
func DecodeFloat8(bits uint8) float32 {
	sign := uint32(bits&(1<<float8SignShift)) << (float32SignShift - float8SignShift)
	exp := int(bits>>float8ExpShift) & int(float8ExpMask)
	mant := bits & float8MantMask

	switch {
	case exp == int(float8ExpMask):
		return DecodeFloat32(sign | 0x7F800000)
	case exp == 0:
		if mant == 0 {
			return DecodeFloat32(sign)
		}
		// Subnormal: left-normalize the mantissa, tracking the exponent
		// down from the format minimum, mirroring the encode shift.
		e := 1 - float8ExpBias
		for mant&float8HiddenBit == 0 {
			mant <<= 1
			e--
		}
		exp32 := uint32(e + float32ExpBias)
		mant32 := uint32(mant&float8MantMask) << float32ToFloat8MantShift
		return DecodeFloat32(sign | exp32<<float32ExpShift | mant32)
	default:
		exp32 := uint32(exp - float8ExpBias + float32ExpBias)
		mant32 := uint32(mant) << float32ToFloat8MantShift
		return DecodeFloat32(sign | exp32<<float32ExpShift | mant32)
	}
}
