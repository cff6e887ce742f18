package precision

const (
	// bfloat16 quiet-NaN bit (top bit of the 7-bit mantissa field).
	bfloat16QuietBit uint16 = 0x0040

	// bfloat16 exponent field, shifted into position.
	bfloat16ExpField = bfloat16ExpMask << bfloat16ExpShift
)

// EncodeBFloat16 truncates a float32 into bfloat16 bits with
// round-half-to-even on the discarded low 16 bits. NaN inputs keep their
// top mantissa bits and are forced quiet. Binary32 subnormals flush to
// signed zero rather than being renormalized; the full bfloat16 format
// keeps them, but this codec deliberately trades them away since they
// sit far below bfloat16's smallest normal anyway.
func EncodeBFloat16(value float32) uint16 {
	bits := EncodeFloat32(value)

	if bits&0x7FFFFFFF > 0x7F800000 { // NaN
		return uint16(bits>>16) | bfloat16QuietBit
	}
	if bits&0x7F800000 == 0 { // zero or subnormal: flush
		return uint16(bits>>16) & 0x8000
	}

	// Round to nearest, ties to even: bias the low halfword by 0x7FFF
	// plus the truncated result's LSB, then shift.
	lsb := (bits >> 16) & 1
	return uint16((bits + 0x7FFF + lsb) >> 16)
}

// DecodeBFloat16 expands bfloat16 bits into a float32. Subnormal
// patterns decode to signed zero, consistent with the flush-to-zero
// encode policy.
func DecodeBFloat16(bits uint16) float32 {
	w := uint32(bits) << 16
	switch bits & bfloat16ExpField {
	case bfloat16ExpField:
		// Infinity or NaN: the mantissa is already left-aligned, so the
		// widened word is a valid binary32 pattern as-is.
		return DecodeFloat32(w)
	case 0:
		return DecodeFloat32(w & float32SignBit) // signed zero
	default:
		return DecodeFloat32(w)
	}
}
