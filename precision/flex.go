package precision

import "strconv"

// Flex carries one encoded scalar together with its format, the shape
// used when mixed-precision values travel through untyped storage. The
// zero value is a binary32 zero.
//
// Flex is a thin carrier, not a format-to-format dispatcher: its
// constructors route to the four named codecs so the per-format rounding
// and saturation rules stay auditable in one place each.
type Flex struct {
	bits   uint32
	format Format
}

// EncodeFlex compresses value into format f and returns the carrier.
func EncodeFlex(value float32, f Format) Flex {
	switch f {
	case F16:
		return Flex{bits: uint32(EncodeFloat16(value)), format: F16}
	case BF16:
		return Flex{bits: uint32(EncodeBFloat16(value)), format: BF16}
	case F8:
		return Flex{bits: uint32(EncodeFloat8(value)), format: F8}
	default:
		return Flex{bits: EncodeFloat32(value), format: F32}
	}
}

// FlexFromBits wraps an already-encoded bit pattern. Bits above the
// format's width are masked off.
func FlexFromBits(bits uint32, f Format) Flex {
	d := Lookup(f)
	if d.TotalBits < 32 {
		bits &= (1 << d.TotalBits) - 1
	}
	return Flex{bits: bits, format: f}
}

// Decode expands the carried bits back into a float32.
func (x Flex) Decode() float32 {
	switch x.format {
	case F16:
		return DecodeFloat16(uint16(x.bits))
	case BF16:
		return DecodeBFloat16(uint16(x.bits))
	case F8:
		return DecodeFloat8(uint8(x.bits))
	default:
		return DecodeFloat32(x.bits)
	}
}

// Bits returns the raw bit pattern.
func (x Flex) Bits() uint32 { return x.bits }

// Format returns the format tag.
func (x Flex) Format() Format { return x.format }

// Class returns the classification of the carried bit pattern.
func (x Flex) Class() Class {
	return Lookup(x.format).Classify(x.bits)
}

// String implements fmt.Stringer
func (x Flex) String() string {
	return strconv.FormatFloat(float64(x.Decode()), 'g', -1, 32) + " [" + x.format.String() + "]"
}
