package precision

import (
	"strconv"
	"strings"
)

// Describe renders a raw bit pattern in diagnostic field notation, for
// example:
//
//	0x3c00 [binary16] 0|01111|0000000000 = 1 (normal)
//
// The fields are sign, exponent, and mantissa. Describe is pure; callers
// that want diagnostics around conversions wrap the codec calls rather
// than the codec emitting anything itself.
func Describe(f Format, bits uint32) string {
	d := Lookup(f)
	if d.TotalBits < 32 {
		bits &= (1 << d.TotalBits) - 1
	}

	var sb strings.Builder
	sb.WriteString("0x")
	sb.WriteString(leftPad(strconv.FormatUint(uint64(bits), 16), int(d.TotalBits/4)))
	sb.WriteString(" [")
	sb.WriteString(d.Name)
	sb.WriteString("] ")

	sign := (bits & d.SignMask()) >> (d.ExponentBits + d.MantissaBits)
	exp := (bits & d.ExponentMask()) >> d.MantissaBits
	mant := bits & d.MantissaMask()
	sb.WriteString(strconv.FormatUint(uint64(sign), 2))
	sb.WriteByte('|')
	sb.WriteString(leftPad(strconv.FormatUint(uint64(exp), 2), int(d.ExponentBits)))
	sb.WriteByte('|')
	sb.WriteString(leftPad(strconv.FormatUint(uint64(mant), 2), int(d.MantissaBits)))

	sb.WriteString(" = ")
	sb.WriteString(strconv.FormatFloat(float64(FlexFromBits(bits, f).Decode()), 'g', -1, 32))
	sb.WriteString(" (")
	sb.WriteString(d.Classify(bits).String())
	sb.WriteByte(')')
	return sb.String()
}

// leftPad zero-pads s on the left to width characters.
func leftPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
