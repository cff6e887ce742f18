package precision

// Descriptor is the constant metadata describing one format's bit
// layout. Descriptors are immutable values; Lookup returns copies of
// process-wide constants and never fails.
type Descriptor struct {
	Name         string
	TotalBits    uint
	ExponentBits uint
	MantissaBits uint
	Bias         int
}

// descriptors holds one entry per Format. For every entry,
// 1 + ExponentBits + MantissaBits == TotalBits.
var descriptors = [FormatCount]Descriptor{
	F32:  {Name: "binary32", TotalBits: 32, ExponentBits: float32ExpBits, MantissaBits: float32MantBits, Bias: float32ExpBias},
	F16:  {Name: "binary16", TotalBits: 16, ExponentBits: float16ExpBits, MantissaBits: float16MantBits, Bias: float16ExpBias},
	BF16: {Name: "bfloat16", TotalBits: 16, ExponentBits: bfloat16ExpBits, MantissaBits: bfloat16MantBits, Bias: bfloat16ExpBias},
	F8:   {Name: "e4m3", TotalBits: 8, ExponentBits: float8ExpBits, MantissaBits: float8MantBits, Bias: float8ExpBias},
}

// Lookup returns the layout descriptor for f. Unknown formats map to the
// binary32 descriptor so the function stays total.
func Lookup(f Format) Descriptor {
	if f >= FormatCount {
		return descriptors[F32]
	}
	return descriptors[f]
}

// ExponentMask returns the exponent field mask, shifted into position.
func (d Descriptor) ExponentMask() uint32 {
	return ((1 << d.ExponentBits) - 1) << d.MantissaBits
}

// MantissaMask returns the mantissa field mask.
func (d Descriptor) MantissaMask() uint32 {
	return (1 << d.MantissaBits) - 1
}

// SignMask returns the sign bit mask.
func (d Descriptor) SignMask() uint32 {
	return 1 << (d.ExponentBits + d.MantissaBits)
}

// MinExponent returns the smallest usable (unbiased) exponent of a
// normal value.
func (d Descriptor) MinExponent() int {
	return 1 - d.Bias
}

// MaxExponent returns the largest usable (unbiased) exponent, with the
// all-ones exponent field reserved for infinity and NaN.
func (d Descriptor) MaxExponent() int {
	return int((1<<d.ExponentBits)-1) - d.Bias - 1
}

// Classify determines the class of a raw bit pattern in d's layout.
// Bits above TotalBits are ignored.
func (d Descriptor) Classify(bits uint32) Class {
	exp := bits & d.ExponentMask()
	mant := bits & d.MantissaMask()
	switch exp {
	case 0:
		if mant == 0 {
			return Zero
		}
		return Subnormal
	case d.ExponentMask():
		if mant == 0 {
			return Infinity
		}
		return NaN
	default:
		return Normal
	}
}
