package benchmarks

import (
	"testing"

	"github.com/x448/float16"

	"github.com/teleprint-me/precision-go/precision"
)

// Per-value conversion microbenchmarks comparing this codec against the
// x448/float16 reference implementation for the same operations. This
// helps surface regressions in the multiply-based half-precision paths.

var (
	sinkBits16 uint16
	sinkBits8  uint8
	sinkFloat  float32
)

func BenchmarkPrecision_EncodeFloat16(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkBits16 = precision.EncodeFloat16(float32(i) * 0.25)
	}
}

func BenchmarkX448_EncodeFloat16(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkBits16 = float16.Fromfloat32(float32(i) * 0.25).Bits()
	}
}

func BenchmarkPrecision_DecodeFloat16(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkFloat = precision.DecodeFloat16(uint16(i))
	}
}

func BenchmarkX448_DecodeFloat16(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkFloat = float16.Frombits(uint16(i)).Float32()
	}
}

func BenchmarkPrecision_EncodeBFloat16(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkBits16 = precision.EncodeBFloat16(float32(i) * 0.25)
	}
}

func BenchmarkPrecision_DecodeBFloat16(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkFloat = precision.DecodeBFloat16(uint16(i))
	}
}

func BenchmarkPrecision_EncodeFloat8(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkBits8 = precision.EncodeFloat8(float32(i) * 0.25)
	}
}

func BenchmarkPrecision_DecodeFloat8(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkFloat = precision.DecodeFloat8(uint8(i))
	}
}

func BenchmarkPrecision_IsClose(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if !precision.IsClose(1.0, 1.0+1e-7, 1e-3, 0) {
			b.Fatal("comparator regression")
		}
	}
}
