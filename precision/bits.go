package precision

import "math"

// EncodeFloat32 reinterprets a float32 as its raw IEEE 754 binary32 bit
// pattern. No arithmetic is performed; all NaN payloads, signaling bits,
// and signed zeros survive unchanged.
func EncodeFloat32(value float32) uint32 {
	return math.Float32bits(value)
}

// DecodeFloat32 is the exact inverse of EncodeFloat32 over the entire
// 32-bit domain.
func DecodeFloat32(bits uint32) float32 {
	return math.Float32frombits(bits)
}
