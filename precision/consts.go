package precision

import "math"

const (
	byteValueCount = math.MaxUint8 + 1

	float16ExpBits  = 5
	float16MantBits = 10

	float32ExpBits  = 8
	float32MantBits = 23

	bfloat16ExpBits  = 8
	bfloat16MantBits = 7

	float8ExpBits  = 4
	float8MantBits = 3

	float16SignShift        = float16ExpBits + float16MantBits
	float16ExpMask   uint16 = math.MaxUint16 >> (16 - float16ExpBits)
	float16ExpBias          = int(float16ExpMask >> 1)

	float32SignShift        = float32ExpBits + float32MantBits
	float32ExpShift         = float32MantBits
	float32ExpMask   uint32 = math.MaxUint8
	float32ExpBias          = int(float32ExpMask >> 1)
	float32SignBit   uint32 = 1 << float32SignShift

	bfloat16SignShift        = bfloat16ExpBits + bfloat16MantBits
	bfloat16ExpShift         = bfloat16MantBits
	bfloat16ExpMask   uint16 = math.MaxUint16 >> (16 - bfloat16ExpBits)
	bfloat16ExpBias          = int(bfloat16ExpMask >> 1)

	float8SignShift       = float8ExpBits + float8MantBits
	float8ExpShift        = float8MantBits
	float8ExpMask   uint8 = math.MaxUint8 >> (8 - float8ExpBits)
	float8MantMask  uint8 = math.MaxUint8 >> (8 - float8MantBits)
	float8ExpBias         = int(float8ExpMask >> 1)
	float8HiddenBit uint8 = float8MantMask + 1

	float32ToFloat8MantShift = float32MantBits - float8MantBits
)
