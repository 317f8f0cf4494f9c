package numeric

import "math"

// Float operators. Every NaN-accepting operator except Abs, Neg and
// Copysign canonicalises a NaN input by setting the high payload bit
// (bit 22 for f32, bit 51 for f64); the sign-manipulation operators
// work on the bit pattern alone and must leave a signalling payload
// untouched.

const (
	quietMask32 = 0x7fc00000
	quietMask64 = 0x7ff8000000000000
	signMask32  = 0x80000000
	signMask64  = 0x8000000000000000
)

func quietF32(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) | quietMask32)
}

func quietF64(x float64) float64 {
	return math.Float64frombits(math.Float64bits(x) | quietMask64)
}

func canonNaN32() float32 {
	return math.Float32frombits(quietMask32)
}

func canonNaN64() float64 {
	return math.Float64frombits(quietMask64)
}

// F32Floor implements f32.floor.
func F32Floor(x float32) float32 {
	if x != x {
		return quietF32(x)
	}
	return float32(math.Floor(float64(x)))
}

// F64Floor implements f64.floor.
func F64Floor(x float64) float64 {
	if x != x {
		return quietF64(x)
	}
	return math.Floor(x)
}

// F32Ceil implements f32.ceil.
func F32Ceil(x float32) float32 {
	if x != x {
		return quietF32(x)
	}
	return float32(math.Ceil(float64(x)))
}

// F64Ceil implements f64.ceil.
func F64Ceil(x float64) float64 {
	if x != x {
		return quietF64(x)
	}
	return math.Ceil(x)
}

// F32Trunc implements f32.trunc.
func F32Trunc(x float32) float32 {
	if x != x {
		return quietF32(x)
	}
	return float32(math.Trunc(float64(x)))
}

// F64Trunc implements f64.trunc.
func F64Trunc(x float64) float64 {
	if x != x {
		return quietF64(x)
	}
	return math.Trunc(x)
}

// F32Nearest implements f32.nearest: round to nearest, ties to even.
func F32Nearest(x float32) float32 {
	if x != x {
		return quietF32(x)
	}
	return float32(math.RoundToEven(float64(x)))
}

// F64Nearest implements f64.nearest.
func F64Nearest(x float64) float64 {
	if x != x {
		return quietF64(x)
	}
	return math.RoundToEven(x)
}

// F32Sqrt implements f32.sqrt. The square root computed in double
// precision rounds correctly back to single.
func F32Sqrt(x float32) float32 {
	if x != x {
		return quietF32(x)
	}
	return float32(math.Sqrt(float64(x)))
}

// F64Sqrt implements f64.sqrt.
func F64Sqrt(x float64) float64 {
	if x != x {
		return quietF64(x)
	}
	return math.Sqrt(x)
}

// F32Abs implements f32.abs: clears the sign bit only. A NaN payload
// passes through unquietened.
func F32Abs(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) &^ signMask32)
}

// F64Abs implements f64.abs.
func F64Abs(x float64) float64 {
	return math.Float64frombits(math.Float64bits(x) &^ signMask64)
}

// F32Neg implements f32.neg: flips the sign bit only.
func F32Neg(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) ^ signMask32)
}

// F64Neg implements f64.neg.
func F64Neg(x float64) float64 {
	return math.Float64frombits(math.Float64bits(x) ^ signMask64)
}

// F32Copysign implements f32.copysign.
func F32Copysign(x, y float32) float32 {
	return math.Float32frombits(math.Float32bits(x)&^signMask32 | math.Float32bits(y)&signMask32)
}

// F64Copysign implements f64.copysign.
func F64Copysign(x, y float64) float64 {
	return math.Float64frombits(math.Float64bits(x)&^signMask64 | math.Float64bits(y)&signMask64)
}

// F32Min implements f32.min. A NaN operand yields the canonical NaN;
// +0 and -0 compare equal, so the zero case picks by sign and -0 wins.
func F32Min(x, y float32) float32 {
	if x != x || y != y {
		return canonNaN32()
	}
	if x == 0 && y == 0 {
		if math.Float32bits(x)&signMask32 != 0 {
			return x
		}
		return y
	}
	if x < y {
		return x
	}
	return y
}

// F32Max implements f32.max; in the zero case +0 wins.
func F32Max(x, y float32) float32 {
	if x != x || y != y {
		return canonNaN32()
	}
	if x == 0 && y == 0 {
		if math.Float32bits(x)&signMask32 != 0 {
			return y
		}
		return x
	}
	if x > y {
		return x
	}
	return y
}

// F64Min implements f64.min.
func F64Min(x, y float64) float64 {
	if x != x || y != y {
		return canonNaN64()
	}
	if x == 0 && y == 0 {
		if math.Signbit(x) {
			return x
		}
		return y
	}
	if x < y {
		return x
	}
	return y
}

// F64Max implements f64.max.
func F64Max(x, y float64) float64 {
	if x != x || y != y {
		return canonNaN64()
	}
	if x == 0 && y == 0 {
		if math.Signbit(x) {
			return y
		}
		return x
	}
	if x > y {
		return x
	}
	return y
}
