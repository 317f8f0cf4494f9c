package numeric

import "math"

// Reinterpret casts: bitwise copies between equal-width integer and
// float. Total on all bit patterns, including signalling NaNs.

// F32ReinterpretI32 implements f32.reinterpret_i32.
func F32ReinterpretI32(x uint32) float32 {
	return math.Float32frombits(x)
}

// I32ReinterpretF32 implements i32.reinterpret_f32.
func I32ReinterpretF32(x float32) uint32 {
	return math.Float32bits(x)
}

// F64ReinterpretI64 implements f64.reinterpret_i64.
func F64ReinterpretI64(x uint64) float64 {
	return math.Float64frombits(x)
}

// I64ReinterpretF64 implements i64.reinterpret_f64.
func I64ReinterpretF64(x float64) uint64 {
	return math.Float64bits(x)
}
