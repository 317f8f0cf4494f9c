package numeric

import (
	"math"

	"github.com/GregorR/wabt-gepix/trap"
)

// Trapping float-to-integer truncations. NaN traps InvalidConversion;
// values outside the half-open bracket of exactly representable
// endpoints trap IntOverflow; everything else truncates toward zero.
// The brackets differ per pair because the integer range endpoints are
// not all representable in the source float width.

// I32TruncF32S implements i32.trunc_f32_s.
func I32TruncF32S(x float32) uint32 {
	if x != x {
		trap.Raise(trap.InvalidConversion)
	}
	if !(x >= -2147483648.0 && x < 2147483648.0) {
		trap.Raise(trap.IntOverflow)
	}
	return uint32(int32(math.Trunc(float64(x))))
}

// I64TruncF32S implements i64.trunc_f32_s.
func I64TruncF32S(x float32) uint64 {
	if x != x {
		trap.Raise(trap.InvalidConversion)
	}
	if !(x >= -9223372036854775808.0 && x < 9223372036854775808.0) {
		trap.Raise(trap.IntOverflow)
	}
	return uint64(int64(math.Trunc(float64(x))))
}

// I32TruncF64S implements i32.trunc_f64_s. Both 32-bit endpoints are
// exact in double, so the low bound is strict on the value below the
// range.
func I32TruncF64S(x float64) uint32 {
	if x != x {
		trap.Raise(trap.InvalidConversion)
	}
	if !(x > -2147483649.0 && x < 2147483648.0) {
		trap.Raise(trap.IntOverflow)
	}
	return uint32(int32(math.Trunc(x)))
}

// I64TruncF64S implements i64.trunc_f64_s.
func I64TruncF64S(x float64) uint64 {
	if x != x {
		trap.Raise(trap.InvalidConversion)
	}
	if !(x >= -9223372036854775808.0 && x < 9223372036854775808.0) {
		trap.Raise(trap.IntOverflow)
	}
	return uint64(int64(math.Trunc(x)))
}

// I32TruncF32U implements i32.trunc_f32_u.
func I32TruncF32U(x float32) uint32 {
	if x != x {
		trap.Raise(trap.InvalidConversion)
	}
	if !(x > -1.0 && x < 4294967296.0) {
		trap.Raise(trap.IntOverflow)
	}
	return uint32(math.Trunc(float64(x)))
}

// I64TruncF32U implements i64.trunc_f32_u.
func I64TruncF32U(x float32) uint64 {
	if x != x {
		trap.Raise(trap.InvalidConversion)
	}
	if !(x > -1.0 && x < 18446744073709551616.0) {
		trap.Raise(trap.IntOverflow)
	}
	return uint64(math.Trunc(float64(x)))
}

// I32TruncF64U implements i32.trunc_f64_u.
func I32TruncF64U(x float64) uint32 {
	if x != x {
		trap.Raise(trap.InvalidConversion)
	}
	if !(x > -1.0 && x < 4294967296.0) {
		trap.Raise(trap.IntOverflow)
	}
	return uint32(math.Trunc(x))
}

// I64TruncF64U implements i64.trunc_f64_u.
func I64TruncF64U(x float64) uint64 {
	if x != x {
		trap.Raise(trap.InvalidConversion)
	}
	if !(x > -1.0 && x < 18446744073709551616.0) {
		trap.Raise(trap.IntOverflow)
	}
	return uint64(math.Trunc(x))
}
