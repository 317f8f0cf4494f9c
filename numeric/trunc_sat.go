package numeric

import "math"

// Saturating float-to-integer truncations: NaN yields zero, values
// beyond the range clamp to the integer bounds, everything else
// truncates toward zero. Same brackets as the trapping forms.

// I32TruncSatF32S implements i32.trunc_sat_f32_s.
func I32TruncSatF32S(x float32) uint32 {
	if x != x {
		return 0
	}
	if !(x >= -2147483648.0) {
		return 1 << 31
	}
	if !(x < 2147483648.0) {
		return math.MaxInt32
	}
	return uint32(int32(math.Trunc(float64(x))))
}

// I64TruncSatF32S implements i64.trunc_sat_f32_s.
func I64TruncSatF32S(x float32) uint64 {
	if x != x {
		return 0
	}
	if !(x >= -9223372036854775808.0) {
		return 1 << 63
	}
	if !(x < 9223372036854775808.0) {
		return math.MaxInt64
	}
	return uint64(int64(math.Trunc(float64(x))))
}

// I32TruncSatF64S implements i32.trunc_sat_f64_s.
func I32TruncSatF64S(x float64) uint32 {
	if x != x {
		return 0
	}
	if !(x > -2147483649.0) {
		return 1 << 31
	}
	if !(x < 2147483648.0) {
		return math.MaxInt32
	}
	return uint32(int32(math.Trunc(x)))
}

// I64TruncSatF64S implements i64.trunc_sat_f64_s.
func I64TruncSatF64S(x float64) uint64 {
	if x != x {
		return 0
	}
	if !(x >= -9223372036854775808.0) {
		return 1 << 63
	}
	if !(x < 9223372036854775808.0) {
		return math.MaxInt64
	}
	return uint64(int64(math.Trunc(x)))
}

// I32TruncSatF32U implements i32.trunc_sat_f32_u.
func I32TruncSatF32U(x float32) uint32 {
	if x != x {
		return 0
	}
	if !(x > -1.0) {
		return 0
	}
	if !(x < 4294967296.0) {
		return math.MaxUint32
	}
	return uint32(math.Trunc(float64(x)))
}

// I64TruncSatF32U implements i64.trunc_sat_f32_u.
func I64TruncSatF32U(x float32) uint64 {
	if x != x {
		return 0
	}
	if !(x > -1.0) {
		return 0
	}
	if !(x < 18446744073709551616.0) {
		return math.MaxUint64
	}
	return uint64(math.Trunc(float64(x)))
}

// I32TruncSatF64U implements i32.trunc_sat_f64_u.
func I32TruncSatF64U(x float64) uint32 {
	if x != x {
		return 0
	}
	if !(x > -1.0) {
		return 0
	}
	if !(x < 4294967296.0) {
		return math.MaxUint32
	}
	return uint32(math.Trunc(x))
}

// I64TruncSatF64U implements i64.trunc_sat_f64_u.
func I64TruncSatF64U(x float64) uint64 {
	if x != x {
		return 0
	}
	if !(x > -1.0) {
		return 0
	}
	if !(x < 18446744073709551616.0) {
		return math.MaxUint64
	}
	return uint64(math.Trunc(x))
}
