package numeric

import (
	"math"
	"math/bits"

	"github.com/GregorR/wabt-gepix/trap"
)

// Integer operators. Values travel as their unsigned bit patterns, the
// way translated code carries them; signed operators cast internally
// and wrap the result back.

// I32Clz implements i32.clz; I32Clz(0) == 32.
func I32Clz(x uint32) uint32 {
	return uint32(bits.LeadingZeros32(x))
}

// I64Clz implements i64.clz; I64Clz(0) == 64.
func I64Clz(x uint64) uint64 {
	return uint64(bits.LeadingZeros64(x))
}

// I32Ctz implements i32.ctz; I32Ctz(0) == 32.
func I32Ctz(x uint32) uint32 {
	return uint32(bits.TrailingZeros32(x))
}

// I64Ctz implements i64.ctz; I64Ctz(0) == 64.
func I64Ctz(x uint64) uint64 {
	return uint64(bits.TrailingZeros64(x))
}

// I32Popcnt implements i32.popcnt.
func I32Popcnt(x uint32) uint32 {
	return uint32(bits.OnesCount32(x))
}

// I64Popcnt implements i64.popcnt.
func I64Popcnt(x uint64) uint64 {
	return uint64(bits.OnesCount64(x))
}

// I32Rotl implements i32.rotl; the count is taken mod 32.
func I32Rotl(x, y uint32) uint32 {
	return bits.RotateLeft32(x, int(y&31))
}

// I32Rotr implements i32.rotr.
func I32Rotr(x, y uint32) uint32 {
	return bits.RotateLeft32(x, -int(y&31))
}

// I64Rotl implements i64.rotl; the count is taken mod 64.
func I64Rotl(x, y uint64) uint64 {
	return bits.RotateLeft64(x, int(y&63))
}

// I64Rotr implements i64.rotr.
func I64Rotr(x, y uint64) uint64 {
	return bits.RotateLeft64(x, -int(y&63))
}

// I32DivS implements i32.div_s. Traps DivByZero on a zero divisor and
// IntOverflow on MinInt32 / -1.
func I32DivS(x, y uint32) uint32 {
	sx, sy := int32(x), int32(y)
	if sy == 0 {
		trap.Raise(trap.DivByZero)
	}
	if sx == math.MinInt32 && sy == -1 {
		trap.Raise(trap.IntOverflow)
	}
	return uint32(sx / sy)
}

// I64DivS implements i64.div_s.
func I64DivS(x, y uint64) uint64 {
	sx, sy := int64(x), int64(y)
	if sy == 0 {
		trap.Raise(trap.DivByZero)
	}
	if sx == math.MinInt64 && sy == -1 {
		trap.Raise(trap.IntOverflow)
	}
	return uint64(sx / sy)
}

// I32RemS implements i32.rem_s. MinInt32 rem -1 is 0, not a trap.
func I32RemS(x, y uint32) uint32 {
	sx, sy := int32(x), int32(y)
	if sy == 0 {
		trap.Raise(trap.DivByZero)
	}
	if sx == math.MinInt32 && sy == -1 {
		return 0
	}
	return uint32(sx % sy)
}

// I64RemS implements i64.rem_s.
func I64RemS(x, y uint64) uint64 {
	sx, sy := int64(x), int64(y)
	if sy == 0 {
		trap.Raise(trap.DivByZero)
	}
	if sx == math.MinInt64 && sy == -1 {
		return 0
	}
	return uint64(sx % sy)
}

// I32DivU implements i32.div_u.
func I32DivU(x, y uint32) uint32 {
	if y == 0 {
		trap.Raise(trap.DivByZero)
	}
	return x / y
}

// I64DivU implements i64.div_u.
func I64DivU(x, y uint64) uint64 {
	if y == 0 {
		trap.Raise(trap.DivByZero)
	}
	return x / y
}

// I32RemU implements i32.rem_u.
func I32RemU(x, y uint32) uint32 {
	if y == 0 {
		trap.Raise(trap.DivByZero)
	}
	return x % y
}

// I64RemU implements i64.rem_u.
func I64RemU(x, y uint64) uint64 {
	if y == 0 {
		trap.Raise(trap.DivByZero)
	}
	return x % y
}
