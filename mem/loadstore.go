package mem

import (
	"encoding/binary"
	"math"
)

// Sized native-order access at the adapted position. Under guard mode
// the slice expression is the check: an out-of-range access faults and
// trap.Catch converts the fault to an OOB trap.

func (m *Memory) load8(addr uint64) byte {
	m.check(addr, 1)
	return m.base()[m.pos(addr, 1)]
}

func (m *Memory) load16(addr uint64) uint16 {
	m.check(addr, 2)
	p := m.pos(addr, 2)
	return binary.NativeEndian.Uint16(m.base()[p : p+2])
}

func (m *Memory) load32(addr uint64) uint32 {
	m.check(addr, 4)
	p := m.pos(addr, 4)
	return binary.NativeEndian.Uint32(m.base()[p : p+4])
}

func (m *Memory) load64(addr uint64) uint64 {
	m.check(addr, 8)
	p := m.pos(addr, 8)
	return binary.NativeEndian.Uint64(m.base()[p : p+8])
}

func (m *Memory) store8(addr uint64, v byte) {
	m.check(addr, 1)
	m.base()[m.pos(addr, 1)] = v
}

func (m *Memory) store16(addr uint64, v uint16) {
	m.check(addr, 2)
	p := m.pos(addr, 2)
	binary.NativeEndian.PutUint16(m.base()[p:p+2], v)
}

func (m *Memory) store32(addr uint64, v uint32) {
	m.check(addr, 4)
	p := m.pos(addr, 4)
	binary.NativeEndian.PutUint32(m.base()[p:p+4], v)
}

func (m *Memory) store64(addr uint64, v uint64) {
	m.check(addr, 8)
	p := m.pos(addr, 8)
	binary.NativeEndian.PutUint64(m.base()[p:p+8], v)
}

// I32Load implements i32.load.
func (m *Memory) I32Load(addr uint64) uint32 {
	return m.load32(addr)
}

// I64Load implements i64.load.
func (m *Memory) I64Load(addr uint64) uint64 {
	return m.load64(addr)
}

// F32Load implements f32.load. The value travels as bits until the
// caller, so a signalling NaN payload is returned bit-identical.
func (m *Memory) F32Load(addr uint64) float32 {
	return math.Float32frombits(m.load32(addr))
}

// F64Load implements f64.load.
func (m *Memory) F64Load(addr uint64) float64 {
	return math.Float64frombits(m.load64(addr))
}

// I32Load8S implements i32.load8_s.
func (m *Memory) I32Load8S(addr uint64) uint32 {
	return uint32(int32(int8(m.load8(addr))))
}

// I32Load8U implements i32.load8_u.
func (m *Memory) I32Load8U(addr uint64) uint32 {
	return uint32(m.load8(addr))
}

// I32Load16S implements i32.load16_s.
func (m *Memory) I32Load16S(addr uint64) uint32 {
	return uint32(int32(int16(m.load16(addr))))
}

// I32Load16U implements i32.load16_u.
func (m *Memory) I32Load16U(addr uint64) uint32 {
	return uint32(m.load16(addr))
}

// I64Load8S implements i64.load8_s.
func (m *Memory) I64Load8S(addr uint64) uint64 {
	return uint64(int64(int8(m.load8(addr))))
}

// I64Load8U implements i64.load8_u.
func (m *Memory) I64Load8U(addr uint64) uint64 {
	return uint64(m.load8(addr))
}

// I64Load16S implements i64.load16_s.
func (m *Memory) I64Load16S(addr uint64) uint64 {
	return uint64(int64(int16(m.load16(addr))))
}

// I64Load16U implements i64.load16_u.
func (m *Memory) I64Load16U(addr uint64) uint64 {
	return uint64(m.load16(addr))
}

// I64Load32S implements i64.load32_s.
func (m *Memory) I64Load32S(addr uint64) uint64 {
	return uint64(int64(int32(m.load32(addr))))
}

// I64Load32U implements i64.load32_u.
func (m *Memory) I64Load32U(addr uint64) uint64 {
	return uint64(m.load32(addr))
}

// I32Store implements i32.store.
func (m *Memory) I32Store(addr uint64, v uint32) {
	m.store32(addr, v)
}

// I64Store implements i64.store.
func (m *Memory) I64Store(addr uint64, v uint64) {
	m.store64(addr, v)
}

// F32Store implements f32.store, bit-exact for any NaN payload.
func (m *Memory) F32Store(addr uint64, v float32) {
	m.store32(addr, math.Float32bits(v))
}

// F64Store implements f64.store.
func (m *Memory) F64Store(addr uint64, v float64) {
	m.store64(addr, math.Float64bits(v))
}

// I32Store8 implements i32.store8.
func (m *Memory) I32Store8(addr uint64, v uint32) {
	m.store8(addr, byte(v))
}

// I32Store16 implements i32.store16.
func (m *Memory) I32Store16(addr uint64, v uint32) {
	m.store16(addr, uint16(v))
}

// I64Store8 implements i64.store8.
func (m *Memory) I64Store8(addr uint64, v uint64) {
	m.store8(addr, byte(v))
}

// I64Store16 implements i64.store16.
func (m *Memory) I64Store16(addr uint64, v uint64) {
	m.store16(addr, uint16(v))
}

// I64Store32 implements i64.store32.
func (m *Memory) I64Store32(addr uint64, v uint64) {
	m.store32(addr, uint32(v))
}
