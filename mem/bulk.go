package mem

import (
	"github.com/GregorR/wabt-gepix/trap"
)

// DataSegment is a passive data segment: the raw bytes of the original
// module, in wasm (little-endian) byte order.
type DataSegment []byte

// Drop implements data.drop by releasing the segment's bytes. A dropped
// segment behaves as having size zero.
func (s *DataSegment) Drop() {
	*s = nil
}

// Fill implements memory.fill. Byte writes are orientation-invariant,
// so the adapted region is set directly.
func (m *Memory) Fill(d uint64, v byte, n uint64) {
	m.rangeCheck(d, n)
	p := m.pos(d, n)
	b := m.base()[p : p+n]
	for i := range b {
		b[i] = v
	}
}

// Copy implements memory.copy from src into m. The ranges may overlap;
// source bytes are preserved.
func (m *Memory) Copy(src *Memory, d, s, n uint64) {
	m.rangeCheck(d, n)
	src.rangeCheck(s, n)
	dp := m.pos(d, n)
	sp := src.pos(s, n)
	copy(m.base()[dp:dp+n], src.base()[sp:sp+n])
}

// Init implements memory.init from a data segment. The source range is
// always validated, whatever the checking mode. On big-endian hosts the
// copied payload is byte-reversed so subsequent little-endian reads
// yield the original values.
func (m *Memory) Init(seg DataSegment, d, s, n uint64) {
	segSize := uint64(len(seg))
	if n > segSize || s > segSize-n {
		trap.Raise(trap.OOB)
	}
	m.rangeCheck(d, n)
	p := m.pos(d, n)
	dst := m.base()[p : p+n]
	copy(dst, seg[s:s+n])
	if bigEndian {
		reverseBytes(dst)
	}
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
