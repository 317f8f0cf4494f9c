package mem

import (
	"unsafe"

	"go.uber.org/zap"

	"github.com/GregorR/wabt-gepix/errors"
)

// Fast-path base redirection for one distinguished memory, the
// counterpart of redirecting accesses through a pinned base register.
// When enabled, accesses to that memory read the pinned buffer instead
// of dereferencing the memory each time. Switching it on changes
// performance only: bounds and endian behaviour are identical.

var (
	fastMem  *Memory
	fastBase []byte
)

// sanityChecks compares the pinned base against the memory's buffer on
// every access. Debug aid; off by default.
var sanityChecks = false

// SetSanityChecks toggles the pinned-base assertion.
func SetSanityChecks(on bool) {
	sanityChecks = on
}

// EnableFastPath pins m's buffer. The preconditions mirror the
// host-assisted form: a little-endian host, a 32-bit memory, and no
// memory already pinned.
func EnableFastPath(m *Memory) error {
	if bigEndian {
		return errors.Unsupported(errors.PhaseInit, "fast path requires a little-endian host")
	}
	if m.mem64 {
		return errors.Unsupported(errors.PhaseInit, "fast path requires a 32-bit memory")
	}
	if fastMem != nil && fastMem != m {
		return errors.InvalidInput(errors.PhaseInit, "another memory is already pinned")
	}
	fastMem = m
	fastBase = m.data
	Logger().Debug("fast path enabled", zap.Uint64("size", m.size))
	return nil
}

// DisableFastPath unpins the distinguished memory.
func DisableFastPath() {
	fastMem = nil
	fastBase = nil
}

// base returns the buffer to access: the pinned one for the
// distinguished memory, the memory's own otherwise.
func (m *Memory) base() []byte {
	if fastMem == m {
		return fastBase
	}
	return m.data
}

// checkBase asserts the pinned base still matches the memory's buffer.
// A mismatch means the embedder resized or replaced the buffer without
// re-enabling the fast path; continuing would read and write the stale
// pinned buffer instead of the memory's current one.
func (m *Memory) checkBase() {
	if fastMem != m {
		return
	}
	if unsafe.SliceData(fastBase) != unsafe.SliceData(m.data) {
		Logger().Error("pinned base mismatch")
		panic("mem: pinned base does not match memory buffer")
	}
}
