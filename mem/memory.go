package mem

import (
	"math/bits"

	"github.com/GregorR/wabt-gepix/errors"
	"github.com/GregorR/wabt-gepix/trap"
)

// PageSize is the wasm page size in bytes.
const PageSize = 65536

// CheckMode selects how accesses are validated.
type CheckMode uint8

const (
	// CheckBounds range-checks every access explicitly.
	CheckBounds CheckMode = iota

	// CheckGuard performs no explicit per-access check and relies on
	// the runtime's slice bounds fault, which trap.Catch converts to an
	// OOB trap. The buffer must not extend beyond the addressable size.
	CheckGuard

	// CheckNone performs no checking at all. Nonconforming; intended
	// for benchmarking translated code that is presumed correct.
	CheckNone
)

var checkMode = CheckBounds

// SetCheckMode selects the access checking mode. Set once, before any
// translated code runs.
func SetCheckMode(m CheckMode) {
	checkMode = m
}

// Mode returns the active checking mode.
func Mode() CheckMode {
	return checkMode
}

// Memory is a linear memory: a contiguous byte buffer with a current
// size, a cap, and an address-space width. It is created by the
// embedder and resized only by the embedder; this package implements
// access.
type Memory struct {
	data    []byte
	size    uint64
	maxSize uint64
	mem64   bool
}

// New creates a 32-bit memory of pages wasm pages, capped at maxPages.
func New(pages, maxPages uint64) (*Memory, error) {
	return newMemory(pages, maxPages, false)
}

// New64 creates a 64-bit memory of pages wasm pages, capped at maxPages.
func New64(pages, maxPages uint64) (*Memory, error) {
	return newMemory(pages, maxPages, true)
}

func newMemory(pages, maxPages uint64, mem64 bool) (*Memory, error) {
	if pages > maxPages {
		return nil, errors.InvalidInput(errors.PhaseAlloc, "initial pages exceed maximum")
	}
	if !mem64 && maxPages > 1<<16 {
		return nil, errors.InvalidInput(errors.PhaseAlloc, "32-bit memory larger than 4 GiB")
	}
	size := pages * PageSize
	return &Memory{
		data:    make([]byte, size),
		size:    size,
		maxSize: maxPages * PageSize,
		mem64:   mem64,
	}, nil
}

// Size returns the current byte length.
func (m *Memory) Size() uint64 {
	return m.size
}

// MaxSize returns the byte cap.
func (m *Memory) MaxSize() uint64 {
	return m.maxSize
}

// Is64 reports whether the memory uses a 64-bit address space.
func (m *Memory) Is64() bool {
	return m.mem64
}

// Data exposes the raw buffer for the embedder. Wasm address order only
// on little-endian hosts; translated code must use the access
// primitives instead.
func (m *Memory) Data() []byte {
	return m.data
}

// pos is the endian adapter: the index of the first host byte of an
// n-byte object at wasm address addr.
func (m *Memory) pos(addr, n uint64) uint64 {
	if bigEndian {
		return m.size - addr - n
	}
	return addr
}

// RangeCheck traps OOB unless [offset, offset+n) lies inside the
// memory. For 64-bit memories the address arithmetic itself can wrap,
// so the overflow check is explicit; 32-bit offsets are widened so one
// comparison covers both conditions.
func (m *Memory) RangeCheck(offset, n uint64) {
	if m.mem64 {
		end, carry := bits.Add64(offset, n, 0)
		if carry != 0 || end > m.size {
			trap.Raise(trap.OOB)
		}
		return
	}
	if offset+n > m.size {
		trap.Raise(trap.OOB)
	}
}

// rangeCheck is RangeCheck gated by the checking mode; bulk operations
// stay checked under guard mode, only CheckNone disables them.
func (m *Memory) rangeCheck(offset, n uint64) {
	if checkMode != CheckNone {
		m.RangeCheck(offset, n)
	}
}

// check validates a single sized access per the active mode.
func (m *Memory) check(addr, n uint64) {
	if sanityChecks {
		m.checkBase()
	}
	if checkMode == CheckBounds {
		m.RangeCheck(addr, n)
	}
}
