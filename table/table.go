package table

import (
	"sync"
	"unsafe"

	"github.com/GregorR/wabt-gepix/trap"
)

// FuncType points at an interned 32-byte signature descriptor.
type FuncType *[32]byte

var (
	internMu   sync.Mutex
	internPool = map[[32]byte]FuncType{}
)

// Intern returns the canonical descriptor for digest. The pool is
// written during module initialisation and read-only afterwards.
func Intern(digest [32]byte) FuncType {
	internMu.Lock()
	defer internMu.Unlock()
	if t, ok := internPool[digest]; ok {
		return t
	}
	t := FuncType(&digest)
	internPool[digest] = t
	return t
}

// TypesEq reports whether two descriptors denote the same signature.
// Statically linked modules carry distinct interned pools, so equal
// bytes count as equal even across different pointers.
func TypesEq(a, b FuncType) bool {
	return a == b || (a != nil && b != nil && *a == *b)
}

// Function holds a generated function value. Callers type-assert the
// concrete signature before invoking.
type Function = any

// Funcref is one function-table entry. A null entry has Func == nil.
type Funcref struct {
	Type       FuncType
	Func       Function
	Tailcallee Function
	Instance   unsafe.Pointer
}

// Nullify writes the canonical null funcref.
func Nullify(ref *Funcref) {
	*ref = Funcref{}
}

// Externref is an opaque reference value; the zero value is null.
type Externref unsafe.Pointer

// Table is the storage shared by both reference-table flavours.
type Table[R any] struct {
	data    []R
	maxSize uint32
}

// FuncrefTable holds function references.
type FuncrefTable = Table[Funcref]

// ExternrefTable holds opaque external references.
type ExternrefTable = Table[Externref]

// NewFuncrefTable creates a function-reference table of size entries,
// capped at maxSize.
func NewFuncrefTable(size, maxSize uint32) *FuncrefTable {
	return &FuncrefTable{data: make([]Funcref, size), maxSize: maxSize}
}

// NewExternrefTable creates an extern-reference table of size entries,
// capped at maxSize.
func NewExternrefTable(size, maxSize uint32) *ExternrefTable {
	return &ExternrefTable{data: make([]Externref, size), maxSize: maxSize}
}

// Size returns the current entry count.
func (t *Table[R]) Size() uint32 {
	return uint32(len(t.data))
}

// MaxSize returns the entry cap.
func (t *Table[R]) MaxSize() uint32 {
	return t.maxSize
}

// Get implements table.get.
func (t *Table[R]) Get(i uint32) R {
	if i >= t.Size() {
		trap.Raise(trap.OOB)
	}
	return t.data[i]
}

// Set implements table.set.
func (t *Table[R]) Set(i uint32, val R) {
	if i >= t.Size() {
		trap.Raise(trap.OOB)
	}
	t.data[i] = val
}

// Fill implements table.fill.
func (t *Table[R]) Fill(d uint32, val R, n uint32) {
	if uint64(d)+uint64(n) > uint64(t.Size()) {
		trap.Raise(trap.OOB)
	}
	for i := d; i < d+n; i++ {
		t.data[i] = val
	}
}

// Copy implements table.copy. Overlapping ranges preserve the source
// entries.
func (t *Table[R]) Copy(src *Table[R], d, s, n uint32) {
	if uint64(d)+uint64(n) > uint64(t.Size()) {
		trap.Raise(trap.OOB)
	}
	if uint64(s)+uint64(n) > uint64(src.Size()) {
		trap.Raise(trap.OOB)
	}
	copy(t.data[d:d+n], src.data[s:s+n])
}
