package table

import (
	"unsafe"

	"github.com/GregorR/wabt-gepix/trap"
)

// ElemKind selects how an element expression produces a funcref.
type ElemKind uint8

const (
	RefFunc ElemKind = iota
	RefNull
	GlobalGet
)

// ElemExpr is one entry of an element segment: a constant expression
// evaluated at instantiation. ModuleOffset locates the owning instance
// pointer (RefFunc) or the source global (GlobalGet) inside the
// module-instance record.
type ElemExpr struct {
	Kind         ElemKind
	Type         FuncType
	Func         Function
	Tailcallee   Function
	ModuleOffset uintptr
}

// InitFuncref implements table.init for funcref tables: n expressions
// from exprs starting at s are evaluated into t starting at d. Both
// ranges are validated before any entry is written.
func InitFuncref(t *FuncrefTable, exprs []ElemExpr, d, s, n uint32, instance unsafe.Pointer) {
	if uint64(s)+uint64(n) > uint64(len(exprs)) {
		trap.Raise(trap.OOB)
	}
	if uint64(d)+uint64(n) > uint64(t.Size()) {
		trap.Raise(trap.OOB)
	}
	for i := uint32(0); i < n; i++ {
		e := &exprs[s+i]
		dst := &t.data[d+i]
		switch e.Kind {
		case RefFunc:
			dst.Type = e.Type
			dst.Func = e.Func
			dst.Tailcallee = e.Tailcallee
			dst.Instance = unsafe.Add(instance, e.ModuleOffset)
		case RefNull:
			Nullify(dst)
		case GlobalGet:
			*dst = **(**Funcref)(unsafe.Add(instance, e.ModuleOffset))
		}
	}
}

// InitExternref implements table.init for externref tables. Only null
// initialisation is supported, so the source is described by its size
// alone.
func InitExternref(t *ExternrefTable, srcSize, d, s, n uint32) {
	if uint64(s)+uint64(n) > uint64(srcSize) {
		trap.Raise(trap.OOB)
	}
	if uint64(d)+uint64(n) > uint64(t.Size()) {
		trap.Raise(trap.OOB)
	}
	for i := d; i < d+n; i++ {
		t.data[i] = nil
	}
}
