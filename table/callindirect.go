package table

import (
	"github.com/GregorR/wabt-gepix/mem"
	"github.com/GregorR/wabt-gepix/trap"
)

// CheckIndirect validates a call_indirect target and returns its entry
// for the caller to invoke: the caller type-asserts the concrete
// signature on the returned Func. Traps CallIndirect when idx is out of
// range, the entry is null, or the signatures differ. Under the
// nonconforming no-check memory mode the validation is skipped
// entirely.
func CheckIndirect(t *FuncrefTable, expected FuncType, idx uint32) Funcref {
	if mem.Mode() == mem.CheckNone {
		return t.data[idx]
	}
	if idx >= t.Size() {
		trap.Raise(trap.CallIndirect)
	}
	entry := t.data[idx]
	if entry.Func == nil || !TypesEq(expected, entry.Type) {
		trap.Raise(trap.CallIndirect)
	}
	return entry
}
