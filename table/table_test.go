package table

import (
	"testing"
	"unsafe"

	"github.com/GregorR/wabt-gepix/trap"
)

func expectTrap(t *testing.T, kind trap.Kind, fn func()) {
	t.Helper()
	err := trap.Catch(fn)
	te, ok := err.(*trap.Error)
	if !ok {
		t.Fatalf("expected trap, got %v", err)
	}
	if te.Kind != kind {
		t.Fatalf("trap kind: got %v, want %v", te.Kind, kind)
	}
}

func sig(b byte) [32]byte {
	var d [32]byte
	for i := range d {
		d[i] = b
	}
	return d
}

func TestIntern(t *testing.T) {
	a := Intern(sig(1))
	b := Intern(sig(1))
	c := Intern(sig(2))
	if a != b {
		t.Error("same digest should intern to the same descriptor")
	}
	if a == c {
		t.Error("different digests should not share a descriptor")
	}
}

func TestTypesEq(t *testing.T) {
	a := Intern(sig(3))

	// A descriptor from a different pool with the same bytes is equal.
	foreign := sig(3)
	if !TypesEq(a, FuncType(&foreign)) {
		t.Error("equal bytes across pools should compare equal")
	}

	other := sig(4)
	if TypesEq(a, FuncType(&other)) {
		t.Error("different bytes should not compare equal")
	}
	if TypesEq(a, nil) || TypesEq(nil, a) {
		t.Error("nil is equal only to nil")
	}
	if !TypesEq(nil, nil) {
		t.Error("nil == nil")
	}
}

func TestGetSet(t *testing.T) {
	tbl := NewFuncrefTable(4, 8)
	if tbl.Size() != 4 || tbl.MaxSize() != 8 {
		t.Fatalf("size/max: %d/%d", tbl.Size(), tbl.MaxSize())
	}

	fn := func() uint32 { return 7 }
	ref := Funcref{Type: Intern(sig(1)), Func: fn}
	tbl.Set(2, ref)
	got := tbl.Get(2)
	if got.Func == nil || got.Type != ref.Type {
		t.Error("Get did not return the stored entry")
	}
	if got.Func.(func() uint32)() != 7 {
		t.Error("stored function should be invokable")
	}

	if tbl.Get(0).Func != nil {
		t.Error("fresh entries are null")
	}
	expectTrap(t, trap.OOB, func() { tbl.Get(4) })
	expectTrap(t, trap.OOB, func() { tbl.Set(4, ref) })
}

func TestFill(t *testing.T) {
	tbl := NewExternrefTable(6, 6)
	vals := make([]int, 3)
	tbl.Fill(1, Externref(unsafe.Pointer(&vals[0])), 3)
	for i := uint32(0); i < 6; i++ {
		want := i >= 1 && i < 4
		if (tbl.Get(i) != nil) != want {
			t.Errorf("entry %d: non-null=%v, want %v", i, tbl.Get(i) != nil, want)
		}
	}
	tbl.Fill(6, nil, 0)
	expectTrap(t, trap.OOB, func() { tbl.Fill(4, nil, 3) })
}

func TestCopyOverlap(t *testing.T) {
	tbl := NewFuncrefTable(8, 8)
	types := make([]FuncType, 8)
	for i := range types {
		types[i] = Intern(sig(byte(10 + i)))
		tbl.Set(uint32(i), Funcref{Type: types[i], Func: func() {}})
	}

	// Forward overlap: entries 0..5 move to 2..7, sources preserved.
	tbl.Copy(tbl, 2, 0, 6)
	for i := uint32(0); i < 6; i++ {
		if got := tbl.Get(2 + i).Type; got != types[i] {
			t.Errorf("entry %d: wrong type after overlapping copy", 2+i)
		}
	}

	expectTrap(t, trap.OOB, func() { tbl.Copy(tbl, 6, 0, 3) })
	expectTrap(t, trap.OOB, func() { tbl.Copy(tbl, 0, 6, 3) })
}

// instanceRec stands in for a module-instance record; element
// expressions address its fields by byte offset.
type instanceRec struct {
	pad    uint64
	global *Funcref
}

func TestInitFuncref(t *testing.T) {
	tbl := NewFuncrefTable(8, 8)
	ft := Intern(sig(9))
	fn := func() uint32 { return 1 }

	globalEntry := Funcref{Type: Intern(sig(8)), Func: fn}
	inst := &instanceRec{global: &globalEntry}

	exprs := []ElemExpr{
		{Kind: RefFunc, Type: ft, Func: fn, ModuleOffset: unsafe.Offsetof(inst.pad)},
		{Kind: RefNull},
		{Kind: GlobalGet, ModuleOffset: unsafe.Offsetof(inst.global)},
	}
	InitFuncref(tbl, exprs, 3, 0, 3, unsafe.Pointer(inst))

	got := tbl.Get(3)
	if got.Type != ft || got.Func == nil {
		t.Error("RefFunc entry not materialised")
	}
	if got.Instance != unsafe.Pointer(inst) {
		t.Error("RefFunc instance pointer should be instance+offset")
	}
	if tbl.Get(4).Func != nil {
		t.Error("RefNull entry should be null")
	}
	if g := tbl.Get(5); g.Type != globalEntry.Type || g.Func == nil {
		t.Error("GlobalGet entry should copy the referenced funcref")
	}

	expectTrap(t, trap.OOB, func() { InitFuncref(tbl, exprs, 0, 2, 2, unsafe.Pointer(inst)) })
	expectTrap(t, trap.OOB, func() { InitFuncref(tbl, exprs, 7, 0, 2, unsafe.Pointer(inst)) })
}

func TestInitExternref(t *testing.T) {
	tbl := NewExternrefTable(4, 4)
	v := 1
	tbl.Fill(0, Externref(unsafe.Pointer(&v)), 4)

	InitExternref(tbl, 10, 1, 4, 2)
	if tbl.Get(0) == nil || tbl.Get(3) == nil {
		t.Error("entries outside the range should be untouched")
	}
	if tbl.Get(1) != nil || tbl.Get(2) != nil {
		t.Error("initialised entries should be null")
	}

	expectTrap(t, trap.OOB, func() { InitExternref(tbl, 4, 0, 3, 2) })
	expectTrap(t, trap.OOB, func() { InitExternref(tbl, 10, 3, 0, 2) })
}
