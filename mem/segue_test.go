package mem

import "testing"

func TestFastPathTransparent(t *testing.T) {
	if bigEndian {
		t.Skip("fast path requires a little-endian host")
	}
	m := newTestMemory(t)
	m.I32Store(0, 0x11223344)

	if err := EnableFastPath(m); err != nil {
		t.Fatalf("EnableFastPath: %v", err)
	}
	defer DisableFastPath()

	// Behaviour is unchanged with the base pinned.
	if got := m.I32Load(0); got != 0x11223344 {
		t.Errorf("pinned load: got %#x", got)
	}
	m.I64Store(8, 77)
	if got := m.I64Load(8); got != 77 {
		t.Errorf("pinned store: got %d", got)
	}

	// Other memories are unaffected.
	other := newTestMemory(t)
	other.I32Store(0, 5)
	if got := other.I32Load(0); got != 5 {
		t.Errorf("other memory: got %d", got)
	}
}

func TestFastPathPreconditions(t *testing.T) {
	if bigEndian {
		t.Skip("fast path requires a little-endian host")
	}
	m64, err := New64(1, 2)
	if err != nil {
		t.Fatalf("New64: %v", err)
	}
	if err := EnableFastPath(m64); err == nil {
		t.Error("64-bit memory should be rejected")
	}

	a := newTestMemory(t)
	b := newTestMemory(t)
	if err := EnableFastPath(a); err != nil {
		t.Fatalf("EnableFastPath: %v", err)
	}
	defer DisableFastPath()
	if err := EnableFastPath(b); err == nil {
		t.Error("second memory should be rejected while one is pinned")
	}
	// Re-enabling the same memory is fine.
	if err := EnableFastPath(a); err != nil {
		t.Errorf("re-enable: %v", err)
	}
}

func TestSanityCheck(t *testing.T) {
	if bigEndian {
		t.Skip("fast path requires a little-endian host")
	}
	m := newTestMemory(t)
	if err := EnableFastPath(m); err != nil {
		t.Fatalf("EnableFastPath: %v", err)
	}
	defer DisableFastPath()

	SetSanityChecks(true)
	defer SetSanityChecks(false)

	m.I32Store(0, 1)

	// Swapping the buffer out from under the pinned base aborts.
	m.data = make([]byte, m.size)
	defer func() {
		if recover() == nil {
			t.Error("expected a panic on base mismatch")
		}
	}()
	m.I32Load(0)
}
