package errors

import (
	"errors"
	"strings"
	"testing"

	"github.com/GregorR/wabt-gepix/trap"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseInit,
				Kind:   KindOutOfBounds,
				Path:   []string{"table", "elem"},
				Detail: "segment length mismatch",
			},
			contains: []string{"[init]", "out_of_bounds", "table.elem", "segment length mismatch"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseExec,
				Kind:  KindDivByZero,
			},
			contains: []string{"[exec]", "division_by_zero"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseAlloc,
				Kind:   KindInvalidInput,
				Detail: "bad page count",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[alloc]", "invalid_input", "bad page count", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contains {
				if !strings.Contains(msg, want) {
					t.Errorf("message %q missing %q", msg, want)
				}
			}
		})
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("boom")
	err := New(PhaseTool, KindUnsupported).
		Path("inspect", "memory").
		Detail("width %d not supported", 3).
		Cause(cause).
		Build()

	if err.Phase != PhaseTool || err.Kind != KindUnsupported {
		t.Errorf("phase/kind: got %s/%s", err.Phase, err.Kind)
	}
	if err.Detail != "width 3 not supported" {
		t.Errorf("detail: got %q", err.Detail)
	}
	if !errors.Is(err, cause) {
		t.Error("cause should unwrap")
	}
}

func TestIs(t *testing.T) {
	err := InvalidInput(PhaseAlloc, "x")
	if !errors.Is(err, &Error{Phase: PhaseAlloc, Kind: KindInvalidInput}) {
		t.Error("Is should match same phase and kind")
	}
	if errors.Is(err, &Error{Phase: PhaseExec, Kind: KindInvalidInput}) {
		t.Error("Is should not match different phase")
	}
}

func TestFromTrap(t *testing.T) {
	tests := []struct {
		kind trap.Kind
		want Kind
	}{
		{trap.OOB, KindOutOfBounds},
		{trap.IntOverflow, KindIntOverflow},
		{trap.DivByZero, KindDivByZero},
		{trap.InvalidConversion, KindInvalidConversion},
		{trap.Unreachable, KindUnreachable},
		{trap.CallIndirect, KindCallIndirect},
		{trap.Exhaustion, KindExhaustion},
	}
	for _, tt := range tests {
		e := FromTrap(&trap.Error{Kind: tt.kind})
		if e.Kind != tt.want {
			t.Errorf("%v: got %s, want %s", tt.kind, e.Kind, tt.want)
		}
		if e.Phase != PhaseExec {
			t.Errorf("%v: phase %s, want exec", tt.kind, e.Phase)
		}
	}
}
