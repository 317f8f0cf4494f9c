// Package errors provides structured error types for the embedder
// boundary of the runtime.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). Traps raised inside translated code never use this
// package on the hot path; FromTrap converts a caught trap into the
// structured form.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseInit, errors.KindInvalidInput).
//		Path("table", "elem").
//		Detail("segment length mismatch").
//		Build()
//
// All errors implement the standard error interface and support
// errors.Is/As.
package errors
