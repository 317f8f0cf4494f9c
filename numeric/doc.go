// Package numeric implements the integer and float operators with wasm
// trap and NaN semantics: bit counting, rotates, trapping division,
// NaN-canonicalising float math, reinterpret casts, and the trapping
// and saturating truncations to integer.
package numeric
