// Package gepix is the runtime support core consumed by ahead-of-time
// translated WebAssembly modules.
//
// Translated code is a straight-line sequence of calls into the
// primitive packages, which jointly define the execution semantics:
//
//   - mem: linear memory access with little-endian semantics on any
//     host, bulk operations, and selectable checking modes
//   - table: funcref/externref tables, element segments, and the
//     indirect-call check
//   - numeric: integer and float operators with wasm trap and NaN
//     semantics
//   - trap: the non-local exit and call-stack depth accounting
//   - errors: structured errors for the embedder boundary
//
// The embedder allocates memories and tables, invokes translated
// entry points inside trap.Catch, and owns trap recovery; no primitive
// reports an error by return value.
package gepix
