// Package mem implements linear memory access for translated modules:
// sized loads and stores with little-endian semantics on any host, bulk
// operations, data-segment initialisation, and the selectable checking
// modes (bounds, guard, none).
//
// All multi-byte access routes through an endian adapter. On big-endian
// hosts the buffer is mirrored end-to-end so a native-order read at the
// adapted position yields the value a little-endian machine would see;
// byte-granular operations are orientation-invariant.
package mem
