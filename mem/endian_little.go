//go:build 386 || amd64 || amd64p32 || arm || arm64 || loong64 || mipsle || mips64le || mips64p32le || ppc64le || riscv64 || wasm

package mem

// bigEndian reports the host byte order. Multi-byte accesses read and
// write native order at the adapted position, which is little-endian
// wasm semantics in both orientations.
const bigEndian = false
