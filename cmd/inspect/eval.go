package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/GregorR/wabt-gepix/mem"
	"github.com/GregorR/wabt-gepix/numeric"
	"github.com/GregorR/wabt-gepix/trap"
)

// session holds the state a command line pokes at: one linear memory.
type session struct {
	memory *mem.Memory
}

func newSession(pages uint64) (*session, error) {
	m, err := mem.New(pages, pages)
	if err != nil {
		return nil, err
	}
	return &session{memory: m}, nil
}

// eval runs one inspector command and renders its result. Traps are
// caught here and reported like any other outcome, which makes the
// tool a convenient way to probe boundary behaviour.
func (s *session) eval(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}

	var out string
	err := trap.Catch(func() {
		out = s.run(fields[0], fields[1:])
	})
	if err != nil {
		return "trap: " + err.Error()
	}
	return out
}

func (s *session) run(cmd string, args []string) string {
	switch cmd {
	case "get":
		width, addr := parseUint(args, 0), parseUint(args, 1)
		switch width {
		case 8:
			return fmt.Sprintf("%#x", s.memory.I32Load8U(addr))
		case 16:
			return fmt.Sprintf("%#x", s.memory.I32Load16U(addr))
		case 32:
			return fmt.Sprintf("%#x", s.memory.I32Load(addr))
		case 64:
			return fmt.Sprintf("%#x", s.memory.I64Load(addr))
		}
		return "width must be 8, 16, 32 or 64"

	case "set":
		width, addr, val := parseUint(args, 0), parseUint(args, 1), parseUint(args, 2)
		switch width {
		case 8:
			s.memory.I32Store8(addr, uint32(val))
		case 16:
			s.memory.I32Store16(addr, uint32(val))
		case 32:
			s.memory.I32Store(addr, uint32(val))
		case 64:
			s.memory.I64Store(addr, val)
		default:
			return "width must be 8, 16, 32 or 64"
		}
		return "ok"

	case "fill":
		d, v, n := parseUint(args, 0), parseUint(args, 1), parseUint(args, 2)
		s.memory.Fill(d, byte(v), n)
		return "ok"

	case "copy":
		d, src, n := parseUint(args, 0), parseUint(args, 1), parseUint(args, 2)
		s.memory.Copy(s.memory, d, src, n)
		return "ok"

	case "hex":
		addr, n := parseUint(args, 0), parseUint(args, 1)
		return s.hexdump(addr, n)

	case "op":
		if len(args) == 0 {
			return "usage: op <name> <args...>"
		}
		return evalOp(args[0], args[1:])

	case "help":
		return helpText
	}
	return "unknown command; try help"
}

func (s *session) hexdump(addr, n uint64) string {
	var b strings.Builder
	for row := uint64(0); row < n; row += 16 {
		fmt.Fprintf(&b, "%08x ", addr+row)
		for i := row; i < row+16 && i < n; i++ {
			fmt.Fprintf(&b, " %02x", byte(s.memory.I32Load8U(addr+i)))
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// evalOp dispatches a numeric operator by its wasm opcode name.
func evalOp(name string, args []string) string {
	switch name {
	case "i32.clz":
		return fmt.Sprint(numeric.I32Clz(uint32(parseUint(args, 0))))
	case "i32.ctz":
		return fmt.Sprint(numeric.I32Ctz(uint32(parseUint(args, 0))))
	case "i32.popcnt":
		return fmt.Sprint(numeric.I32Popcnt(uint32(parseUint(args, 0))))
	case "i32.rotl":
		return fmt.Sprintf("%#x", numeric.I32Rotl(uint32(parseUint(args, 0)), uint32(parseUint(args, 1))))
	case "i32.rotr":
		return fmt.Sprintf("%#x", numeric.I32Rotr(uint32(parseUint(args, 0)), uint32(parseUint(args, 1))))
	case "i32.div_s":
		return fmt.Sprint(int32(numeric.I32DivS(parseI32(args, 0), parseI32(args, 1))))
	case "i32.rem_s":
		return fmt.Sprint(int32(numeric.I32RemS(parseI32(args, 0), parseI32(args, 1))))
	case "i32.div_u":
		return fmt.Sprint(numeric.I32DivU(uint32(parseUint(args, 0)), uint32(parseUint(args, 1))))
	case "i32.rem_u":
		return fmt.Sprint(numeric.I32RemU(uint32(parseUint(args, 0)), uint32(parseUint(args, 1))))
	case "f64.floor":
		return fmt.Sprint(numeric.F64Floor(parseF64(args, 0)))
	case "f64.ceil":
		return fmt.Sprint(numeric.F64Ceil(parseF64(args, 0)))
	case "f64.trunc":
		return fmt.Sprint(numeric.F64Trunc(parseF64(args, 0)))
	case "f64.nearest":
		return fmt.Sprint(numeric.F64Nearest(parseF64(args, 0)))
	case "f64.sqrt":
		return fmt.Sprint(numeric.F64Sqrt(parseF64(args, 0)))
	case "f64.min":
		return fmt.Sprint(numeric.F64Min(parseF64(args, 0), parseF64(args, 1)))
	case "f64.max":
		return fmt.Sprint(numeric.F64Max(parseF64(args, 0), parseF64(args, 1)))
	case "i32.trunc_f64_s":
		return fmt.Sprint(int32(numeric.I32TruncF64S(parseF64(args, 0))))
	case "i32.trunc_f64_u":
		return fmt.Sprint(numeric.I32TruncF64U(parseF64(args, 0)))
	case "i32.trunc_sat_f64_s":
		return fmt.Sprint(int32(numeric.I32TruncSatF64S(parseF64(args, 0))))
	case "i64.reinterpret_f64":
		return fmt.Sprintf("%#x", numeric.I64ReinterpretF64(parseF64(args, 0)))
	}
	return "unknown operator: " + name
}

func parseUint(args []string, i int) uint64 {
	if i >= len(args) {
		return 0
	}
	v, _ := strconv.ParseUint(args[i], 0, 64)
	return v
}

func parseI32(args []string, i int) uint32 {
	if i >= len(args) {
		return 0
	}
	v, _ := strconv.ParseInt(args[i], 0, 64)
	return uint32(int32(v))
}

func parseF64(args []string, i int) float64 {
	if i >= len(args) {
		return 0
	}
	v, _ := strconv.ParseFloat(args[i], 64)
	return v
}

const helpText = `commands:
  get <width> <addr>        load 8/16/32/64 bits
  set <width> <addr> <val>  store 8/16/32/64 bits
  fill <addr> <byte> <n>    memory.fill
  copy <dst> <src> <n>      memory.copy within the memory
  hex <addr> <n>            hexdump
  op <name> <args...>       numeric operator, e.g. op i32.div_s 7 -2
  help                      this text`
