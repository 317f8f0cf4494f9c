package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/GregorR/wabt-gepix/mem"
	"github.com/GregorR/wabt-gepix/trap"
)

func main() {
	var (
		pages       = flag.Uint64("pages", 1, "Linear memory size in wasm pages")
		mode        = flag.String("memcheck", "bounds", "Memory check mode: bounds, guard or none")
		command     = flag.String("cmd", "", "Run a single command and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose runtime logging")
	)
	flag.Parse()

	switch *mode {
	case "bounds":
		mem.SetCheckMode(mem.CheckBounds)
	case "guard":
		mem.SetCheckMode(mem.CheckGuard)
	case "none":
		mem.SetCheckMode(mem.CheckNone)
	default:
		fmt.Fprintf(os.Stderr, "unknown memcheck mode %q\n", *mode)
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			mem.SetLogger(logger)
			trap.SetLogger(logger)
		}
	}

	s, err := newSession(*pages)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create memory: %v\n", err)
		os.Exit(1)
	}

	if *command != "" {
		fmt.Println(s.eval(*command))
		return
	}

	if *interactive {
		if err := runInteractive(s); err != nil {
			fmt.Fprintf(os.Stderr, "tui: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Plain REPL on stdin.
	fmt.Println("wabt-gepix inspector; try help")
	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !sc.Scan() {
			break
		}
		if out := s.eval(sc.Text()); out != "" {
			fmt.Println(out)
		}
	}
}
