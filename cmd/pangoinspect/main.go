package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/pangobind"
)

func main() {
	var (
		wasmFile    = flag.String("wasm", "", "Path to a WebAssembly build of Pango (default: builtin library)")
		families    = flag.Bool("families", false, "List font families and their faces")
		describe    = flag.String("describe", "", "Parse a font description and print its fields")
		chars       = flag.String("coverage", "", "Characters to mark in a coverage")
		runeRange   = flag.String("range", "", "Code point range to mark in a coverage (0x41-0x5a)")
		level       = flag.String("set", "exact", "Coverage level for -coverage and -range")
		inFile      = flag.String("in", "", "Start from a serialized coverage")
		outFile     = flag.String("out", "", "Write the serialized coverage")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Log ownership events")
	)
	flag.Parse()

	o := options{
		families:  *families,
		describe:  *describe,
		chars:     *chars,
		runeRange: *runeRange,
		level:     *level,
		in:        *inFile,
		out:       *outFile,
	}

	if !*interactive && !o.any() {
		fmt.Fprintln(os.Stderr, "Usage: pangoinspect [-wasm file.wasm] -families")
		fmt.Fprintln(os.Stderr, "       pangoinspect [-wasm file.wasm] -describe \"Sans Bold 12\"")
		fmt.Fprintln(os.Stderr, "       pangoinspect [-wasm file.wasm] -coverage abc [-range 0x41-0x5a] [-set exact] [-in f] [-out f]")
		fmt.Fprintln(os.Stderr, "       pangoinspect [-wasm file.wasm] -i  (interactive mode)")
		os.Exit(1)
	}

	log := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		log = l
	}
	defer log.Sync()

	ctx := context.Background()
	s, err := pangobind.Open(ctx, pangobind.Config{WasmPath: *wasmFile, Logger: log})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer s.Close(ctx)

	if *interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(s.Binding, *wasmFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	st := plainStyles()
	if term.IsTerminal(int(os.Stdout.Fd())) {
		st = colorStyles()
	}
	if err := run(os.Stdout, st, s.Binding, o); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
