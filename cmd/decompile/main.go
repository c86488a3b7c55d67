// Command decompile turns a WASM module into deterministic Rust source.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/gowasm/w2r/diag"
	"github.com/gowasm/w2r/emit"
	"github.com/gowasm/w2r/module"
)

func main() {
	var (
		wasmFile    = flag.String("wasm", "", "Path to a WASM module")
		outFile     = flag.String("o", "", "Output path for generated Rust source (default: stdout)")
		strict      = flag.Bool("strict", false, "Abort on module validation failure instead of decompiling best-effort")
		interactive = flag.Bool("i", false, "Interactive mode: browse defined functions and preview their decompiled source")
		verbose     = flag.Bool("v", false, "Log diagnostics to stderr")
	)
	flag.Parse()

	if *verbose {
		l, err := zap.NewDevelopment()
		if err == nil {
			diag.SetLogger(l)
		}
	}

	if *wasmFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: decompile -wasm <file.wasm> [-o out.rs] [-strict] [-v]")
		fmt.Fprintln(os.Stderr, "       decompile -wasm <file.wasm> -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(*wasmFile, *outFile, *strict, *interactive); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(wasmFile, outFile string, strict, interactive bool) error {
	data, err := os.ReadFile(wasmFile)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	m, err := module.ParseModule(data)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	if strict {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("validate: %w", err)
		}
	}

	ctx, err := module.Assemble(m)
	if err != nil {
		return fmt.Errorf("assemble: %w", err)
	}

	if interactive {
		if !isTerminal() {
			return fmt.Errorf("interactive mode requires a terminal on stdout")
		}
		return runInteractive(wasmFile, ctx)
	}

	src := strings.Join(emit.Source(ctx), "\n") + "\n"

	if outFile == "" {
		_, err := fmt.Print(src)
		return err
	}
	return os.WriteFile(outFile, []byte(src), 0o644)
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
