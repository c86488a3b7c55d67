// Package emit renders an assembled module.Context as Rust source
// text: a no-main header, externs for imported functions grouped by
// module, a synthetic setup function that sizes memory and writes
// data segments, and one function per defined WASM function.
package emit

import (
	"fmt"
	"strings"

	"github.com/gowasm/w2r/module"
)

const indentUnit = "    "

// generator accumulates output lines, tracking indentation the way
// the oisee-minz C backend's emit(format, args...) accumulator does.
type generator struct {
	lines  []string
	indent int
}

func (g *generator) emit(format string, args ...any) {
	g.lines = append(g.lines, strings.Repeat(indentUnit, g.indent)+fmt.Sprintf(format, args...))
}

func (g *generator) blank() { g.lines = append(g.lines, "") }

// Source renders ctx as a complete Rust source file, returned as a
// slice of lines.
func Source(ctx *module.Context) []string {
	g := &generator{}

	g.emit("#![no_main]")
	g.blank()

	g.externs(ctx)
	g.setup(ctx)

	for i := range ctx.Functions {
		fn := &ctx.Functions[i]
		if fn.Kind != module.Defined {
			continue
		}
		g.function(fn)
		g.blank()
	}

	return g.lines
}

// Function renders a single defined function's signature and body,
// for callers that want to display or inspect one function at a time
// rather than a whole source file.
func Function(fn *module.FuncDesc) []string {
	g := &generator{}
	g.function(fn)
	return g.lines
}

// externs groups imported functions by their originating module and
// emits one extern "C" block per module, in first-seen order.
func (g *generator) externs(ctx *module.Context) {
	var order []string
	groups := map[string][]*module.FuncDesc{}
	for i := range ctx.Functions {
		fn := &ctx.Functions[i]
		if fn.Kind != module.Imported {
			continue
		}
		if _, seen := groups[fn.ImportModule]; !seen {
			order = append(order, fn.ImportModule)
		}
		groups[fn.ImportModule] = append(groups[fn.ImportModule], fn)
	}

	for _, mod := range order {
		g.emit("#[link(wasm_import_module = %q)]", mod)
		g.emit("extern \"C\" {")
		g.indent++
		for _, fn := range groups[mod] {
			g.emit("#[link_name = %q]", fn.ImportName)
			g.emit("fn %s(%s)%s;", fn.Symbol, paramList(fn.Sig.Params), returnClause(fn.Sig))
		}
		g.indent--
		g.emit("}")
		g.blank()
	}
}

// function emits one defined function's signature, declared locals,
// and lowered body.
func (g *generator) function(fn *module.FuncDesc) {
	if fn.Exported {
		g.emit("#[no_mangle]")
	}
	g.emit("pub unsafe extern \"C\" fn %s(%s)%s {", fn.DisplayName(), paramList(fn.Sig.Params), returnClause(fn.Sig))
	g.indent++
	if len(fn.Locals) > 0 {
		names := make([]string, len(fn.Locals))
		types := make([]string, len(fn.Locals))
		for i, l := range fn.Locals {
			names[i] = fmt.Sprintf("mut p%d", l.Slot)
			types[i] = l.Type.String()
		}
		typeList := strings.Join(types, ", ")
		if len(types) == 1 {
			typeList += "," // a single-element tuple type requires the trailing comma
		}
		g.emit("let (%s): (%s);", strings.Join(names, ", "), typeList)
	}
	for _, s := range fn.Body {
		g.stmt(s)
	}
	g.indent--
	g.emit("}")
}
