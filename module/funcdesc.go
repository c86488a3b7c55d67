// Package module assembles a decoded wasm.Module into the indexed,
// cross-referenced view the lowering and emission stages need: a flat
// function table (imported and defined functions share one index
// space), resolved types, memory sizing, and data segments.
package module

import (
	"github.com/gowasm/w2r/ir"
	"github.com/gowasm/w2r/wasm"
)

// FuncKind distinguishes an imported function stub from one with a body.
type FuncKind int

const (
	// Imported functions have a signature and a module/name pair but no
	// body to lower.
	Imported FuncKind = iota
	// Defined functions have declared locals and a lowered body.
	Defined
)

// FuncDesc describes one entry in the module's flat function index
// space, whether imported or defined.
type FuncDesc struct {
	Sig  ir.Sig
	Kind FuncKind

	// Imported-only.
	ImportModule string
	ImportName   string

	// Defined-only.
	Locals []LocalVar
	Body   []ir.Stmt

	// Symbol is this function's internal name, __w2r_f<index>; an
	// exported function is emitted under DisplayName instead.
	Symbol string
	Index  uint32

	Exported   bool
	ExportName string
}

// LocalVar names one declared local by slot and value type.
type LocalVar struct {
	Slot uint32
	Type wasm.ValType
}

// DisplayName is the identifier this function is emitted and called
// under: the export name verbatim when exported, otherwise Symbol.
func (f FuncDesc) DisplayName() string {
	if f.Exported {
		return f.ExportName
	}
	return f.Symbol
}

// Ref returns the self-contained snapshot lower.FuncTable hands back
// to a call site: enough to name and arity-check the target without
// re-consulting the Context. Exports are resolved before any body is
// lowered, so DisplayName already reflects the function's final name.
func (f FuncDesc) Ref() ir.FuncRef {
	return ir.FuncRef{
		Symbol:    f.DisplayName(),
		Index:     f.Index,
		Params:    len(f.Sig.Params),
		HasResult: len(f.Sig.Results) > 0,
	}
}
