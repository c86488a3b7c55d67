package module

import (
	"fmt"

	"github.com/gowasm/w2r/diag"
	"github.com/gowasm/w2r/errors"
	"github.com/gowasm/w2r/ir"
	"github.com/gowasm/w2r/lower"
	"github.com/gowasm/w2r/wasm"
)

// ParseModule decodes a WASM binary into a *wasm.Module, wrapping any
// decode failure as a structured *errors.Error so callers outside this
// package never need to import the wasm package just to classify an
// error. The wasm package's own parse errors (malformed LEB128s,
// truncated sections, bad magic/version) become the Cause.
func ParseModule(data []byte) (*wasm.Module, error) {
	m, err := wasm.ParseModule(data)
	if err != nil {
		return nil, errors.New(errors.PhaseAssemble, errors.KindInvalid).
			Cause(err).
			Detail("failed to parse wasm module").
			Build()
	}
	return m, nil
}

// Assemble builds a Context from a decoded module, following the
// ordering rules: types first, then imports (which consume function
// indices only for function-kind imports), then defined functions
// paired with their code-section entries by position, then exports,
// then bodies (lowered once the whole function table exists), then
// memory sizing, then data segments.
//
// It runs wasm.Module.Validate() first and logs a warning on failure
// rather than aborting; callers that want strict conformance checking
// should call Validate themselves and decide whether to proceed.
func Assemble(m *wasm.Module) (*Context, error) {
	if err := m.Validate(); err != nil {
		diag.Logger().Sugar().Warnw("module failed validation, assembling best-effort", "error", err)
	}
	if m.Start != nil {
		diag.Logger().Sugar().Infof("Start Function is: %d", *m.Start)
	}

	types := make([]ir.Sig, len(m.Types))
	for i, ft := range m.Types {
		types[i] = ir.Sig{Params: append([]wasm.ValType(nil), ft.Params...), Results: append([]wasm.ValType(nil), ft.Results...)}
	}

	var funcs []FuncDesc
	for _, imp := range m.Imports {
		if imp.Desc.Kind != wasm.KindFunc {
			continue
		}
		idx := uint32(len(funcs))
		sig, err := sigFor(types, imp.Desc.TypeIdx)
		if err != nil {
			diag.Logger().Sugar().Warnw("skipping import with unknown type", "module", imp.Module, "name", imp.Name, "error", err)
			continue
		}
		funcs = append(funcs, FuncDesc{
			Kind:         Imported,
			Sig:          sig,
			ImportModule: imp.Module,
			ImportName:   imp.Name,
			Symbol:       fmt.Sprintf("__w2r_f%d", idx),
			Index:        idx,
		})
	}

	numImported := len(funcs)
	for i, typeIdx := range m.Funcs {
		idx := uint32(numImported + i)
		sig, err := sigFor(types, typeIdx)
		if err != nil {
			diag.Logger().Sugar().Warnw("skipping function with unknown type", "index", idx, "error", err)
			continue
		}
		var locals []LocalVar
		if i < len(m.Code) {
			locals = expandLocals(sig, m.Code[i].Locals)
		}
		funcs = append(funcs, FuncDesc{
			Kind:   Defined,
			Sig:    sig,
			Locals: locals,
			Symbol: fmt.Sprintf("__w2r_f%d", idx),
			Index:  idx,
		})
	}

	for _, exp := range m.Exports {
		if exp.Kind != wasm.KindFunc {
			continue
		}
		if int(exp.Idx) >= len(funcs) || funcs[exp.Idx].Kind != Defined {
			diag.Logger().Sugar().Warnw("export names a non-defined function, ignoring", "name", exp.Name, "index", exp.Idx)
			continue
		}
		funcs[exp.Idx].Exported = true
		funcs[exp.Idx].ExportName = exp.Name
	}

	ctx := &Context{Functions: funcs, Types: types}

	for i := range funcs {
		if funcs[i].Kind != Defined {
			continue
		}
		codeIdx := int(funcs[i].Index) - numImported
		if codeIdx < 0 || codeIdx >= len(m.Code) {
			continue
		}
		instrs, err := wasm.DecodeInstructions(m.Code[codeIdx].Code)
		if err != nil {
			diag.Logger().Sugar().Warnw("failed to decode function body", "index", funcs[i].Index, "error", err)
			continue
		}
		body, err := lower.Func(funcs[i].Index, instrs, funcs[i].Sig, ctx)
		if err != nil {
			diag.Logger().Sugar().Warnw("failed to lower function body", "index", funcs[i].Index, "error", err)
			continue
		}
		funcs[i].Body = body
	}

	const defaultMemoryPages = 16
	ctx.MemoryPages = defaultMemoryPages
	if len(m.Memories) > 0 {
		ctx.MemoryPages = m.Memories[0].Limits.Min
	}

	for _, seg := range m.Data {
		if seg.Flags == 1 {
			continue // passive, never active at memory index 0
		}
		if seg.Flags == 2 && seg.MemIdx != 0 {
			continue
		}
		offset, err := constOffset(seg.Offset)
		if err != nil {
			diag.Logger().Sugar().Warnw("skipping data segment with unsupported init expression", "error", err)
			continue
		}
		ctx.Data = append(ctx.Data, DataSegment{Offset: offset, Bytes: seg.Init})
	}

	return ctx, nil
}

func sigFor(types []ir.Sig, typeIdx uint32) (ir.Sig, error) {
	if int(typeIdx) >= len(types) {
		return ir.Sig{}, errors.Invalid(nil, "type index %d out of range", typeIdx)
	}
	return types[typeIdx], nil
}

// expandLocals flattens the code section's run-length local groups
// into one slot per declared local, numbered after the function's
// parameters.
func expandLocals(sig ir.Sig, entries []wasm.LocalEntry) []LocalVar {
	var locals []LocalVar
	slot := uint32(len(sig.Params))
	for _, e := range entries {
		for i := uint32(0); i < e.Count; i++ {
			locals = append(locals, LocalVar{Slot: slot, Type: e.ValType})
			slot++
		}
	}
	return locals
}

// constOffset requires the init expression to be exactly
// (i32.const V, end); any other form is unsupported.
func constOffset(initExpr []byte) (int32, error) {
	instrs, err := wasm.DecodeInstructions(initExpr)
	if err != nil {
		return 0, err
	}
	if len(instrs) != 2 || instrs[0].Opcode != wasm.OpI32Const || instrs[1].Opcode != wasm.OpEnd {
		return 0, errors.Invalid(nil, "data segment offset is not a bare i32.const")
	}
	return instrs[0].Imm.(wasm.I32Imm).Value, nil
}
