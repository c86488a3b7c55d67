// Package lower reconstructs a typed expression/statement tree from a
// function's linear WASM operator stream, preserving stack discipline
// and turning structured branches into labeled break/continue
// statements.
package lower

import (
	"fmt"

	"github.com/gowasm/w2r/diag"
	"github.com/gowasm/w2r/errors"
	"github.com/gowasm/w2r/ir"
	"github.com/gowasm/w2r/wasm"
)

// FuncTable resolves a call target to a self-contained FuncRef. It is
// an interface, not a concrete dependency on package module, so that
// module can depend on lower without creating an import cycle.
type FuncTable interface {
	Lookup(idx uint32) (ir.FuncRef, bool)
}

type levelKind int

const (
	levelBlock levelKind = iota
	levelLoop
)

type level struct {
	kind  levelKind
	depth uint32
}

// Func lowers one function body. index names the function for error
// reporting; instrs is its decoded operator stream (the trailing `end`
// included); sig is its signature.
func Func(index uint32, instrs []wasm.Instruction, sig ir.Sig, funcs FuncTable) ([]ir.Stmt, error) {
	path := fmt.Sprintf("func %d", index)

	if len(sig.Results) > 1 {
		return nil, errors.New(errors.PhaseLower, errors.KindUnimplemented).
			Path(path).
			Detail("functions with more than one result are unimplemented").
			Build()
	}

	p := &parser{path: path, instrs: instrs, funcs: funcs, resultCount: len(sig.Results)}
	stmts, err := p.parseSeq(nil)
	if err != nil {
		diag.Logger().Sugar().Warnw("lowering failed", "func", index, "error", err)
		return nil, err
	}

	switch len(p.exprs) {
	case 0:
		// nothing left to return
	case 1:
		stmts = append(stmts, ir.Unassigned{Value: p.exprs[0]})
	default:
		return nil, errors.Invalid([]string{path}, "%d values left on the stack at end of body", len(p.exprs))
	}

	return stmts, nil
}

type parser struct {
	path        string
	instrs      []wasm.Instruction
	pos         int
	funcs       FuncTable
	resultCount int
	exprs       []ir.Expr
}

func (p *parser) push(e ir.Expr) { p.exprs = append(p.exprs, e) }

func (p *parser) pop() (ir.Expr, error) {
	if len(p.exprs) == 0 {
		return nil, errors.Invalid([]string{p.path}, "operand stack underflow")
	}
	e := p.exprs[len(p.exprs)-1]
	p.exprs = p.exprs[:len(p.exprs)-1]
	return e, nil
}

func (p *parser) pop2() (l, r ir.Expr, err error) {
	r, err = p.pop()
	if err != nil {
		return nil, nil, err
	}
	l, err = p.pop()
	if err != nil {
		return nil, nil, err
	}
	return l, r, nil
}

func (p *parser) unimplemented(op byte) error {
	return errors.Unimplemented(errors.PhaseLower, []string{p.path}, wasm.Mnemonic(op), op)
}

// parseSeq consumes instructions until a matching `end` or the stream
// is exhausted (an `else` is rejected as an unimplemented `if`),
// starting with a fresh local operand stack — every nesting level this
// engine supports is void-typed, so in well-formed input the stack is
// empty whenever a block or loop begins and must be empty again when
// it ends. At the function root the stack is left in place on return
// so Func can turn a single leftover value into the trailing
// Unassigned statement.
func (p *parser) parseSeq(levels []level) ([]ir.Stmt, error) {
	saved := p.exprs
	p.exprs = nil
	if len(levels) > 0 {
		defer func() { p.exprs = saved }()
	}

	var stmts []ir.Stmt

	for p.pos < len(p.instrs) {
		instr := p.instrs[p.pos]
		op := instr.Opcode
		p.pos++

		switch {
		case op == wasm.OpEnd:
			if len(levels) > 0 && len(p.exprs) != 0 {
				return nil, errors.Invalid([]string{p.path}, "%d values left on the stack at end of block", len(p.exprs))
			}
			return stmts, nil

		case op == wasm.OpElse:
			return nil, p.unimplemented(wasm.OpIf)

		case op == wasm.OpUnreachable:
			stmts = append(stmts, ir.Unreachable{})

		case op == wasm.OpNop:
			stmts = append(stmts, ir.Nop{})

		case op == wasm.OpBlock, op == wasm.OpLoop:
			imm := instr.Imm.(wasm.BlockImm)
			if imm.Type != -64 {
				return nil, p.unimplemented(op)
			}
			kind := levelBlock
			if op == wasm.OpLoop {
				kind = levelLoop
			}
			depth := uint32(len(levels))
			body, err := p.parseSeq(append(levels, level{kind: kind, depth: depth}))
			if err != nil {
				return nil, err
			}
			if kind == levelLoop {
				stmts = append(stmts, ir.Loop{Body: body, Depth: depth})
			} else {
				stmts = append(stmts, ir.Block{Body: body, Depth: depth})
			}

		case op == wasm.OpIf:
			return nil, p.unimplemented(op)

		case op == wasm.OpBr, op == wasm.OpBrIf:
			imm := instr.Imm.(wasm.BranchImm)
			target, err := resolveDepth(levels, imm.LabelIdx, p.path)
			if err != nil {
				return nil, err
			}
			if op == wasm.OpBr {
				if target.kind == levelLoop {
					stmts = append(stmts, ir.Continue{Depth: target.depth})
				} else {
					stmts = append(stmts, ir.Br{Depth: target.depth})
				}
			} else {
				cond, err := p.pop()
				if err != nil {
					return nil, err
				}
				if target.kind == levelLoop {
					stmts = append(stmts, ir.ContinueIf{Cond: cond, Depth: target.depth})
				} else {
					stmts = append(stmts, ir.BrIf{Cond: cond, Depth: target.depth})
				}
			}

		case op == wasm.OpBrTable:
			imm := instr.Imm.(wasm.BrTableImm)
			cond, err := p.pop()
			if err != nil {
				return nil, err
			}
			arms := make([]ir.BrTableArm, len(imm.Labels))
			for i, l := range imm.Labels {
				t, err := resolveDepth(levels, l, p.path)
				if err != nil {
					return nil, err
				}
				arms[i] = ir.BrTableArm{Depth: t.depth, IsContinue: t.kind == levelLoop}
			}
			def, err := resolveDepth(levels, imm.Default, p.path)
			if err != nil {
				return nil, err
			}
			stmts = append(stmts, ir.BrTable{
				Cond:    cond,
				Arms:    arms,
				Default: ir.BrTableArm{Depth: def.depth, IsContinue: def.kind == levelLoop},
			})

		case op == wasm.OpReturn:
			var val ir.Expr
			if p.resultCount == 1 {
				v, err := p.pop()
				if err != nil {
					return nil, err
				}
				val = v
			}
			stmts = append(stmts, ir.Return{Value: val})

		case op == wasm.OpDrop:
			v, err := p.pop()
			if err != nil {
				return nil, err
			}
			stmts = append(stmts, ir.Drop{Value: v})

		case op == wasm.OpSelect:
			cond, err := p.pop()
			if err != nil {
				return nil, err
			}
			e2, err := p.pop()
			if err != nil {
				return nil, err
			}
			e1, err := p.pop()
			if err != nil {
				return nil, err
			}
			p.push(ir.Select{Cond: cond, A: e1, B: e2})

		case op == wasm.OpLocalGet:
			imm := instr.Imm.(wasm.LocalImm)
			p.push(ir.Local{Slot: imm.LocalIdx})

		case op == wasm.OpLocalSet:
			imm := instr.Imm.(wasm.LocalImm)
			v, err := p.pop()
			if err != nil {
				return nil, err
			}
			stmts = append(stmts, ir.LocalSet{Slot: imm.LocalIdx, Value: v})

		case op == wasm.OpLocalTee:
			imm := instr.Imm.(wasm.LocalImm)
			v, err := p.pop()
			if err != nil {
				return nil, err
			}
			p.push(ir.LocalTee{Slot: imm.LocalIdx, Value: v})

		case op == wasm.OpCall:
			imm := instr.Imm.(wasm.CallImm)
			target, ok := p.funcs.Lookup(imm.FuncIdx)
			if !ok {
				return nil, errors.Invalid([]string{p.path}, "call to unknown function index %d", imm.FuncIdx)
			}
			args := make([]ir.Expr, target.Params)
			for i := target.Params - 1; i >= 0; i-- {
				v, err := p.pop()
				if err != nil {
					return nil, err
				}
				args[i] = v
			}
			call := ir.Call{Target: target, Args: args}
			// A call whose signature has no result never leaves a
			// value on the operand stack; wrap it in a Drop statement
			// rather than a phantom push.
			if target.HasResult {
				p.push(call)
			} else {
				stmts = append(stmts, ir.Drop{Value: call})
			}

		case op == wasm.OpMemorySize:
			p.push(ir.MemSize{})

		case op == wasm.OpMemoryGrow:
			delta, err := p.pop()
			if err != nil {
				return nil, err
			}
			p.push(ir.MemGrow{Delta: delta})

		case op == wasm.OpI32Const:
			p.push(ir.ConstI32{Value: instr.Imm.(wasm.I32Imm).Value})
		case op == wasm.OpI64Const:
			p.push(ir.ConstI64{Value: instr.Imm.(wasm.I64Imm).Value})
		case op == wasm.OpF32Const:
			p.push(ir.ConstF32{Value: instr.Imm.(wasm.F32Imm).Value})
		case op == wasm.OpF64Const:
			p.push(ir.ConstF64{Value: instr.Imm.(wasm.F64Imm).Value})

		case loadOps[op]:
			imm := instr.Imm.(wasm.MemoryImm)
			addr, err := p.pop()
			if err != nil {
				return nil, err
			}
			p.push(ir.Load{Op: op, Addr: addr, AlignLog2: imm.Align, Offset: imm.Offset})

		case storeOps[op]:
			imm := instr.Imm.(wasm.MemoryImm)
			val, err := p.pop()
			if err != nil {
				return nil, err
			}
			addr, err := p.pop()
			if err != nil {
				return nil, err
			}
			stmts = append(stmts, ir.Store{Op: op, Addr: addr, Value: val, AlignLog2: imm.Align, Offset: imm.Offset})

		case unimplementedBinary[op]:
			return nil, p.unimplemented(op)

		case unaryOps[op]:
			x, err := p.pop()
			if err != nil {
				return nil, err
			}
			p.push(ir.UnOp{Op: op, X: x})

		case binaryOps[op]:
			l, r, err := p.pop2()
			if err != nil {
				return nil, err
			}
			p.push(ir.BinOp{Op: op, L: l, R: r})

		default:
			return nil, p.unimplemented(op)
		}
	}

	// Ran off the end of the stream without a matching `end`: only
	// valid at the function root when the producing instruction
	// sequence omits a final explicit `end` byte. Treat it the same
	// as hitting `end`.
	if len(p.exprs) > 1 {
		return nil, errors.Invalid([]string{p.path}, "%d values left on the stack at end of body", len(p.exprs))
	}
	return stmts, nil
}

func resolveDepth(levels []level, relativeDepth uint32, path string) (level, error) {
	if int(relativeDepth) >= len(levels) {
		return level{}, errors.Invalid([]string{path}, "branch depth %d exceeds nesting of %d", relativeDepth, len(levels))
	}
	return levels[len(levels)-1-int(relativeDepth)], nil
}
