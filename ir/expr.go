// Package ir holds the expression/statement tree that the lowering
// engine reconstructs from a WASM operator stream, and that the
// emitter later walks to produce source text. Go has no algebraic sum
// types, so each spec-level "variant" is a struct implementing a
// marker interface; operator identity (and therefore signedness and
// bit width) travels as the raw WASM opcode byte plus
// wasm.Mnemonic(op) rather than as a distinct Go type per operator.
package ir

import "github.com/gowasm/w2r/wasm"

// Expr is a pure, value-producing node.
type Expr interface{ exprNode() }

// ConstI32 is an i32.const literal.
type ConstI32 struct{ Value int32 }

// ConstI64 is an i64.const literal.
type ConstI64 struct{ Value int64 }

// ConstF32 is an f32.const literal. Emission always renders it from
// its raw bit pattern, never from a decimal round-trip.
type ConstF32 struct{ Value float32 }

// ConstF64 is an f64.const literal, rendered the same way as ConstF32.
type ConstF64 struct{ Value float64 }

// Local reads a parameter or declared local by slot.
type Local struct{ Slot uint32 }

// LocalTee assigns Value to Slot and evaluates to Value.
type LocalTee struct {
	Value Expr
	Slot  uint32
}

// UnOp applies a unary operator (clz, ctz, popcnt, abs, neg, ceil,
// floor, trunc, nearest, sqrt, eqz, every conversion/reinterpret, and
// the sign-extension ops) to X.
type UnOp struct {
	X  Expr
	Op byte
}

// BinOp applies a binary operator to L (pushed first) and R (pushed
// second): arithmetic, comparison, shift, rotate, and bitwise ops.
type BinOp struct {
	L, R Expr
	Op   byte
}

// Load reads a value from linear memory at Addr+Offset. Op determines
// the value type, width, and (for narrowing loads) signedness.
type Load struct {
	Addr      Expr
	Op        byte
	AlignLog2 uint32
	Offset    uint64
}

// Select evaluates Cond; the result is A when Cond != 0, else B.
type Select struct {
	Cond, A, B Expr
}

// FuncRef is a self-contained snapshot of a call target: enough to
// name and arity-check it at emission time without looking it back up
// in the module context.
type FuncRef struct {
	Symbol    string
	Index     uint32
	Params    int
	HasResult bool
}

// Call invokes Target with Args, already lowered and in call order.
type Call struct {
	Target FuncRef
	Args   []Expr
}

// MemSize reads the current memory size in 64KiB pages.
type MemSize struct{}

// MemGrow grows memory by Delta pages, evaluating to the previous size
// in pages. The emitted memory_grow helper has no failure result: it
// never evaluates to -1.
type MemGrow struct{ Delta Expr }

func (ConstI32) exprNode()  {}
func (ConstI64) exprNode()  {}
func (ConstF32) exprNode()  {}
func (ConstF64) exprNode()  {}
func (Local) exprNode()     {}
func (LocalTee) exprNode()  {}
func (UnOp) exprNode()      {}
func (BinOp) exprNode()     {}
func (Load) exprNode()      {}
func (Select) exprNode()    {}
func (Call) exprNode()      {}
func (MemSize) exprNode()   {}
func (MemGrow) exprNode()   {}

// ValType reports the WASM value type a constant expression produces.
// Only the four constant nodes define it; nothing in lower or emit
// calls it.
func (c ConstI32) ValType() wasm.ValType { return wasm.ValI32 }
func (c ConstI64) ValType() wasm.ValType { return wasm.ValI64 }
func (c ConstF32) ValType() wasm.ValType { return wasm.ValF32 }
func (c ConstF64) ValType() wasm.ValType { return wasm.ValF64 }
