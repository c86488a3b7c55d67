package emit

import (
	"fmt"
	"math"

	"github.com/gowasm/w2r/ir"
	"github.com/gowasm/w2r/wasm"
)

// expr renders e as a Rust expression.
func (g *generator) expr(e ir.Expr) string {
	switch v := e.(type) {
	case ir.ConstI32:
		return fmt.Sprintf("%d_i32", v.Value)
	case ir.ConstI64:
		return fmt.Sprintf("%d_i64", v.Value)
	case ir.ConstF32:
		return fmt.Sprintf("f32::from_bits(0x%08x)", math.Float32bits(v.Value))
	case ir.ConstF64:
		return fmt.Sprintf("f64::from_bits(0x%016x)", math.Float64bits(v.Value))
	case ir.Local:
		return fmt.Sprintf("p%d", v.Slot)
	case ir.LocalTee:
		return fmt.Sprintf("{ p%d = %s; p%d }", v.Slot, g.expr(v.Value), v.Slot)
	case ir.UnOp:
		return g.unop(v)
	case ir.BinOp:
		return g.binop(v)
	case ir.Load:
		return g.load(v)
	case ir.Select:
		return fmt.Sprintf("if %s != 0 { %s } else { %s }", g.expr(v.Cond), g.expr(v.A), g.expr(v.B))
	case ir.Call:
		args := make([]string, len(v.Args))
		for i, a := range v.Args {
			args[i] = g.expr(a)
		}
		return fmt.Sprintf("%s(%s)", v.Target.Symbol, joinArgs(args))
	case ir.MemSize:
		return "((MEMORY.len() / 65536) as i32)"
	case ir.MemGrow:
		return fmt.Sprintf("memory_grow(%s)", g.expr(v.Delta))
	default:
		return fmt.Sprintf("/* unrenderable expression %T */", e)
	}
}

func joinArgs(args []string) string {
	out := ""
	for i, a := range args {
		if i > 0 {
			out += ", "
		}
		out += a
	}
	return out
}

func (g *generator) unop(v ir.UnOp) string {
	x := g.expr(v.X)
	switch v.Op {
	case wasm.OpI32Eqz:
		return fmt.Sprintf("((%s) == 0) as i32", x)
	case wasm.OpI64Eqz:
		return fmt.Sprintf("((%s) == 0) as i32", x)
	case wasm.OpI32Clz:
		return fmt.Sprintf("(%s as u32).leading_zeros() as i32", x)
	case wasm.OpI32Ctz:
		return fmt.Sprintf("(%s as u32).trailing_zeros() as i32", x)
	case wasm.OpI32Popcnt:
		return fmt.Sprintf("(%s as u32).count_ones() as i32", x)
	case wasm.OpI64Clz:
		return fmt.Sprintf("(%s as u64).leading_zeros() as i64", x)
	case wasm.OpI64Ctz:
		return fmt.Sprintf("(%s as u64).trailing_zeros() as i64", x)
	case wasm.OpI64Popcnt:
		return fmt.Sprintf("(%s as u64).count_ones() as i64", x)
	case wasm.OpF32Abs, wasm.OpF64Abs:
		return fmt.Sprintf("(%s).abs()", x)
	case wasm.OpF32Neg, wasm.OpF64Neg:
		return fmt.Sprintf("-(%s)", x)
	case wasm.OpF32Ceil, wasm.OpF64Ceil:
		return fmt.Sprintf("(%s).ceil()", x)
	case wasm.OpF32Floor, wasm.OpF64Floor:
		return fmt.Sprintf("(%s).floor()", x)
	case wasm.OpF32Trunc, wasm.OpF64Trunc:
		return fmt.Sprintf("(%s).trunc()", x)
	case wasm.OpF32Nearest, wasm.OpF64Nearest:
		return fmt.Sprintf("(%s).round_ties_even()", x)
	case wasm.OpF32Sqrt, wasm.OpF64Sqrt:
		return fmt.Sprintf("(%s).sqrt()", x)
	case wasm.OpI32WrapI64:
		return fmt.Sprintf("(%s) as i32", x)
	case wasm.OpI32TruncF32S, wasm.OpI32TruncF64S:
		return fmt.Sprintf("(%s) as i32", x)
	case wasm.OpI32TruncF32U, wasm.OpI32TruncF64U:
		return fmt.Sprintf("((%s) as u32) as i32", x)
	case wasm.OpI64ExtendI32S:
		return fmt.Sprintf("(%s) as i64", x)
	case wasm.OpI64ExtendI32U:
		return fmt.Sprintf("((%s) as u32) as i64", x)
	case wasm.OpI64TruncF32S, wasm.OpI64TruncF64S:
		return fmt.Sprintf("(%s) as i64", x)
	case wasm.OpI64TruncF32U, wasm.OpI64TruncF64U:
		return fmt.Sprintf("((%s) as u64) as i64", x)
	case wasm.OpF32ConvertI32S, wasm.OpF32ConvertI64S:
		return fmt.Sprintf("(%s) as f32", x)
	case wasm.OpF32ConvertI32U:
		return fmt.Sprintf("((%s) as u32) as f32", x)
	case wasm.OpF32ConvertI64U:
		return fmt.Sprintf("((%s) as u64) as f32", x)
	case wasm.OpF32DemoteF64:
		return fmt.Sprintf("(%s) as f32", x)
	case wasm.OpF64ConvertI32S, wasm.OpF64ConvertI64S:
		return fmt.Sprintf("(%s) as f64", x)
	case wasm.OpF64ConvertI32U:
		return fmt.Sprintf("((%s) as u32) as f64", x)
	case wasm.OpF64ConvertI64U:
		return fmt.Sprintf("((%s) as u64) as f64", x)
	case wasm.OpF64PromoteF32:
		return fmt.Sprintf("(%s) as f64", x)
	case wasm.OpI32ReinterpretF32:
		return fmt.Sprintf("(%s).to_bits() as i32", x)
	case wasm.OpI64ReinterpretF64:
		return fmt.Sprintf("(%s).to_bits() as i64", x)
	case wasm.OpF32ReinterpretI32:
		return fmt.Sprintf("f32::from_bits((%s) as u32)", x)
	case wasm.OpF64ReinterpretI64:
		return fmt.Sprintf("f64::from_bits((%s) as u64)", x)
	case wasm.OpI32Extend8S:
		return fmt.Sprintf("((%s) as i8) as i32", x)
	case wasm.OpI32Extend16S:
		return fmt.Sprintf("((%s) as i16) as i32", x)
	case wasm.OpI64Extend8S:
		return fmt.Sprintf("((%s) as i8) as i64", x)
	case wasm.OpI64Extend16S:
		return fmt.Sprintf("((%s) as i16) as i64", x)
	case wasm.OpI64Extend32S:
		return fmt.Sprintf("((%s) as i32) as i64", x)
	default:
		return fmt.Sprintf("/* unrenderable unary op %s */ (%s)", wasm.Mnemonic(v.Op), x)
	}
}

func (g *generator) binop(v ir.BinOp) string {
	l, r := g.expr(v.L), g.expr(v.R)
	switch v.Op {
	case wasm.OpI32Add, wasm.OpI64Add:
		return fmt.Sprintf("(%s).wrapping_add(%s)", l, r)
	case wasm.OpI32Sub, wasm.OpI64Sub:
		return fmt.Sprintf("(%s).wrapping_sub(%s)", l, r)
	case wasm.OpI32Mul, wasm.OpI64Mul:
		return fmt.Sprintf("(%s).wrapping_mul(%s)", l, r)
	case wasm.OpI32DivS, wasm.OpI64DivS:
		return fmt.Sprintf("(%s) / (%s)", l, r)
	case wasm.OpI32DivU:
		return fmt.Sprintf("(((%s) as u32) / ((%s) as u32)) as i32", l, r)
	case wasm.OpI64DivU:
		return fmt.Sprintf("(((%s) as u64) / ((%s) as u64)) as i64", l, r)
	case wasm.OpI32RemS, wasm.OpI64RemS:
		return fmt.Sprintf("(%s) %% (%s)", l, r)
	case wasm.OpI32RemU:
		return fmt.Sprintf("(((%s) as u32) %% ((%s) as u32)) as i32", l, r)
	case wasm.OpI64RemU:
		return fmt.Sprintf("(((%s) as u64) %% ((%s) as u64)) as i64", l, r)
	case wasm.OpI32And, wasm.OpI64And:
		return fmt.Sprintf("(%s) & (%s)", l, r)
	case wasm.OpI32Or, wasm.OpI64Or:
		return fmt.Sprintf("(%s) | (%s)", l, r)
	case wasm.OpI32Xor, wasm.OpI64Xor:
		return fmt.Sprintf("(%s) ^ (%s)", l, r)
	case wasm.OpI32Shl, wasm.OpI64Shl:
		return fmt.Sprintf("(%s).wrapping_shl((%s) as u32)", l, r)
	case wasm.OpI32ShrS, wasm.OpI64ShrS:
		return fmt.Sprintf("(%s).wrapping_shr((%s) as u32)", l, r)
	case wasm.OpI32ShrU:
		return fmt.Sprintf("(((%s) as u32).wrapping_shr((%s) as u32)) as i32", l, r)
	case wasm.OpI64ShrU:
		return fmt.Sprintf("(((%s) as u64).wrapping_shr((%s) as u32)) as i64", l, r)
	case wasm.OpI32Rotl, wasm.OpI64Rotl:
		return fmt.Sprintf("(%s).rotate_left((%s) as u32)", l, r)
	case wasm.OpI32Rotr, wasm.OpI64Rotr:
		return fmt.Sprintf("(%s).rotate_right((%s) as u32)", l, r)
	case wasm.OpF32Add, wasm.OpF64Add:
		return fmt.Sprintf("(%s) + (%s)", l, r)
	case wasm.OpF32Sub, wasm.OpF64Sub:
		return fmt.Sprintf("(%s) - (%s)", l, r)
	case wasm.OpF32Mul, wasm.OpF64Mul:
		return fmt.Sprintf("(%s) * (%s)", l, r)
	case wasm.OpF32Div, wasm.OpF64Div:
		return fmt.Sprintf("(%s) / (%s)", l, r)
	case wasm.OpF32Copysign, wasm.OpF64Copysign:
		return fmt.Sprintf("(%s).copysign(%s)", l, r)
	case wasm.OpI32Eq, wasm.OpI64Eq, wasm.OpF32Eq, wasm.OpF64Eq:
		return fmt.Sprintf("((%s) == (%s)) as i32", l, r)
	case wasm.OpI32Ne, wasm.OpI64Ne, wasm.OpF32Ne, wasm.OpF64Ne:
		return fmt.Sprintf("((%s) != (%s)) as i32", l, r)
	case wasm.OpI32LtS, wasm.OpI64LtS, wasm.OpF32Lt, wasm.OpF64Lt:
		return fmt.Sprintf("((%s) < (%s)) as i32", l, r)
	case wasm.OpI32GtS, wasm.OpI64GtS, wasm.OpF32Gt, wasm.OpF64Gt:
		return fmt.Sprintf("((%s) > (%s)) as i32", l, r)
	case wasm.OpI32LeS, wasm.OpI64LeS, wasm.OpF32Le, wasm.OpF64Le:
		return fmt.Sprintf("((%s) <= (%s)) as i32", l, r)
	case wasm.OpI32GeS, wasm.OpI64GeS, wasm.OpF32Ge, wasm.OpF64Ge:
		return fmt.Sprintf("((%s) >= (%s)) as i32", l, r)
	case wasm.OpI32LtU:
		return fmt.Sprintf("(((%s) as u32) < ((%s) as u32)) as i32", l, r)
	case wasm.OpI64LtU:
		return fmt.Sprintf("(((%s) as u64) < ((%s) as u64)) as i32", l, r)
	case wasm.OpI32GtU:
		return fmt.Sprintf("(((%s) as u32) > ((%s) as u32)) as i32", l, r)
	case wasm.OpI64GtU:
		return fmt.Sprintf("(((%s) as u64) > ((%s) as u64)) as i32", l, r)
	case wasm.OpI32LeU:
		return fmt.Sprintf("(((%s) as u32) <= ((%s) as u32)) as i32", l, r)
	case wasm.OpI64LeU:
		return fmt.Sprintf("(((%s) as u64) <= ((%s) as u64)) as i32", l, r)
	case wasm.OpI32GeU:
		return fmt.Sprintf("(((%s) as u32) >= ((%s) as u32)) as i32", l, r)
	case wasm.OpI64GeU:
		return fmt.Sprintf("(((%s) as u64) >= ((%s) as u64)) as i32", l, r)
	default:
		return fmt.Sprintf("/* unrenderable binary op %s */ (%s, %s)", wasm.Mnemonic(v.Op), l, r)
	}
}
