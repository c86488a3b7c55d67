package lower

import "github.com/gowasm/w2r/wasm"

var unaryOps = map[byte]bool{
	wasm.OpI32Eqz: true, wasm.OpI64Eqz: true,
	wasm.OpI32Clz: true, wasm.OpI32Ctz: true, wasm.OpI32Popcnt: true,
	wasm.OpI64Clz: true, wasm.OpI64Ctz: true, wasm.OpI64Popcnt: true,
	wasm.OpF32Abs: true, wasm.OpF32Neg: true, wasm.OpF32Ceil: true, wasm.OpF32Floor: true,
	wasm.OpF32Trunc: true, wasm.OpF32Nearest: true, wasm.OpF32Sqrt: true,
	wasm.OpF64Abs: true, wasm.OpF64Neg: true, wasm.OpF64Ceil: true, wasm.OpF64Floor: true,
	wasm.OpF64Trunc: true, wasm.OpF64Nearest: true, wasm.OpF64Sqrt: true,
	wasm.OpI32WrapI64: true,
	wasm.OpI32TruncF32S: true, wasm.OpI32TruncF32U: true,
	wasm.OpI32TruncF64S: true, wasm.OpI32TruncF64U: true,
	wasm.OpI64ExtendI32S: true, wasm.OpI64ExtendI32U: true,
	wasm.OpI64TruncF32S: true, wasm.OpI64TruncF32U: true,
	wasm.OpI64TruncF64S: true, wasm.OpI64TruncF64U: true,
	wasm.OpF32ConvertI32S: true, wasm.OpF32ConvertI32U: true,
	wasm.OpF32ConvertI64S: true, wasm.OpF32ConvertI64U: true,
	wasm.OpF32DemoteF64: true,
	wasm.OpF64ConvertI32S: true, wasm.OpF64ConvertI32U: true,
	wasm.OpF64ConvertI64S: true, wasm.OpF64ConvertI64U: true,
	wasm.OpF64PromoteF32: true,
	wasm.OpI32ReinterpretF32: true, wasm.OpI64ReinterpretF64: true,
	wasm.OpF32ReinterpretI32: true, wasm.OpF64ReinterpretI64: true,
	wasm.OpI32Extend8S: true, wasm.OpI32Extend16S: true,
	wasm.OpI64Extend8S: true, wasm.OpI64Extend16S: true, wasm.OpI64Extend32S: true,
}

var binaryOps = map[byte]bool{
	wasm.OpI32Eq: true, wasm.OpI32Ne: true,
	wasm.OpI32LtS: true, wasm.OpI32LtU: true, wasm.OpI32GtS: true, wasm.OpI32GtU: true,
	wasm.OpI32LeS: true, wasm.OpI32LeU: true, wasm.OpI32GeS: true, wasm.OpI32GeU: true,
	wasm.OpI64Eq: true, wasm.OpI64Ne: true,
	wasm.OpI64LtS: true, wasm.OpI64LtU: true, wasm.OpI64GtS: true, wasm.OpI64GtU: true,
	wasm.OpI64LeS: true, wasm.OpI64LeU: true, wasm.OpI64GeS: true, wasm.OpI64GeU: true,
	wasm.OpF32Eq: true, wasm.OpF32Ne: true, wasm.OpF32Lt: true, wasm.OpF32Gt: true, wasm.OpF32Le: true, wasm.OpF32Ge: true,
	wasm.OpF64Eq: true, wasm.OpF64Ne: true, wasm.OpF64Lt: true, wasm.OpF64Gt: true, wasm.OpF64Le: true, wasm.OpF64Ge: true,
	wasm.OpI32Add: true, wasm.OpI32Sub: true, wasm.OpI32Mul: true,
	wasm.OpI32DivS: true, wasm.OpI32DivU: true, wasm.OpI32RemS: true, wasm.OpI32RemU: true,
	wasm.OpI32And: true, wasm.OpI32Or: true, wasm.OpI32Xor: true,
	wasm.OpI32Shl: true, wasm.OpI32ShrS: true, wasm.OpI32ShrU: true, wasm.OpI32Rotl: true, wasm.OpI32Rotr: true,
	wasm.OpI64Add: true, wasm.OpI64Sub: true, wasm.OpI64Mul: true,
	wasm.OpI64DivS: true, wasm.OpI64DivU: true, wasm.OpI64RemS: true, wasm.OpI64RemU: true,
	wasm.OpI64And: true, wasm.OpI64Or: true, wasm.OpI64Xor: true,
	wasm.OpI64Shl: true, wasm.OpI64ShrS: true, wasm.OpI64ShrU: true, wasm.OpI64Rotl: true, wasm.OpI64Rotr: true,
	wasm.OpF32Add: true, wasm.OpF32Sub: true, wasm.OpF32Mul: true, wasm.OpF32Div: true, wasm.OpF32Copysign: true,
	wasm.OpF64Add: true, wasm.OpF64Sub: true, wasm.OpF64Mul: true, wasm.OpF64Div: true, wasm.OpF64Copysign: true,
}

// unimplementedBinary lists operators in the MVP set recognized but
// deliberately rejected because their semantics (NaN propagation,
// signed-zero handling) would otherwise silently diverge from the
// WASM spec if mapped onto a host min/max.
var unimplementedBinary = map[byte]bool{
	wasm.OpF32Min: true, wasm.OpF32Max: true,
	wasm.OpF64Min: true, wasm.OpF64Max: true,
}

var loadOps = map[byte]bool{
	wasm.OpI32Load: true, wasm.OpI64Load: true, wasm.OpF32Load: true, wasm.OpF64Load: true,
	wasm.OpI32Load8S: true, wasm.OpI32Load8U: true, wasm.OpI32Load16S: true, wasm.OpI32Load16U: true,
	wasm.OpI64Load8S: true, wasm.OpI64Load8U: true, wasm.OpI64Load16S: true, wasm.OpI64Load16U: true,
	wasm.OpI64Load32S: true, wasm.OpI64Load32U: true,
}

var storeOps = map[byte]bool{
	wasm.OpI32Store: true, wasm.OpI64Store: true, wasm.OpF32Store: true, wasm.OpF64Store: true,
	wasm.OpI32Store8: true, wasm.OpI32Store16: true,
	wasm.OpI64Store8: true, wasm.OpI64Store16: true, wasm.OpI64Store32: true,
}
