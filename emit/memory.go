package emit

import (
	"fmt"

	"github.com/gowasm/w2r/ir"
	"github.com/gowasm/w2r/wasm"
)

// memAccess describes how a load/store operator maps onto memory:
// the Rust type of the value on the stack, the narrower type actually
// read or written (equal to ValueType for non-narrowing ops), and the
// natural alignment (log2 bytes) of that narrow access.
type memAccess struct {
	ValueType        string
	ReadType         string
	NaturalAlignLog2 uint32
}

var memAccesses = map[byte]memAccess{
	wasm.OpI32Load:    {"i32", "i32", 2},
	wasm.OpI64Load:    {"i64", "i64", 3},
	wasm.OpF32Load:    {"f32", "f32", 2},
	wasm.OpF64Load:    {"f64", "f64", 3},
	wasm.OpI32Load8S:  {"i32", "i8", 0},
	wasm.OpI32Load8U:  {"i32", "u8", 0},
	wasm.OpI32Load16S: {"i32", "i16", 1},
	wasm.OpI32Load16U: {"i32", "u16", 1},
	wasm.OpI64Load8S:  {"i64", "i8", 0},
	wasm.OpI64Load8U:  {"i64", "u8", 0},
	wasm.OpI64Load16S: {"i64", "i16", 1},
	wasm.OpI64Load16U: {"i64", "u16", 1},
	wasm.OpI64Load32S: {"i64", "i32", 2},
	wasm.OpI64Load32U: {"i64", "u32", 2},

	wasm.OpI32Store:   {"i32", "i32", 2},
	wasm.OpI64Store:   {"i64", "i64", 3},
	wasm.OpF32Store:   {"f32", "f32", 2},
	wasm.OpF64Store:   {"f64", "f64", 3},
	wasm.OpI32Store8:  {"i32", "i8", 0},
	wasm.OpI32Store16: {"i32", "i16", 1},
	wasm.OpI64Store8:  {"i64", "i8", 0},
	wasm.OpI64Store16: {"i64", "i16", 1},
	wasm.OpI64Store32: {"i64", "i32", 2},
}

func (g *generator) load(v ir.Load) string {
	acc, ok := memAccesses[v.Op]
	if !ok {
		return fmt.Sprintf("/* unrenderable load %s */", wasm.Mnemonic(v.Op))
	}
	ptr := fmt.Sprintf("MEMORY.as_ptr().add((%s) as usize + %d) as *const %s", g.expr(v.Addr), v.Offset, acc.ReadType)
	read := fmt.Sprintf("core::ptr::read(%s)", ptr)
	if v.AlignLog2 < acc.NaturalAlignLog2 {
		read = fmt.Sprintf("core::ptr::read_unaligned(%s)", ptr)
	}
	if acc.ReadType == acc.ValueType {
		return read
	}
	return fmt.Sprintf("(%s) as %s", read, acc.ValueType)
}

// store renders a store statement's single line.
func (g *generator) store(v ir.Store) string {
	acc, ok := memAccesses[v.Op]
	if !ok {
		return fmt.Sprintf("/* unrenderable store %s */;", wasm.Mnemonic(v.Op))
	}
	ptr := fmt.Sprintf("MEMORY.as_mut_ptr().add((%s) as usize + %d) as *mut %s", g.expr(v.Addr), v.Offset, acc.ReadType)
	val := g.expr(v.Value)
	if acc.ReadType != acc.ValueType {
		val = fmt.Sprintf("(%s) as %s", val, acc.ReadType)
	}
	write := "write"
	if v.AlignLog2 < acc.NaturalAlignLog2 {
		write = "write_unaligned"
	}
	return fmt.Sprintf("core::ptr::%s(%s, %s);", write, ptr, val)
}
