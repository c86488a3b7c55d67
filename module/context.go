package module

import "github.com/gowasm/w2r/ir"

// DataSegment is a resolved active data segment: the byte offset its
// init expression evaluated to, and its raw payload.
type DataSegment struct {
	Bytes  []byte
	Offset int32
}

// Context is the assembled, read-only view of a module that the
// emitter walks. It is built once by Assemble and never mutated
// afterward.
type Context struct {
	Functions   []FuncDesc
	Types       []ir.Sig
	Data        []DataSegment
	MemoryPages uint64
}

// Lookup implements lower.FuncTable.
func (c *Context) Lookup(idx uint32) (ir.FuncRef, bool) {
	if int(idx) >= len(c.Functions) {
		return ir.FuncRef{}, false
	}
	return c.Functions[idx].Ref(), true
}
