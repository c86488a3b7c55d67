package emit

import (
	"fmt"
	"strings"

	"github.com/gowasm/w2r/module"
)

// setup emits the memory buffer and the synthetic setup() function:
// it grows memory to cover the furthest data byte, then writes each
// segment byte-wise at its declared offset, preserving per-segment
// grouping.
func (g *generator) setup(ctx *module.Context) {
	g.emit("static mut MEMORY: Vec<u8> = Vec::new();")
	g.blank()
	g.emit("unsafe fn memory_grow(delta: i32) -> i32 {")
	g.indent++
	g.emit("let old_pages = (MEMORY.len() / 65536) as i32;")
	g.emit("MEMORY.resize(MEMORY.len() + (delta as usize) * 65536, 0);")
	g.emit("old_pages")
	g.indent--
	g.emit("}")
	g.blank()
	g.emit("#[no_mangle]")
	g.emit("pub unsafe extern \"C\" fn setup() {")
	g.indent++
	g.emit("MEMORY.resize(%d * 65536, 0);", ctx.MemoryPages)

	if len(ctx.Data) > 0 {
		needed := furthestByte(ctx.Data) + 1
		g.emit("let needed: usize = %d;", needed)
		g.emit("if needed > MEMORY.len() {")
		g.indent++
		g.emit("let extra_pages = (needed - MEMORY.len() + 65535) / 65536;")
		g.emit("MEMORY.resize(MEMORY.len() + extra_pages * 65536, 0);")
		g.indent--
		g.emit("}")
		for _, seg := range ctx.Data {
			end := int(seg.Offset) + len(seg.Bytes)
			g.emit("MEMORY[%d..%d].copy_from_slice(&%s);", seg.Offset, end, byteSliceLiteral(seg.Bytes))
		}
	}

	g.indent--
	g.emit("}")
	g.blank()
}

func furthestByte(segs []module.DataSegment) int {
	max := 0
	for _, s := range segs {
		end := int(s.Offset) + len(s.Bytes) - 1
		if end > max {
			max = end
		}
	}
	return max
}

func byteSliceLiteral(b []byte) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
