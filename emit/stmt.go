package emit

import (
	"strconv"

	"github.com/gowasm/w2r/ir"
)

// stmt renders one statement, possibly as several lines.
func (g *generator) stmt(s ir.Stmt) {
	switch v := s.(type) {
	case ir.LocalSet:
		g.emit("p%d = %s;", v.Slot, g.expr(v.Value))

	case ir.Store:
		g.emit("%s", g.store(v))

	case ir.Drop:
		g.emit("let _ = %s;", g.expr(v.Value))

	case ir.Return:
		if v.Value == nil {
			g.emit("return;")
		} else {
			g.emit("return %s;", g.expr(v.Value))
		}

	case ir.Unreachable:
		g.emit("unreachable!();")

	case ir.Nop:
		// no-op, nothing to emit

	case ir.Block:
		g.emit("'blk%d: {", v.Depth)
		g.indent++
		for _, inner := range v.Body {
			g.stmt(inner)
		}
		g.indent--
		g.emit("}")

	case ir.Loop:
		g.emit("'lp%d: loop {", v.Depth)
		g.indent++
		for _, inner := range v.Body {
			g.stmt(inner)
		}
		g.emit("break;")
		g.indent--
		g.emit("}")

	case ir.Br:
		g.emit("break 'blk%d;", v.Depth)

	case ir.BrIf:
		g.emit("if %s != 0 { break 'blk%d; }", g.expr(v.Cond), v.Depth)

	case ir.Continue:
		g.emit("continue 'lp%d;", v.Depth)

	case ir.ContinueIf:
		g.emit("if %s != 0 { continue 'lp%d; }", g.expr(v.Cond), v.Depth)

	case ir.BrTable:
		g.emit("match (%s) as usize {", g.expr(v.Cond))
		g.indent++
		for i, arm := range v.Arms {
			g.emit("%d => { %s }", i, jumpTo(arm))
		}
		g.emit("_ => { %s }", jumpTo(v.Default))
		g.indent--
		g.emit("}")

	case ir.Unassigned:
		// Tail expression: no trailing semicolon, so it becomes the
		// function's return value rather than a discarded statement.
		g.emit("%s", g.expr(v.Value))

	case ir.RawLines:
		for _, line := range v.Lines {
			g.emit("%s", line)
		}

	default:
		g.emit("/* unrenderable statement %T */", s)
	}
}

func jumpTo(arm ir.BrTableArm) string {
	depth := strconv.FormatUint(uint64(arm.Depth), 10)
	if arm.IsContinue {
		return "continue 'lp" + depth + ";"
	}
	return "break 'blk" + depth + ";"
}
