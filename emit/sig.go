package emit

import (
	"fmt"
	"strings"

	"github.com/gowasm/w2r/ir"
	"github.com/gowasm/w2r/wasm"
)

// paramList renders a parameter vector as mut p0: i32, mut p1: i64, ….
func paramList(params []wasm.ValType) string {
	parts := make([]string, len(params))
	for i, t := range params {
		parts[i] = fmt.Sprintf("mut p%d: %s", i, t.String())
	}
	return strings.Join(parts, ", ")
}

// returnClause renders a signature's result as " -> T", or "" for a
// void function. MVP signatures carry at most one result.
func returnClause(sig ir.Sig) string {
	if len(sig.Results) == 0 {
		return ""
	}
	return fmt.Sprintf(" -> %s", sig.Results[0].String())
}
