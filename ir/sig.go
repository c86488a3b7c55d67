package ir

import "github.com/gowasm/w2r/wasm"

// Sig is a function signature: a parameter vector and a result
// vector. MVP restricts len(Results) to at most 1; anything else is
// unimplemented.
type Sig struct {
	Params  []wasm.ValType
	Results []wasm.ValType
}
