// Package errors provides the structured error type shared by the
// assemble, lower, and emit phases of the decompiler.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (invalid input vs. an unimplemented feature). The Error type carries
// a location Path (typically a function index) and the offending
// Value (an opcode byte).
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseLower, errors.KindInvalid).
//		Path("func 3").
//		Detail("operand stack underflow for i32.add").
//		Build()
//
// Or the convenience constructors for the two common shapes:
//
//	err := errors.Invalid([]string{"func 3"}, "operand stack underflow for %s", "i32.add")
//	err := errors.Unimplemented(errors.PhaseLower, []string{"func 3"}, "table.get", op)
//
// All errors implement the standard error interface and support errors.Is.
package errors
