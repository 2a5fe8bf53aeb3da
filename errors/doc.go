// Package errors provides structured error types for the pangobind library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the foreign type name, the entry point symbol and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseAcquire, errors.KindNullHandle).
//		Type("PangoCoverage").
//		Symbol("pango_coverage_copy").
//		Detail("copy returned NULL").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NullHandle(errors.PhaseAcquire, "PangoCoverage")
//	err := errors.Trap("pango_coverage_get", cause)
//
// Precondition violations (null handles, wrong ownership mode, use after
// release) are raised as panics whose value is an *Error. Everything else
// is returned. All errors implement the standard error interface and
// support errors.Is/As.
package errors
