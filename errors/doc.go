// Package errors provides structured error types for the objpath library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries the implementation identifier involved
// and the cause chain.
//
// Use the convenience constructors for common patterns:
//
//	err := errors.NotFound(errors.PhaseLoad, "factory constructor", name)
//	err := errors.Configuration(name, cause)
//
// All errors implement the standard error interface and support errors.Is/As.
// The only kind surfaced to callers of factory.New is KindConfiguration;
// every other kind appears in its cause chain.
package errors
