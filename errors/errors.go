package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseResolve Phase = "resolve" // discovery source search
	PhaseLoad    Phase = "load"    // factory loading and construction
	PhaseSession Phase = "session" // session creation
)

// Kind categorizes the error
type Kind string

const (
	KindNotFound      Kind = "not_found"
	KindConstructor   Kind = "constructor"
	KindConfiguration Kind = "configuration"
	KindInvalidInput  Kind = "invalid_input"
	KindRegistration  Kind = "registration"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause      error
	Phase      Phase
	Kind       Kind
	Identifier string
	Detail     string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Identifier != "" {
		b.WriteString(": ")
		b.WriteString(e.Identifier)
	}

	if e.Detail != "" {
		if e.Identifier != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Convenience constructors for common error patterns

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Registration creates a registry registration error
func Registration(name, detail string) *Error {
	return &Error{
		Phase:      PhaseLoad,
		Kind:       KindRegistration,
		Identifier: name,
		Detail:     detail,
	}
}

// Constructor creates a factory construction error
func Constructor(identifier string, cause error) *Error {
	return &Error{
		Phase:      PhaseLoad,
		Kind:       KindConstructor,
		Identifier: identifier,
		Detail:     "construct factory",
		Cause:      cause,
	}
}

// Configuration creates the single caller-visible loading failure. It wraps
// the underlying cause (unregistered identifier, constructor failure) so the
// chain stays available for diagnosis.
func Configuration(identifier string, cause error) *Error {
	return &Error{
		Phase:      PhaseLoad,
		Kind:       KindConfiguration,
		Identifier: identifier,
		Detail:     "no usable factory implementation",
		Cause:      cause,
	}
}

// IsConfiguration reports whether err is a configuration error
func IsConfiguration(err error) bool {
	var e *Error
	return stderrors.As(err, &e) && e.Kind == KindConfiguration
}
