package objpath

import "context"

// Session is an engine session: it evaluates path expressions against the
// subject object graph it was created over. Sessions are produced by a
// Factory and may inherit variable and function bindings from the session
// they are nested under.
type Session interface {
	// Subject returns the object graph the session evaluates against.
	Subject() any

	// Parent returns the session this one is nested under, or nil for a
	// root session.
	Parent() Session

	// Evaluate evaluates a path expression against the subject and returns
	// the selected value.
	Evaluate(ctx context.Context, path string) (any, error)
}

// Factory creates engine sessions. Concrete factories are obtained through
// factory.New, which loads whichever implementation the process discovery
// search selected. Engine implementations may additionally export their own
// constructors for direct use.
type Factory interface {
	// NewSession creates a session over subject. A nil parent creates a
	// root session; a non-nil parent nests the session under it, inheriting
	// the parent's variable and function bindings. NewSession must not
	// mutate parent. subject must be non-nil.
	NewSession(parent Session, subject any) (Session, error)
}
