// Package factory discovers, registers, and loads concrete objpath engine
// factories.
//
// # Discovery
//
// The implementation identifier is resolved once per process by an ordered
// search over four sources; the first source that yields a value wins:
//
//  1. The process setting derived from the canonical key: objpath.factory
//     is probed as the OBJPATH_FACTORY environment variable.
//  2. The installation properties file <install-dir>/lib/objpath.properties,
//     a line-oriented key=value file consulted for the key objpath.factory.
//  3. The services resource META-INF/services/objpath.factory located on the
//     configured search path; its first non-empty line is the identifier.
//  4. The hardcoded default, DefaultFactoryName.
//
// A discovery source that is missing, unreadable, or empty never aborts
// resolution; the search falls through to the next source. The resolved
// identifier is cached for the lifetime of the process and never recomputed,
// even if the underlying sources change.
//
// # Registration
//
// Instead of loading implementations by reflective type name, engine
// packages register a constructor under their identifier, typically from
// init behind a blank import:
//
//	func init() {
//	    factory.MustRegister("example.com/fastpath", func() (objpath.Factory, error) {
//	        return &Factory{}, nil
//	    })
//	}
//
// # Loading
//
// New looks up the cached identifier in the registry and invokes the
// constructor on every call; instances are never cached. Any loading
// failure is reported as a single configuration error wrapping its cause.
package factory
