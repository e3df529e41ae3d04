// Package objpath defines the contracts for pluggable path-expression
// engines that evaluate expressions against arbitrary Go object graphs.
//
// The package itself contains no engine. It defines the Factory and Session
// contracts and, through the factory subpackage, a process-wide discovery
// protocol that selects which installed engine implementation to load.
//
// # Architecture Overview
//
//	objpath/         Root package with the Factory and Session contracts
//	├── factory/     Implementation discovery, registry, and loading
//	├── config/      Environment-backed process settings
//	├── errors/      Structured error types for diagnostics
//	└── cmd/         objpath-doctor discovery diagnostics CLI
//
// # Quick Start
//
// Link an engine implementation and obtain a factory:
//
//	import (
//	    "github.com/objpath/objpath/factory"
//
//	    _ "example.com/someengine" // registers itself with factory.Register
//	)
//
//	f, err := factory.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sess, err := f.NewSession(nil, subject)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := sess.Evaluate(ctx, "orders[1]/total")
//
// # Implementation Discovery
//
// The concrete factory is chosen once per process by an ordered search:
// the OBJPATH_FACTORY environment variable, then lib/objpath.properties
// under the installation root, then a META-INF/services resource on the
// configured search path, then the hardcoded default. See the factory
// package for details.
//
// # Thread Safety
//
// Discovery and loading are safe for concurrent use; the resolved
// implementation identifier is computed at most once per process. Whether a
// Session is safe for concurrent use is up to the engine implementation.
package objpath
