package factory

import (
	"io/fs"
	"os"

	"go.uber.org/zap"
)

// Config holds configuration for resolver creation. The zero value (or a
// nil *Config) defaults every field from the process environment, so the
// resolution algorithm itself performs no ambient reads beyond what the
// configured sources describe.
type Config struct {
	// Getenv supplies process settings for the highest-priority source.
	// nil means os.Getenv.
	Getenv func(string) string

	// InstallDir is the installation root probed for lib/objpath.properties.
	// Empty means the running executable's install root.
	InstallDir string

	// SearchPath is the ordered list of filesystems scanned for
	// META-INF/services resources. nil means the current working directory.
	SearchPath []fs.FS

	// Debug enables trace logging of which source satisfied a lookup.
	Debug bool

	// Logger receives debug traces. nil means a development logger when
	// Debug is set, a no-op logger otherwise.
	Logger *zap.Logger
}

// Resolver runs the ordered discovery search. It is stateless and
// re-runnable; callers that need the process-wide cached answer use Name.
type Resolver struct {
	sources []source
	log     *zap.Logger
	debug   bool
}

// NewResolver creates a resolver with custom configuration. A nil cfg uses
// environment defaults.
func NewResolver(cfg *Config) *Resolver {
	if cfg == nil {
		cfg = &Config{}
	}

	getenv := cfg.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	installDir := cfg.InstallDir
	if installDir == "" {
		installDir = defaultInstallDir()
	}
	searchPath := cfg.SearchPath
	if searchPath == nil {
		searchPath = []fs.FS{os.DirFS(".")}
	}
	logger := cfg.Logger
	if logger == nil {
		if cfg.Debug {
			logger = zap.Must(zap.NewDevelopment())
		} else {
			logger = zap.NewNop()
		}
	}

	return &Resolver{
		sources: []source{
			settingSource{getenv: getenv},
			propertiesSource{dir: installDir},
			serviceSource{searchPath: searchPath},
		},
		log:   logger,
		debug: cfg.Debug,
	}
}

// Resolve runs the discovery search for key, short-circuiting on the first
// source that yields a value, and falls through to fallback. It never fails:
// read errors inside a source count as not found.
func (r *Resolver) Resolve(key, fallback string) string {
	for _, src := range r.sources {
		v, ok, err := src.lookup(key)
		if err != nil {
			r.debugf("objpath: %s source error for %q: %v", src.name(), key, err)
		}
		if ok {
			r.debugf("objpath: resolved %q from %s source: %s", key, src.name(), v)
			return v
		}
	}
	r.debugf("objpath: resolved %q from default: %s", key, fallback)
	return fallback
}

// ProbeResult records one discovery source's answer for a key.
type ProbeResult struct {
	// Source names the discovery source (setting, properties, services,
	// default).
	Source string

	// Value is the identifier the source yielded, if any.
	Value string

	// Found reports whether the source yielded a value.
	Found bool

	// Err is the read failure the search would have swallowed, if any.
	Err error
}

// Probe runs every source for key without short-circuiting, including the
// terminal default. Diagnostic only; Resolve remains the contractual search.
func (r *Resolver) Probe(key, fallback string) []ProbeResult {
	results := make([]ProbeResult, 0, len(r.sources)+1)
	for _, src := range append(r.sources, source(defaultSource{value: fallback})) {
		v, ok, err := src.lookup(key)
		results = append(results, ProbeResult{
			Source: src.name(),
			Value:  v,
			Found:  ok,
			Err:    err,
		})
	}
	return results
}

func (r *Resolver) debugf(format string, args ...any) {
	if r.debug {
		r.log.Sugar().Debugf(format, args...)
	}
}
