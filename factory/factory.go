package factory

import (
	"fmt"
	"sync"

	"github.com/objpath/objpath"
	"github.com/objpath/objpath/config"
	"github.com/objpath/objpath/errors"
)

const (
	// FactoryNameProperty is the canonical discovery key. It names the
	// environment variable (via EnvKey), the properties-file key, and the
	// services resource consulted by the search.
	FactoryNameProperty = "objpath.factory"

	// DefaultFactoryName is the identifier resolution falls through to when
	// no discovery source yields a value. It loads only once the reference
	// engine module is linked in and has registered itself.
	DefaultFactoryName = "objpath.reference"
)

var (
	nameOnce   sync.Once
	cachedName string
)

// resolveName computes the process identifier. Swapped out by tests.
var resolveName = func() string {
	settings, err := config.FromEnv()
	if err != nil {
		settings = config.Settings{}
	}
	r := NewResolver(&Config{
		InstallDir: settings.InstallDir,
		Debug:      settings.Debug,
	})
	return r.Resolve(FactoryNameProperty, DefaultFactoryName)
}

// Name returns the implementation identifier for this process. The discovery
// search runs at most once, on first call; every later call returns the
// cached value even if the underlying sources have changed.
func Name() string {
	nameOnce.Do(func() {
		cachedName = resolveName()
	})
	return cachedName
}

// New returns a freshly constructed factory for the process identifier.
// Construction is re-attempted on every call; the identifier is not. All
// failure modes collapse into a single configuration error wrapping the
// cause, checkable with errors.IsConfiguration.
func New() (objpath.Factory, error) {
	return load(Name(), defaultRegistry)
}

// Load constructs the factory registered under a specific identifier,
// bypassing the process cache. New is equivalent to Load(Name()). Intended
// for diagnostics and for hosts that manage identifiers themselves.
func Load(name string) (objpath.Factory, error) {
	return load(name, defaultRegistry)
}

func load(name string, reg *Registry) (f objpath.Factory, err error) {
	ctor := reg.Lookup(name)
	if ctor == nil {
		return nil, errors.Configuration(name, errors.NotFound(errors.PhaseLoad, "factory constructor", name))
	}

	defer func() {
		if rec := recover(); rec != nil {
			f = nil
			err = errors.Configuration(name, errors.Constructor(name, fmt.Errorf("panic: %v", rec)))
		}
	}()

	built, cerr := ctor()
	if cerr != nil {
		return nil, errors.Configuration(name, errors.Constructor(name, cerr))
	}
	if built == nil {
		return nil, errors.Configuration(name, errors.Constructor(name, fmt.Errorf("constructor returned no factory")))
	}
	return built, nil
}
