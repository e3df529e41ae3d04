package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings holds discovery settings read from the environment.
type Settings struct {
	// Debug enables trace logging of which discovery source satisfied a
	// lookup. Tracing never changes resolution outcomes.
	Debug bool `env:"OBJPATH_DEBUG"`

	// InstallDir overrides the installation root probed for
	// lib/objpath.properties. Empty means the running executable's
	// install root.
	InstallDir string `env:"OBJPATH_HOME"`
}

// FromEnv loads settings from environment variables.
func FromEnv() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}
