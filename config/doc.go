// Package config loads process-wide objpath settings from the environment.
//
// Settings are read once at the composition root and passed explicitly into
// the discovery resolver, keeping the resolution algorithm itself free of
// ambient reads. The OBJPATH_FACTORY override is not part of Settings: the
// resolver's highest-priority discovery source probes it directly.
package config
