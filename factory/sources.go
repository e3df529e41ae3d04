package factory

import (
	"bufio"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const (
	propertiesFile = "objpath.properties"
	servicePrefix  = "META-INF/services"
)

// source is one strategy in the ordered discovery search. A source yields an
// identifier or reports not found. A non-nil error is informational only:
// the read failure that was swallowed to keep the search fail-soft.
type source interface {
	name() string
	lookup(key string) (value string, ok bool, err error)
}

// EnvKey returns the environment variable form of a property key:
// upper-cased with dots replaced by underscores, so "objpath.factory"
// becomes "OBJPATH_FACTORY".
func EnvKey(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// settingSource probes a process-wide setting through a getenv-style
// function. Highest priority: a non-empty value wins immediately.
type settingSource struct {
	getenv func(string) string
}

func (s settingSource) name() string { return "setting" }

func (s settingSource) lookup(key string) (string, bool, error) {
	v := strings.TrimSpace(s.getenv(EnvKey(key)))
	return v, v != "", nil
}

// propertiesSource consults <dir>/lib/objpath.properties for the key.
type propertiesSource struct {
	dir string
}

func (s propertiesSource) name() string { return "properties" }

func (s propertiesSource) lookup(key string) (string, bool, error) {
	if s.dir == "" {
		return "", false, nil
	}

	f, err := os.Open(filepath.Join(s.dir, "lib", propertiesFile))
	if err != nil {
		return "", false, err
	}
	defer f.Close()

	props, err := parseProperties(f)
	if err != nil {
		return "", false, err
	}

	v := strings.TrimSpace(props[key])
	return v, v != "", nil
}

// serviceSource scans an ordered fs.FS search path for the resource
// META-INF/services/<key> and yields its first non-empty line.
type serviceSource struct {
	searchPath []fs.FS
}

func (s serviceSource) name() string { return "services" }

func (s serviceSource) lookup(key string) (string, bool, error) {
	resource := path.Join(servicePrefix, key)

	var lastErr error
	for _, fsys := range s.searchPath {
		v, ok, err := readServiceResource(fsys, resource)
		if err != nil {
			lastErr = err
			continue
		}
		if ok {
			return v, true, nil
		}
	}
	return "", false, lastErr
}

func readServiceResource(fsys fs.FS, resource string) (string, bool, error) {
	f, err := fsys.Open(resource)
	if err != nil {
		return "", false, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		// First non-empty line is the identifier; later lines are ignored.
		if line := strings.TrimSpace(sc.Text()); line != "" {
			return line, true, nil
		}
	}
	return "", false, sc.Err()
}

// defaultSource terminates the search; it always yields its value.
type defaultSource struct {
	value string
}

func (s defaultSource) name() string { return "default" }

func (s defaultSource) lookup(string) (string, bool, error) {
	return s.value, true, nil
}

// parseProperties reads line-oriented key=value pairs. Blank lines and lines
// starting with # or ! are skipped; lines without a separator are ignored.
func parseProperties(r io.Reader) (map[string]string, error) {
	props := make(map[string]string)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}
		k, v, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		props[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return props, nil
}

// defaultInstallDir returns the running executable's install root, assuming
// the conventional <root>/bin/<tool> layout. Empty when the executable path
// cannot be determined.
func defaultInstallDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Dir(filepath.Dir(exe))
}
