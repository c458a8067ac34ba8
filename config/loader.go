package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/GoCodeAlone/powermodule/feeders"
)

// Extensions are tried in order when looking for a module config file.
var Extensions = []string{".yaml", ".yml", ".toml", ".json"}

// Loader overlays module config files from a directory on module defaults.
type Loader struct {
	dir     string
	ambient Ambient
	logger  feeders.DebugLogger
}

// NewLoader returns a loader reading from dir. Every configuration it
// returns carries ambient.
func NewLoader(dir string, ambient Ambient) *Loader {
	return &Loader{dir: dir, ambient: ambient}
}

func (l *Loader) Dir() string { return l.dir }

// SetLogger makes the loader, and the feeders it uses, report what they read
// at debug level.
func (l *Loader) SetLogger(logger feeders.DebugLogger) { l.logger = logger }

// Load returns the effective configuration for defaults. When no file named
// after defaults.ConfigFilename() exists, a copy of defaults is returned.
// Otherwise the file is decoded over a copy of defaults, so keys it omits
// keep their default values. defaults itself is never modified.
func (l *Loader) Load(defaults ModuleConfig) (ModuleConfig, error) {
	if defaults == nil {
		return nil, fmt.Errorf("%w: nil default configuration", ErrInvalidConfig)
	}
	rv := reflect.ValueOf(defaults)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %T is not a pointer to a struct", ErrInvalidConfig, defaults)
	}

	cp := reflect.New(rv.Elem().Type())
	cp.Elem().Set(rv.Elem())
	cfg := cp.Interface().(ModuleConfig)
	cfg.AmbientSettings().Apply(l.ambient)

	path, found := l.find(defaults.ConfigFilename())
	if !found {
		l.debug("No configuration file, using defaults", "dir", l.dir, "filename", defaults.ConfigFilename())
		return cfg, nil
	}

	feeder, err := feeders.ForFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if v, ok := feeder.(feeders.VerboseFeeder); ok && l.logger != nil {
		v.SetVerboseDebug(true, l.logger)
	}
	l.debug("Loading configuration file", "path", path, "type", fmt.Sprintf("%T", defaults))
	if err := feeder.Feed(cfg); err != nil {
		return nil, fmt.Errorf("%w: configuration file %q does not describe %T: %w", ErrInvalidConfig, path, defaults, err)
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}
	return cfg, nil
}

func (l *Loader) debug(msg string, args ...any) {
	if l.logger != nil {
		l.logger.Debug(msg, args...)
	}
}

// Path returns the config file Load would read for filename.
func (l *Loader) Path(filename string) (string, error) {
	path, found := l.find(filename)
	if !found {
		return "", fmt.Errorf("%w: %s", ErrConfigNotFound, filepath.Join(l.dir, sanitize(filename)))
	}
	return path, nil
}

func (l *Loader) find(filename string) (string, bool) {
	base := filepath.Join(l.dir, sanitize(filename))
	for _, ext := range Extensions {
		path := base + ext
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

func sanitize(filename string) string {
	return strings.ReplaceAll(filename, "..", "")
}
