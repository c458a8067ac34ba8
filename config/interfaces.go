// Package config holds application and module configuration: the ambient
// settings every configuration carries, the application configuration, and
// the loader that overlays per-module files on module defaults.
package config

// ModuleConfig is a module's configuration. Implementations are pointers to
// structs that embed Ambient and name the file they are loaded from.
type ModuleConfig interface {
	// ConfigFilename is the file name, without extension, looked up in the
	// application's config directory.
	ConfigFilename() string
	AmbientSettings() *Ambient
}

// ModuleConfigLoader produces the effective configuration for a module from
// its default.
type ModuleConfigLoader interface {
	Load(defaults ModuleConfig) (ModuleConfig, error)
}

// Holder stores a module's effective configuration. Embed it in a module
// to provide the SetConfig and Config halves of a configurable module.
type Holder struct {
	cfg ModuleConfig
}

func (h *Holder) SetConfig(cfg ModuleConfig) { h.cfg = cfg }

func (h *Holder) Config() ModuleConfig { return h.cfg }

// As asserts cfg to the concrete configuration type T.
func As[T ModuleConfig](cfg ModuleConfig) (T, bool) {
	t, ok := cfg.(T)
	return t, ok
}
