package powermodule

import (
	"path/filepath"

	"github.com/GoCodeAlone/powermodule/config"
	"github.com/GoCodeAlone/powermodule/container"
)

// ConfigDir is the directory, relative to the application root, that module
// configuration files are read from.
const ConfigDir = "config"

// ConfigModule exports the module configuration loader. It must be
// registered before any configurable module.
type ConfigModule struct{}

func (ConfigModule) Exports() []string {
	return []string{config.LoaderID}
}

func (ConfigModule) Register(c *container.Container) error {
	c.Set(config.LoaderID, func(cfg *config.AppConfig, logger Logger) *config.Loader {
		loader := config.NewLoader(filepath.Join(cfg.AppRoot, ConfigDir), cfg.Ambient)
		loader.SetLogger(logger)
		return loader
	})
	return nil
}
