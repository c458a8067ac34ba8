package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/GoCodeAlone/powermodule/container"
	"github.com/GoCodeAlone/powermodule/feeders"
)

const (
	// AppConfigFilename is the file name the application configuration
	// answers to.
	AppConfigFilename = "modular_app"
	// EnvPrefix prefixes the environment variables that override the
	// application configuration, such as POWERMODULE_CACHE_PATH.
	EnvPrefix = "POWERMODULE"
)

var (
	// AppConfigID is the service id of the *AppConfig in containers.
	AppConfigID = container.IDOf[*AppConfig]()
	// LoaderID is the service id of the module configuration loader.
	LoaderID = container.IDOf[*Loader]()
)

// AppConfig is the application-wide configuration.
type AppConfig struct {
	Ambient
}

func (c *AppConfig) ConfigFilename() string { return AppConfigFilename }

// ForAppRoot returns the configuration for an application rooted at root,
// with the cache under <root>/cache.
func ForAppRoot(root string) *AppConfig {
	return &AppConfig{Ambient: Ambient{
		AppRoot:   root,
		CachePath: filepath.Join(root, "cache"),
	}}
}

// LoadAppConfig builds the configuration for root, then applies <root>/.env
// and POWERMODULE_* environment variables in that order.
func LoadAppConfig(root string) (*AppConfig, error) {
	cfg := ForAppRoot(root)

	dotEnv := filepath.Join(root, ".env")
	if _, err := os.Stat(dotEnv); err == nil {
		if err := feeders.NewDotEnvFeeder(dotEnv, EnvPrefix).Feed(cfg); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := feeders.NewAffixedEnvFeeder(EnvPrefix, "").Feed(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
