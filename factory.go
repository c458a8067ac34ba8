package powermodule

import (
	"fmt"
	"log/slog"

	"github.com/GoCodeAlone/powermodule/cache"
	"github.com/GoCodeAlone/powermodule/config"
	"github.com/GoCodeAlone/powermodule/container"
)

// NewForAppRoot wires an application for appRoot the minimal way: the
// configuration from config.ForAppRoot, a caching iterative sorter over the
// filesystem cache and the given catalog, the standard setups followed by
// HasConfigSetup, and ConfigModule registered. Callers register their modules
// afterwards with RegisterModules.
func NewForAppRoot(appRoot string, catalog *Catalog) (*App, error) {
	cfg := config.ForAppRoot(appRoot)
	fc, err := cache.NewFilesystemCache(cfg.CachePath)
	if err != nil {
		return nil, fmt.Errorf("create module cache: %w", err)
	}
	if catalog == nil {
		catalog = NewCatalog()
	}
	if _, err := catalog.AddModule(ConfigModule{}); err != nil {
		return nil, err
	}

	root := container.New(container.WithName("root"))
	root.Set(config.AppConfigID, cfg, container.Raw)

	logger := slog.Default()
	app := NewApp(cfg, root, NewCachingSorter(NewIterativeSorter(catalog), fc, logger))
	app.SetModuleResolver(catalog)
	for _, s := range StandardSetups() {
		app.AddSetup(s)
	}
	app.AddSetup(HasConfigSetup{})
	if err := app.RegisterModules(NameOf[ConfigModule]()); err != nil {
		return nil, err
	}
	return app, nil
}
