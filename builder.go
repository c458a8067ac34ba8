package powermodule

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/GoCodeAlone/powermodule/cache"
	"github.com/GoCodeAlone/powermodule/config"
	"github.com/GoCodeAlone/powermodule/container"
)

// Option represents a functional option for configuring applications
type Option func(*ApplicationBuilder) error

// ApplicationBuilder collects the parts of an application. Parts left unset
// get defaults when Build runs.
type ApplicationBuilder struct {
	appRoot   string
	config    *config.AppConfig
	root      *container.Container
	sorter    ModuleDependencySorter
	cache     cache.Cache
	resolver  ModuleResolver
	catalog   *Catalog
	setups    []Setup
	modules   []string
	logger    Logger
	observers []Observer
}

func NewApplicationBuilder(appRoot string) *ApplicationBuilder {
	return &ApplicationBuilder{
		appRoot: appRoot,
		catalog: NewCatalog(),
	}
}

// NewApplication builds an application rooted at appRoot with the provided
// options and registers its modules.
func NewApplication(appRoot string, opts ...Option) (*App, error) {
	builder := NewApplicationBuilder(appRoot)
	for _, opt := range opts {
		if err := opt(builder); err != nil {
			return nil, err
		}
	}
	return builder.Build()
}

// Build assembles the application and registers ConfigModule together with
// every module added through the options, in a single call.
//
// Defaults: configuration from config.LoadAppConfig, a filesystem cache in
// the configured cache path, a caching iterative sorter, slog.Default() as
// logger, and the standard setups followed by HasConfigSetup and any setups
// passed with WithSetups.
func (b *ApplicationBuilder) Build() (*App, error) {
	cfg := b.config
	if cfg == nil {
		loaded, err := config.LoadAppConfig(b.appRoot)
		if err != nil {
			return nil, fmt.Errorf("load application config: %w", err)
		}
		cfg = loaded
	}

	logger := b.logger
	if logger == nil {
		logger = slog.Default()
	}

	root := b.root
	if root == nil {
		root = container.New(container.WithName("root"))
	}
	root.Set(config.AppConfigID, cfg, container.Raw)

	if _, err := b.catalog.AddModule(ConfigModule{}); err != nil {
		return nil, err
	}
	var resolver ModuleResolver = b.catalog
	if b.resolver != nil {
		resolver = chainResolver{b.catalog, b.resolver}
	}

	sorter := b.sorter
	if sorter == nil {
		c := b.cache
		if c == nil {
			fc, err := cache.NewFilesystemCache(cfg.CachePath)
			if err != nil {
				return nil, fmt.Errorf("create module cache: %w", err)
			}
			c = fc
		}
		sorter = NewCachingSorter(NewIterativeSorter(resolver), c, logger)
	}

	app := NewApp(cfg, root, sorter)
	app.SetModuleResolver(resolver)
	app.SetLogger(logger)
	for _, o := range b.observers {
		app.RegisterObserver(o)
	}
	for _, s := range StandardSetups() {
		app.AddSetup(s)
	}
	app.AddSetup(HasConfigSetup{})
	for _, s := range b.setups {
		app.AddSetup(s)
	}

	configModule := NameOf[ConfigModule]()
	names := []string{configModule}
	for _, name := range b.modules {
		if name != configModule {
			names = append(names, name)
		}
	}
	if err := app.RegisterModules(names...); err != nil {
		return nil, err
	}
	return app, nil
}

// WithConfig sets the application configuration instead of loading it.
func WithConfig(cfg *config.AppConfig) Option {
	return func(b *ApplicationBuilder) error {
		if cfg == nil {
			return fmt.Errorf("%w: nil config", ErrInvalidBuildOption)
		}
		b.config = cfg
		return nil
	}
}

// WithRootContainer sets the root container.
func WithRootContainer(c *container.Container) Option {
	return func(b *ApplicationBuilder) error {
		b.root = c
		return nil
	}
}

// WithSorter replaces the module sorter, including its caching.
func WithSorter(sorter ModuleDependencySorter) Option {
	return func(b *ApplicationBuilder) error {
		b.sorter = sorter
		return nil
	}
}

// WithCache sets the cache the default sorter stores orderings in.
func WithCache(c cache.Cache) Option {
	return func(b *ApplicationBuilder) error {
		b.cache = c
		return nil
	}
}

// WithModuleResolver adds a resolver consulted for modules that were not
// added with WithModules or WithModuleFactories.
func WithModuleResolver(resolver ModuleResolver) Option {
	return func(b *ApplicationBuilder) error {
		b.resolver = resolver
		return nil
	}
}

// WithSetups adds setups run after the standard ones.
func WithSetups(setups ...Setup) Option {
	return func(b *ApplicationBuilder) error {
		b.setups = append(b.setups, setups...)
		return nil
	}
}

// WithModules adds module values to register.
func WithModules(modules ...Module) Option {
	return func(b *ApplicationBuilder) error {
		names, err := b.catalog.AddModule(modules...)
		if err != nil {
			return err
		}
		b.addNames(names)
		return nil
	}
}

// WithModuleFactories adds modules to register, created by their factories.
func WithModuleFactories(factories ...ModuleFactory) Option {
	return func(b *ApplicationBuilder) error {
		names, err := b.catalog.Add(factories...)
		if err != nil {
			return err
		}
		b.addNames(names)
		return nil
	}
}

// WithModuleNames adds modules to register by name. They are created by the
// resolver set with WithModuleResolver.
func WithModuleNames(names ...string) Option {
	return func(b *ApplicationBuilder) error {
		b.addNames(names)
		return nil
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger Logger) Option {
	return func(b *ApplicationBuilder) error {
		b.logger = logger
		return nil
	}
}

// WithObserver registers observers for lifecycle events.
func WithObserver(observers ...Observer) Option {
	return func(b *ApplicationBuilder) error {
		b.observers = append(b.observers, observers...)
		return nil
	}
}

func (b *ApplicationBuilder) addNames(names []string) {
	for _, name := range names {
		if !slices.Contains(b.modules, name) {
			b.modules = append(b.modules, name)
		}
	}
}
