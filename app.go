package powermodule

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/GoCodeAlone/powermodule/config"
	"github.com/GoCodeAlone/powermodule/container"
)

// Application is the composition root as seen by callers.
type Application interface {
	container.Getter
	RegisterModules(names ...string) error
	Container() *container.Container
	Config() *config.AppConfig
	Modules() []ModuleInfo
	Logger() Logger
}

type moduleState int

const (
	stateUnregistered moduleState = iota
	stateRegistering
	stateRegistered
	stateSetUp
)

func (s moduleState) String() string {
	switch s {
	case stateRegistering:
		return "registering"
	case stateRegistered:
		return "registered"
	case stateSetUp:
		return "set-up"
	default:
		return "unregistered"
	}
}

type moduleRecord struct {
	name   string
	module Module
	caps   Capabilities
	state  moduleState
}

// ModuleInfo describes a registered module.
type ModuleInfo struct {
	Name    string              `json:"name"`
	State   string              `json:"state"`
	Exports []string            `json:"exports,omitempty"`
	Imports map[string][]string `json:"imports,omitempty"`
}

// App owns the root container and registers modules into it. Each module
// gets its own container, stored in the root container under the module's
// name. App is not safe for concurrent use while registering.
type App struct {
	config    *config.AppConfig
	root      *container.Container
	sorter    ModuleDependencySorter
	resolver  ModuleResolver
	setups    []Setup
	modules   map[string]*moduleRecord
	order     []string
	logger    Logger
	observers []Observer
}

// NewApp creates an application with no setups and an empty Catalog as
// module resolver. Most callers use NewApplication instead.
func NewApp(cfg *config.AppConfig, root *container.Container, sorter ModuleDependencySorter) *App {
	return &App{
		config:   cfg,
		root:     root,
		sorter:   sorter,
		resolver: NewCatalog(),
		modules:  make(map[string]*moduleRecord),
		logger:   slog.Default(),
	}
}

// AddSetup appends setup, or replaces in place the setup with the same name.
func (a *App) AddSetup(setup Setup) {
	for i, s := range a.setups {
		if s.Name() == setup.Name() {
			a.setups[i] = setup
			return
		}
	}
	a.setups = append(a.setups, setup)
}

// Setups returns the setups in the order they run.
func (a *App) Setups() []Setup {
	return slices.Clone(a.setups)
}

func (a *App) SetModuleResolver(resolver ModuleResolver) { a.resolver = resolver }

func (a *App) SetLogger(logger Logger) { a.logger = logger }

func (a *App) Logger() Logger { return a.logger }

func (a *App) Config() *config.AppConfig { return a.config }

// Container returns the root container.
func (a *App) Container() *container.Container { return a.root }

// Get resolves id from the root container.
func (a *App) Get(id string) (any, error) { return a.root.Get(id) }

// Has reports whether id is declared in the root container.
func (a *App) Has(id string) bool { return a.root.Has(id) }

// RegisterModules registers the named modules and the setups around them.
// Modules are registered in dependency order. Each one runs the pre-phase
// setups, its own Register, and is then stored in the root container; once
// all of them are registered, the post-phase setups run for each in the same
// order. A name that is repeated, or already registered, is rejected before
// anything is registered.
func (a *App) RegisterModules(names ...string) error {
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] || a.modules[name] != nil || a.root.Has(name) {
			return fmt.Errorf("%w: %s", ErrModuleAlreadyRegistered, name)
		}
		seen[name] = true
	}

	ordered, err := a.sorter.Sort(names)
	if err != nil {
		a.logger.Error("Failed to order modules", "error", err)
		return fmt.Errorf("failed to resolve dependencies: %w", err)
	}
	a.logger.Debug("Module registration order", "order", ordered)
	a.notify(EventTypeModulesSorted, map[string]any{"order": ordered})

	records := make([]*moduleRecord, 0, len(ordered))
	for _, name := range ordered {
		m, err := a.resolver.Create(name)
		if err != nil {
			return fmt.Errorf("create module %s: %w", name, err)
		}
		if actual := ModuleName(m); actual != name {
			return fmt.Errorf("%w: asked for %s, got %s", ErrModuleNameMismatch, name, actual)
		}
		caps, err := CapabilitiesOf(m)
		if err != nil {
			return fmt.Errorf("create module %s: %w", name, err)
		}
		records = append(records, &moduleRecord{name: name, module: m, caps: caps})
	}

	for _, rec := range records {
		if err := a.register(rec); err != nil {
			a.notify(EventTypeModuleFailed, map[string]any{"module": rec.name, "error": err.Error()})
			return err
		}
	}
	for _, rec := range records {
		if err := a.setUp(rec); err != nil {
			a.notify(EventTypeModuleFailed, map[string]any{"module": rec.name, "error": err.Error()})
			return err
		}
	}
	return nil
}

func (a *App) register(rec *moduleRecord) error {
	if a.root.Has(rec.name) {
		return fmt.Errorf("%w: %s", ErrModuleAlreadyRegistered, rec.name)
	}
	rec.state = stateRegistering
	a.modules[rec.name] = rec

	moduleContainer := container.New(container.WithName(rec.name))
	if err := a.runSetups(rec, PhasePre, moduleContainer); err != nil {
		return err
	}
	if err := rec.module.Register(moduleContainer); err != nil {
		a.logger.Error("Module registration failed", "module", rec.name, "error", err)
		return fmt.Errorf("%w: %s: %w", ErrModuleRegistration, rec.name, err)
	}
	a.root.Set(rec.name, moduleContainer, container.Raw)

	rec.state = stateRegistered
	a.order = append(a.order, rec.name)
	a.logger.Info("Registered module", "module", rec.name)
	a.notify(EventTypeModuleRegistered, map[string]any{"module": rec.name})
	return nil
}

func (a *App) setUp(rec *moduleRecord) error {
	moduleContainer, err := container.Get[*container.Container](a.root, rec.name)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSetupFailed, rec.name, err)
	}
	if err := a.runSetups(rec, PhasePost, moduleContainer); err != nil {
		return err
	}
	rec.state = stateSetUp
	a.notify(EventTypeModuleSetUp, map[string]any{"module": rec.name})
	return nil
}

func (a *App) runSetups(rec *moduleRecord, phase Phase, moduleContainer *container.Container) error {
	dto := SetupDTO{
		Phase:           phase,
		Module:          rec.module,
		ModuleName:      rec.name,
		Capabilities:    rec.caps,
		RootContainer:   a.root,
		ModuleContainer: moduleContainer,
		AppConfig:       a.config,
		Logger:          a.logger,
	}
	for _, setup := range a.setups {
		if err := setup.Setup(dto); err != nil {
			a.logger.Error("Module setup failed", "module", rec.name, "setup", setup.Name(), "phase", phase.String(), "error", err)
			return fmt.Errorf("%w: %s: %s (%s): %w", ErrSetupFailed, rec.name, setup.Name(), phase, err)
		}
	}
	return nil
}

// Modules describes the registered modules in registration order.
func (a *App) Modules() []ModuleInfo {
	infos := make([]ModuleInfo, 0, len(a.order))
	for _, name := range a.order {
		rec := a.modules[name]
		info := ModuleInfo{
			Name:    name,
			State:   rec.state.String(),
			Exports: slices.Clone(rec.caps.Exports),
		}
		if len(rec.caps.Imports) > 0 {
			info.Imports = make(map[string][]string, len(rec.caps.Imports))
			for _, item := range rec.caps.Imports {
				info.Imports[item.ModuleName] = append(info.Imports[item.ModuleName], item.Items...)
			}
		}
		infos = append(infos, info)
	}
	return infos
}

// ModuleContainer returns the container of the registered module name.
func (a *App) ModuleContainer(name string) (*container.Container, error) {
	if a.modules[name] == nil {
		return nil, fmt.Errorf("%w: %s", ErrModuleNotFound, name)
	}
	return container.Get[*container.Container](a.root, name)
}

func (a *App) notify(eventType string, data map[string]any) {
	if len(a.observers) == 0 {
		return
	}
	event := NewCloudEvent(eventType, eventSource, data)
	for _, o := range a.observers {
		if err := o.OnEvent(context.Background(), event); err != nil {
			a.logger.Warn("Observer failed to handle event", "observer", o.ObserverID(), "event", eventType, "error", err)
		}
	}
}
