// Package powermodule composes applications out of modules that each own a
// private service container and share services explicitly.
//
// A module registers its services into its own container. It can export
// some of them, making them resolvable from the application's root
// container, and import services exported by other modules into its own
// container. The application orders modules so that every exporter is
// registered before the modules importing from it, then runs a setup
// pipeline around each module's registration to wire exports, imports and
// configuration.
//
// Basic usage:
//
//	app, err := powermodule.NewApplication("/srv/app",
//		powermodule.WithModules(&billing.Module{}, &users.Module{}),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	svc, err := container.Get[*billing.Service](app, billing.ServiceID)
package powermodule

import (
	"reflect"

	"github.com/GoCodeAlone/powermodule/config"
	"github.com/GoCodeAlone/powermodule/container"
	typetostring "github.com/samber/go-type-to-string"
)

// Module is a unit of composition. Its identity is its type: two values of
// the same module type are the same module, see ModuleName.
type Module interface {
	// Register declares the module's services in its own container. It is
	// called once, after every module it imports from has been registered.
	// Imported services are linked into c only after Register returns, so
	// Register must declare factories rather than resolve imports eagerly.
	Register(c *container.Container) error
}

// Exporter is implemented by modules that make services available to the
// rest of the application.
type Exporter interface {
	Module

	// Exports lists the ids of services, declared in the module's container,
	// that are resolvable through the root container.
	Exports() []string
}

// Importer is implemented by modules that use services exported by other
// modules. Importing from a module makes it a dependency: when both are
// registered in the same call the exporter is registered first. An exporter
// that is not part of the call must have been registered by an earlier one.
type Importer interface {
	Module

	Imports() []ImportItem
}

// Configurable is implemented by modules that take configuration. Before the
// module registers, the application loads the configuration file named by
// DefaultConfig().ConfigFilename(), overlays it on DefaultConfig() and hands
// the result to SetConfig. Embed config.Holder for SetConfig and Config.
type Configurable interface {
	Module

	DefaultConfig() config.ModuleConfig
	SetConfig(cfg config.ModuleConfig)
	Config() config.ModuleConfig
}

// Capabilities records which optional interfaces a module implements, with
// the declarations read once at registration.
type Capabilities struct {
	Exports      []string
	Imports      []ImportItem
	Exporter     bool
	Importer     bool
	Configurable bool
}

// CapabilitiesOf inspects m. It fails with ErrInvalidImport when m declares
// an invalid import.
func CapabilitiesOf(m Module) (Capabilities, error) {
	var caps Capabilities
	if e, ok := m.(Exporter); ok {
		caps.Exporter = true
		caps.Exports = e.Exports()
	}
	if i, ok := m.(Importer); ok {
		caps.Importer = true
		imports, err := declaredImports(i)
		if err != nil {
			return Capabilities{}, err
		}
		caps.Imports = imports
	}
	if _, ok := m.(Configurable); ok {
		caps.Configurable = true
	}
	return caps, nil
}

// ModuleName returns the canonical name of m's type, with pointers removed:
// &users.Module{} and users.Module{} are both "github.com/acme/app/users.Module".
func ModuleName(m Module) string {
	return typeName(reflect.TypeOf(m))
}

// NameOf returns the canonical name of the module type M.
func NameOf[M Module]() string {
	return typeName(reflect.TypeFor[M]())
}

func typeName(t reflect.Type) string {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return typetostring.GetReflectType(t)
}
