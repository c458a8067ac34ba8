package powermodule

import (
	"errors"
	"fmt"
)

// ModuleResolver creates modules by name.
type ModuleResolver interface {
	Create(name string) (Module, error)
}

// ModuleFactory returns a new module value.
type ModuleFactory func() Module

// Catalog is a ModuleResolver over a fixed set of known module types.
type Catalog struct {
	factories map[string]ModuleFactory
	names     []string
}

func NewCatalog() *Catalog {
	return &Catalog{factories: make(map[string]ModuleFactory)}
}

// Add registers factories under the names of the modules they return and
// reports those names in order. Adding a name again replaces its factory.
func (c *Catalog) Add(factories ...ModuleFactory) ([]string, error) {
	names := make([]string, 0, len(factories))
	for _, f := range factories {
		if f == nil {
			return nil, ErrNilModule
		}
		m := f()
		if m == nil {
			return nil, ErrNilModule
		}
		name := ModuleName(m)
		if _, known := c.factories[name]; !known {
			c.names = append(c.names, name)
		}
		c.factories[name] = f
		names = append(names, name)
	}
	return names, nil
}

// AddModule registers module values. Create returns the value itself, so a
// module added this way keeps any state set before registration.
func (c *Catalog) AddModule(modules ...Module) ([]string, error) {
	factories := make([]ModuleFactory, len(modules))
	for i, m := range modules {
		if m == nil {
			return nil, ErrNilModule
		}
		factories[i] = func() Module { return m }
	}
	return c.Add(factories...)
}

func (c *Catalog) Has(name string) bool {
	_, ok := c.factories[name]
	return ok
}

// Names returns the known module names in the order they were first added.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.names...)
}

func (c *Catalog) Create(name string) (Module, error) {
	f, ok := c.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrModuleNotFound, name)
	}
	return f(), nil
}

// chainResolver asks each resolver in turn, moving on only when a resolver
// does not know the module.
type chainResolver []ModuleResolver

func (r chainResolver) Create(name string) (Module, error) {
	for _, resolver := range r {
		m, err := resolver.Create(name)
		if err == nil {
			return m, nil
		}
		if !errors.Is(err, ErrModuleNotFound) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrModuleNotFound, name)
}
