// Package container provides the service containers modules register into.
// A container holds declared definitions and memoizes the instance each one
// resolves to, so repeated lookups return the same value.
//
// Containers are not safe for concurrent mutation. They are populated while
// an application registers its modules and read afterwards.
package container

import (
	"fmt"
	"slices"
)

// Getter is the read side of a container.
type Getter interface {
	Get(id string) (any, error)
	Has(id string) bool
}

// Option configures a Container.
type Option func(*Container)

// WithName names the container. Module containers carry their module's name.
func WithName(name string) Option {
	return func(c *Container) { c.name = name }
}

// WithTypes sets the registry used to instantiate type ids.
func WithTypes(types *TypeRegistry) Option {
	return func(c *Container) { c.types = types }
}

// Container maps service ids to definitions and resolved instances.
type Container struct {
	name      string
	types     *TypeRegistry
	declared  map[string]*Definition
	resolved  map[string]any
	resolving map[string]bool
}

func New(opts ...Option) *Container {
	c := &Container{
		types:     Types,
		declared:  make(map[string]*Definition),
		resolved:  make(map[string]any),
		resolving: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Container) Name() string { return c.name }

// Set declares id with value resolved by kind (Default when omitted) and
// returns the definition so arguments and method calls can be added. A nil
// value means the id itself, which the Default resolver instantiates when it
// names a registered type. A later Set for the same id replaces the earlier
// one.
func (c *Container) Set(id string, value any, kind ...ResolverKind) *Definition {
	k := Default
	if len(kind) > 0 {
		k = kind[0]
	}
	if value == nil {
		value = id
	}
	d := NewDefinition(id, value, NewResolver(k, c))
	c.declared[id] = d
	delete(c.resolved, id)
	return d
}

// AddServiceDefinition stores an existing definition under id. Definitions
// keep the resolver they were created with, which lets a container link a
// definition owned by another one.
func (c *Container) AddServiceDefinition(id string, d *Definition) error {
	if _, ok := c.declared[id]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateDefinition, id)
	}
	c.declared[id] = d
	return nil
}

// Get returns the instance for id, resolving it on first use.
func (c *Container) Get(id string) (any, error) {
	if v, ok := c.resolved[id]; ok {
		return v, nil
	}
	d, ok := c.declared[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrServiceNotFound, id)
	}
	if c.resolving[id] {
		return nil, fmt.Errorf("%w: %q", ErrCircularReference, id)
	}
	c.resolving[id] = true
	defer delete(c.resolving, id)

	v, err := d.Resolve()
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", id, err)
	}
	c.resolved[id] = v
	return v, nil
}

// Has reports whether id is declared.
func (c *Container) Has(id string) bool {
	_, ok := c.declared[id]
	return ok
}

// GetServiceDefinition returns the definition declared for id.
func (c *Container) GetServiceDefinition(id string) (*Definition, error) {
	d, ok := c.declared[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrServiceNotFound, id)
	}
	return d, nil
}

// IDs returns the declared ids in lexical order.
func (c *Container) IDs() []string {
	ids := make([]string, 0, len(c.declared))
	for id := range c.declared {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
