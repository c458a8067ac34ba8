package container

import (
	"fmt"
	"reflect"
)

// InstanceResolver turns a definition's raw value into a service instance.
type InstanceResolver interface {
	Resolve(id string, value any, args []any) (any, error)
}

// ArgumentResolver is implemented by resolvers that can resolve constructor
// and method arguments against a container.
type ArgumentResolver interface {
	ResolveArguments(args []any) ([]any, error)
}

// ResolverKind selects one of the built-in resolvers.
type ResolverKind int

const (
	// Default calls factories and constructs registered types.
	Default ResolverKind = iota
	// Raw returns the value unchanged.
	Raw
	// ViaContainer fetches the service from another container under the same id.
	ViaContainer
)

func (k ResolverKind) String() string {
	switch k {
	case Default:
		return "default"
	case Raw:
		return "raw"
	case ViaContainer:
		return "via-container"
	default:
		return fmt.Sprintf("ResolverKind(%d)", int(k))
	}
}

// NewResolver returns the resolver for kind bound to c. Unknown kinds fall
// back to Default.
func NewResolver(kind ResolverKind, c *Container) InstanceResolver {
	switch kind {
	case Raw:
		return RawResolver{}
	case ViaContainer:
		return ViaContainerResolver{}
	default:
		return &DefaultResolver{container: c, types: c.types}
	}
}

// Reference is an argument resolved by fetching the named service.
type Reference string

// Ref marks id as a service reference.
func Ref(id string) Reference { return Reference(id) }

// typeArgument is an autowired parameter. It resolves to the service
// declared under the parameter's type id, else to a new instance of the type
// registered under it.
type typeArgument string

// LiteralValue is an argument passed through without resolution.
type LiteralValue struct{ Value any }

// Literal marks v to be passed as is. Use it for strings that would otherwise
// be looked up as service ids.
func Literal(v any) LiteralValue { return LiteralValue{Value: v} }

// RawResolver returns definition values unchanged.
type RawResolver struct{}

func (RawResolver) Resolve(_ string, value any, _ []any) (any, error) {
	return value, nil
}

// ViaContainerResolver treats the definition value as a container and asks
// it for the same id.
type ViaContainerResolver struct{}

func (ViaContainerResolver) Resolve(id string, value any, _ []any) (any, error) {
	getter, ok := value.(Getter)
	if !ok {
		return nil, fmt.Errorf("%w: %q holds %T", ErrNotAContainer, id, value)
	}
	return getter.Get(id)
}

// DefaultResolver resolves:
//   - funcs, by calling them with the resolved arguments, or with parameters
//     autowired by type id when the definition declares no arguments: a
//     parameter gets the service declared under its type id, else a new
//     instance of the type registered under it
//   - strings naming a registered type, by calling its constructor
//   - anything else, by returning it unchanged
type DefaultResolver struct {
	container *Container
	types     *TypeRegistry
}

func (r *DefaultResolver) Resolve(_ string, value any, args []any) (any, error) {
	if value == nil {
		return nil, nil
	}
	if fn := reflect.ValueOf(value); fn.Kind() == reflect.Func {
		return r.callFactory(fn, args)
	}
	if name, ok := value.(string); ok {
		if ctor, ok := r.types.Lookup(name); ok {
			return r.callFactory(ctor, args)
		}
	}
	return value, nil
}

// ResolveArguments resolves each argument in order:
//   - Reference: the referenced service
//   - LiteralValue: the wrapped value
//   - string: the service with that id, else a new instance of the registered
//     type with that id, else the string itself
//   - func: the result of calling it with autowired parameters
//   - anything else: unchanged
func (r *DefaultResolver) ResolveArguments(args []any) ([]any, error) {
	resolved := make([]any, len(args))
	for i, arg := range args {
		v, err := r.resolveArgument(arg)
		if err != nil {
			return nil, err
		}
		resolved[i] = v
	}
	return resolved, nil
}

func (r *DefaultResolver) resolveArgument(arg any) (any, error) {
	switch a := arg.(type) {
	case Reference:
		return r.container.Get(string(a))
	case LiteralValue:
		return a.Value, nil
	case typeArgument:
		id := string(a)
		if r.container.Has(id) {
			return r.container.Get(id)
		}
		if ctor, ok := r.types.Lookup(id); ok {
			return r.callFactory(ctor, nil)
		}
		return nil, fmt.Errorf("%w: %q", ErrServiceNotFound, id)
	case string:
		if r.container.Has(a) {
			return r.container.Get(a)
		}
		if ctor, ok := r.types.Lookup(a); ok {
			return r.callFactory(ctor, nil)
		}
		return a, nil
	case nil:
		return nil, nil
	}
	if fn := reflect.ValueOf(arg); fn.Kind() == reflect.Func {
		return r.callFactory(fn, nil)
	}
	return arg, nil
}

func (r *DefaultResolver) callFactory(fn reflect.Value, args []any) (any, error) {
	ft := fn.Type()
	if fn.IsNil() {
		return nil, fmt.Errorf("%w: nil %s", ErrInvalidFactory, ft)
	}
	if !validFactory(ft) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFactory, ft)
	}
	if len(args) == 0 {
		args = autowired(ft)
	}
	resolved, err := r.ResolveArguments(args)
	if err != nil {
		return nil, err
	}
	out, err := callFunc(fn, resolved)
	if err != nil {
		return nil, err
	}
	return factoryResult(out)
}

// autowired returns one argument per fixed parameter of ft, keyed by the
// parameter's type id. Variadic parameters are left empty.
func autowired(ft reflect.Type) []any {
	n := ft.NumIn()
	if ft.IsVariadic() {
		n--
	}
	args := make([]any, n)
	for i := range n {
		args[i] = typeArgument(TypeID(ft.In(i)))
	}
	return args
}
