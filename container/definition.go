package container

import (
	"fmt"
	"reflect"
)

// MethodCall is a post-construct call recorded on a Definition.
type MethodCall struct {
	Name string
	Args []any
}

// Definition describes how a single service is produced: the raw value, the
// resolver that turns it into an instance, the constructor arguments and the
// methods called on the instance afterwards.
type Definition struct {
	id        string
	value     any
	resolver  InstanceResolver
	arguments []any
	methods   []MethodCall
}

// NewDefinition creates a definition. Most callers use Container.Set instead.
func NewDefinition(id string, value any, resolver InstanceResolver) *Definition {
	return &Definition{id: id, value: value, resolver: resolver}
}

func (d *Definition) ID() string                 { return d.id }
func (d *Definition) Value() any                 { return d.value }
func (d *Definition) Resolver() InstanceResolver { return d.resolver }

// Arguments returns the declared constructor arguments.
func (d *Definition) Arguments() []any {
	return append([]any(nil), d.arguments...)
}

// Methods returns the post-construct calls in the order they were added.
func (d *Definition) Methods() []MethodCall {
	return append([]MethodCall(nil), d.methods...)
}

// AddArguments appends constructor arguments.
func (d *Definition) AddArguments(args ...any) *Definition {
	d.arguments = append(d.arguments, args...)
	return d
}

// AddMethod records a method to call on the instance once it is built.
func (d *Definition) AddMethod(name string, args ...any) *Definition {
	d.methods = append(d.methods, MethodCall{Name: name, Args: args})
	return d
}

// Resolve builds the instance and applies the recorded method calls.
func (d *Definition) Resolve() (any, error) {
	instance, err := d.resolver.Resolve(d.id, d.value, d.arguments)
	if err != nil {
		return nil, err
	}
	if len(d.methods) == 0 {
		return instance, nil
	}

	target := reflect.ValueOf(instance)
	if !isObject(target) {
		return nil, fmt.Errorf("%w: %q resolved to %T", ErrNotAnObject, d.id, instance)
	}

	for _, call := range d.methods {
		method := target.MethodByName(call.Name)
		if !method.IsValid() {
			return nil, fmt.Errorf("%w: %T.%s", ErrMethodNotFound, instance, call.Name)
		}
		args := call.Args
		if ar, ok := d.resolver.(ArgumentResolver); ok {
			if args, err = ar.ResolveArguments(args); err != nil {
				return nil, fmt.Errorf("arguments for %T.%s: %w", instance, call.Name, err)
			}
		}
		out, err := callFunc(method, args)
		if err != nil {
			return nil, fmt.Errorf("call %T.%s: %w", instance, call.Name, err)
		}
		if err := trailingError(out); err != nil {
			return nil, fmt.Errorf("call %T.%s: %w", instance, call.Name, err)
		}
	}
	return instance, nil
}

func isObject(v reflect.Value) bool {
	if !v.IsValid() {
		return false
	}
	switch v.Kind() {
	case reflect.Pointer:
		return !v.IsNil()
	case reflect.Struct:
		return true
	default:
		return false
	}
}
