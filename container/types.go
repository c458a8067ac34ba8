package container

import (
	"fmt"
	"reflect"
	"sync"
)

// TypeRegistry maps type ids to constructors so that a definition holding a
// type id string can be instantiated.
type TypeRegistry struct {
	mu    sync.RWMutex
	ctors map[string]reflect.Value
}

// Types is the registry used by containers created without WithTypes.
var Types = NewTypeRegistry()

func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{ctors: make(map[string]reflect.Value)}
}

// Register adds ctor under id. ctor must be a func returning T or (T, error);
// its parameters are autowired by type id unless arguments are declared.
func (r *TypeRegistry) Register(id string, ctor any) error {
	fn := reflect.ValueOf(ctor)
	if fn.Kind() != reflect.Func || fn.IsNil() || !validFactory(fn.Type()) {
		return fmt.Errorf("%w: %q: %T", ErrInvalidTypeEntry, id, ctor)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ctors[id] = fn
	return nil
}

// Lookup returns the constructor registered under id.
func (r *TypeRegistry) Lookup(id string) (reflect.Value, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.ctors[id]
	return fn, ok
}

// RegisterType adds ctor to Types under id.
func RegisterType(id string, ctor any) error {
	return Types.Register(id, ctor)
}

// RegisterConstructor adds ctor to Types under the type id of T.
func RegisterConstructor[T any](ctor any) error {
	return Types.Register(IDOf[T](), ctor)
}
