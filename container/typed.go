package container

import "fmt"

// Get fetches id from g and asserts it to T.
func Get[T any](g Getter, id string) (T, error) {
	var zero T
	v, err := g.Get(id)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q is %T, want %s", ErrServiceWrongType, id, v, IDOf[T]())
	}
	return t, nil
}

// Resolve fetches the service registered under the type id of T.
func Resolve[T any](g Getter) (T, error) {
	return Get[T](g, IDOf[T]())
}

// MustGet is like Get but panics on error.
func MustGet[T any](g Getter, id string) T {
	t, err := Get[T](g, id)
	if err != nil {
		panic(err)
	}
	return t
}
