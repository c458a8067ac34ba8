package container

import "errors"

// Container errors
var (
	ErrServiceNotFound     = errors.New("service definition not found")
	ErrDuplicateDefinition = errors.New("service definition duplicate")
	ErrCircularReference   = errors.New("circular service reference")
	ErrServiceWrongType    = errors.New("service has unexpected type")
)

// Resolution errors
var (
	ErrNotAContainer    = errors.New("definition value is not a container")
	ErrNotAnObject      = errors.New("cannot call method on a non-object value")
	ErrMethodNotFound   = errors.New("method not found")
	ErrArgumentCount    = errors.New("wrong number of arguments")
	ErrArgumentType     = errors.New("argument is not assignable to parameter")
	ErrInvalidFactory   = errors.New("factory must return a value or a value and an error")
	ErrInvalidTypeEntry = errors.New("type constructor is not a valid factory")
)
