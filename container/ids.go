package container

import (
	"reflect"

	typetostring "github.com/samber/go-type-to-string"
)

// IDOf returns the identifier used for services keyed by their type, such as
// "*github.com/acme/app/db.Pool". Factory parameters are autowired with the
// same identifiers, so a service registered under IDOf[T] is what a factory
// taking a T receives.
func IDOf[T any]() string {
	return typetostring.GetType[T]()
}

// TypeID is the reflect counterpart of IDOf.
func TypeID(t reflect.Type) string {
	return typetostring.GetReflectType(t)
}
