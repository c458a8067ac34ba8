package powermodule

import (
	"errors"
	"fmt"
	"strings"
)

// Application errors
var (
	// Registration errors
	ErrModuleAlreadyRegistered = errors.New("cannot register module more than once")
	ErrModuleRegistration      = errors.New("module registration failed")
	ErrModuleNameMismatch      = errors.New("module resolver returned a different module")
	ErrModuleNotFound          = errors.New("module not found")
	ErrNilModule               = errors.New("module is nil")

	// Dependency resolution errors
	ErrCircularDependency = errors.New("circular dependency detected")

	// Import/export errors
	ErrInvalidImport      = errors.New("invalid import")
	ErrMissingImport      = errors.New("could not find item to import")
	ErrExportCollision    = errors.New("export collision detected")
	ErrLoaderUnavailable  = errors.New("configuration loader is not available")
	ErrSetupFailed        = errors.New("module setup failed")
	ErrInvalidBuildOption = errors.New("invalid application option")
)

// CircularDependencyError lists the modules that could not be ordered
// because they take part in, or depend on, an import cycle.
type CircularDependencyError struct {
	Modules []string
}

func (e *CircularDependencyError) Error() string {
	return fmt.Sprintf("%s: %s", ErrCircularDependency, strings.Join(e.Modules, ", "))
}

func (e *CircularDependencyError) Unwrap() error { return ErrCircularDependency }

// ExportCollisionError reports a component exported by two modules.
type ExportCollisionError struct {
	ComponentID       string
	ExistingModule    string
	ConflictingModule string
}

func (e *ExportCollisionError) Error() string {
	return fmt.Sprintf("%s: component %q is already exported by module %q; module %q cannot export it again",
		ErrExportCollision, e.ComponentID, e.ExistingModule, e.ConflictingModule)
}

func (e *ExportCollisionError) Unwrap() error { return ErrExportCollision }
