package powermodule

import (
	"errors"
	"fmt"
	"slices"
)

// ImportItem names services to import from one exporting module.
type ImportItem struct {
	ModuleName string
	Items      []string

	exporter Module
}

// NewImportItem declares an import of items from exporter. exporter must
// export every item; the check happens here, when the import is declared.
// The exporter value is kept so that ordering can follow the exporter's own
// imports when it is reached only through this one.
func NewImportItem(exporter Module, items ...string) (ImportItem, error) {
	if exporter == nil {
		return ImportItem{}, fmt.Errorf("%w: %w", ErrInvalidImport, ErrNilModule)
	}
	name := ModuleName(exporter)
	e, ok := exporter.(Exporter)
	if !ok {
		return ImportItem{}, fmt.Errorf("%w: module %s does not export anything", ErrInvalidImport, name)
	}
	exports := e.Exports()
	for _, item := range items {
		if !slices.Contains(exports, item) {
			return ImportItem{}, fmt.Errorf("%w: %s does not export %s", ErrInvalidImport, name, item)
		}
	}
	return ImportItem{
		ModuleName: name,
		Items:      slices.Clone(items),
		exporter:   exporter,
	}, nil
}

// MustImport is like NewImportItem but panics on error. It is meant for
// Imports implementations: the panic is recovered when the imports are read
// and reported as an ErrInvalidImport error.
func MustImport(exporter Module, items ...string) ImportItem {
	item, err := NewImportItem(exporter, items...)
	if err != nil {
		panic(err)
	}
	return item
}

// Exporter returns the module value the import was declared with.
func (i ImportItem) Exporter() Module { return i.exporter }

// declaredImports reads i's imports, turning a MustImport panic into an
// error. Other panics are not recovered.
func declaredImports(i Importer) (items []ImportItem, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok && errors.Is(e, ErrInvalidImport) {
			items, err = nil, fmt.Errorf("module %s: %w", ModuleName(i), e)
			return
		}
		panic(r)
	}()
	return i.Imports(), nil
}
