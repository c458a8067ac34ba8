package powermodule

import "fmt"

// ModuleDependencySorter orders module names so that every module comes
// after the modules it imports from.
type ModuleDependencySorter interface {
	Sort(names []string) ([]string, error)
}

// IterativeSorter orders modules with Kahn's algorithm. Modules reached only
// through imports take part in the ordering but are left out of the result.
// Among modules whose dependencies are satisfied, the one discovered first
// comes first, so the order is deterministic for a given input.
type IterativeSorter struct {
	resolver ModuleResolver
}

func NewIterativeSorter(resolver ModuleResolver) *IterativeSorter {
	return &IterativeSorter{resolver: resolver}
}

func (s *IterativeSorter) Sort(names []string) ([]string, error) {
	requested := make(map[string]bool, len(names))
	all := make([]string, 0, len(names))
	for _, name := range names {
		if !requested[name] {
			requested[name] = true
			all = append(all, name)
		}
	}

	known := make(map[string]bool, len(all))
	for _, name := range all {
		known[name] = true
	}
	discovered := make(map[string]Module)
	dependencies := make(map[string]map[string]bool)
	dependents := make(map[string][]string)

	// all grows while it is walked: modules reached through an import are
	// appended and their own imports followed.
	for i := 0; i < len(all); i++ {
		name := all[i]
		dependencies[name] = make(map[string]bool)

		m, ok := discovered[name]
		if !ok {
			var err error
			if m, err = s.resolver.Create(name); err != nil {
				return nil, fmt.Errorf("sort modules: %w", err)
			}
		}
		importer, ok := m.(Importer)
		if !ok {
			continue
		}
		imports, err := declaredImports(importer)
		if err != nil {
			return nil, fmt.Errorf("sort modules: %w", err)
		}
		for _, item := range imports {
			dep := item.ModuleName
			if !known[dep] {
				known[dep] = true
				all = append(all, dep)
				discovered[dep] = item.Exporter()
			}
			if !dependencies[name][dep] {
				dependencies[name][dep] = true
				dependents[dep] = append(dependents[dep], name)
			}
		}
	}

	queue := make([]string, 0, len(all))
	for _, name := range all {
		if len(dependencies[name]) == 0 {
			queue = append(queue, name)
		}
	}

	sorted := make([]string, 0, len(all))
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		sorted = append(sorted, name)
		for _, dependent := range dependents[name] {
			delete(dependencies[dependent], name)
			if len(dependencies[dependent]) == 0 {
				queue = append(queue, dependent)
			}
		}
	}

	if len(sorted) != len(all) {
		var blocked []string
		for _, name := range all {
			if len(dependencies[name]) > 0 {
				blocked = append(blocked, name)
			}
		}
		return nil, &CircularDependencyError{Modules: blocked}
	}

	result := make([]string, 0, len(requested))
	for _, name := range sorted {
		if requested[name] {
			result = append(result, name)
		}
	}
	return result, nil
}
