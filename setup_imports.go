package powermodule

import "fmt"

// ImportsSetup links every imported id into the importing module's
// container. It runs after all modules of the call have registered, so
// imports from modules registered in the same call are available.
type ImportsSetup struct{}

func (ImportsSetup) Name() string { return "imports" }

func (ImportsSetup) Setup(dto SetupDTO) error {
	if dto.Phase != PhasePost || !dto.Capabilities.Importer {
		return nil
	}
	for _, item := range dto.Capabilities.Imports {
		for _, id := range item.Items {
			d, err := dto.RootContainer.GetServiceDefinition(id)
			if err != nil {
				return fmt.Errorf("%w: %s (parent module: %s)", ErrMissingImport, id, item.ModuleName)
			}
			if existing, err := dto.ModuleContainer.GetServiceDefinition(id); err == nil && existing == d {
				continue
			}
			if err := dto.ModuleContainer.AddServiceDefinition(id, d); err != nil {
				return fmt.Errorf("import %s into %s: %w", id, dto.ModuleName, err)
			}
		}
	}
	return nil
}
