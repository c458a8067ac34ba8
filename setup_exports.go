package powermodule

import "github.com/GoCodeAlone/powermodule/container"

// ExportsSetup declares each exported id in the root container, resolved
// through the exporting module's container.
type ExportsSetup struct{}

func (ExportsSetup) Name() string { return "exports" }

func (ExportsSetup) Setup(dto SetupDTO) error {
	if dto.Phase != PhasePre || !dto.Capabilities.Exporter {
		return nil
	}
	for _, id := range dto.Capabilities.Exports {
		if dto.RootContainer.Has(id) {
			owner := exportOwner(dto.RootContainer, id)
			if owner != dto.ModuleName {
				return &ExportCollisionError{
					ComponentID:       id,
					ExistingModule:    owner,
					ConflictingModule: dto.ModuleName,
				}
			}
		}
		dto.RootContainer.Set(id, dto.ModuleContainer, container.ViaContainer)
	}
	return nil
}

// exportOwner names the module whose container backs id in root. Services
// declared on root directly are owned by the root container itself.
func exportOwner(root *container.Container, id string) string {
	d, err := root.GetServiceDefinition(id)
	if err != nil {
		return ""
	}
	if _, ok := d.Resolver().(container.ViaContainerResolver); ok {
		if owner, ok := d.Value().(*container.Container); ok {
			return owner.Name()
		}
	}
	if root.Name() != "" {
		return root.Name()
	}
	return "root"
}
