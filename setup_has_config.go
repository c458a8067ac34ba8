package powermodule

import (
	"fmt"
	"reflect"

	"github.com/GoCodeAlone/powermodule/config"
	"github.com/GoCodeAlone/powermodule/container"
)

// HasConfigSetup loads the configuration of configurable modules through
// the loader registered in the root container under config.LoaderID. The
// loaded configuration carries the application's ambient settings and is
// resolvable in the module container under its type id.
type HasConfigSetup struct{}

func (HasConfigSetup) Name() string { return "has-config" }

func (HasConfigSetup) Setup(dto SetupDTO) error {
	if dto.Phase != PhasePre || !dto.Capabilities.Configurable {
		return nil
	}
	configurable := dto.Module.(Configurable)

	if !dto.RootContainer.Has(config.LoaderID) {
		return fmt.Errorf("%w: %s needs it for %s", ErrLoaderUnavailable, config.LoaderID, dto.ModuleName)
	}
	loader, err := container.Get[config.ModuleConfigLoader](dto.RootContainer, config.LoaderID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoaderUnavailable, err)
	}

	cfg, err := loader.Load(configurable.DefaultConfig())
	if err != nil {
		return fmt.Errorf("load configuration for %s: %w", dto.ModuleName, err)
	}
	if dto.AppConfig != nil {
		cfg.AmbientSettings().Apply(dto.AppConfig.Ambient)
	}
	configurable.SetConfig(cfg)

	id := container.TypeID(reflect.TypeOf(cfg))
	if !dto.ModuleContainer.Has(id) {
		dto.ModuleContainer.Set(id, cfg, container.Raw)
	}
	return nil
}
