package powermodule

import (
	"github.com/GoCodeAlone/powermodule/config"
	"github.com/GoCodeAlone/powermodule/container"
)

// AppConfigInjector makes the application configuration resolvable in every
// module container under config.AppConfigID, and the application logger
// under LoggerID.
type AppConfigInjector struct{}

func (AppConfigInjector) Name() string { return "app-config-injector" }

func (AppConfigInjector) Setup(dto SetupDTO) error {
	if dto.Phase != PhasePre {
		return nil
	}
	if !dto.ModuleContainer.Has(config.AppConfigID) {
		dto.ModuleContainer.Set(config.AppConfigID, dto.AppConfig, container.Raw)
	}
	if dto.Logger != nil && !dto.ModuleContainer.Has(LoggerID) {
		dto.ModuleContainer.Set(LoggerID, dto.Logger, container.Raw)
	}
	return nil
}
