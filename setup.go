package powermodule

import (
	"fmt"

	"github.com/GoCodeAlone/powermodule/config"
	"github.com/GoCodeAlone/powermodule/container"
)

// Phase is the point in a module's registration at which setups run.
type Phase int

const (
	// PhasePre runs before the module's Register.
	PhasePre Phase = iota
	// PhasePost runs once every module of the call has registered.
	PhasePost
)

func (p Phase) String() string {
	switch p {
	case PhasePre:
		return "pre"
	case PhasePost:
		return "post"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// SetupDTO is what a setup sees of one module at one phase.
type SetupDTO struct {
	Phase           Phase
	Module          Module
	ModuleName      string
	Capabilities    Capabilities
	RootContainer   *container.Container
	ModuleContainer *container.Container
	AppConfig       *config.AppConfig
	Logger          Logger
}

// Setup participates in every module's registration. It is called for each
// module at both phases and acts on the phases and capabilities it cares
// about. Name identifies the setup: adding one with a taken name replaces
// the earlier setup.
type Setup interface {
	Name() string
	Setup(dto SetupDTO) error
}

// SetupFunc adapts a function to Setup.
type SetupFunc struct {
	name string
	fn   func(dto SetupDTO) error
}

func NewSetupFunc(name string, fn func(dto SetupDTO) error) SetupFunc {
	return SetupFunc{name: name, fn: fn}
}

func (s SetupFunc) Name() string             { return s.name }
func (s SetupFunc) Setup(dto SetupDTO) error { return s.fn(dto) }

// StandardSetups returns the setups every application runs, in order.
// Has-config is added separately once the configuration loader is available.
func StandardSetups() []Setup {
	return []Setup{
		AppConfigInjector{},
		ExportsSetup{},
		ImportsSetup{},
	}
}
