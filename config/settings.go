package config

import "fmt"

// Setting names an ambient setting.
type Setting int

const (
	AppRoot Setting = iota
	CachePath
)

func (s Setting) String() string {
	switch s {
	case AppRoot:
		return "app_root"
	case CachePath:
		return "cache_path"
	default:
		return fmt.Sprintf("Setting(%d)", int(s))
	}
}

// Ambient holds the settings shared by every configuration. They are set by
// the application, never read from module config files.
type Ambient struct {
	AppRoot   string `yaml:"-" toml:"-" json:"-" env:"APP_ROOT" validate:"required"`
	CachePath string `yaml:"-" toml:"-" json:"-" env:"CACHE_PATH" validate:"required"`
}

// AmbientSettings returns a; embedding Ambient promotes it to the outer type.
func (a *Ambient) AmbientSettings() *Ambient { return a }

func (a *Ambient) Get(s Setting) (string, error) {
	field, err := a.field(s)
	if err != nil {
		return "", err
	}
	if *field == "" {
		return "", fmt.Errorf("%w: %s", ErrSettingNotSet, s)
	}
	return *field, nil
}

func (a *Ambient) Set(s Setting, value string) error {
	field, err := a.field(s)
	if err != nil {
		return err
	}
	*field = value
	return nil
}

func (a *Ambient) Has(s Setting) bool {
	field, err := a.field(s)
	return err == nil && *field != ""
}

// Apply copies every setting from other.
func (a *Ambient) Apply(other Ambient) {
	a.AppRoot = other.AppRoot
	a.CachePath = other.CachePath
}

func (a *Ambient) field(s Setting) (*string, error) {
	switch s {
	case AppRoot:
		return &a.AppRoot, nil
	case CachePath:
		return &a.CachePath, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownSetting, s)
	}
}
