package config

import "errors"

// Configuration errors
var (
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrConfigNotFound = errors.New("configuration file not found")
	ErrValidation     = errors.New("configuration validation failed")
)

// Setting errors
var (
	ErrUnknownSetting = errors.New("unknown setting")
	ErrSettingNotSet  = errors.New("setting is not set")
)
