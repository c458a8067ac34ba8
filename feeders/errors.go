package feeders

import (
	"errors"
	"fmt"
)

// Env feeder errors
var (
	ErrEnvInvalidStructure     = errors.New("env: expected pointer to struct")
	ErrEnvEmptyPrefixAndSuffix = errors.New("env: prefix or suffix cannot be empty")
	ErrEnvFieldCannotBeSet     = errors.New("env: field cannot be set")
	ErrEnvConversion           = errors.New("env: cannot convert value")
)

// DotEnv feeder errors
var (
	ErrDotEnvRead = errors.New("dotenv: cannot read file")
)

// File feeder errors
var (
	ErrFileRead        = errors.New("cannot read config file")
	ErrFileDecode      = errors.New("cannot decode config file")
	ErrUnknownKeys     = errors.New("config file contains unknown keys")
	ErrUnsupportedFile = errors.New("unsupported config file extension")
)

func wrapConversionError(envName string, target fmt.Stringer, err error) error {
	return fmt.Errorf("%w %s to %s: %w", ErrEnvConversion, envName, target, err)
}

func wrapDecodeError(format, path string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrFileDecode, format, path, err)
}
