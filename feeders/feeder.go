// Package feeders populates configuration structs from files and the
// environment. File feeders decode strictly: a key with no matching field is
// an error, so a config file that does not describe the target type is
// rejected instead of silently ignored.
package feeders

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Feeder fills target, usually a pointer to a struct.
type Feeder interface {
	Feed(target any) error
}

// DebugLogger is the subset of a logger feeders report to.
type DebugLogger interface {
	Debug(msg string, args ...any)
}

// VerboseFeeder is a Feeder that can report what it reads.
type VerboseFeeder interface {
	Feeder
	SetVerboseDebug(enabled bool, logger DebugLogger)
}

var (
	_ VerboseFeeder = (*YamlFeeder)(nil)
	_ VerboseFeeder = (*TomlFeeder)(nil)
	_ VerboseFeeder = (*JSONFeeder)(nil)
	_ VerboseFeeder = (*DotEnvFeeder)(nil)
)

// ForFile picks the file feeder matching path's extension.
func ForFile(path string) (Feeder, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return NewYamlFeeder(path), nil
	case ".toml":
		return NewTomlFeeder(path), nil
	case ".json":
		return NewJSONFeeder(path), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, path)
	}
}
