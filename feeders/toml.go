package feeders

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// TomlFeeder reads a TOML file.
type TomlFeeder struct {
	Path         string
	verboseDebug bool
	logger       DebugLogger
}

func NewTomlFeeder(filePath string) *TomlFeeder {
	return &TomlFeeder{Path: filePath}
}

// SetVerboseDebug enables or disables verbose debug logging.
func (t *TomlFeeder) SetVerboseDebug(enabled bool, logger DebugLogger) {
	t.verboseDebug = enabled
	t.logger = logger
}

func (t *TomlFeeder) Feed(target any) error {
	md, err := toml.DecodeFile(t.Path, target)
	if err != nil {
		return wrapDecodeError("toml", t.Path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: %s: %s", ErrUnknownKeys, t.Path, strings.Join(keys, ", "))
	}
	if t.verboseDebug && t.logger != nil {
		t.logger.Debug("TomlFeeder: decoded", "filePath", t.Path, "keys", len(md.Keys()))
	}
	return nil
}
