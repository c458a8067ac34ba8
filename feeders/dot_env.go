package feeders

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// DotEnvFeeder reads a .env file into struct fields tagged `env`. Values
// already present in the process environment win over the file, and the
// file never modifies the process environment.
type DotEnvFeeder struct {
	Path         string
	Prefix       string
	verboseDebug bool
	logger       DebugLogger
}

func NewDotEnvFeeder(filePath, prefix string) *DotEnvFeeder {
	return &DotEnvFeeder{Path: filePath, Prefix: prefix}
}

// SetVerboseDebug enables or disables verbose debug logging.
func (f *DotEnvFeeder) SetVerboseDebug(enabled bool, logger DebugLogger) {
	f.verboseDebug = enabled
	f.logger = logger
}

func (f *DotEnvFeeder) Feed(target any) error {
	rv, ok := structTarget(target)
	if !ok {
		return fmt.Errorf("%w, got %T", ErrEnvInvalidStructure, target)
	}

	vars, err := godotenv.Read(f.Path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDotEnvRead, f.Path, err)
	}
	if f.verboseDebug && f.logger != nil {
		f.logger.Debug("DotEnvFeeder: parsed file", "filePath", f.Path, "vars", len(vars))
	}

	return fillStruct(rv, f.Prefix, "", func(name string) (string, bool) {
		if v, ok := os.LookupEnv(name); ok {
			return v, true
		}
		v, ok := vars[name]
		return v, ok
	})
}
