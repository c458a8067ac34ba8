package feeders

import (
	"encoding/json"
	"fmt"
	"os"
)

// JSONFeeder reads a JSON file.
type JSONFeeder struct {
	Path         string
	verboseDebug bool
	logger       DebugLogger
}

func NewJSONFeeder(filePath string) *JSONFeeder {
	return &JSONFeeder{Path: filePath}
}

// SetVerboseDebug enables or disables verbose debug logging.
func (j *JSONFeeder) SetVerboseDebug(enabled bool, logger DebugLogger) {
	j.verboseDebug = enabled
	j.logger = logger
}

func (j *JSONFeeder) Feed(target any) error {
	f, err := os.Open(j.Path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileRead, err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return wrapDecodeError("json", j.Path, err)
	}
	if j.verboseDebug && j.logger != nil {
		j.logger.Debug("JSONFeeder: decoded", "filePath", j.Path)
	}
	return nil
}
