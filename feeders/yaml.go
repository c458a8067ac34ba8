package feeders

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// YamlFeeder reads a YAML file.
type YamlFeeder struct {
	Path         string
	verboseDebug bool
	logger       DebugLogger
}

func NewYamlFeeder(filePath string) *YamlFeeder {
	return &YamlFeeder{Path: filePath}
}

// SetVerboseDebug enables or disables verbose debug logging.
func (y *YamlFeeder) SetVerboseDebug(enabled bool, logger DebugLogger) {
	y.verboseDebug = enabled
	y.logger = logger
}

func (y *YamlFeeder) Feed(target any) error {
	data, err := os.ReadFile(y.Path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileRead, err)
	}
	if y.verboseDebug && y.logger != nil {
		y.logger.Debug("YamlFeeder: decoding", "filePath", y.Path, "bytes", len(data))
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return wrapDecodeError("yaml", y.Path, err)
	}
	return nil
}
