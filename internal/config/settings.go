package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// UserSettings is the YAML-persisted state the calibration wizard writes.
type UserSettings struct {
	// Signed correction in milliseconds, added to the clock reading when
	// stamping activations. A player who tends to tap late gets a negative
	// value here.
	OffsetMs float64 `yaml:"offset_ms"`
}

// LoadSettings reads the settings file. A missing file is not an error and
// yields the defaults; malformed YAML is.
func LoadSettings(path string) (*UserSettings, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &UserSettings{}, nil
	}
	if nil != err {
		return nil, err
	}
	var s UserSettings
	if err := yaml.Unmarshal(b, &s); nil != err {
		return nil, err
	}
	return &s, nil
}

func SaveSettings(path string, s *UserSettings) error {
	b, err := yaml.Marshal(s)
	if nil != err {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
