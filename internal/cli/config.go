// Package cli owns command-line parsing and the on-disk configuration
// file: default output format, a default programme, and anything else
// worth not retyping on every invocation.
package cli

import (
	"os"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the on-disk settings document, loaded from the XDG
// config directory (or an explicit -c path).
type ConfigFile struct {
	// DefaultProgramme runs when no programme argument is given on the
	// command line, letting a user bookmark a favorite pipeline.
	DefaultProgramme string `yaml:"default_programme"`
	// JSON makes -j the default instead of an opt-in flag.
	JSON bool `yaml:"json"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *ConfigFile {
	return &ConfigFile{}
}

// DefaultConfigPath resolves the config file location under the XDG
// config home (e.g. ~/.config/t/config.yaml).
func DefaultConfigPath() (string, error) {
	return xdg.ConfigFile("t/config.yaml")
}

// LoadConfigFile loads YAML configuration from path. When explicit is
// false (the caller didn't pass -c) a missing file is not an error and
// DefaultConfig is returned instead; when explicit is true a missing
// file fails loudly, since the user asked for a specific file.
func LoadConfigFile(path string, explicit bool) (*ConfigFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "reading config file %s", path)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrapf(err, "parsing config file %s", path)
	}
	return config, nil
}
