package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/dealdeck/internal/deck"
)

// Export formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config represents the application configuration
type Config struct {
	// Output is the default path for 'dealdeck export'
	Output string `toml:"output"`
	// Format is the default export format, json or yaml
	Format string `toml:"format"`
	// Frequency overrides the number of copies of action cards, keyed by title
	Frequency map[string]int `toml:"frequency"`
}

// DefaultConfig returns the configuration used when no config file exists
func DefaultConfig() *Config {
	return &Config{
		Output:    deck.DefaultOutput,
		Format:    FormatJSON,
		Frequency: map[string]int{},
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "dealdeck", "config.toml")
}

// LoadConfig loads the config file, falling back to defaults when it does not exist
func LoadConfig() (*Config, error) {
	return LoadConfigFile(GetConfigFilePath())
}

// LoadConfigFile loads the config at path. Keys missing from the file keep their defaults.
func LoadConfigFile(path string) (*Config, error) {
	config := DefaultConfig()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return config, nil
	}

	meta, err := toml.DecodeFile(path, config)
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, nil
}

// Validate checks values that TOML decoding cannot
func (c *Config) Validate() error {
	if c.Output == "" {
		return errors.New("output must not be empty")
	}
	switch c.Format {
	case FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unsupported format %q (supported: %s, %s)", c.Format, FormatJSON, FormatYAML)
	}
	for title, n := range c.Frequency {
		if n < 0 || n > deck.MaxCopies {
			return fmt.Errorf("frequency of %q must be between 0 and %d", title, deck.MaxCopies)
		}
	}
	return nil
}

// Frequencies returns the playing deck composition with the configured overrides applied
func (c *Config) Frequencies() (deck.Frequencies, error) {
	return deck.DefaultFrequencies().WithActionOverrides(deck.Generate(), c.Frequency)
}

// SaveConfig writes the config to the config file, creating its directory
func SaveConfig(config *Config) error {
	return SaveConfigFile(GetConfigFilePath(), config)
}

// SaveConfigFile writes the config to path
func SaveConfigFile(path string, config *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}
