package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
)

// MappingMode selects the device's pad layout
type MappingMode string

const (
	MappingXY   MappingMode = "xy"   // rows of 16 notes, the layout the controller decodes
	MappingDrum MappingMode = "drum" // drum rack layout; pad events are still decoded as X-Y
)

// DeviceConfig describes which device to open and how to initialise it
type DeviceConfig struct {
	ID           string      `toml:"id"`             // Unique identifier, used in logs and metrics
	Name         string      `toml:"name"`           // Port name substring, case-insensitive
	MappingMode  MappingMode `toml:"mapping_mode"`   // "xy" or "drum"
	Flashing     bool        `toml:"flashing"`       // Start the flash timer on open
	ClearOnStart bool        `toml:"clear_on_start"` // Turn all LEDs off on open
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // text or json
}

// MetricsConfig holds the Prometheus endpoint settings
type MetricsConfig struct {
	Enabled bool   `toml:"enabled"`
	Address string `toml:"address"`
}

// Config holds application configuration
type Config struct {
	Device  DeviceConfig  `toml:"device"`
	Logging LoggingConfig `toml:"logging"`
	Metrics MetricsConfig `toml:"metrics"`

	// unsaved is set when Load generated values that are not on disk yet
	unsaved bool
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Device: DeviceConfig{
			ID:           uuid.New().String(),
			Name:         "launchpad",
			MappingMode:  MappingXY,
			ClearOnStart: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Address: ":9110",
		},
	}
}

// configDir returns the platform-appropriate config directory
func configDir() (string, error) {
	configHome, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configHome, "gopher-launchpad"), nil
}

// ConfigPath returns the full path to the default config file
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config at path, returning defaults if it does not exist.
// An empty path means ConfigPath.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		if path, err = ConfigPath(); err != nil {
			return nil, err
		}
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg.unsaved = true
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	// Files written by hand may leave these out
	if cfg.Device.ID == "" {
		cfg.Device.ID = uuid.New().String()
		cfg.unsaved = true
	}
	if cfg.Device.MappingMode == "" {
		cfg.Device.MappingMode = MappingXY
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Unsaved reports whether the config holds generated values, such as a new
// device ID, that must be saved to stay stable across runs
func (c *Config) Unsaved() bool {
	return c.unsaved
}

// Validate checks enumerated fields
func (c *Config) Validate() error {
	switch c.Device.MappingMode {
	case MappingXY, MappingDrum:
	default:
		return fmt.Errorf("unknown mapping mode %q", c.Device.MappingMode)
	}

	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}

	if c.Metrics.Enabled && c.Metrics.Address == "" {
		return errors.New("metrics enabled without an address")
	}
	return nil
}

// Save writes the config to path, creating its directory.
// An empty path means ConfigPath.
func (c *Config) Save(path string) error {
	if path == "" {
		var err error
		if path, err = ConfigPath(); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	c.unsaved = false
	return nil
}
