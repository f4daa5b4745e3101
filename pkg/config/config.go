// Package config loads the YAML configuration file the purelink commands
// use: cloud account credentials, optional static device entries for
// running without the cloud, and logging settings.
package config

import (
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/purelink-protocol/purelink-go/pkg/device"
)

// DefaultPort is the appliance broker port assumed when a static device
// entry does not name one.
const DefaultPort = 1883

// Config is the root of the configuration file.
type Config struct {
	// Account holds the cloud account credentials. Optional; static
	// device entries work without a cloud account.
	Account AccountConfig `yaml:"account"`

	// Devices are static device entries with pre-decrypted credentials.
	Devices []DeviceConfig `yaml:"devices"`

	// Log configures logging.
	Log LogConfig `yaml:"log"`
}

// AccountConfig is the cloud account section.
type AccountConfig struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`

	// Country is the account's two-letter country code. Defaults to US.
	Country string `yaml:"country"`
}

// Configured reports whether the account section is filled in.
func (a AccountConfig) Configured() bool {
	return a.Email != ""
}

// DeviceConfig is one static device entry.
type DeviceConfig struct {
	Serial      string `yaml:"serial"`
	ProductType string `yaml:"product_type"`
	Name        string `yaml:"name"`

	// Credential is the already-decrypted local broker password, for
	// users who extracted it once and skip the cloud account.
	Credential string `yaml:"credential"`

	// Host pins the appliance address and skips mDNS discovery.
	Host string `yaml:"host"`

	// Port of the appliance broker. Defaults to DefaultPort.
	Port int `yaml:"port"`
}

// Info converts the entry into the identity a session is constructed from.
func (d DeviceConfig) Info() device.Info {
	return device.Info{
		Serial:      d.Serial,
		Name:        d.Name,
		ProductType: device.ProductType(d.ProductType),
		Credential:  d.Credential,
	}
}

// Endpoint returns the pinned host:port address, or the empty string when
// no host is set and the device should be discovered.
func (d DeviceConfig) Endpoint() string {
	if d.Host == "" {
		return ""
	}
	return net.JoinHostPort(d.Host, strconv.Itoa(d.Port))
}

// LogConfig is the logging section.
type LogConfig struct {
	// File receives protocol events as an append-only CBOR stream.
	// Empty disables protocol logging.
	File string `yaml:"file"`

	// Level is the operational log level: debug, info, warn or error.
	// Defaults to info.
	Level string `yaml:"level"`
}

// SlogLevel parses the configured level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	return ParseLevel(l.Level)
}

// ParseLevel maps a level name to its slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", level)
	}
}

// Parse parses a configuration from YAML bytes, applies defaults and
// validates it.
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if config.Account.Country == "" {
		config.Account.Country = "US"
	}
	if config.Log.Level == "" {
		config.Log.Level = "info"
	}
	for i := range config.Devices {
		if config.Devices[i].Port == 0 {
			config.Devices[i].Port = DefaultPort
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Load reads and parses a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	config, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

func (c *Config) validate() error {
	for i, entry := range c.Devices {
		if entry.Serial == "" {
			return fmt.Errorf("device entry %d: serial is required", i)
		}
		if entry.ProductType == "" {
			return fmt.Errorf("device entry %d (%s): product_type is required", i, entry.Serial)
		}
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return fmt.Errorf("log section: %w", err)
	}
	return nil
}

// Device returns the static entry for a serial, if present.
func (c *Config) Device(serial string) (DeviceConfig, bool) {
	for _, entry := range c.Devices {
		if entry.Serial == serial {
			return entry, true
		}
	}
	return DeviceConfig{}, false
}
