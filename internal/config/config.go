package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const (
	// RSSI to distance estimation
	DefaultMeasuredPower = -59.0 // RSSI at 1 meter (dBm), used when a frame carries none
	PathLossExp          = 2.5   // Path loss exponent (N)

	// Indicator display
	AspectRatio   = 0.5  // Terminal char aspect correction (chars are ~2:1 tall)
	PulseSpeedRPM = 40   // Edge pulse rotations per minute
	PulseTrailDeg = 90.0 // Edge pulse trail angle in degrees
	TargetFPS     = 30   // Target frames per second

	// Beacon management
	EvictInterval  = 2 * time.Second // How often to run eviction
	SmoothingAlpha = 0.3             // EMA smoothing factor (30% new, 70% old)
	HistorySize    = 120             // RSSI samples kept per beacon

	// App
	AppName    = "BEACON-RADAR"
	AppVersion = "1.0"

	envPrefix = "BEACONRADAR_"
)

// BeaconConfig describes one monitored beacon region and its display name.
type BeaconConfig struct {
	UUID  string  `yaml:"uuid"`
	Name  string  `yaml:"name"`
	Major *uint16 `yaml:"major,omitempty"`
	Minor *uint16 `yaml:"minor,omitempty"`
}

// ProximityConfig holds the distance thresholds for proximity buckets.
type ProximityConfig struct {
	ImmediateMeters float64 `yaml:"immediate_m"`
	NearMeters      float64 `yaml:"near_m"`
}

// ScanConfig holds scanner and ranging settings.
type ScanConfig struct {
	Adapter       string        `yaml:"adapter"`
	BeaconTimeout time.Duration `yaml:"beacon_timeout"` // beacon is gone after this long unseen
	Transition    time.Duration `yaml:"transition"`     // presentation cross-fade duration
	RangeAll      bool          `yaml:"range_all"`      // range unlisted iBeacons too
}

// LoggerConfig holds logging settings.
type LoggerConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"` // stderr, stdout, none, or a file path
}

// Config is the top-level runtime configuration.
type Config struct {
	Beacons   []BeaconConfig  `yaml:"beacons"`
	Proximity ProximityConfig `yaml:"proximity"`
	Scan      ScanConfig      `yaml:"scan"`
	Logger    LoggerConfig    `yaml:"logger"`
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	major, minor := uint16(123), uint16(456)
	return &Config{
		Beacons: []BeaconConfig{
			{UUID: "E2C56DB5-DFFB-48D2-B060-D0F5A71096E0", Name: "Apple AirLocate"},
			{UUID: "5A4BCFCE-174E-4BAC-A814-092E77F6B7E5", Name: "MyBeacon", Major: &major, Minor: &minor},
			{UUID: "74278BDA-B644-4520-8F0C-720EAF059935", Name: "Radius Networks"},
		},
		Proximity: ProximityConfig{
			ImmediateMeters: 0.5,
			NearMeters:      3.0,
		},
		Scan: ScanConfig{
			Adapter:       "hci0",
			BeaconTimeout: 10 * time.Second,
			Transition:    time.Second,
		},
		Logger: LoggerConfig{
			Level:  "info",
			Format: "text",
			Output: "none",
		},
	}
}

// Load reads a YAML config file, applies env var overrides and validates.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	ApplyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnvOverrides maps BEACONRADAR_* env vars to config fields.
func ApplyEnvOverrides(cfg *Config) {
	if v := os.Getenv(envPrefix + "ADAPTER"); v != "" {
		cfg.Scan.Adapter = v
	}
	if v := os.Getenv(envPrefix + "LOGGER_LEVEL"); v != "" {
		cfg.Logger.Level = v
	}
	if v := os.Getenv(envPrefix + "LOGGER_FORMAT"); v != "" {
		cfg.Logger.Format = v
	}
	if v := os.Getenv(envPrefix + "LOGGER_OUTPUT"); v != "" {
		cfg.Logger.Output = v
	}
	if v := os.Getenv(envPrefix + "RANGE_ALL"); v == "true" {
		cfg.Scan.RangeAll = true
	}
	if v := os.Getenv(envPrefix + "BEACON_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Scan.BeaconTimeout = d
		}
	}
}

// Validate checks settings that would make the program misbehave. Beacon
// UUIDs are not checked here: a malformed entry only disables that beacon.
func Validate(cfg *Config) error {
	if cfg.Proximity.ImmediateMeters <= 0 {
		return fmt.Errorf("proximity.immediate_m must be positive, got %v", cfg.Proximity.ImmediateMeters)
	}
	if cfg.Proximity.NearMeters <= cfg.Proximity.ImmediateMeters {
		return fmt.Errorf("proximity.near_m (%v) must exceed immediate_m (%v)",
			cfg.Proximity.NearMeters, cfg.Proximity.ImmediateMeters)
	}
	if cfg.Scan.BeaconTimeout <= 0 {
		return fmt.Errorf("scan.beacon_timeout must be positive, got %s", cfg.Scan.BeaconTimeout)
	}
	if cfg.Scan.Transition < 0 {
		return fmt.Errorf("scan.transition must not be negative, got %s", cfg.Scan.Transition)
	}
	return nil
}

// AddUUIDs appends extra monitored beacons given on the command line.
// Entries already configured are skipped.
func (c *Config) AddUUIDs(ids []string) {
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || c.hasUUID(id) {
			continue
		}
		c.Beacons = append(c.Beacons, BeaconConfig{UUID: id})
	}
}

func (c *Config) hasUUID(id string) bool {
	want, err := uuid.Parse(id)
	for _, b := range c.Beacons {
		if err != nil {
			if strings.EqualFold(b.UUID, id) {
				return true
			}
			continue
		}
		if got, perr := uuid.Parse(b.UUID); perr == nil && got == want {
			return true
		}
	}
	return false
}
