package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	require.Len(t, cfg.Beacons, 3)
	assert.Equal(t, "Apple AirLocate", cfg.Beacons[0].Name)
	assert.Equal(t, time.Second, cfg.Scan.Transition)
	assert.Equal(t, "none", cfg.Logger.Output)
	require.NotNil(t, cfg.Beacons[1].Major)
	assert.Equal(t, uint16(123), *cfg.Beacons[1].Major)
	assert.NoError(t, Validate(cfg))
}

func TestLoadNonExistentReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Len(t, cfg.Beacons, 3)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
beacons:
  - uuid: "11111111-2222-3333-4444-555555555555"
    name: "Front Door"
    major: 7
proximity:
  immediate_m: 0.8
  near_m: 5
scan:
  beacon_timeout: 4s
logger:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Beacons, 1)
	assert.Equal(t, "Front Door", cfg.Beacons[0].Name)
	require.NotNil(t, cfg.Beacons[0].Major)
	assert.Equal(t, uint16(7), *cfg.Beacons[0].Major)
	assert.Nil(t, cfg.Beacons[0].Minor)
	assert.Equal(t, 0.8, cfg.Proximity.ImmediateMeters)
	assert.Equal(t, 4*time.Second, cfg.Scan.BeaconTimeout)
	assert.Equal(t, "debug", cfg.Logger.Level)
	// untouched keys keep defaults
	assert.Equal(t, "hci0", cfg.Scan.Adapter)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("beacons: [unterminated"), 0600))

	_, err := Load(path)
	assert.ErrorContains(t, err, "parse config")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("BEACONRADAR_ADAPTER", "hci1")
	t.Setenv("BEACONRADAR_LOGGER_LEVEL", "warn")
	t.Setenv("BEACONRADAR_BEACON_TIMEOUT", "3s")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "hci1", cfg.Scan.Adapter)
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, 3*time.Second, cfg.Scan.BeaconTimeout)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero immediate", func(c *Config) { c.Proximity.ImmediateMeters = 0 }},
		{"near below immediate", func(c *Config) { c.Proximity.NearMeters = 0.2 }},
		{"zero timeout", func(c *Config) { c.Scan.BeaconTimeout = 0 }},
		{"negative transition", func(c *Config) { c.Scan.Transition = -time.Second }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)
			assert.Error(t, Validate(cfg))
		})
	}
}

func TestAddUUIDsSkipsDuplicates(t *testing.T) {
	cfg := Defaults()
	cfg.AddUUIDs([]string{
		"e2c56db5-dffb-48d2-b060-d0f5a71096e0", // already configured, different case
		"AAAAAAAA-BBBB-CCCC-DDDD-EEEEEEEEEEEE",
		"",
	})
	require.Len(t, cfg.Beacons, 4)
	assert.Equal(t, "AAAAAAAA-BBBB-CCCC-DDDD-EEEEEEEEEEEE", cfg.Beacons[3].UUID)
	assert.Empty(t, cfg.Beacons[3].Name)
}
