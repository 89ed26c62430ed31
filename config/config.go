// Package config loads the YAML file describing the bus, the device
// settings and the MQTT stream.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = fmt.Errorf("invalid configuration")

const (
	PlatformPeriph = "periph"
	PlatformGobot  = "gobot"
)

type Config struct {
	Bus    Bus    `yaml:"bus"`
	Device Device `yaml:"device"`
	MQTT   MQTT   `yaml:"mqtt"`
}

type Bus struct {
	// Platform selects the SPI stack: periph or gobot.
	Platform string `yaml:"platform"`
	// Device is the periph port name, e.g. /dev/spidev0.0. Empty picks the first port.
	Device string `yaml:"device"`
	// ChipSelect is a GPIO name driven as CS. Empty leaves CS to the SPI controller.
	ChipSelect string `yaml:"chip_select"`
	SpeedHz    int64  `yaml:"speed_hz"`
	BusNumber  int    `yaml:"bus_number"`
	ChipNumber int    `yaml:"chip_number"`
	// LegacyCtrlReg5 writes CTRL_REG5 in the layout of early firmware tools.
	LegacyCtrlReg5 bool `yaml:"legacy_ctrl_reg5"`
}

type MQTT struct {
	Broker   string        `yaml:"broker"`
	ClientID string        `yaml:"client_id"`
	Topic    string        `yaml:"topic"`
	Interval time.Duration `yaml:"interval"`
	QoS      byte          `yaml:"qos"`
}

// Default returns a configuration for a LIS3DH on the first periph SPI port,
// sampling at 100Hz in high-resolution ±2g mode.
func Default() Config {
	return Config{
		Bus: Bus{
			Platform: PlatformPeriph,
			SpeedHz:  1_000_000,
		},
		Device: Device{
			DataRate:        "100Hz",
			FullScale:       "2g",
			Axes:            Axes{X: true, Y: true, Z: true},
			HighResolution:  true,
			BlockDataUpdate: true,
		},
		MQTT: MQTT{
			Broker:   "tcp://localhost:1883",
			ClientID: "lis3dh",
			Topic:    "sensors/lis3dh",
			Interval: 100 * time.Millisecond,
		},
	}
}

// Load reads and validates the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("could not read config file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("could not parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data on top of Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("could not decode yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch strings.ToLower(c.Bus.Platform) {
	case PlatformPeriph, PlatformGobot:
	default:
		return fmt.Errorf("%w: unknown bus platform %q", ErrInvalid, c.Bus.Platform)
	}
	if c.Bus.SpeedHz < 0 || c.Bus.SpeedHz > 10_000_000 {
		return fmt.Errorf("%w: spi speed %d Hz out of range", ErrInvalid, c.Bus.SpeedHz)
	}
	if c.MQTT.QoS > 2 {
		return fmt.Errorf("%w: mqtt qos %d", ErrInvalid, c.MQTT.QoS)
	}
	if c.MQTT.Interval < 0 {
		return fmt.Errorf("%w: negative mqtt interval", ErrInvalid)
	}
	if _, err := c.Device.Settings(); err != nil {
		return err
	}
	return nil
}

// Encode renders the configuration as YAML.
func (c Config) Encode() ([]byte, error) {
	return yaml.Marshal(c)
}
