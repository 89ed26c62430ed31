package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mklimuk/lis3dh/accel"
	"github.com/mklimuk/lis3dh/register"
	"github.com/mklimuk/lis3dh/spibus"
)

const sample = `
bus:
  platform: gobot
  bus_number: 1
  chip_number: 0
device:
  data_rate: 400Hz
  full_scale: 8g
  axes: {x: true, y: false, z: true}
  high_resolution: false
  low_power: true
  temperature: true
  adc: true
  int1:
    enable: [xh, YH, zh]
    combination: and
    threshold: 127
    duration: 3
    latch: true
  int1_routing:
    ia1: true
mqtt:
  broker: tcp://broker:1883
  topic: lab/accel
  interval: 250ms
  qos: 1
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, PlatformGobot, cfg.Bus.Platform)
	assert.Equal(t, 1, cfg.Bus.BusNumber)
	assert.Equal(t, int64(1_000_000), cfg.Bus.SpeedHz, "default kept")
	assert.Equal(t, "tcp://broker:1883", cfg.MQTT.Broker)
	assert.Equal(t, "lis3dh", cfg.MQTT.ClientID, "default kept")
	assert.Equal(t, 250*time.Millisecond, cfg.MQTT.Interval)
	assert.Equal(t, byte(1), cfg.MQTT.QoS)

	s, err := cfg.Device.Settings()
	require.NoError(t, err)
	assert.Equal(t, register.CtrlReg1{
		XEnable:  register.On,
		ZEnable:  register.On,
		LowPower: register.On,
		DataRate: register.Rate400Hz,
	}, s.CtrlReg1)
	assert.Equal(t, register.FullScale8G, s.CtrlReg4.FullScale)
	assert.Equal(t, register.UpdateAfterRead, s.CtrlReg4.BlockDataUpdate)
	assert.Equal(t, register.TempCfgReg{Temperature: register.On, ADC: register.On}, s.TempCfg)
	assert.Equal(t, register.IntCfg{
		XHigh:       register.On,
		YHigh:       register.On,
		ZHigh:       register.On,
		Combination: register.CombineAnd,
	}, s.Int1Cfg)
	assert.Equal(t, byte(127), s.Int1Threshold.Value())
	assert.Equal(t, byte(3), s.Int1Duration.Value())
	assert.Equal(t, register.On, s.CtrlReg5.LatchInt1)
	assert.Equal(t, register.On, s.CtrlReg3.IA1)
	assert.Equal(t, byte(0x10), s.CtrlReg0.Encode())
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	s, err := cfg.Device.Settings()
	require.NoError(t, err)
	m, err := register.ModeFrom(s.CtrlReg1.LowPower, s.CtrlReg4.HighResolution)
	require.NoError(t, err)
	assert.Equal(t, register.HighResolution, m)
	assert.Equal(t, register.Rate100Hz, s.CtrlReg1.DataRate)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"platform", "bus: {platform: arduino}"},
		{"speed", "bus: {speed_hz: 20000000}"},
		{"qos", "mqtt: {qos: 3}"},
		{"data rate", "device: {data_rate: 3Hz}"},
		{"full scale", "device: {full_scale: 32g}"},
		{"illegal mode", "device: {low_power: true, high_resolution: true}"},
		{"temperature without adc", "device: {temperature: true, adc: false}"},
		{"threshold", "device: {int1: {threshold: 128}}"},
		{"duration", "device: {int2: {duration: 200}}"},
		{"event", "device: {int2: {enable: [xx]}}"},
		{"combination", "device: {int1: {combination: xor}}"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse([]byte(test.yaml))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestParse_IllegalModeWrapsRegisterError(t *testing.T) {
	_, err := Parse([]byte("device: {low_power: true, high_resolution: true}"))
	assert.ErrorIs(t, err, register.ErrIllegalMode)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("bus: ["))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lis3dh.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "lab/accel", cfg.MQTT.Topic)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestEncode_RoundTrip(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)
	data, err := cfg.Encode()
	require.NoError(t, err)
	again, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

type nopBus struct{}

func (nopBus) Transfer(ctx context.Context, buffer []byte) error { return nil }
func (nopBus) Write(ctx context.Context, buffer []byte) error    { return nil }

func TestDevice_Apply(t *testing.T) {
	dev := accel.NewLIS3DH(nopBus{}, spibus.NativeSelect{})
	before := dev.Settings()

	bad := Default().Device
	bad.Int1.Threshold = 0x80
	assert.ErrorIs(t, bad.Apply(dev), ErrInvalid)
	assert.Equal(t, before, dev.Settings(), "settings untouched on error")

	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)
	require.NoError(t, cfg.Device.Apply(dev))
	assert.Equal(t, register.Rate400Hz, dev.CtrlReg1().DataRate)
	assert.Equal(t, register.CombineAnd, dev.Int1Cfg().Combination)
}
