package accel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mklimuk/lis3dh/register"
)

func TestLIS3DH_Acceleration(t *testing.T) {
	ctx := context.Background()
	f := newRegisterFile()
	// normal mode, ±2g
	f.regs[register.CtrlReg1Addr] = 0b0101_0111
	f.regs[register.CtrlReg4Addr] = 0x00
	f.regs[register.OutXL] = 0x00
	f.regs[register.OutXH] = 0x10
	f.regs[register.OutYL] = 0xC0
	f.regs[register.OutYH] = 0xFF
	f.regs[register.OutZL] = 0x00
	f.regs[register.OutZH] = 0x40
	d := NewLIS3DH(f, f)

	m, err := d.Mode(ctx)
	require.NoError(t, err)
	assert.Equal(t, register.Normal, m)

	raw, err := d.RawAcceleration(ctx)
	require.NoError(t, err)
	assert.Equal(t, RawSample{X: 0x1000, Y: -64, Z: 0x4000}, raw)

	a, err := d.Acceleration(ctx)
	require.NoError(t, err)
	assert.Equal(t, Acceleration{X: 256, Y: -4, Z: 1024}, a)
}

func TestLIS3DH_AccelerationModes(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		ctrl1    byte
		ctrl4    byte
		expected int32
	}{
		// raw X = 0x1000 in every case
		{"high resolution 2g", 0x57, 0b0000_1000, 256},
		{"high resolution 16g", 0x57, 0b0011_1000, 256 * 12},
		{"normal 8g", 0x57, 0b0010_0000, 64 * 16},
		{"low power 4g", 0x5F, 0b0001_0000, 16 * 32},
		{"low power 16g", 0x5F, 0b0011_0000, 16 * 192},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newRegisterFile()
			f.regs[register.CtrlReg1Addr] = test.ctrl1
			f.regs[register.CtrlReg4Addr] = test.ctrl4
			f.regs[register.OutXH] = 0x10
			a, err := NewLIS3DH(f, f).Acceleration(ctx)
			require.NoError(t, err)
			assert.Equal(t, test.expected, a.X)
		})
	}
}

func TestLIS3DH_IllegalMode(t *testing.T) {
	ctx := context.Background()
	f := newRegisterFile()
	f.regs[register.CtrlReg1Addr] = 0b0101_1111
	f.regs[register.CtrlReg4Addr] = 0b0000_1000
	d := NewLIS3DH(f, f)

	_, err := d.Mode(ctx)
	assert.ErrorIs(t, err, register.ErrIllegalMode)
	_, err = d.Acceleration(ctx)
	assert.ErrorIs(t, err, register.ErrIllegalMode)
}

func TestLIS3DH_ModeIgnoresCache(t *testing.T) {
	ctx := context.Background()
	f := newRegisterFile()
	d := NewLIS3DH(f, f)
	d.SetCtrlReg4(register.CtrlReg4{HighResolution: register.On})

	m, err := d.Mode(ctx)
	require.NoError(t, err)
	assert.Equal(t, register.Normal, m)
}

func TestLIS3DH_RawAccelerationByteOrder(t *testing.T) {
	ctx := context.Background()
	f := newRegisterFile()
	reads := []register.Address{}
	d := NewLIS3DH(&recordingBus{registerFile: f, reads: &reads}, f)

	_, err := d.RawAcceleration(ctx)
	require.NoError(t, err)
	assert.Equal(t, []register.Address{
		register.OutXL, register.OutXH,
		register.OutYL, register.OutYH,
		register.OutZL, register.OutZH,
	}, reads)
}

type recordingBus struct {
	*registerFile
	reads *[]register.Address
}

func (b *recordingBus) Transfer(ctx context.Context, buffer []byte) error {
	*b.reads = append(*b.reads, register.AddressFromRaw(buffer[0]))
	return b.registerFile.Transfer(ctx, buffer)
}

func TestTilt(t *testing.T) {
	tests := []struct {
		name      string
		given     Acceleration
		magnitude float64
		angle     float64
		offset    float64
	}{
		{"flat", Acceleration{Z: 1000}, 1000, 2.5613, 0},
		{"upside down", Acceleration{Z: -1000}, 1000, 177.4387, 0},
		{"on the side", Acceleration{X: 1000}, 1000, 90, 0},
		{"free fall", Acceleration{}, 0, 90, 1000},
		{"tilted", Acceleration{X: 300, Y: 400, Z: 1200}, 1300, 22.7253, 300},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			o := Tilt(test.given)
			assert.InDelta(t, test.magnitude, o.Magnitude, 1e-9)
			assert.InDelta(t, test.angle, o.Angle, 1e-3)
			assert.InDelta(t, test.offset, o.Offset, 1e-9)
		})
	}
}

func TestConvert(t *testing.T) {
	s, err := register.ScaleFor(register.LowPower, register.FullScale2G)
	require.NoError(t, err)
	a := Convert(RawSample{X: 0x7FFF, Y: -0x8000, Z: 0x0100}, s)
	assert.Equal(t, Acceleration{X: 127 * 16, Y: -128 * 16, Z: 16}, a)
}
