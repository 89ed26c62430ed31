package accel

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/mklimuk/lis3dh/register"
)

// RawSample holds the left-justified two's-complement output registers.
type RawSample struct {
	X, Y, Z int16
}

// Acceleration is a scaled sample, roughly in milli-g.
type Acceleration struct {
	X int32 `json:"x" yaml:"x"`
	Y int32 `json:"y" yaml:"y"`
	Z int32 `json:"z" yaml:"z"`
}

func (a Acceleration) String() string {
	return fmt.Sprintf("x=%d y=%d z=%d", a.X, a.Y, a.Z)
}

// Orientation is a leveling indicator, not a calibrated attitude.
type Orientation struct {
	// Magnitude of the acceleration vector.
	Magnitude float64 `json:"magnitude" yaml:"magnitude"`
	// Angle between the vector and the Z axis, in degrees.
	Angle float64 `json:"angle" yaml:"angle"`
	// Offset is the deviation of Magnitude from 1g (1000).
	Offset float64 `json:"offset" yaml:"offset"`
}

func (o Orientation) String() string {
	return fmt.Sprintf("magnitude=%.1f angle=%.2f° offset=%.1f", o.Magnitude, o.Angle, o.Offset)
}

const oneG = 1000

// Tilt derives the magnitude, the angle to the Z axis and the offset from 1g.
// The denominator is 1+magnitude so a zero vector gives 90°.
func Tilt(a Acceleration) Orientation {
	x, y, z := float64(a.X), float64(a.Y), float64(a.Z)
	mag := math.Sqrt(x*x + y*y + z*z)
	return Orientation{
		Magnitude: mag,
		Angle:     math.Acos(z/(1+mag)) * 180 / math.Pi,
		Offset:    math.Abs(mag - oneG),
	}
}

var outputs = [...]register.Address{
	register.OutXL, register.OutXH,
	register.OutYL, register.OutYH,
	register.OutZL, register.OutZH,
}

// RawAcceleration reads the six output registers one byte per transaction,
// X then Y then Z, low byte first.
func (d *LIS3DH) RawAcceleration(ctx context.Context) (RawSample, error) {
	var buf [len(outputs)]byte
	for i, addr := range outputs {
		v, err := d.ReadRegister(ctx, addr)
		if err != nil {
			return RawSample{}, fmt.Errorf("could not read acceleration: %w", err)
		}
		buf[i] = v
	}
	return RawSample{
		X: int16(binary.LittleEndian.Uint16(buf[0:2])),
		Y: int16(binary.LittleEndian.Uint16(buf[2:4])),
		Z: int16(binary.LittleEndian.Uint16(buf[4:6])),
	}, nil
}

// Mode reads CTRL_REG1 and CTRL_REG4 from the device and derives the
// operating mode. The cached settings are not consulted.
func (d *LIS3DH) Mode(ctx context.Context) (register.Mode, error) {
	m, _, err := d.readMode(ctx)
	return m, err
}

func (d *LIS3DH) readMode(ctx context.Context) (register.Mode, register.FullScale, error) {
	c1, err := d.ReadCtrlReg1(ctx)
	if err != nil {
		return 0, 0, err
	}
	c4, err := d.ReadCtrlReg4(ctx)
	if err != nil {
		return 0, 0, err
	}
	m, err := register.ModeFrom(c1.LowPower, c4.HighResolution)
	if err != nil {
		return 0, 0, fmt.Errorf("could not derive mode: %w", err)
	}
	return m, c4.FullScale, nil
}

// Scale returns the conversion currently configured on the device.
func (d *LIS3DH) Scale(ctx context.Context) (register.Scale, error) {
	m, fs, err := d.readMode(ctx)
	if err != nil {
		return register.Scale{}, err
	}
	return register.ScaleFor(m, fs)
}

// Acceleration reads a raw sample and scales it according to the mode and
// full scale read back from the device.
func (d *LIS3DH) Acceleration(ctx context.Context) (Acceleration, error) {
	scale, err := d.Scale(ctx)
	if err != nil {
		return Acceleration{}, err
	}
	raw, err := d.RawAcceleration(ctx)
	if err != nil {
		return Acceleration{}, err
	}
	return Convert(raw, scale), nil
}

// Convert scales a raw sample.
func Convert(raw RawSample, s register.Scale) Acceleration {
	return Acceleration{
		X: s.Apply(raw.X),
		Y: s.Apply(raw.Y),
		Z: s.Apply(raw.Z),
	}
}
