package spibus

import (
	"context"
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/mklimuk/lis3dh"
)

// DefaultSpeed is well below the 10 MHz limit of the LIS3DH.
const DefaultSpeed = 1 * physic.MegaHertz

var _ lis3dh.SPIBus = &Periph{}

// Periph is an SPI bus opened through the periph.io registry.
type Periph struct {
	port spi.Port
	conn spi.Conn
}

// NewPeriph initializes the host drivers and opens dev ("" selects the first
// available port). The LIS3DH clocks data in SPI mode 3.
func NewPeriph(dev string, speed physic.Frequency) (*Periph, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("could not init host: %w", err)
	}
	port, err := spireg.Open(dev)
	if err != nil {
		return nil, fmt.Errorf("could not open spi port %q: %w", dev, err)
	}
	b, err := NewPeriphPort(port, speed)
	if err != nil {
		_ = port.Close()
		return nil, err
	}
	return b, nil
}

// NewPeriphPort connects to an already opened port.
func NewPeriphPort(port spi.Port, speed physic.Frequency) (*Periph, error) {
	if speed == 0 {
		speed = DefaultSpeed
	}
	conn, err := port.Connect(speed, spi.Mode3, 8)
	if err != nil {
		return nil, fmt.Errorf("could not connect to spi port: %w", err)
	}
	return &Periph{port: port, conn: conn}, nil
}

// Transfer clocks buffer out and stores the reply after the address byte.
func (b *Periph) Transfer(ctx context.Context, buffer []byte) error {
	r := make([]byte, len(buffer))
	if err := b.conn.Tx(buffer, r); err != nil {
		return fmt.Errorf("could not transfer on spi bus: %w", err)
	}
	dump(ctx, "transfer", buffer, r)
	copy(buffer[1:], r[1:])
	return nil
}

func (b *Periph) Write(ctx context.Context, buffer []byte) error {
	if err := b.conn.Tx(buffer, nil); err != nil {
		return fmt.Errorf("could not write to spi bus: %w", err)
	}
	dump(ctx, "write", buffer, nil)
	return nil
}

func (b *Periph) Close() error {
	if c, ok := b.port.(spi.PortCloser); ok {
		return c.Close()
	}
	return nil
}

var _ lis3dh.ChipSelect = &PinSelect{}

// PinSelect drives chip select from a GPIO line, for wiring where the
// kernel does not toggle CS on its own.
type PinSelect struct {
	pin gpio.PinOut
}

func NewPinSelect(name string) (*PinSelect, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("could not init host: %w", err)
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("could not find gpio pin %q", name)
	}
	return NewPinSelectFromPin(p)
}

// NewPinSelectFromPin leaves the line released (high).
func NewPinSelectFromPin(p gpio.PinOut) (*PinSelect, error) {
	if err := p.Out(gpio.High); err != nil {
		return nil, fmt.Errorf("could not release chip select %s: %w", p, err)
	}
	return &PinSelect{pin: p}, nil
}

func (c *PinSelect) Select(ctx context.Context) error {
	if err := c.pin.Out(gpio.Low); err != nil {
		return fmt.Errorf("could not pull %s low: %w", c.pin, err)
	}
	return nil
}

func (c *PinSelect) Release(ctx context.Context) error {
	if err := c.pin.Out(gpio.High); err != nil {
		return fmt.Errorf("could not pull %s high: %w", c.pin, err)
	}
	return nil
}

var _ lis3dh.ChipSelect = NativeSelect{}

// NativeSelect is used when the SPI controller asserts CS for every transfer.
type NativeSelect struct{}

func (NativeSelect) Select(ctx context.Context) error  { return nil }
func (NativeSelect) Release(ctx context.Context) error { return nil }
