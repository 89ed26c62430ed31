package spibus

import (
	"context"
	"fmt"

	"gobot.io/x/gobot/v2/drivers/spi"

	"github.com/mklimuk/lis3dh"
)

const (
	gobotMode  = 3
	gobotSpeed = 1_000_000
)

var _ lis3dh.SPIBus = &Gobot{}

// spiOps is the subset of the gobot SPI connection used by the bus.
type spiOps interface {
	ReadCommandData(command []byte, data []byte) error
	WriteBytes(data []byte) error
}

// Gobot is an SPI bus driven through a gobot adaptor, e.g. the NanoPi NEO:
//
//	adaptor := nanopi.NewNeoAdaptor()
//	b := spibus.NewGobot(adaptor, spi.WithBusNumber(0), spi.WithChipNumber(0))
//	if err := b.Start(); err != nil { ... }
//	defer b.Halt()
//
// Chip select is asserted by the kernel driver, so pair it with NativeSelect.
type Gobot struct {
	*spi.Driver
	ops spiOps
}

func NewGobot(adaptor spi.Connector, opts ...func(spi.Config)) *Gobot {
	d := spi.NewDriver(adaptor, "LIS3DH", opts...)
	d.SetMode(gobotMode)
	if d.GetSpeedOrDefault(0) == 0 {
		d.SetSpeed(gobotSpeed)
	}
	return &Gobot{Driver: d}
}

func (b *Gobot) connection() (spiOps, error) {
	if b.ops != nil {
		return b.ops, nil
	}
	if b.Driver == nil {
		return nil, fmt.Errorf("spi driver not initialized")
	}
	ops, ok := b.Driver.Connection().(spiOps)
	if !ok {
		return nil, fmt.Errorf("spi connection does not support required operations")
	}
	return ops, nil
}

// Transfer clocks the whole buffer full-duplex. The chip answers one byte
// behind the address, so the reply lands in buffer[1:] while buffer[0] keeps
// the address byte.
func (b *Gobot) Transfer(ctx context.Context, buffer []byte) error {
	if len(buffer) == 0 {
		return nil
	}
	ops, err := b.connection()
	if err != nil {
		return err
	}
	tx := append([]byte(nil), buffer...)
	if err := ops.ReadCommandData(tx, buffer); err != nil {
		return fmt.Errorf("could not transfer on spi bus: %w", err)
	}
	buffer[0] = tx[0]
	dump(ctx, "transfer", tx, buffer)
	return nil
}

func (b *Gobot) Write(ctx context.Context, buffer []byte) error {
	if len(buffer) == 0 {
		return nil
	}
	ops, err := b.connection()
	if err != nil {
		return err
	}
	if err := ops.WriteBytes(buffer); err != nil {
		return fmt.Errorf("could not write to spi bus: %w", err)
	}
	dump(ctx, "write", buffer, nil)
	return nil
}
