package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v2"
	"gobot.io/x/gobot/v2/drivers/spi"
	"gobot.io/x/gobot/v2/platforms/friendlyelec/nanopi"
	"periph.io/x/conn/v3/physic"

	"github.com/mklimuk/lis3dh"
	"github.com/mklimuk/lis3dh/accel"
	"github.com/mklimuk/lis3dh/busctx"
	"github.com/mklimuk/lis3dh/cmd/lis3dh/console"
	"github.com/mklimuk/lis3dh/config"
	"github.com/mklimuk/lis3dh/spibus"
)

func loadConfig(c *cli.Context) (config.Config, error) {
	path := c.String("config")
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, console.Exit(console.ExitUsage, "%v", err)
	}
	return cfg, nil
}

func commandContext(c *cli.Context) context.Context {
	ctx := busctx.SetVerbose(c.Context, c.Bool("verbose"))
	return busctx.SetLabel(ctx, c.Command.Name)
}

// openDevice builds the façade over the bus described by cfg. The returned
// closer releases the bus and must be called once the device is no longer used.
func openDevice(cfg config.Config) (*accel.LIS3DH, func(), error) {
	var (
		bus     lis3dh.SPIBus
		closeFn func()
	)
	switch strings.ToLower(cfg.Bus.Platform) {
	case config.PlatformGobot:
		adaptor := nanopi.NewNeoAdaptor()
		if err := adaptor.Connect(); err != nil {
			return nil, nil, fmt.Errorf("could not connect nanopi adaptor: %w", err)
		}
		opts := []func(spi.Config){
			spi.WithBusNumber(cfg.Bus.BusNumber),
			spi.WithChipNumber(cfg.Bus.ChipNumber),
		}
		if cfg.Bus.SpeedHz > 0 {
			opts = append(opts, spi.WithSpeed(cfg.Bus.SpeedHz))
		}
		g := spibus.NewGobot(adaptor, opts...)
		if err := g.Start(); err != nil {
			_ = adaptor.Finalize()
			return nil, nil, fmt.Errorf("SPI device start error: %w", err)
		}
		bus = g
		closeFn = func() {
			if err := g.Halt(); err != nil {
				slog.Warn("could not halt spi driver", "error", err)
			}
			if err := adaptor.Finalize(); err != nil {
				slog.Warn("could not finalize adaptor", "error", err)
			}
		}
	default:
		p, err := spibus.NewPeriph(cfg.Bus.Device, physic.Frequency(cfg.Bus.SpeedHz)*physic.Hertz)
		if err != nil {
			return nil, nil, err
		}
		bus = p
		closeFn = func() {
			if err := p.Close(); err != nil {
				slog.Warn("could not close spi port", "error", err)
			}
		}
	}

	var cs lis3dh.ChipSelect = spibus.NativeSelect{}
	if cfg.Bus.ChipSelect != "" {
		pin, err := spibus.NewPinSelect(cfg.Bus.ChipSelect)
		if err != nil {
			closeFn()
			return nil, nil, err
		}
		cs = pin
	}

	var opts []accel.LIS3DHOpt
	if cfg.Bus.LegacyCtrlReg5 {
		opts = append(opts, accel.WithLegacyCtrlReg5())
	}
	return accel.NewLIS3DH(bus, cs, opts...), closeFn, nil
}

// withDevice loads the configuration, opens the device and runs fn with a
// command context.
func withDevice(c *cli.Context, fn func(ctx context.Context, cfg config.Config, dev *accel.LIS3DH) error) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	dev, closeFn, err := openDevice(cfg)
	if err != nil {
		return console.Exit(console.ExitFailure, "could not open device: %v", err)
	}
	defer closeFn()
	return fn(commandContext(c), cfg, dev)
}
