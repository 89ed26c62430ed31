package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/lis3dh/accel"
	"github.com/mklimuk/lis3dh/cmd/lis3dh/console"
	"github.com/mklimuk/lis3dh/config"
)

var applyCmd = cli.Command{
	Name:  "apply",
	Usage: "write the configured settings to the device and verify them",
	Action: func(c *cli.Context) error {
		return withDevice(c, func(ctx context.Context, cfg config.Config, dev *accel.LIS3DH) error {
			if err := cfg.Device.Apply(dev); err != nil {
				return console.Exit(console.ExitUsage, "%v", err)
			}
			if err := dev.WriteAllSettings(ctx); err != nil {
				return console.Exit(console.ExitFailure, "could not write settings: %v", err)
			}
			console.PInfof(console.PictoChip, "settings written")
			return reportVerification(ctx, dev)
		})
	},
}

var verifyCmd = cli.Command{
	Name:  "verify",
	Usage: "compare the device registers with the configured settings",
	Action: func(c *cli.Context) error {
		return withDevice(c, func(ctx context.Context, cfg config.Config, dev *accel.LIS3DH) error {
			if err := cfg.Device.Apply(dev); err != nil {
				return console.Exit(console.ExitUsage, "%v", err)
			}
			return reportVerification(ctx, dev)
		})
	},
}

func reportVerification(ctx context.Context, dev *accel.LIS3DH) error {
	mismatches, err := dev.CompareSettings(ctx)
	if err != nil {
		return console.Exit(console.ExitFailure, "could not read settings back: %v", err)
	}
	if len(mismatches) == 0 {
		console.PInfof(console.PictoCheck, "settings %s", console.Match(true))
		return nil
	}
	for _, m := range mismatches {
		console.PInfof(console.PictoCross, "%s", m)
	}
	return console.Exit(console.ExitMismatch, "%d register(s) %s", len(mismatches), console.Match(false))
}

var configCmd = cli.Command{
	Name:  "config",
	Usage: "print the effective configuration",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}
		data, err := cfg.Encode()
		if err != nil {
			return console.Exit(console.ExitFailure, "could not encode configuration: %v", err)
		}
		console.Printf("%s", data)
		return nil
	},
}
