package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/lis3dh/accel"
	"github.com/mklimuk/lis3dh/cmd/lis3dh/console"
	"github.com/mklimuk/lis3dh/config"
	"github.com/mklimuk/lis3dh/stream"
)

var accelCmd = cli.Command{
	Name:  "accel",
	Usage: "print acceleration samples and tilt",
	Flags: []cli.Flag{
		&cli.DurationFlag{Name: "interval", Aliases: []string{"i"}, Value: 500 * time.Millisecond, Usage: "time between samples"},
		&cli.IntFlag{Name: "count", Aliases: []string{"n"}, Value: 1, Usage: "number of samples, 0 runs until interrupted"},
		&cli.BoolFlag{Name: "raw", Usage: "print raw output registers instead of scaled values"},
		&cli.BoolFlag{Name: "json", Usage: "print one JSON object per sample"},
	},
	Action: func(c *cli.Context) error {
		return withDevice(c, func(ctx context.Context, _ config.Config, dev *accel.LIS3DH) error {
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()
			mode, err := dev.Mode(ctx)
			if err != nil {
				return console.Exit(console.ExitFailure, "could not read mode: %v", err)
			}
			console.PInfof(console.PictoWave, "mode: %s", console.Cyan(mode))

			ticker := time.NewTicker(c.Duration("interval"))
			defer ticker.Stop()
			for n := 0; c.Int("count") == 0 || n < c.Int("count"); n++ {
				if n > 0 {
					select {
					case <-ctx.Done():
						return nil
					case <-ticker.C:
					}
				}
				if err := printSample(ctx, dev, c.Bool("raw"), c.Bool("json")); err != nil {
					return console.Exit(console.ExitFailure, "%v", err)
				}
			}
			return nil
		})
	},
}

func printSample(ctx context.Context, dev *accel.LIS3DH, raw, asJSON bool) error {
	if raw {
		s, err := dev.RawAcceleration(ctx)
		if err != nil {
			return err
		}
		console.Printf("x=%6d y=%6d z=%6d\n", s.X, s.Y, s.Z)
		return nil
	}
	a, err := dev.Acceleration(ctx)
	if err != nil {
		return err
	}
	if asJSON {
		data, err := json.Marshal(stream.NewSample(time.Now(), a))
		if err != nil {
			return fmt.Errorf("could not encode sample: %w", err)
		}
		console.Printf("%s\n", data)
		return nil
	}
	console.PInfof(console.PictoLevel, "%s %s", console.White(a), console.Faint(accel.Tilt(a)))
	return nil
}

var streamCmd = cli.Command{
	Name:  "stream",
	Usage: "publish samples to an MQTT broker",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "broker", Usage: "override the configured broker URL"},
		&cli.StringFlag{Name: "topic", Usage: "override the configured topic"},
		&cli.DurationFlag{Name: "interval", Usage: "override the configured sampling interval"},
		&cli.IntFlag{Name: "count", Usage: "stop after that many samples"},
		&cli.BoolFlag{Name: "apply", Usage: "write the configured settings before streaming"},
	},
	Action: func(c *cli.Context) error {
		return withDevice(c, func(ctx context.Context, cfg config.Config, dev *accel.LIS3DH) error {
			if c.IsSet("broker") {
				cfg.MQTT.Broker = c.String("broker")
			}
			if c.IsSet("topic") {
				cfg.MQTT.Topic = c.String("topic")
			}
			if c.IsSet("interval") {
				cfg.MQTT.Interval = c.Duration("interval")
			}
			if c.Bool("apply") {
				if err := cfg.Device.Apply(dev); err != nil {
					return console.Exit(console.ExitUsage, "%v", err)
				}
				if err := dev.WriteAllSettings(ctx); err != nil {
					return console.Exit(console.ExitFailure, "could not write settings: %v", err)
				}
			}

			pub, err := stream.DialMQTT(cfg.MQTT.Broker, cfg.MQTT.ClientID, cfg.MQTT.QoS)
			if err != nil {
				return console.Exit(console.ExitFailure, "%v", err)
			}
			defer pub.Close()

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()
			console.PInfof(console.PictoRadio, "streaming to %s on %s every %s", console.Cyan(cfg.MQTT.Broker), console.Bold(cfg.MQTT.Topic), cfg.MQTT.Interval)
			err = stream.Run(ctx, dev, pub, stream.Options{
				Topic:    cfg.MQTT.Topic,
				Interval: cfg.MQTT.Interval,
				Count:    c.Int("count"),
			})
			if err != nil {
				return console.Exit(console.ExitFailure, "%v", err)
			}
			slog.InfoContext(ctx, "stream stopped")
			return nil
		})
	},
}
