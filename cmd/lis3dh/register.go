package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/mklimuk/lis3dh/accel"
	"github.com/mklimuk/lis3dh/cmd/lis3dh/console"
	"github.com/mklimuk/lis3dh/config"
	"github.com/mklimuk/lis3dh/register"
)

var errBadArgument = fmt.Errorf("bad argument")

// parseAddress accepts a datasheet name (CTRL_REG1) or a hex offset (0x20, 20).
func parseAddress(s string) (register.Address, error) {
	if a, ok := register.Lookup(s); ok {
		return a, nil
	}
	v, err := parseHex(s)
	if err != nil {
		return 0, fmt.Errorf("%w: unknown register %q", errBadArgument, s)
	}
	if v > 0x3F {
		return 0, fmt.Errorf("%w: register offset %#x does not fit in 6 bits", errBadArgument, v)
	}
	return register.Address(v), nil
}

func parseHex(s string) (byte, error) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, err
	}
	return byte(v), nil
}

type registerDump struct {
	Address  string           `yaml:"address"`
	Name     register.Address `yaml:"name"`
	Raw      string           `yaml:"raw"`
	ReadOnly bool             `yaml:"read_only"`
	Value    any              `yaml:"value,omitempty"`
	Error    string           `yaml:"error,omitempty"`
}

func newRegisterDump(a register.Address, raw byte) registerDump {
	d := registerDump{
		Address:  fmt.Sprintf("0x%02X", byte(a)),
		Name:     a,
		Raw:      fmt.Sprintf("0x%02X", raw),
		ReadOnly: a.ReadOnly(),
	}
	v, err := register.Decode(a, raw)
	switch {
	case errors.Is(err, register.ErrNoCodec):
	case err != nil:
		d.Error = err.Error()
	default:
		d.Value = v
	}
	return d
}

// source registers clear latched flags when read
func clearsOnRead(a register.Address) bool {
	switch a {
	case register.Int1Src, register.Int2Src, register.ClickSrc, register.FIFOSrcReg:
		return true
	}
	return false
}

var whoAmICmd = cli.Command{
	Name:  "whoami",
	Usage: "check the device identification register",
	Action: func(c *cli.Context) error {
		return withDevice(c, func(ctx context.Context, _ config.Config, dev *accel.LIS3DH) error {
			id, err := dev.WhoAmI(ctx)
			if err != nil {
				return console.Exit(console.ExitFailure, "could not read WHO_AM_I: %v", err)
			}
			if id != register.WhoAmIValue {
				console.PInfof(console.PictoCross, "WHO_AM_I: %s (expected 0x%02X)", console.Red(fmt.Sprintf("0x%02X", id)), register.WhoAmIValue)
				return console.Exit(console.ExitMismatch, "unexpected device identifier 0x%02X", id)
			}
			console.PInfof(console.PictoCheck, "WHO_AM_I: %s", console.Green(fmt.Sprintf("0x%02X", id)))
			return nil
		})
	},
}

var readCmd = cli.Command{
	Name:      "read",
	Usage:     "read and decode one register",
	ArgsUsage: "<register>",
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return console.Exit(console.ExitUsage, "expected one register name or offset")
		}
		addr, err := parseAddress(c.Args().First())
		if err != nil {
			return console.Exit(console.ExitUsage, "%v", err)
		}
		return withDevice(c, func(ctx context.Context, _ config.Config, dev *accel.LIS3DH) error {
			raw, err := dev.ReadRegister(ctx, addr)
			if err != nil {
				return console.Exit(console.ExitFailure, "could not read %s: %v", addr, err)
			}
			d := newRegisterDump(addr, raw)
			console.PInfof(console.PictoChip, "%s (%s): %s %s", console.Bold(addr), d.Address, console.Cyan(d.Raw), console.Faint(fmt.Sprintf("%08b", raw)))
			switch {
			case d.Error != "":
				console.Warnf("%s", d.Error)
			case d.Value != nil:
				console.Printf("%+v\n", d.Value)
			}
			return nil
		})
	},
}

var writeCmd = cli.Command{
	Name:      "write",
	Usage:     "write a raw byte to one register",
	ArgsUsage: "<register> <hex value>",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "do not ask for confirmation"},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 2 {
			return console.Exit(console.ExitUsage, "expected a register and a value")
		}
		addr, err := parseAddress(c.Args().Get(0))
		if err != nil {
			return console.Exit(console.ExitUsage, "%v", err)
		}
		value, err := parseHex(c.Args().Get(1))
		if err != nil {
			return console.Exit(console.ExitUsage, "invalid value %q: %v", c.Args().Get(1), err)
		}
		if addr.ReadOnly() {
			return console.Exit(console.ExitUsage, "%s is read-only", addr)
		}
		if !c.Bool("yes") {
			ok, err := console.Confirm(fmt.Sprintf("write 0x%02X to %s?", value, addr))
			if err != nil {
				return err
			}
			if !ok {
				console.Infof("aborted")
				return nil
			}
		}
		return withDevice(c, func(ctx context.Context, _ config.Config, dev *accel.LIS3DH) error {
			if err := dev.WriteRegister(ctx, addr, value); err != nil {
				return console.Exit(console.ExitFailure, "could not write %s: %v", addr, err)
			}
			console.PInfof(console.PictoCheck, "%s <- %s", console.Bold(addr), console.Cyan(fmt.Sprintf("0x%02X", value)))
			return nil
		})
	},
}

var dumpCmd = cli.Command{
	Name:  "dump",
	Usage: "read every documented register and print it as YAML",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "sources", Usage: "include interrupt, click and FIFO source registers (reading them clears latched events)"},
	},
	Action: func(c *cli.Context) error {
		return withDevice(c, func(ctx context.Context, _ config.Config, dev *accel.LIS3DH) error {
			dumps, err := dumpRegisters(ctx, dev, c.Bool("sources"))
			if err != nil {
				return console.Exit(console.ExitFailure, "%v", err)
			}
			enc := yaml.NewEncoder(console.Writer())
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(dumps)
		})
	},
}

type registerReader interface {
	ReadRegister(ctx context.Context, addr register.Address) (byte, error)
}

func dumpRegisters(ctx context.Context, dev registerReader, sources bool) ([]registerDump, error) {
	var dumps []registerDump
	for _, a := range register.Addresses() {
		if clearsOnRead(a) && !sources {
			continue
		}
		raw, err := dev.ReadRegister(ctx, a)
		if err != nil {
			return nil, fmt.Errorf("could not read %s: %w", a, err)
		}
		dumps = append(dumps, newRegisterDump(a, raw))
	}
	return dumps, nil
}
