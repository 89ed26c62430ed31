package config

import (
	"fmt"
	"strings"

	"github.com/mklimuk/lis3dh/accel"
	"github.com/mklimuk/lis3dh/register"
)

type Axes struct {
	X bool `yaml:"x"`
	Y bool `yaml:"y"`
	Z bool `yaml:"z"`
}

// Interrupt configures one inertial interrupt generator.
type Interrupt struct {
	// Enable lists the events: xl, xh, yl, yh, zl, zh.
	Enable        []string `yaml:"enable,omitempty"`
	Combination   string   `yaml:"combination,omitempty"`
	SixDirection  bool     `yaml:"six_direction,omitempty"`
	FourDirection bool     `yaml:"four_direction,omitempty"`
	Threshold     byte     `yaml:"threshold,omitempty"`
	Duration      byte     `yaml:"duration,omitempty"`
	Latch         bool     `yaml:"latch,omitempty"`
	HighPass      bool     `yaml:"high_pass,omitempty"`
}

// Routing selects the sources signalled on the INT1 pin.
type Routing struct {
	Click        bool `yaml:"click,omitempty"`
	IA1          bool `yaml:"ia1,omitempty"`
	IA2          bool `yaml:"ia2,omitempty"`
	DataReadyZYX bool `yaml:"zyxda,omitempty"`
	DataReady321 bool `yaml:"321da,omitempty"`
	Watermark    bool `yaml:"watermark,omitempty"`
	Overrun      bool `yaml:"overrun,omitempty"`
}

type Device struct {
	DataRate        string    `yaml:"data_rate"`
	FullScale       string    `yaml:"full_scale"`
	Axes            Axes      `yaml:"axes"`
	LowPower        bool      `yaml:"low_power"`
	HighResolution  bool      `yaml:"high_resolution"`
	BlockDataUpdate bool      `yaml:"block_data_update"`
	Temperature     bool      `yaml:"temperature"`
	ADC             bool      `yaml:"adc"`
	FIFO            bool      `yaml:"fifo"`
	PullUp          bool      `yaml:"sdo_pull_up"`
	Int1            Interrupt `yaml:"int1"`
	Int2            Interrupt `yaml:"int2"`
	Int1Routing     Routing   `yaml:"int1_routing"`
}

func parseDataRate(s string) (register.OutputDataRate, error) {
	s = strings.TrimSpace(s)
	for odr := register.PowerDown; odr <= register.Rate1344HzOr5376Hz; odr++ {
		if strings.EqualFold(odr.String(), s) {
			return odr, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown data rate %q", ErrInvalid, s)
}

func parseFullScale(s string) (register.FullScale, error) {
	s = strings.TrimSpace(s)
	for fs := register.FullScale2G; fs <= register.FullScale16G; fs++ {
		if strings.EqualFold(fs.String(), s) {
			return fs, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown full scale %q", ErrInvalid, s)
}

func (i Interrupt) cfg() (register.IntCfg, error) {
	var c register.IntCfg
	for _, e := range i.Enable {
		switch strings.ToLower(strings.TrimSpace(e)) {
		case "xl":
			c.XLow = register.On
		case "xh":
			c.XHigh = register.On
		case "yl":
			c.YLow = register.On
		case "yh":
			c.YHigh = register.On
		case "zl":
			c.ZLow = register.On
		case "zh":
			c.ZHigh = register.On
		default:
			return c, fmt.Errorf("%w: unknown interrupt event %q", ErrInvalid, e)
		}
	}
	switch strings.ToLower(i.Combination) {
	case "", "or":
		c.Combination = register.CombineOr
	case "and":
		c.Combination = register.CombineAnd
	default:
		return c, fmt.Errorf("%w: unknown interrupt combination %q", ErrInvalid, i.Combination)
	}
	c.SixDirection = register.OnOffFrom(i.SixDirection)
	return c, nil
}

func (i Interrupt) magnitudes() (register.IntThreshold, register.IntDuration, error) {
	ths, err := register.NewIntThreshold(i.Threshold)
	if err != nil {
		return ths, register.IntDuration{}, fmt.Errorf("%w: threshold: %w", ErrInvalid, err)
	}
	dur, err := register.NewIntDuration(i.Duration)
	if err != nil {
		return ths, dur, fmt.Errorf("%w: duration: %w", ErrInvalid, err)
	}
	return ths, dur, nil
}

// Settings converts the device section into register values. Nothing is
// returned unless every field is valid.
func (d Device) Settings() (accel.Settings, error) {
	s := accel.DefaultSettings()

	odr, err := parseDataRate(d.DataRate)
	if err != nil {
		return s, err
	}
	fs, err := parseFullScale(d.FullScale)
	if err != nil {
		return s, err
	}
	lp, hr := register.OnOffFrom(d.LowPower), register.OnOffFrom(d.HighResolution)
	if _, err := register.ModeFrom(lp, hr); err != nil {
		return s, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if d.Temperature && !d.ADC {
		return s, fmt.Errorf("%w: temperature sensor requires adc", ErrInvalid)
	}

	s.CtrlReg0 = register.CtrlReg0{PullUpConnected: register.OnOffFrom(d.PullUp)}
	s.TempCfg = register.TempCfgReg{
		Temperature: register.OnOffFrom(d.Temperature),
		ADC:         register.OnOffFrom(d.ADC),
	}
	s.CtrlReg1 = register.CtrlReg1{
		XEnable:  register.OnOffFrom(d.Axes.X),
		YEnable:  register.OnOffFrom(d.Axes.Y),
		ZEnable:  register.OnOffFrom(d.Axes.Z),
		LowPower: lp,
		DataRate: odr,
	}
	s.CtrlReg2 = register.CtrlReg2{
		HighPassIA1: register.OnOffFrom(d.Int1.HighPass),
		HighPassIA2: register.OnOffFrom(d.Int2.HighPass),
	}
	s.CtrlReg3 = register.CtrlReg3{
		Click:        register.OnOffFrom(d.Int1Routing.Click),
		IA1:          register.OnOffFrom(d.Int1Routing.IA1),
		IA2:          register.OnOffFrom(d.Int1Routing.IA2),
		DataReadyZYX: register.OnOffFrom(d.Int1Routing.DataReadyZYX),
		DataReady321: register.OnOffFrom(d.Int1Routing.DataReady321),
		Watermark:    register.OnOffFrom(d.Int1Routing.Watermark),
		Overrun:      register.OnOffFrom(d.Int1Routing.Overrun),
	}
	s.CtrlReg4 = register.CtrlReg4{
		HighResolution: hr,
		FullScale:      fs,
	}
	if d.BlockDataUpdate {
		s.CtrlReg4.BlockDataUpdate = register.UpdateAfterRead
	}
	s.CtrlReg5 = register.CtrlReg5{
		D4DInt1:    register.OnOffFrom(d.Int1.FourDirection),
		LatchInt1:  register.OnOffFrom(d.Int1.Latch),
		D4DInt2:    register.OnOffFrom(d.Int2.FourDirection),
		LatchInt2:  register.OnOffFrom(d.Int2.Latch),
		FIFOEnable: register.OnOffFrom(d.FIFO),
	}

	if s.Int1Cfg, err = d.Int1.cfg(); err != nil {
		return s, fmt.Errorf("int1: %w", err)
	}
	if s.Int1Threshold, s.Int1Duration, err = d.Int1.magnitudes(); err != nil {
		return s, fmt.Errorf("int1: %w", err)
	}
	if s.Int2Cfg, err = d.Int2.cfg(); err != nil {
		return s, fmt.Errorf("int2: %w", err)
	}
	if s.Int2Threshold, s.Int2Duration, err = d.Int2.magnitudes(); err != nil {
		return s, fmt.Errorf("int2: %w", err)
	}
	return s, nil
}

// Apply validates the section and replaces the cached settings of dev.
// dev is left untouched on error.
func (d Device) Apply(dev *accel.LIS3DH) error {
	s, err := d.Settings()
	if err != nil {
		return err
	}
	dev.SetSettings(s)
	return nil
}
