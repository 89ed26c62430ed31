package accel

import (
	"context"
	"fmt"
	"sync"

	"github.com/mklimuk/lis3dh"
	"github.com/mklimuk/lis3dh/register"
)

var (
	ErrChipSelect       = fmt.Errorf("lis3dh: chip select failed")
	ErrTransfer         = fmt.Errorf("lis3dh: bus transfer failed")
	ErrReadOnlyRegister = fmt.Errorf("lis3dh: register is read-only")
	ErrInvalidInterrupt = fmt.Errorf("lis3dh: interrupt generator must be 1 or 2")
)

// Interrupt selects one of the two inertial interrupt generators.
type Interrupt int

const (
	Int1 Interrupt = 1
	Int2 Interrupt = 2
)

type interruptRegs struct {
	cfg, src, ths, dur register.Address
}

var interrupts = map[Interrupt]interruptRegs{
	Int1: {register.Int1Cfg, register.Int1Src, register.Int1Ths, register.Int1Duration},
	Int2: {register.Int2Cfg, register.Int2Src, register.Int2Ths, register.Int2Duration},
}

func (i Interrupt) regs() (interruptRegs, error) {
	r, ok := interrupts[i]
	if !ok {
		return interruptRegs{}, fmt.Errorf("%w: got %d", ErrInvalidInterrupt, int(i))
	}
	return r, nil
}

// Settings mirrors every writable configuration register of the device.
type Settings struct {
	CtrlReg0      register.CtrlReg0
	TempCfg       register.TempCfgReg
	CtrlReg1      register.CtrlReg1
	CtrlReg2      register.CtrlReg2
	CtrlReg3      register.CtrlReg3
	CtrlReg4      register.CtrlReg4
	CtrlReg5      register.CtrlReg5
	Int1Cfg       register.IntCfg
	Int1Threshold register.IntThreshold
	Int1Duration  register.IntDuration
	Int2Cfg       register.IntCfg
	Int2Threshold register.IntThreshold
	Int2Duration  register.IntDuration
}

// DefaultSettings returns the power-on register values.
func DefaultSettings() Settings {
	return Settings{CtrlReg1: register.DefaultCtrlReg1()}
}

type LIS3DHOpts struct {
	// LegacyCtrlReg5 pushes CTRL_REG5 with the bit layout of early firmware tools.
	LegacyCtrlReg5 bool
}

type LIS3DHOpt func(*LIS3DHOpts)

func WithLegacyCtrlReg5() LIS3DHOpt {
	return func(o *LIS3DHOpts) {
		o.LegacyCtrlReg5 = true
	}
}

// LIS3DH represents ST LIS3DH 3-axis accelerometer attached over SPI.
// Typical usage:
//
//	d := NewLIS3DH(bus, cs)
//	c1 := d.CtrlReg1()
//	c1.DataRate = register.Rate100Hz
//	d.SetCtrlReg1(c1)
//	err := d.WriteAllSettings(ctx)
//	a, err := d.Acceleration(ctx)
//
// Setters only change the in-memory settings; nothing reaches the device
// until WriteAllSettings is called.
type LIS3DH struct {
	mx        sync.Mutex
	smx       sync.RWMutex
	transport lis3dh.SPIBus
	cs        lis3dh.ChipSelect
	config    LIS3DHOpts
	settings  Settings
}

func NewLIS3DH(bus lis3dh.SPIBus, cs lis3dh.ChipSelect, opts ...LIS3DHOpt) *LIS3DH {
	var config LIS3DHOpts
	for _, opt := range opts {
		opt(&config)
	}
	return &LIS3DH{
		transport: bus,
		cs:        cs,
		config:    config,
		settings:  DefaultSettings(),
	}
}

// Settings returns the cached register values.
func (d *LIS3DH) Settings() Settings {
	d.smx.RLock()
	defer d.smx.RUnlock()
	return d.settings
}

// SetSettings replaces all cached register values at once.
func (d *LIS3DH) SetSettings(s Settings) {
	d.smx.Lock()
	defer d.smx.Unlock()
	d.settings = s
}

func (d *LIS3DH) CtrlReg0() register.CtrlReg0 {
	d.smx.RLock()
	defer d.smx.RUnlock()
	return d.settings.CtrlReg0
}

func (d *LIS3DH) SetCtrlReg0(r register.CtrlReg0) {
	d.smx.Lock()
	defer d.smx.Unlock()
	d.settings.CtrlReg0 = r
}

func (d *LIS3DH) TempCfg() register.TempCfgReg {
	d.smx.RLock()
	defer d.smx.RUnlock()
	return d.settings.TempCfg
}

func (d *LIS3DH) SetTempCfg(r register.TempCfgReg) {
	d.smx.Lock()
	defer d.smx.Unlock()
	d.settings.TempCfg = r
}

func (d *LIS3DH) CtrlReg1() register.CtrlReg1 {
	d.smx.RLock()
	defer d.smx.RUnlock()
	return d.settings.CtrlReg1
}

func (d *LIS3DH) SetCtrlReg1(r register.CtrlReg1) {
	d.smx.Lock()
	defer d.smx.Unlock()
	d.settings.CtrlReg1 = r
}

func (d *LIS3DH) CtrlReg2() register.CtrlReg2 {
	d.smx.RLock()
	defer d.smx.RUnlock()
	return d.settings.CtrlReg2
}

func (d *LIS3DH) SetCtrlReg2(r register.CtrlReg2) {
	d.smx.Lock()
	defer d.smx.Unlock()
	d.settings.CtrlReg2 = r
}

func (d *LIS3DH) CtrlReg3() register.CtrlReg3 {
	d.smx.RLock()
	defer d.smx.RUnlock()
	return d.settings.CtrlReg3
}

func (d *LIS3DH) SetCtrlReg3(r register.CtrlReg3) {
	d.smx.Lock()
	defer d.smx.Unlock()
	d.settings.CtrlReg3 = r
}

func (d *LIS3DH) CtrlReg4() register.CtrlReg4 {
	d.smx.RLock()
	defer d.smx.RUnlock()
	return d.settings.CtrlReg4
}

func (d *LIS3DH) SetCtrlReg4(r register.CtrlReg4) {
	d.smx.Lock()
	defer d.smx.Unlock()
	d.settings.CtrlReg4 = r
}

func (d *LIS3DH) CtrlReg5() register.CtrlReg5 {
	d.smx.RLock()
	defer d.smx.RUnlock()
	return d.settings.CtrlReg5
}

func (d *LIS3DH) SetCtrlReg5(r register.CtrlReg5) {
	d.smx.Lock()
	defer d.smx.Unlock()
	d.settings.CtrlReg5 = r
}

func (d *LIS3DH) Int1Cfg() register.IntCfg {
	d.smx.RLock()
	defer d.smx.RUnlock()
	return d.settings.Int1Cfg
}

func (d *LIS3DH) SetInt1Cfg(r register.IntCfg) {
	d.smx.Lock()
	defer d.smx.Unlock()
	d.settings.Int1Cfg = r
}

func (d *LIS3DH) Int1Threshold() register.IntThreshold {
	d.smx.RLock()
	defer d.smx.RUnlock()
	return d.settings.Int1Threshold
}

func (d *LIS3DH) SetInt1Threshold(r register.IntThreshold) {
	d.smx.Lock()
	defer d.smx.Unlock()
	d.settings.Int1Threshold = r
}

func (d *LIS3DH) Int1Duration() register.IntDuration {
	d.smx.RLock()
	defer d.smx.RUnlock()
	return d.settings.Int1Duration
}

func (d *LIS3DH) SetInt1Duration(r register.IntDuration) {
	d.smx.Lock()
	defer d.smx.Unlock()
	d.settings.Int1Duration = r
}

func (d *LIS3DH) Int2Cfg() register.IntCfg {
	d.smx.RLock()
	defer d.smx.RUnlock()
	return d.settings.Int2Cfg
}

func (d *LIS3DH) SetInt2Cfg(r register.IntCfg) {
	d.smx.Lock()
	defer d.smx.Unlock()
	d.settings.Int2Cfg = r
}

func (d *LIS3DH) Int2Threshold() register.IntThreshold {
	d.smx.RLock()
	defer d.smx.RUnlock()
	return d.settings.Int2Threshold
}

func (d *LIS3DH) SetInt2Threshold(r register.IntThreshold) {
	d.smx.Lock()
	defer d.smx.Unlock()
	d.settings.Int2Threshold = r
}

func (d *LIS3DH) Int2Duration() register.IntDuration {
	d.smx.RLock()
	defer d.smx.RUnlock()
	return d.settings.Int2Duration
}

func (d *LIS3DH) SetInt2Duration(r register.IntDuration) {
	d.smx.Lock()
	defer d.smx.Unlock()
	d.settings.Int2Duration = r
}

type registerWrite struct {
	addr  register.Address
	value byte
}

// settingsWrites lists the cached settings in push order: configuration
// registers ascending, interrupt generators last.
func (d *LIS3DH) settingsWrites() []registerWrite {
	s := d.Settings()
	ctrl5 := s.CtrlReg5.Encode()
	if d.config.LegacyCtrlReg5 {
		ctrl5 = s.CtrlReg5.EncodeLegacy()
	}
	return []registerWrite{
		{register.CtrlReg0Addr, s.CtrlReg0.Encode()},
		{register.TempCfgRegAddr, s.TempCfg.Encode()},
		{register.CtrlReg1Addr, s.CtrlReg1.Encode()},
		{register.CtrlReg2Addr, s.CtrlReg2.Encode()},
		{register.CtrlReg3Addr, s.CtrlReg3.Encode()},
		{register.CtrlReg4Addr, s.CtrlReg4.Encode()},
		{register.CtrlReg5Addr, ctrl5},
		{register.Int1Cfg, s.Int1Cfg.Encode()},
		{register.Int1Ths, s.Int1Threshold.Encode()},
		{register.Int1Duration, s.Int1Duration.Encode()},
		{register.Int2Cfg, s.Int2Cfg.Encode()},
		{register.Int2Ths, s.Int2Threshold.Encode()},
		{register.Int2Duration, s.Int2Duration.Encode()},
	}
}

// WriteAllSettings pushes every cached register to the device, one transaction
// per register. It stops at the first failure.
func (d *LIS3DH) WriteAllSettings(ctx context.Context) error {
	for _, w := range d.settingsWrites() {
		if err := d.WriteRegister(ctx, w.addr, w.value); err != nil {
			return fmt.Errorf("could not write settings: %w", err)
		}
	}
	return nil
}

// Mismatch describes a register whose device value differs from the cached one.
type Mismatch struct {
	Register register.Address
	Expected any
	Actual   any
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: expected %+v, got %+v", m.Register, m.Expected, m.Actual)
}

// CompareSettings reads every settable register back and returns the ones
// that do not match the cached settings. Mismatches are not repaired.
func (d *LIS3DH) CompareSettings(ctx context.Context) ([]Mismatch, error) {
	var actual Settings
	var err error
	if actual.CtrlReg0, err = d.ReadCtrlReg0(ctx); err != nil {
		return nil, err
	}
	if actual.TempCfg, err = d.ReadTempCfg(ctx); err != nil {
		return nil, err
	}
	if actual.CtrlReg1, err = d.ReadCtrlReg1(ctx); err != nil {
		return nil, err
	}
	if actual.CtrlReg2, err = d.ReadCtrlReg2(ctx); err != nil {
		return nil, err
	}
	if actual.CtrlReg3, err = d.ReadCtrlReg3(ctx); err != nil {
		return nil, err
	}
	if actual.CtrlReg4, err = d.ReadCtrlReg4(ctx); err != nil {
		return nil, err
	}
	var rawCtrl5 byte
	if d.config.LegacyCtrlReg5 {
		// the legacy layout does not decode back to the cached fields
		if rawCtrl5, err = d.ReadRegister(ctx, register.CtrlReg5Addr); err != nil {
			return nil, err
		}
	} else if actual.CtrlReg5, err = d.ReadCtrlReg5(ctx); err != nil {
		return nil, err
	}
	if actual.Int1Cfg, err = d.ReadIntCfg(ctx, Int1); err != nil {
		return nil, err
	}
	if actual.Int1Threshold, err = d.ReadIntThreshold(ctx, Int1); err != nil {
		return nil, err
	}
	if actual.Int1Duration, err = d.ReadIntDuration(ctx, Int1); err != nil {
		return nil, err
	}
	if actual.Int2Cfg, err = d.ReadIntCfg(ctx, Int2); err != nil {
		return nil, err
	}
	if actual.Int2Threshold, err = d.ReadIntThreshold(ctx, Int2); err != nil {
		return nil, err
	}
	if actual.Int2Duration, err = d.ReadIntDuration(ctx, Int2); err != nil {
		return nil, err
	}

	want := d.Settings()
	var res []Mismatch
	check := func(addr register.Address, expected, got any) {
		if expected != got {
			res = append(res, Mismatch{Register: addr, Expected: expected, Actual: got})
		}
	}
	check(register.CtrlReg0Addr, want.CtrlReg0, actual.CtrlReg0)
	check(register.TempCfgRegAddr, want.TempCfg, actual.TempCfg)
	check(register.CtrlReg1Addr, want.CtrlReg1, actual.CtrlReg1)
	check(register.CtrlReg2Addr, want.CtrlReg2, actual.CtrlReg2)
	check(register.CtrlReg3Addr, want.CtrlReg3, actual.CtrlReg3)
	check(register.CtrlReg4Addr, want.CtrlReg4, actual.CtrlReg4)
	if d.config.LegacyCtrlReg5 {
		check(register.CtrlReg5Addr, want.CtrlReg5.EncodeLegacy(), rawCtrl5)
	} else {
		check(register.CtrlReg5Addr, want.CtrlReg5, actual.CtrlReg5)
	}
	check(register.Int1Cfg, want.Int1Cfg, actual.Int1Cfg)
	check(register.Int1Ths, want.Int1Threshold.Value(), actual.Int1Threshold.Value())
	check(register.Int1Duration, want.Int1Duration.Value(), actual.Int1Duration.Value())
	check(register.Int2Cfg, want.Int2Cfg, actual.Int2Cfg)
	check(register.Int2Ths, want.Int2Threshold.Value(), actual.Int2Threshold.Value())
	check(register.Int2Duration, want.Int2Duration.Value(), actual.Int2Duration.Value())
	return res, nil
}

// VerifySettings reports whether the device registers match the cached settings.
func (d *LIS3DH) VerifySettings(ctx context.Context) (bool, error) {
	mismatches, err := d.CompareSettings(ctx)
	if err != nil {
		return false, fmt.Errorf("could not verify settings: %w", err)
	}
	return len(mismatches) == 0, nil
}

// transaction runs fn with the chip selected. The chip is released on every path.
func (d *LIS3DH) transaction(ctx context.Context, fn func() error) (err error) {
	d.mx.Lock()
	defer d.mx.Unlock()
	if err := d.cs.Select(ctx); err != nil {
		return fmt.Errorf("%w: could not select: %w", ErrChipSelect, err)
	}
	defer func() {
		relErr := d.cs.Release(ctx)
		if relErr != nil && err == nil {
			err = fmt.Errorf("%w: could not release: %w", ErrChipSelect, relErr)
		}
	}()
	if err := fn(); err != nil {
		return fmt.Errorf("%w: %w", ErrTransfer, err)
	}
	return nil
}

// ReadRegister reads a single register in one transaction.
func (d *LIS3DH) ReadRegister(ctx context.Context, addr register.Address) (byte, error) {
	buf := []byte{byte(addr) | register.ReadBit, 0xFF}
	err := d.transaction(ctx, func() error {
		return d.transport.Transfer(ctx, buf)
	})
	if err != nil {
		return 0, fmt.Errorf("could not read %s: %w", addr, err)
	}
	return buf[1], nil
}

// WriteRegister writes a single register in one transaction. Writes to
// read-only registers are rejected without touching the bus.
func (d *LIS3DH) WriteRegister(ctx context.Context, addr register.Address, value byte) error {
	if addr.ReadOnly() {
		return fmt.Errorf("%w: %s", ErrReadOnlyRegister, addr)
	}
	err := d.transaction(ctx, func() error {
		return d.transport.Write(ctx, []byte{byte(addr), value})
	})
	if err != nil {
		return fmt.Errorf("could not write %s: %w", addr, err)
	}
	return nil
}

// WhoAmI returns the raw identification byte. A genuine chip answers register.WhoAmIValue.
func (d *LIS3DH) WhoAmI(ctx context.Context) (byte, error) {
	return d.ReadRegister(ctx, register.WhoAmI)
}

func readDecoded[T any](ctx context.Context, d *LIS3DH, addr register.Address, decode func(byte) (T, error)) (T, error) {
	var zero T
	raw, err := d.ReadRegister(ctx, addr)
	if err != nil {
		return zero, err
	}
	v, err := decode(raw)
	if err != nil {
		return zero, fmt.Errorf("could not decode %s: %w", addr, err)
	}
	return v, nil
}

func (d *LIS3DH) ReadCtrlReg0(ctx context.Context) (register.CtrlReg0, error) {
	return readDecoded(ctx, d, register.CtrlReg0Addr, register.DecodeCtrlReg0)
}

func (d *LIS3DH) ReadTempCfg(ctx context.Context) (register.TempCfgReg, error) {
	return readDecoded(ctx, d, register.TempCfgRegAddr, register.DecodeTempCfgReg)
}

func (d *LIS3DH) ReadCtrlReg1(ctx context.Context) (register.CtrlReg1, error) {
	return readDecoded(ctx, d, register.CtrlReg1Addr, register.DecodeCtrlReg1)
}

func (d *LIS3DH) ReadCtrlReg2(ctx context.Context) (register.CtrlReg2, error) {
	return readDecoded(ctx, d, register.CtrlReg2Addr, register.DecodeCtrlReg2)
}

func (d *LIS3DH) ReadCtrlReg3(ctx context.Context) (register.CtrlReg3, error) {
	return readDecoded(ctx, d, register.CtrlReg3Addr, register.DecodeCtrlReg3)
}

func (d *LIS3DH) ReadCtrlReg4(ctx context.Context) (register.CtrlReg4, error) {
	return readDecoded(ctx, d, register.CtrlReg4Addr, register.DecodeCtrlReg4)
}

func (d *LIS3DH) ReadCtrlReg5(ctx context.Context) (register.CtrlReg5, error) {
	return readDecoded(ctx, d, register.CtrlReg5Addr, register.DecodeCtrlReg5)
}

func (d *LIS3DH) ReadStatus(ctx context.Context) (register.StatusReg, error) {
	return readDecoded(ctx, d, register.StatusRegAddr, register.DecodeStatusReg)
}

func (d *LIS3DH) ReadStatusAux(ctx context.Context) (register.StatusRegAux, error) {
	return readDecoded(ctx, d, register.StatusRegAuxAddr, register.DecodeStatusRegAux)
}

func (d *LIS3DH) ReadIntCfg(ctx context.Context, n Interrupt) (register.IntCfg, error) {
	regs, err := n.regs()
	if err != nil {
		return register.IntCfg{}, err
	}
	return readDecoded(ctx, d, regs.cfg, register.DecodeIntCfg)
}

// ReadIntSource reads the interrupt source register. With latching enabled
// the read also clears the interrupt.
func (d *LIS3DH) ReadIntSource(ctx context.Context, n Interrupt) (register.IntSrc, error) {
	regs, err := n.regs()
	if err != nil {
		return register.IntSrc{}, err
	}
	return readDecoded(ctx, d, regs.src, register.DecodeIntSrc)
}

func (d *LIS3DH) ReadIntThreshold(ctx context.Context, n Interrupt) (register.IntThreshold, error) {
	regs, err := n.regs()
	if err != nil {
		return register.IntThreshold{}, err
	}
	return readDecoded(ctx, d, regs.ths, register.DecodeIntThreshold)
}

func (d *LIS3DH) ReadIntDuration(ctx context.Context, n Interrupt) (register.IntDuration, error) {
	regs, err := n.regs()
	if err != nil {
		return register.IntDuration{}, err
	}
	return readDecoded(ctx, d, regs.dur, register.DecodeIntDuration)
}
