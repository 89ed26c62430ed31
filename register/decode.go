package register

import "fmt"

// ErrNoCodec is returned by Decode for registers without a typed layout.
var ErrNoCodec = fmt.Errorf("register has no decoder")

// Decode interprets raw as the content of the register at a. Interrupt
// thresholds and durations decode to their 7-bit magnitude.
func Decode(a Address, raw byte) (any, error) {
	switch a {
	case StatusRegAuxAddr:
		return DecodeStatusRegAux(raw)
	case CtrlReg0Addr:
		return DecodeCtrlReg0(raw)
	case TempCfgRegAddr:
		return DecodeTempCfgReg(raw)
	case CtrlReg1Addr:
		return DecodeCtrlReg1(raw)
	case CtrlReg2Addr:
		return DecodeCtrlReg2(raw)
	case CtrlReg3Addr:
		return DecodeCtrlReg3(raw)
	case CtrlReg4Addr:
		return DecodeCtrlReg4(raw)
	case CtrlReg5Addr:
		return DecodeCtrlReg5(raw)
	case StatusRegAddr:
		return DecodeStatusReg(raw)
	case Int1Cfg, Int2Cfg:
		return DecodeIntCfg(raw)
	case Int1Src, Int2Src:
		return DecodeIntSrc(raw)
	case Int1Ths, Int2Ths:
		t, err := DecodeIntThreshold(raw)
		return t.Value(), err
	case Int1Duration, Int2Duration:
		d, err := DecodeIntDuration(raw)
		return d.Value(), err
	}
	return nil, fmt.Errorf("%w: %s", ErrNoCodec, a)
}
