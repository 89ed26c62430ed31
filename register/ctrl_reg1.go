package register

import "fmt"

const (
	ctrl1XEnOffset  = 0
	ctrl1YEnOffset  = 1
	ctrl1ZEnOffset  = 2
	ctrl1LPEnOffset = 3
	ctrl1ODROffset  = 4
)

// OutputDataRate selects the sampling frequency (ODR[3:0]).
type OutputDataRate byte

const (
	PowerDown OutputDataRate = 0b0000
	Rate1Hz   OutputDataRate = 0b0001
	Rate10Hz  OutputDataRate = 0b0010
	Rate25Hz  OutputDataRate = 0b0011
	Rate50Hz  OutputDataRate = 0b0100
	Rate100Hz OutputDataRate = 0b0101
	Rate200Hz OutputDataRate = 0b0110
	Rate400Hz OutputDataRate = 0b0111
	// RateLowPower1600Hz is only valid in low-power mode.
	RateLowPower1600Hz OutputDataRate = 0b1000
	// Rate1344HzOr5376Hz runs at 1.344 kHz in normal and high-resolution modes
	// and at 5.376 kHz in low-power mode.
	Rate1344HzOr5376Hz OutputDataRate = 0b1001
)

func (o OutputDataRate) String() string {
	switch o {
	case PowerDown:
		return "power-down"
	case Rate1Hz:
		return "1Hz"
	case Rate10Hz:
		return "10Hz"
	case Rate25Hz:
		return "25Hz"
	case Rate50Hz:
		return "50Hz"
	case Rate100Hz:
		return "100Hz"
	case Rate200Hz:
		return "200Hz"
	case Rate400Hz:
		return "400Hz"
	case RateLowPower1600Hz:
		return "1.6kHz"
	case Rate1344HzOr5376Hz:
		return "1.344kHz/5.376kHz"
	default:
		return fmt.Sprintf("ODR(%d)", byte(o))
	}
}

func decodeOutputDataRate(v byte) (OutputDataRate, error) {
	if v > byte(Rate1344HzOr5376Hz) {
		return 0, fmt.Errorf("%w: output data rate %04b", ErrUndecodable, v)
	}
	return OutputDataRate(v), nil
}

// CtrlReg1 enables the axes and selects data rate and power mode.
// LowPower set to On selects low-power mode, Off selects normal or
// high-resolution mode depending on CtrlReg4.HighResolution.
type CtrlReg1 struct {
	XEnable  OnOff
	YEnable  OnOff
	ZEnable  OnOff
	LowPower OnOff
	DataRate OutputDataRate
}

// DefaultCtrlReg1 is the power-on value: all axes enabled, device powered down.
func DefaultCtrlReg1() CtrlReg1 {
	return CtrlReg1{XEnable: On, YEnable: On, ZEnable: On}
}

func DecodeCtrlReg1(raw byte) (CtrlReg1, error) {
	odr, err := decodeOutputDataRate(raw >> ctrl1ODROffset)
	if err != nil {
		return CtrlReg1{}, fmt.Errorf("CTRL_REG1: %w", err)
	}
	return CtrlReg1{
		XEnable:  bitState(raw, ctrl1XEnOffset),
		YEnable:  bitState(raw, ctrl1YEnOffset),
		ZEnable:  bitState(raw, ctrl1ZEnOffset),
		LowPower: bitState(raw, ctrl1LPEnOffset),
		DataRate: odr,
	}, nil
}

func (r CtrlReg1) Encode() byte {
	return byte(r.DataRate&0x0F)<<ctrl1ODROffset |
		r.LowPower.at(ctrl1LPEnOffset) |
		r.ZEnable.at(ctrl1ZEnOffset) |
		r.YEnable.at(ctrl1YEnOffset) |
		r.XEnable.at(ctrl1XEnOffset)
}
