package register

import "fmt"

const (
	ctrl0Reserved     byte = 0b001_0000
	ctrl0ReservedMask byte = 0b111_1111
	ctrl0PullUpOffset      = 7
)

// CtrlReg0 configures the SDO/SA0 pin pull-up. Bits 0..6 must always hold 0x10.
type CtrlReg0 struct {
	PullUpConnected OnOff
}

func DecodeCtrlReg0(raw byte) (CtrlReg0, error) {
	if raw&ctrl0ReservedMask != ctrl0Reserved {
		return CtrlReg0{}, fmt.Errorf("%w: CTRL_REG0 reserved bits %07b, expected %07b", ErrUndecodable, raw&ctrl0ReservedMask, ctrl0Reserved)
	}
	return CtrlReg0{PullUpConnected: bitState(raw, ctrl0PullUpOffset)}, nil
}

func (r CtrlReg0) Encode() byte {
	return ctrl0Reserved | r.PullUpConnected.at(ctrl0PullUpOffset)
}
