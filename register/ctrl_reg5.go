package register

const (
	ctrl5D4DInt2Offset = 0
	ctrl5LIRInt2Offset = 1
	ctrl5D4DInt1Offset = 2
	ctrl5LIRInt1Offset = 3
	ctrl5FIFOEnOffset  = 6
	ctrl5BootOffset    = 7
)

// BootMode requests a reload of the trimming parameters (BOOT).
type BootMode byte

const (
	BootNormal BootMode = 0
	BootReboot BootMode = 1
)

func (b BootMode) String() string {
	if b == BootReboot {
		return "reboot-memory-content"
	}
	return "normal"
}

// CtrlReg5 configures FIFO, interrupt latching and 4D detection.
type CtrlReg5 struct {
	D4DInt2    OnOff
	LatchInt2  OnOff
	D4DInt1    OnOff
	LatchInt1  OnOff
	FIFOEnable OnOff
	Boot       BootMode
}

func DecodeCtrlReg5(raw byte) (CtrlReg5, error) {
	return CtrlReg5{
		D4DInt2:    bitState(raw, ctrl5D4DInt2Offset),
		LatchInt2:  bitState(raw, ctrl5LIRInt2Offset),
		D4DInt1:    bitState(raw, ctrl5D4DInt1Offset),
		LatchInt1:  bitState(raw, ctrl5LIRInt1Offset),
		FIFOEnable: bitState(raw, ctrl5FIFOEnOffset),
		Boot:       BootMode(bitState(raw, ctrl5BootOffset)),
	}, nil
}

func (r CtrlReg5) Encode() byte {
	return OnOff(r.Boot).at(ctrl5BootOffset) |
		r.FIFOEnable.at(ctrl5FIFOEnOffset) |
		r.LatchInt1.at(ctrl5LIRInt1Offset) |
		r.D4DInt1.at(ctrl5D4DInt1Offset) |
		r.LatchInt2.at(ctrl5LIRInt2Offset) |
		r.D4DInt2.at(ctrl5D4DInt2Offset)
}

// EncodeLegacy reproduces the byte written by the first driver releases,
// which placed D4DInt2 on the LatchInt2 bit. Use it only to compare against
// configurations captured from those releases.
func (r CtrlReg5) EncodeLegacy() byte {
	return OnOff(r.Boot).at(ctrl5BootOffset) |
		r.FIFOEnable.at(ctrl5FIFOEnOffset) |
		r.LatchInt1.at(ctrl5LIRInt1Offset) |
		r.D4DInt1.at(ctrl5D4DInt1Offset) |
		r.LatchInt2.at(ctrl5LIRInt2Offset) |
		r.D4DInt2.at(ctrl5LIRInt2Offset)
}
