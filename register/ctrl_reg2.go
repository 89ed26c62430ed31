package register

import "fmt"

const (
	ctrl2HPIA1Offset   = 0
	ctrl2HPIA2Offset   = 1
	ctrl2HPClickOffset = 2
	ctrl2FDSOffset     = 3
	ctrl2HPCFOffset    = 4
	ctrl2HPMOffset     = 6
	twoBitMask         = 0b11
)

// HighPassMode selects the high-pass filter mode (HPM[1:0]).
type HighPassMode byte

const (
	HighPassNormalResetByReference HighPassMode = 0b00
	HighPassReferenceSignal        HighPassMode = 0b01
	HighPassNormal                 HighPassMode = 0b10
	HighPassAutoResetOnInterrupt   HighPassMode = 0b11
)

func (m HighPassMode) String() string {
	switch m {
	case HighPassNormalResetByReference:
		return "normal-reset-by-reference"
	case HighPassReferenceSignal:
		return "reference-signal"
	case HighPassNormal:
		return "normal"
	case HighPassAutoResetOnInterrupt:
		return "auto-reset-on-interrupt"
	default:
		return fmt.Sprintf("HPM(%d)", byte(m))
	}
}

// HighPassCutoff selects the high-pass cutoff (HPCF[2:1]). The resulting
// frequency depends on the data rate:
//
//	HPCF | 1Hz   | 10Hz | 25Hz | 50Hz | 100Hz | 200Hz | 400Hz | 1.6kHz | 5kHz
//	00   | 0.02  | 0.2  | 0.5  | 1    | 2     | 4     | 8     | 32     | 100
//	01   | 0.008 | 0.08 | 0.2  | 0.5  | 1     | 2     | 4     | 16     | 50
//	10   | 0.004 | 0.04 | 0.1  | 0.2  | 0.5   | 1     | 2     | 8      | 25
//	11   | 0.002 | 0.02 | 0.05 | 0.1  | 0.2   | 0.5   | 1     | 4      | 12
type HighPassCutoff byte

const (
	HighPassCutoff0 HighPassCutoff = 0b00
	HighPassCutoff1 HighPassCutoff = 0b01
	HighPassCutoff2 HighPassCutoff = 0b10
	HighPassCutoff3 HighPassCutoff = 0b11
)

func (c HighPassCutoff) String() string {
	if c > HighPassCutoff3 {
		return fmt.Sprintf("HPCF(%d)", byte(c))
	}
	return fmt.Sprintf("cutoff-%d", byte(c))
}

// FilteredDataSelection routes filtered data (FDS).
type FilteredDataSelection byte

const (
	FilterBypassed FilteredDataSelection = 0
	FilterToFIFO   FilteredDataSelection = 1
)

func (f FilteredDataSelection) String() string {
	if f == FilterToFIFO {
		return "to-fifo"
	}
	return "bypassed"
}

// CtrlReg2 configures the high-pass filter.
type CtrlReg2 struct {
	HighPassIA1   OnOff
	HighPassIA2   OnOff
	HighPassClick OnOff
	FilteredData  FilteredDataSelection
	Cutoff        HighPassCutoff
	Mode          HighPassMode
}

func DecodeCtrlReg2(raw byte) (CtrlReg2, error) {
	// both 2-bit fields define all four variants
	return CtrlReg2{
		HighPassIA1:   bitState(raw, ctrl2HPIA1Offset),
		HighPassIA2:   bitState(raw, ctrl2HPIA2Offset),
		HighPassClick: bitState(raw, ctrl2HPClickOffset),
		FilteredData:  FilteredDataSelection(bitState(raw, ctrl2FDSOffset)),
		Cutoff:        HighPassCutoff((raw >> ctrl2HPCFOffset) & twoBitMask),
		Mode:          HighPassMode((raw >> ctrl2HPMOffset) & twoBitMask),
	}, nil
}

func (r CtrlReg2) Encode() byte {
	return byte(r.Mode&twoBitMask)<<ctrl2HPMOffset |
		byte(r.Cutoff&twoBitMask)<<ctrl2HPCFOffset |
		OnOff(r.FilteredData).at(ctrl2FDSOffset) |
		r.HighPassClick.at(ctrl2HPClickOffset) |
		r.HighPassIA2.at(ctrl2HPIA2Offset) |
		r.HighPassIA1.at(ctrl2HPIA1Offset)
}
