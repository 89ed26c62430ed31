package register

const (
	ctrl3OverrunOffset   = 1
	ctrl3WatermarkOffset = 2
	ctrl3DA321Offset     = 3
	ctrl3ZYXDAOffset     = 4
	ctrl3IA2Offset       = 5
	ctrl3IA1Offset       = 6
	ctrl3ClickOffset     = 7
)

// CtrlReg3 routes interrupt sources to the INT1 pin. Bit 0 is unused.
type CtrlReg3 struct {
	Overrun      OnOff
	Watermark    OnOff
	DataReady321 OnOff
	DataReadyZYX OnOff
	IA2          OnOff
	IA1          OnOff
	Click        OnOff
}

func DecodeCtrlReg3(raw byte) (CtrlReg3, error) {
	return CtrlReg3{
		Overrun:      bitState(raw, ctrl3OverrunOffset),
		Watermark:    bitState(raw, ctrl3WatermarkOffset),
		DataReady321: bitState(raw, ctrl3DA321Offset),
		DataReadyZYX: bitState(raw, ctrl3ZYXDAOffset),
		IA2:          bitState(raw, ctrl3IA2Offset),
		IA1:          bitState(raw, ctrl3IA1Offset),
		Click:        bitState(raw, ctrl3ClickOffset),
	}, nil
}

func (r CtrlReg3) Encode() byte {
	return r.Click.at(ctrl3ClickOffset) |
		r.IA1.at(ctrl3IA1Offset) |
		r.IA2.at(ctrl3IA2Offset) |
		r.DataReadyZYX.at(ctrl3ZYXDAOffset) |
		r.DataReady321.at(ctrl3DA321Offset) |
		r.Watermark.at(ctrl3WatermarkOffset) |
		r.Overrun.at(ctrl3OverrunOffset)
}
