package register

const (
	status1Offset       = 0
	status2Offset       = 1
	status3Offset       = 2
	status321Offset     = 3
	status1OverOffset   = 4
	status2OverOffset   = 5
	status3OverOffset   = 6
	status321OverOffset = 7
)

// StatusRegAux reports new data and overrun on the auxiliary ADC channels.
type StatusRegAux struct {
	NewData1         bool
	NewData2         bool
	NewData3         bool
	NewData321       bool
	Overrun1         bool
	Overrun2         bool
	Overrun3         bool
	Overrun321       bool
	OverrunOrNewData bool
}

func DecodeStatusRegAux(raw byte) (StatusRegAux, error) {
	return StatusRegAux{
		NewData1:         bitSet(raw, status1Offset),
		NewData2:         bitSet(raw, status2Offset),
		NewData3:         bitSet(raw, status3Offset),
		NewData321:       bitSet(raw, status321Offset),
		Overrun1:         bitSet(raw, status1OverOffset),
		Overrun2:         bitSet(raw, status2OverOffset),
		Overrun3:         bitSet(raw, status3OverOffset),
		Overrun321:       bitSet(raw, status321OverOffset),
		OverrunOrNewData: raw != 0,
	}, nil
}

// StatusReg reports new data and overrun on the acceleration axes.
type StatusReg struct {
	XDataAvailable   bool
	YDataAvailable   bool
	ZDataAvailable   bool
	ZYXDataAvailable bool
	XOverrun         bool
	YOverrun         bool
	ZOverrun         bool
	ZYXOverrun       bool
}

func DecodeStatusReg(raw byte) (StatusReg, error) {
	return StatusReg{
		XDataAvailable:   bitSet(raw, status1Offset),
		YDataAvailable:   bitSet(raw, status2Offset),
		ZDataAvailable:   bitSet(raw, status3Offset),
		ZYXDataAvailable: bitSet(raw, status321Offset),
		XOverrun:         bitSet(raw, status1OverOffset),
		YOverrun:         bitSet(raw, status2OverOffset),
		ZOverrun:         bitSet(raw, status3OverOffset),
		ZYXOverrun:       bitSet(raw, status321OverOffset),
	}, nil
}
