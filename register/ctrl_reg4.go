package register

import "fmt"

const (
	ctrl4SIMOffset = 0
	ctrl4STOffset  = 1
	ctrl4HROffset  = 3
	ctrl4FSOffset  = 4
	ctrl4BLEOffset = 6
	ctrl4BDUOffset = 7
)

// SPIWireMode selects the serial interface mode (SIM).
type SPIWireMode byte

const (
	SPIFourWire  SPIWireMode = 0
	SPIThreeWire SPIWireMode = 1
)

func (m SPIWireMode) String() string {
	if m == SPIThreeWire {
		return "3-wire"
	}
	return "4-wire"
}

// SelfTest selects the self-test mode (ST[1:0]). Value 0b11 is not allowed.
type SelfTest byte

const (
	SelfTestNormal SelfTest = 0b00
	SelfTest0      SelfTest = 0b01
	SelfTest1      SelfTest = 0b10
)

func (s SelfTest) String() string {
	switch s {
	case SelfTestNormal:
		return "normal"
	case SelfTest0:
		return "self-test-0"
	case SelfTest1:
		return "self-test-1"
	default:
		return fmt.Sprintf("ST(%d)", byte(s))
	}
}

// FullScale selects the measurement range (FS[1:0]).
type FullScale byte

const (
	FullScale2G  FullScale = 0b00
	FullScale4G  FullScale = 0b01
	FullScale8G  FullScale = 0b10
	FullScale16G FullScale = 0b11
)

func (f FullScale) String() string {
	switch f {
	case FullScale2G:
		return "2g"
	case FullScale4G:
		return "4g"
	case FullScale8G:
		return "8g"
	case FullScale16G:
		return "16g"
	default:
		return fmt.Sprintf("FS(%d)", byte(f))
	}
}

// Endianness selects the output byte order (BLE).
type Endianness byte

const (
	LittleEndian Endianness = 0
	BigEndian    Endianness = 1
)

func (e Endianness) String() string {
	if e == BigEndian {
		return "big-endian"
	}
	return "little-endian"
}

// BlockDataUpdate selects whether output registers update continuously or
// hold until both bytes of a sample have been read (BDU).
type BlockDataUpdate byte

const (
	ContinuousUpdate BlockDataUpdate = 0
	UpdateAfterRead  BlockDataUpdate = 1
)

func (b BlockDataUpdate) String() string {
	if b == UpdateAfterRead {
		return "update-after-read"
	}
	return "continuous"
}

// CtrlReg4 configures range, resolution, self-test and output format.
type CtrlReg4 struct {
	SPIMode         SPIWireMode
	SelfTest        SelfTest
	HighResolution  OnOff
	FullScale       FullScale
	Endianness      Endianness
	BlockDataUpdate BlockDataUpdate
}

func DecodeCtrlReg4(raw byte) (CtrlReg4, error) {
	st := SelfTest((raw >> ctrl4STOffset) & twoBitMask)
	if st > SelfTest1 {
		return CtrlReg4{}, fmt.Errorf("%w: CTRL_REG4 self-test %02b", ErrUndecodable, byte(st))
	}
	return CtrlReg4{
		SPIMode:         SPIWireMode(bitState(raw, ctrl4SIMOffset)),
		SelfTest:        st,
		HighResolution:  bitState(raw, ctrl4HROffset),
		FullScale:       FullScale((raw >> ctrl4FSOffset) & twoBitMask),
		Endianness:      Endianness(bitState(raw, ctrl4BLEOffset)),
		BlockDataUpdate: BlockDataUpdate(bitState(raw, ctrl4BDUOffset)),
	}, nil
}

func (r CtrlReg4) Encode() byte {
	return OnOff(r.BlockDataUpdate).at(ctrl4BDUOffset) |
		OnOff(r.Endianness).at(ctrl4BLEOffset) |
		byte(r.FullScale&twoBitMask)<<ctrl4FSOffset |
		r.HighResolution.at(ctrl4HROffset) |
		byte(r.SelfTest&twoBitMask)<<ctrl4STOffset |
		OnOff(r.SPIMode).at(ctrl4SIMOffset)
}
