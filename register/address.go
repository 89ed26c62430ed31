// Package register holds the LIS3DH register map and the bit-exact codecs
// translating raw register bytes to typed values and back.
//
// Datasheet reference: ST LIS3DH, DocID17530 Rev 2, section 7 (register mapping).
package register

import (
	"fmt"
	"strings"
)

// Address is a 6-bit LIS3DH register offset.
type Address byte

const (
	StatusRegAuxAddr Address = 0x07
	OutADC1L         Address = 0x08
	OutADC1H         Address = 0x09
	OutADC2L         Address = 0x0A
	OutADC2H         Address = 0x0B
	OutADC3L         Address = 0x0C
	OutADC3H         Address = 0x0D
	WhoAmI           Address = 0x0F
	CtrlReg0Addr     Address = 0x1E
	TempCfgRegAddr   Address = 0x1F
	CtrlReg1Addr     Address = 0x20
	CtrlReg2Addr     Address = 0x21
	CtrlReg3Addr     Address = 0x22
	CtrlReg4Addr     Address = 0x23
	CtrlReg5Addr     Address = 0x24
	CtrlReg6Addr     Address = 0x25
	Reference        Address = 0x26
	StatusRegAddr    Address = 0x27
	OutXL            Address = 0x28
	OutXH            Address = 0x29
	OutYL            Address = 0x2A
	OutYH            Address = 0x2B
	OutZL            Address = 0x2C
	OutZH            Address = 0x2D
	FIFOCtrlReg      Address = 0x2E
	FIFOSrcReg       Address = 0x2F
	Int1Cfg          Address = 0x30
	Int1Src          Address = 0x31
	Int1Ths          Address = 0x32
	Int1Duration     Address = 0x33
	Int2Cfg          Address = 0x34
	Int2Src          Address = 0x35
	Int2Ths          Address = 0x36
	Int2Duration     Address = 0x37
	ClickCfg         Address = 0x38
	ClickSrc         Address = 0x39
	ClickThs         Address = 0x3A
	TimeLimit        Address = 0x3B
	TimeLatency      Address = 0x3C
	TimeWindow       Address = 0x3D
	ActThs           Address = 0x3E
	ActDur           Address = 0x3F
)

// WhoAmIValue is the fixed identification byte of the LIS3DH.
const WhoAmIValue = 0x33

// SPI address byte protocol bits. The read bit selects the transfer
// direction (cleared for writes), the increment bit enables address
// auto-increment on multi-byte transfers.
const (
	ReadBit      byte = 0x80
	IncrementBit byte = 0x40
	addressMask  byte = 0x3F
)

var names = map[Address]string{
	StatusRegAuxAddr: "STATUS_REG_AUX",
	OutADC1L:         "OUT_ADC1_L",
	OutADC1H:         "OUT_ADC1_H",
	OutADC2L:         "OUT_ADC2_L",
	OutADC2H:         "OUT_ADC2_H",
	OutADC3L:         "OUT_ADC3_L",
	OutADC3H:         "OUT_ADC3_H",
	WhoAmI:           "WHO_AM_I",
	CtrlReg0Addr:     "CTRL_REG0",
	TempCfgRegAddr:   "TEMP_CFG_REG",
	CtrlReg1Addr:     "CTRL_REG1",
	CtrlReg2Addr:     "CTRL_REG2",
	CtrlReg3Addr:     "CTRL_REG3",
	CtrlReg4Addr:     "CTRL_REG4",
	CtrlReg5Addr:     "CTRL_REG5",
	CtrlReg6Addr:     "CTRL_REG6",
	Reference:        "REFERENCE",
	StatusRegAddr:    "STATUS_REG",
	OutXL:            "OUT_X_L",
	OutXH:            "OUT_X_H",
	OutYL:            "OUT_Y_L",
	OutYH:            "OUT_Y_H",
	OutZL:            "OUT_Z_L",
	OutZH:            "OUT_Z_H",
	FIFOCtrlReg:      "FIFO_CTRL_REG",
	FIFOSrcReg:       "FIFO_SRC_REG",
	Int1Cfg:          "INT1_CFG",
	Int1Src:          "INT1_SRC",
	Int1Ths:          "INT1_THS",
	Int1Duration:     "INT1_DURATION",
	Int2Cfg:          "INT2_CFG",
	Int2Src:          "INT2_SRC",
	Int2Ths:          "INT2_THS",
	Int2Duration:     "INT2_DURATION",
	ClickCfg:         "CLICK_CFG",
	ClickSrc:         "CLICK_SRC",
	ClickThs:         "CLICK_THS",
	TimeLimit:        "TIME_LIMIT",
	TimeLatency:      "TIME_LATENCY",
	TimeWindow:       "TIME_WINDOW",
	ActThs:           "ACT_THS",
	ActDur:           "ACT_DUR",
}

func (a Address) String() string {
	if n, ok := names[a]; ok {
		return n
	}
	return fmt.Sprintf("0x%02X", byte(a))
}

// Known reports whether a is a documented register.
func (a Address) Known() bool {
	_, ok := names[a]
	return ok
}

// Addresses returns every documented register in ascending order.
func Addresses() []Address {
	res := make([]Address, 0, len(names))
	for a := StatusRegAuxAddr; a <= ActDur; a++ {
		if a.Known() {
			res = append(res, a)
		}
	}
	return res
}

// Lookup resolves a datasheet register name (case-insensitive).
func Lookup(name string) (Address, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for a, n := range names {
		if n == name {
			return a, true
		}
	}
	return 0, false
}

// AddressFromRaw strips the read and increment bits from an SPI address byte.
func AddressFromRaw(raw byte) Address {
	return Address(raw & addressMask)
}

// IsReadOnly reports whether writes to the register addressed by raw must be
// rejected. Protocol bits in raw are ignored.
func IsReadOnly(raw byte) bool {
	return AddressFromRaw(raw).ReadOnly()
}

// ReadOnly reports whether the register is read-only in hardware.
func (a Address) ReadOnly() bool {
	switch {
	case a >= StatusRegAuxAddr && a <= WhoAmI:
		// aux status, ADC outputs and identification
		return true
	case a >= StatusRegAddr && a <= OutZH:
		return true
	}
	switch a {
	case FIFOSrcReg, Int1Src, Int2Src, ClickSrc:
		return true
	}
	return false
}
