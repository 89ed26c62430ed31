package register

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCtrlReg0_Decode(t *testing.T) {
	r, err := DecodeCtrlReg0(0b1001_0000)
	require.NoError(t, err)
	assert.Equal(t, On, r.PullUpConnected)

	r, err = DecodeCtrlReg0(0b0001_0000)
	require.NoError(t, err)
	assert.Equal(t, Off, r.PullUpConnected)
}

func TestCtrlReg0_ReservedPattern(t *testing.T) {
	assert.Equal(t, byte(0x10), CtrlReg0{}.Encode())
	assert.Equal(t, byte(0x90), CtrlReg0{PullUpConnected: On}.Encode())
	for _, raw := range []byte{0x00, 0x11, 0x80, 0xFF} {
		t.Run(fmt.Sprintf("%#02x", raw), func(t *testing.T) {
			_, err := DecodeCtrlReg0(raw)
			assert.ErrorIs(t, err, ErrUndecodable)
		})
	}
}

func TestCtrlReg1_Decode(t *testing.T) {
	r, err := DecodeCtrlReg1(0b10_0101)
	require.NoError(t, err)
	assert.Equal(t, CtrlReg1{
		XEnable:  On,
		YEnable:  Off,
		ZEnable:  On,
		LowPower: Off,
		DataRate: Rate10Hz,
	}, r)
}

func TestCtrlReg1_Encode(t *testing.T) {
	r := DefaultCtrlReg1()
	assert.Equal(t, byte(0x07), r.Encode())
	r.DataRate = Rate50Hz
	assert.Equal(t, byte(0b0100_0111), r.Encode())
	r.LowPower = On
	assert.Equal(t, byte(0b0100_1111), r.Encode())
}

func TestCtrlReg1_UndecodableDataRate(t *testing.T) {
	for odr := byte(10); odr < 16; odr++ {
		t.Run(fmt.Sprint(odr), func(t *testing.T) {
			_, err := DecodeCtrlReg1(odr << 4)
			assert.ErrorIs(t, err, ErrUndecodable)
		})
	}
}

func TestCtrlReg2_Decode(t *testing.T) {
	r, err := DecodeCtrlReg2(0b0110_0101)
	require.NoError(t, err)
	assert.Equal(t, CtrlReg2{
		HighPassIA1:   On,
		HighPassIA2:   Off,
		HighPassClick: On,
		FilteredData:  FilterBypassed,
		Cutoff:        HighPassCutoff2,
		Mode:          HighPassReferenceSignal,
	}, r)
}

func TestCtrlReg2_Encode(t *testing.T) {
	assert.Equal(t, byte(0), CtrlReg2{}.Encode())
	r := CtrlReg2{
		HighPassIA1:   On,
		HighPassIA2:   On,
		HighPassClick: On,
		FilteredData:  FilterToFIFO,
		Cutoff:        HighPassCutoff2,
		Mode:          HighPassReferenceSignal,
	}
	assert.Equal(t, byte(0b0110_1111), r.Encode())
}

func TestCtrlReg3_Codec(t *testing.T) {
	r, err := DecodeCtrlReg3(0b1010_0101)
	require.NoError(t, err)
	assert.Equal(t, CtrlReg3{
		Click:     On,
		IA2:       On,
		Watermark: On,
	}, r)

	r = CtrlReg3{IA1: On, IA2: On, DataReadyZYX: On, Watermark: On}
	assert.Equal(t, byte(0b0111_0100), r.Encode())
}

func TestCtrlReg4_Codec(t *testing.T) {
	r, err := DecodeCtrlReg4(0b0101_0100)
	require.NoError(t, err)
	assert.Equal(t, SelfTest1, r.SelfTest)
	assert.Equal(t, FullScale4G, r.FullScale)
	assert.Equal(t, BigEndian, r.Endianness)

	r = CtrlReg4{
		SPIMode:        SPIThreeWire,
		SelfTest:       SelfTest1,
		HighResolution: On,
		FullScale:      FullScale8G,
		Endianness:     BigEndian,
	}
	assert.Equal(t, byte(0b0110_1101), r.Encode())
}

func TestCtrlReg4_UndecodableSelfTest(t *testing.T) {
	_, err := DecodeCtrlReg4(0b0000_0110)
	assert.ErrorIs(t, err, ErrUndecodable)
}

func TestCtrlReg5_Codec(t *testing.T) {
	r, err := DecodeCtrlReg5(0b1000_0101)
	require.NoError(t, err)
	assert.Equal(t, CtrlReg5{
		Boot:    BootReboot,
		D4DInt1: On,
		D4DInt2: On,
	}, r)
	assert.Equal(t, byte(0b1000_0101), r.Encode())

	r = CtrlReg5{Boot: BootReboot, D4DInt1: On}
	assert.Equal(t, byte(0b1000_0100), r.Encode())
}

func TestCtrlReg5_EncodeLegacy(t *testing.T) {
	r := CtrlReg5{D4DInt2: On}
	assert.Equal(t, byte(0b0000_0001), r.Encode())
	assert.Equal(t, byte(0b0000_0010), r.EncodeLegacy(), "legacy encoding moves the INT2 4D bit onto the INT2 latch bit")

	// the legacy byte decodes as a latch request, not as 4D detection
	decoded, err := DecodeCtrlReg5(r.EncodeLegacy())
	require.NoError(t, err)
	assert.Equal(t, CtrlReg5{LatchInt2: On}, decoded)

	// without D4DInt2 both encodings agree
	r = CtrlReg5{LatchInt2: On, D4DInt1: On, LatchInt1: On, FIFOEnable: On, Boot: BootReboot}
	assert.Equal(t, r.Encode(), r.EncodeLegacy())
}

func TestTempCfgReg_Codec(t *testing.T) {
	tests := []struct {
		raw      byte
		expected TempCfgReg
	}{
		{0x00, TempCfgReg{}},
		{0x40, TempCfgReg{Temperature: On}},
		{0x80, TempCfgReg{ADC: On}},
		{0xC0, TempCfgReg{Temperature: On, ADC: On}},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%#02x", test.raw), func(t *testing.T) {
			r, err := DecodeTempCfgReg(test.raw)
			require.NoError(t, err)
			assert.Equal(t, test.expected, r)
			assert.Equal(t, test.raw, test.expected.Encode())
		})
	}
}
