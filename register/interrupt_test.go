package register

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntCfg_Codec(t *testing.T) {
	r, err := DecodeIntCfg(0b1010_0101)
	require.NoError(t, err)
	assert.Equal(t, IntCfg{
		Combination: CombineAnd,
		ZHigh:       On,
		YLow:        On,
		XLow:        On,
	}, r)

	r = IntCfg{SixDirection: On, ZHigh: On, ZLow: On, YLow: On}
	assert.Equal(t, byte(0b0111_0100), r.Encode())
}

func TestIntSrc_Decode(t *testing.T) {
	r, err := DecodeIntSrc(0b0101_0100)
	require.NoError(t, err)
	assert.Equal(t, IntSrc{YLow: true, ZLow: true, Active: true}, r)

	// bit 7 is unused
	r, err = DecodeIntSrc(0b1000_0000)
	require.NoError(t, err)
	assert.Equal(t, IntSrc{}, r)
}

func TestIntThreshold_Validation(t *testing.T) {
	th, err := NewIntThreshold(0b0111_1111)
	require.NoError(t, err)
	assert.Equal(t, byte(127), th.Encode())

	_, err = NewIntThreshold(0b1101_1010)
	assert.ErrorIs(t, err, ErrValueOutOfRange)

	th, _ = NewIntThreshold(0x10)
	err = th.Set(0x80)
	assert.ErrorIs(t, err, ErrValueOutOfRange)
	assert.Equal(t, byte(0x10), th.Value(), "rejected value must not replace the current one")
}

func TestIntDuration_Validation(t *testing.T) {
	d, err := NewIntDuration(0b101_1010)
	require.NoError(t, err)
	assert.Equal(t, byte(0b101_1010), d.Encode())

	_, err = NewIntDuration(0b1101_1010)
	assert.ErrorIs(t, err, ErrValueOutOfRange)
}

func TestMagnitudes_RoundTrip(t *testing.T) {
	for v := 0; v < 128; v++ {
		th, err := NewIntThreshold(byte(v))
		require.NoError(t, err)
		decodedTh, err := DecodeIntThreshold(th.Encode())
		require.NoError(t, err)
		assert.Equal(t, th, decodedTh)

		d, err := NewIntDuration(byte(v))
		require.NoError(t, err)
		decodedD, err := DecodeIntDuration(d.Encode())
		require.NoError(t, err)
		assert.Equal(t, d, decodedD)
	}
	// decoding masks the unused bit
	th, err := DecodeIntThreshold(0xFF)
	require.NoError(t, err)
	assert.Equal(t, byte(0x7F), th.Value())
}

func TestStatusRegAux_Decode(t *testing.T) {
	r, err := DecodeStatusRegAux(0b10_0001)
	require.NoError(t, err)
	assert.True(t, r.OverrunOrNewData)
	assert.True(t, r.NewData1)
	assert.True(t, r.Overrun2)
	assert.False(t, r.Overrun321)

	r, err = DecodeStatusRegAux(0)
	require.NoError(t, err)
	assert.Equal(t, StatusRegAux{}, r)
}

func TestStatusReg_Decode(t *testing.T) {
	r, err := DecodeStatusReg(0b1000_1111)
	require.NoError(t, err)
	assert.Equal(t, StatusReg{
		XDataAvailable:   true,
		YDataAvailable:   true,
		ZDataAvailable:   true,
		ZYXDataAvailable: true,
		ZYXOverrun:       true,
	}, r)
}
