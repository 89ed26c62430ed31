package spibus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gobot.io/x/gobot/v2/drivers/spi"
)

// mockOps answers like a full-duplex SPI slave: nothing comes back while the
// address byte is clocked, the register content follows one byte behind.
type mockOps struct {
	mock.Mock
}

func (m *mockOps) ReadCommandData(command []byte, data []byte) error {
	args := m.Called(command, data)
	if len(data) > 0 {
		data[0] = 0x00
	}
	if reply, ok := args.Get(0).([]byte); ok {
		copy(data[1:], reply)
	}
	return args.Error(1)
}

func (m *mockOps) WriteBytes(data []byte) error {
	return m.Called(data).Error(0)
}

func TestGobot_Transfer(t *testing.T) {
	ops := &mockOps{}
	ops.On("ReadCommandData", []byte{0x8F, 0xFF}, mock.Anything).Return([]byte{0x33}, nil).Once()
	b := &Gobot{ops: ops}

	buf := []byte{0x8F, 0xFF}
	require.NoError(t, b.Transfer(context.Background(), buf))
	assert.Equal(t, []byte{0x8F, 0x33}, buf)
	ops.AssertExpectations(t)
}

func TestGobot_TransferFullLength(t *testing.T) {
	ops := &mockOps{}
	ops.On("ReadCommandData", mock.Anything, mock.Anything).Return([]byte{0x01, 0x02, 0x03}, nil).Once()
	b := &Gobot{ops: ops}

	buf := []byte{0xE8, 0xFF, 0xFF, 0xFF}
	require.NoError(t, b.Transfer(context.Background(), buf))
	assert.Equal(t, []byte{0xE8, 0x01, 0x02, 0x03}, buf)
	tx := ops.Calls[0].Arguments.Get(0).([]byte)
	rx := ops.Calls[0].Arguments.Get(1).([]byte)
	assert.Len(t, tx, len(buf))
	assert.Len(t, rx, len(buf))
}

// duplexChip is a gobot SPI system device backed by a register file.
type duplexChip struct {
	regs [64]byte
}

func (c *duplexChip) TxRx(tx []byte, rx []byte) error {
	if len(rx) == 0 {
		return nil
	}
	addr := int(tx[0] & 0x3F)
	rx[0] = 0x00
	for i := 1; i < len(rx); i++ {
		rx[i] = c.regs[(addr+i-1)&0x3F]
	}
	return nil
}

func (c *duplexChip) Close() error { return nil }

func TestGobot_TransferOnConnection(t *testing.T) {
	chip := &duplexChip{}
	chip.regs[0x0F] = 0x33
	b := &Gobot{ops: spi.NewConnection(chip)}

	buf := []byte{0x8F, 0xFF}
	require.NoError(t, b.Transfer(context.Background(), buf))
	assert.Equal(t, byte(0x33), buf[1])
	assert.Equal(t, byte(0x8F), buf[0])
}

func TestGobot_Write(t *testing.T) {
	ops := &mockOps{}
	ops.On("WriteBytes", []byte{0x23, 0x88}).Return(nil).Once()
	b := &Gobot{ops: ops}

	require.NoError(t, b.Write(context.Background(), []byte{0x23, 0x88}))
	ops.AssertExpectations(t)
}

func TestGobot_Errors(t *testing.T) {
	busErr := errors.New("ioctl failed")
	ops := &mockOps{}
	ops.On("ReadCommandData", mock.Anything, mock.Anything).Return(nil, busErr).Once()
	ops.On("WriteBytes", mock.Anything).Return(busErr).Once()
	b := &Gobot{ops: ops}

	assert.ErrorIs(t, b.Transfer(context.Background(), []byte{0xA0, 0xFF}), busErr)
	assert.ErrorIs(t, b.Write(context.Background(), []byte{0x20, 0x00}), busErr)
}

func TestGobot_NotInitialized(t *testing.T) {
	b := &Gobot{}
	assert.Error(t, b.Transfer(context.Background(), []byte{0xA0, 0xFF}))
	assert.Error(t, b.Write(context.Background(), []byte{0x20, 0x00}))
	// empty buffers never reach the bus
	assert.NoError(t, b.Write(context.Background(), nil))
}
