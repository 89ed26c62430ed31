package lis3dh

import (
	"context"
	"fmt"
)

var ErrBusBusy = fmt.Errorf("SPI bus is busy (transfer not completed)")

// BusTransferer exchanges len(buffer) bytes full-duplex. The first byte is the
// register address; reply bytes overwrite every position after it.
type BusTransferer interface {
	Transfer(ctx context.Context, buffer []byte) error
}

type BusWriter interface {
	Write(ctx context.Context, buffer []byte) error
}

type SPIBus interface {
	BusTransferer
	BusWriter
}

// ChipSelect drives the CS line: Select pulls it low, Release pulls it high.
type ChipSelect interface {
	Select(ctx context.Context) error
	Release(ctx context.Context) error
}
