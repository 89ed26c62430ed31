// Package spibus provides lis3dh.SPIBus and lis3dh.ChipSelect implementations
// on top of periph.io and gobot.
package spibus

import (
	"context"
	"encoding/hex"
	"log/slog"

	"github.com/mklimuk/lis3dh/busctx"
)

func dump(ctx context.Context, op string, tx, rx []byte) {
	if !busctx.IsVerbose(ctx) {
		return
	}
	attrs := []any{"op", op, "tx", hex.EncodeToString(tx)}
	if rx != nil {
		attrs = append(attrs, "rx", hex.EncodeToString(rx))
	}
	if label := busctx.Label(ctx); label != "" {
		attrs = append(attrs, "bus", label)
	}
	slog.DebugContext(ctx, "spi transaction", attrs...)
}
