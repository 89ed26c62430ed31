// Package busctx carries per-call bus options through a context.
package busctx

import "context"

type ctxIndex int

const (
	ctxIndexVerbose ctxIndex = iota
	ctxIndexLabel
)

// IsVerbose reports whether transports should dump every transaction.
func IsVerbose(ctx context.Context) bool {
	val, ok := ctx.Value(ctxIndexVerbose).(bool)
	if !ok {
		return false
	}
	return val
}

func SetVerbose(ctx context.Context, value bool) context.Context {
	return context.WithValue(ctx, ctxIndexVerbose, value)
}

// Label returns the device label attached to ctx, used to tell buses apart in dumps.
func Label(ctx context.Context) string {
	val, _ := ctx.Value(ctxIndexLabel).(string)
	return val
}

func SetLabel(ctx context.Context, label string) context.Context {
	return context.WithValue(ctx, ctxIndexLabel, label)
}
