// Package stream samples the accelerometer periodically and publishes the
// readings as JSON.
package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mklimuk/lis3dh/accel"
)

// Publisher delivers a payload to a topic.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}

// Source yields scaled acceleration samples. *accel.LIS3DH implements it.
type Source interface {
	Acceleration(ctx context.Context) (accel.Acceleration, error)
}

var _ Source = &accel.LIS3DH{}

// Sample is the published message.
type Sample struct {
	Time time.Time         `json:"time"`
	X    int32             `json:"x"`
	Y    int32             `json:"y"`
	Z    int32             `json:"z"`
	Tilt accel.Orientation `json:"tilt"`
}

func NewSample(t time.Time, a accel.Acceleration) Sample {
	return Sample{Time: t, X: a.X, Y: a.Y, Z: a.Z, Tilt: accel.Tilt(a)}
}

type Options struct {
	Topic    string
	Interval time.Duration
	// Count stops the loop after that many published samples. Zero runs until ctx is done.
	Count int
}

const defaultInterval = 100 * time.Millisecond

// Run publishes one sample per interval until ctx is done or Count samples
// were sent. Failed reads are logged and skipped, a failed publish ends the loop.
func Run(ctx context.Context, src Source, pub Publisher, opts Options) error {
	if opts.Interval <= 0 {
		opts.Interval = defaultInterval
	}
	ticker := time.NewTicker(opts.Interval)
	defer ticker.Stop()

	sent := 0
	for {
		select {
		case <-ctx.Done():
			return nil
		case t := <-ticker.C:
			a, err := src.Acceleration(ctx)
			if err != nil {
				slog.WarnContext(ctx, "could not read acceleration", "error", err)
				continue
			}
			payload, err := json.Marshal(NewSample(t, a))
			if err != nil {
				return fmt.Errorf("could not encode sample: %w", err)
			}
			if err := pub.Publish(ctx, opts.Topic, payload); err != nil {
				if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
					return nil
				}
				return fmt.Errorf("could not publish sample: %w", err)
			}
			slog.DebugContext(ctx, "sample published", "topic", opts.Topic, "acceleration", a.String())
			sent++
			if opts.Count > 0 && sent >= opts.Count {
				return nil
			}
		}
	}
}
