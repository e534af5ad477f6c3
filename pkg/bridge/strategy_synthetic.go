package bridge

import (
	"context"
	"time"

	"dl100-bridge/pkg/aggregate"
	"dl100-bridge/pkg/frame"
	"dl100-bridge/pkg/synthetic"
)

// syntheticStrategy generates records locally instead of polling a device.
// The frame format still follows the configured mode so subscribers see the
// same wire shape either way.
type syntheticStrategy struct{ b *Bridge }

func newSyntheticStrategy(b *Bridge) RunStrategy { return &syntheticStrategy{b: b} }

func (s *syntheticStrategy) Mode() string { return ModeSynthetic }

func (s *syntheticStrategy) Run(ctx context.Context) error {
	b := s.b
	src := b.synth
	if src == nil {
		src = synthetic.New(nil, nil)
	}

	cycle := b.cfg.Cycle()
	prev := synthetic.BaseDistance

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		start := time.Now()

		var rec frame.Record
		rec, prev = src.Tick(prev, b.cfg.Poll.CycleSeconds, b.cfg.InjectZero)
		b.tsink.EmitReading(aggregate.AttrDistance, rec.Distance)
		b.tsink.EmitReading(aggregate.AttrVelocity, rec.Velocity)

		if b.cfg.Mode == ModeSingle {
			b.publish(frame.EncodeSingle(frame.SingleRecord{TS: rec.TS, Kind: frame.KindDistance, Value: rec.Distance}), ModeSynthetic, frame.KindDistance, rec.Distance)
			b.publish(frame.EncodeSingle(frame.SingleRecord{TS: rec.TS, Kind: frame.KindVelocity, Value: rec.Velocity}), ModeSynthetic, frame.KindVelocity, rec.Velocity)
		} else {
			b.publish(frame.EncodeRecord(rec), ModeSynthetic, rec.Distance, rec.Velocity)
		}

		remaining := cycle - time.Since(start)
		if remaining <= 0 {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(remaining):
		}
	}
}
