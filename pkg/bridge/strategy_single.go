package bridge

import (
	"context"

	"dl100-bridge/pkg/poll"
)

// singleStrategy polls the device and publishes one frame per reading, no
// aggregation.
type singleStrategy struct{ b *Bridge }

func newSingleStrategy(b *Bridge) RunStrategy { return &singleStrategy{b: b} }

func (s *singleStrategy) Mode() string { return ModeSingle }

func (s *singleStrategy) Run(ctx context.Context) error {
	b := s.b
	engine := poll.NewEngine(b.dev, b.logger, b.onPollTimeout)
	return engine.Run(ctx, poll.DefaultAttributes, b.cfg.Cycle(), b.cfg.Timeout(), b.observeSingle)
}
