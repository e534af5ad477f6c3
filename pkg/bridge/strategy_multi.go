package bridge

import (
	"context"

	"dl100-bridge/pkg/poll"
)

// multiStrategy polls the device and publishes aggregated
// distance+velocity records.
type multiStrategy struct{ b *Bridge }

func newMultiStrategy(b *Bridge) RunStrategy { return &multiStrategy{b: b} }

func (s *multiStrategy) Mode() string { return ModeMulti }

func (s *multiStrategy) Run(ctx context.Context) error {
	b := s.b
	engine := poll.NewEngine(b.dev, b.logger, b.onPollTimeout)
	return engine.Run(ctx, poll.DefaultAttributes, b.cfg.Cycle(), b.cfg.Timeout(), b.observeMulti)
}
