package bridge

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"dl100-bridge/pkg/aggregate"
	"dl100-bridge/pkg/config"
	"dl100-bridge/pkg/frame"
	"dl100-bridge/pkg/gate"
	"dl100-bridge/pkg/poll"
	"dl100-bridge/pkg/pubsub"
	"dl100-bridge/pkg/synthetic"
	"dl100-bridge/pkg/telemetry"
)

// Mode constants. Single and multi come from config; synthetic is selected by
// the synthetic flag and reuses whichever frame format the mode asks for.
const (
	ModeSingle    = config.ModeSingle
	ModeMulti     = config.ModeMulti
	ModeSynthetic = "synthetic"
)

// Bridge polls the scanner (or a synthetic source), aggregates readings per
// the configured mode and hands encoded frames to the publish channel.
type Bridge struct {
	cfg    *config.Config
	logger *log.Logger
	sock   pubsub.Socket
	dev    poll.Device
	buf    *aggregate.Buffer
	gate   *gate.Gate
	tsink  TelemetrySink

	// synth is only consulted in synthetic runs. Tests inject a seeded
	// source; production builds one lazily.
	synth *synthetic.Source

	// mu serialises Observe+TryComplete so a concurrent reading cannot be
	// absorbed between the merge and the completion check.
	mu sync.Mutex

	// stopCh is created in New and closed exactly once by Stop, so Stop
	// and Start never share a mutable cancel func. A Stop issued before
	// Start still cancels the run loop the moment it begins.
	stopCh   chan struct{}
	stopOnce sync.Once
}

// New creates a Bridge publishing on sock. dev may be nil for synthetic runs.
func New(cfg *config.Config, logger *log.Logger, sock pubsub.Socket, dev poll.Device, pub telemetry.TelemetryPublisher) *Bridge {
	return &Bridge{
		cfg:    cfg,
		logger: logger,
		sock:   sock,
		dev:    dev,
		buf:    aggregate.NewBuffer(),
		gate:   gate.New(),
		tsink:  NewTelemetrySink(pub),
		stopCh: make(chan struct{}),
	}
}

// NewWithSource creates a Bridge with an injected synthetic source for testing.
func NewWithSource(cfg *config.Config, logger *log.Logger, sock pubsub.Socket, src *synthetic.Source, pub telemetry.TelemetryPublisher) *Bridge {
	b := New(cfg, logger, sock, nil, pub)
	b.synth = src
	return b
}

// Gate exposes the activation gate for the control surface.
func (b *Bridge) Gate() *gate.Gate { return b.gate }

// ToggleGate flips the activation gate and reports the new state. The
// aggregation pipeline keeps running either way; only the publish step is
// affected.
func (b *Bridge) ToggleGate() bool {
	active := b.gate.Toggle()
	if active {
		b.logger.Printf("publishing resumed")
	} else {
		b.logger.Printf("publishing paused, polling continues")
	}
	b.tsink.EmitGateToggled(active)
	return active
}

// Start binds the publish channel and runs the configured strategy until ctx
// is cancelled or Stop is called. A bind failure is fatal: nothing has been
// published yet and retrying would only hide a misconfigured address.
func (b *Bridge) Start(ctx context.Context) error {
	strat, err := b.selectStrategy()
	if err != nil {
		return err
	}

	if err := b.sock.Bind(b.cfg.Publish.BindAddr); err != nil {
		b.tsink.EmitError(err, "bind", telemetry.ErrorSeverityCritical)
		return fmt.Errorf("failed to bind publish channel %s: %w", b.cfg.Publish.BindAddr, err)
	}

	b.tsink.Start()
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-b.stopCh:
			cancel()
		case <-runCtx.Done():
		}
	}()

	b.logger.Printf("bridge starting in %s mode on %s", strat.Mode(), b.cfg.Publish.BindAddr)
	b.tsink.EmitModeChanged(strat.Mode(), "startup")

	return strat.Run(runCtx)
}

// Stop cancels the run loop, closes the publish channel and stops telemetry.
// Safe to call more than once and concurrently with Start in any
// interleaving, including before Start has begun.
func (b *Bridge) Stop() {
	b.stopOnce.Do(func() {
		close(b.stopCh)
		if err := b.sock.Close(); err != nil {
			b.logger.Printf("error closing publish channel: %v", err)
		}
		b.tsink.Stop()
	})
}

func (b *Bridge) selectStrategy() (RunStrategy, error) {
	if b.cfg.Synthetic {
		return newSyntheticStrategy(b), nil
	}
	switch b.cfg.Mode {
	case config.ModeMulti:
		return newMultiStrategy(b), nil
	case config.ModeSingle:
		return newSingleStrategy(b), nil
	}
	return nil, fmt.Errorf("%w: %q", config.ErrInvalidMode, b.cfg.Mode)
}

func (b *Bridge) onPollTimeout(attr poll.Attribute) {
	name, _ := attr.Name()
	b.tsink.EmitPollTimeout(name)
}

// observeMulti merges one reading into the aggregation buffer and publishes
// when a distance+velocity pair completes.
func (b *Bridge) observeMulti(attr poll.Attribute, values []int32) {
	name, ok := attr.Name()
	if !ok {
		b.logger.Printf("skipping reading for unmapped attribute %s", attr.Path)
		b.tsink.EmitError(fmt.Errorf("unmapped attribute %s", attr.Path), "attribute_map", telemetry.ErrorSeverityInfo)
		return
	}
	value := values[0]
	ts := uint64(time.Now().UnixMilli())
	b.tsink.EmitReading(name, value)

	b.mu.Lock()
	err := b.buf.Observe(name, value, ts)
	rec, done := b.buf.TryComplete()
	b.mu.Unlock()

	if err != nil {
		b.logger.Printf("dropping reading: %v", err)
		b.tsink.EmitError(err, "aggregate", telemetry.ErrorSeverityWarning)
		return
	}
	if !done {
		return
	}
	b.publish(frame.EncodeRecord(rec), ModeMulti, rec.Distance, rec.Velocity)
}

// observeSingle publishes every reading as its own frame.
func (b *Bridge) observeSingle(attr poll.Attribute, values []int32) {
	name, ok := attr.Name()
	if !ok {
		b.logger.Printf("skipping reading for unmapped attribute %s", attr.Path)
		b.tsink.EmitError(fmt.Errorf("unmapped attribute %s", attr.Path), "attribute_map", telemetry.ErrorSeverityInfo)
		return
	}
	value := values[0]
	b.tsink.EmitReading(name, value)

	kind := frame.KindDistance
	if name == aggregate.AttrVelocity {
		kind = frame.KindVelocity
	}
	rec := frame.SingleRecord{
		TS:    uint64(time.Now().UnixMilli()),
		Kind:  kind,
		Value: value,
	}
	b.publish(frame.EncodeSingle(rec), ModeSingle, kind, value)
}

// publish hands a frame to the publish channel unless the gate is inactive.
func (b *Bridge) publish(payload []byte, mode string, f1, f2 int32) {
	if !b.gate.IsActive() {
		b.tsink.EmitDiscarded("gate_inactive")
		return
	}
	start := time.Now()
	if err := b.sock.Send(payload); err != nil {
		b.logger.Printf("failed to publish frame: %v", err)
		b.tsink.EmitError(err, "publish", telemetry.ErrorSeverityWarning)
		return
	}
	b.tsink.EmitPublished(mode, time.Since(start))
	if b.cfg.Verbose {
		b.logger.Printf("published %s frame: %d %d", mode, f1, f2)
	}
}
