package bridge

import (
	"context"
	"time"

	"dl100-bridge/pkg/telemetry"
)

// telemetrySinkImpl is a buffered adapter around TelemetryPublisher that
// provides typed emit helpers and manages its own publishing goroutine.
type telemetrySinkImpl struct {
	pub    telemetry.TelemetryPublisher
	ch     chan telemetry.TelemetryEvent
	ctx    context.Context
	cancel context.CancelFunc
}

// NewTelemetrySink constructs a TelemetrySink for the provided publisher.
func NewTelemetrySink(pub telemetry.TelemetryPublisher) TelemetrySink {
	return &telemetrySinkImpl{
		pub: pub,
		ch:  make(chan telemetry.TelemetryEvent, 200),
	}
}

func (t *telemetrySinkImpl) Start() {
	if t.pub == nil || t.ctx != nil {
		return // nothing to do or already started
	}
	t.ctx, t.cancel = context.WithCancel(context.Background())
	go func() {
		for {
			select {
			case ev := <-t.ch:
				// Best-effort publish; publisher is expected to be non-blocking
				t.pub.Publish(ev)
			case <-t.ctx.Done():
				return
			}
		}
	}()
}

func (t *telemetrySinkImpl) Stop() {
	if t.cancel != nil {
		t.cancel()
	}
}

func (t *telemetrySinkImpl) EmitRaw(event telemetry.TelemetryEvent) {
	if t == nil {
		return
	}
	select {
	case t.ch <- event:
	default:
		// drop on full to avoid blocking
	}
}

func (t *telemetrySinkImpl) EmitReading(attribute string, value int32) {
	t.EmitRaw(telemetry.NewReadingReceived(attribute, value))
}

func (t *telemetrySinkImpl) EmitPublished(mode string, latency time.Duration) {
	t.EmitRaw(telemetry.NewRecordPublished(mode, latency))
}

func (t *telemetrySinkImpl) EmitDiscarded(reason string) {
	t.EmitRaw(telemetry.NewRecordDiscarded(reason))
}

func (t *telemetrySinkImpl) EmitPollTimeout(attribute string) {
	t.EmitRaw(telemetry.NewPollTimeout(attribute))
}

func (t *telemetrySinkImpl) EmitGateToggled(active bool) {
	t.EmitRaw(telemetry.NewGateToggled(active))
}

func (t *telemetrySinkImpl) EmitModeChanged(mode, reason string) {
	t.EmitRaw(telemetry.NewModeChanged(mode, reason))
}

func (t *telemetrySinkImpl) EmitError(err error, where string, severity telemetry.ErrorSeverity) {
	t.EmitRaw(telemetry.NewBridgeError(err, where, severity))
}
