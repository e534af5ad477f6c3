package bridge

import (
	"context"
	"time"

	"dl100-bridge/pkg/telemetry"
)

// RunStrategy represents a bridge run mode (single, multi or synthetic).
type RunStrategy interface {
	Run(ctx context.Context) error
	Mode() string
}

// TelemetrySink is a thin adapter for emitting structured telemetry.
type TelemetrySink interface {
	Start()
	Stop()
	EmitReading(attribute string, value int32)
	EmitPublished(mode string, latency time.Duration)
	EmitDiscarded(reason string)
	EmitPollTimeout(attribute string)
	EmitGateToggled(active bool)
	EmitModeChanged(mode, reason string)
	EmitError(err error, where string, severity telemetry.ErrorSeverity)
}
