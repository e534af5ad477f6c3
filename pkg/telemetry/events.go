package telemetry

import "time"

type TelemetryEvent interface {
	Timestamp() time.Time // When the event occurred
	EventType() string    // For categorization/filtering
}

// ReadingReceived is emitted for every attribute value delivered by the
// polling engine, before aggregation.
type ReadingReceived struct {
	timestamp time.Time
	Attribute string
	Value     int32
}

func (e ReadingReceived) Timestamp() time.Time { return e.timestamp }
func (e ReadingReceived) EventType() string    { return "reading_received" }

func NewReadingReceived(attribute string, value int32) ReadingReceived {
	return ReadingReceived{
		timestamp: time.Now(),
		Attribute: attribute,
		Value:     value,
	}
}

// RecordPublished is emitted after a frame is handed to the publish channel.
type RecordPublished struct {
	timestamp time.Time
	Mode      string
	Latency   time.Duration // Time from completion to send
}

func (e RecordPublished) Timestamp() time.Time { return e.timestamp }
func (e RecordPublished) EventType() string    { return "record_published" }

func NewRecordPublished(mode string, latency time.Duration) RecordPublished {
	return RecordPublished{
		timestamp: time.Now(),
		Mode:      mode,
		Latency:   latency,
	}
}

// RecordDiscarded is emitted when a completed record is dropped instead of
// sent, e.g. "gate_inactive" or "conflated".
type RecordDiscarded struct {
	timestamp time.Time
	Reason    string
}

func (e RecordDiscarded) Timestamp() time.Time { return e.timestamp }
func (e RecordDiscarded) EventType() string    { return "record_discarded" }

func NewRecordDiscarded(reason string) RecordDiscarded {
	return RecordDiscarded{
		timestamp: time.Now(),
		Reason:    reason,
	}
}

// PollTimeout is emitted when a poll cycle yields no reading within the
// configured timeout. Transient by definition.
type PollTimeout struct {
	timestamp time.Time
	Attribute string
}

func (e PollTimeout) Timestamp() time.Time { return e.timestamp }
func (e PollTimeout) EventType() string    { return "poll_timeout" }

func NewPollTimeout(attribute string) PollTimeout {
	return PollTimeout{
		timestamp: time.Now(),
		Attribute: attribute,
	}
}

// GateToggled is emitted when the activation gate changes state.
type GateToggled struct {
	timestamp time.Time
	Active    bool
}

func (e GateToggled) Timestamp() time.Time { return e.timestamp }
func (e GateToggled) EventType() string    { return "gate_toggled" }

func NewGateToggled(active bool) GateToggled {
	return GateToggled{
		timestamp: time.Now(),
		Active:    active,
	}
}

// ModeChanged is emitted when the bridge selects its run strategy.
type ModeChanged struct {
	timestamp time.Time
	Mode      string // "single", "multi" or "synthetic"
	Reason    string
}

func (e ModeChanged) Timestamp() time.Time { return e.timestamp }
func (e ModeChanged) EventType() string    { return "mode_changed" }

func NewModeChanged(mode, reason string) ModeChanged {
	return ModeChanged{
		timestamp: time.Now(),
		Mode:      mode,
		Reason:    reason,
	}
}

type BridgeError struct {
	timestamp time.Time
	Err       error
	Context   string // Additional context (e.g. "unknown_attribute", "publish")
	Severity  ErrorSeverity
}

func (e BridgeError) Timestamp() time.Time { return e.timestamp }
func (e BridgeError) EventType() string    { return "bridge_error" }

func NewBridgeError(err error, context string, severity ErrorSeverity) BridgeError {
	return BridgeError{
		timestamp: time.Now(),
		Err:       err,
		Context:   context,
		Severity:  severity,
	}
}

type ErrorSeverity int

const (
	ErrorSeverityInfo ErrorSeverity = iota
	ErrorSeverityWarning
	ErrorSeverityError
	ErrorSeverityCritical
)

type TelemetryPublisher interface {
	// Publish sends a telemetry event to the aggregator.
	// This is a non-blocking, fire-and-forget call.
	Publish(event TelemetryEvent)
}
