package telemetry

type Snapshot struct {
	// Core metrics
	ReadingsReceived uint64
	RecordsPublished uint64
	RecordsDiscarded uint64
	PollTimeouts     uint64
	ErrorsTotal      uint64

	// Breakdown
	ReadingsByAttribute map[string]uint64
	DiscardsByReason    map[string]uint64

	// Pipeline state
	GateActive  bool
	CurrentMode string

	// Rate metrics
	ReadingsPerSecond  float64
	PublishesPerSecond float64

	// Latency metrics
	AvgLatencyMs float64
	MaxLatencyMs float64

	// System metrics
	UptimeSeconds      float64
	ChannelUtilization float64

	// Error breakdown
	ErrorsByType     map[string]uint64
	ErrorsBySeverity map[ErrorSeverity]uint64
	RecentErrors     []string
}

type TelemetryReader interface {
	Snapshot() Snapshot
}
