package telemetry

import (
	"context"
	"sync"
	"time"
)

// Clock interface allows for deterministic testing
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// Config for telemetry settings
type Config struct {
	BufferSize        int
	MaxRecentErrors   int
	RateWindowSeconds int
	MaxLatencySamples int
}

func DefaultConfig() Config {
	return Config{
		BufferSize:        1000,
		MaxRecentErrors:   50,
		RateWindowSeconds: 10,
		MaxLatencySamples: 100,
	}
}

// Aggregator is the core stateful component that processes telemetry events
type Aggregator struct {
	mu    sync.RWMutex
	clock Clock
	cfg   Config

	// Core counters
	readingsReceived uint64
	recordsPublished uint64
	recordsDiscarded uint64
	pollTimeouts     uint64
	errorsTotal      uint64

	// Breakdown
	readingsByAttribute map[string]uint64
	discardsByReason    map[string]uint64
	errorsByType        map[string]uint64
	errorsBySeverity    map[ErrorSeverity]uint64

	// Rate calculations
	readingTimes []time.Time // Ring buffer for rate calculations
	publishTimes []time.Time

	// Current state
	gateActive  bool
	currentMode string

	// Recent errors (ring buffer)
	recentErrors []string
	errorIndex   int

	// Latency tracking
	latencies    []time.Duration
	latencyIndex int

	// Control channels
	eventCh chan TelemetryEvent
	done    chan struct{}
	wg      sync.WaitGroup

	// Startup time
	startTime time.Time
}

// NewAggregator creates a new telemetry aggregator
func NewAggregator(clock Clock, cfg Config) *Aggregator {
	if clock == nil {
		clock = RealClock{}
	}

	return &Aggregator{
		clock:               clock,
		cfg:                 cfg,
		gateActive:          true, // The gate starts active
		readingsByAttribute: make(map[string]uint64),
		discardsByReason:    make(map[string]uint64),
		errorsByType:        make(map[string]uint64),
		errorsBySeverity:    make(map[ErrorSeverity]uint64),
		readingTimes:        make([]time.Time, 0, cfg.RateWindowSeconds*60), // ~60 readings per second estimate
		publishTimes:        make([]time.Time, 0, cfg.RateWindowSeconds*30),
		recentErrors:        make([]string, cfg.MaxRecentErrors),
		latencies:           make([]time.Duration, cfg.MaxLatencySamples),
		eventCh:             make(chan TelemetryEvent, cfg.BufferSize),
		done:                make(chan struct{}),
		startTime:           clock.Now(),
	}
}

// Start begins processing telemetry events
func (a *Aggregator) Start(ctx context.Context) {
	a.wg.Add(1)
	go a.processEvents(ctx)
}

// Stop gracefully shuts down the aggregator
func (a *Aggregator) Stop() {
	close(a.done)
	a.wg.Wait()
}

// Publish implements TelemetryPublisher interface
func (a *Aggregator) Publish(event TelemetryEvent) {
	select {
	case a.eventCh <- event:
	default:
		// Non-blocking send - drop if channel is full
		// This protects the hot path from being blocked
	}
}

// Snapshot implements TelemetryReader interface
func (a *Aggregator) Snapshot() Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()

	now := a.clock.Now()

	readingsPerSecond := a.calculateRate(a.readingTimes, now)
	publishesPerSecond := a.calculateRate(a.publishTimes, now)

	avgLatency, maxLatency := a.calculateLatencyMetrics()

	uptime := now.Sub(a.startTime).Seconds()

	channelUtilization := float64(len(a.eventCh)) / float64(cap(a.eventCh)) * 100

	// Copy maps to prevent data races
	attrsCopy := make(map[string]uint64)
	for k, v := range a.readingsByAttribute {
		attrsCopy[k] = v
	}

	discardsCopy := make(map[string]uint64)
	for k, v := range a.discardsByReason {
		discardsCopy[k] = v
	}

	errorsByTypeCopy := make(map[string]uint64)
	for k, v := range a.errorsByType {
		errorsByTypeCopy[k] = v
	}

	errorsBySeverityCopy := make(map[ErrorSeverity]uint64)
	for k, v := range a.errorsBySeverity {
		errorsBySeverityCopy[k] = v
	}

	// Copy recent errors, newest first
	recentErrors := make([]string, 0)
	for i := 0; i < a.cfg.MaxRecentErrors; i++ {
		idx := (a.errorIndex - i - 1 + len(a.recentErrors)) % len(a.recentErrors)
		if a.recentErrors[idx] != "" {
			recentErrors = append(recentErrors, a.recentErrors[idx])
		}
	}

	return Snapshot{
		ReadingsReceived:    a.readingsReceived,
		RecordsPublished:    a.recordsPublished,
		RecordsDiscarded:    a.recordsDiscarded,
		PollTimeouts:        a.pollTimeouts,
		ErrorsTotal:         a.errorsTotal,
		ReadingsByAttribute: attrsCopy,
		DiscardsByReason:    discardsCopy,
		GateActive:          a.gateActive,
		CurrentMode:         a.currentMode,
		RecentErrors:        recentErrors,
		ReadingsPerSecond:   readingsPerSecond,
		PublishesPerSecond:  publishesPerSecond,
		AvgLatencyMs:        avgLatency,
		MaxLatencyMs:        maxLatency,
		UptimeSeconds:       uptime,
		ErrorsByType:        errorsByTypeCopy,
		ErrorsBySeverity:    errorsBySeverityCopy,
		ChannelUtilization:  channelUtilization,
	}
}

func (a *Aggregator) processEvents(ctx context.Context) {
	defer a.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case <-a.done:
			return
		case event := <-a.eventCh:
			a.handleEvent(event)
		}
	}
}

func (a *Aggregator) handleEvent(event TelemetryEvent) {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.clock.Now()

	switch e := event.(type) {
	case ReadingReceived:
		a.readingsReceived++
		a.readingsByAttribute[e.Attribute]++
		a.addReadingTime(now)

	case RecordPublished:
		a.recordsPublished++
		a.addPublishTime(now)
		a.addLatency(e.Latency)

	case RecordDiscarded:
		a.recordsDiscarded++
		a.discardsByReason[e.Reason]++

	case PollTimeout:
		a.pollTimeouts++

	case GateToggled:
		a.gateActive = e.Active

	case ModeChanged:
		a.currentMode = e.Mode

	case BridgeError:
		a.errorsTotal++
		a.errorsByType[e.Context]++
		a.errorsBySeverity[e.Severity]++
		a.addRecentError(e.Err.Error())
	}
}

func (a *Aggregator) addReadingTime(t time.Time) {
	cutoff := t.Add(-time.Duration(a.cfg.RateWindowSeconds) * time.Second)

	// Remove old entries
	for len(a.readingTimes) > 0 && a.readingTimes[0].Before(cutoff) {
		a.readingTimes = a.readingTimes[1:]
	}

	a.readingTimes = append(a.readingTimes, t)
}

func (a *Aggregator) addPublishTime(t time.Time) {
	cutoff := t.Add(-time.Duration(a.cfg.RateWindowSeconds) * time.Second)

	// Remove old entries
	for len(a.publishTimes) > 0 && a.publishTimes[0].Before(cutoff) {
		a.publishTimes = a.publishTimes[1:]
	}

	a.publishTimes = append(a.publishTimes, t)
}

func (a *Aggregator) addLatency(latency time.Duration) {
	a.latencies[a.latencyIndex] = latency
	a.latencyIndex = (a.latencyIndex + 1) % len(a.latencies)
}

func (a *Aggregator) addRecentError(err string) {
	a.recentErrors[a.errorIndex] = err
	a.errorIndex = (a.errorIndex + 1) % len(a.recentErrors)
}

func (a *Aggregator) calculateRate(times []time.Time, now time.Time) float64 {
	if len(times) == 0 {
		return 0.0
	}

	cutoff := now.Add(-time.Duration(a.cfg.RateWindowSeconds) * time.Second)
	count := 0

	for _, t := range times {
		if t.After(cutoff) {
			count++
		}
	}

	return float64(count) / float64(a.cfg.RateWindowSeconds)
}

func (a *Aggregator) calculateLatencyMetrics() (float64, float64) {
	validLatencies := make([]time.Duration, 0)

	for _, lat := range a.latencies {
		if lat > 0 {
			validLatencies = append(validLatencies, lat)
		}
	}

	if len(validLatencies) == 0 {
		return 0.0, 0.0
	}

	var sum, max time.Duration
	for _, lat := range validLatencies {
		sum += lat
		if lat > max {
			max = lat
		}
	}
	avg := float64(sum) / float64(len(validLatencies)) / float64(time.Millisecond)

	return avg, float64(max) / float64(time.Millisecond)
}
