package main

import (
	"context"
	"log"
	"time"

	"dl100-bridge/pkg/config"
	"dl100-bridge/pkg/telemetry"
	"dl100-bridge/pkg/utils"
)

// CLI represents the command-line interface runner
type CLI struct {
	telemetry telemetry.TelemetryReader
	config    *config.Config
	logger    *log.Logger

	// State
	lastSnapshot telemetry.Snapshot
	done         chan struct{}
}

// NewCLI creates a new command-line interface runner
func NewCLI(telemetryReader telemetry.TelemetryReader, cfg *config.Config, logger *log.Logger) *CLI {
	return &CLI{
		telemetry: telemetryReader,
		config:    cfg,
		logger:    logger,
		done:      make(chan struct{}),
	}
}

// Run starts the CLI runner and blocks until shutdown
func (c *CLI) Run(ctx context.Context) error {
	if c.config.Synthetic {
		c.logger.Printf("Starting DL100 Bridge with synthetic source")
	} else {
		c.logger.Printf("Starting DL100 Bridge")
		c.logger.Printf("Device: %s:%d", c.config.Device.Host, c.config.Device.Port)
	}
	c.logger.Printf("Publishing on: %s", c.config.Publish.BindAddr)
	c.logger.Printf("Mode: %s, cycle: %v", c.config.Mode, c.config.Cycle())

	// Print periodic status updates
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.logger.Printf("Shutting down...")
			return nil
		case <-ticker.C:
			c.printStatus()
		case <-c.done:
			return nil
		}
	}
}

// Stop stops the CLI runner
func (c *CLI) Stop() {
	close(c.done)
}

// printStatus prints current telemetry status
func (c *CLI) printStatus() {
	snapshot := c.telemetry.Snapshot()

	// Only print if there are changes or significant activity
	if c.shouldPrintStatus(snapshot) {
		c.logger.Printf("Status - Readings: received=%d, published=%d, discarded=%d, rate=%.1f/s, errors=%d",
			snapshot.ReadingsReceived,
			snapshot.RecordsPublished,
			snapshot.RecordsDiscarded,
			snapshot.PublishesPerSecond,
			snapshot.ErrorsTotal)

		c.logger.Printf("Pipeline - gate: %t, mode: %s, poll timeouts: %d",
			snapshot.GateActive,
			snapshot.CurrentMode,
			snapshot.PollTimeouts)

		for _, ac := range utils.SortAttributesByCount(snapshot.ReadingsByAttribute) {
			c.logger.Printf("  %s: %s readings", ac.Attribute, utils.FormatNumber(ac.Count))
		}

		if snapshot.AvgLatencyMs > 0 {
			c.logger.Printf("Publish latency: avg=%.2fms, max=%.2fms",
				snapshot.AvgLatencyMs,
				snapshot.MaxLatencyMs)
		}
	}

	c.lastSnapshot = snapshot
}

// shouldPrintStatus determines if we should print a status update
func (c *CLI) shouldPrintStatus(snapshot telemetry.Snapshot) bool {
	// Always print first status
	if c.lastSnapshot.ReadingsReceived == 0 && c.lastSnapshot.RecordsPublished == 0 {
		return true
	}

	// Print if counters moved
	if snapshot.ReadingsReceived != c.lastSnapshot.ReadingsReceived ||
		snapshot.RecordsPublished != c.lastSnapshot.RecordsPublished ||
		snapshot.RecordsDiscarded != c.lastSnapshot.RecordsDiscarded {
		return true
	}

	// Print if there are errors
	if snapshot.ErrorsTotal > c.lastSnapshot.ErrorsTotal {
		return true
	}

	// Print if the gate or mode changed
	if snapshot.GateActive != c.lastSnapshot.GateActive ||
		snapshot.CurrentMode != c.lastSnapshot.CurrentMode {
		return true
	}

	return false
}
