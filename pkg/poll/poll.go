package poll

import (
	"context"
	"errors"
	"log"
	"time"
)

// Attribute identifies one device register to poll, using the device's own
// path notation plus its element type.
type Attribute struct {
	Path string
	Type string
}

// DL100 attribute identifiers. The device exposes distance and velocity as
// DINT class-0x23 instance attributes.
var (
	Distance = Attribute{Path: "@0x23/1/10", Type: "DINT"}
	Velocity = Attribute{Path: "@0x23/1/24", Type: "DINT"}
)

// DefaultAttributes is the poll set for a standard bridge run, in the
// device's physical reporting order.
var DefaultAttributes = []Attribute{Distance, Velocity}

// Name maps an attribute to its logical channel name.
func (a Attribute) Name() (string, bool) {
	switch a {
	case Distance:
		return "distance", true
	case Velocity:
		return "velocity", true
	}
	return "", false
}

// ErrTimeout is returned by Device implementations when a read does not
// complete within the cycle timeout. Treated as transient: the cycle is
// skipped and polling continues.
var ErrTimeout = errors.New("poll timeout")

// Callback receives the values read for one attribute in one cycle.
type Callback func(attr Attribute, values []int32)

// Device is the seam where the industrial protocol client plugs in. The
// protocol itself (connection management, session registration, retries) is
// the client's responsibility; the engine only tolerates missed cycles.
type Device interface {
	ReadAttribute(ctx context.Context, attr Attribute) ([]int32, error)
}

// How many consecutive timeouts between log lines, so an unplugged device
// does not flood the log at 30 Hz.
const timeoutLogEvery = 100

// Engine drives a Device at a fixed cadence and hands each reading to a
// callback. It is the in-process stand-in for the external polling engine.
type Engine struct {
	dev       Device
	logger    *log.Logger
	onTimeout func(attr Attribute)

	timeouts int
}

// NewEngine creates an Engine. onTimeout may be nil.
func NewEngine(dev Device, logger *log.Logger, onTimeout func(attr Attribute)) *Engine {
	return &Engine{dev: dev, logger: logger, onTimeout: onTimeout}
}

// Run polls every attribute once per cycle until ctx is cancelled, applying
// timeout to each read. A timed-out read yields no callback for that cycle.
// If a cycle overruns, the next one starts immediately; there is no catch-up
// burst. Returns ctx.Err() on cancellation.
func (e *Engine) Run(ctx context.Context, attrs []Attribute, cycle, timeout time.Duration, process Callback) error {
	for {
		start := time.Now()

		for _, attr := range attrs {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			e.pollOne(ctx, attr, timeout, process)
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

func (e *Engine) pollOne(ctx context.Context, attr Attribute, timeout time.Duration, process Callback) {
	rctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	values, err := e.dev.ReadAttribute(rctx, attr)
	if err != nil {
		if errors.Is(err, ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
			e.timeouts++
			if e.timeouts == 1 || e.timeouts%timeoutLogEvery == 0 {
				e.logger.Printf("poll timeout on %s (%d consecutive)", attr.Path, e.timeouts)
			}
			if e.onTimeout != nil {
				e.onTimeout(attr)
			}
			return
		}
		if ctx.Err() != nil {
			return // shutting down, not a device fault
		}
		e.logger.Printf("read %s failed: %v", attr.Path, err)
		return
	}

	e.timeouts = 0
	if len(values) == 0 {
		e.logger.Printf("read %s returned no values", attr.Path)
		return
	}
	process(attr, values)
}
