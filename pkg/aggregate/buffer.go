package aggregate

import (
	"errors"
	"fmt"

	"dl100-bridge/pkg/frame"
)

// Logical attribute names recognised by the buffer.
const (
	AttrDistance = "distance"
	AttrVelocity = "velocity"
)

// ErrUnknownAttribute indicates a reading for a name outside the recognised
// set. The caller is expected to log it and keep polling.
var ErrUnknownAttribute = errors.New("unknown attribute")

// Reading is a single polled value for one attribute.
type Reading struct {
	Name  string
	Value int32
	TS    uint64
}

// Buffer accumulates per-attribute readings until a complete
// distance+velocity pair is available.
//
// Completion is order-sensitive: the device reports distance before velocity
// within a poll cycle, and pairing a stale distance with a fresh velocity
// would skew the sample. A distance observation therefore begins a fresh
// accumulation epoch, discarding any velocity buffered before it; the epoch
// completes when a velocity arrives afterwards. See DESIGN.md for the
// resolution of the historical stuck-order behaviour.
//
// Buffer is not internally synchronised. The bridge serialises each
// Observe+TryComplete pair under one lock so a concurrent reading cannot be
// absorbed between the merge and the completion check.
type Buffer struct {
	distance *Reading
	velocity *Reading

	// distanceFirst records arrival order within the current epoch,
	// making the completion rule an explicit predicate.
	distanceFirst bool
}

// NewBuffer returns an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Observe merges a reading under its attribute name, overwriting any prior
// value for that attribute. Unknown names leave the buffer untouched.
func (b *Buffer) Observe(name string, value int32, ts uint64) error {
	switch name {
	case AttrDistance:
		// New epoch: a buffered velocity predates this distance and
		// must not be paired with it.
		b.distance = &Reading{Name: name, Value: value, TS: ts}
		b.velocity = nil
		b.distanceFirst = true
	case AttrVelocity:
		b.velocity = &Reading{Name: name, Value: value, TS: ts}
		if b.distance == nil {
			b.distanceFirst = false
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
	}
	return nil
}

// TryComplete returns a Record and clears the buffer iff distance was
// observed strictly before velocity in the current epoch. The record
// timestamp is taken from the distance reading.
func (b *Buffer) TryComplete() (frame.Record, bool) {
	if b.distance == nil || b.velocity == nil || !b.distanceFirst {
		return frame.Record{}, false
	}
	rec := frame.Record{
		TS:       b.distance.TS,
		Distance: b.distance.Value,
		Velocity: b.velocity.Value,
	}
	b.distance = nil
	b.velocity = nil
	b.distanceFirst = false
	return rec, true
}
