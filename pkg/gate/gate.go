package gate

import "sync/atomic"

// Gate is an atomically toggleable flag deciding whether completed records
// are published. It is read by the poll worker and written by the control
// context, so it sits on an atomic rather than a plain bool. Toggling never
// touches the aggregation pipeline: while inactive, records are discarded at
// the publish step only.
type Gate struct {
	active atomic.Bool
}

// New returns a Gate that starts active.
func New() *Gate {
	g := &Gate{}
	g.active.Store(true)
	return g
}

// Toggle flips the flag and returns the new state.
func (g *Gate) Toggle() bool {
	for {
		old := g.active.Load()
		if g.active.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// IsActive reports whether publication is currently enabled.
func (g *Gate) IsActive() bool {
	return g.active.Load()
}
