package aggregate

import (
	"errors"
	"testing"
)

func TestObserve_ThenComplete(t *testing.T) {
	b := NewBuffer()

	if err := b.Observe(AttrDistance, 2512, 1000); err != nil {
		t.Fatalf("observe distance: %v", err)
	}
	if _, ok := b.TryComplete(); ok {
		t.Fatal("expected not ready with only distance buffered")
	}
	if err := b.Observe(AttrVelocity, -30, 1005); err != nil {
		t.Fatalf("observe velocity: %v", err)
	}

	rec, ok := b.TryComplete()
	if !ok {
		t.Fatal("expected a completed record")
	}
	if rec.TS != 1000 {
		t.Errorf("record TS = %d, want distance timestamp 1000", rec.TS)
	}
	if rec.Distance != 2512 || rec.Velocity != -30 {
		t.Errorf("record = %+v, want distance=2512 velocity=-30", rec)
	}

	// Completion clears state: no second record until new data arrives.
	if _, ok := b.TryComplete(); ok {
		t.Fatal("expected not ready after completion")
	}
}

func TestObserve_ReversedOrderDoesNotComplete(t *testing.T) {
	b := NewBuffer()

	if err := b.Observe(AttrVelocity, -30, 1000); err != nil {
		t.Fatalf("observe velocity: %v", err)
	}
	if err := b.Observe(AttrDistance, 2512, 1005); err != nil {
		t.Fatalf("observe distance: %v", err)
	}
	if _, ok := b.TryComplete(); ok {
		t.Fatal("velocity-then-distance must not complete on the same check")
	}
}

func TestObserve_DistanceBeginsNewEpoch(t *testing.T) {
	b := NewBuffer()

	// A velocity buffered before the distance is stale and dropped when
	// the distance arrives; the next velocity completes the pair.
	mustObserve(t, b, AttrVelocity, -99, 900)
	mustObserve(t, b, AttrDistance, 2512, 1000)
	mustObserve(t, b, AttrVelocity, -30, 1010)

	rec, ok := b.TryComplete()
	if !ok {
		t.Fatal("expected completion after distance then velocity")
	}
	if rec.Velocity != -30 {
		t.Errorf("record velocity = %d, want the fresh reading -30", rec.Velocity)
	}
	if rec.TS != 1000 {
		t.Errorf("record TS = %d, want 1000", rec.TS)
	}
}

func TestObserve_OverwriteKeepsLatestValue(t *testing.T) {
	b := NewBuffer()

	mustObserve(t, b, AttrDistance, 2400, 1000)
	mustObserve(t, b, AttrDistance, 2500, 1050)
	mustObserve(t, b, AttrVelocity, 10, 1060)

	rec, ok := b.TryComplete()
	if !ok {
		t.Fatal("expected completion")
	}
	if rec.Distance != 2500 || rec.TS != 1050 {
		t.Errorf("record = %+v, want latest distance 2500 at 1050", rec)
	}
}

func TestObserve_UnknownAttribute(t *testing.T) {
	b := NewBuffer()
	mustObserve(t, b, AttrDistance, 2500, 1000)

	err := b.Observe("temperature", 21, 1001)
	if !errors.Is(err, ErrUnknownAttribute) {
		t.Fatalf("expected ErrUnknownAttribute, got %v", err)
	}

	// Buffer state is untouched: the pending epoch still completes.
	mustObserve(t, b, AttrVelocity, 5, 1002)
	rec, ok := b.TryComplete()
	if !ok {
		t.Fatal("expected completion after unknown attribute was discarded")
	}
	if rec.Distance != 2500 || rec.Velocity != 5 {
		t.Errorf("record = %+v, want distance=2500 velocity=5", rec)
	}
}

func mustObserve(t *testing.T, b *Buffer, name string, value int32, ts uint64) {
	t.Helper()
	if err := b.Observe(name, value, ts); err != nil {
		t.Fatalf("observe %s: %v", name, err)
	}
}
