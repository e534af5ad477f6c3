package pubsub

import (
	"sync"
	"testing"
	"time"
)

// blockingSocket parks the sender goroutine inside Send until released.
type blockingSocket struct {
	mu         sync.Mutex
	sent       [][]byte
	bindCalls  int
	closeCalls int
	release    chan struct{}
}

func newBlockingSocket() *blockingSocket {
	return &blockingSocket{release: make(chan struct{})}
}

func (s *blockingSocket) Bind(addr string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bindCalls++
	return nil
}

func (s *blockingSocket) Send(payload []byte) error {
	<-s.release
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, payload)
	return nil
}

func (s *blockingSocket) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeCalls++
	return nil
}

func (s *blockingSocket) sentFrames() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]byte, len(s.sent))
	copy(out, s.sent)
	return out
}

func TestConflating_KeepsNewestOnly(t *testing.T) {
	inner := newBlockingSocket()
	var mu sync.Mutex
	drops := 0
	c := NewConflating(inner, func() {
		mu.Lock()
		drops++
		mu.Unlock()
	})
	if err := c.Bind("tcp://*:0"); err != nil {
		t.Fatalf("bind: %v", err)
	}

	// The transport is stalled, so frames queued now pile into the
	// single-slot mailbox and overwrite each other.
	for _, p := range []string{"a", "b", "c", "d"} {
		if err := c.Send([]byte(p)); err != nil {
			t.Fatalf("send %q: %v", p, err)
		}
	}

	// Release the transport; only the newest pending frame goes out.
	close(inner.release)

	deadline := time.After(time.Second)
	for {
		frames := inner.sentFrames()
		if n := len(frames); n > 0 && string(frames[n-1]) == "d" {
			// The sender can deliver at most one frame grabbed before the
			// stall plus the final survivor.
			if n > 2 {
				t.Fatalf("expected at most 2 delivered frames, got %d", n)
			}
			break
		}
		select {
		case <-deadline:
			t.Fatalf("newest frame never delivered, got %d frames", len(inner.sentFrames()))
		case <-time.After(time.Millisecond):
		}
	}

	mu.Lock()
	defer mu.Unlock()
	if drops < 2 {
		t.Errorf("expected at least 2 conflation drops, got %d", drops)
	}
	_ = c.Close()
}

func TestConflating_SendNeverBlocks(t *testing.T) {
	inner := newBlockingSocket() // Send blocks forever: release never signalled
	c := NewConflating(inner, nil)
	if err := c.Bind("tcp://*:0"); err != nil {
		t.Fatalf("bind: %v", err)
	}

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			_ = c.Send([]byte{byte(i)})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Send blocked while transport was stalled")
	}
	close(inner.release)
	_ = c.Close()
}

func TestConflating_CloseIdempotent(t *testing.T) {
	inner := newBlockingSocket()
	close(inner.release)
	c := NewConflating(inner, nil)
	if err := c.Bind("tcp://*:0"); err != nil {
		t.Fatalf("bind: %v", err)
	}

	if err := c.Close(); err != nil {
		t.Fatalf("first close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if inner.closeCalls != 1 {
		t.Fatalf("inner Close called %d times, want exactly 1", inner.closeCalls)
	}

	if err := c.Send([]byte("late")); err != ErrClosed {
		t.Errorf("Send after Close = %v, want ErrClosed", err)
	}
}
