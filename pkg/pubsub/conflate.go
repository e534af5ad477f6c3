package pubsub

import "sync"

// ConflatingSocket wraps a Socket with keep-only-the-newest semantics: a
// single-slot mailbox holds the pending frame and each Send replaces any
// frame that has not gone out yet. The wrapped Send runs on a dedicated
// sender goroutine so the poll worker is never stalled by the transport.
type ConflatingSocket struct {
	inner Socket

	mu      sync.Mutex
	pending []byte
	has     bool

	wake      chan struct{}
	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
	closeErr  error

	// onDrop is invoked when a pending frame is replaced before sending.
	onDrop func()
}

// NewConflating wraps inner with conflation. onDrop may be nil.
func NewConflating(inner Socket, onDrop func()) *ConflatingSocket {
	return &ConflatingSocket{
		inner:  inner,
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
		onDrop: onDrop,
	}
}

// Bind binds the underlying socket and starts the sender worker.
func (c *ConflatingSocket) Bind(addr string) error {
	if err := c.inner.Bind(addr); err != nil {
		return err
	}
	c.wg.Add(1)
	go c.sender()
	return nil
}

// Send stores the payload as the pending frame, replacing any unsent one.
// It never blocks.
func (c *ConflatingSocket) Send(payload []byte) error {
	select {
	case <-c.done:
		return ErrClosed
	default:
	}

	c.mu.Lock()
	if c.has && c.onDrop != nil {
		c.onDrop()
	}
	c.pending = payload
	c.has = true
	c.mu.Unlock()

	select {
	case c.wake <- struct{}{}:
	default:
	}
	return nil
}

// Close shuts down the sender and closes the underlying socket exactly once.
// Repeat calls return the first result.
func (c *ConflatingSocket) Close() error {
	c.closeOnce.Do(func() {
		close(c.done)
		c.wg.Wait()
		c.closeErr = c.inner.Close()
	})
	return c.closeErr
}

func (c *ConflatingSocket) sender() {
	defer c.wg.Done()
	for {
		select {
		case <-c.done:
			return
		case <-c.wake:
			for {
				c.mu.Lock()
				payload, ok := c.pending, c.has
				c.pending = nil
				c.has = false
				c.mu.Unlock()
				if !ok {
					break
				}
				// Best-effort: a failed send is dropped, never retried.
				_ = c.inner.Send(payload)
			}
		}
	}
}
