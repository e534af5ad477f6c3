package pubsub

import "errors"

// ErrClosed is returned by Send after the socket has been closed.
var ErrClosed = errors.New("pubsub: socket closed")

// Socket is the publish channel consumed by the bridge. Implementations are
// best-effort: Send must never block the caller waiting for a slow or absent
// subscriber, and Close must be idempotent.
type Socket interface {
	Bind(addr string) error
	Send(payload []byte) error
	Close() error
}
