package pubsub

import (
	"context"

	"github.com/go-zeromq/zmq4"
	"github.com/go-zeromq/zmq4/security/plain"

	"dl100-bridge/pkg/auth"
)

// PubSocket publishes frames on a ZeroMQ PUB socket. Subscribers come and go
// without the publisher noticing; delivery is best-effort by construction.
// Wrap it in a ConflatingSocket so a slow transport cannot back up into the
// poll worker.
type PubSocket struct {
	sock zmq4.Socket
}

// NewPub creates a PUB socket. Non-zero credentials enable ZMQ PLAIN
// authentication; a zero value leaves the channel open.
func NewPub(ctx context.Context, creds auth.Credentials) *PubSocket {
	var opts []zmq4.Option
	if !creds.IsZero() {
		opts = append(opts, zmq4.WithSecurity(plain.Security(creds.Username, creds.Password)))
	}
	return &PubSocket{sock: zmq4.NewPub(ctx, opts...)}
}

// Bind starts listening on addr, e.g. "tcp://*:5559".
func (p *PubSocket) Bind(addr string) error {
	return p.sock.Listen(addr)
}

// Send publishes one frame to all current subscribers.
func (p *PubSocket) Send(payload []byte) error {
	return p.sock.Send(zmq4.NewMsg(payload))
}

// Close tears the socket down.
func (p *PubSocket) Close() error {
	return p.sock.Close()
}
